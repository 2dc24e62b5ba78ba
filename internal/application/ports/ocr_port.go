package ports

import (
	"context"

	"github.com/jhoicas/Gastos-api/internal/application/dto"
)

// ReceiptParser define el puerto de salida hacia el servicio OCR de recibos.
// Best-effort: un fallo aquí se reporta distinto a un fallo de conversión
// (domain.ErrOCRFailed) y no debe tumbar el envío completo del gasto.
type ReceiptParser interface {
	Parse(ctx context.Context, receiptBase64 string) (*dto.ReceiptData, error)
}
