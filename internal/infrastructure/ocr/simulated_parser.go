package ocr

import (
	"context"
	"encoding/base64"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Gastos-api/internal/application/dto"
	"github.com/jhoicas/Gastos-api/internal/application/ports"
	"github.com/jhoicas/Gastos-api/internal/domain"
)

// Verificar en tiempo de compilación que SimulatedParser implementa ReceiptParser.
var _ ports.ReceiptParser = (*SimulatedParser)(nil)

// SimulatedParser implementación placeholder del OCR de recibos. Valida que la
// entrada sea base64 y devuelve campos fijos; el adaptador real contra un
// proveedor de OCR se enchufa por el mismo puerto sin tocar los use cases.
type SimulatedParser struct{}

func NewSimulatedParser() *SimulatedParser {
	return &SimulatedParser{}
}

// Parse extrae los campos del recibo. Devuelve domain.ErrOCRFailed si la
// imagen está vacía o no es base64 válido.
func (p *SimulatedParser) Parse(ctx context.Context, receiptBase64 string) (*dto.ReceiptData, error) {
	payload := strings.TrimSpace(receiptBase64)
	if payload = stripDataURLPrefix(payload); payload == "" {
		return nil, domain.ErrOCRFailed
	}
	if _, err := base64.StdEncoding.DecodeString(payload); err != nil {
		return nil, domain.ErrOCRFailed
	}
	return &dto.ReceiptData{
		Amount:      decimal.RequireFromString("42.5"),
		Currency:    "USD",
		Category:    "Meals",
		Description: "Receipt parsed via OCR",
		Date:        time.Now().UTC(),
	}, nil
}

// stripDataURLPrefix quita el prefijo "data:image/...;base64," si viene.
func stripDataURLPrefix(s string) string {
	if !strings.HasPrefix(s, "data:") {
		return s
	}
	if idx := strings.Index(s, ","); idx >= 0 {
		return s[idx+1:]
	}
	return s
}
