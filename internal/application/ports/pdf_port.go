package ports

import (
	"context"

	"github.com/jhoicas/Gastos-api/internal/application/dto"
)

// ExpenseReportPDFGenerator define el puerto para la generación del reporte
// PDF de gastos visibles por el usuario.
type ExpenseReportPDFGenerator interface {
	GenerateExpenseReport(ctx context.Context, companyName, currency string, expenses []dto.ExpenseResponse) ([]byte, error)
}
