package expense

import (
	"context"

	"github.com/jhoicas/Gastos-api/internal/application/dto"
	"github.com/jhoicas/Gastos-api/internal/application/ports"
	"github.com/jhoicas/Gastos-api/internal/domain"
	"github.com/jhoicas/Gastos-api/internal/domain/entity"
	"github.com/jhoicas/Gastos-api/internal/domain/repository"
)

// ReportUseCase genera el reporte PDF de los gastos visibles por el usuario
// (misma visibilidad por rol que el listado).
type ReportUseCase struct {
	query       *QueryUseCase
	companyRepo repository.CompanyRepository
	pdf         ports.ExpenseReportPDFGenerator
}

// NewReportUseCase construye el generador de reportes.
func NewReportUseCase(query *QueryUseCase, companyRepo repository.CompanyRepository, pdf ports.ExpenseReportPDFGenerator) *ReportUseCase {
	return &ReportUseCase{query: query, companyRepo: companyRepo, pdf: pdf}
}

// GeneratePDF devuelve los bytes del PDF con el listado del actor.
func (uc *ReportUseCase) GeneratePDF(ctx context.Context, actor *entity.User, q dto.ListExpensesQuery) ([]byte, error) {
	company, err := uc.companyRepo.GetByID(actor.CompanyID)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.ErrNotFound
	}
	expenses, err := uc.query.List(ctx, actor, q)
	if err != nil {
		return nil, err
	}
	return uc.pdf.GenerateExpenseReport(ctx, company.Name, company.Currency, expenses)
}
