package expense

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"github.com/jhoicas/Gastos-api/internal/application/dto"
	"github.com/jhoicas/Gastos-api/internal/application/ports"
	"github.com/jhoicas/Gastos-api/internal/domain"
	"github.com/jhoicas/Gastos-api/internal/domain/entity"
	"github.com/jhoicas/Gastos-api/internal/domain/repository"
)

// QueryUseCase lecturas de gastos: listado con visibilidad por rol, detalle
// por ID (scoped a la empresa) e historial de decisiones del aprobador.
type QueryUseCase struct {
	expenseRepo  repository.ExpenseRepository
	userRepo     repository.UserRepository
	approvalRepo repository.ApprovalRepository
	converter    ports.CurrencyConverter
	log          zerolog.Logger
}

// NewQueryUseCase construye las consultas de gastos.
func NewQueryUseCase(
	expenseRepo repository.ExpenseRepository,
	userRepo repository.UserRepository,
	approvalRepo repository.ApprovalRepository,
	converter ports.CurrencyConverter,
	log zerolog.Logger,
) *QueryUseCase {
	return &QueryUseCase{
		expenseRepo:  expenseRepo,
		userRepo:     userRepo,
		approvalRepo: approvalRepo,
		converter:    converter,
		log:          log,
	}
}

// List lista gastos según la visibilidad del rol: Employee ve los propios;
// Manager los propios + los de sus reportes directos; Admin toda la empresa.
// Si target_currency viene, adjunta un monto de visualización por gasto; una
// conversión fallida deja DisplayAmount en nil sin tumbar el listado.
func (uc *QueryUseCase) List(ctx context.Context, actor *entity.User, q dto.ListExpensesQuery) ([]dto.ExpenseResponse, error) {
	filter := repository.ExpenseFilter{EmployeeID: q.EmployeeID}

	switch actor.Role {
	case entity.RoleEmployee:
		filter.EmployeeIDs = []string{actor.ID}
	case entity.RoleManager:
		team, err := uc.userRepo.ListByManager(actor.ID)
		if err != nil {
			return nil, err
		}
		visible := make([]string, 0, len(team)+1)
		visible = append(visible, actor.ID)
		for _, u := range team {
			visible = append(visible, u.ID)
		}
		filter.EmployeeIDs = visible
	}

	if q.FromDate != "" {
		t, err := parseDate(q.FromDate)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
		filter.FromDate = &t
	}
	if q.ToDate != "" {
		t, err := parseDate(q.ToDate)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
		filter.ToDate = &t
	}

	list, err := uc.expenseRepo.ListByCompany(actor.CompanyID, filter)
	if err != nil {
		return nil, err
	}

	out := make([]dto.ExpenseResponse, 0, len(list))
	target := strings.ToUpper(strings.TrimSpace(q.TargetCurrency))
	for _, e := range list {
		resp := *toExpenseResponse(e)
		if target != "" {
			resp.DisplayCurrency = target
			if display, err := uc.converter.Convert(ctx, e.Amount, e.Currency, target); err == nil {
				resp.DisplayAmount = &display
			} else {
				uc.log.Warn().Err(err).Str("expense_id", e.ID).Msg("conversión de visualización fallida")
			}
		}
		out = append(out, resp)
	}
	return out, nil
}

// GetByID devuelve un gasto de la empresa del actor, o ErrNotFound.
func (uc *QueryUseCase) GetByID(actor *entity.User, expenseID string) (*dto.ExpenseResponse, error) {
	exp, err := uc.expenseRepo.GetByID(expenseID)
	if err != nil {
		return nil, err
	}
	if exp == nil || exp.CompanyID != actor.CompanyID {
		return nil, domain.ErrNotFound
	}
	return toExpenseResponse(exp), nil
}

// History devuelve las decisiones del actor, más recientes primero, con el
// gasto y un resumen del empleado embebidos.
func (uc *QueryUseCase) History(actor *entity.User) ([]dto.HistoryItemResponse, error) {
	items, err := uc.approvalRepo.ListByApprover(actor.ID, actor.CompanyID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.HistoryItemResponse, 0, len(items))
	for _, it := range items {
		out = append(out, dto.HistoryItemResponse{
			ID:        it.Approval.ID,
			Action:    it.Approval.Action,
			Comment:   it.Approval.Comment,
			Timestamp: it.Approval.CreatedAt,
			Expense: dto.HistoryExpense{
				ID:              it.Expense.ID,
				Amount:          it.Expense.Amount,
				Currency:        it.Expense.Currency,
				ConvertedAmount: it.Expense.ConvertedAmount,
				Status:          it.Expense.Status,
				Date:            it.Expense.Date,
				Employee: dto.EmployeeSummary{
					ID:    it.Expense.EmployeeID,
					Name:  it.EmployeeName,
					Email: it.EmployeeEmail,
				},
			},
		})
	}
	return out, nil
}
