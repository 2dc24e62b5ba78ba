package expense

import (
	"github.com/jhoicas/Gastos-api/internal/application/dto"
	"github.com/jhoicas/Gastos-api/internal/domain/approval"
	"github.com/jhoicas/Gastos-api/internal/domain/entity"
	"github.com/jhoicas/Gastos-api/internal/domain/repository"
)

// PendingUseCase construye la lista de trabajo de aprobaciones pendientes de
// un usuario. Debe servirse sin caché (el handler fija los headers no-cache)
// para que la lista refleje siempre el estado actual.
type PendingUseCase struct {
	expenseRepo repository.ExpenseRepository
	ruleRepo    repository.ApprovalRuleRepository
	resolver    approval.Resolver
}

// NewPendingUseCase construye la consulta de pendientes.
func NewPendingUseCase(
	expenseRepo repository.ExpenseRepository,
	ruleRepo repository.ApprovalRuleRepository,
	resolver approval.Resolver,
) *PendingUseCase {
	return &PendingUseCase{expenseRepo: expenseRepo, ruleRepo: ruleRepo, resolver: resolver}
}

// Pending devuelve los gastos Pending de la empresa, más recientes primero:
// todos para un Admin (visibilidad de override); para el resto, solo aquellos
// donde el usuario ocupa la posición CurrentApproverIndex de la secuencia
// efectiva, recalculada gasto por gasto.
func (uc *PendingUseCase) Pending(actor *entity.User) ([]dto.ExpenseResponse, error) {
	rule, err := uc.ruleRepo.FirstByCompany(actor.CompanyID)
	if err != nil {
		return nil, err
	}
	if rule == nil {
		return []dto.ExpenseResponse{}, nil
	}

	candidates, err := uc.expenseRepo.ListByCompany(actor.CompanyID, repository.ExpenseFilter{
		Status: entity.StatusPending,
	})
	if err != nil {
		return nil, err
	}

	out := make([]dto.ExpenseResponse, 0, len(candidates))
	if actor.IsAdmin() {
		for _, e := range candidates {
			out = append(out, *toExpenseResponse(e))
		}
		return out, nil
	}

	for _, e := range candidates {
		eff, err := uc.resolver.EffectiveApprovers(e, rule)
		if err != nil {
			return nil, err
		}
		if approval.ApproverAt(eff, e.CurrentApproverIndex) == actor.ID {
			out = append(out, *toExpenseResponse(e))
		}
	}
	return out, nil
}
