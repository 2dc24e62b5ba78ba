package expense

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/jhoicas/Gastos-api/internal/application/dto"
	"github.com/jhoicas/Gastos-api/internal/domain"
	"github.com/jhoicas/Gastos-api/internal/domain/approval"
	"github.com/jhoicas/Gastos-api/internal/domain/entity"
	"github.com/jhoicas/Gastos-api/internal/domain/repository"
)

// DecisionUseCase es el motor de decisiones del flujo de aprobación.
//
// Máquina de estados: Pending (inicial) → Approved | Rejected (terminales);
// ninguna transición sale de un estado terminal. La secuencia efectiva de
// aprobadores se recalcula en cada decisión (ver approval.DynamicResolver) y
// la autorización es una política inyectada (Admin override por defecto).
//
// Cada decisión corre dentro de una transacción con la fila del gasto
// bloqueada: o hace commit la decisión completa (estado + índice + registro
// de auditoría) o no se escribe nada.
type DecisionUseCase struct {
	tx       DecisionTxRunner
	ruleRepo repository.ApprovalRuleRepository
	resolver approval.Resolver
	policy   approval.DecisionPolicy
	log      zerolog.Logger
}

// NewDecisionUseCase construye el motor de decisiones.
func NewDecisionUseCase(
	tx DecisionTxRunner,
	ruleRepo repository.ApprovalRuleRepository,
	resolver approval.Resolver,
	policy approval.DecisionPolicy,
	log zerolog.Logger,
) *DecisionUseCase {
	return &DecisionUseCase{tx: tx, ruleRepo: ruleRepo, resolver: resolver, policy: policy, log: log}
}

// Approve registra la aprobación de actor sobre el gasto y avanza o finaliza.
//
// Precondiciones: el gasto existe en la empresa del actor (ErrNotFound); hay
// regla configurada (ErrRulesNotConfigured); la secuencia efectiva no está
// vacía (ErrNoApprovers). Autorización vía policy. El gasto queda Approved si
// nextIndex alcanza el final de la secuencia O la auto-aprobación se satisface
// sobre TODO el historial; si no, sigue Pending con el índice avanzado.
func (uc *DecisionUseCase) Approve(ctx context.Context, expenseID string, actor *entity.User) (*dto.ExpenseResponse, error) {
	var out *dto.ExpenseResponse
	err := uc.tx.Run(ctx, func(expenses repository.ExpenseRepository, approvals repository.ApprovalRepository) error {
		exp, rule, approvers, err := uc.loadForDecision(expenses, expenseID, actor)
		if err != nil {
			return err
		}

		now := time.Now()
		record := &entity.Approval{
			ID:         uuid.New().String(),
			ExpenseID:  exp.ID,
			ApproverID: actor.ID,
			Action:     entity.ActionApproved,
			CreatedAt:  now,
		}
		if err := approvals.Create(record); err != nil {
			return err
		}

		nextIndex := exp.CurrentApproverIndex + 1

		// La auto-aprobación se evalúa sobre todos los registros históricos
		// del gasto, no solo la decisión de esta llamada.
		history, err := approvals.ListByExpense(exp.ID)
		if err != nil {
			return err
		}
		autoApprove := approval.AutoApprove(rule, history, len(approvers))

		if nextIndex >= len(approvers) || autoApprove {
			exp.MarkApproved(now)
			uc.log.Info().
				Str("expense_id", exp.ID).
				Bool("auto_approve", autoApprove).
				Msg("gasto aprobado")
		} else {
			exp.AdvanceTo(nextIndex, now)
		}
		if err := expenses.Update(exp); err != nil {
			return err
		}
		out = toExpenseResponse(exp)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Reject registra el rechazo de actor sobre el gasto. El comentario es
// obligatorio (no vacío tras trim). El gasto pasa a Rejected incondicionalmente:
// no se solicitan más aprobaciones.
func (uc *DecisionUseCase) Reject(ctx context.Context, expenseID string, actor *entity.User, comment string) (*dto.ExpenseResponse, error) {
	comment = strings.TrimSpace(comment)
	if comment == "" {
		return nil, domain.ErrCommentRequired
	}

	var out *dto.ExpenseResponse
	err := uc.tx.Run(ctx, func(expenses repository.ExpenseRepository, approvals repository.ApprovalRepository) error {
		exp, _, _, err := uc.loadForDecision(expenses, expenseID, actor)
		if err != nil {
			return err
		}

		now := time.Now()
		record := &entity.Approval{
			ID:         uuid.New().String(),
			ExpenseID:  exp.ID,
			ApproverID: actor.ID,
			Action:     entity.ActionRejected,
			Comment:    comment,
			CreatedAt:  now,
		}
		if err := approvals.Create(record); err != nil {
			return err
		}

		exp.MarkRejected(now)
		if err := expenses.Update(exp); err != nil {
			return err
		}
		uc.log.Info().Str("expense_id", exp.ID).Str("approver_id", actor.ID).Msg("gasto rechazado")
		out = toExpenseResponse(exp)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// loadForDecision carga el gasto con lock de fila y valida las precondiciones
// comunes de approve/reject: pertenencia a la empresa, regla configurada,
// secuencia no vacía, gasto no finalizado y autorización del actor.
func (uc *DecisionUseCase) loadForDecision(
	expenses repository.ExpenseRepository,
	expenseID string,
	actor *entity.User,
) (*entity.Expense, *entity.ApprovalRule, []string, error) {
	exp, err := expenses.GetByIDForUpdate(expenseID)
	if err != nil {
		return nil, nil, nil, err
	}
	if exp == nil || exp.CompanyID != actor.CompanyID {
		return nil, nil, nil, domain.ErrNotFound
	}

	rule, err := uc.ruleRepo.FirstByCompany(actor.CompanyID)
	if err != nil {
		return nil, nil, nil, err
	}
	if rule == nil {
		return nil, nil, nil, domain.ErrRulesNotConfigured
	}

	approvers, err := uc.resolver.EffectiveApprovers(exp, rule)
	if err != nil {
		return nil, nil, nil, err
	}
	if len(approvers) == 0 {
		return nil, nil, nil, domain.ErrNoApprovers
	}

	if exp.IsFinal() {
		return nil, nil, nil, domain.ErrExpenseFinalized
	}
	if err := uc.policy(actor, exp, approvers); err != nil {
		return nil, nil, nil, err
	}
	return exp, rule, approvers, nil
}
