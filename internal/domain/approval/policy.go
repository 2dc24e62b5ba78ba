package approval

import (
	"github.com/jhoicas/Gastos-api/internal/domain"
	"github.com/jhoicas/Gastos-api/internal/domain/entity"
)

// DecisionPolicy decide si actor puede registrar la próxima decisión sobre un
// gasto dada la secuencia efectiva de aprobadores. Devuelve nil si está
// autorizado. Se inyecta en el motor de decisiones para poder testear la
// autorización aislada de los handlers.
type DecisionPolicy func(actor *entity.User, expense *entity.Expense, approvers []string) error

// AdminOverridePolicy es la política por defecto: un Admin siempre está
// autorizado (override); cualquier otro usuario debe coincidir con el
// aprobador en la posición CurrentApproverIndex de la secuencia.
func AdminOverridePolicy(actor *entity.User, expense *entity.Expense, approvers []string) error {
	if actor.IsAdmin() {
		return nil
	}
	if ApproverAt(approvers, expense.CurrentApproverIndex) != actor.ID {
		return domain.ErrNotCurrentApprover
	}
	return nil
}
