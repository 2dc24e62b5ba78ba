package expense

import (
	"context"

	"github.com/jhoicas/Gastos-api/internal/domain/repository"
)

// DecisionTxRunner ejecuta la secuencia leer-evaluar-escribir de una decisión
// dentro de una transacción, con repos atados a la tx. La implementación
// Postgres bloquea la fila del gasto (FOR UPDATE) para que a lo sumo una
// transición por gasto haga commit, incluso con dos Admin simultáneos.
type DecisionTxRunner interface {
	Run(ctx context.Context, fn func(
		expenses repository.ExpenseRepository,
		approvals repository.ApprovalRepository,
	) error) error
}
