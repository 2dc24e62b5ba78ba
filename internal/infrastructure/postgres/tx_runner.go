package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/Gastos-api/internal/application/expense"
	"github.com/jhoicas/Gastos-api/internal/domain/repository"
)

var _ expense.DecisionTxRunner = (*TxRunner)(nil)

// TxRunner ejecuta unidades de trabajo de decisión dentro de una sola
// transacción. Junto con SELECT ... FOR UPDATE garantiza que un gasto
// solo tenga una transición de estado a la vez.
type TxRunner struct {
	pool *pgxpool.Pool
}

func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia una transacción, ejecuta fn con repos atados a la tx y hace
// Commit si fn retorna nil o Rollback en caso contrario.
func (t *TxRunner) Run(ctx context.Context, fn func(expenses repository.ExpenseRepository, approvals repository.ApprovalRepository) error) error {
	tx, err := t.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback(ctx)

	if err := fn(NewExpenseRepository(tx), NewApprovalRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}
