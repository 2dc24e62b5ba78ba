package expense_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Gastos-api/internal/application/expense"
	"github.com/jhoicas/Gastos-api/internal/domain/entity"
)

// Un Admin ve todos los gastos Pending de la empresa; los demás solo aquellos
// donde ocupan la posición actual de la secuencia.
func TestPending_VisibilidadPorRol(t *testing.T) {
	rule := &entity.ApprovalRule{ID: "rule-1", CompanyID: testCompanyID, Kind: entity.RuleKindPercentage}

	e0 := pendingExpense("e0", 0) // le toca a u1
	e1 := pendingExpense("e1", 1) // le toca a u2
	e2 := pendingExpense("e2", 0)
	e2.Status = entity.StatusApproved // finalizado: no aparece para nadie

	repo := newFakeExpenseRepo(e0, e1, e2)
	uc := expense.NewPendingUseCase(repo, &fakeRuleRepo{rule: rule}, &fakeResolver{seq: []string{"u1", "u2"}})

	t.Run("admin ve todos los pendientes", func(t *testing.T) {
		out, err := uc.Pending(admin("boss"))
		require.NoError(t, err)
		assert.Len(t, out, 2)
	})

	t.Run("aprobador ve solo los que le tocan", func(t *testing.T) {
		out, err := uc.Pending(manager("u2"))
		require.NoError(t, err)
		require.Len(t, out, 1)
		assert.Equal(t, "e1", out[0].ID)
	})

	t.Run("usuario fuera de la secuencia no ve nada", func(t *testing.T) {
		out, err := uc.Pending(manager("u9"))
		require.NoError(t, err)
		assert.Empty(t, out)
	})
}

// Sin regla configurada la bandeja es vacía, no un error.
func TestPending_SinReglaDevuelveVacio(t *testing.T) {
	repo := newFakeExpenseRepo(pendingExpense("e0", 0))
	uc := expense.NewPendingUseCase(repo, &fakeRuleRepo{}, &fakeResolver{seq: []string{"u1"}})

	out, err := uc.Pending(manager("u1"))
	require.NoError(t, err)
	assert.Empty(t, out)
}
