package entity_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/Gastos-api/internal/domain/entity"
)

// Las transiciones son monótonas: un gasto terminal no vuelve a mutar.
func TestExpense_EstadosTerminalesInmutables(t *testing.T) {
	now := time.Now()

	e := &entity.Expense{Status: entity.StatusPending}
	assert.True(t, e.MarkRejected(now))
	assert.Equal(t, entity.StatusRejected, e.Status)

	// Aprobaciones posteriores no resucitan un gasto rechazado.
	assert.False(t, e.MarkApproved(now))
	assert.Equal(t, entity.StatusRejected, e.Status)
	assert.False(t, e.MarkRejected(now))

	e2 := &entity.Expense{Status: entity.StatusPending}
	assert.True(t, e2.MarkApproved(now))
	assert.False(t, e2.MarkRejected(now))
	assert.Equal(t, entity.StatusApproved, e2.Status)
}

// AdvanceTo solo mueve el puntero mientras el gasto sigue Pending.
func TestExpense_AdvanceToSoloEnPending(t *testing.T) {
	now := time.Now()

	e := &entity.Expense{Status: entity.StatusPending, CurrentApproverIndex: 0}
	assert.True(t, e.AdvanceTo(1, now))
	assert.Equal(t, 1, e.CurrentApproverIndex)

	assert.False(t, e.AdvanceTo(-1, now), "índice negativo rechazado")
	assert.Equal(t, 1, e.CurrentApproverIndex)

	e.MarkApproved(now)
	assert.False(t, e.AdvanceTo(2, now))
	assert.Equal(t, 1, e.CurrentApproverIndex,
		"el puntero no se mueve en un gasto finalizado")
}
