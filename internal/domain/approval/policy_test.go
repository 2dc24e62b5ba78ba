package approval_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/Gastos-api/internal/domain"
	"github.com/jhoicas/Gastos-api/internal/domain/approval"
	"github.com/jhoicas/Gastos-api/internal/domain/entity"
)

// El aprobador en la posición CurrentApproverIndex está autorizado.
func TestAdminOverridePolicy_AprobadorActualAutorizado(t *testing.T) {
	actor := &entity.User{ID: "u2", Role: entity.RoleManager}
	exp := &entity.Expense{CurrentApproverIndex: 1}

	err := approval.AdminOverridePolicy(actor, exp, []string{"u1", "u2", "u3"})
	assert.NoError(t, err)
}

// Cualquier otro usuario (aunque esté en la secuencia en otra posición) no.
func TestAdminOverridePolicy_NoEsElAprobadorActual(t *testing.T) {
	actor := &entity.User{ID: "u3", Role: entity.RoleManager}
	exp := &entity.Expense{CurrentApproverIndex: 1}

	err := approval.AdminOverridePolicy(actor, exp, []string{"u1", "u2", "u3"})
	assert.ErrorIs(t, err, domain.ErrNotCurrentApprover)
}

// Un Admin está autorizado en cualquier posición, esté o no en la secuencia.
func TestAdminOverridePolicy_AdminSiempreAutorizado(t *testing.T) {
	actor := &entity.User{ID: "admin", Role: entity.RoleAdmin}
	exp := &entity.Expense{CurrentApproverIndex: 1}

	err := approval.AdminOverridePolicy(actor, exp, []string{"u1", "u2"})
	assert.NoError(t, err, "el Admin puede decidir sin ser el aprobador actual")
}

// Índice fuera de rango: ApproverAt devuelve vacío y nadie (salvo Admin) coincide.
func TestAdminOverridePolicy_IndiceFueraDeRango(t *testing.T) {
	exp := &entity.Expense{CurrentApproverIndex: 5}

	manager := &entity.User{ID: "u1", Role: entity.RoleManager}
	assert.ErrorIs(t, approval.AdminOverridePolicy(manager, exp, []string{"u1"}), domain.ErrNotCurrentApprover)

	admin := &entity.User{ID: "admin", Role: entity.RoleAdmin}
	assert.NoError(t, approval.AdminOverridePolicy(admin, exp, []string{"u1"}))
}
