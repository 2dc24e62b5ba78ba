package approval_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Gastos-api/internal/domain/approval"
	"github.com/jhoicas/Gastos-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

// fakeDirectory directorio de usuarios en memoria para el resolver.
type fakeDirectory struct {
	users map[string]*entity.User
}

func (d *fakeDirectory) GetByID(id string) (*entity.User, error) {
	return d.users[id], nil
}

func directoryWith(users ...*entity.User) *fakeDirectory {
	d := &fakeDirectory{users: map[string]*entity.User{}}
	for _, u := range users {
		d.users[u.ID] = u
	}
	return d
}

func strPtr(s string) *string { return &s }

// ──────────────────────────────────────────────────────────────────────────────
// Tests EffectiveApprovers
// ──────────────────────────────────────────────────────────────────────────────

// Sin manager approver, la secuencia es la lista base tal cual (orden y duplicados).
func TestEffectiveApprovers_SinManagerDevuelveListaBase(t *testing.T) {
	emp := &entity.User{ID: "emp", Role: entity.RoleEmployee}
	r := approval.NewDynamicResolver(directoryWith(emp))

	rule := &entity.ApprovalRule{
		Kind:      entity.RuleKindPercentage,
		Approvers: []string{"u1", "u2", "u1"},
	}
	exp := &entity.Expense{EmployeeID: "emp"}

	seq, err := r.EffectiveApprovers(exp, rule)
	require.NoError(t, err)
	assert.Equal(t, []string{"u1", "u2", "u1"}, seq,
		"la lista base debe preservar orden y duplicados")
}

// Con IsManagerApprover, el manager del empleado ocupa la posición 0.
func TestEffectiveApprovers_ManagerAntepuestoEnPosicionCero(t *testing.T) {
	emp := &entity.User{ID: "emp", Role: entity.RoleEmployee, ManagerID: strPtr("mgr")}
	r := approval.NewDynamicResolver(directoryWith(emp))

	rule := &entity.ApprovalRule{
		Kind:              entity.RuleKindPercentage,
		IsManagerApprover: true,
		Approvers:         []string{"u1", "u2"},
	}
	exp := &entity.Expense{EmployeeID: "emp"}

	seq, err := r.EffectiveApprovers(exp, rule)
	require.NoError(t, err)
	assert.Equal(t, []string{"mgr", "u1", "u2"}, seq)
}

// Si el manager ya estaba en la lista base, se dedupe: una sola ocurrencia,
// en la posición 0.
func TestEffectiveApprovers_ManagerDeduplicadoDeListaBase(t *testing.T) {
	emp := &entity.User{ID: "emp", Role: entity.RoleEmployee, ManagerID: strPtr("mgr")}
	r := approval.NewDynamicResolver(directoryWith(emp))

	rule := &entity.ApprovalRule{
		Kind:              entity.RuleKindHybrid,
		IsManagerApprover: true,
		Approvers:         []string{"u1", "mgr", "u2", "mgr"},
	}
	exp := &entity.Expense{EmployeeID: "emp"}

	seq, err := r.EffectiveApprovers(exp, rule)
	require.NoError(t, err)
	assert.Equal(t, []string{"mgr", "u1", "u2"}, seq,
		"el manager debe aparecer una sola vez, en la posición 0")
}

// Empleado sin manager: IsManagerApprover no altera la lista base.
func TestEffectiveApprovers_EmpleadoSinManager(t *testing.T) {
	emp := &entity.User{ID: "emp", Role: entity.RoleEmployee}
	r := approval.NewDynamicResolver(directoryWith(emp))

	rule := &entity.ApprovalRule{
		Kind:              entity.RuleKindPercentage,
		IsManagerApprover: true,
		Approvers:         []string{"u1"},
	}
	exp := &entity.Expense{EmployeeID: "emp"}

	seq, err := r.EffectiveApprovers(exp, rule)
	require.NoError(t, err)
	assert.Equal(t, []string{"u1"}, seq)
}

// Lista base vacía y sin manager: secuencia vacía es un resultado válido.
func TestEffectiveApprovers_SecuenciaVacia(t *testing.T) {
	emp := &entity.User{ID: "emp", Role: entity.RoleEmployee}
	r := approval.NewDynamicResolver(directoryWith(emp))

	rule := &entity.ApprovalRule{Kind: entity.RuleKindPercentage}
	exp := &entity.Expense{EmployeeID: "emp"}

	seq, err := r.EffectiveApprovers(exp, rule)
	require.NoError(t, err)
	assert.Empty(t, seq)
}

// La secuencia se recalcula en cada llamada: cambiar el manager del empleado
// entre llamadas cambia la secuencia de un gasto en vuelo.
func TestEffectiveApprovers_RecalculoDinamicoTrasCambioDeManager(t *testing.T) {
	emp := &entity.User{ID: "emp", Role: entity.RoleEmployee, ManagerID: strPtr("mgr1")}
	dir := directoryWith(emp)
	r := approval.NewDynamicResolver(dir)

	rule := &entity.ApprovalRule{
		Kind:              entity.RuleKindPercentage,
		IsManagerApprover: true,
		Approvers:         []string{"u1"},
	}
	exp := &entity.Expense{EmployeeID: "emp"}

	seq1, err := r.EffectiveApprovers(exp, rule)
	require.NoError(t, err)
	assert.Equal(t, []string{"mgr1", "u1"}, seq1)

	// Reasignación de manager con el gasto en vuelo.
	emp.ManagerID = strPtr("mgr2")

	seq2, err := r.EffectiveApprovers(exp, rule)
	require.NoError(t, err)
	assert.Equal(t, []string{"mgr2", "u1"}, seq2,
		"la secuencia debe reflejar el manager actual, no el del momento del envío")
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests ApproverAt
// ──────────────────────────────────────────────────────────────────────────────

func TestApproverAt_IndiceFueraDeRango(t *testing.T) {
	seq := []string{"u1", "u2"}

	assert.Equal(t, "u1", approval.ApproverAt(seq, 0))
	assert.Equal(t, "u2", approval.ApproverAt(seq, 1))
	assert.Equal(t, "", approval.ApproverAt(seq, 2), "índice pasado el final -> vacío")
	assert.Equal(t, "", approval.ApproverAt(seq, -1))
	assert.Equal(t, "", approval.ApproverAt(nil, 0))
}
