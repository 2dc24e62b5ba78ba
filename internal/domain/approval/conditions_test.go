package approval_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/Gastos-api/internal/domain/approval"
	"github.com/jhoicas/Gastos-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

func approvedBy(ids ...string) []*entity.Approval {
	out := make([]*entity.Approval, 0, len(ids))
	for _, id := range ids {
		out = append(out, &entity.Approval{ApproverID: id, Action: entity.ActionApproved})
	}
	return out
}

func pct(n int64) decimal.Decimal { return decimal.NewFromInt(n) }

// ──────────────────────────────────────────────────────────────────────────────
// Cláusula de porcentaje
// ──────────────────────────────────────────────────────────────────────────────

// El umbral es inclusivo: exactamente en la frontera se auto-aprueba.
func TestAutoApprove_PorcentajeFronteraInclusiva(t *testing.T) {
	rule := &entity.ApprovalRule{Kind: entity.RuleKindPercentage, Percentage: pct(60)}

	// 3 de 5 = 60% >= 60% -> sí
	assert.True(t, approval.AutoApprove(rule, approvedBy("a", "b", "c"), 5))
	// 2 de 5 = 40% < 60% -> no
	assert.False(t, approval.AutoApprove(rule, approvedBy("a", "b"), 5))
}

// Umbral que no divide exacto: 60% de 3 aprobadores exige 2 aprobaciones
// (2/3 = 66.6% >= 60), no 1 (33.3%).
func TestAutoApprove_PorcentajeSinDivisionExacta(t *testing.T) {
	rule := &entity.ApprovalRule{Kind: entity.RuleKindPercentage, Percentage: pct(60)}

	assert.False(t, approval.AutoApprove(rule, approvedBy("a"), 3))
	assert.True(t, approval.AutoApprove(rule, approvedBy("a", "b"), 3))
}

// Sin umbral definido aplica el 100%: solo se auto-aprueba con todos.
func TestAutoApprove_PorcentajePorDefectoCien(t *testing.T) {
	rule := &entity.ApprovalRule{Kind: entity.RuleKindPercentage}

	assert.False(t, approval.AutoApprove(rule, approvedBy("a", "b"), 3))
	assert.True(t, approval.AutoApprove(rule, approvedBy("a", "b", "c"), 3))
}

// Los rechazos del historial no cuentan para el porcentaje.
func TestAutoApprove_RechazosNoCuentan(t *testing.T) {
	rule := &entity.ApprovalRule{Kind: entity.RuleKindPercentage, Percentage: pct(50)}
	history := []*entity.Approval{
		{ApproverID: "a", Action: entity.ActionApproved},
		{ApproverID: "b", Action: entity.ActionRejected},
	}
	// 1 aprobación de 4 = 25% < 50%
	assert.False(t, approval.AutoApprove(rule, history, 4))
}

// Secuencia vacía: la cláusula de porcentaje nunca se satisface.
func TestAutoApprove_SinAprobadoresNoSatisface(t *testing.T) {
	rule := &entity.ApprovalRule{Kind: entity.RuleKindPercentage, Percentage: pct(50)}
	assert.False(t, approval.AutoApprove(rule, approvedBy("a"), 0))
}

// ──────────────────────────────────────────────────────────────────────────────
// Cláusula de aprobador designado
// ──────────────────────────────────────────────────────────────────────────────

// Se auto-aprueba si y solo si el designado aprobó en algún punto del historial.
func TestAutoApprove_AprobadorDesignado(t *testing.T) {
	cfo := "cfo"
	rule := &entity.ApprovalRule{Kind: entity.RuleKindSpecific, SpecificApproverID: &cfo}

	assert.False(t, approval.AutoApprove(rule, approvedBy("a", "b"), 5),
		"aprobaciones de otros no satisfacen la cláusula specific")
	assert.True(t, approval.AutoApprove(rule, approvedBy("a", "cfo"), 5))
}

// Un rechazo del designado no satisface la cláusula.
func TestAutoApprove_RechazoDelDesignadoNoSatisface(t *testing.T) {
	cfo := "cfo"
	rule := &entity.ApprovalRule{Kind: entity.RuleKindSpecific, SpecificApproverID: &cfo}
	history := []*entity.Approval{{ApproverID: "cfo", Action: entity.ActionRejected}}

	assert.False(t, approval.AutoApprove(rule, history, 5))
}

// Regla specific sin designado configurado: nunca se auto-aprueba por esta vía.
func TestAutoApprove_SpecificSinDesignado(t *testing.T) {
	rule := &entity.ApprovalRule{Kind: entity.RuleKindSpecific}
	assert.False(t, approval.AutoApprove(rule, approvedBy("a", "b", "c"), 3))
}

// ──────────────────────────────────────────────────────────────────────────────
// Híbrida: OR de ambas cláusulas
// ──────────────────────────────────────────────────────────────────────────────

// Híbrida 60% + designado=u7 sobre [u3, u7]: si u3 y luego otro alcanzan el
// umbral sin el designado, el porcentaje solo basta.
func TestAutoApprove_HibridaSoloPorcentaje(t *testing.T) {
	designado := "u7"
	rule := &entity.ApprovalRule{
		Kind:               entity.RuleKindHybrid,
		Percentage:         pct(60),
		SpecificApproverID: &designado,
	}

	// 1 de 2 = 50% < 60% y u7 no aprobó -> sigue pendiente
	assert.False(t, approval.AutoApprove(rule, approvedBy("u3"), 2))
	// 2 de 2 = 100% >= 60% -> aprobado por porcentaje aunque u7 no participó
	assert.True(t, approval.AutoApprove(rule, approvedBy("u3", "u9"), 2))
}

// Híbrida 60% + designado=u7: una sola aprobación de u7 basta aunque el
// porcentaje (1 de 2 = 50%) no alcance.
func TestAutoApprove_HibridaSoloDesignado(t *testing.T) {
	designado := "u7"
	rule := &entity.ApprovalRule{
		Kind:               entity.RuleKindHybrid,
		Percentage:         pct(60),
		SpecificApproverID: &designado,
	}

	assert.True(t, approval.AutoApprove(rule, approvedBy("u7"), 2))
}
