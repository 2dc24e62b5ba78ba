package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de regla de aprobación.
const (
	RuleKindPercentage = "percentage" // umbral de % de aprobaciones
	RuleKindSpecific   = "specific"   // un aprobador designado basta
	RuleKindHybrid     = "hybrid"     // percentage OR specific
)

// DefaultPercentage umbral aplicado cuando la regla no define uno.
var DefaultPercentage = decimal.NewFromInt(100)

// ApprovalRule describe la política de aprobación de una empresa.
// Lógicamente existe una regla activa por empresa (constraint UNIQUE en la tabla);
// las lecturas devuelven la primera coincidencia.
type ApprovalRule struct {
	ID                 string
	CompanyID          string
	Kind               string          // percentage, specific, hybrid
	Percentage         decimal.Decimal // 0–100; relevante para percentage/hybrid
	SpecificApproverID *string         // relevante para specific/hybrid
	IsManagerApprover  bool            // antepone el manager del empleado a la secuencia
	Approvers          []string        // secuencia base ordenada de user IDs; duplicados permitidos
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// EffectivePercentage devuelve el umbral de la regla o DefaultPercentage si no está definido.
func (r *ApprovalRule) EffectivePercentage() decimal.Decimal {
	if r.Percentage.IsZero() {
		return DefaultPercentage
	}
	return r.Percentage
}

// UsesPercentage indica si la cláusula de porcentaje aplica para este tipo de regla.
func (r *ApprovalRule) UsesPercentage() bool {
	return r.Kind == RuleKindPercentage || r.Kind == RuleKindHybrid
}

// UsesSpecific indica si la cláusula de aprobador designado aplica para este tipo de regla.
func (r *ApprovalRule) UsesSpecific() bool {
	return r.Kind == RuleKindSpecific || r.Kind == RuleKindHybrid
}

// ValidKind valida el tipo de regla.
func ValidKind(kind string) bool {
	switch kind {
	case RuleKindPercentage, RuleKindSpecific, RuleKindHybrid:
		return true
	}
	return false
}
