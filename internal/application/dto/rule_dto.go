package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateRuleRequest alta de regla de aprobación (Admin).
type CreateRuleRequest struct {
	Kind               string          `json:"kind"` // percentage, specific, hybrid
	Percentage         decimal.Decimal `json:"percentage"`
	SpecificApproverID *string         `json:"specific_approver_id,omitempty"`
	IsManagerApprover  bool            `json:"is_manager_approver"`
	Approvers          []string        `json:"approvers"`
}

// UpdateRuleRequest actualización parcial de la regla (Admin).
// Los punteros distinguen "no enviado" de "enviar en cero".
type UpdateRuleRequest struct {
	Kind               *string          `json:"kind,omitempty"`
	Percentage         *decimal.Decimal `json:"percentage,omitempty"`
	SpecificApproverID *string          `json:"specific_approver_id,omitempty"`
	IsManagerApprover  *bool            `json:"is_manager_approver,omitempty"`
	Approvers          []string         `json:"approvers,omitempty"`
}

// RuleResponse representación pública de la regla.
type RuleResponse struct {
	ID                 string          `json:"id"`
	CompanyID          string          `json:"company_id"`
	Kind               string          `json:"kind"`
	Percentage         decimal.Decimal `json:"percentage"`
	SpecificApproverID *string         `json:"specific_approver_id,omitempty"`
	IsManagerApprover  bool            `json:"is_manager_approver"`
	Approvers          []string        `json:"approvers"`
	CreatedAt          time.Time       `json:"created_at"`
	UpdatedAt          time.Time       `json:"updated_at"`
}
