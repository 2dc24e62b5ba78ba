package entity

import "time"

// Acciones de un registro de aprobación.
const (
	ActionApproved = "Approved"
	ActionRejected = "Rejected"
)

// Approval es el registro de auditoría de una decisión sobre un gasto.
// Append-only: un registro por evento de decisión; un gasto puede acumular
// varios registros (el historial sobrevive incluso a la auto-aprobación).
type Approval struct {
	ID         string
	ExpenseID  string
	ApproverID string
	Action     string // Approved, Rejected
	Comment    string // requerido no vacío cuando Action = Rejected
	CreatedAt  time.Time
}
