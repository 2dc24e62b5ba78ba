package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados del gasto. Pending es inicial; Approved y Rejected son terminales.
// Las transiciones son monótonas: Pending→Approved o Pending→Rejected, nada más.
const (
	StatusPending  = "Pending"
	StatusApproved = "Approved"
	StatusRejected = "Rejected"
)

// Expense representa un gasto enviado por un empleado.
//
// CurrentApproverIndex es un puntero posicional dentro de la secuencia efectiva
// de aprobadores, que se recalcula en cada llamada (ver approval.DynamicResolver);
// la secuencia puede cambiar de forma entre llamadas si la regla o el manager
// del empleado cambian. Riesgo de consistencia conocido y preservado a propósito.
type Expense struct {
	ID                   string
	EmployeeID           string
	CompanyID            string
	Amount               decimal.Decimal
	Currency             string // divisa origen
	ConvertedAmount      decimal.Decimal // en la divisa de la empresa
	Category             string
	Description          string
	Date                 time.Time
	Status               string // Pending, Approved, Rejected
	CurrentApproverIndex int    // posición del PRÓXIMO aprobador requerido
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

// IsFinal indica si el gasto alcanzó un estado terminal.
func (e *Expense) IsFinal() bool {
	return e.Status == StatusApproved || e.Status == StatusRejected
}

// MarkApproved finaliza el gasto como Approved. No-op inseguro evitado:
// devuelve false si ya era terminal (el caller decide cómo reportarlo).
func (e *Expense) MarkApproved(now time.Time) bool {
	if e.IsFinal() {
		return false
	}
	e.Status = StatusApproved
	e.UpdatedAt = now
	return true
}

// MarkRejected finaliza el gasto como Rejected.
func (e *Expense) MarkRejected(now time.Time) bool {
	if e.IsFinal() {
		return false
	}
	e.Status = StatusRejected
	e.UpdatedAt = now
	return true
}

// AdvanceTo mueve el puntero al siguiente aprobador, sin tocar el estado.
// Solo válido mientras el gasto sigue Pending.
func (e *Expense) AdvanceTo(nextIndex int, now time.Time) bool {
	if e.IsFinal() || nextIndex < 0 {
		return false
	}
	e.CurrentApproverIndex = nextIndex
	e.UpdatedAt = now
	return true
}
