package entity

import "time"

// Company representa una organización/tenant del sistema. Todos los gastos de
// sus empleados se convierten a su divisa base.
type Company struct {
	ID        string
	Name      string
	Country   string
	Currency  string // código ISO 4217 (USD, COP, EUR, ...)
	CreatedAt time.Time
	UpdatedAt time.Time
}
