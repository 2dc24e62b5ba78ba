package repository

import (
	"time"

	"github.com/jhoicas/Gastos-api/internal/domain/entity"
)

// ExpenseFilter filtros opcionales para listados de gastos.
type ExpenseFilter struct {
	// EmployeeIDs limita la visibilidad a estos empleados (nil = toda la empresa).
	EmployeeIDs []string
	// EmployeeID filtro exacto pedido por query param (vacío = sin filtro).
	EmployeeID string
	Status     string
	FromDate   *time.Time
	ToDate     *time.Time
}

// ExpenseRepository define el puerto de persistencia para Expense.
type ExpenseRepository interface {
	Create(expense *entity.Expense) error
	GetByID(id string) (*entity.Expense, error)
	// GetByIDForUpdate obtiene el gasto bloqueando su fila durante la
	// transacción en curso (SELECT ... FOR UPDATE). Solo tiene sentido sobre
	// un repo atado a una tx; garantiza a-lo-sumo-una transición por gasto.
	GetByIDForUpdate(id string) (*entity.Expense, error)
	Update(expense *entity.Expense) error
	// ListByCompany lista gastos de la empresa, más recientes primero.
	ListByCompany(companyID string, filter ExpenseFilter) ([]*entity.Expense, error)
}
