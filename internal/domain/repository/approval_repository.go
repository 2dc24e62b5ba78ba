package repository

import "github.com/jhoicas/Gastos-api/internal/domain/entity"

// ApprovalHistoryItem es la vista compuesta del historial de decisiones de un
// aprobador: el registro junto con el gasto y un resumen del empleado.
type ApprovalHistoryItem struct {
	Approval      *entity.Approval
	Expense       *entity.Expense
	EmployeeName  string
	EmployeeEmail string
}

// ApprovalRepository define el puerto de persistencia para el registro
// append-only de decisiones.
type ApprovalRepository interface {
	Create(approval *entity.Approval) error
	// ListByExpense devuelve TODO el historial de decisiones del gasto, en
	// orden de inserción (lo consume la evaluación de auto-aprobación).
	ListByExpense(expenseID string) ([]*entity.Approval, error)
	// ListByApprover devuelve el historial del aprobador dentro de su empresa,
	// más reciente primero.
	ListByApprover(approverID, companyID string) ([]*ApprovalHistoryItem, error)
}
