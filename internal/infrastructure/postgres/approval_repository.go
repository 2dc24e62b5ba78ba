package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/Gastos-api/internal/domain/entity"
	"github.com/jhoicas/Gastos-api/internal/domain/repository"
)

var _ repository.ApprovalRepository = (*ApprovalRepo)(nil)

// ApprovalRepo implementación del puerto ApprovalRepository sobre PostgreSQL.
// La tabla approvals es append-only: nunca hay UPDATE ni DELETE.
type ApprovalRepo struct {
	q Querier
}

// NewApprovalRepository construye el adaptador. Pasar pool o tx (Querier).
func NewApprovalRepository(q Querier) *ApprovalRepo {
	return &ApprovalRepo{q: q}
}

// Create persiste un registro de decisión.
func (r *ApprovalRepo) Create(approval *entity.Approval) error {
	query := `
		INSERT INTO approvals (id, expense_id, approver_id, action, comment, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		approval.ID, approval.ExpenseID, approval.ApproverID, approval.Action,
		approval.Comment, approval.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert approval: %w", err)
	}
	return nil
}

// ListByExpense devuelve todo el historial del gasto en orden de inserción.
func (r *ApprovalRepo) ListByExpense(expenseID string) ([]*entity.Approval, error) {
	query := `
		SELECT id, expense_id, approver_id, action, comment, created_at
		FROM approvals WHERE expense_id = $1 ORDER BY created_at ASC`
	rows, err := r.q.Query(context.Background(), query, expenseID)
	if err != nil {
		return nil, fmt.Errorf("list approvals: %w", err)
	}
	defer rows.Close()
	var list []*entity.Approval
	for rows.Next() {
		var a entity.Approval
		if err := rows.Scan(&a.ID, &a.ExpenseID, &a.ApproverID, &a.Action, &a.Comment, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan approval: %w", err)
		}
		list = append(list, &a)
	}
	return list, rows.Err()
}

// ListByApprover devuelve el historial del aprobador dentro de su empresa,
// más reciente primero, con el gasto y el empleado embebidos.
func (r *ApprovalRepo) ListByApprover(approverID, companyID string) ([]*repository.ApprovalHistoryItem, error) {
	query := `
		SELECT a.id, a.expense_id, a.approver_id, a.action, a.comment, a.created_at,
		       e.id, e.employee_id, e.company_id, e.amount, e.currency, e.converted_amount,
		       e.category, e.description, e.date, e.status, e.current_approver_index,
		       e.created_at, e.updated_at,
		       u.name, u.email
		FROM approvals a
		JOIN expenses e ON e.id = a.expense_id
		JOIN users u ON u.id = e.employee_id
		WHERE a.approver_id = $1 AND e.company_id = $2
		ORDER BY a.created_at DESC`
	rows, err := r.q.Query(context.Background(), query, approverID, companyID)
	if err != nil {
		return nil, fmt.Errorf("list approvals by approver: %w", err)
	}
	defer rows.Close()
	var list []*repository.ApprovalHistoryItem
	for rows.Next() {
		var a entity.Approval
		var e entity.Expense
		var item repository.ApprovalHistoryItem
		if err := rows.Scan(
			&a.ID, &a.ExpenseID, &a.ApproverID, &a.Action, &a.Comment, &a.CreatedAt,
			&e.ID, &e.EmployeeID, &e.CompanyID, &e.Amount, &e.Currency, &e.ConvertedAmount,
			&e.Category, &e.Description, &e.Date, &e.Status, &e.CurrentApproverIndex,
			&e.CreatedAt, &e.UpdatedAt,
			&item.EmployeeName, &item.EmployeeEmail,
		); err != nil {
			return nil, fmt.Errorf("scan approval history: %w", err)
		}
		item.Approval = &a
		item.Expense = &e
		list = append(list, &item)
	}
	return list, rows.Err()
}
