package postgres

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Gastos-api/internal/domain/entity"
	"github.com/jhoicas/Gastos-api/internal/domain/repository"
)

var _ repository.ExpenseRepository = (*ExpenseRepo)(nil)

// ExpenseRepo implementación del puerto ExpenseRepository sobre PostgreSQL.
type ExpenseRepo struct {
	q Querier
}

// NewExpenseRepository construye el adaptador. Pasar pool o tx (Querier).
func NewExpenseRepository(q Querier) *ExpenseRepo {
	return &ExpenseRepo{q: q}
}

const expenseColumns = `id, employee_id, company_id, amount, currency, converted_amount, category, description, date, status, current_approver_index, created_at, updated_at`

// Create persiste un nuevo gasto.
func (r *ExpenseRepo) Create(expense *entity.Expense) error {
	query := `
		INSERT INTO expenses (id, employee_id, company_id, amount, currency, converted_amount, category, description, date, status, current_approver_index, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err := r.q.Exec(context.Background(), query,
		expense.ID, expense.EmployeeID, expense.CompanyID, expense.Amount, expense.Currency,
		expense.ConvertedAmount, expense.Category, expense.Description, expense.Date,
		expense.Status, expense.CurrentApproverIndex, expense.CreatedAt, expense.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert expense: %w", err)
	}
	return nil
}

// GetByID obtiene un gasto por ID.
func (r *ExpenseRepo) GetByID(id string) (*entity.Expense, error) {
	query := `SELECT ` + expenseColumns + ` FROM expenses WHERE id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id), "get expense by id")
}

// GetByIDForUpdate obtiene el gasto bloqueando su fila hasta el fin de la tx.
// Serializa las decisiones concurrentes sobre el mismo gasto: el segundo
// approve espera el commit del primero y evalúa contra el índice ya confirmado.
func (r *ExpenseRepo) GetByIDForUpdate(id string) (*entity.Expense, error) {
	query := `SELECT ` + expenseColumns + ` FROM expenses WHERE id = $1 FOR UPDATE`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id), "get expense for update")
}

// Update persiste estado e índice del gasto.
func (r *ExpenseRepo) Update(expense *entity.Expense) error {
	query := `
		UPDATE expenses SET status = $2, current_approver_index = $3, updated_at = $4
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		expense.ID, expense.Status, expense.CurrentApproverIndex, expense.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update expense: %w", err)
	}
	return nil
}

// ListByCompany lista gastos de la empresa con filtros opcionales, más
// recientes primero (por orden de creación).
func (r *ExpenseRepo) ListByCompany(companyID string, filter repository.ExpenseFilter) ([]*entity.Expense, error) {
	var sb strings.Builder
	sb.WriteString(`SELECT ` + expenseColumns + ` FROM expenses WHERE company_id = $1`)
	args := []any{companyID}

	next := func(v any) string {
		args = append(args, v)
		return "$" + strconv.Itoa(len(args))
	}

	if len(filter.EmployeeIDs) > 0 {
		sb.WriteString(` AND employee_id = ANY(` + next(filter.EmployeeIDs) + `)`)
	}
	if filter.EmployeeID != "" {
		sb.WriteString(` AND employee_id = ` + next(filter.EmployeeID))
	}
	if filter.Status != "" {
		sb.WriteString(` AND status = ` + next(filter.Status))
	}
	if filter.FromDate != nil {
		sb.WriteString(` AND date >= ` + next(*filter.FromDate))
	}
	if filter.ToDate != nil {
		sb.WriteString(` AND date <= ` + next(*filter.ToDate))
	}
	sb.WriteString(` ORDER BY created_at DESC`)

	rows, err := r.q.Query(context.Background(), sb.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("list expenses: %w", err)
	}
	defer rows.Close()
	var list []*entity.Expense
	for rows.Next() {
		var e entity.Expense
		if err := rows.Scan(&e.ID, &e.EmployeeID, &e.CompanyID, &e.Amount, &e.Currency, &e.ConvertedAmount, &e.Category, &e.Description, &e.Date, &e.Status, &e.CurrentApproverIndex, &e.CreatedAt, &e.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan expense: %w", err)
		}
		list = append(list, &e)
	}
	return list, rows.Err()
}

func (r *ExpenseRepo) scanOne(row pgx.Row, op string) (*entity.Expense, error) {
	var e entity.Expense
	err := row.Scan(
		&e.ID, &e.EmployeeID, &e.CompanyID, &e.Amount, &e.Currency, &e.ConvertedAmount,
		&e.Category, &e.Description, &e.Date, &e.Status, &e.CurrentApproverIndex,
		&e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &e, nil
}
