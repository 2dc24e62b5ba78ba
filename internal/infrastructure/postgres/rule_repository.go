package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Gastos-api/internal/domain"
	"github.com/jhoicas/Gastos-api/internal/domain/entity"
	"github.com/jhoicas/Gastos-api/internal/domain/repository"
)

var _ repository.ApprovalRuleRepository = (*RuleRepo)(nil)

// RuleRepo implementación del puerto ApprovalRuleRepository sobre PostgreSQL.
// approvers es text[]: la secuencia base ordenada con duplicados permitidos.
// company_id lleva UNIQUE (una regla activa por empresa, nota de diseño §9 del
// modelo); las lecturas conservan la semántica "primera coincidencia".
type RuleRepo struct {
	q Querier
}

// NewRuleRepository construye el adaptador de persistencia para reglas.
func NewRuleRepository(q Querier) *RuleRepo {
	return &RuleRepo{q: q}
}

const ruleColumns = `id, company_id, kind, percentage, specific_approver_id, is_manager_approver, approvers, created_at, updated_at`

// Create persiste la regla de la empresa.
func (r *RuleRepo) Create(rule *entity.ApprovalRule) error {
	query := `
		INSERT INTO approval_rules (id, company_id, kind, percentage, specific_approver_id, is_manager_approver, approvers, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		rule.ID, rule.CompanyID, rule.Kind, rule.Percentage, rule.SpecificApproverID,
		rule.IsManagerApprover, rule.Approvers, rule.CreatedAt, rule.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert approval rule: %w", err)
	}
	return nil
}

// Update actualiza la regla completa.
func (r *RuleRepo) Update(rule *entity.ApprovalRule) error {
	query := `
		UPDATE approval_rules
		SET kind = $2, percentage = $3, specific_approver_id = $4, is_manager_approver = $5, approvers = $6, updated_at = $7
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		rule.ID, rule.Kind, rule.Percentage, rule.SpecificApproverID,
		rule.IsManagerApprover, rule.Approvers, rule.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update approval rule: %w", err)
	}
	return nil
}

// GetByID obtiene una regla por ID.
func (r *RuleRepo) GetByID(id string) (*entity.ApprovalRule, error) {
	query := `SELECT ` + ruleColumns + ` FROM approval_rules WHERE id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id), "get rule by id")
}

// FirstByCompany devuelve la primera regla de la empresa (o nil si no hay).
func (r *RuleRepo) FirstByCompany(companyID string) (*entity.ApprovalRule, error) {
	query := `SELECT ` + ruleColumns + ` FROM approval_rules WHERE company_id = $1 ORDER BY created_at ASC LIMIT 1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, companyID), "get rule by company")
}

// ListByCompany lista las reglas de la empresa.
func (r *RuleRepo) ListByCompany(companyID string) ([]*entity.ApprovalRule, error) {
	query := `SELECT ` + ruleColumns + ` FROM approval_rules WHERE company_id = $1 ORDER BY created_at ASC`
	rows, err := r.q.Query(context.Background(), query, companyID)
	if err != nil {
		return nil, fmt.Errorf("list rules: %w", err)
	}
	defer rows.Close()
	var list []*entity.ApprovalRule
	for rows.Next() {
		var rule entity.ApprovalRule
		if err := rows.Scan(&rule.ID, &rule.CompanyID, &rule.Kind, &rule.Percentage, &rule.SpecificApproverID, &rule.IsManagerApprover, &rule.Approvers, &rule.CreatedAt, &rule.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan rule: %w", err)
		}
		list = append(list, &rule)
	}
	return list, rows.Err()
}

func (r *RuleRepo) scanOne(row pgx.Row, op string) (*entity.ApprovalRule, error) {
	var rule entity.ApprovalRule
	err := row.Scan(
		&rule.ID, &rule.CompanyID, &rule.Kind, &rule.Percentage, &rule.SpecificApproverID,
		&rule.IsManagerApprover, &rule.Approvers, &rule.CreatedAt, &rule.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &rule, nil
}
