package repository

import "github.com/jhoicas/Gastos-api/internal/domain/entity"

// ApprovalRuleRepository define el puerto de persistencia para ApprovalRule.
// La tabla lleva UNIQUE(company_id); FirstByCompany conserva la semántica de
// "primera coincidencia" por si el constraint no existe en una instalación vieja.
type ApprovalRuleRepository interface {
	Create(rule *entity.ApprovalRule) error
	Update(rule *entity.ApprovalRule) error
	GetByID(id string) (*entity.ApprovalRule, error)
	FirstByCompany(companyID string) (*entity.ApprovalRule, error)
	ListByCompany(companyID string) ([]*entity.ApprovalRule, error)
}
