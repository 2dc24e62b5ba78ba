package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Gastos-api/internal/application/dto"
	"github.com/jhoicas/Gastos-api/internal/domain"
	"github.com/jhoicas/Gastos-api/internal/domain/entity"
	"github.com/jhoicas/Gastos-api/internal/domain/repository"
)

// RuleUseCase administra la regla de aprobación de la empresa (Admin).
// El motor de decisiones solo la LEE; estas mutaciones afectan en caliente a
// los gastos en vuelo porque la secuencia de aprobadores se recalcula por
// llamada.
type RuleUseCase struct {
	repo repository.ApprovalRuleRepository
}

// NewRuleUseCase construye el caso de uso con el puerto de persistencia.
func NewRuleUseCase(repo repository.ApprovalRuleRepository) *RuleUseCase {
	return &RuleUseCase{repo: repo}
}

// Create crea la regla de la empresa.
func (uc *RuleUseCase) Create(companyID string, in dto.CreateRuleRequest) (*dto.RuleResponse, error) {
	if in.Kind == "" || in.Approvers == nil {
		return nil, domain.ErrInvalidInput
	}
	if !entity.ValidKind(in.Kind) {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	rule := &entity.ApprovalRule{
		ID:                 uuid.New().String(),
		CompanyID:          companyID,
		Kind:               in.Kind,
		Percentage:         in.Percentage,
		SpecificApproverID: in.SpecificApproverID,
		IsManagerApprover:  in.IsManagerApprover,
		Approvers:          in.Approvers,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
	if err := uc.repo.Create(rule); err != nil {
		return nil, err
	}
	return toRuleResponse(rule), nil
}

// ListByCompany lista las reglas de la empresa (lógicamente una sola).
func (uc *RuleUseCase) ListByCompany(companyID string) ([]dto.RuleResponse, error) {
	rules, err := uc.repo.ListByCompany(companyID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.RuleResponse, 0, len(rules))
	for _, r := range rules {
		out = append(out, *toRuleResponse(r))
	}
	return out, nil
}

// Update actualiza parcialmente la regla (solo campos enviados).
func (uc *RuleUseCase) Update(companyID, ruleID string, in dto.UpdateRuleRequest) (*dto.RuleResponse, error) {
	rule, err := uc.repo.GetByID(ruleID)
	if err != nil {
		return nil, err
	}
	if rule == nil || rule.CompanyID != companyID {
		return nil, domain.ErrNotFound
	}
	if in.Kind != nil {
		if !entity.ValidKind(*in.Kind) {
			return nil, domain.ErrInvalidInput
		}
		rule.Kind = *in.Kind
	}
	if in.Percentage != nil {
		rule.Percentage = *in.Percentage
	}
	if in.SpecificApproverID != nil {
		if *in.SpecificApproverID == "" {
			rule.SpecificApproverID = nil
		} else {
			rule.SpecificApproverID = in.SpecificApproverID
		}
	}
	if in.IsManagerApprover != nil {
		rule.IsManagerApprover = *in.IsManagerApprover
	}
	if in.Approvers != nil {
		rule.Approvers = in.Approvers
	}
	rule.UpdatedAt = time.Now()
	if err := uc.repo.Update(rule); err != nil {
		return nil, err
	}
	return toRuleResponse(rule), nil
}

func toRuleResponse(r *entity.ApprovalRule) *dto.RuleResponse {
	if r == nil {
		return nil
	}
	return &dto.RuleResponse{
		ID:                 r.ID,
		CompanyID:          r.CompanyID,
		Kind:               r.Kind,
		Percentage:         r.Percentage,
		SpecificApproverID: r.SpecificApproverID,
		IsManagerApprover:  r.IsManagerApprover,
		Approvers:          r.Approvers,
		CreatedAt:          r.CreatedAt,
		UpdatedAt:          r.UpdatedAt,
	}
}
