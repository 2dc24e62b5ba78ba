package approval

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Gastos-api/internal/domain/entity"
)

var hundred = decimal.NewFromInt(100)

// AutoApprove evalúa las condiciones de finalización anticipada de un gasto
// sobre TODO el historial de decisiones registradas (no solo la última):
//
//   - Cláusula de porcentaje (kind percentage|hybrid):
//     approvedCount/totalApprovers*100 >= umbral (100 si la regla no define uno).
//   - Cláusula de aprobador designado (kind specific|hybrid):
//     existe algún registro Approved cuyo approver es rule.SpecificApproverID.
//
// El resultado es el OR de las cláusulas aplicables; para percentage o specific
// puros la otra cláusula es siempre falsa.
func AutoApprove(rule *entity.ApprovalRule, approvals []*entity.Approval, totalApprovers int) bool {
	return percentageSatisfied(rule, approvals, totalApprovers) || specificSatisfied(rule, approvals)
}

func percentageSatisfied(rule *entity.ApprovalRule, approvals []*entity.Approval, totalApprovers int) bool {
	if !rule.UsesPercentage() || totalApprovers <= 0 {
		return false
	}
	approved := int64(0)
	for _, a := range approvals {
		if a.Action == entity.ActionApproved {
			approved++
		}
	}
	// count/total*100 >= pct  ⇔  count*100 >= pct*total (sin redondeo de división)
	lhs := decimal.NewFromInt(approved).Mul(hundred)
	rhs := rule.EffectivePercentage().Mul(decimal.NewFromInt(int64(totalApprovers)))
	return lhs.GreaterThanOrEqual(rhs)
}

func specificSatisfied(rule *entity.ApprovalRule, approvals []*entity.Approval) bool {
	if !rule.UsesSpecific() || rule.SpecificApproverID == nil || *rule.SpecificApproverID == "" {
		return false
	}
	for _, a := range approvals {
		if a.Action == entity.ActionApproved && a.ApproverID == *rule.SpecificApproverID {
			return true
		}
	}
	return false
}
