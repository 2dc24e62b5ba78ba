package expense

import (
	"github.com/jhoicas/Gastos-api/internal/application/dto"
	"github.com/jhoicas/Gastos-api/internal/domain/entity"
)

func toExpenseResponse(e *entity.Expense) *dto.ExpenseResponse {
	if e == nil {
		return nil
	}
	return &dto.ExpenseResponse{
		ID:                   e.ID,
		EmployeeID:           e.EmployeeID,
		CompanyID:            e.CompanyID,
		Amount:               e.Amount,
		Currency:             e.Currency,
		ConvertedAmount:      e.ConvertedAmount,
		Category:             e.Category,
		Description:          e.Description,
		Date:                 e.Date,
		Status:               e.Status,
		CurrentApproverIndex: e.CurrentApproverIndex,
		CreatedAt:            e.CreatedAt,
		UpdatedAt:            e.UpdatedAt,
	}
}
