package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateExpenseRequest envío de un gasto. Si ReceiptBase64 viene, el OCR
// extrae los campos y los explícitos del payload tienen prioridad.
type CreateExpenseRequest struct {
	Amount        decimal.Decimal `json:"amount"`
	Currency      string          `json:"currency"`
	Category      string          `json:"category"`
	Description   string          `json:"description"`
	Date          string          `json:"date"` // RFC 3339 o YYYY-MM-DD
	ReceiptBase64 string          `json:"receipt_base64,omitempty"`
}

// ListExpensesQuery filtros del listado de gastos.
type ListExpensesQuery struct {
	EmployeeID     string `query:"employee_id"`
	FromDate       string `query:"from_date"`
	ToDate         string `query:"to_date"`
	TargetCurrency string `query:"target_currency"`
}

// RejectRequest cuerpo del rechazo; el comentario es obligatorio.
type RejectRequest struct {
	Comment string `json:"comment"`
}

// ExpenseResponse representación pública de un gasto.
// DisplayAmount/DisplayCurrency solo se pueblan cuando el listado pide una
// divisa de visualización; DisplayAmount nil = conversión no disponible.
type ExpenseResponse struct {
	ID                   string           `json:"id"`
	EmployeeID           string           `json:"employee_id"`
	CompanyID            string           `json:"company_id"`
	Amount               decimal.Decimal  `json:"amount"`
	Currency             string           `json:"currency"`
	ConvertedAmount      decimal.Decimal  `json:"converted_amount"`
	Category             string           `json:"category"`
	Description          string           `json:"description"`
	Date                 time.Time        `json:"date"`
	Status               string           `json:"status"`
	CurrentApproverIndex int              `json:"current_approver_index"`
	DisplayCurrency      string           `json:"display_currency,omitempty"`
	DisplayAmount        *decimal.Decimal `json:"display_amount,omitempty"`
	CreatedAt            time.Time        `json:"created_at"`
	UpdatedAt            time.Time        `json:"updated_at"`
}

// EmployeeSummary resumen del empleado embebido en el historial.
type EmployeeSummary struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// HistoryExpense gasto embebido en una entrada de historial.
type HistoryExpense struct {
	ID              string          `json:"id"`
	Amount          decimal.Decimal `json:"amount"`
	Currency        string          `json:"currency"`
	ConvertedAmount decimal.Decimal `json:"converted_amount"`
	Status          string          `json:"status"`
	Date            time.Time       `json:"date"`
	Employee        EmployeeSummary `json:"employee"`
}

// HistoryItemResponse una decisión del historial del aprobador actual.
type HistoryItemResponse struct {
	ID        string         `json:"id"`
	Action    string         `json:"action"`
	Comment   string         `json:"comment,omitempty"`
	Timestamp time.Time      `json:"timestamp"`
	Expense   HistoryExpense `json:"expense"`
}

// ReceiptData campos extraídos por el OCR de un recibo.
type ReceiptData struct {
	Amount      decimal.Decimal `json:"amount"`
	Currency    string          `json:"currency"`
	Category    string          `json:"category"`
	Description string          `json:"description"`
	Date        time.Time       `json:"date"`
}

// ParseReceiptRequest cuerpo del endpoint OCR independiente.
type ParseReceiptRequest struct {
	ReceiptBase64 string `json:"receipt_base64"`
}
