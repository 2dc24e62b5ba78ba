package expense

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/jhoicas/Gastos-api/internal/application/dto"
	"github.com/jhoicas/Gastos-api/internal/application/ports"
	"github.com/jhoicas/Gastos-api/internal/domain"
	"github.com/jhoicas/Gastos-api/internal/domain/entity"
	"github.com/jhoicas/Gastos-api/internal/domain/repository"
)

// SubmitUseCase es el pipeline de envío de gastos: OCR opcional → divisa de la
// empresa → conversión → persistir Pending con índice 0. No valida la
// secuencia de aprobadores: eso se difiere al primer approve/reject.
type SubmitUseCase struct {
	expenseRepo repository.ExpenseRepository
	companyRepo repository.CompanyRepository
	converter   ports.CurrencyConverter
	ocr         ports.ReceiptParser
	log         zerolog.Logger
}

// NewSubmitUseCase construye el pipeline de envío.
func NewSubmitUseCase(
	expenseRepo repository.ExpenseRepository,
	companyRepo repository.CompanyRepository,
	converter ports.CurrencyConverter,
	ocr ports.ReceiptParser,
	log zerolog.Logger,
) *SubmitUseCase {
	return &SubmitUseCase{
		expenseRepo: expenseRepo,
		companyRepo: companyRepo,
		converter:   converter,
		ocr:         ocr,
		log:         log,
	}
}

// Submit crea un gasto para el empleado autenticado.
// Si viene un recibo, los campos extraídos por OCR rellenan los huecos del
// payload; los campos explícitos siempre tienen prioridad. Un fallo del OCR
// degrada (se sigue con el payload tal cual), no aborta el envío.
func (uc *SubmitUseCase) Submit(ctx context.Context, employee *entity.User, in dto.CreateExpenseRequest) (*dto.ExpenseResponse, error) {
	payload := in
	if in.ReceiptBase64 != "" {
		parsed, err := uc.ocr.Parse(ctx, in.ReceiptBase64)
		if err != nil {
			uc.log.Warn().Err(err).Msg("OCR degradado, se usa solo el payload")
		} else {
			payload = mergeReceipt(in, parsed)
		}
	}

	if payload.Amount.IsZero() || payload.Currency == "" {
		return nil, domain.ErrInvalidInput
	}
	date, err := parseDate(payload.Date)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}

	company, err := uc.companyRepo.GetByID(employee.CompanyID)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.ErrNotFound
	}

	// Convert degrada internamente (cross-rate → tabla estática → identidad);
	// un error aquí significa códigos irresolubles, no tasa faltante.
	converted, err := uc.converter.Convert(ctx, payload.Amount, payload.Currency, company.Currency)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	exp := &entity.Expense{
		ID:                   uuid.New().String(),
		EmployeeID:           employee.ID,
		CompanyID:            employee.CompanyID,
		Amount:               payload.Amount,
		Currency:             payload.Currency,
		ConvertedAmount:      converted,
		Category:             payload.Category,
		Description:          payload.Description,
		Date:                 date,
		Status:               entity.StatusPending,
		CurrentApproverIndex: 0,
		CreatedAt:            now,
		UpdatedAt:            now,
	}
	if err := uc.expenseRepo.Create(exp); err != nil {
		return nil, err
	}
	return toExpenseResponse(exp), nil
}

// mergeReceipt aplica los campos OCR solo donde el payload no trae valor.
func mergeReceipt(in dto.CreateExpenseRequest, parsed *dto.ReceiptData) dto.CreateExpenseRequest {
	out := in
	if out.Amount.IsZero() {
		out.Amount = parsed.Amount
	}
	if out.Currency == "" {
		out.Currency = parsed.Currency
	}
	if out.Category == "" {
		out.Category = parsed.Category
	}
	if out.Description == "" {
		out.Description = parsed.Description
	}
	if out.Date == "" && !parsed.Date.IsZero() {
		out.Date = parsed.Date.Format(time.RFC3339)
	}
	return out
}

func parseDate(s string) (time.Time, error) {
	if s == "" {
		return time.Now(), nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", s)
}
