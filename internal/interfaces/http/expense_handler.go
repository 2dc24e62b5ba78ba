package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Gastos-api/internal/application/dto"
	"github.com/jhoicas/Gastos-api/internal/application/expense"
	"github.com/jhoicas/Gastos-api/internal/application/ports"
	"github.com/jhoicas/Gastos-api/internal/domain"
	"github.com/jhoicas/Gastos-api/internal/domain/entity"
	"github.com/jhoicas/Gastos-api/internal/domain/repository"
)

// ExpenseHandler maneja el ciclo de vida completo del gasto: envío, listado,
// bandeja de pendientes, decisiones, historial, reporte PDF y OCR.
type ExpenseHandler struct {
	submit   *expense.SubmitUseCase
	decision *expense.DecisionUseCase
	pending  *expense.PendingUseCase
	query    *expense.QueryUseCase
	report   *expense.ReportUseCase
	ocr      ports.ReceiptParser
	userRepo repository.UserRepository
}

// NewExpenseHandler construye el handler de gastos.
func NewExpenseHandler(
	submit *expense.SubmitUseCase,
	decision *expense.DecisionUseCase,
	pending *expense.PendingUseCase,
	query *expense.QueryUseCase,
	report *expense.ReportUseCase,
	ocr ports.ReceiptParser,
	userRepo repository.UserRepository,
) *ExpenseHandler {
	return &ExpenseHandler{
		submit:   submit,
		decision: decision,
		pending:  pending,
		query:    query,
		report:   report,
		ocr:      ocr,
		userRepo: userRepo,
	}
}

// actor carga el usuario autenticado desde la DB. Los use cases de gastos
// necesitan la entidad completa (rol y manager), no solo los claims del token.
func (h *ExpenseHandler) actor(c *fiber.Ctx) (*entity.User, error) {
	user, err := h.userRepo.GetByID(GetUserID(c))
	if err != nil {
		return nil, err
	}
	if user == nil || user.CompanyID != GetCompanyID(c) {
		return nil, domain.ErrUserNotFound
	}
	return user, nil
}

// noCache fuerza a los clientes a no cachear la respuesta.
func noCache(c *fiber.Ctx) {
	c.Set(fiber.HeaderCacheControl, "no-store, no-cache, must-revalidate")
	c.Set(fiber.HeaderPragma, "no-cache")
	c.Set(fiber.HeaderExpires, "0")
}

// decisionError traduce los errores del motor de decisión a HTTP.
func decisionError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "gasto no encontrado"})
	case errors.Is(err, domain.ErrNotCurrentApprover):
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "NOT_CURRENT_APPROVER", Message: "no es el aprobador actual de este gasto"})
	case errors.Is(err, domain.ErrExpenseFinalized):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "EXPENSE_FINALIZED", Message: "el gasto ya fue aprobado o rechazado"})
	case errors.Is(err, domain.ErrCommentRequired):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "COMMENT_REQUIRED", Message: "el comentario de rechazo es requerido"})
	case errors.Is(err, domain.ErrRulesNotConfigured):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "RULES_NOT_CONFIGURED", Message: "la empresa no tiene regla de aprobación configurada"})
	case errors.Is(err, domain.ErrNoApprovers):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "NO_APPROVERS", Message: "la regla no tiene aprobadores"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}

// Create godoc
// @Summary      Enviar un gasto
// @Description  Si viene receipt_base64, el OCR extrae los campos y los explícitos del payload tienen prioridad.
// @Tags         expenses
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.CreateExpenseRequest  true  "amount, currency, category, description, date, receipt_base64"
// @Success      201   {object}  dto.ExpenseResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/expenses [post]
func (h *ExpenseHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateExpenseRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	actor, err := h.actor(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "usuario no encontrado"})
	}
	out, err := h.submit.Submit(c.UserContext(), actor, in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar gastos con visibilidad por rol
// @Description  Employee ve los propios; Manager los suyos y los de su equipo; Admin toda la empresa.
// @Tags         expenses
// @Produce      json
// @Security     BearerAuth
// @Param        employee_id      query  string  false  "filtrar por empleado"
// @Param        from_date        query  string  false  "YYYY-MM-DD"
// @Param        to_date          query  string  false  "YYYY-MM-DD"
// @Param        target_currency  query  string  false  "divisa de visualización"
// @Success      200  {array}  dto.ExpenseResponse
// @Router       /api/expenses [get]
func (h *ExpenseHandler) List(c *fiber.Ctx) error {
	var q dto.ListExpensesQuery
	if err := c.QueryParser(&q); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "parámetros inválidos"})
	}
	actor, err := h.actor(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "usuario no encontrado"})
	}
	out, err := h.query.List(c.UserContext(), actor, q)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Pending godoc
// @Summary      Bandeja de aprobaciones pendientes del usuario
// @Description  Siempre sin caché: la secuencia efectiva de aprobadores se recalcula en cada consulta.
// @Tags         expenses
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  dto.ExpenseResponse
// @Router       /api/expenses/pending [get]
func (h *ExpenseHandler) Pending(c *fiber.Ctx) error {
	actor, err := h.actor(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "usuario no encontrado"})
	}
	out, err := h.pending.Pending(actor)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	noCache(c)
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Detalle de un gasto
// @Tags         expenses
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "expense id"
// @Success      200  {object}  dto.ExpenseResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/expenses/{id} [get]
func (h *ExpenseHandler) GetByID(c *fiber.Ctx) error {
	actor, err := h.actor(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "usuario no encontrado"})
	}
	out, err := h.query.GetByID(actor, c.Params("id"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "gasto no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Approve godoc
// @Summary      Aprobar un gasto
// @Description  Avanza la secuencia o finaliza el gasto (umbral, aprobador específico o último de la secuencia). Admin puede decidir en cualquier posición.
// @Tags         expenses
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "expense id"
// @Success      200  {object}  dto.ExpenseResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/expenses/{id}/approve [put]
func (h *ExpenseHandler) Approve(c *fiber.Ctx) error {
	actor, err := h.actor(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "usuario no encontrado"})
	}
	out, err := h.decision.Approve(c.UserContext(), c.Params("id"), actor)
	if err != nil {
		return decisionError(c, err)
	}
	return c.JSON(out)
}

// Reject godoc
// @Summary      Rechazar un gasto
// @Description  El comentario es obligatorio. El rechazo es terminal.
// @Tags         expenses
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  string             true  "expense id"
// @Param        body  body  dto.RejectRequest  true  "comment"
// @Success      200   {object}  dto.ExpenseResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/expenses/{id}/reject [put]
func (h *ExpenseHandler) Reject(c *fiber.Ctx) error {
	var in dto.RejectRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	actor, err := h.actor(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "usuario no encontrado"})
	}
	out, err := h.decision.Reject(c.UserContext(), c.Params("id"), actor, in.Comment)
	if err != nil {
		return decisionError(c, err)
	}
	return c.JSON(out)
}

// History godoc
// @Summary      Historial de decisiones del aprobador
// @Tags         approvals
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  dto.HistoryItemResponse
// @Router       /api/approvals/history [get]
func (h *ExpenseHandler) History(c *fiber.Ctx) error {
	actor, err := h.actor(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "usuario no encontrado"})
	}
	out, err := h.query.History(actor)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// ReportPDF godoc
// @Summary      Reporte PDF de los gastos visibles por el usuario
// @Tags         expenses
// @Produce      application/pdf
// @Security     BearerAuth
// @Success      200  {file}  binary
// @Router       /api/expenses/report/pdf [get]
func (h *ExpenseHandler) ReportPDF(c *fiber.Ctx) error {
	var q dto.ListExpensesQuery
	if err := c.QueryParser(&q); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "parámetros inválidos"})
	}
	actor, err := h.actor(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "usuario no encontrado"})
	}
	pdfBytes, err := h.report.GeneratePDF(c.UserContext(), actor, q)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="expense-report.pdf"`)
	return c.Send(pdfBytes)
}

// ParseReceipt godoc
// @Summary      Extraer campos de un recibo (OCR)
// @Tags         ocr
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.ParseReceiptRequest  true  "receipt_base64"
// @Success      200   {object}  dto.ReceiptData
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/ocr/parse [post]
func (h *ExpenseHandler) ParseReceipt(c *fiber.Ctx) error {
	var in dto.ParseReceiptRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.ocr.Parse(c.UserContext(), in.ReceiptBase64)
	if err != nil {
		if errors.Is(err, domain.ErrOCRFailed) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "OCR_FAILED", Message: "no se pudo extraer el recibo"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
