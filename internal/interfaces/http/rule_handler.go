package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Gastos-api/internal/application/dto"
	"github.com/jhoicas/Gastos-api/internal/application/usecase"
	"github.com/jhoicas/Gastos-api/internal/domain"
)

// RuleHandler administración de la regla de aprobación de la empresa (Admin).
type RuleHandler struct {
	uc *usecase.RuleUseCase
}

// NewRuleHandler construye el handler de reglas.
func NewRuleHandler(uc *usecase.RuleUseCase) *RuleHandler {
	return &RuleHandler{uc: uc}
}

// Create godoc
// @Summary      Crear regla de aprobación
// @Tags         approval-rules
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.CreateRuleRequest  true  "kind, percentage, specific_approver_id, is_manager_approver, approvers"
// @Success      201   {object}  dto.RuleResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/approval-rules [post]
func (h *RuleHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateRuleRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(GetCompanyID(c), in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
		}
		if errors.Is(err, domain.ErrDuplicate) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "RULE_EXISTS", Message: "la empresa ya tiene una regla de aprobación"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar reglas de aprobación de la empresa
// @Tags         approval-rules
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  dto.RuleResponse
// @Router       /api/approval-rules [get]
func (h *RuleHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.ListByCompany(GetCompanyID(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualización parcial de la regla
// @Tags         approval-rules
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  string                 true  "rule id"
// @Param        body  body  dto.UpdateRuleRequest  true  "campos a modificar"
// @Success      200   {object}  dto.RuleResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/approval-rules/{id} [put]
func (h *RuleHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateRuleRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(GetCompanyID(c), c.Params("id"), in)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "regla no encontrada"})
		}
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
