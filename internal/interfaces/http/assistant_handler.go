package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/stokly/insights-api/internal/application/dto"
	"github.com/stokly/insights-api/internal/application/usecase"
	"github.com/stokly/insights-api/internal/domain"
)

// AssistantHandler maneja el asistente conversacional.
type AssistantHandler struct {
	uc *usecase.AssistantUseCase
}

// NewAssistantHandler construye el handler.
func NewAssistantHandler(uc *usecase.AssistantUseCase) *AssistantHandler {
	return &AssistantHandler{uc: uc}
}

// Chat responde una consulta en lenguaje natural sobre el negocio.
// POST /api/assistant/chat
func (h *AssistantHandler) Chat(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Code: "UNAUTHORIZED", Message: "company_id no encontrado en el token",
		})
	}
	var in dto.ChatRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Chat(c.Context(), companyID, in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "prompt requerido"})
		}
		return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{Code: "LLM_UNAVAILABLE", Message: "el asistente no está disponible en este momento"})
	}
	return c.JSON(out)
}
