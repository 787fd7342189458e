package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/stokly/insights-api/internal/application/dto"
	"github.com/stokly/insights-api/internal/application/insight"
)

// InsightHandler maneja el endpoint de insights de negocio.
type InsightHandler struct {
	uc *insight.InsightUseCase
}

// NewInsightHandler construye el handler.
func NewInsightHandler(uc *insight.InsightUseCase) *InsightHandler {
	return &InsightHandler{uc: uc}
}

// GetInsights devuelve la lista priorizada de insights de la empresa.
// GET /api/insights
//
// Siempre responde 200 con al menos un insight (hay regla de bienvenida
// cuando ninguna otra aplica).
func (h *InsightHandler) GetInsights(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Code: "UNAUTHORIZED", Message: "company_id no encontrado en el token",
		})
	}

	insights, err := h.uc.Generate(c.Context(), companyID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Code: "INTERNAL", Message: err.Error(),
		})
	}
	return c.JSON(insights)
}
