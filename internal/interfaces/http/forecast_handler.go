package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/stokly/insights-api/internal/application/dto"
	"github.com/stokly/insights-api/internal/application/forecasting"
)

// ForecastHandler maneja el endpoint de previsión de ventas.
type ForecastHandler struct {
	uc *forecasting.ForecastUseCase
}

// NewForecastHandler construye el handler.
func NewForecastHandler(uc *forecasting.ForecastUseCase) *ForecastHandler {
	return &ForecastHandler{uc: uc}
}

// GetSalesForecast devuelve la previsión de ventas de la empresa.
// GET /api/forecast/sales
//
// Ambas variantes responden 200: la previsión completa cuando hay serie
// suficiente, o el cuerpo de datos insuficientes (error:"Insufficient data",
// days_analyzed) cuando no. El 500 queda reservado para fallas de
// infraestructura reales.
func (h *ForecastHandler) GetSalesForecast(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Code: "UNAUTHORIZED", Message: "company_id no encontrado en el token",
		})
	}

	outcome, err := h.uc.GetSalesForecast(c.Context(), companyID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Code: "INTERNAL", Message: err.Error(),
		})
	}

	if outcome.Insufficient != nil {
		return c.JSON(outcome.Insufficient)
	}
	return c.JSON(outcome.Forecast)
}
