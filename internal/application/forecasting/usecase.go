// Package forecasting orquesta el motor de previsión: aplica el gate de
// volumen mínimo de datos, ajusta el modelo de tendencia y da forma a la
// respuesta. Separar Build (puro) de GetSalesForecast (con repositorio)
// permite testear el servicio sin base de datos.
package forecasting

import (
	"context"
	"fmt"
	"time"

	"github.com/stokly/insights-api/internal/application/dto"
	"github.com/stokly/insights-api/internal/domain/entity"
	"github.com/stokly/insights-api/internal/domain/forecast"
	"github.com/stokly/insights-api/internal/domain/repository"
)

const dateLayout = "2006-01-02"

// Options parámetros del servicio de previsión (ver pkg/config).
type Options struct {
	MinDays     int
	HorizonDays int
	Location    *time.Location
}

// Outcome resultado discriminado de la previsión: exactamente uno de los dos
// campos es no-nil. Datos insuficientes es un resultado de negocio que el
// caller debe ramificar, nunca un error: el gate de calidad es UX central
// (mejor "aún no hay datos" que una recta poco fiable), y debe distinguirse
// de un fallo transitorio.
type Outcome struct {
	Forecast     *dto.SalesForecastDTO
	Insufficient *dto.InsufficientDataDTO
}

// ForecastUseCase caso de uso de previsión de ventas.
type ForecastUseCase struct {
	saleRepo repository.SaleRepository
	opts     Options
}

// NewForecastUseCase construye el caso de uso.
func NewForecastUseCase(saleRepo repository.SaleRepository, opts Options) *ForecastUseCase {
	if opts.Location == nil {
		opts.Location = time.UTC
	}
	return &ForecastUseCase{saleRepo: saleRepo, opts: opts}
}

// GetSalesForecast obtiene las ventas completadas de la empresa y construye
// la previsión. El error cubre solo fallas de infraestructura (DB); el
// resultado de negocio viaja en Outcome.
func (uc *ForecastUseCase) GetSalesForecast(ctx context.Context, companyID string) (Outcome, error) {
	sales, err := uc.saleRepo.ListCompletedByCompany(ctx, companyID)
	if err != nil {
		return Outcome{}, fmt.Errorf("forecast: listar ventas: %w", err)
	}
	return Build(sales, uc.opts), nil
}

// Build construye la previsión a partir de ventas ya obtenidas y filtradas.
// Cómputo puro: sin red ni almacenamiento.
//
//  1. Agrega la serie diaria.
//  2. Si hay menos de MinDays días con datos, devuelve el resultado de
//     datos insuficientes con el conteo de días disponibles.
//  3. Ajusta la recta de tendencia y proyecta HorizonDays predicciones.
func Build(sales []entity.Sale, opts Options) Outcome {
	if opts.Location == nil {
		opts.Location = time.UTC
	}

	points := forecast.AggregateDaily(sales, opts.Location)
	if len(points) < opts.MinDays {
		return Outcome{Insufficient: &dto.InsufficientDataDTO{
			Error: "Insufficient data",
			Message: fmt.Sprintf(
				"Se necesitan al menos %d días con ventas para generar la previsión; hay %d.",
				opts.MinDays, len(points)),
			DaysAnalyzed: len(points),
		}}
	}

	model, err := forecast.Fit(points)
	if err != nil {
		// Inalcanzable con MinDays >= 2; se degrada al mismo resultado de negocio
		return Outcome{Insufficient: &dto.InsufficientDataDTO{
			Error:        "Insufficient data",
			Message:      err.Error(),
			DaysAnalyzed: len(points),
		}}
	}

	lastDate := points[len(points)-1].Date
	predictions := model.Predict(lastDate, opts.HorizonDays)

	return Outcome{Forecast: &dto.SalesForecastDTO{
		Predictions:    toPredictionDTOs(predictions),
		ModelInfo:      toModelInfoDTO(model, len(points)),
		HistoricalData: toDailyPointDTOs(points),
	}}
}

// ── Conversión a DTOs ─────────────────────────────────────────────────────────

func toDailyPointDTOs(points []forecast.DailyPoint) []dto.DailyPointDTO {
	out := make([]dto.DailyPointDTO, 0, len(points))
	for _, p := range points {
		out = append(out, dto.DailyPointDTO{
			Date:  p.Date.Format(dateLayout),
			Total: p.Total.Round(2),
		})
	}
	return out
}

func toPredictionDTOs(predictions []forecast.PredictionPoint) []dto.PredictionDTO {
	out := make([]dto.PredictionDTO, 0, len(predictions))
	for _, p := range predictions {
		out = append(out, dto.PredictionDTO{
			Date:           p.Date.Format(dateLayout),
			PredictedValue: p.Predicted,
			ConfidenceInterval: dto.ConfidenceIntervalDTO{
				Lower: p.Lower,
				Upper: p.Upper,
			},
		})
	}
	return out
}

func toModelInfoDTO(m *forecast.Model, daysAnalyzed int) dto.ModelInfoDTO {
	return dto.ModelInfoDTO{
		Type:               "linear_regression",
		DataPoints:         m.DataPoints,
		DaysAnalyzed:       daysAnalyzed,
		Slope:              m.Slope,
		Intercept:          m.Intercept,
		AccuracyPercentage: m.Accuracy,
		RMSE:               m.RMSE,
	}
}
