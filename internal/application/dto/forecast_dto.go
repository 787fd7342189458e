package dto

import "github.com/shopspring/decimal"

// ── Previsión de ventas ───────────────────────────────────────────────────────

// DailyPointDTO un día de la serie histórica (para graficar la serie "real").
type DailyPointDTO struct {
	Date  string          `json:"date"` // YYYY-MM-DD
	Total decimal.Decimal `json:"total"`
}

// ConfidenceIntervalDTO banda de confianza de una predicción (95%, 1.96·RMSE).
type ConfidenceIntervalDTO struct {
	Lower decimal.Decimal `json:"lower"`
	Upper decimal.Decimal `json:"upper"`
}

// PredictionDTO predicción de ingreso para una fecha futura.
type PredictionDTO struct {
	Date               string                `json:"date"` // YYYY-MM-DD
	PredictedValue     decimal.Decimal       `json:"predicted_value"`
	ConfidenceInterval ConfidenceIntervalDTO `json:"confidence_interval"`
}

// ModelInfoDTO resumen del modelo ajustado.
// AccuracyPercentage es un heurístico de calidad de ajuste (no es R² ni un
// nivel de confianza formal); se expone como número orientativo para el usuario.
type ModelInfoDTO struct {
	Type               string  `json:"type"` // "linear_regression"
	DataPoints         int     `json:"data_points"`
	DaysAnalyzed       int     `json:"days_analyzed"`
	Slope              float64 `json:"slope"`
	Intercept          float64 `json:"intercept"`
	AccuracyPercentage float64 `json:"accuracy_percentage"`
	RMSE               float64 `json:"rmse"`
}

// SalesForecastDTO respuesta de GET /api/forecast/sales cuando hay datos
// suficientes. Inmutable tras su construcción.
type SalesForecastDTO struct {
	Predictions    []PredictionDTO `json:"predictions"`
	ModelInfo      ModelInfoDTO    `json:"model_info"`
	HistoricalData []DailyPointDTO `json:"historical_data"`
}

// InsufficientDataDTO resultado de negocio cuando la historia es demasiado
// corta para ajustar una recta fiable. NO es un fallo de transporte: viaja
// con HTTP 200 y el campo Error fijo "Insufficient data" sobre el que el
// frontend ramifica.
type InsufficientDataDTO struct {
	Error        string `json:"error"` // siempre "Insufficient data"
	Message      string `json:"message"`
	DaysAnalyzed int    `json:"days_analyzed"`
}
