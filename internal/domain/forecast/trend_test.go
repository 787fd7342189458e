package forecast_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stokly/insights-api/internal/domain/forecast"
)

// series construye una serie diaria consecutiva desde el 1 de marzo de 2024.
func series(values ...float64) []forecast.DailyPoint {
	start := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	points := make([]forecast.DailyPoint, 0, len(values))
	for i, v := range values {
		points = append(points, forecast.DailyPoint{
			Date:  start.AddDate(0, 0, i),
			Total: decimal.NewFromFloat(v),
		})
	}
	return points
}

// ──────────────────────────────────────────────────────────────────────────────
// Fit
// ──────────────────────────────────────────────────────────────────────────────

// Serie perfectamente lineal (100, 110, ..., 160): la recta la reproduce
// exacta, el RMSE es ~0 y la precisión ~100%.
func TestFit_SerieLinealPerfecta(t *testing.T) {
	points := series(100, 110, 120, 130, 140, 150, 160)

	model, err := forecast.Fit(points)
	require.NoError(t, err)

	assert.InDelta(t, 10.0, model.Slope, 1e-9)
	assert.InDelta(t, 100.0, model.Intercept, 1e-9)
	assert.InDelta(t, 0.0, model.RMSE, 1e-9)
	assert.InDelta(t, 100.0, model.Accuracy, 1e-9)
	assert.Equal(t, 7, model.DataPoints)
}

// Con menos de 2 puntos no hay recta que ajustar.
func TestFit_MenosDeDosPuntos(t *testing.T) {
	_, err := forecast.Fit(series(100))
	assert.ErrorIs(t, err, forecast.ErrNotEnoughPoints)

	_, err = forecast.Fit(nil)
	assert.ErrorIs(t, err, forecast.ErrNotEnoughPoints)
}

// Serie constante: pendiente 0, intercepto en el valor, RMSE 0.
func TestFit_SerieConstante(t *testing.T) {
	model, err := forecast.Fit(series(75, 75, 75, 75))
	require.NoError(t, err)

	assert.InDelta(t, 0.0, model.Slope, 1e-9)
	assert.InDelta(t, 75.0, model.Intercept, 1e-9)
	assert.InDelta(t, 100.0, model.Accuracy, 1e-9)
}

// Media de ingresos cero (todos los días en 0): la precisión se reporta 0,
// no NaN ni división por cero.
func TestFit_MediaCeroPrecisionCero(t *testing.T) {
	model, err := forecast.Fit(series(0, 0, 0))
	require.NoError(t, err)

	assert.Equal(t, 0.0, model.Accuracy)
}

// Serie muy ruidosa: la precisión queda acotada en [0, 100] aunque el RMSE
// supere la media.
func TestFit_PrecisionAcotada(t *testing.T) {
	model, err := forecast.Fit(series(1, 500, 2, 480, 3, 510))
	require.NoError(t, err)

	assert.GreaterOrEqual(t, model.Accuracy, 0.0)
	assert.LessOrEqual(t, model.Accuracy, 100.0)
}

// ──────────────────────────────────────────────────────────────────────────────
// Predict
// ──────────────────────────────────────────────────────────────────────────────

// La extrapolación continúa la recta: con la serie 100..160 el día siguiente
// (índice 7) vale 170, y con RMSE 0 la banda colapsa sobre la predicción.
func TestPredict_ContinuaLaRecta(t *testing.T) {
	points := series(100, 110, 120, 130, 140, 150, 160)
	model, err := forecast.Fit(points)
	require.NoError(t, err)

	lastDate := points[len(points)-1].Date
	preds := model.Predict(lastDate, 3)

	require.Len(t, preds, 3)
	assert.True(t, preds[0].Predicted.Equal(decimal.NewFromInt(170)), "día 8 = 170, obtuvo %s", preds[0].Predicted)
	assert.True(t, preds[1].Predicted.Equal(decimal.NewFromInt(180)))
	assert.True(t, preds[2].Predicted.Equal(decimal.NewFromInt(190)))

	assert.True(t, preds[0].Lower.Equal(preds[0].Predicted))
	assert.True(t, preds[0].Upper.Equal(preds[0].Predicted))
}

// Las fechas predichas son días calendario consecutivos a partir del último
// histórico, sin huecos.
func TestPredict_FechasConsecutivas(t *testing.T) {
	points := series(10, 20, 30)
	model, err := forecast.Fit(points)
	require.NoError(t, err)

	lastDate := points[len(points)-1].Date
	preds := model.Predict(lastDate, 5)

	require.Len(t, preds, 5)
	for i, p := range preds {
		want := lastDate.AddDate(0, 0, i+1)
		assert.True(t, p.Date.Equal(want), "predicción %d: esperaba %s, obtuvo %s", i, want, p.Date)
	}
}

// Tendencia en caída: la predicción y su banda se truncan en cero, nunca se
// proyecta ingreso negativo.
func TestPredict_TruncaEnCero(t *testing.T) {
	points := series(100, 60, 20)
	model, err := forecast.Fit(points)
	require.NoError(t, err)

	preds := model.Predict(points[len(points)-1].Date, 4)

	require.Len(t, preds, 4)
	last := preds[3]
	assert.True(t, last.Predicted.IsZero(), "la recta ya es negativa en el día 7")
	assert.True(t, last.Lower.IsZero())
	assert.False(t, last.Upper.IsNegative())
}

// Invariante de la banda: Lower ≤ Predicted ≤ Upper y todos ≥ 0, también con
// datos ruidosos.
func TestPredict_InvarianteDeBanda(t *testing.T) {
	points := series(120, 80, 200, 40, 160, 90, 210)
	model, err := forecast.Fit(points)
	require.NoError(t, err)

	for _, p := range model.Predict(points[len(points)-1].Date, 7) {
		assert.True(t, p.Lower.LessThanOrEqual(p.Predicted), "lower %s > predicted %s", p.Lower, p.Predicted)
		assert.True(t, p.Predicted.LessThanOrEqual(p.Upper), "predicted %s > upper %s", p.Predicted, p.Upper)
		assert.False(t, p.Lower.IsNegative())
	}
}

// Horizonte no positivo produce lista vacía.
func TestPredict_HorizonteNoPositivo(t *testing.T) {
	model, err := forecast.Fit(series(10, 20))
	require.NoError(t, err)

	assert.Empty(t, model.Predict(time.Now(), 0))
	assert.Empty(t, model.Predict(time.Now(), -3))
}
