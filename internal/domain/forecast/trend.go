package forecast

import (
	"errors"
	"math"
	"time"

	"github.com/shopspring/decimal"
)

// ErrNotEnoughPoints se retorna cuando hay menos de 2 puntos para ajustar.
// El gate de datos mínimos del servicio de previsión debe impedir llegar aquí;
// se mantiene como guarda para usos directos de Fit.
var ErrNotEnoughPoints = errors.New("se requieren al menos 2 puntos para ajustar la tendencia")

// zScore95 cuantil normal para el intervalo de confianza del 95%.
const zScore95 = 1.96

// Model recta de tendencia ajustada por mínimos cuadrados ordinarios sobre
// (índice de día, ingreso). Efímero: se recalcula en cada petición y nunca
// se persiste.
//
// Accuracy es un indicador heurístico de calidad de ajuste
// (100 × (1 − RMSE/media(y)), acotado a [0,100]); NO es R² ni un nivel de
// confianza estadístico, y se documenta como tal hacia el usuario.
type Model struct {
	Slope      float64
	Intercept  float64
	RMSE       float64
	DataPoints int
	Accuracy   float64 // porcentaje en [0, 100]
}

// PredictionPoint predicción de ingreso para una fecha futura con su banda
// de confianza. Invariante: Lower ≤ Predicted ≤ Upper, todos ≥ 0.
type PredictionPoint struct {
	Date      time.Time
	Predicted decimal.Decimal
	Lower     decimal.Decimal
	Upper     decimal.Decimal
}

// Fit ajusta la recta de mínimos cuadrados sobre la serie diaria.
// El i-ésimo punto (orden ascendente por fecha) se mapea a x=i, y=ingreso:
// el índice es posicional, NO la distancia calendario entre días.
//
//	slope     = (nΣxy − ΣxΣy) / (nΣx² − (Σx)²)
//	intercept = (Σy − slope·Σx) / n
//
// Con n≥2 el denominador nunca es cero: las x son enteros distintos 0..n−1.
func Fit(points []DailyPoint) (*Model, error) {
	n := len(points)
	if n < 2 {
		return nil, ErrNotEnoughPoints
	}

	var sumX, sumY, sumXY, sumX2 float64
	for i, p := range points {
		x := float64(i)
		y := p.Total.InexactFloat64()
		sumX += x
		sumY += y
		sumXY += x * y
		sumX2 += x * x
	}

	fn := float64(n)
	slope := (fn*sumXY - sumX*sumY) / (fn*sumX2 - sumX*sumX)
	intercept := (sumY - slope*sumX) / fn

	// RMSE sobre los residuos (ajustado − observado) de todos los puntos
	var sumSq float64
	for i, p := range points {
		fitted := slope*float64(i) + intercept
		residual := fitted - p.Total.InexactFloat64()
		sumSq += residual * residual
	}
	rmse := math.Sqrt(sumSq / fn)

	return &Model{
		Slope:      slope,
		Intercept:  intercept,
		RMSE:       rmse,
		DataPoints: n,
		Accuracy:   accuracyPct(rmse, sumY/fn),
	}, nil
}

// accuracyPct transforma el RMSE relativo a la media observada en un
// porcentaje acotado. Media cero o negativa produce 0.
func accuracyPct(rmse, meanY float64) float64 {
	if meanY <= 0 {
		return 0
	}
	acc := 100 * (1 - rmse/meanY)
	if acc < 0 {
		return 0
	}
	if acc > 100 {
		return 100
	}
	return acc
}

// Predict extrapola la recta horizonDays hacia adelante.
// Los índices continúan inmediatamente después del último histórico
// (n, n+1, …) y las fechas son días calendario consecutivos a partir de
// lastDate+1, sin huecos. Predicción y bandas se truncan en cero: un ingreso
// proyectado nunca es negativo (suavizado intencional de UX, no regla de
// negocio más profunda).
func (m *Model) Predict(lastDate time.Time, horizonDays int) []PredictionPoint {
	if horizonDays <= 0 {
		return []PredictionPoint{}
	}

	predictions := make([]PredictionPoint, 0, horizonDays)
	for d := 1; d <= horizonDays; d++ {
		x := float64(m.DataPoints - 1 + d)
		predicted := math.Max(0, m.Slope*x+m.Intercept)
		lower := math.Max(0, predicted-zScore95*m.RMSE)
		upper := math.Max(0, predicted+zScore95*m.RMSE)

		predictions = append(predictions, PredictionPoint{
			Date:      lastDate.AddDate(0, 0, d),
			Predicted: decimal.NewFromFloat(predicted).Round(2),
			Lower:     decimal.NewFromFloat(lower).Round(2),
			Upper:     decimal.NewFromFloat(upper).Round(2),
		})
	}
	return predictions
}
