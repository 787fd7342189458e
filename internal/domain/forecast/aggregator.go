// Package forecast contiene el núcleo del motor de previsión de ventas:
// agregación de ventas a serie diaria, ajuste de tendencia por mínimos
// cuadrados y extrapolación con banda de confianza. Todo es cómputo puro
// sobre colecciones en memoria; no hay acceso a red ni a base de datos.
package forecast

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stokly/insights-api/internal/domain/entity"
)

// DailyPoint un día calendario con su ingreso agregado.
// La fecha está truncada a medianoche en la zona horaria de referencia.
type DailyPoint struct {
	Date  time.Time
	Total decimal.Decimal
}

// AggregateDaily agrupa las ventas por día calendario (en loc) y suma el total
// de cada día. Ventas con total ausente o negativo, o sin fecha, se descartan
// en silencio: un lote con filas defectuosas debe seguir produciendo serie.
// Los días sin ventas no se sintetizan; solo aparecen días presentes en el input.
// El resultado queda ordenado ascendente por fecha, un punto por día.
func AggregateDaily(sales []entity.Sale, loc *time.Location) []DailyPoint {
	if loc == nil {
		loc = time.UTC
	}

	totals := make(map[time.Time]decimal.Decimal)
	for _, s := range sales {
		if !s.HasValidTotal() || s.Date.IsZero() {
			continue
		}
		day := truncateToDay(s.Date, loc)
		totals[day] = totals[day].Add(s.Total.Decimal)
	}

	points := make([]DailyPoint, 0, len(totals))
	for day, total := range totals {
		points = append(points, DailyPoint{Date: day, Total: total})
	}
	sort.Slice(points, func(i, j int) bool {
		return points[i].Date.Before(points[j].Date)
	})
	return points
}

// KeyRevenue ingreso acumulado bajo una clave de agrupación (producto, categoría...).
type KeyRevenue struct {
	Key     string
	Revenue decimal.Decimal
}

// AggregateByKey acumula el ingreso de las ventas bajo la clave que devuelva
// keyFn. Claves vacías se omiten (ej. producto sin categoría). El orden del
// resultado es el de primera aparición de cada clave en el input, lo que hace
// determinista el desempate de TopN.
// Aplica el mismo filtro de totales que AggregateDaily.
func AggregateByKey(sales []entity.Sale, keyFn func(entity.Sale) string) []KeyRevenue {
	totals := make(map[string]decimal.Decimal)
	order := make([]string, 0)

	for _, s := range sales {
		if !s.HasValidTotal() {
			continue
		}
		key := keyFn(s)
		if key == "" {
			continue
		}
		if _, seen := totals[key]; !seen {
			order = append(order, key)
		}
		totals[key] = totals[key].Add(s.Total.Decimal)
	}

	result := make([]KeyRevenue, 0, len(order))
	for _, key := range order {
		result = append(result, KeyRevenue{Key: key, Revenue: totals[key]})
	}
	return result
}

// TopN devuelve las n claves con mayor ingreso, ordenadas descendente.
// Empates se resuelven por orden de primera aparición en el rollup (estable).
func TopN(rollup []KeyRevenue, n int) []KeyRevenue {
	sorted := make([]KeyRevenue, len(rollup))
	copy(sorted, rollup)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Revenue.GreaterThan(sorted[j].Revenue)
	})
	if n < 0 {
		n = 0
	}
	if n > len(sorted) {
		n = len(sorted)
	}
	return sorted[:n]
}

// truncateToDay recorta un instante a las 00:00 de su día calendario en loc.
func truncateToDay(t time.Time, loc *time.Location) time.Time {
	local := t.In(loc)
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)
}
