package forecast_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stokly/insights-api/internal/domain/entity"
	"github.com/stokly/insights-api/internal/domain/forecast"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

// saleOn construye una venta completada con total válido en la fecha dada.
func saleOn(t *testing.T, day string, total float64, productID string) entity.Sale {
	t.Helper()
	date, err := time.Parse(time.RFC3339, day)
	require.NoError(t, err)
	return entity.Sale{
		ID:        "sale-" + day,
		CompanyID: "company-1",
		ProductID: productID,
		Quantity:  1,
		Total:     decimal.NullDecimal{Decimal: decimal.NewFromFloat(total), Valid: true},
		Status:    entity.SaleStatusCompleted,
		Date:      date,
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// AggregateDaily
// ──────────────────────────────────────────────────────────────────────────────

// Varias ventas del mismo día se suman en un solo punto; el resultado queda
// ordenado ascendente por fecha.
func TestAggregateDaily_AgrupaYOrdena(t *testing.T) {
	sales := []entity.Sale{
		saleOn(t, "2024-03-12T15:00:00Z", 50, "p1"),
		saleOn(t, "2024-03-10T09:00:00Z", 100, "p1"),
		saleOn(t, "2024-03-12T18:30:00Z", 25, "p2"),
		saleOn(t, "2024-03-11T12:00:00Z", 80, "p1"),
	}

	points := forecast.AggregateDaily(sales, time.UTC)

	require.Len(t, points, 3)
	assert.Equal(t, "2024-03-10", points[0].Date.Format("2006-01-02"))
	assert.Equal(t, "2024-03-11", points[1].Date.Format("2006-01-02"))
	assert.Equal(t, "2024-03-12", points[2].Date.Format("2006-01-02"))
	assert.True(t, points[0].Total.Equal(decimal.NewFromInt(100)))
	assert.True(t, points[1].Total.Equal(decimal.NewFromInt(80)))
	assert.True(t, points[2].Total.Equal(decimal.NewFromInt(75)), "50 + 25 del 12 de marzo")
}

// La agregación no depende del orden de llegada de las ventas.
func TestAggregateDaily_InvarianteAlReordenar(t *testing.T) {
	sales := []entity.Sale{
		saleOn(t, "2024-03-10T09:00:00Z", 100, "p1"),
		saleOn(t, "2024-03-11T12:00:00Z", 80, "p1"),
		saleOn(t, "2024-03-12T15:00:00Z", 50, "p2"),
	}
	reversed := []entity.Sale{sales[2], sales[1], sales[0]}

	a := forecast.AggregateDaily(sales, time.UTC)
	b := forecast.AggregateDaily(reversed, time.UTC)

	assert.Equal(t, a, b)
}

// Ventas con total ausente o negativo, o sin fecha, se descartan en silencio.
func TestAggregateDaily_DescartaFilasDefectuosas(t *testing.T) {
	valid := saleOn(t, "2024-03-10T09:00:00Z", 100, "p1")

	noTotal := saleOn(t, "2024-03-10T10:00:00Z", 0, "p1")
	noTotal.Total = decimal.NullDecimal{Valid: false}

	negative := saleOn(t, "2024-03-10T11:00:00Z", -40, "p1")

	noDate := saleOn(t, "2024-03-10T12:00:00Z", 999, "p1")
	noDate.Date = time.Time{}

	points := forecast.AggregateDaily([]entity.Sale{valid, noTotal, negative, noDate}, time.UTC)

	require.Len(t, points, 1)
	assert.True(t, points[0].Total.Equal(decimal.NewFromInt(100)))
}

// Input vacío produce serie vacía, no nil-panic ni error.
func TestAggregateDaily_InputVacio(t *testing.T) {
	points := forecast.AggregateDaily(nil, time.UTC)
	assert.Empty(t, points)
}

// El día calendario se decide en la zona horaria de referencia: las 03:00 UTC
// siguen siendo el día anterior en Bogotá (UTC−5).
func TestAggregateDaily_TruncaEnZonaHoraria(t *testing.T) {
	bogota, err := time.LoadLocation("America/Bogota")
	require.NoError(t, err)

	sale := saleOn(t, "2024-03-10T03:00:00Z", 100, "p1")

	utc := forecast.AggregateDaily([]entity.Sale{sale}, time.UTC)
	local := forecast.AggregateDaily([]entity.Sale{sale}, bogota)

	require.Len(t, utc, 1)
	require.Len(t, local, 1)
	assert.Equal(t, "2024-03-10", utc[0].Date.Format("2006-01-02"))
	assert.Equal(t, "2024-03-09", local[0].Date.Format("2006-01-02"))
}

// ──────────────────────────────────────────────────────────────────────────────
// AggregateByKey / TopN
// ──────────────────────────────────────────────────────────────────────────────

// El rollup acumula por clave y preserva el orden de primera aparición.
func TestAggregateByKey_OrdenDePrimeraAparicion(t *testing.T) {
	sales := []entity.Sale{
		saleOn(t, "2024-03-10T09:00:00Z", 30, "p2"),
		saleOn(t, "2024-03-10T10:00:00Z", 100, "p1"),
		saleOn(t, "2024-03-11T09:00:00Z", 20, "p2"),
	}

	rollup := forecast.AggregateByKey(sales, func(s entity.Sale) string { return s.ProductID })

	require.Len(t, rollup, 2)
	assert.Equal(t, "p2", rollup[0].Key)
	assert.True(t, rollup[0].Revenue.Equal(decimal.NewFromInt(50)))
	assert.Equal(t, "p1", rollup[1].Key)
	assert.True(t, rollup[1].Revenue.Equal(decimal.NewFromInt(100)))
}

// Claves vacías (ej. producto sin categoría) no generan entrada.
func TestAggregateByKey_OmiteClavesVacias(t *testing.T) {
	sales := []entity.Sale{
		saleOn(t, "2024-03-10T09:00:00Z", 100, "p1"),
		saleOn(t, "2024-03-10T10:00:00Z", 50, ""),
	}

	rollup := forecast.AggregateByKey(sales, func(s entity.Sale) string { return s.ProductID })

	require.Len(t, rollup, 1)
	assert.Equal(t, "p1", rollup[0].Key)
}

// TopN ordena descendente y resuelve empates por orden del rollup.
func TestTopN_DescendenteConEmpatesEstables(t *testing.T) {
	rollup := []forecast.KeyRevenue{
		{Key: "a", Revenue: decimal.NewFromInt(50)},
		{Key: "b", Revenue: decimal.NewFromInt(100)},
		{Key: "c", Revenue: decimal.NewFromInt(50)},
	}

	top := forecast.TopN(rollup, 2)

	require.Len(t, top, 2)
	assert.Equal(t, "b", top[0].Key)
	assert.Equal(t, "a", top[1].Key, "empate 50-50 lo gana la primera aparición")
}

// n mayor que el rollup devuelve todo; n negativo devuelve vacío.
func TestTopN_LimitesDeN(t *testing.T) {
	rollup := []forecast.KeyRevenue{
		{Key: "a", Revenue: decimal.NewFromInt(10)},
	}

	assert.Len(t, forecast.TopN(rollup, 5), 1)
	assert.Empty(t, forecast.TopN(rollup, -1))
}
