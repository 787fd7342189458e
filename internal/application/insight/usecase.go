// Package insight genera las tarjetas de insight del dashboard: un motor de
// reglas pequeño y ordenado que cruza la previsión de ventas con el estado
// actual de inventario y ventas.
package insight

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/stokly/insights-api/internal/application/dto"
	"github.com/stokly/insights-api/internal/application/forecasting"
	"github.com/stokly/insights-api/internal/domain/entity"
	"github.com/stokly/insights-api/internal/domain/forecast"
	"github.com/stokly/insights-api/internal/domain/repository"
)

// forecastWindowDays días de predicción que suma la regla de previsión.
const forecastWindowDays = 7

// InsightUseCase evalúa las reglas en orden fijo. Las reglas son
// independientes entre sí (ninguna lee la salida de otra), así que datos
// parciales nunca bloquean reglas no relacionadas. El orden de evaluación ES
// la prioridad de presentación; no hay ordenamiento posterior por severidad.
type InsightUseCase struct {
	productRepo repository.ProductRepository
	saleRepo    repository.SaleRepository
	opts        forecasting.Options
}

// NewInsightUseCase construye el caso de uso.
func NewInsightUseCase(
	productRepo repository.ProductRepository,
	saleRepo repository.SaleRepository,
	opts forecasting.Options,
) *InsightUseCase {
	return &InsightUseCase{productRepo: productRepo, saleRepo: saleRepo, opts: opts}
}

// Generate produce la lista ordenada de insights para la empresa.
//
// Las dos consultas (catálogo y ventas) leen datos disjuntos y corren en
// paralelo; la previsión se calcula sobre las ventas ya traídas y las reglas
// se ensamblan en secuencia para preservar el orden.
func (uc *InsightUseCase) Generate(ctx context.Context, companyID string) ([]dto.InsightDTO, error) {
	type productsResult struct {
		products []entity.Product
		err      error
	}
	type salesResult struct {
		sales []entity.Sale
		err   error
	}

	productsCh := make(chan productsResult, 1)
	salesCh := make(chan salesResult, 1)

	go func() {
		products, err := uc.productRepo.ListAllByCompany(ctx, companyID)
		productsCh <- productsResult{products, err}
	}()
	go func() {
		sales, err := uc.saleRepo.ListCompletedByCompany(ctx, companyID)
		salesCh <- salesResult{sales, err}
	}()

	pRes := <-productsCh
	sRes := <-salesCh

	if pRes.err != nil {
		return nil, fmt.Errorf("insights: catálogo: %w", pRes.err)
	}
	if sRes.err != nil {
		return nil, fmt.Errorf("insights: ventas: %w", sRes.err)
	}

	outcome := forecasting.Build(sRes.sales, uc.opts)
	return BuildInsights(sRes.sales, pRes.products, outcome), nil
}

// BuildInsights evalúa las reglas sobre un snapshot ya obtenido (puro, sin I/O).
// Reglas, en orden de prioridad:
//  1. Previsión: ingreso proyectado de los próximos 7 días. Se omite en
//     silencio si la previsión resultó en datos insuficientes.
//  2. Stock bajo: productos con stock ≤ stock mínimo.
//  3. Producto destacado: el de mayor ingreso (empate: primero del catálogo).
//  4. Onboarding: solo si ninguna otra regla produjo insight.
//
// Máximo un insight por regla; no hay deduplicación adicional.
func BuildInsights(
	sales []entity.Sale,
	products []entity.Product,
	outcome forecasting.Outcome,
) []dto.InsightDTO {
	insights := make([]dto.InsightDTO, 0, 3)

	if card := forecastRule(outcome); card != nil {
		insights = append(insights, *card)
	}
	if card := lowStockRule(products); card != nil {
		insights = append(insights, *card)
	}
	if card := topProductRule(sales, products); card != nil {
		insights = append(insights, *card)
	}
	if len(insights) == 0 {
		insights = append(insights, dto.InsightDTO{
			ID:          "get-started",
			Category:    "onboarding",
			Title:       "Empieza a usar los insights",
			Description: "Registra ventas y productos para que el sistema genere insights personalizados de tu negocio.",
			Link:        "/vendas",
		})
	}

	// La posición final asigna la prioridad
	for i := range insights {
		insights[i].Priority = i + 1
	}
	return insights
}

// forecastRule suma el valor predicho de los primeros 7 puntos de predicción.
func forecastRule(outcome forecasting.Outcome) *dto.InsightDTO {
	if outcome.Forecast == nil {
		return nil
	}

	var projected decimal.Decimal
	for i, p := range outcome.Forecast.Predictions {
		if i >= forecastWindowDays {
			break
		}
		projected = projected.Add(p.PredictedValue)
	}

	return &dto.InsightDTO{
		ID:       "sales-prediction",
		Category: "forecast",
		Title:    "Previsión de ventas",
		Description: fmt.Sprintf(
			"El modelo proyecta un ingreso de $%s para los próximos 7 días.",
			projected.Round(2).StringFixed(2)),
		Link: "/vendas",
	}
}

// lowStockRule cuenta productos en o bajo su umbral de reposición.
func lowStockRule(products []entity.Product) *dto.InsightDTO {
	count := 0
	for _, p := range products {
		if p.LowStock() {
			count++
		}
	}
	if count == 0 {
		return nil
	}

	return &dto.InsightDTO{
		ID:       "low-stock",
		Category: "inventory",
		Title:    "Alerta de stock bajo",
		Description: fmt.Sprintf(
			"%d producto(s) necesitan reposición urgente para evitar pérdida de ventas.", count),
		Link: "/estoque",
	}
}

// topProductRule elige el producto con mayor ingreso acumulado. El recorrido
// en orden de catálogo con comparación estricta garantiza que los empates los
// gana la primera aparición en el catálogo.
func topProductRule(sales []entity.Sale, products []entity.Product) *dto.InsightDTO {
	if len(sales) == 0 || len(products) == 0 {
		return nil
	}

	rollup := forecast.AggregateByKey(sales, func(s entity.Sale) string { return s.ProductID })
	revenueByProduct := make(map[string]decimal.Decimal, len(rollup))
	for _, kr := range rollup {
		revenueByProduct[kr.Key] = kr.Revenue
	}

	var top *entity.Product
	var topRevenue decimal.Decimal
	for i, p := range products {
		rev, ok := revenueByProduct[p.ID]
		if !ok || !rev.IsPositive() {
			continue
		}
		if top == nil || rev.GreaterThan(topRevenue) {
			top = &products[i]
			topRevenue = rev
		}
	}
	if top == nil {
		// Ventas sin producto correspondiente en el catálogo
		return nil
	}

	return &dto.InsightDTO{
		ID:       "top-product",
		Category: "sales",
		Title:    "Producto destacado",
		Description: fmt.Sprintf(
			"\"%s\" es tu producto más vendido. Considera crear una campaña para él.", top.Name),
		Link: "/estoque",
	}
}
