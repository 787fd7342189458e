// Package analytics contiene el caso de uso del resumen del dashboard:
// KPIs globales y los desgloses por producto y categoría.
package analytics

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/stokly/insights-api/internal/application/dto"
	"github.com/stokly/insights-api/internal/domain/entity"
	"github.com/stokly/insights-api/internal/domain/forecast"
	"github.com/stokly/insights-api/internal/domain/repository"
)

const dashboardTopProducts = 5 // productos en el widget de top ventas

// DashboardUseCase genera el resumen del dashboard a partir del estado
// actual de ventas, catálogo y clientes.
type DashboardUseCase struct {
	saleRepo     repository.SaleRepository
	productRepo  repository.ProductRepository
	customerRepo repository.CustomerRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(
	saleRepo repository.SaleRepository,
	productRepo repository.ProductRepository,
	customerRepo repository.CustomerRepository,
) *DashboardUseCase {
	return &DashboardUseCase{
		saleRepo:     saleRepo,
		productRepo:  productRepo,
		customerRepo: customerRepo,
	}
}

// GetSummary construye el DashboardSummaryDTO para la empresa indicada.
//
// Tres llamadas en paralelo (leen colecciones disjuntas):
//  1. Ventas completadas  → TotalRevenue + SalesCount + rollups
//  2. Catálogo            → ProductsCount + nombres/categorías
//  3. Conteo de clientes  → CustomersCount
func (uc *DashboardUseCase) GetSummary(ctx context.Context, companyID string) (*dto.DashboardSummaryDTO, error) {
	type salesResult struct {
		sales []entity.Sale
		err   error
	}
	type productsResult struct {
		products []entity.Product
		err      error
	}
	type countResult struct {
		count int
		err   error
	}

	salesCh := make(chan salesResult, 1)
	productsCh := make(chan productsResult, 1)
	customersCh := make(chan countResult, 1)

	go func() {
		sales, err := uc.saleRepo.ListCompletedByCompany(ctx, companyID)
		salesCh <- salesResult{sales, err}
	}()
	go func() {
		products, err := uc.productRepo.ListAllByCompany(ctx, companyID)
		productsCh <- productsResult{products, err}
	}()
	go func() {
		count, err := uc.customerRepo.CountByCompany(ctx, companyID)
		customersCh <- countResult{count, err}
	}()

	sRes := <-salesCh
	pRes := <-productsCh
	cRes := <-customersCh

	if sRes.err != nil {
		return nil, fmt.Errorf("dashboard: ventas: %w", sRes.err)
	}
	if pRes.err != nil {
		return nil, fmt.Errorf("dashboard: catálogo: %w", pRes.err)
	}
	if cRes.err != nil {
		return nil, fmt.Errorf("dashboard: clientes: %w", cRes.err)
	}

	return buildSummary(sRes.sales, pRes.products, cRes.count), nil
}

// buildSummary arma el DTO a partir del snapshot (puro, testeable sin DB).
func buildSummary(sales []entity.Sale, products []entity.Product, customersCount int) *dto.DashboardSummaryDTO {
	var totalRevenue decimal.Decimal
	for _, s := range sales {
		if s.HasValidTotal() {
			totalRevenue = totalRevenue.Add(s.Total.Decimal)
		}
	}

	productByID := make(map[string]entity.Product, len(products))
	for _, p := range products {
		productByID[p.ID] = p
	}

	// Top 5 productos por ingreso
	byProduct := forecast.AggregateByKey(sales, func(s entity.Sale) string { return s.ProductID })
	topProducts := make([]dto.ProductRevenueDTO, 0, dashboardTopProducts)
	for _, kr := range forecast.TopN(byProduct, dashboardTopProducts) {
		name := "Desconocido"
		if p, ok := productByID[kr.Key]; ok {
			name = p.Name
		}
		topProducts = append(topProducts, dto.ProductRevenueDTO{
			ProductID: kr.Key,
			Name:      name,
			Revenue:   kr.Revenue.Round(2),
		})
	}

	// Ingreso por categoría; ventas de productos sin categoría (o fuera del
	// catálogo) no aportan a ninguna
	byCategory := forecast.AggregateByKey(sales, func(s entity.Sale) string {
		return productByID[s.ProductID].Category
	})
	categories := make([]dto.CategoryRevenueDTO, 0, len(byCategory))
	for _, kr := range byCategory {
		categories = append(categories, dto.CategoryRevenueDTO{
			Category: kr.Key,
			Revenue:  kr.Revenue.Round(2),
		})
	}

	return &dto.DashboardSummaryDTO{
		TotalRevenue:   totalRevenue.Round(2),
		SalesCount:     len(sales),
		CustomersCount: customersCount,
		ProductsCount:  len(products),
		TopProducts:    topProducts,
		Categories:     categories,
	}
}
