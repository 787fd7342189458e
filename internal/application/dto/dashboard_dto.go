package dto

import "github.com/shopspring/decimal"

// DashboardSummaryDTO respuesta de GET /api/dashboard/summary.
// KPIs globales más los desgloses que alimentan los widgets de la SPA
// (top productos y dona de categorías).
type DashboardSummaryDTO struct {
	TotalRevenue   decimal.Decimal `json:"total_revenue"`   // suma de ventas completadas
	SalesCount     int             `json:"sales_count"`     // transacciones completadas
	CustomersCount int             `json:"customers_count"` // clientes registrados
	ProductsCount  int             `json:"products_count"`  // ítems únicos del catálogo

	// Top 5 productos por ingreso (desempate por orden del catálogo)
	TopProducts []ProductRevenueDTO `json:"top_products"`

	// Ingreso por categoría (productos sin categoría se omiten)
	Categories []CategoryRevenueDTO `json:"categories"`
}

// ProductRevenueDTO ingreso acumulado de un producto.
type ProductRevenueDTO struct {
	ProductID string          `json:"product_id"`
	Name      string          `json:"name"`
	Revenue   decimal.Decimal `json:"revenue"`
}

// CategoryRevenueDTO ingreso acumulado de una categoría.
type CategoryRevenueDTO struct {
	Category string          `json:"category"`
	Revenue  decimal.Decimal `json:"revenue"`
}
