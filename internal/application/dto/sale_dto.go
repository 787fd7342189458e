package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateSaleRequest entrada para registrar una venta.
// El total NO se acepta del cliente: se calcula como quantity × unit_price.
type CreateSaleRequest struct {
	ProductID  string          `json:"product_id"`
	CustomerID string          `json:"customer_id"`
	Quantity   int             `json:"quantity"`
	UnitPrice  decimal.Decimal `json:"unit_price"`
	Status     string          `json:"status"` // default: completed
	Date       string          `json:"date"`   // YYYY-MM-DD; default: hoy
}

// SaleResponse salida de una venta.
type SaleResponse struct {
	ID         string           `json:"id"`
	CompanyID  string           `json:"company_id"`
	ProductID  string           `json:"product_id"`
	CustomerID string           `json:"customer_id,omitempty"`
	Quantity   int              `json:"quantity"`
	UnitPrice  decimal.Decimal  `json:"unit_price"`
	Total      *decimal.Decimal `json:"total"` // null en filas heredadas sin total
	Status     string           `json:"status"`
	Date       time.Time        `json:"date"`
	CreatedAt  time.Time        `json:"created_at"`
}

// SaleListResponse lista paginada de ventas.
type SaleListResponse struct {
	Items []SaleResponse `json:"items"`
	Page  PageResponse   `json:"page"`
}
