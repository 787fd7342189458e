package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest entrada para crear un producto.
type CreateProductRequest struct {
	Name     string          `json:"name"`
	Category string          `json:"category"`
	Stock    int             `json:"stock"`
	MinStock int             `json:"min_stock"`
	Price    decimal.Decimal `json:"price"`
}

// UpdateProductRequest entrada para actualizar un producto (campos opcionales).
type UpdateProductRequest struct {
	Name     *string          `json:"name"`
	Category *string          `json:"category"`
	Stock    *int             `json:"stock"`
	MinStock *int             `json:"min_stock"`
	Price    *decimal.Decimal `json:"price"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID        string          `json:"id"`
	CompanyID string          `json:"company_id"`
	Name      string          `json:"name"`
	Category  string          `json:"category,omitempty"`
	Stock     int             `json:"stock"`
	MinStock  int             `json:"min_stock"`
	Price     decimal.Decimal `json:"price"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// ProductListResponse lista paginada de productos.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
