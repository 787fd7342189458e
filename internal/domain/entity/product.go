package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del catálogo.
// Stock y MinStock alimentan la regla de stock bajo del generador de insights;
// el motor de previsión los trata como solo lectura.
type Product struct {
	ID        string
	CompanyID string
	Name      string
	Category  string // opcional; vacío = sin categoría
	Stock     int
	MinStock  int
	Price     decimal.Decimal
	CreatedAt time.Time
	UpdatedAt time.Time
}

// LowStock indica si el producto está en o por debajo de su umbral de reposición.
func (p Product) LowStock() bool {
	return p.Stock <= p.MinStock
}
