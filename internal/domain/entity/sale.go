package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de una venta.
const (
	SaleStatusPending   = "pending"
	SaleStatusCompleted = "completed"
	SaleStatusCancelled = "cancelled"
)

// Sale representa una venta registrada (una línea producto-cliente).
// Total = Quantity × UnitPrice; se usa NullDecimal porque filas importadas de
// sistemas anteriores pueden venir sin total, y el motor de previsión las
// descarta en silencio en lugar de abortar la agregación.
type Sale struct {
	ID         string
	CompanyID  string
	ProductID  string
	CustomerID string
	Quantity   int
	UnitPrice  decimal.Decimal
	Total      decimal.NullDecimal
	Status     string // pending | completed | cancelled
	Date       time.Time
	CreatedAt  time.Time
}

// HasValidTotal indica si la venta aporta un total usable para agregación:
// presente y no negativo.
func (s Sale) HasValidTotal() bool {
	return s.Total.Valid && !s.Total.Decimal.IsNegative()
}
