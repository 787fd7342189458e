package repository

import (
	"context"

	"github.com/stokly/insights-api/internal/domain/entity"
)

// SaleRepository acceso a las ventas de la empresa.
type SaleRepository interface {
	// Create persiste una nueva venta.
	Create(ctx context.Context, sale *entity.Sale) error

	// ListByCompany lista ventas de la empresa con paginación,
	// ordenadas por fecha descendente.
	ListByCompany(ctx context.Context, companyID string, limit, offset int) ([]entity.Sale, error)

	// ListCompletedByCompany devuelve todas las ventas en estado completed
	// de la empresa, ya filtradas para el motor de previsión. El filtrado por
	// estado es responsabilidad de esta capa; el motor no lo re-valida.
	ListCompletedByCompany(ctx context.Context, companyID string) ([]entity.Sale, error)
}
