package repository

import (
	"context"

	"github.com/stokly/insights-api/internal/domain/entity"
)

// ProductRepository acceso al catálogo de productos.
type ProductRepository interface {
	// Create persiste un nuevo producto.
	Create(ctx context.Context, product *entity.Product) error

	// GetByID obtiene un producto por ID. Devuelve (nil, nil) si no existe.
	GetByID(ctx context.Context, id string) (*entity.Product, error)

	// Update actualiza nombre, categoría, stocks y precio.
	Update(ctx context.Context, product *entity.Product) error

	// ListByCompany lista productos de la empresa con paginación.
	ListByCompany(ctx context.Context, companyID string, limit, offset int) ([]entity.Product, error)

	// ListAllByCompany devuelve el catálogo completo de la empresa en orden
	// de creación. Ese orden es el desempate determinista de la regla de
	// producto destacado, así que las implementaciones deben preservarlo.
	ListAllByCompany(ctx context.Context, companyID string) ([]entity.Product, error)
}
