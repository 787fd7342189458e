package repository

import (
	"context"

	"github.com/stokly/insights-api/internal/domain/entity"
)

// CustomerRepository acceso a los clientes de la empresa.
type CustomerRepository interface {
	// Create persiste un nuevo cliente.
	Create(ctx context.Context, customer *entity.Customer) error

	// ListByCompany lista clientes de la empresa con paginación, por nombre.
	ListByCompany(ctx context.Context, companyID string, limit, offset int) ([]entity.Customer, error)

	// CountByCompany devuelve el total de clientes registrados de la empresa.
	CountByCompany(ctx context.Context, companyID string) (int, error)
}
