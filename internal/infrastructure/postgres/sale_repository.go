package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/stokly/insights-api/internal/domain/entity"
	"github.com/stokly/insights-api/internal/domain/repository"
)

var _ repository.SaleRepository = (*SaleRepo)(nil)

// SaleRepo implementación de SaleRepository (usable con pool o tx).
type SaleRepo struct {
	q Querier
}

// NewSaleRepository construye el adaptador. Pasar pool o tx (Querier).
func NewSaleRepository(q Querier) *SaleRepo {
	return &SaleRepo{q: q}
}

const saleColumns = `id, company_id, product_id, customer_id, quantity, unit_price, total, status, date, created_at`

// Create persiste una venta nueva.
func (r *SaleRepo) Create(ctx context.Context, sale *entity.Sale) error {
	query := `
		INSERT INTO sales (` + saleColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(ctx, query,
		sale.ID, sale.CompanyID, sale.ProductID, nullIfEmpty(sale.CustomerID),
		sale.Quantity, sale.UnitPrice, sale.Total, sale.Status, sale.Date, sale.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert sale: %w", err)
	}
	return nil
}

// ListByCompany lista ventas paginadas, más recientes primero.
func (r *SaleRepo) ListByCompany(ctx context.Context, companyID string, limit, offset int) ([]entity.Sale, error) {
	query := `
		SELECT ` + saleColumns + `
		FROM sales WHERE company_id = $1
		ORDER BY date DESC, created_at DESC
		LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(ctx, query, companyID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list sales: %w", err)
	}
	defer rows.Close()
	return scanSales(rows)
}

// ListCompletedByCompany devuelve todas las ventas completadas de la empresa.
// Aquí se aplica el filtro por estado que el motor de previsión asume como
// precondición; el orden no importa (la agregación es independiente del orden).
func (r *SaleRepo) ListCompletedByCompany(ctx context.Context, companyID string) ([]entity.Sale, error) {
	query := `
		SELECT ` + saleColumns + `
		FROM sales
		WHERE company_id = $1 AND status = 'completed'`
	rows, err := r.q.Query(ctx, query, companyID)
	if err != nil {
		return nil, fmt.Errorf("list completed sales: %w", err)
	}
	defer rows.Close()
	return scanSales(rows)
}

func scanSales(rows pgx.Rows) ([]entity.Sale, error) {
	var list []entity.Sale
	for rows.Next() {
		var s entity.Sale
		var customerID *string
		if err := rows.Scan(
			&s.ID, &s.CompanyID, &s.ProductID, &customerID,
			&s.Quantity, &s.UnitPrice, &s.Total, &s.Status, &s.Date, &s.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan sale: %w", err)
		}
		if customerID != nil {
			s.CustomerID = *customerID
		}
		list = append(list, s)
	}
	return list, rows.Err()
}

// nullIfEmpty convierte "" en NULL para columnas opcionales.
func nullIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
