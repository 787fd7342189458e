package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/stokly/insights-api/internal/domain"
	"github.com/stokly/insights-api/internal/domain/entity"
	"github.com/stokly/insights-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación de ProductRepository (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

const productColumns = `id, company_id, name, category, stock, min_stock, price, created_at, updated_at`

// Create persiste un producto nuevo.
func (r *ProductRepo) Create(ctx context.Context, product *entity.Product) error {
	query := `
		INSERT INTO products (` + productColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(ctx, query,
		product.ID, product.CompanyID, product.Name, nullIfEmpty(product.Category),
		product.Stock, product.MinStock, product.Price, product.CreatedAt, product.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetByID obtiene un producto por ID. Devuelve (nil, nil) si no existe.
func (r *ProductRepo) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1`
	p, err := scanProduct(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return p, nil
}

// Update actualiza nombre, categoría, stocks y precio.
func (r *ProductRepo) Update(ctx context.Context, product *entity.Product) error {
	query := `
		UPDATE products
		SET name = $2, category = $3, stock = $4, min_stock = $5, price = $6, updated_at = $7
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		product.ID, product.Name, nullIfEmpty(product.Category),
		product.Stock, product.MinStock, product.Price, product.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update product: %w", err)
	}
	return nil
}

// ListByCompany lista productos paginados por nombre.
func (r *ProductRepo) ListByCompany(ctx context.Context, companyID string, limit, offset int) ([]entity.Product, error) {
	query := `
		SELECT ` + productColumns + `
		FROM products WHERE company_id = $1
		ORDER BY name LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(ctx, query, companyID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()
	return scanProducts(rows)
}

// ListAllByCompany devuelve el catálogo completo en orden de creación.
// El ORDER BY estable (created_at, id) es el desempate determinista de la
// regla de producto destacado; no cambiarlo sin revisar esa regla.
func (r *ProductRepo) ListAllByCompany(ctx context.Context, companyID string) ([]entity.Product, error) {
	query := `
		SELECT ` + productColumns + `
		FROM products WHERE company_id = $1
		ORDER BY created_at, id`
	rows, err := r.q.Query(ctx, query, companyID)
	if err != nil {
		return nil, fmt.Errorf("list all products: %w", err)
	}
	defer rows.Close()
	return scanProducts(rows)
}

func scanProduct(row pgx.Row) (*entity.Product, error) {
	var p entity.Product
	var category *string
	if err := row.Scan(
		&p.ID, &p.CompanyID, &p.Name, &category,
		&p.Stock, &p.MinStock, &p.Price, &p.CreatedAt, &p.UpdatedAt,
	); err != nil {
		return nil, err
	}
	if category != nil {
		p.Category = *category
	}
	return &p, nil
}

func scanProducts(rows pgx.Rows) ([]entity.Product, error) {
	var list []entity.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, *p)
	}
	return list, rows.Err()
}
