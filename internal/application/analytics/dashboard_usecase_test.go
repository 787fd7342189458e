package analytics_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stokly/insights-api/internal/application/analytics"
	"github.com/stokly/insights-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

func sale(productID string, total float64) entity.Sale {
	return entity.Sale{
		ID:        "sale",
		CompanyID: "company-1",
		ProductID: productID,
		Quantity:  1,
		Total:     decimal.NullDecimal{Decimal: decimal.NewFromFloat(total), Valid: true},
		Status:    entity.SaleStatusCompleted,
		Date:      time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC),
	}
}

func product(id, name, category string) entity.Product {
	return entity.Product{ID: id, CompanyID: "company-1", Name: name, Category: category, Stock: 10, MinStock: 2}
}

type stubSaleRepo struct {
	sales []entity.Sale
	err   error
}

func (r *stubSaleRepo) Create(context.Context, *entity.Sale) error { return nil }
func (r *stubSaleRepo) ListByCompany(context.Context, string, int, int) ([]entity.Sale, error) {
	return r.sales, r.err
}
func (r *stubSaleRepo) ListCompletedByCompany(context.Context, string) ([]entity.Sale, error) {
	return r.sales, r.err
}

type stubProductRepo struct {
	products []entity.Product
}

func (r *stubProductRepo) Create(context.Context, *entity.Product) error { return nil }
func (r *stubProductRepo) GetByID(context.Context, string) (*entity.Product, error) {
	return nil, nil
}
func (r *stubProductRepo) Update(context.Context, *entity.Product) error { return nil }
func (r *stubProductRepo) ListByCompany(context.Context, string, int, int) ([]entity.Product, error) {
	return r.products, nil
}
func (r *stubProductRepo) ListAllByCompany(context.Context, string) ([]entity.Product, error) {
	return r.products, nil
}

type stubCustomerRepo struct {
	count int
}

func (r *stubCustomerRepo) Create(context.Context, *entity.Customer) error { return nil }
func (r *stubCustomerRepo) ListByCompany(context.Context, string, int, int) ([]entity.Customer, error) {
	return nil, nil
}
func (r *stubCustomerRepo) CountByCompany(context.Context, string) (int, error) {
	return r.count, nil
}

// ──────────────────────────────────────────────────────────────────────────────
// GetSummary
// ──────────────────────────────────────────────────────────────────────────────

// KPIs, top productos y categorías a partir de un snapshot típico.
func TestGetSummary_ResumenCompleto(t *testing.T) {
	sales := []entity.Sale{
		sale("p1", 100),
		sale("p1", 50),
		sale("p2", 200),
		sale("p3", 30),
	}
	products := []entity.Product{
		product("p1", "Café premium", "bebidas"),
		product("p2", "Molinillo", "equipos"),
		product("p3", "Té verde", "bebidas"),
	}
	uc := analytics.NewDashboardUseCase(
		&stubSaleRepo{sales: sales},
		&stubProductRepo{products: products},
		&stubCustomerRepo{count: 12},
	)

	summary, err := uc.GetSummary(context.Background(), "company-1")
	require.NoError(t, err)

	assert.True(t, summary.TotalRevenue.Equal(decimal.NewFromInt(380)))
	assert.Equal(t, 4, summary.SalesCount)
	assert.Equal(t, 12, summary.CustomersCount)
	assert.Equal(t, 3, summary.ProductsCount)

	require.Len(t, summary.TopProducts, 3)
	assert.Equal(t, "Molinillo", summary.TopProducts[0].Name)
	assert.True(t, summary.TopProducts[0].Revenue.Equal(decimal.NewFromInt(200)))
	assert.Equal(t, "Café premium", summary.TopProducts[1].Name)

	require.Len(t, summary.Categories, 2)
	// "bebidas" aparece primero: primera categoría vista en las ventas
	assert.Equal(t, "bebidas", summary.Categories[0].Category)
	assert.True(t, summary.Categories[0].Revenue.Equal(decimal.NewFromInt(180)), "100 + 50 + 30 de bebidas")
	assert.Equal(t, "equipos", summary.Categories[1].Category)
}

// Ventas de un producto fuera del catálogo: entra al top con nombre
// "Desconocido" y no aporta a ninguna categoría.
func TestGetSummary_ProductoFueraDeCatalogo(t *testing.T) {
	uc := analytics.NewDashboardUseCase(
		&stubSaleRepo{sales: []entity.Sale{sale("fantasma", 90)}},
		&stubProductRepo{},
		&stubCustomerRepo{},
	)

	summary, err := uc.GetSummary(context.Background(), "company-1")
	require.NoError(t, err)

	require.Len(t, summary.TopProducts, 1)
	assert.Equal(t, "Desconocido", summary.TopProducts[0].Name)
	assert.Empty(t, summary.Categories)
}

// Empresa sin actividad: resumen en ceros con colecciones vacías, sin error.
func TestGetSummary_EmpresaVacia(t *testing.T) {
	uc := analytics.NewDashboardUseCase(&stubSaleRepo{}, &stubProductRepo{}, &stubCustomerRepo{})

	summary, err := uc.GetSummary(context.Background(), "company-1")
	require.NoError(t, err)

	assert.True(t, summary.TotalRevenue.IsZero())
	assert.Zero(t, summary.SalesCount)
	assert.Empty(t, summary.TopProducts)
	assert.Empty(t, summary.Categories)
}

// Un fallo en cualquiera de las consultas paralelas aborta el resumen.
func TestGetSummary_ErrorDeRepositorio(t *testing.T) {
	dbErr := errors.New("conexión perdida")
	uc := analytics.NewDashboardUseCase(
		&stubSaleRepo{err: dbErr},
		&stubProductRepo{},
		&stubCustomerRepo{},
	)

	_, err := uc.GetSummary(context.Background(), "company-1")

	require.Error(t, err)
	assert.ErrorIs(t, err, dbErr)
}
