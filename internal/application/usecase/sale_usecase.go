package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stokly/insights-api/internal/application/dto"
	"github.com/stokly/insights-api/internal/domain"
	"github.com/stokly/insights-api/internal/domain/entity"
	"github.com/stokly/insights-api/internal/domain/repository"
)

const saleDateLayout = "2006-01-02"

// SaleUseCase registro y listado de ventas.
type SaleUseCase struct {
	saleRepo    repository.SaleRepository
	productRepo repository.ProductRepository
	loc         *time.Location
}

// NewSaleUseCase construye el caso de uso. loc es la zona horaria de
// referencia del negocio (la misma que usa el motor de previsión).
func NewSaleUseCase(saleRepo repository.SaleRepository, productRepo repository.ProductRepository, loc *time.Location) *SaleUseCase {
	if loc == nil {
		loc = time.UTC
	}
	return &SaleUseCase{saleRepo: saleRepo, productRepo: productRepo, loc: loc}
}

// Create registra una venta. El total se calcula siempre en el servidor como
// quantity × unit_price; el estado por defecto es completed.
func (uc *SaleUseCase) Create(ctx context.Context, companyID string, in dto.CreateSaleRequest) (*dto.SaleResponse, error) {
	if in.ProductID == "" || in.Quantity <= 0 || in.UnitPrice.IsNegative() {
		return nil, domain.ErrInvalidInput
	}

	product, err := uc.productRepo.GetByID(ctx, in.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil || product.CompanyID != companyID {
		return nil, domain.ErrNotFound
	}

	status := in.Status
	switch status {
	case "":
		status = entity.SaleStatusCompleted
	case entity.SaleStatusPending, entity.SaleStatusCompleted, entity.SaleStatusCancelled:
	default:
		return nil, domain.ErrInvalidInput
	}

	date := time.Now().In(uc.loc)
	if in.Date != "" {
		date, err = time.ParseInLocation(saleDateLayout, in.Date, uc.loc)
		if err != nil {
			return nil, fmt.Errorf("fecha inválida %q: %w", in.Date, domain.ErrInvalidInput)
		}
	}

	total := in.UnitPrice.Mul(decimal.NewFromInt(int64(in.Quantity)))
	sale := &entity.Sale{
		ID:         uuid.New().String(),
		CompanyID:  companyID,
		ProductID:  in.ProductID,
		CustomerID: in.CustomerID,
		Quantity:   in.Quantity,
		UnitPrice:  in.UnitPrice,
		Total:      decimal.NullDecimal{Decimal: total, Valid: true},
		Status:     status,
		Date:       date,
		CreatedAt:  time.Now(),
	}
	if err := uc.saleRepo.Create(ctx, sale); err != nil {
		return nil, err
	}
	return toSaleResponse(sale), nil
}

// List lista ventas de la empresa con paginación.
func (uc *SaleUseCase) List(ctx context.Context, companyID string, page dto.PageRequest) (*dto.SaleListResponse, error) {
	page.DefaultPage()
	sales, err := uc.saleRepo.ListByCompany(ctx, companyID, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.SaleResponse, 0, len(sales))
	for i := range sales {
		items = append(items, *toSaleResponse(&sales[i]))
	}
	return &dto.SaleListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}, nil
}

func toSaleResponse(s *entity.Sale) *dto.SaleResponse {
	resp := &dto.SaleResponse{
		ID:         s.ID,
		CompanyID:  s.CompanyID,
		ProductID:  s.ProductID,
		CustomerID: s.CustomerID,
		Quantity:   s.Quantity,
		UnitPrice:  s.UnitPrice,
		Status:     s.Status,
		Date:       s.Date,
		CreatedAt:  s.CreatedAt,
	}
	if s.Total.Valid {
		total := s.Total.Decimal
		resp.Total = &total
	}
	return resp
}
