package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stokly/insights-api/internal/application/dto"
	"github.com/stokly/insights-api/internal/application/ports"
	"github.com/stokly/insights-api/internal/domain"
	"github.com/stokly/insights-api/internal/domain/repository"
)

// llmTimeout tope por llamada al LLM; el adaptador tiene además su propio
// timeout de red más holgado.
const llmTimeout = 20 * time.Second

// AssistantUseCase orquesta el asistente conversacional: arma el snapshot del
// negocio y delega el prompt al LLM. No interpreta la respuesta.
type AssistantUseCase struct {
	llm          ports.LLMService
	saleRepo     repository.SaleRepository
	productRepo  repository.ProductRepository
	customerRepo repository.CustomerRepository
}

// NewAssistantUseCase construye el caso de uso.
func NewAssistantUseCase(
	llm ports.LLMService,
	saleRepo repository.SaleRepository,
	productRepo repository.ProductRepository,
	customerRepo repository.CustomerRepository,
) *AssistantUseCase {
	return &AssistantUseCase{
		llm:          llm,
		saleRepo:     saleRepo,
		productRepo:  productRepo,
		customerRepo: customerRepo,
	}
}

// Chat responde el prompt del usuario con el contexto del negocio adjunto.
func (uc *AssistantUseCase) Chat(ctx context.Context, companyID string, in dto.ChatRequest) (*dto.ChatResponse, error) {
	if strings.TrimSpace(in.Prompt) == "" {
		return nil, domain.ErrInvalidInput
	}

	business, err := uc.buildBusinessContext(ctx, companyID)
	if err != nil {
		return nil, err
	}

	llmCtx, cancel := context.WithTimeout(ctx, llmTimeout)
	defer cancel()

	reply, err := uc.llm.Chat(llmCtx, in.Prompt, business)
	if err != nil {
		return nil, err
	}
	return &dto.ChatResponse{Reply: reply}, nil
}

// buildBusinessContext resume el estado actual para el system prompt.
func (uc *AssistantUseCase) buildBusinessContext(ctx context.Context, companyID string) (dto.BusinessContext, error) {
	sales, err := uc.saleRepo.ListCompletedByCompany(ctx, companyID)
	if err != nil {
		return dto.BusinessContext{}, err
	}
	products, err := uc.productRepo.ListAllByCompany(ctx, companyID)
	if err != nil {
		return dto.BusinessContext{}, err
	}
	customers, err := uc.customerRepo.CountByCompany(ctx, companyID)
	if err != nil {
		return dto.BusinessContext{}, err
	}

	var totalRevenue decimal.Decimal
	for _, s := range sales {
		if s.HasValidTotal() {
			totalRevenue = totalRevenue.Add(s.Total.Decimal)
		}
	}
	lowStock := 0
	for _, p := range products {
		if p.LowStock() {
			lowStock++
		}
	}

	return dto.BusinessContext{
		TotalRevenue:   totalRevenue.Round(2).StringFixed(2),
		SalesCount:     len(sales),
		ProductsCount:  len(products),
		CustomersCount: customers,
		LowStockCount:  lowStock,
	}, nil
}
