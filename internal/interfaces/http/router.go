package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/stokly/insights-api/internal/application/analytics"
	"github.com/stokly/insights-api/internal/application/auth"
	"github.com/stokly/insights-api/internal/application/forecasting"
	"github.com/stokly/insights-api/internal/application/insight"
	"github.com/stokly/insights-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC      *auth.AuthUseCase
	ProductUC   *usecase.ProductUseCase
	CustomerUC  *usecase.CustomerUseCase
	SaleUC      *usecase.SaleUseCase
	ForecastUC  *forecasting.ForecastUseCase
	InsightUC   *insight.InsightUseCase
	DashboardUC *analytics.DashboardUseCase
	AssistantUC *usecase.AssistantUseCase
	JWTSecret   string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Products (protegido)
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)

	// Customers (protegido)
	customers := protected.Group("/customers")
	customerHandler := NewCustomerHandler(deps.CustomerUC)
	customers.Post("/", customerHandler.Create)
	customers.Get("/", customerHandler.List)

	// Sales (protegido)
	sales := protected.Group("/sales")
	saleHandler := NewSaleHandler(deps.SaleUC)
	sales.Post("/", saleHandler.Create)
	sales.Get("/", saleHandler.List)

	// Forecast (protegido)
	forecastHandler := NewForecastHandler(deps.ForecastUC)
	protected.Get("/forecast/sales", forecastHandler.GetSalesForecast)

	// Insights (protegido)
	insightHandler := NewInsightHandler(deps.InsightUC)
	protected.Get("/insights", insightHandler.GetInsights)

	// Dashboard (protegido)
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	protected.Get("/dashboard/summary", dashboardHandler.GetSummary)

	// Asistente (protegido)
	assistantHandler := NewAssistantHandler(deps.AssistantUC)
	protected.Post("/assistant/chat", assistantHandler.Chat)
}
