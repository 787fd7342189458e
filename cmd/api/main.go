package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/stokly/insights-api/internal/application/analytics"
	"github.com/stokly/insights-api/internal/application/auth"
	"github.com/stokly/insights-api/internal/application/forecasting"
	"github.com/stokly/insights-api/internal/application/insight"
	"github.com/stokly/insights-api/internal/application/usecase"
	infraai "github.com/stokly/insights-api/internal/infrastructure/ai"
	"github.com/stokly/insights-api/internal/infrastructure/postgres"
	httpRouter "github.com/stokly/insights-api/internal/interfaces/http"
	"github.com/stokly/insights-api/pkg/config"
	"github.com/stokly/insights-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Level:   "info",
		Service: cfg.App.Name,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("timezone", cfg.Forecast.Timezone).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	customerRepo := postgres.NewCustomerRepository(pool)
	saleRepo := postgres.NewSaleRepository(pool)

	loc := cfg.Forecast.Location()
	forecastOpts := forecasting.Options{
		MinDays:     cfg.Forecast.MinDays,
		HorizonDays: cfg.Forecast.HorizonDays,
		Location:    loc,
	}

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	productUC := usecase.NewProductUseCase(productRepo)
	customerUC := usecase.NewCustomerUseCase(customerRepo)
	saleUC := usecase.NewSaleUseCase(saleRepo, productRepo, loc)
	forecastUC := forecasting.NewForecastUseCase(saleRepo, forecastOpts)
	insightUC := insight.NewInsightUseCase(productRepo, saleRepo, forecastOpts)
	dashboardUC := analytics.NewDashboardUseCase(saleRepo, productRepo, customerRepo)

	openaiSvc := infraai.NewOpenAIService(cfg.AI.OpenAIAPIKey, cfg.AI.OpenAIModel)
	assistantUC := usecase.NewAssistantUseCase(openaiSvc, saleRepo, productRepo, customerRepo)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "STOKLY Insights API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:      authUC,
		ProductUC:   productUC,
		CustomerUC:  customerUC,
		SaleUC:      saleUC,
		ForecastUC:  forecastUC,
		InsightUC:   insightUC,
		DashboardUC: dashboardUC,
		AssistantUC: assistantUC,
		JWTSecret:   cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
