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
	appanalytics "github.com/jhoicas/almacen-api/internal/application/analytics"
	"github.com/jhoicas/almacen-api/internal/application/auth"
	appforecast "github.com/jhoicas/almacen-api/internal/application/forecast"
	"github.com/jhoicas/almacen-api/internal/application/ledger"
	"github.com/jhoicas/almacen-api/internal/application/usecase"
	"github.com/jhoicas/almacen-api/internal/infrastructure/mail"
	"github.com/jhoicas/almacen-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/almacen-api/internal/interfaces/http"
	"github.com/jhoicas/almacen-api/pkg/config"
	"github.com/jhoicas/almacen-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	categoryRepo := postgres.NewCategoryRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	movementRepo := postgres.NewStockMovementRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	resetRepo := postgres.NewPasswordResetRepository(pool)
	analyticsRepo := postgres.NewAnalyticsRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	mailer := mail.NewGomailSender(cfg.Mail, log)

	categoryUC := usecase.NewCategoryUseCase(categoryRepo)
	productUC := usecase.NewProductUseCase(productRepo, categoryRepo)
	recordMovementUC := ledger.NewRecordMovementUseCase(txRunner)
	stockQueryUC := usecase.NewStockQueryUseCase(movementRepo)
	userUC := usecase.NewUserUseCase(userRepo)
	dashboardUC := appanalytics.NewDashboardUseCase(analyticsRepo)
	forecastUC := appforecast.NewForecastUseCase(productRepo, movementRepo)
	authUC := auth.NewAuthUseCase(userRepo, resetRepo, mailer, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	}, cfg.Mail.ResetURL)

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
		Title:    "Almacén API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		CategoryUC:     categoryUC,
		ProductUC:      productUC,
		RecordMovement: recordMovementUC,
		StockQueryUC:   stockQueryUC,
		UserUC:         userUC,
		AuthUC:         authUC,
		DashboardUC:    dashboardUC,
		ForecastUC:     forecastUC,
		JWTSecret:      cfg.JWT.Secret,
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
