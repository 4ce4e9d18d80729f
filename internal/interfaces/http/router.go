package http

import (
	"github.com/gofiber/fiber/v2"
	appanalytics "github.com/jhoicas/almacen-api/internal/application/analytics"
	"github.com/jhoicas/almacen-api/internal/application/auth"
	appforecast "github.com/jhoicas/almacen-api/internal/application/forecast"
	"github.com/jhoicas/almacen-api/internal/application/ledger"
	"github.com/jhoicas/almacen-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	CategoryUC     *usecase.CategoryUseCase
	ProductUC      *usecase.ProductUseCase
	RecordMovement *ledger.RecordMovementUseCase
	StockQueryUC   *usecase.StockQueryUseCase
	UserUC         *usecase.UserUseCase
	AuthUC         *auth.AuthUseCase
	DashboardUC    *appanalytics.DashboardUseCase
	ForecastUC     *appforecast.ForecastUseCase
	JWTSecret      string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC, deps.UserUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/password-reset", authHandler.RequestPasswordReset)
	authGroup.Post("/password-reset/confirm", authHandler.ConfirmPasswordReset)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Categories (protegido)
	categories := protected.Group("/categories")
	categoryHandler := NewCategoryHandler(deps.CategoryUC)
	categories.Post("/", categoryHandler.Create)
	categories.Get("/", categoryHandler.List)
	categories.Get("/:id", categoryHandler.GetByID)
	categories.Put("/:id", categoryHandler.Update)
	categories.Delete("/:id", categoryHandler.Delete)

	// Products (protegido)
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)

	// Stock movements (protegido). El POST es la única vía de escritura del libro.
	stocks := protected.Group("/stocks")
	stockHandler := NewStockHandler(deps.RecordMovement, deps.StockQueryUC)
	stocks.Post("/", stockHandler.Create)
	stocks.Get("/", stockHandler.List)
	stocks.Get("/:id", stockHandler.GetByID)

	// Dashboard (protegido)
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	protected.Get("/dashboard", dashboardHandler.GetMetrics)

	// Predicción de demanda (protegido)
	forecastHandler := NewForecastHandler(deps.ForecastUC)
	protected.Get("/predictions/:id", forecastHandler.Predict)

	// Perfil (protegido)
	users := protected.Group("/users")
	users.Get("/profile", authHandler.GetProfile)
	users.Put("/profile", authHandler.UpdateProfile)
}
