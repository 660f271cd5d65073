package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/stock-monitor/internal/application/alerts"
	"github.com/tu-usuario/stock-monitor/internal/application/auth"
	"github.com/tu-usuario/stock-monitor/internal/application/forecast"
	"github.com/tu-usuario/stock-monitor/internal/application/ledger"
	"github.com/tu-usuario/stock-monitor/internal/application/report"
	"github.com/tu-usuario/stock-monitor/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ItemUC      *usecase.ItemUseCase
	SupplierUC  *usecase.SupplierUseCase
	WarehouseUC *usecase.WarehouseUseCase
	LedgerUC    *ledger.UseCase
	AlertsUC    *alerts.UseCase
	ForecastUC  *forecast.UseCase
	ReportUC    *report.UseCase
	AuthUC      *auth.AuthUseCase
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

	// Items (protegido)
	items := protected.Group("/items")
	itemHandler := NewItemHandler(deps.ItemUC)
	movementHandler := NewMovementHandler(deps.LedgerUC)
	items.Post("/", itemHandler.Create)
	items.Get("/", itemHandler.List)
	items.Get("/:id", itemHandler.GetByID)
	items.Put("/:id", itemHandler.Update)
	items.Delete("/:id", itemHandler.Delete)
	items.Get("/:id/status", itemHandler.GetStatus)
	items.Get("/:id/movements", movementHandler.History)
	items.Get("/:id/movements/recent", movementHandler.ListRecent)

	// Stock movements (protegido)
	movements := protected.Group("/stock-movements")
	movements.Post("/", movementHandler.Apply)

	// Stock alerts (protegido)
	alertsGroup := protected.Group("/stock-alerts")
	alertHandler := NewAlertHandler(deps.AlertsUC)
	alertsGroup.Get("/", alertHandler.List)

	// Predictions (protegido)
	predictions := protected.Group("/predictions")
	predictionHandler := NewPredictionHandler(deps.ForecastUC)
	predictions.Get("/shortage-dates", predictionHandler.ListShortageDates)
	predictions.Get("/shortage-dates/:id", predictionHandler.GetShortageDate)

	// Reports (protegido)
	reports := protected.Group("/reports")
	reportHandler := NewReportHandler(deps.ReportUC)
	reports.Get("/stock-levels", reportHandler.StockLevels)

	// Suppliers (protegido)
	suppliers := protected.Group("/suppliers")
	supplierHandler := NewSupplierHandler(deps.SupplierUC)
	suppliers.Post("/", supplierHandler.Create)
	suppliers.Get("/", supplierHandler.List)
	suppliers.Get("/:id", supplierHandler.GetByID)

	// Warehouses (protegido)
	warehouses := protected.Group("/warehouses")
	warehouseHandler := NewWarehouseHandler(deps.WarehouseUC)
	warehouses.Post("/", warehouseHandler.Create)
	warehouses.Get("/", warehouseHandler.List)
	warehouses.Get("/:id", warehouseHandler.GetByID)
}
