package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/storefront-admin/internal/application/auth"
	"github.com/tu-usuario/storefront-admin/internal/application/inventory"
	"github.com/tu-usuario/storefront-admin/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ProductUC   *usecase.ProductUseCase
	CategoryUC  *usecase.CategoryUseCase
	SettingsUC  *usecase.SettingsUseCase
	DashboardUC *usecase.DashboardUseCase
	AdjustStock *inventory.AdjustStockUseCase
	InventoryQ  *inventory.QueryUseCase
	ReportUC    *inventory.ReportUseCase
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

	// Products (protegido; eliminar solo admin)
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", RequireAdmin(), productHandler.Delete)

	// Categories (protegido; eliminar solo admin)
	categories := protected.Group("/categories")
	categoryHandler := NewCategoryHandler(deps.CategoryUC)
	categories.Post("/", categoryHandler.Create)
	categories.Get("/", categoryHandler.List)
	categories.Get("/:id", categoryHandler.GetByID)
	categories.Put("/:id", categoryHandler.Update)
	categories.Delete("/:id", RequireAdmin(), categoryHandler.Delete)

	// Inventory (protegido)
	invGroup := protected.Group("/inventory")
	inventoryHandler := NewInventoryHandler(deps.AdjustStock, deps.InventoryQ, deps.ReportUC)
	invGroup.Post("/adjustments", inventoryHandler.Adjust)
	invGroup.Get("/", inventoryHandler.ListInventory)
	invGroup.Get("/movements", inventoryHandler.ListMovements)
	invGroup.Get("/products/:id/reconcile", inventoryHandler.Reconcile)
	invGroup.Get("/report", inventoryHandler.Report)

	// Settings (protegido; escritura solo admin)
	settings := protected.Group("/settings")
	settingsHandler := NewSettingsHandler(deps.SettingsUC)
	settings.Get("/", settingsHandler.Get)
	settings.Put("/", RequireAdmin(), settingsHandler.Update)

	// Dashboard (protegido)
	dashboard := protected.Group("/dashboard")
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	dashboard.Get("/summary", dashboardHandler.Summary)
}
