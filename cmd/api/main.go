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
	"github.com/tu-usuario/storefront-admin/internal/application/auth"
	"github.com/tu-usuario/storefront-admin/internal/application/inventory"
	"github.com/tu-usuario/storefront-admin/internal/application/usecase"
	infrapdf "github.com/tu-usuario/storefront-admin/internal/infrastructure/pdf"
	"github.com/tu-usuario/storefront-admin/internal/infrastructure/postgres"
	httpRouter "github.com/tu-usuario/storefront-admin/internal/interfaces/http"
	"github.com/tu-usuario/storefront-admin/pkg/config"
	"github.com/tu-usuario/storefront-admin/pkg/logger"
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

	productRepo := postgres.NewProductRepository(pool)
	categoryRepo := postgres.NewCategoryRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	settingsRepo := postgres.NewSettingsRepository(pool)
	movementRepo := postgres.NewStockMovementRepository(pool)
	stockRepo := postgres.NewStockRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	adjustStockUC := inventory.NewAdjustStockUseCase(txRunner, productRepo)
	inventoryQueryUC := inventory.NewQueryUseCase(productRepo, movementRepo, stockRepo)
	productUC := usecase.NewProductUseCase(productRepo)
	categoryUC := usecase.NewCategoryUseCase(categoryRepo)
	settingsUC := usecase.NewSettingsUseCase(settingsRepo)
	dashboardUC := usecase.NewDashboardUseCase(productRepo, movementRepo)

	// PDF: reporte imprimible del inventario actual
	reportGenerator := infrapdf.NewMarotoReportGenerator()
	reportUC := inventory.NewReportUseCase(productRepo, settingsRepo, reportGenerator)

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	// La configuración del sitio se carga una vez al arrancar; las escrituras
	// refrescan la caché, no hay polling.
	if err := settingsUC.Warm(ctx); err != nil {
		log.Fatal().Err(err).Msg("cargar configuración del sitio")
	}

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	registerSwagger(app, log, "./docs/swagger.json")

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		ProductUC:   productUC,
		CategoryUC:  categoryUC,
		SettingsUC:  settingsUC,
		DashboardUC: dashboardUC,
		AdjustStock: adjustStockUC,
		InventoryQ:  inventoryQueryUC,
		ReportUC:    reportUC,
		AuthUC:      authUC,
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

// registerSwagger monta la UI de documentación solo si la especificación
// existe en disco: el middleware entra en pánico al construirse si el archivo
// falta, y un despliegue sin docs no debe tumbar la API.
func registerSwagger(app *fiber.App, log *logger.Logger, filePath string) {
	if _, err := os.Stat(filePath); err != nil {
		log.Warn().Str("file", filePath).Msg("especificación OpenAPI no encontrada, /docs deshabilitado")
		return
	}
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: filePath,
		Path:     "docs",
		Title:    "Storefront Admin API",
	}))
}
