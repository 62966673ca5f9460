package inventory

import (
	"context"
	"time"

	"github.com/tu-usuario/storefront-admin/internal/domain/inventory"
	"github.com/tu-usuario/storefront-admin/internal/domain/repository"
)

// Máximo de filas del reporte imprimible.
const reportMaxRows = 1000

// ReportUseCase genera el reporte imprimible del inventario actual
// (SKU, nombre, stock, mínimo y estado) para el operador.
type ReportUseCase struct {
	productRepo  repository.ProductRepository
	settingsRepo repository.SettingsRepository
	generator    ReportGenerator
}

// NewReportUseCase construye el caso de uso.
func NewReportUseCase(
	productRepo repository.ProductRepository,
	settingsRepo repository.SettingsRepository,
	generator ReportGenerator,
) *ReportUseCase {
	return &ReportUseCase{productRepo: productRepo, settingsRepo: settingsRepo, generator: generator}
}

// Generate produce el PDF del inventario. Lectura pura: no muta estado.
func (uc *ReportUseCase) Generate(ctx context.Context) ([]byte, error) {
	siteName := "Storefront"
	if settings, err := uc.settingsRepo.Get(ctx); err == nil && settings != nil && settings.SiteName != "" {
		siteName = settings.SiteName
	}

	products, err := uc.productRepo.List(ctx, repository.ProductFilter{Limit: reportMaxRows})
	if err != nil {
		return nil, err
	}

	items := make([]ReportItem, 0, len(products))
	for _, p := range products {
		items = append(items, ReportItem{
			SKU:           p.SKU,
			Name:          p.Name,
			Stock:         p.Stock,
			MinStockLevel: p.MinStockLevel,
			Status:        string(inventory.Classify(p.Stock, p.MinStockLevel)),
		})
	}
	return uc.generator.GenerateInventoryReport(ctx, siteName, time.Now(), items)
}
