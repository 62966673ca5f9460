package inventory

import (
	"context"
	"time"

	"github.com/tu-usuario/storefront-admin/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza que el movimiento y la actualización
// de stock se confirmen como una sola unidad atómica.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		movRepo repository.StockMovementRepository,
		stockRepo repository.StockRepository,
	) error) error
}

// ReportItem fila del reporte de inventario (datos planos para el generador).
type ReportItem struct {
	SKU           string
	Name          string
	Stock         int
	MinStockLevel int
	Status        string
}

// ReportGenerator genera la representación imprimible del inventario actual.
// La implementación vive en infrastructure (Maroto).
type ReportGenerator interface {
	GenerateInventoryReport(ctx context.Context, siteName string, generatedAt time.Time, items []ReportItem) ([]byte, error)
}
