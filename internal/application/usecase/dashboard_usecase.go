package usecase

import (
	"context"

	"github.com/tu-usuario/storefront-admin/internal/application/dto"
	appinventory "github.com/tu-usuario/storefront-admin/internal/application/inventory"
	"github.com/tu-usuario/storefront-admin/internal/domain/repository"
)

// Movimientos recientes mostrados en el panel.
const dashboardRecentMovements = 10

// DashboardUseCase resumen de solo lectura para el panel del vendedor:
// conteos por estado de stock y últimos movimientos. No muta estado.
type DashboardUseCase struct {
	productRepo  repository.ProductRepository
	movementRepo repository.StockMovementRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(productRepo repository.ProductRepository, movementRepo repository.StockMovementRepository) *DashboardUseCase {
	return &DashboardUseCase{productRepo: productRepo, movementRepo: movementRepo}
}

// Summary arma el resumen del panel.
func (uc *DashboardUseCase) Summary(ctx context.Context) (*dto.DashboardSummaryResponse, error) {
	counts, err := uc.productRepo.CountByStatus(ctx)
	if err != nil {
		return nil, err
	}
	recent, err := uc.movementRepo.ListAll(ctx, dashboardRecentMovements, 0)
	if err != nil {
		return nil, err
	}
	movements := make([]dto.MovementResponse, 0, len(recent))
	for _, m := range recent {
		movements = append(movements, appinventory.ToMovementResponse(m))
	}
	return &dto.DashboardSummaryResponse{
		TotalProducts:   counts.Total,
		InStock:         counts.InStock,
		LowStock:        counts.LowStock,
		OutOfStock:      counts.OutOfStock,
		RecentMovements: movements,
	}, nil
}
