package inventory

import (
	"context"

	"github.com/tu-usuario/storefront-admin/internal/application/dto"
	"github.com/tu-usuario/storefront-admin/internal/domain"
	"github.com/tu-usuario/storefront-admin/internal/domain/entity"
	domaininv "github.com/tu-usuario/storefront-admin/internal/domain/inventory"
	"github.com/tu-usuario/storefront-admin/internal/domain/repository"
)

// QueryUseCase vistas de solo lectura sobre el inventario: listado de stock
// actual con filtros y el historial de movimientos. Nunca muta Product ni
// StockMovement y no bloquea a los escritores.
type QueryUseCase struct {
	productRepo  repository.ProductRepository
	movementRepo repository.StockMovementRepository
	stockRepo    repository.StockRepository
}

// NewQueryUseCase construye el servicio de consultas.
func NewQueryUseCase(
	productRepo repository.ProductRepository,
	movementRepo repository.StockMovementRepository,
	stockRepo repository.StockRepository,
) *QueryUseCase {
	return &QueryUseCase{productRepo: productRepo, movementRepo: movementRepo, stockRepo: stockRepo}
}

// ListInventory lista productos con su estado derivado. search filtra por
// subcadena (case-insensitive) en nombre/SKU; status por etiqueta
// (in_stock, low_stock, out_of_stock). Campos vacíos no filtran.
func (uc *QueryUseCase) ListInventory(ctx context.Context, search, status string, page dto.PageRequest) ([]dto.InventoryItemResponse, error) {
	if status != "" && !domaininv.IsValidStatusFilter(status) {
		return nil, domain.ErrInvalidInput
	}
	page.DefaultPage()

	products, err := uc.productRepo.List(ctx, repository.ProductFilter{
		Search: search,
		Status: domaininv.StockStatus(status),
		Limit:  page.Limit,
		Offset: page.Offset,
	})
	if err != nil {
		return nil, err
	}

	items := make([]dto.InventoryItemResponse, 0, len(products))
	for _, p := range products {
		items = append(items, dto.InventoryItemResponse{
			ProductID:     p.ID,
			SKU:           p.SKU,
			Name:          p.Name,
			Stock:         p.Stock,
			MinStockLevel: p.MinStockLevel,
			Status:        string(domaininv.Classify(p.Stock, p.MinStockLevel)),
		})
	}
	return items, nil
}

// ListMovements devuelve el historial de movimientos, más recientes primero.
// Con productID vacío devuelve el feed global.
func (uc *QueryUseCase) ListMovements(ctx context.Context, productID string, page dto.PageRequest) (*dto.MovementListResponse, error) {
	page.DefaultPage()

	if productID == "" {
		list, err := uc.movementRepo.ListAll(ctx, page.Limit, page.Offset)
		if err != nil {
			return nil, err
		}
		return movementList(list, page), nil
	}

	product, err := uc.productRepo.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrProductNotFound
	}
	list, err := uc.movementRepo.ListByProduct(ctx, productID, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	return movementList(list, page), nil
}

func movementList(list []*entity.StockMovement, page dto.PageRequest) *dto.MovementListResponse {
	items := make([]dto.MovementResponse, 0, len(list))
	for _, m := range list {
		items = append(items, ToMovementResponse(m))
	}
	return &dto.MovementListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}
}

// ToMovementResponse mapea un movimiento del dominio a su DTO.
func ToMovementResponse(m *entity.StockMovement) dto.MovementResponse {
	return dto.MovementResponse{
		ID:           m.ID,
		ProductID:    m.ProductID,
		VariantID:    m.VariantID,
		ChangeAmount: m.ChangeAmount,
		NewStock:     m.NewStock,
		Type:         m.Type,
		Notes:        m.Notes,
		CreatorID:    m.CreatorID,
		CreatedAt:    m.CreatedAt,
	}
}

// Reconcile recalcula el total implicado por el libro y lo compara con la
// proyección cacheada. Una divergencia es un bug, no un estado esperado;
// este endpoint la detecta, nunca la repara. Ambas lecturas salen de una
// misma instantánea: un ajuste que confirma en medio no produce un falso
// negativo transitorio.
func (uc *QueryUseCase) Reconcile(ctx context.Context, productID string) (*dto.ReconciliationResponse, error) {
	cached, total, err := uc.stockRepo.Reconcile(ctx, productID)
	if err != nil {
		return nil, err
	}
	return &dto.ReconciliationResponse{
		ProductID:   productID,
		CachedStock: cached,
		LedgerTotal: total,
		Consistent:  cached == total,
	}, nil
}
