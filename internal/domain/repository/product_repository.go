package repository

import (
	"context"

	"github.com/tu-usuario/storefront-admin/internal/domain/entity"
	"github.com/tu-usuario/storefront-admin/internal/domain/inventory"
)

// ProductFilter criterios de listado de productos.
// Search filtra por subcadena (case-insensitive) sobre nombre y SKU;
// Status filtra por la etiqueta derivada del stock. Campos vacíos no filtran.
type ProductFilter struct {
	Search string
	Status inventory.StockStatus
	Limit  int
	Offset int
}

// StatusCounts conteo de productos por etiqueta de stock (para el dashboard).
type StatusCounts struct {
	Total      int
	InStock    int
	LowStock   int
	OutOfStock int
}

// ProductRepository define el puerto de persistencia para Product (DIP).
// Update nunca escribe la columna stock: esa la gobierna el servicio de ajustes.
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id string) (*entity.Product, error)
	GetBySKU(ctx context.Context, sku string) (*entity.Product, error)
	Update(ctx context.Context, product *entity.Product) error
	List(ctx context.Context, filter ProductFilter) ([]*entity.Product, error)
	Delete(ctx context.Context, id string) error
	CountByStatus(ctx context.Context) (StatusCounts, error)
}
