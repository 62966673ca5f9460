package repository

import (
	"context"

	"github.com/tu-usuario/storefront-admin/internal/domain/entity"
)

// StockMovementRepository define el puerto de persistencia del libro de
// movimientos. Es append-only por contrato: no expone update ni delete;
// la integridad de la auditoría depende de esa inmutabilidad.
type StockMovementRepository interface {
	// Create persiste un movimiento nuevo. Lo invoca solo el servicio de ajustes.
	Create(ctx context.Context, movement *entity.StockMovement) error

	// GetByIdempotencyKey devuelve el movimiento registrado con esa clave,
	// o nil si no existe.
	GetByIdempotencyKey(ctx context.Context, key string) (*entity.StockMovement, error)

	// ListByProduct lista los movimientos de un producto, más recientes primero.
	ListByProduct(ctx context.Context, productID string, limit, offset int) ([]*entity.StockMovement, error)

	// ListAll lista los movimientos de todos los productos, más recientes primero.
	ListAll(ctx context.Context, limit, offset int) ([]*entity.StockMovement, error)

	// SumByProduct devuelve la suma de change_amount de todos los movimientos
	// del producto (el total que implica el libro).
	SumByProduct(ctx context.Context, productID string) (int, error)
}
