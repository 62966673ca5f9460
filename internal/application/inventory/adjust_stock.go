package inventory

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/storefront-admin/internal/domain"
	"github.com/tu-usuario/storefront-admin/internal/domain/entity"
	"github.com/tu-usuario/storefront-admin/internal/domain/repository"
)

// Reintentos ante abortos de serialización antes de devolver ErrConcurrencyConflict.
const maxConflictRetries = 3

// AdjustStockUseCase aplica un ajuste de stock de forma transaccional:
// bloquea la fila del producto (SELECT FOR UPDATE), valida el candidato,
// registra el movimiento y actualiza la proyección en un solo Commit.
// Dos ajustes concurrentes sobre el mismo producto se serializan en la fila;
// ajustes sobre productos distintos no se bloquean entre sí.
type AdjustStockUseCase struct {
	txRunner    TxRunner
	productRepo repository.ProductRepository
}

// NewAdjustStockUseCase construye el caso de uso.
func NewAdjustStockUseCase(txRunner TxRunner, productRepo repository.ProductRepository) *AdjustStockUseCase {
	return &AdjustStockUseCase{txRunner: txRunner, productRepo: productRepo}
}

// AdjustmentInput entrada para aplicar un ajuste de stock.
type AdjustmentInput struct {
	ProductID      string
	VariantID      *string
	Delta          int    // firmado, distinto de cero
	Type           string // manual_adjustment | sale | return | restock | correction
	Notes          string
	ActorID        *string // nil para movimientos generados por el sistema
	IdempotencyKey *string // opcional; repetir la clave devuelve el movimiento ya registrado
}

// AdjustmentResult movimiento registrado y si fue un reintento idempotente
// (la clave ya existía y no se aplicó el delta de nuevo).
type AdjustmentResult struct {
	Movement *entity.StockMovement
	Replayed bool
}

// Apply valida y aplica un ajuste. Ante cualquier error no persiste nada:
// ni el movimiento ni el stock cambian. Solo ErrConcurrencyConflict se
// reintenta localmente (acotado) antes de llegar al caller.
func (uc *AdjustStockUseCase) Apply(ctx context.Context, input AdjustmentInput) (*AdjustmentResult, error) {
	if input.Delta == 0 {
		return nil, domain.ErrInvalidDelta
	}
	if !entity.IsValidMovementType(input.Type) {
		return nil, domain.ErrInvalidInput
	}

	product, err := uc.productRepo.GetByID(ctx, input.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrProductNotFound
	}

	var result *AdjustmentResult
	for attempt := 0; ; attempt++ {
		result, err = uc.applyOnce(ctx, input)
		if !errors.Is(err, domain.ErrConcurrencyConflict) || attempt >= maxConflictRetries {
			break
		}
	}
	if err != nil {
		return nil, err
	}
	return result, nil
}

// applyOnce ejecuta un intento dentro de una transacción.
func (uc *AdjustStockUseCase) applyOnce(ctx context.Context, input AdjustmentInput) (*AdjustmentResult, error) {
	var result AdjustmentResult
	err := uc.txRunner.Run(ctx, func(
		movRepo repository.StockMovementRepository,
		stockRepo repository.StockRepository,
	) error {
		// Bloquea la fila del producto: el segundo ajuste concurrente espera
		// aquí y parte del stock ya confirmado por el primero.
		stock, err := stockRepo.GetStockForUpdate(ctx, input.ProductID)
		if err != nil {
			return err
		}

		// Reintento idempotente: si la clave ya se registró, devolver ese
		// movimiento en vez de aplicar el delta otra vez. La consulta va
		// DESPUÉS del bloqueo de fila: un reintento que corría en paralelo
		// con su petición original espera aquí a que la original confirme,
		// y recién entonces su movimiento es visible bajo READ COMMITTED.
		if input.IdempotencyKey != nil && *input.IdempotencyKey != "" {
			existing, err := movRepo.GetByIdempotencyKey(ctx, *input.IdempotencyKey)
			if err != nil {
				return err
			}
			if existing != nil {
				result = AdjustmentResult{Movement: existing, Replayed: true}
				return nil
			}
		}

		candidate := stock + input.Delta
		// Una corrección puede dejar el stock negativo transitoriamente
		// (recuento físico aceptado explícitamente por el operador).
		if candidate < 0 && input.Type != entity.MovementTypeCorrection {
			return domain.ErrInsufficientStock
		}

		m := &entity.StockMovement{
			ID:             uuid.New().String(),
			ProductID:      input.ProductID,
			VariantID:      input.VariantID,
			ChangeAmount:   input.Delta,
			NewStock:       candidate,
			Type:           input.Type,
			Notes:          input.Notes,
			CreatorID:      input.ActorID,
			IdempotencyKey: input.IdempotencyKey,
			CreatedAt:      time.Now(),
		}
		if err := movRepo.Create(ctx, m); err != nil {
			return err
		}
		if err := stockRepo.SetStock(ctx, input.ProductID, candidate); err != nil {
			return err
		}
		result = AdjustmentResult{Movement: m}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}
