package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	appinventory "github.com/tu-usuario/storefront-admin/internal/application/inventory"
	"github.com/tu-usuario/storefront-admin/internal/domain"
	"github.com/tu-usuario/storefront-admin/internal/domain/repository"
)

// Ensure TxRunner implements inventory.TxRunner.
var _ appinventory.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia una transacción, ejecuta fn con repos atados a la tx y hace
// Commit o Rollback. Los abortos por concurrencia (40001/40P01) se traducen
// a domain.ErrConcurrencyConflict para que el caso de uso pueda reintentar.
func (r *TxRunner) Run(ctx context.Context, fn func(
	movRepo repository.StockMovementRepository,
	stockRepo repository.StockRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	movRepo := NewStockMovementRepository(tx)
	stockRepo := NewStockRepository(tx)

	if err := fn(movRepo, stockRepo); err != nil {
		if isSerializationFailure(err) {
			return fmt.Errorf("%w: %v", domain.ErrConcurrencyConflict, err)
		}
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		if isSerializationFailure(err) {
			return fmt.Errorf("%w: %v", domain.ErrConcurrencyConflict, err)
		}
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
