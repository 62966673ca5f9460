package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/storefront-admin/internal/domain"
	"github.com/tu-usuario/storefront-admin/internal/domain/entity"
	"github.com/tu-usuario/storefront-admin/internal/domain/repository"
)

var _ repository.StockMovementRepository = (*StockMovementRepo)(nil)

// StockMovementRepo implementación del libro de movimientos sobre PostgreSQL
// (usable con pool o tx). Solo inserta y lee: la tabla no recibe UPDATE ni
// DELETE desde la aplicación.
type StockMovementRepo struct {
	q Querier
}

// NewStockMovementRepository construye el adaptador. Pasar pool o tx (Querier).
func NewStockMovementRepository(q Querier) *StockMovementRepo {
	return &StockMovementRepo{q: q}
}

const movementColumns = `id, product_id, variant_id, change_amount, new_stock, type, notes, creator_id, idempotency_key, created_at`

// Create persiste un movimiento de stock.
func (r *StockMovementRepo) Create(ctx context.Context, movement *entity.StockMovement) error {
	if movement.ID == "" {
		movement.ID = uuid.New().String()
	}
	query := `
		INSERT INTO stock_movements (` + movementColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(ctx, query,
		movement.ID, movement.ProductID, movement.VariantID,
		movement.ChangeAmount, movement.NewStock, movement.Type,
		movement.Notes, movement.CreatorID, movement.IdempotencyKey, movement.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("create stock movement: %w", err)
	}
	return nil
}

// GetByIdempotencyKey obtiene el movimiento registrado con la clave dada, o nil.
func (r *StockMovementRepo) GetByIdempotencyKey(ctx context.Context, key string) (*entity.StockMovement, error) {
	query := `SELECT ` + movementColumns + ` FROM stock_movements WHERE idempotency_key = $1`
	var m entity.StockMovement
	err := r.q.QueryRow(ctx, query, key).Scan(
		&m.ID, &m.ProductID, &m.VariantID, &m.ChangeAmount, &m.NewStock,
		&m.Type, &m.Notes, &m.CreatorID, &m.IdempotencyKey, &m.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get movement by idempotency key: %w", err)
	}
	return &m, nil
}

// ListByProduct lista movimientos de un producto, más recientes primero.
func (r *StockMovementRepo) ListByProduct(ctx context.Context, productID string, limit, offset int) ([]*entity.StockMovement, error) {
	query := `
		SELECT ` + movementColumns + `
		FROM stock_movements WHERE product_id = $1
		ORDER BY created_at DESC, id DESC
		LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(ctx, query, productID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list movements by product: %w", err)
	}
	defer rows.Close()
	return scanMovements(rows)
}

// ListAll lista movimientos de todos los productos, más recientes primero.
func (r *StockMovementRepo) ListAll(ctx context.Context, limit, offset int) ([]*entity.StockMovement, error) {
	query := `
		SELECT ` + movementColumns + `
		FROM stock_movements
		ORDER BY created_at DESC, id DESC
		LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list movements: %w", err)
	}
	defer rows.Close()
	return scanMovements(rows)
}

// SumByProduct devuelve la suma de change_amount del producto (total del libro).
func (r *StockMovementRepo) SumByProduct(ctx context.Context, productID string) (int, error) {
	query := `SELECT COALESCE(SUM(change_amount), 0) FROM stock_movements WHERE product_id = $1`
	var total int
	if err := r.q.QueryRow(ctx, query, productID).Scan(&total); err != nil {
		return 0, fmt.Errorf("sum movements: %w", err)
	}
	return total, nil
}

func scanMovements(rows pgx.Rows) ([]*entity.StockMovement, error) {
	var list []*entity.StockMovement
	for rows.Next() {
		var m entity.StockMovement
		if err := rows.Scan(
			&m.ID, &m.ProductID, &m.VariantID, &m.ChangeAmount, &m.NewStock,
			&m.Type, &m.Notes, &m.CreatorID, &m.IdempotencyKey, &m.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan movement: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}
