package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/storefront-admin/internal/domain"
	"github.com/tu-usuario/storefront-admin/internal/domain/repository"
)

var _ repository.StockRepository = (*StockRepo)(nil)

// StockRepo implementación de StockRepository sobre la columna products.stock
// (usable con pool o tx).
type StockRepo struct {
	q Querier
}

// NewStockRepository construye el adaptador de stock. Pasar pool o tx (Querier).
func NewStockRepository(q Querier) *StockRepo {
	return &StockRepo{q: q}
}

// GetStock obtiene el stock actual de un producto.
func (r *StockRepo) GetStock(ctx context.Context, productID string) (int, error) {
	query := `SELECT stock FROM products WHERE id = $1`
	var stock int
	err := r.q.QueryRow(ctx, query, productID).Scan(&stock)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, domain.ErrProductNotFound
		}
		return 0, fmt.Errorf("get stock: %w", err)
	}
	return stock, nil
}

// GetStockForUpdate obtiene el stock y bloquea la fila del producto
// (SELECT FOR UPDATE) hasta el fin de la transacción.
func (r *StockRepo) GetStockForUpdate(ctx context.Context, productID string) (int, error) {
	query := `SELECT stock FROM products WHERE id = $1 FOR UPDATE`
	var stock int
	err := r.q.QueryRow(ctx, query, productID).Scan(&stock)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, domain.ErrProductNotFound
		}
		return 0, fmt.Errorf("get stock for update: %w", err)
	}
	return stock, nil
}

// SetStock fija el stock actual del producto.
func (r *StockRepo) SetStock(ctx context.Context, productID string, value int) error {
	query := `UPDATE products SET stock = $2, updated_at = now() WHERE id = $1`
	tag, err := r.q.Exec(ctx, query, productID, value)
	if err != nil {
		return fmt.Errorf("set stock: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrProductNotFound
	}
	return nil
}

// Reconcile lee proyección y suma del libro en una sola sentencia: una misma
// instantánea, sin ventana entre lecturas.
func (r *StockRepo) Reconcile(ctx context.Context, productID string) (int, int, error) {
	query := `
		SELECT p.stock,
		       COALESCE((SELECT SUM(m.change_amount) FROM stock_movements m WHERE m.product_id = p.id), 0)
		FROM products p WHERE p.id = $1`
	var cached, total int
	err := r.q.QueryRow(ctx, query, productID).Scan(&cached, &total)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, 0, domain.ErrProductNotFound
		}
		return 0, 0, fmt.Errorf("reconcile stock: %w", err)
	}
	return cached, total, nil
}
