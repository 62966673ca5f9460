package repository

import "context"

// StockRepository define el puerto para la proyección de stock actual.
// Es una caché materializada de la suma de movimientos: si diverge del libro
// es un bug, detectable con la verificación de reconciliación.
// SetStock lo invoca únicamente el servicio de ajustes, nunca las consultas.
type StockRepository interface {
	// GetStock devuelve el stock actual. ErrProductNotFound si el producto no existe.
	GetStock(ctx context.Context, productID string) (int, error)

	// GetStockForUpdate devuelve el stock actual bloqueando la fila del
	// producto (SELECT ... FOR UPDATE) hasta el fin de la transacción.
	GetStockForUpdate(ctx context.Context, productID string) (int, error)

	// SetStock fija el stock actual del producto.
	SetStock(ctx context.Context, productID string, value int) error

	// Reconcile devuelve la proyección cacheada y la suma del libro leídas
	// en una misma instantánea, para que un ajuste confirmado entre ambas
	// lecturas no reporte una divergencia transitoria.
	// ErrProductNotFound si el producto no existe.
	Reconcile(ctx context.Context, productID string) (cachedStock, ledgerTotal int, err error)
}
