package dto

import "time"

// AdjustStockRequest body para POST /api/inventory/adjustments.
// Delta es firmado y distinto de cero; IdempotencyKey permite reintentar
// tras un timeout sin riesgo de doble aplicación.
type AdjustStockRequest struct {
	ProductID      string  `json:"product_id"`
	VariantID      *string `json:"variant_id,omitempty"`
	Delta          int     `json:"delta"`
	Type           string  `json:"type"` // manual_adjustment | sale | return | restock | correction
	Notes          string  `json:"notes,omitempty"`
	IdempotencyKey *string `json:"idempotency_key,omitempty"`
}

// MovementResponse representación de un movimiento del libro.
type MovementResponse struct {
	ID           string    `json:"id"`
	ProductID    string    `json:"product_id"`
	VariantID    *string   `json:"variant_id,omitempty"`
	ChangeAmount int       `json:"change_amount"`
	NewStock     int       `json:"new_stock"`
	Type         string    `json:"type"`
	Notes        string    `json:"notes,omitempty"`
	CreatorID    *string   `json:"creator_id,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

// MovementListResponse historial de movimientos paginado, más recientes primero.
type MovementListResponse struct {
	Items []MovementResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}

// InventoryItemResponse fila del listado de inventario (producto + estado derivado).
type InventoryItemResponse struct {
	ProductID     string `json:"product_id"`
	SKU           string `json:"sku"`
	Name          string `json:"name"`
	Stock         int    `json:"stock"`
	MinStockLevel int    `json:"min_stock_level"`
	Status        string `json:"status"`
}

// ReconciliationResponse resultado de comparar la proyección de stock con el libro.
type ReconciliationResponse struct {
	ProductID   string `json:"product_id"`
	CachedStock int    `json:"cached_stock"` // columna products.stock
	LedgerTotal int    `json:"ledger_total"` // SUM(change_amount) de los movimientos
	Consistent  bool   `json:"consistent"`
}
