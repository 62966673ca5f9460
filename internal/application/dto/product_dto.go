package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest body para POST /api/products.
// El stock inicial no se acepta aquí: todo stock entra por un movimiento.
type CreateProductRequest struct {
	SKU           string          `json:"sku"`
	Name          string          `json:"name"`
	Description   string          `json:"description,omitempty"`
	CategoryID    string          `json:"category_id,omitempty"`
	Price         decimal.Decimal `json:"price"`
	MinStockLevel int             `json:"min_stock_level"`
	ImageURL      string          `json:"image_url,omitempty"`
}

// UpdateProductRequest body para PUT /api/products/:id. Campos nil no cambian.
// No incluye stock: esa columna la gobierna el libro de movimientos.
type UpdateProductRequest struct {
	Name          *string          `json:"name,omitempty"`
	Description   *string          `json:"description,omitempty"`
	CategoryID    *string          `json:"category_id,omitempty"`
	Price         *decimal.Decimal `json:"price,omitempty"`
	MinStockLevel *int             `json:"min_stock_level,omitempty"`
	ImageURL      *string          `json:"image_url,omitempty"`
	Active        *bool            `json:"active,omitempty"`
}

// ProductResponse representación de un producto en respuestas.
type ProductResponse struct {
	ID            string          `json:"id"`
	SKU           string          `json:"sku"`
	Name          string          `json:"name"`
	Description   string          `json:"description,omitempty"`
	CategoryID    string          `json:"category_id,omitempty"`
	Price         decimal.Decimal `json:"price"`
	Stock         int             `json:"stock"`
	MinStockLevel int             `json:"min_stock_level"`
	Status        string          `json:"status"` // in_stock | low_stock | out_of_stock
	ImageURL      string          `json:"image_url,omitempty"`
	Active        bool            `json:"active"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// ProductListResponse listado paginado de productos.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
