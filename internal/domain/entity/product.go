package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del catálogo de la tienda.
// Stock es una proyección materializada del libro de movimientos: lo escribe
// únicamente el servicio de ajustes, nunca el CRUD de productos.
type Product struct {
	ID            string
	SKU           string // código único del producto
	Name          string
	Description   string
	CategoryID    string
	Price         decimal.Decimal // precio de venta
	Stock         int             // cantidad actual (derivada de movimientos)
	MinStockLevel int             // umbral de stock bajo
	ImageURL      string
	Active        bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
