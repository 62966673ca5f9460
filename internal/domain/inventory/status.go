package inventory

// StockStatus etiqueta de estado derivada del stock actual y el umbral mínimo.
type StockStatus string

const (
	StatusInStock    StockStatus = "in_stock"
	StatusLowStock   StockStatus = "low_stock"
	StatusOutOfStock StockStatus = "out_of_stock"
)

// IsValidStatusFilter indica si el valor puede usarse como filtro de listado.
func IsValidStatusFilter(s string) bool {
	switch StockStatus(s) {
	case StatusInStock, StatusLowStock, StatusOutOfStock:
		return true
	}
	return false
}

// Classify clasifica el stock de un producto (servicio de dominio, puro).
// stock <= 0 cubre también los saldos negativos que deja una corrección.
func Classify(stock, minStockLevel int) StockStatus {
	switch {
	case stock <= 0:
		return StatusOutOfStock
	case stock <= minStockLevel:
		return StatusLowStock
	default:
		return StatusInStock
	}
}
