package entity

import "time"

// Tipos de movimiento de stock.
const (
	MovementTypeManualAdjustment = "manual_adjustment" // ajuste manual del operador
	MovementTypeSale             = "sale"              // venta
	MovementTypeReturn           = "return"            // devolución
	MovementTypeRestock          = "restock"           // reabastecimiento
	MovementTypeCorrection       = "correction"        // recuento físico autoritativo
)

// ValidMovementTypes devuelve los tipos de movimiento aceptados.
func ValidMovementTypes() []string {
	return []string{
		MovementTypeManualAdjustment,
		MovementTypeSale,
		MovementTypeReturn,
		MovementTypeRestock,
		MovementTypeCorrection,
	}
}

// IsValidMovementType indica si el tipo dado es un tipo de movimiento aceptado.
func IsValidMovementType(t string) bool {
	for _, v := range ValidMovementTypes() {
		if v == t {
			return true
		}
	}
	return false
}

// StockMovement representa un cambio atómico y firmado del stock de un producto.
// Es inmutable: nunca se edita ni se borra; una corrección es un movimiento nuevo.
// NewStock guarda el stock resultante para poder auditar el historial sin
// reproducirlo desde cero.
type StockMovement struct {
	ID             string
	ProductID      string
	VariantID      *string // variante del producto, si aplica
	ChangeAmount   int     // delta firmado, nunca cero
	NewStock       int     // stock del producto inmediatamente después del movimiento
	Type           string
	Notes          string
	CreatorID      *string // nil para movimientos generados por el sistema (p. ej. ventas)
	IdempotencyKey *string // clave opcional del cliente para reintentos seguros
	CreatedAt      time.Time
}
