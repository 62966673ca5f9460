package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
)

// Errores del libro de stock. Cada uno representa una decisión que debe tomar
// el operador (usar un delta menor, registrar una corrección, reintentar).
var (
	ErrProductNotFound     = errors.New("producto no encontrado")
	ErrInvalidDelta        = errors.New("el delta del ajuste no puede ser cero")
	ErrInsufficientStock   = errors.New("stock insuficiente")
	ErrConcurrencyConflict = errors.New("conflicto de concurrencia al ajustar stock")
)
