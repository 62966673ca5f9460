package entity

import "time"

// Roles de usuario del panel de administración.
const (
	RoleAdmin  = "admin"
	RoleSeller = "seller"
)

// User representa un usuario del panel (administrador o vendedor).
type User struct {
	ID           string
	Email        string
	PasswordHash string
	Name         string
	Role         string // admin | seller
	CreatedAt    time.Time
}
