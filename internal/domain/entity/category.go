package entity

import "time"

// Category representa una categoría del catálogo.
type Category struct {
	ID          string
	Name        string
	Slug        string // identificador legible para URLs
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
