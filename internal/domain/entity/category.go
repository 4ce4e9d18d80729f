package entity

import "time"

// Category representa una categoría de productos. El nombre es único a nivel global.
// Borrar una categoría elimina en cascada sus productos (y los movimientos de estos).
type Category struct {
	ID          string
	Name        string
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
