package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest entrada para crear un producto.
type CreateProductRequest struct {
	Name        string          `json:"name" validate:"required,min=1,max=100"`
	Description string          `json:"description"`
	CategoryID  string          `json:"category" validate:"required"`
	Quantity    int64           `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
}

// UpdateProductRequest entrada para actualizar un producto.
// Quantity es editable por este camino sin generar asiento en el libro
// (comportamiento heredado del sistema original, se conserva tal cual).
type UpdateProductRequest struct {
	Name        *string          `json:"name" validate:"omitempty,min=1,max=100"`
	Description *string          `json:"description"`
	CategoryID  *string          `json:"category"`
	Quantity    *int64           `json:"quantity"`
	UnitPrice   *decimal.Decimal `json:"unit_price"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	Description  string          `json:"description"`
	CategoryID   string          `json:"category"`
	CategoryName string          `json:"category_name,omitempty"`
	Quantity     int64           `json:"quantity"`
	UnitPrice    decimal.Decimal `json:"unit_price"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// ProductListResponse lista paginada de productos.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
