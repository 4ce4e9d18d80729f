package dto

import "time"

// CreateMovementRequest entrada para registrar un movimiento de stock.
// created_by no viaja en el body: siempre se toma del token del llamador.
type CreateMovementRequest struct {
	ProductID       string `json:"product" validate:"required"`
	Type            string `json:"type" validate:"required,oneof=IN OUT"`
	QuantityChanged int64  `json:"quantity_changed" validate:"required,gt=0"`
	Notes           string `json:"notes"`
}

// MovementResponse salida de un asiento del libro, con los campos
// denormalizados que consumen los clientes.
type MovementResponse struct {
	ID                string    `json:"id"`
	ProductID         string    `json:"product"`
	ProductName       string    `json:"product_name"`
	Type              string    `json:"type"`
	QuantityChanged   int64     `json:"quantity_changed"`
	Notes             string    `json:"notes"`
	CreatedBy         string    `json:"created_by,omitempty"`
	CreatedByUsername string    `json:"created_by_username,omitempty"`
	CreatedAt         time.Time `json:"created_at"`
}

// MovementListResponse lista paginada de asientos.
type MovementListResponse struct {
	Items []MovementResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}
