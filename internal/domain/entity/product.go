package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un ítem del catálogo con su stock actual.
// Quantity es el estado derivado del libro de movimientos: cada movimiento IN/OUT
// la actualiza dentro de la misma transacción. También puede sobrescribirse por
// edición directa del producto (comportamiento heredado, ver ProductUseCase.Update).
// No hay piso: la cantidad puede quedar negativa.
type Product struct {
	ID          string
	Name        string
	Description string
	CategoryID  string
	Quantity    int64
	UnitPrice   decimal.Decimal // precio unitario, 2 decimales
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// CategoryName denormalizado para respuestas de la API (no persistido en la fila).
	CategoryName string
}
