package entity

import "time"

// Tipos de movimiento de stock. Son los literales que viajan por la API.
const (
	MovementTypeIN  = "IN"  // entrada
	MovementTypeOUT = "OUT" // salida
)

// IsValidMovementType indica si el tipo es uno de los literales aceptados.
func IsValidMovementType(t string) bool {
	return t == MovementTypeIN || t == MovementTypeOUT
}

// StockMovement es un asiento del libro de movimientos: un evento de inventario
// que sumó (IN) o restó (OUT) QuantityChanged unidades al producto referenciado.
// QuantityChanged siempre es positivo; el signo lo da Type.
// Los asientos se crean una sola vez y no se mutan por la API.
// CreatedBy queda en vacío si el usuario fue eliminado (la fila se conserva).
type StockMovement struct {
	ID              string
	ProductID       string
	Type            string // IN, OUT
	QuantityChanged int64
	CreatedBy       string // UserID, vacío si el usuario ya no existe
	Notes           string
	CreatedAt       time.Time

	// Campos denormalizados para respuestas de la API (no persistidos en la fila).
	ProductName       string
	CreatedByUsername string
}
