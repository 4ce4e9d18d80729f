package repository

import (
	"time"

	"github.com/jhoicas/almacen-api/internal/domain/entity"
)

// MovementFilter filtros para listar movimientos.
type MovementFilter struct {
	ProductID string
	Type      string // IN, OUT o vacío
	From      *time.Time
	To        *time.Time
	Limit     int
	Offset    int
}

// StockMovementRepository define el puerto de persistencia para el libro de
// movimientos (DIP). Los asientos solo se crean; la API no expone update/delete.
type StockMovementRepository interface {
	Create(movement *entity.StockMovement) error
	GetByID(id string) (*entity.StockMovement, error)
	// List devuelve asientos con product_name y created_by_username resueltos.
	List(filter MovementFilter) ([]*entity.StockMovement, error)
	// ListByProductBetween devuelve los asientos de un producto en [from, to]
	// en orden cronológico ascendente (entrada de la predicción de demanda).
	ListByProductBetween(productID string, from, to time.Time) ([]*entity.StockMovement, error)
}
