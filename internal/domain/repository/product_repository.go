package repository

import "github.com/jhoicas/almacen-api/internal/domain/entity"

// ProductRepository define el puerto de persistencia para Product (DIP).
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	// GetForUpdate obtiene el producto bloqueando su fila (SELECT FOR UPDATE).
	// Solo tiene sentido dentro de una transacción (ver ledger.TxRunner).
	GetForUpdate(id string) (*entity.Product, error)
	Update(product *entity.Product) error
	// UpdateQuantity fija la cantidad derivada del libro y refresca updated_at.
	UpdateQuantity(productID string, quantity int64) error
	List(categoryID string, limit, offset int) ([]*entity.Product, error)
	Delete(id string) error
}
