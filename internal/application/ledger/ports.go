package ledger

import (
	"context"

	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando repositorios
// atados a esa tx. Garantiza que la actualización del producto y el asiento del
// movimiento se confirman o revierten como una sola unidad.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		productRepo repository.ProductRepository,
		movementRepo repository.StockMovementRepository,
	) error) error
}
