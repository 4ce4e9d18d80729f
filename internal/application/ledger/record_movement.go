package ledger

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

// RecordMovementUseCase registra movimientos de stock de forma transaccional:
// bloquea la fila del producto (SELECT FOR UPDATE), aplica el delta de cantidad
// y persiste el asiento, con Commit o Rollback de ambas escrituras juntas.
//
// Es la única vía de escritura del libro: ningún llamador puede crear un asiento
// sin que el producto se actualice, ni al revés. Invariante: quantity del producto
// = Σ IN − Σ OUT aplicados desde su creación (más las ediciones directas del
// catálogo, que se conservan como segundo camino de escritura del original).
type RecordMovementUseCase struct {
	txRunner TxRunner
}

// NewRecordMovementUseCase construye el caso de uso.
func NewRecordMovementUseCase(txRunner TxRunner) *RecordMovementUseCase {
	return &RecordMovementUseCase{txRunner: txRunner}
}

// MovementInput entrada para registrar un movimiento.
// CreatedBy/CreatedByUsername vienen del token del llamador, nunca del body.
type MovementInput struct {
	ProductID         string
	Type              string // IN, OUT
	QuantityChanged   int64
	CreatedBy         string
	CreatedByUsername string
	Notes             string
}

// RecordMovement valida la entrada, abre la transacción, bloquea la fila del
// producto, aplica newQuantity = quantity ± quantity_changed y persiste el
// asiento. Devuelve el movimiento persistido con id y created_at asignados
// y los campos denormalizados resueltos.
//
// No hay piso de cantidad: una salida puede dejar el stock en negativo
// (comportamiento del sistema original, conservado a propósito).
func (uc *RecordMovementUseCase) RecordMovement(ctx context.Context, input MovementInput) (*entity.StockMovement, error) {
	if input.ProductID == "" {
		return nil, domain.ErrInvalidInput
	}
	if !entity.IsValidMovementType(input.Type) {
		return nil, domain.ErrInvalidInput
	}
	if input.QuantityChanged <= 0 {
		return nil, domain.ErrInvalidInput
	}

	now := time.Now()
	mov := &entity.StockMovement{
		ID:                uuid.New().String(),
		ProductID:         input.ProductID,
		Type:              input.Type,
		QuantityChanged:   input.QuantityChanged,
		CreatedBy:         input.CreatedBy,
		Notes:             input.Notes,
		CreatedAt:         now,
		CreatedByUsername: input.CreatedByUsername,
	}

	// Commit si ambas escrituras pasan, Rollback si cualquiera falla (TxRunner.Run lo hace).
	err := uc.txRunner.Run(ctx, func(
		productRepo repository.ProductRepository,
		movementRepo repository.StockMovementRepository,
	) error {
		// Bloquea la fila del producto para serializar escritores concurrentes
		// sobre el mismo stock: dos IN simultáneos de +5 deben sumar +10.
		product, err := productRepo.GetForUpdate(input.ProductID)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrNotFound
		}

		newQuantity := product.Quantity
		if input.Type == entity.MovementTypeIN {
			newQuantity += input.QuantityChanged
		} else {
			newQuantity -= input.QuantityChanged
		}

		if err := productRepo.UpdateQuantity(product.ID, newQuantity); err != nil {
			return err
		}
		mov.ProductName = product.Name
		return movementRepo.Create(mov)
	})
	if err != nil {
		return nil, err
	}
	return mov, nil
}
