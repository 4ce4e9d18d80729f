package usecase

import (
	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

// StockQueryUseCase lado de lectura del libro de movimientos (listar y consultar).
// Las escrituras pasan exclusivamente por ledger.RecordMovementUseCase.
type StockQueryUseCase struct {
	repo repository.StockMovementRepository
}

// NewStockQueryUseCase construye el caso de uso.
func NewStockQueryUseCase(repo repository.StockMovementRepository) *StockQueryUseCase {
	return &StockQueryUseCase{repo: repo}
}

// List lista asientos del libro con filtros opcionales.
func (uc *StockQueryUseCase) List(filter repository.MovementFilter) (*dto.MovementListResponse, error) {
	list, err := uc.repo.List(filter)
	if err != nil {
		return nil, err
	}
	items := make([]dto.MovementResponse, 0, len(list))
	for _, m := range list {
		items = append(items, *ToMovementResponse(m))
	}
	return &dto.MovementListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: filter.Limit, Offset: filter.Offset},
	}, nil
}

// GetByID obtiene un asiento por ID.
func (uc *StockQueryUseCase) GetByID(id string) (*dto.MovementResponse, error) {
	mov, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if mov == nil {
		return nil, nil
	}
	return ToMovementResponse(mov), nil
}

// ToMovementResponse mapea un asiento del libro al DTO de la API.
func ToMovementResponse(m *entity.StockMovement) *dto.MovementResponse {
	if m == nil {
		return nil
	}
	return &dto.MovementResponse{
		ID:                m.ID,
		ProductID:         m.ProductID,
		ProductName:       m.ProductName,
		Type:              m.Type,
		QuantityChanged:   m.QuantityChanged,
		Notes:             m.Notes,
		CreatedBy:         m.CreatedBy,
		CreatedByUsername: m.CreatedByUsername,
		CreatedAt:         m.CreatedAt,
	}
}
