package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

// ProductUseCase casos de uso CRUD para productos.
//
// Quantity tiene dos caminos de escritura y ambos se conservan a propósito:
// el libro de movimientos (controlado, vía ledger.RecordMovementUseCase) y la
// edición directa por Update (sin asiento). Unificarlos cambiaría el
// comportamiento observable del sistema original.
type ProductUseCase struct {
	repo         repository.ProductRepository
	categoryRepo repository.CategoryRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository, categoryRepo repository.CategoryRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo, categoryRepo: categoryRepo}
}

// Create crea un producto. La categoría referenciada debe existir.
func (uc *ProductUseCase) Create(in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if in.Name == "" || in.CategoryID == "" {
		return nil, domain.ErrInvalidInput
	}
	category, err := uc.categoryRepo.GetByID(in.CategoryID)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, domain.ErrNotFound
	}
	now := time.Now()
	product := &entity.Product{
		ID:           uuid.New().String(),
		Name:         in.Name,
		Description:  in.Description,
		CategoryID:   in.CategoryID,
		Quantity:     in.Quantity,
		UnitPrice:    in.UnitPrice.Round(2),
		CreatedAt:    now,
		UpdatedAt:    now,
		CategoryName: category.Name,
	}
	if err := uc.repo.Create(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// GetByID obtiene un producto por ID.
func (uc *ProductUseCase) GetByID(id string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	return toProductResponse(product), nil
}

// Update actualiza un producto. Permite sobrescribir Quantity sin generar
// asiento en el libro (camino directo heredado, documentado arriba).
func (uc *ProductUseCase) Update(id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	if in.Name != nil {
		product.Name = *in.Name
	}
	if in.Description != nil {
		product.Description = *in.Description
	}
	if in.CategoryID != nil && *in.CategoryID != product.CategoryID {
		category, err := uc.categoryRepo.GetByID(*in.CategoryID)
		if err != nil {
			return nil, err
		}
		if category == nil {
			return nil, domain.ErrNotFound
		}
		product.CategoryID = *in.CategoryID
		product.CategoryName = category.Name
	}
	if in.Quantity != nil {
		product.Quantity = *in.Quantity
	}
	if in.UnitPrice != nil {
		product.UnitPrice = in.UnitPrice.Round(2)
	}
	product.UpdatedAt = time.Now()
	if err := uc.repo.Update(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// List lista productos, opcionalmente filtrados por categoría.
func (uc *ProductUseCase) List(categoryID string, limit, offset int) (*dto.ProductListResponse, error) {
	list, err := uc.repo.List(categoryID, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductResponse(p))
	}
	return &dto.ProductListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Delete elimina un producto (y en cascada sus movimientos).
func (uc *ProductUseCase) Delete(id string) error {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:           p.ID,
		Name:         p.Name,
		Description:  p.Description,
		CategoryID:   p.CategoryID,
		CategoryName: p.CategoryName,
		Quantity:     p.Quantity,
		UnitPrice:    p.UnitPrice,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}
