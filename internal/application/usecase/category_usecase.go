package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

// CategoryUseCase casos de uso CRUD para categorías. El nombre es único;
// borrar una categoría elimina en cascada sus productos y los movimientos
// de estos (constraint FK, ver migración).
type CategoryUseCase struct {
	repo repository.CategoryRepository
}

// NewCategoryUseCase construye el caso de uso.
func NewCategoryUseCase(repo repository.CategoryRepository) *CategoryUseCase {
	return &CategoryUseCase{repo: repo}
}

// Create crea una nueva categoría. Nombre duplicado retorna ErrDuplicate.
func (uc *CategoryUseCase) Create(in dto.CreateCategoryRequest) (*dto.CategoryResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	existing, _ := uc.repo.GetByName(in.Name)
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	category := &entity.Category{
		ID:          uuid.New().String(),
		Name:        in.Name,
		Description: in.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(category); err != nil {
		return nil, err
	}
	return toCategoryResponse(category), nil
}

// GetByID obtiene una categoría por ID.
func (uc *CategoryUseCase) GetByID(id string) (*dto.CategoryResponse, error) {
	category, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, nil
	}
	return toCategoryResponse(category), nil
}

// Update actualiza una categoría. Cambiar el nombre a uno ya usado retorna ErrDuplicate.
func (uc *CategoryUseCase) Update(id string, in dto.UpdateCategoryRequest) (*dto.CategoryResponse, error) {
	category, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, nil
	}
	if in.Name != nil && *in.Name != category.Name {
		existing, _ := uc.repo.GetByName(*in.Name)
		if existing != nil {
			return nil, domain.ErrDuplicate
		}
		category.Name = *in.Name
	}
	if in.Description != nil {
		category.Description = *in.Description
	}
	category.UpdatedAt = time.Now()
	if err := uc.repo.Update(category); err != nil {
		return nil, err
	}
	return toCategoryResponse(category), nil
}

// List lista categorías con paginación.
func (uc *CategoryUseCase) List(limit, offset int) (*dto.CategoryListResponse, error) {
	list, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.CategoryResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *toCategoryResponse(c))
	}
	return &dto.CategoryListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Delete elimina una categoría (y en cascada sus productos y movimientos).
func (uc *CategoryUseCase) Delete(id string) error {
	category, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if category == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

func toCategoryResponse(c *entity.Category) *dto.CategoryResponse {
	if c == nil {
		return nil
	}
	return &dto.CategoryResponse{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}
