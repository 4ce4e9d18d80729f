package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

var _ repository.CategoryRepository = (*CategoryRepo)(nil)

// CategoryRepo implementación del puerto CategoryRepository sobre PostgreSQL (usable con pool o tx).
type CategoryRepo struct {
	q Querier
}

// NewCategoryRepository construye el adaptador de persistencia para categorías. Pasar pool o tx (Querier).
func NewCategoryRepository(q Querier) *CategoryRepo {
	return &CategoryRepo{q: q}
}

// Create persiste una nueva categoría.
func (r *CategoryRepo) Create(category *entity.Category) error {
	query := `
		INSERT INTO categories (id, name, description, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(context.Background(), query,
		category.ID, category.Name, category.Description, category.CreatedAt, category.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert category: %w", err)
	}
	return nil
}

// GetByID obtiene una categoría por ID.
func (r *CategoryRepo) GetByID(id string) (*entity.Category, error) {
	query := `
		SELECT id, name, description, created_at, updated_at
		FROM categories WHERE id = $1`
	var c entity.Category
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&c.ID, &c.Name, &c.Description, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get category: %w", err)
	}
	return &c, nil
}

// GetByName obtiene una categoría por nombre (único).
func (r *CategoryRepo) GetByName(name string) (*entity.Category, error) {
	query := `
		SELECT id, name, description, created_at, updated_at
		FROM categories WHERE name = $1`
	var c entity.Category
	err := r.q.QueryRow(context.Background(), query, name).Scan(
		&c.ID, &c.Name, &c.Description, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get category by name: %w", err)
	}
	return &c, nil
}

// Update actualiza una categoría existente.
func (r *CategoryRepo) Update(category *entity.Category) error {
	query := `
		UPDATE categories SET name = $2, description = $3, updated_at = $4
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		category.ID, category.Name, category.Description, category.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update category: %w", err)
	}
	return nil
}

// List lista categorías ordenadas por nombre con paginación.
func (r *CategoryRepo) List(limit, offset int) ([]*entity.Category, error) {
	query := `
		SELECT id, name, description, created_at, updated_at
		FROM categories ORDER BY name LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()
	var list []*entity.Category
	for rows.Next() {
		var c entity.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.Description, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

// Delete elimina una categoría por ID. Los productos dependientes (y sus
// movimientos) caen en cascada por constraint FK.
func (r *CategoryRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM categories WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete category: %w", err)
	}
	return nil
}
