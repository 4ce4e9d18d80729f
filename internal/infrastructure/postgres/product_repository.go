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

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// Create persiste un nuevo producto.
func (r *ProductRepo) Create(product *entity.Product) error {
	query := `
		INSERT INTO products (id, name, description, category_id, quantity, unit_price, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		product.ID, product.Name, product.Description, product.CategoryID,
		product.Quantity, product.UnitPrice, product.CreatedAt, product.UpdatedAt,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetByID obtiene un producto por ID con el nombre de su categoría resuelto.
func (r *ProductRepo) GetByID(id string) (*entity.Product, error) {
	query := `
		SELECT p.id, p.name, p.description, p.category_id, p.quantity, p.unit_price, p.created_at, p.updated_at, c.name
		FROM products p
		JOIN categories c ON c.id = p.category_id
		WHERE p.id = $1`
	var p entity.Product
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&p.ID, &p.Name, &p.Description, &p.CategoryID, &p.Quantity, &p.UnitPrice,
		&p.CreatedAt, &p.UpdatedAt, &p.CategoryName,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return &p, nil
}

// GetForUpdate obtiene el producto bloqueando su fila (SELECT FOR UPDATE).
// Serializa escritores concurrentes del libro sobre el mismo producto; solo
// tiene sentido dentro de una transacción (TxRunner).
func (r *ProductRepo) GetForUpdate(id string) (*entity.Product, error) {
	query := `
		SELECT id, name, description, category_id, quantity, unit_price, created_at, updated_at
		FROM products WHERE id = $1
		FOR UPDATE`
	var p entity.Product
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&p.ID, &p.Name, &p.Description, &p.CategoryID, &p.Quantity, &p.UnitPrice,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product for update: %w", err)
	}
	return &p, nil
}

// Update actualiza un producto existente (incluida la cantidad: camino de
// edición directa heredado, sin asiento en el libro).
func (r *ProductRepo) Update(product *entity.Product) error {
	query := `
		UPDATE products SET name = $2, description = $3, category_id = $4, quantity = $5, unit_price = $6, updated_at = $7
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		product.ID, product.Name, product.Description, product.CategoryID,
		product.Quantity, product.UnitPrice, product.UpdatedAt,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("update product: %w", err)
	}
	return nil
}

// UpdateQuantity fija la cantidad derivada del libro y refresca updated_at.
func (r *ProductRepo) UpdateQuantity(productID string, quantity int64) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE products SET quantity = $2, updated_at = now() WHERE id = $1`,
		productID, quantity,
	)
	if err != nil {
		return fmt.Errorf("update product quantity: %w", err)
	}
	return nil
}

// List lista productos con paginación, opcionalmente filtrados por categoría.
func (r *ProductRepo) List(categoryID string, limit, offset int) ([]*entity.Product, error) {
	query := `
		SELECT p.id, p.name, p.description, p.category_id, p.quantity, p.unit_price, p.created_at, p.updated_at, c.name
		FROM products p
		JOIN categories c ON c.id = p.category_id`
	args := []any{}
	pos := 1
	if categoryID != "" {
		query += fmt.Sprintf(" WHERE p.category_id = $%d", pos)
		args = append(args, categoryID)
		pos++
	}
	query += fmt.Sprintf(" ORDER BY p.created_at DESC LIMIT $%d OFFSET $%d", pos, pos+1)
	args = append(args, limit, offset)

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()
	var list []*entity.Product
	for rows.Next() {
		var p entity.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Description, &p.CategoryID, &p.Quantity,
			&p.UnitPrice, &p.CreatedAt, &p.UpdatedAt, &p.CategoryName); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// Delete elimina un producto por ID. Sus movimientos caen en cascada por constraint FK.
func (r *ProductRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	return nil
}
