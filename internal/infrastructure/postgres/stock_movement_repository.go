package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

var _ repository.StockMovementRepository = (*StockMovementRepo)(nil)

// StockMovementRepo implementación del puerto StockMovementRepository sobre PostgreSQL.
// Los asientos son de solo inserción; el esquema no tiene updated_at.
type StockMovementRepo struct {
	q Querier
}

// NewStockMovementRepository construye el adaptador de persistencia para el libro de movimientos.
func NewStockMovementRepository(q Querier) *StockMovementRepo {
	return &StockMovementRepo{q: q}
}

// Create inserta un asiento. created_by va a NULL si el usuario no se conoce.
func (r *StockMovementRepo) Create(movement *entity.StockMovement) error {
	query := `
		INSERT INTO stock_movements (id, product_id, type, quantity_changed, created_by, notes, created_at)
		VALUES ($1, $2, $3, $4, NULLIF($5, ''), $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		movement.ID, movement.ProductID, movement.Type, movement.QuantityChanged,
		movement.CreatedBy, movement.Notes, movement.CreatedAt,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("insert stock movement: %w", err)
	}
	return nil
}

// selectMovement columnas comunes de lectura, con nombre de producto y username
// resueltos. created_by usa LEFT JOIN: el asiento sobrevive al usuario (SET NULL).
const selectMovement = `
	SELECT sm.id, sm.product_id, sm.type, sm.quantity_changed,
	       COALESCE(sm.created_by::text, ''), sm.notes, sm.created_at,
	       p.name, COALESCE(u.username, '')
	FROM stock_movements sm
	JOIN products p ON p.id = sm.product_id
	LEFT JOIN users u ON u.id = sm.created_by`

func scanMovement(row pgx.Row) (*entity.StockMovement, error) {
	var m entity.StockMovement
	err := row.Scan(&m.ID, &m.ProductID, &m.Type, &m.QuantityChanged,
		&m.CreatedBy, &m.Notes, &m.CreatedAt, &m.ProductName, &m.CreatedByUsername)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// GetByID obtiene un asiento por ID.
func (r *StockMovementRepo) GetByID(id string) (*entity.StockMovement, error) {
	row := r.q.QueryRow(context.Background(), selectMovement+` WHERE sm.id = $1`, id)
	m, err := scanMovement(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get stock movement: %w", err)
	}
	return m, nil
}

// List devuelve asientos según filtro, más recientes primero.
func (r *StockMovementRepo) List(filter repository.MovementFilter) ([]*entity.StockMovement, error) {
	query := selectMovement
	args := []any{}
	conds := []string{}
	pos := 1
	if filter.ProductID != "" {
		conds = append(conds, fmt.Sprintf("sm.product_id = $%d", pos))
		args = append(args, filter.ProductID)
		pos++
	}
	if filter.Type != "" {
		conds = append(conds, fmt.Sprintf("sm.type = $%d", pos))
		args = append(args, filter.Type)
		pos++
	}
	if filter.From != nil {
		conds = append(conds, fmt.Sprintf("sm.created_at >= $%d", pos))
		args = append(args, *filter.From)
		pos++
	}
	if filter.To != nil {
		conds = append(conds, fmt.Sprintf("sm.created_at <= $%d", pos))
		args = append(args, *filter.To)
		pos++
	}
	for i, c := range conds {
		if i == 0 {
			query += " WHERE " + c
		} else {
			query += " AND " + c
		}
	}
	query += fmt.Sprintf(" ORDER BY sm.created_at DESC LIMIT $%d OFFSET $%d", pos, pos+1)
	args = append(args, filter.Limit, filter.Offset)

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list stock movements: %w", err)
	}
	defer rows.Close()
	return collectMovements(rows)
}

// ListByProductBetween devuelve los asientos de un producto en [from, to] en
// orden cronológico ascendente.
func (r *StockMovementRepo) ListByProductBetween(productID string, from, to time.Time) ([]*entity.StockMovement, error) {
	query := selectMovement + `
	WHERE sm.product_id = $1 AND sm.created_at >= $2 AND sm.created_at <= $3
	ORDER BY sm.created_at ASC`
	rows, err := r.q.Query(context.Background(), query, productID, from, to)
	if err != nil {
		return nil, fmt.Errorf("list stock movements by product: %w", err)
	}
	defer rows.Close()
	return collectMovements(rows)
}

func collectMovements(rows pgx.Rows) ([]*entity.StockMovement, error) {
	var list []*entity.StockMovement
	for rows.Next() {
		m, err := scanMovement(rows)
		if err != nil {
			return nil, fmt.Errorf("scan stock movement: %w", err)
		}
		list = append(list, m)
	}
	return list, rows.Err()
}
