package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

var _ repository.AnalyticsRepository = (*AnalyticsRepo)(nil)

// AnalyticsRepo consultas agregadas de solo lectura para el dashboard.
// Se construye directamente sobre el pool: nunca participa en transacciones.
type AnalyticsRepo struct {
	q Querier
}

// NewAnalyticsRepository construye el adaptador de consultas analíticas.
func NewAnalyticsRepository(q Querier) *AnalyticsRepo {
	return &AnalyticsRepo{q: q}
}

// GetInventorySummary conteos del catálogo y valor total (Σ quantity × unit_price).
func (r *AnalyticsRepo) GetInventorySummary(ctx context.Context) (repository.InventorySummaryResult, error) {
	query := `
		SELECT
			(SELECT COUNT(*) FROM products),
			(SELECT COUNT(*) FROM categories),
			(SELECT COUNT(*) FROM products WHERE quantity <= $1),
			(SELECT COUNT(*) FROM products WHERE quantity = 0),
			(SELECT COALESCE(SUM(quantity * unit_price), 0) FROM products)`
	var res repository.InventorySummaryResult
	err := r.q.QueryRow(ctx, query, repository.LowStockThreshold).Scan(
		&res.TotalProducts, &res.TotalCategories, &res.LowStockProducts,
		&res.OutOfStockProducts, &res.TotalInventoryValue,
	)
	if err != nil {
		return res, fmt.Errorf("inventory summary: %w", err)
	}
	return res, nil
}

// GetMovementSummary totales de movimientos desde la fecha dada.
func (r *AnalyticsRepo) GetMovementSummary(ctx context.Context, since time.Time) (repository.MovementSummaryResult, error) {
	query := `
		SELECT COUNT(*),
		       COALESCE(SUM(quantity_changed) FILTER (WHERE type = 'IN'), 0),
		       COALESCE(SUM(quantity_changed) FILTER (WHERE type = 'OUT'), 0)
		FROM stock_movements
		WHERE created_at >= $1`
	var res repository.MovementSummaryResult
	err := r.q.QueryRow(ctx, query, since).Scan(&res.RecentMovements, &res.StockIn, &res.StockOut)
	if err != nil {
		return res, fmt.Errorf("movement summary: %w", err)
	}
	return res, nil
}

// GetMostActiveProducts top de productos por número de movimientos (histórico
// completo). LEFT JOIN para que los productos sin movimientos también cuenten
// (con cero) cuando hay menos productos activos que el límite.
func (r *AnalyticsRepo) GetMostActiveProducts(ctx context.Context, limit int) ([]repository.MostActiveProductResult, error) {
	query := `
		SELECT p.name, COUNT(sm.id) AS movement_count
		FROM products p
		LEFT JOIN stock_movements sm ON sm.product_id = p.id
		GROUP BY p.id, p.name
		ORDER BY movement_count DESC
		LIMIT $1`
	rows, err := r.q.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("most active products: %w", err)
	}
	defer rows.Close()
	var list []repository.MostActiveProductResult
	for rows.Next() {
		var item repository.MostActiveProductResult
		if err := rows.Scan(&item.Name, &item.MovementCount); err != nil {
			return nil, fmt.Errorf("scan most active product: %w", err)
		}
		list = append(list, item)
	}
	return list, rows.Err()
}

// GetHighestValueProducts top de productos por quantity × unit_price.
func (r *AnalyticsRepo) GetHighestValueProducts(ctx context.Context, limit int) ([]repository.HighestValueProductResult, error) {
	query := `
		SELECT name, unit_price, quantity, quantity * unit_price AS total_value
		FROM products
		ORDER BY total_value DESC
		LIMIT $1`
	rows, err := r.q.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("highest value products: %w", err)
	}
	defer rows.Close()
	var list []repository.HighestValueProductResult
	for rows.Next() {
		var item repository.HighestValueProductResult
		if err := rows.Scan(&item.Name, &item.UnitPrice, &item.Quantity, &item.TotalValue); err != nil {
			return nil, fmt.Errorf("scan highest value product: %w", err)
		}
		list = append(list, item)
	}
	return list, rows.Err()
}

// GetLowestStockProducts productos con stock positivo más bajo. Los agotados
// ya cuentan aparte en el resumen de inventario.
func (r *AnalyticsRepo) GetLowestStockProducts(ctx context.Context, limit int) ([]repository.LowestStockProductResult, error) {
	query := `
		SELECT name, quantity
		FROM products
		WHERE quantity > 0
		ORDER BY quantity ASC
		LIMIT $1`
	rows, err := r.q.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("lowest stock products: %w", err)
	}
	defer rows.Close()
	var list []repository.LowestStockProductResult
	for rows.Next() {
		var item repository.LowestStockProductResult
		if err := rows.Scan(&item.Name, &item.Quantity); err != nil {
			return nil, fmt.Errorf("scan lowest stock product: %w", err)
		}
		list = append(list, item)
	}
	return list, rows.Err()
}

// GetRecentTransactions últimos asientos con campos denormalizados.
func (r *AnalyticsRepo) GetRecentTransactions(ctx context.Context, limit int) ([]repository.RecentTransactionResult, error) {
	query := `
		SELECT sm.created_at, p.name, sm.type, sm.quantity_changed, COALESCE(u.username, '')
		FROM stock_movements sm
		JOIN products p ON p.id = sm.product_id
		LEFT JOIN users u ON u.id = sm.created_by
		ORDER BY sm.created_at DESC
		LIMIT $1`
	rows, err := r.q.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("recent transactions: %w", err)
	}
	defer rows.Close()
	var list []repository.RecentTransactionResult
	for rows.Next() {
		var item repository.RecentTransactionResult
		if err := rows.Scan(&item.CreatedAt, &item.ProductName, &item.Type,
			&item.QuantityChanged, &item.CreatedByUsername); err != nil {
			return nil, fmt.Errorf("scan recent transaction: %w", err)
		}
		list = append(list, item)
	}
	return list, rows.Err()
}

// GetTransactionSummary conteo y valor total de las transacciones de la ventana,
// valoradas al precio unitario actual del producto.
func (r *AnalyticsRepo) GetTransactionSummary(ctx context.Context, since time.Time) (repository.TransactionSummaryResult, error) {
	query := `
		SELECT COUNT(*), COALESCE(SUM(sm.quantity_changed * p.unit_price), 0)
		FROM stock_movements sm
		JOIN products p ON p.id = sm.product_id
		WHERE sm.created_at >= $1`
	var res repository.TransactionSummaryResult
	err := r.q.QueryRow(ctx, query, since).Scan(&res.TotalTransactions, &res.TotalValue)
	if err != nil {
		return res, fmt.Errorf("transaction summary: %w", err)
	}
	return res, nil
}
