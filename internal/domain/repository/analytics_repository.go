package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// Umbrales del resumen de inventario.
const (
	LowStockThreshold = 10 // quantity <= 10 cuenta como stock bajo
)

// InventorySummaryResult conteos globales del catálogo y valor total del inventario.
type InventorySummaryResult struct {
	TotalProducts       int64
	TotalCategories     int64
	LowStockProducts    int64
	OutOfStockProducts  int64
	TotalInventoryValue decimal.Decimal // Σ quantity × unit_price
}

// MovementSummaryResult totales de movimientos dentro de la ventana consultada.
type MovementSummaryResult struct {
	RecentMovements int64
	StockIn         int64 // Σ quantity_changed de los IN
	StockOut        int64 // Σ quantity_changed de los OUT
}

// MostActiveProductResult producto rankeado por número de movimientos (histórico completo).
type MostActiveProductResult struct {
	Name          string
	MovementCount int64
}

// HighestValueProductResult producto rankeado por quantity × unit_price.
type HighestValueProductResult struct {
	Name       string
	UnitPrice  decimal.Decimal
	Quantity   int64
	TotalValue decimal.Decimal
}

// LowestStockProductResult producto con stock positivo más bajo.
type LowestStockProductResult struct {
	Name     string
	Quantity int64
}

// RecentTransactionResult asiento reciente con campos denormalizados para el dashboard.
type RecentTransactionResult struct {
	CreatedAt         time.Time
	ProductName       string
	Type              string
	QuantityChanged   int64
	CreatedByUsername string
}

// TransactionSummaryResult totales de transacciones valoradas dentro de la ventana.
type TransactionSummaryResult struct {
	TotalTransactions int64
	TotalValue        decimal.Decimal // Σ quantity_changed × unit_price del producto
}

// AnalyticsRepository consultas de solo lectura para el dashboard.
// Nunca muta catálogo ni libro; la consistencia snapshot por defecto del store
// es suficiente (los reportes son consultivos).
type AnalyticsRepository interface {
	GetInventorySummary(ctx context.Context) (InventorySummaryResult, error)
	GetMovementSummary(ctx context.Context, since time.Time) (MovementSummaryResult, error)
	GetMostActiveProducts(ctx context.Context, limit int) ([]MostActiveProductResult, error)
	GetHighestValueProducts(ctx context.Context, limit int) ([]HighestValueProductResult, error)
	GetLowestStockProducts(ctx context.Context, limit int) ([]LowestStockProductResult, error)
	GetRecentTransactions(ctx context.Context, limit int) ([]RecentTransactionResult, error)
	GetTransactionSummary(ctx context.Context, since time.Time) (TransactionSummaryResult, error)
}
