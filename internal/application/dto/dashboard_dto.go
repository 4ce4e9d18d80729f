package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// InventorySummaryDTO conteos del catálogo y valor total del inventario.
type InventorySummaryDTO struct {
	TotalProducts       int64           `json:"total_products"`
	TotalCategories     int64           `json:"total_categories"`
	LowStockProducts    int64           `json:"low_stock_products"`
	OutOfStockProducts  int64           `json:"out_of_stock_products"`
	TotalInventoryValue decimal.Decimal `json:"total_inventory_value"`
}

// StockMovementsDTO totales de movimientos en la ventana consultada.
type StockMovementsDTO struct {
	RecentMovements int64 `json:"recent_movements"`
	StockIn         int64 `json:"stock_in"`
	StockOut        int64 `json:"stock_out"`
}

// MostActiveProductDTO ranking por número de movimientos.
type MostActiveProductDTO struct {
	Name          string `json:"name"`
	MovementCount int64  `json:"movement_count"`
}

// HighestValueProductDTO ranking por quantity × unit_price.
type HighestValueProductDTO struct {
	Name       string          `json:"name"`
	UnitPrice  decimal.Decimal `json:"unit_price"`
	Quantity   int64           `json:"quantity"`
	TotalValue decimal.Decimal `json:"total_value"`
}

// LowestStockProductDTO ranking por stock positivo más bajo.
type LowestStockProductDTO struct {
	Name     string `json:"name"`
	Quantity int64  `json:"quantity"`
}

// TopProductsDTO los tres rankings top-5 del dashboard.
type TopProductsDTO struct {
	MostActive   []MostActiveProductDTO   `json:"most_active"`
	HighestValue []HighestValueProductDTO `json:"highest_value"`
	LowestStock  []LowestStockProductDTO  `json:"lowest_stock"`
}

// RecentTransactionDTO asiento reciente para el widget de transacciones.
type RecentTransactionDTO struct {
	CreatedAt         time.Time `json:"created_at"`
	ProductName       string    `json:"product_name"`
	Type              string    `json:"type"`
	QuantityChanged   int64     `json:"quantity_changed"`
	CreatedByUsername string    `json:"created_by_username,omitempty"`
}

// TransactionSummaryDTO totales de transacciones valoradas en la ventana.
type TransactionSummaryDTO struct {
	TotalTransactions int64           `json:"total_transactions"`
	TotalValue        decimal.Decimal `json:"total_value"`
}

// DashboardMetricsDTO respuesta completa de GET /api/dashboard.
type DashboardMetricsDTO struct {
	InventorySummary   InventorySummaryDTO    `json:"inventory_summary"`
	StockMovements     StockMovementsDTO      `json:"stock_movements"`
	TopProducts        TopProductsDTO         `json:"top_products"`
	RecentTransactions []RecentTransactionDTO `json:"recent_transactions"`
	TransactionSummary TransactionSummaryDTO  `json:"transaction_summary"`
}
