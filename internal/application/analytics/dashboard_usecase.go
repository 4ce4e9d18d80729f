// Package analytics contiene el caso de uso del dashboard de inventario.
// Camino de solo lectura: nunca muta catálogo ni libro de movimientos.
package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

const (
	dashboardTopProducts = 5 // tamaño de los rankings del dashboard
	dashboardRecentMovs  = 5 // transacciones recientes
	DefaultWindowDays    = 30
)

// DashboardUseCase arma las métricas de GET /api/dashboard sobre una ventana
// de días dada (por defecto 30).
//
// Fuente de datos: AnalyticsRepository (consultas read-only). La consistencia
// snapshot del store es suficiente; los reportes son consultivos y toleran
// lecturas levemente desfasadas frente a escritores concurrentes.
type DashboardUseCase struct {
	analyticsRepo repository.AnalyticsRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(analyticsRepo repository.AnalyticsRepository) *DashboardUseCase {
	return &DashboardUseCase{analyticsRepo: analyticsRepo}
}

// GetMetrics construye el DashboardMetricsDTO. days <= 0 usa la ventana por defecto.
//
// Las consultas independientes se lanzan en paralelo (una goroutine por grupo)
// y se recogen por canal, igual que el resto de reportes del sistema.
func (uc *DashboardUseCase) GetMetrics(ctx context.Context, days int) (*dto.DashboardMetricsDTO, error) {
	if days <= 0 {
		days = DefaultWindowDays
	}
	since := time.Now().AddDate(0, 0, -days)

	type inventoryResult struct {
		summary repository.InventorySummaryResult
		err     error
	}
	type movementsResult struct {
		movements repository.MovementSummaryResult
		txns      repository.TransactionSummaryResult
		err       error
	}
	type rankingsResult struct {
		mostActive   []repository.MostActiveProductResult
		highestValue []repository.HighestValueProductResult
		lowestStock  []repository.LowestStockProductResult
		err          error
	}
	type recentResult struct {
		txns []repository.RecentTransactionResult
		err  error
	}

	invCh := make(chan inventoryResult, 1)
	movCh := make(chan movementsResult, 1)
	rankCh := make(chan rankingsResult, 1)
	recentCh := make(chan recentResult, 1)

	go func() {
		summary, err := uc.analyticsRepo.GetInventorySummary(ctx)
		invCh <- inventoryResult{summary, err}
	}()
	go func() {
		movements, err := uc.analyticsRepo.GetMovementSummary(ctx, since)
		if err != nil {
			movCh <- movementsResult{err: err}
			return
		}
		txns, err := uc.analyticsRepo.GetTransactionSummary(ctx, since)
		movCh <- movementsResult{movements: movements, txns: txns, err: err}
	}()
	go func() {
		var r rankingsResult
		r.mostActive, r.err = uc.analyticsRepo.GetMostActiveProducts(ctx, dashboardTopProducts)
		if r.err == nil {
			r.highestValue, r.err = uc.analyticsRepo.GetHighestValueProducts(ctx, dashboardTopProducts)
		}
		if r.err == nil {
			r.lowestStock, r.err = uc.analyticsRepo.GetLowestStockProducts(ctx, dashboardTopProducts)
		}
		rankCh <- r
	}()
	go func() {
		txns, err := uc.analyticsRepo.GetRecentTransactions(ctx, dashboardRecentMovs)
		recentCh <- recentResult{txns, err}
	}()

	inv := <-invCh
	mov := <-movCh
	rank := <-rankCh
	recent := <-recentCh

	if inv.err != nil {
		return nil, fmt.Errorf("dashboard: resumen de inventario: %w", inv.err)
	}
	if mov.err != nil {
		return nil, fmt.Errorf("dashboard: resumen de movimientos: %w", mov.err)
	}
	if rank.err != nil {
		return nil, fmt.Errorf("dashboard: rankings: %w", rank.err)
	}
	if recent.err != nil {
		return nil, fmt.Errorf("dashboard: transacciones recientes: %w", recent.err)
	}

	out := &dto.DashboardMetricsDTO{
		InventorySummary: dto.InventorySummaryDTO{
			TotalProducts:       inv.summary.TotalProducts,
			TotalCategories:     inv.summary.TotalCategories,
			LowStockProducts:    inv.summary.LowStockProducts,
			OutOfStockProducts:  inv.summary.OutOfStockProducts,
			TotalInventoryValue: inv.summary.TotalInventoryValue.Round(2),
		},
		StockMovements: dto.StockMovementsDTO{
			RecentMovements: mov.movements.RecentMovements,
			StockIn:         mov.movements.StockIn,
			StockOut:        mov.movements.StockOut,
		},
		TransactionSummary: dto.TransactionSummaryDTO{
			TotalTransactions: mov.txns.TotalTransactions,
			TotalValue:        mov.txns.TotalValue.Round(2),
		},
		RecentTransactions: make([]dto.RecentTransactionDTO, 0, len(recent.txns)),
	}

	out.TopProducts.MostActive = make([]dto.MostActiveProductDTO, 0, len(rank.mostActive))
	for _, p := range rank.mostActive {
		out.TopProducts.MostActive = append(out.TopProducts.MostActive, dto.MostActiveProductDTO{
			Name:          p.Name,
			MovementCount: p.MovementCount,
		})
	}
	out.TopProducts.HighestValue = make([]dto.HighestValueProductDTO, 0, len(rank.highestValue))
	for _, p := range rank.highestValue {
		out.TopProducts.HighestValue = append(out.TopProducts.HighestValue, dto.HighestValueProductDTO{
			Name:       p.Name,
			UnitPrice:  p.UnitPrice,
			Quantity:   p.Quantity,
			TotalValue: p.TotalValue.Round(2),
		})
	}
	out.TopProducts.LowestStock = make([]dto.LowestStockProductDTO, 0, len(rank.lowestStock))
	for _, p := range rank.lowestStock {
		out.TopProducts.LowestStock = append(out.TopProducts.LowestStock, dto.LowestStockProductDTO{
			Name:     p.Name,
			Quantity: p.Quantity,
		})
	}
	for _, t := range recent.txns {
		out.RecentTransactions = append(out.RecentTransactions, dto.RecentTransactionDTO{
			CreatedAt:         t.CreatedAt,
			ProductName:       t.ProductName,
			Type:              t.Type,
			QuantityChanged:   t.QuantityChanged,
			CreatedByUsername: t.CreatedByUsername,
		})
	}

	return out, nil
}
