package analytics_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/almacen-api/internal/application/analytics"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

// stubAnalyticsRepo devuelve resultados fijos y registra la ventana consultada.
type stubAnalyticsRepo struct {
	since      time.Time
	rankingErr error
}

func (s *stubAnalyticsRepo) GetInventorySummary(ctx context.Context) (repository.InventorySummaryResult, error) {
	return repository.InventorySummaryResult{
		TotalProducts:       12,
		TotalCategories:     3,
		LowStockProducts:    4,
		OutOfStockProducts:  1,
		TotalInventoryValue: decimal.RequireFromString("1234.567"),
	}, nil
}

func (s *stubAnalyticsRepo) GetMovementSummary(ctx context.Context, since time.Time) (repository.MovementSummaryResult, error) {
	s.since = since
	return repository.MovementSummaryResult{RecentMovements: 7, StockIn: 50, StockOut: 20}, nil
}

func (s *stubAnalyticsRepo) GetMostActiveProducts(ctx context.Context, limit int) ([]repository.MostActiveProductResult, error) {
	if s.rankingErr != nil {
		return nil, s.rankingErr
	}
	// El último llega con cero movimientos: el ranking incluye productos
	// sin actividad cuando hay menos productos activos que el límite.
	out := make([]repository.MostActiveProductResult, 0, limit)
	for i := 0; i < limit; i++ {
		out = append(out, repository.MostActiveProductResult{Name: "p", MovementCount: int64(limit - 1 - i)})
	}
	if len(out) > 0 {
		out[len(out)-1].Name = "producto sin movimientos"
	}
	return out, nil
}

func (s *stubAnalyticsRepo) GetHighestValueProducts(ctx context.Context, limit int) ([]repository.HighestValueProductResult, error) {
	return []repository.HighestValueProductResult{
		{Name: "tornillos", UnitPrice: decimal.RequireFromString("2.50"), Quantity: 100, TotalValue: decimal.RequireFromString("250.005")},
	}, nil
}

func (s *stubAnalyticsRepo) GetLowestStockProducts(ctx context.Context, limit int) ([]repository.LowestStockProductResult, error) {
	return []repository.LowestStockProductResult{{Name: "clavos", Quantity: 2}}, nil
}

func (s *stubAnalyticsRepo) GetRecentTransactions(ctx context.Context, limit int) ([]repository.RecentTransactionResult, error) {
	return []repository.RecentTransactionResult{
		{ProductName: "clavos", Type: "OUT", QuantityChanged: 5, CreatedByUsername: "almacenista"},
	}, nil
}

func (s *stubAnalyticsRepo) GetTransactionSummary(ctx context.Context, since time.Time) (repository.TransactionSummaryResult, error) {
	return repository.TransactionSummaryResult{TotalTransactions: 7, TotalValue: decimal.RequireFromString("99.999")}, nil
}

func TestGetMetrics_ArmaTodasLasSecciones(t *testing.T) {
	repo := &stubAnalyticsRepo{}
	uc := analytics.NewDashboardUseCase(repo)

	out, err := uc.GetMetrics(context.Background(), 0)
	require.NoError(t, err)

	assert.EqualValues(t, 12, out.InventorySummary.TotalProducts)
	assert.EqualValues(t, 4, out.InventorySummary.LowStockProducts)
	assert.Equal(t, "1234.57", out.InventorySummary.TotalInventoryValue.String(),
		"los valores monetarios se redondean a 2 decimales")

	assert.EqualValues(t, 50, out.StockMovements.StockIn)
	assert.EqualValues(t, 20, out.StockMovements.StockOut)

	assert.Len(t, out.TopProducts.MostActive, 5, "rankings top-5")
	last := out.TopProducts.MostActive[len(out.TopProducts.MostActive)-1]
	assert.Equal(t, "producto sin movimientos", last.Name)
	assert.EqualValues(t, 0, last.MovementCount,
		"los productos con cero movimientos también aparecen en el ranking")
	assert.Len(t, out.TopProducts.HighestValue, 1)
	assert.Equal(t, "250.01", out.TopProducts.HighestValue[0].TotalValue.String())
	assert.Len(t, out.TopProducts.LowestStock, 1)

	require.Len(t, out.RecentTransactions, 1)
	assert.Equal(t, "clavos", out.RecentTransactions[0].ProductName)

	assert.EqualValues(t, 7, out.TransactionSummary.TotalTransactions)
	assert.Equal(t, "100", out.TransactionSummary.TotalValue.String())
}

func TestGetMetrics_VentanaPorDefecto30Dias(t *testing.T) {
	repo := &stubAnalyticsRepo{}
	uc := analytics.NewDashboardUseCase(repo)

	_, err := uc.GetMetrics(context.Background(), 0)
	require.NoError(t, err)

	expected := time.Now().AddDate(0, 0, -analytics.DefaultWindowDays)
	assert.WithinDuration(t, expected, repo.since, 5*time.Second)
}

func TestGetMetrics_VentanaPersonalizada(t *testing.T) {
	repo := &stubAnalyticsRepo{}
	uc := analytics.NewDashboardUseCase(repo)

	_, err := uc.GetMetrics(context.Background(), 7)
	require.NoError(t, err)

	expected := time.Now().AddDate(0, 0, -7)
	assert.WithinDuration(t, expected, repo.since, 5*time.Second)
}

func TestGetMetrics_ErrorDeConsulta_Propaga(t *testing.T) {
	repo := &stubAnalyticsRepo{rankingErr: errors.New("conexión perdida")}
	uc := analytics.NewDashboardUseCase(repo)

	_, err := uc.GetMetrics(context.Background(), 30)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "rankings")
}
