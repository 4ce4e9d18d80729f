// Package forecast contiene el caso de uso de predicción de demanda.
// Consumidor externo del libro de movimientos: solo lee historial, jamás
// participa del camino de escritura del ledger.
package forecast

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/domain"
	domforecast "github.com/jhoicas/almacen-api/internal/domain/forecast"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

const (
	// DefaultWindowDays ventana de historial por defecto.
	DefaultWindowDays = 30
	// projectionDays días proyectados hacia adelante.
	projectionDays = 30
)

// ForecastUseCase ajusta una tendencia lineal sobre el historial de movimientos
// de un producto y calcula el punto de reorden.
type ForecastUseCase struct {
	productRepo  repository.ProductRepository
	movementRepo repository.StockMovementRepository
}

// NewForecastUseCase construye el caso de uso.
func NewForecastUseCase(
	productRepo repository.ProductRepository,
	movementRepo repository.StockMovementRepository,
) *ForecastUseCase {
	return &ForecastUseCase{productRepo: productRepo, movementRepo: movementRepo}
}

// Predict arma la predicción para un producto sobre una ventana de `days` días
// (<= 0 usa la ventana por defecto): ajusta mínimos cuadrados sobre
// (día-offset, quantity_changed), proyecta 30 días, calcula el punto de
// reorden (media*7 + 1.96*desv*sqrt(7)) y emite la alerta consultiva si el
// stock actual está en o bajo ese punto.
//
// Con menos de 2 movimientos en la ventana retorna ErrInsufficientData.
func (uc *ForecastUseCase) Predict(ctx context.Context, productID string, days int) (*dto.PredictionResponse, error) {
	if days <= 0 {
		days = DefaultWindowDays
	}

	product, err := uc.productRepo.GetByID(productID)
	if err != nil {
		return nil, fmt.Errorf("forecast: producto: %w", err)
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}

	end := time.Now()
	start := end.AddDate(0, 0, -days)
	movements, err := uc.movementRepo.ListByProductBetween(productID, start, end)
	if err != nil {
		return nil, fmt.Errorf("forecast: historial: %w", err)
	}
	if len(movements) < 2 {
		return nil, domain.ErrInsufficientData
	}

	// Observaciones (día relativo al inicio de la ventana, cantidad movida).
	// Igual que el sistema original: entra quantity_changed crudo, sin signo.
	points := make([]domforecast.Point, 0, len(movements))
	historical := make([]int64, 0, len(movements))
	quantities := make([]float64, 0, len(movements))
	for _, m := range movements {
		day := int(m.CreatedAt.Sub(start).Hours() / 24)
		points = append(points, domforecast.Point{Day: day, Quantity: float64(m.QuantityChanged)})
		historical = append(historical, m.QuantityChanged)
		quantities = append(quantities, float64(m.QuantityChanged))
	}

	model, ok := domforecast.Fit(points)
	if !ok {
		return nil, domain.ErrInsufficientData
	}

	// Proyección: días days+1 .. days+30
	dates := make([]time.Time, 0, projectionDays)
	projection := make([]float64, 0, projectionDays)
	peak := math.Inf(-1)
	for d := days + 1; d <= days+projectionDays; d++ {
		dates = append(dates, start.AddDate(0, 0, d))
		y := model.Predict(d)
		projection = append(projection, y)
		if y > peak {
			peak = y
		}
	}

	reorderPoint := domforecast.ReorderPoint(quantities)

	// Score de confianza: R² llevado a 0–100 y acotado.
	confidence := math.Max(0, math.Min(100, model.R2*100))

	resp := &dto.PredictionResponse{
		Dates:           dates,
		Historical:      historical,
		Forecast:        projection,
		ReorderPoint:    int64(math.Round(reorderPoint)),
		PeakDemand:      int64(math.Round(peak)),
		ConfidenceScore: int64(math.Round(confidence)),
	}
	if float64(product.Quantity) <= reorderPoint {
		resp.Alerts = fmt.Sprintf(
			"Stock level (%d) is below reorder point (%d). Consider restocking soon.",
			product.Quantity, resp.ReorderPoint,
		)
	}
	return resp, nil
}
