package forecast_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/almacen-api/internal/domain/forecast"
)

// TestFit_RectaExacta verifica que puntos perfectamente colineales recuperan
// pendiente e intercepto exactos con R² = 1.
func TestFit_RectaExacta(t *testing.T) {
	// y = 3 + 2x
	points := []forecast.Point{
		{Day: 0, Quantity: 3},
		{Day: 1, Quantity: 5},
		{Day: 2, Quantity: 7},
		{Day: 3, Quantity: 9},
	}
	m, ok := forecast.Fit(points)
	require.True(t, ok)

	assert.InDelta(t, 2.0, m.Slope, 1e-9)
	assert.InDelta(t, 3.0, m.Intercept, 1e-9)
	assert.InDelta(t, 1.0, m.R2, 1e-9)
	assert.InDelta(t, 23.0, m.Predict(10), 1e-9)
}

// TestFit_MenosDeDosPuntos no hay recta que ajustar.
func TestFit_MenosDeDosPuntos(t *testing.T) {
	_, ok := forecast.Fit(nil)
	assert.False(t, ok)

	_, ok = forecast.Fit([]forecast.Point{{Day: 0, Quantity: 5}})
	assert.False(t, ok)
}

// TestFit_SerieConstante una serie sin varianza ajusta una recta horizontal
// con R² = 1 (ajuste perfecto por definición).
func TestFit_SerieConstante(t *testing.T) {
	points := []forecast.Point{
		{Day: 0, Quantity: 4},
		{Day: 5, Quantity: 4},
		{Day: 9, Quantity: 4},
	}
	m, ok := forecast.Fit(points)
	require.True(t, ok)

	assert.InDelta(t, 0.0, m.Slope, 1e-9)
	assert.InDelta(t, 4.0, m.Intercept, 1e-9)
	assert.InDelta(t, 1.0, m.R2, 1e-9)
}

// TestFit_MismoDia todos los puntos en el mismo día degenera en la media.
func TestFit_MismoDia(t *testing.T) {
	points := []forecast.Point{
		{Day: 3, Quantity: 2},
		{Day: 3, Quantity: 6},
	}
	m, ok := forecast.Fit(points)
	require.True(t, ok)

	assert.InDelta(t, 0.0, m.Slope, 1e-9)
	assert.InDelta(t, 4.0, m.Intercept, 1e-9)
}

// TestReorderPoint_VectorConocido valida la fórmula
// media*7 + 1.96*desv*sqrt(7) con un vector calculado a mano.
func TestReorderPoint_VectorConocido(t *testing.T) {
	// cantidades: 2, 4, 6 → media = 4, desv poblacional = sqrt(8/3)
	quantities := []float64{2, 4, 6}
	expected := 4.0*7 + 1.96*math.Sqrt(8.0/3.0)*math.Sqrt(7)

	got := forecast.ReorderPoint(quantities)
	assert.InDelta(t, expected, got, 1e-9)
}

// TestReorderPoint_SinDatos devuelve cero en vez de NaN.
func TestReorderPoint_SinDatos(t *testing.T) {
	assert.Equal(t, 0.0, forecast.ReorderPoint(nil))
}

// TestReorderPoint_DemandaConstante sin varianza el punto de reorden es
// exactamente demanda_media * lead_time.
func TestReorderPoint_DemandaConstante(t *testing.T) {
	got := forecast.ReorderPoint([]float64{5, 5, 5, 5})
	assert.InDelta(t, 35.0, got, 1e-9)
}
