// Package forecast contiene la matemática pura de la predicción de demanda
// (servicio de dominio, sin dependencias de infraestructura).
package forecast

import "math"

// Parámetros del punto de reorden: tiempo de entrega asumido y nivel de
// servicio del 95% (z de una cola).
const (
	LeadTimeDays = 7
	ServiceLevel = 1.96
)

// Point es una observación (día relativo al inicio de la ventana, cantidad movida).
type Point struct {
	Day      int
	Quantity float64
}

// Model es el resultado de un ajuste lineal por mínimos cuadrados y = a + b*x.
type Model struct {
	Intercept float64
	Slope     float64
	R2        float64 // coeficiente de determinación del ajuste
}

// Fit ajusta la recta de mínimos cuadrados sobre los puntos.
// ok es false con menos de 2 puntos (no hay recta que ajustar).
func Fit(points []Point) (m Model, ok bool) {
	n := float64(len(points))
	if len(points) < 2 {
		return Model{}, false
	}

	var sumX, sumY, sumXY, sumXX float64
	for _, p := range points {
		x := float64(p.Day)
		sumX += x
		sumY += p.Quantity
		sumXY += x * p.Quantity
		sumXX += x * x
	}

	den := n*sumXX - sumX*sumX
	if den == 0 {
		// Todos los puntos en el mismo día: recta horizontal en la media.
		m = Model{Intercept: sumY / n, Slope: 0}
	} else {
		m.Slope = (n*sumXY - sumX*sumY) / den
		m.Intercept = (sumY - m.Slope*sumX) / n
	}

	m.R2 = rSquared(points, m)
	return m, true
}

// Predict evalúa la recta en el día x.
func (m Model) Predict(day int) float64 {
	return m.Intercept + m.Slope*float64(day)
}

// rSquared calcula 1 - SSres/SStot. Si la varianza total es cero el ajuste es
// perfecto por definición (serie constante) y devuelve 1.
func rSquared(points []Point, m Model) float64 {
	var mean float64
	for _, p := range points {
		mean += p.Quantity
	}
	mean /= float64(len(points))

	var ssRes, ssTot float64
	for _, p := range points {
		res := p.Quantity - m.Predict(p.Day)
		tot := p.Quantity - mean
		ssRes += res * res
		ssTot += tot * tot
	}
	if ssTot == 0 {
		return 1
	}
	return 1 - ssRes/ssTot
}

// ReorderPoint calcula el umbral de reposición:
// demanda_media*lead_time + z*desv_estándar*sqrt(lead_time).
// Usa desviación estándar poblacional sobre las cantidades observadas.
func ReorderPoint(quantities []float64) float64 {
	if len(quantities) == 0 {
		return 0
	}
	var mean float64
	for _, q := range quantities {
		mean += q
	}
	mean /= float64(len(quantities))

	var variance float64
	for _, q := range quantities {
		d := q - mean
		variance += d * d
	}
	variance /= float64(len(quantities))

	return mean*LeadTimeDays + ServiceLevel*math.Sqrt(variance)*math.Sqrt(LeadTimeDays)
}
