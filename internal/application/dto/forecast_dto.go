package dto

import "time"

// PredictionResponse respuesta de GET /api/predictions/:id.
// Dates son las fechas proyectadas (30 días hacia adelante), índice a índice
// con Forecast. Alerts queda vacío si el stock está por encima del punto de reorden.
type PredictionResponse struct {
	Dates           []time.Time `json:"dates"`
	Historical      []int64     `json:"historical"`
	Forecast        []float64   `json:"forecast"`
	ReorderPoint    int64       `json:"reorderPoint"`
	PeakDemand      int64       `json:"peakDemand"`
	ConfidenceScore int64       `json:"confidenceScore"`
	Alerts          string      `json:"alerts,omitempty"`
}
