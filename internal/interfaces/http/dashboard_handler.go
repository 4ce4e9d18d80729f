package http

import (
	"github.com/gofiber/fiber/v2"
	appanalytics "github.com/jhoicas/almacen-api/internal/application/analytics"
)

// DashboardHandler maneja los endpoints del módulo de Dashboard.
type DashboardHandler struct {
	uc *appanalytics.DashboardUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *appanalytics.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// GetMetrics devuelve todas las métricas del dashboard en una sola respuesta.
// GET /api/dashboard?days=N
//
// Respuesta: DashboardMetricsDTO (inventory_summary, stock_movements,
// top_products con los tres rankings top-5, recent_transactions[5],
// transaction_summary). days acota la ventana de movimientos y
// transacciones; por defecto 30. Los rankings son sobre el histórico completo.
func (h *DashboardHandler) GetMetrics(c *fiber.Ctx) error {
	days := c.QueryInt("days", appanalytics.DefaultWindowDays)
	if days <= 0 {
		days = appanalytics.DefaultWindowDays
	}

	metrics, err := h.uc.GetMetrics(c.Context(), days)
	if err != nil {
		return internalError(c, err)
	}

	return c.JSON(metrics)
}
