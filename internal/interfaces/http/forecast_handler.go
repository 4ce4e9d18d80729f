package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/almacen-api/internal/application/dto"
	appforecast "github.com/jhoicas/almacen-api/internal/application/forecast"
	"github.com/jhoicas/almacen-api/internal/domain"
)

// ForecastHandler maneja el endpoint de predicción de demanda.
type ForecastHandler struct {
	uc *appforecast.ForecastUseCase
}

// NewForecastHandler construye el handler.
func NewForecastHandler(uc *appforecast.ForecastUseCase) *ForecastHandler {
	return &ForecastHandler{uc: uc}
}

// Predict godoc
// @Summary      Predicción de demanda de un producto
// @Description  Ajusta una regresión lineal sobre las salidas históricas de la
//               ventana y proyecta 30 días. Incluye punto de reorden y alerta
//               si el stock actual queda por debajo.
// @Tags         predictions
// @Security     Bearer
// @Produce      json
// @Param        id    path   string  true   "ID del producto"
// @Param        days  query  int     false  "Ventana histórica en días"  default(30)
// @Success      200   {object}  dto.PredictionResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/predictions/{id} [get]
func (h *ForecastHandler) Predict(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	days := c.QueryInt("days", appforecast.DefaultWindowDays)
	if days <= 0 {
		days = appforecast.DefaultWindowDays
	}

	out, err := h.uc.Predict(c.Context(), id, days)
	if err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "producto no encontrado"})
		}
		if err == domain.ErrInsufficientData {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INSUFFICIENT_DATA", Message: "no hay movimientos suficientes para predecir"})
		}
		return internalError(c, err)
	}
	return c.JSON(out)
}
