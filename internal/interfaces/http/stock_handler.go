package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/application/ledger"
	"github.com/jhoicas/almacen-api/internal/application/usecase"
	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

// StockHandler maneja las peticiones HTTP del libro de movimientos (protegido).
// La escritura pasa por el caso de uso transaccional; las lecturas por el de consulta.
type StockHandler struct {
	record *ledger.RecordMovementUseCase
	query  *usecase.StockQueryUseCase
}

// NewStockHandler construye el handler.
func NewStockHandler(record *ledger.RecordMovementUseCase, query *usecase.StockQueryUseCase) *StockHandler {
	return &StockHandler{record: record, query: query}
}

// Create godoc
// @Summary      Registrar movimiento de stock
// @Description  Crea un asiento IN/OUT y actualiza atómicamente la cantidad del producto.
// @Tags         stocks
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateMovementRequest  true  "product (ID), type (IN/OUT), quantity_changed > 0, notes"
// @Success      201   {object}  dto.MovementResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/stocks [post]
func (h *StockHandler) Create(c *fiber.Ctx) error {
	userID := GetUserID(c)
	if userID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	var in dto.CreateMovementRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	mov, err := h.record.RecordMovement(c.Context(), ledger.MovementInput{
		ProductID:         in.ProductID,
		Type:              in.Type,
		QuantityChanged:   in.QuantityChanged,
		CreatedBy:         userID,
		CreatedByUsername: GetUsername(c),
		Notes:             in.Notes,
	})
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "type debe ser IN u OUT y quantity_changed > 0"})
		}
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "producto no encontrado"})
		}
		return internalError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(usecase.ToMovementResponse(mov))
}

// GetByID godoc
// @Summary      Obtener movimiento por ID
// @Tags         stocks
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del movimiento"
// @Success      200  {object}  dto.MovementResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/stocks/{id} [get]
func (h *StockHandler) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	out, err := h.query.GetByID(id)
	if err != nil {
		return internalError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "movimiento no encontrado"})
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar movimientos de stock
// @Tags         stocks
// @Security     Bearer
// @Produce      json
// @Param        product  query  string  false  "Filtrar por producto (ID)"
// @Param        type     query  string  false  "Filtrar por tipo (IN u OUT)"
// @Param        from     query  string  false  "Desde (RFC3339)"
// @Param        to       query  string  false  "Hasta (RFC3339)"
// @Param        limit    query  int     false  "Límite"   default(20)
// @Param        offset   query  int     false  "Offset"   default(0)
// @Success      200      {object}  dto.MovementListResponse
// @Failure      400      {object}  dto.ErrorResponse
// @Router       /api/stocks [get]
func (h *StockHandler) List(c *fiber.Ctx) error {
	limit, offset := pageParams(c)
	filter := repository.MovementFilter{
		ProductID: c.Query("product"),
		Type:      c.Query("type"),
		Limit:     limit,
		Offset:    offset,
	}
	if raw := c.Query("from"); raw != "" {
		ts, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "from debe ser RFC3339"})
		}
		filter.From = &ts
	}
	if raw := c.Query("to"); raw != "" {
		ts, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "to debe ser RFC3339"})
		}
		filter.To = &ts
	}
	out, err := h.query.List(filter)
	if err != nil {
		return internalError(c, err)
	}
	return c.JSON(out)
}
