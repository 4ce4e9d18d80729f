package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/rs/zerolog/log"
)

// internalError loggea el error real (vía el logger global de zerolog) y
// responde un mensaje genérico: los detalles del store nunca viajan al cliente.
func internalError(c *fiber.Ctx, err error) error {
	log.Error().Err(err).Str("method", c.Method()).Str("path", c.Path()).Msg("error interno")
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
		Code: "INTERNAL", Message: "error interno",
	})
}
