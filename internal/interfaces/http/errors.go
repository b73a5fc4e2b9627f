package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/modelcar-catalog/internal/application/dto"
	"github.com/tu-usuario/modelcar-catalog/internal/domain"
)

// respondError es el único punto de traducción de errores de dominio a
// HTTP: cambia de status según el Kind y nunca filtra detalle interno
// en los errores sin etiqueta.
func respondError(c *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	message := "error interno del servidor"

	switch domain.KindOf(err) {
	case domain.KindBadRequest:
		status, message = fiber.StatusBadRequest, err.Error()
	case domain.KindUnauthorized:
		status, message = fiber.StatusUnauthorized, err.Error()
	case domain.KindForbidden:
		status, message = fiber.StatusForbidden, err.Error()
	case domain.KindNotFound:
		status, message = fiber.StatusNotFound, err.Error()
	case domain.KindConflict:
		status, message = fiber.StatusConflict, err.Error()
	}

	return c.Status(status).JSON(dto.Fail(message))
}
