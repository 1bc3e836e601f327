package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/sellout-api/internal/application/dto"
	"github.com/jhoicas/sellout-api/internal/domain"
	"github.com/jhoicas/sellout-api/pkg/logger"
	"github.com/jhoicas/sellout-api/pkg/validator"
)

// responderError traduce errores de los casos de uso a respuestas HTTP.
// Los errores internos se registran y no exponen su detalle.
func responderError(c *fiber.Ctx, log *logger.Logger, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		resp := dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()}
		var ve *validator.ValidationError
		if errors.As(err, &ve) {
			resp.Fields = ve.Fields()
		}
		return c.Status(fiber.StatusBadRequest).JSON(resp)
	case errors.Is(err, domain.ErrConfigPromocionInvalida), errors.Is(err, domain.ErrTipoPromocionDesconocido):
		return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{Code: "INVALID_PROMOTION", Message: err.Error()})
	case errors.Is(err, domain.ErrUnauthorized):
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "tenant_id no encontrado en el token"})
	case errors.Is(err, domain.ErrServicioNoDisponible):
		return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{Code: "AI_UNAVAILABLE", Message: err.Error()})
	default:
		log.Error().Err(err).Str("path", c.Path()).Str("tenant_id", GetTenantID(c)).Msg("error interno")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno del servidor"})
	}
}
