package http

import (
	"bytes"
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/recaudo-api/internal/application/dto"
	"github.com/jhoicas/recaudo-api/internal/domain"
	"github.com/jhoicas/recaudo-api/pkg/logger"
)

const (
	msgValidationFailed = "Validation failed"
	msgInvalidJSON      = "Invalid JSON body"
	msgCustomerNotFound = "Customer not found"
	msgDuplicateCreate  = "Duplicate entry (identification or email)"
	msgDuplicateUpdate  = "Duplicate entry"
	msgInternal         = "Internal server error"
	msgSeedFailed       = "Seed failed"
)

// writeError traduce errores de dominio a status HTTP. Lo no clasificado se registra
// y sale como 500 sin detalles internos. duplicateMsg vacío usa el mensaje genérico.
func writeError(c *fiber.Ctx, log *logger.Logger, err error, duplicateMsg string) error {
	if duplicateMsg == "" {
		duplicateMsg = msgDuplicateUpdate
	}
	var verr *domain.ValidationError
	switch {
	case errors.As(err, &verr):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ValidationErrorResponse{
			Error: msgValidationFailed, Errors: verr.Fields,
		})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: msgCustomerNotFound})
	case errors.Is(err, domain.ErrDuplicate):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Error: duplicateMsg})
	default:
		log.Error().Err(err).
			Str("request_id", requestID(c)).
			Str("method", c.Method()).
			Str("path", c.Path()).
			Msg("error no controlado")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: msgInternal})
	}
}

// parseJSON decodifica el cuerpo sin exigir Content-Type. Un cuerpo vacío equivale a {}.
func parseJSON(c *fiber.Ctx, out any) error {
	body := bytes.TrimSpace(c.Body())
	if len(body) == 0 {
		return nil
	}
	return c.App().Config().JSONDecoder(body, out)
}

// errorHandler respuesta JSON para errores de fiber (404 de ruta, 413, 405, panics recuperados).
func errorHandler(log *logger.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError
		msg := msgInternal
		var fe *fiber.Error
		if errors.As(err, &fe) {
			code = fe.Code
			msg = fe.Message
		}
		if code >= fiber.StatusInternalServerError {
			log.Error().Err(err).Str("request_id", requestID(c)).Str("path", c.Path()).Msg("error de fiber")
			msg = msgInternal
		}
		return c.Status(code).JSON(dto.ErrorResponse{Error: msg})
	}
}
