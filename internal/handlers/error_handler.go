package handlers

import (
	"errors"

	"practico/internal/apperrors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
)

// InvalidBodyDetail is sent in place of the decoder error, which names
// internal types.
const InvalidBodyDetail = "request body must be a valid JSON object"

// BadRequestError is a request body that could not be decoded.
type BadRequestError struct {
	Message string
	Err     error
}

func (e *BadRequestError) Error() string { return e.Message + ": " + e.Err.Error() }

func (e *BadRequestError) Unwrap() error { return e.Err }

// ErrorHandler maps errors returned by handlers to HTTP responses.
func ErrorHandler(log zerolog.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		var (
			badRequest *BadRequestError
			invalid    *apperrors.ValidationError
			notFound   *apperrors.NotFoundError
			conflict   *apperrors.ConflictError
			fiberErr   *fiber.Error
		)

		switch {
		case errors.As(err, &badRequest):
			log.Debug().Err(badRequest.Err).
				Str("method", c.Method()).
				Str("path", c.Path()).
				Msg("rejected request body")
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": badRequest.Message,
				"error":   InvalidBodyDetail,
			})
		case errors.As(err, &invalid):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "Validation failed",
				"errors":  invalid.Violations,
			})
		case errors.As(err, &notFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": notFound.Error(),
			})
		case errors.As(err, &conflict):
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{
				"message": conflict.Error(),
			})
		case errors.As(err, &fiberErr):
			return c.Status(fiberErr.Code).JSON(fiber.Map{
				"message": fiberErr.Message,
			})
		}

		log.Error().Err(err).
			Str("method", c.Method()).
			Str("path", c.Path()).
			Msg("unhandled error")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Internal server error",
		})
	}
}
