package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"
	"github.com/rs/zerolog"

	"person-api/internal/apperrors"
	"person-api/internal/domain/dtos"
	"person-api/internal/domain/mappers"
)

// ErrorHandler renders every error returned by a handler as a dtos.ErrorResponse.
func ErrorHandler(logger zerolog.Logger) fiber.ErrorHandler {
	logger = logger.With().Str("component", "error_handler").Logger()

	return func(c *fiber.Ctx, err error) error {
		var (
			notFound *apperrors.NotFoundError
			fiberErr *fiber.Error
		)

		if errors.As(err, &notFound) {
			return c.Status(fiber.StatusNotFound).JSON(dtos.ErrorResponse{
				Error:   notFound.Resource + " not found",
				Message: notFound.Error(),
			})
		}
		if invalid, ok := apperrors.AsValidation(err); ok {
			return c.Status(fiber.StatusBadRequest).JSON(dtos.ErrorResponse{
				Error:      "Validation failed",
				Message:    invalid.Error(),
				Violations: mappers.ViolationsToResponse(invalid.Violations),
			})
		}
		if errors.As(err, &fiberErr) {
			return c.Status(fiberErr.Code).JSON(dtos.ErrorResponse{
				Error:   statusTitle(fiberErr.Code),
				Message: fiberErr.Message,
			})
		}

		logger.Error().Err(err).
			Str("method", c.Method()).
			Str("path", c.Path()).
			Msg("unhandled error")
		return c.Status(fiber.StatusInternalServerError).JSON(dtos.ErrorResponse{
			Error:   "Internal server error",
			Message: err.Error(),
		})
	}
}

func statusTitle(code int) string {
	if msg := utils.StatusMessage(code); msg != "" {
		return msg
	}
	return "Error"
}
