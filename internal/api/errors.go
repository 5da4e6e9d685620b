package api

import (
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v3"

	"github.com/JordanMarcelino/contact-api/internal/auth"
	"github.com/JordanMarcelino/contact-api/internal/contact"
	"github.com/JordanMarcelino/contact-api/internal/validate"
)

// ErrorHandler maps domain errors to HTTP responses. It is installed once as
// the app-level Fiber error handler so every handler can simply return its
// error.
func ErrorHandler(logger *slog.Logger) fiber.ErrorHandler {
	return func(c fiber.Ctx, err error) error {
		var fieldErrs validate.Errors
		if errors.As(err, &fieldErrs) {
			return c.Status(fiber.StatusBadRequest).JSON(WebResponse{
				Message: MessageBadRequest,
				Errors:  fieldErrs,
			})
		}

		switch {
		case errors.Is(err, auth.ErrUserAlreadyRegistered),
			errors.Is(err, auth.ErrLoginFailed):
			return c.Status(fiber.StatusBadRequest).JSON(WebResponse{
				Message: err.Error(),
			})

		case errors.Is(err, auth.ErrUnauthorized):
			return c.Status(fiber.StatusUnauthorized).JSON(WebResponse{
				Message: auth.ErrUnauthorized.Error(),
			})

		case errors.Is(err, contact.ErrContactNotFound),
			errors.Is(err, contact.ErrAddressNotFound):
			return c.Status(fiber.StatusNotFound).JSON(WebResponse{
				Message: err.Error(),
			})
		}

		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			return c.Status(fiberErr.Code).JSON(WebResponse{
				Message: fiberErr.Message,
			})
		}

		logger.Error("request failed",
			slog.String("method", c.Method()),
			slog.String("path", c.Path()),
			slog.Any("error", err),
		)
		return c.Status(fiber.StatusInternalServerError).JSON(WebResponse{
			Message: MessageInternalServerError,
		})
	}
}
