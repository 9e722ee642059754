package serverutils

import (
	"errors"

	"counselling-portal-be/internal/pkg/logger"
	"counselling-portal-be/pkg/report"

	"github.com/gofiber/fiber/v2"
)

// ErrorHandlerMiddleware turns errors returned by handlers into the JSON
// envelope. Storage and export causes are logged, never sent to the client.
func ErrorHandlerMiddleware(log logger.ILogger) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}
		return WriteError(ctx, log, err)
	}
}

func WriteError(ctx *fiber.Ctx, log logger.ILogger, err error) error {
	var reportErr *report.Error
	var fiberErr *fiber.Error

	switch {
	case errors.Is(err, report.ErrPermissionDenied):
		return ctx.Status(fiber.StatusForbidden).JSON(ErrorResponse(fiber.StatusForbidden, "access denied"))

	case errors.Is(err, report.ErrInvalidRequest):
		message := "invalid request"
		var fields map[string]string
		if errors.As(err, &reportErr) {
			if reportErr.Message != "" {
				message = reportErr.Message
			}
			fields = reportErr.Fields
		}
		return ctx.Status(fiber.StatusBadRequest).JSON(ValidationErrorResponse(message, fields))

	case errors.Is(err, report.ErrStorage):
		log.Error("HTTP", "Storage error", map[string]interface{}{
			"path":  ctx.Path(),
			"error": err.Error(),
		})
		return ctx.Status(fiber.StatusInternalServerError).JSON(ErrorResponse(fiber.StatusInternalServerError, "storage error"))

	case errors.Is(err, report.ErrExport):
		log.Error("HTTP", "Export error", map[string]interface{}{
			"path":  ctx.Path(),
			"error": err.Error(),
		})
		return ctx.Status(fiber.StatusInternalServerError).JSON(ErrorResponse(fiber.StatusInternalServerError, "export failed"))

	case errors.As(err, &fiberErr):
		return ctx.Status(fiberErr.Code).JSON(ErrorResponse(fiberErr.Code, fiberErr.Message))
	}

	log.Error("HTTP", "Unhandled error", map[string]interface{}{
		"path":  ctx.Path(),
		"error": err.Error(),
	})
	return ctx.Status(fiber.StatusInternalServerError).JSON(ErrorResponse(fiber.StatusInternalServerError, "internal server error"))
}
