// error_utils.go
package utils

import (
	"errors"

	"Backend-CrickZone/src/models"

	"github.com/gofiber/fiber/v2"
)

// HandleError sends a plain error envelope with the given status
func HandleError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(models.ErrorResponse{
		Status:  status,
		Message: message,
	})
}

// HandleAppError maps a service error to an HTTP response. Structured
// AppErrors keep their kind/detail; anything else becomes a 500.
func HandleAppError(c *fiber.Ctx, err error) error {
	var appErr *models.AppError
	if !errors.As(err, &appErr) {
		return HandleError(c, fiber.StatusInternalServerError, err.Error())
	}

	status := fiber.StatusInternalServerError
	switch appErr.Kind {
	case models.ErrNotFound:
		status = fiber.StatusNotFound
	case models.ErrValidation:
		status = fiber.StatusBadRequest
	case models.ErrFutureSession:
		status = fiber.StatusUnprocessableEntity
	case models.ErrSlotConflict:
		status = fiber.StatusConflict
	case models.ErrPersistence:
		status = fiber.StatusInternalServerError
	}

	return c.Status(status).JSON(models.ErrorResponse{
		Status:  status,
		Kind:    appErr.Kind,
		Message: appErr.Message,
		Detail:  appErr.Detail,
	})
}
