package errors

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func HandleError(c *fiber.Ctx, log *zap.Logger, err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		err = ErrNotFound(err)
	}

	var ae *AppError
	if errors.As(err, &ae) {
		if ae.Err != nil {
			log.Warn("request failed", zap.String("code", ae.Code), zap.Error(ae.Err))
		}

		var status int
		switch ae.Code {
		case "not_found":
			status = fiber.StatusNotFound
		case "validation_failed", "email_taken":
			status = fiber.StatusBadRequest
		case "unauthorized":
			status = fiber.StatusUnauthorized
		case "resolution_failed", "download_failed":
			status = fiber.StatusBadGateway
		default:
			status = fiber.StatusInternalServerError
		}

		return c.Status(status).JSON(fiber.Map{
			"error":   ae.Code,
			"message": ae.Message,
		})
	}

	log.Error("unexpected error", zap.Error(err))
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"error":   "internal_error",
		"message": "internal server error",
	})
}
