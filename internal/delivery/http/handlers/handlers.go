package handlers

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	apperrors "github.com/langliu/budgie/pkg/errors"
)

var validate = validator.New()

// parseBody decodes the JSON body into out and runs struct validation.
func parseBody(c *fiber.Ctx, out interface{}) error {
	if err := c.BodyParser(out); err != nil {
		return apperrors.ErrValidation(err)
	}
	if err := validate.Struct(out); err != nil {
		return apperrors.ErrValidation(err)
	}
	return nil
}
