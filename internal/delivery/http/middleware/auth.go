package middleware

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/langliu/budgie/internal/delivery/http/handlers"
	"github.com/langliu/budgie/internal/usecases"
	apperrors "github.com/langliu/budgie/pkg/errors"
)

// RequireAuth rejects requests whose token does not resolve to a live
// session, and stores the user under the "user" local for handlers.
func RequireAuth(auth usecases.AuthService, log *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString := handlers.BearerToken(c)
		if tokenString == "" {
			return apperrors.HandleError(c, log, apperrors.ErrUnauthorized(nil))
		}

		user, err := auth.Authenticate(c.UserContext(), tokenString)
		if err != nil {
			return apperrors.HandleError(c, log, err)
		}

		c.Locals("user", user)
		return c.Next()
	}
}
