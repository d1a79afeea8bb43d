package handlers

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/langliu/budgie/internal/domain/dto"
	"github.com/langliu/budgie/internal/domain/entities"
	"github.com/langliu/budgie/internal/usecases"
	apperrors "github.com/langliu/budgie/pkg/errors"
)

type AuthHandler struct {
	svc usecases.AuthService
	log *zap.Logger
}

func NewAuthHandler(svc usecases.AuthService, log *zap.Logger) *AuthHandler {
	return &AuthHandler{svc: svc, log: log}
}

func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := parseBody(c, &req); err != nil {
		return apperrors.HandleError(c, h.log, err)
	}

	resp, err := h.svc.Register(c.UserContext(), &req)
	if err != nil {
		return apperrors.HandleError(c, h.log, err)
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := parseBody(c, &req); err != nil {
		return apperrors.HandleError(c, h.log, err)
	}

	resp, err := h.svc.Login(c.UserContext(), &req)
	if err != nil {
		return apperrors.HandleError(c, h.log, err)
	}
	return c.JSON(resp)
}

func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	if err := h.svc.Logout(c.UserContext(), BearerToken(c)); err != nil {
		return apperrors.HandleError(c, h.log, err)
	}
	return c.JSON(fiber.Map{"success": true})
}

// Me returns the authenticated user set by the auth middleware.
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	user, ok := c.Locals("user").(*entities.User)
	if !ok {
		return apperrors.HandleError(c, h.log, apperrors.ErrUnauthorized(nil))
	}
	return c.JSON(user)
}

// BearerToken extracts the token from the Authorization header, falling
// back to the auth cookie.
func BearerToken(c *fiber.Ctx) string {
	const prefix = "Bearer "
	header := c.Get(fiber.HeaderAuthorization)
	if len(header) > len(prefix) && header[:len(prefix)] == prefix {
		return header[len(prefix):]
	}
	return c.Cookies("token")
}
