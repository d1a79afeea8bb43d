package routers

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/langliu/budgie/internal/delivery/http/handlers"
	"github.com/langliu/budgie/internal/delivery/http/middleware"
	"github.com/langliu/budgie/internal/usecases"
)

func SetupAuthRoutes(app *fiber.App, auth usecases.AuthService, log *zap.Logger) {
	authHandler := handlers.NewAuthHandler(auth, log)

	api := app.Group("/api/v1/auth")
	api.Post("/register", authHandler.Register)
	api.Post("/login", authHandler.Login)
	api.Post("/logout", authHandler.Logout)
	api.Get("/me", middleware.RequireAuth(auth, log), authHandler.Me)
}
