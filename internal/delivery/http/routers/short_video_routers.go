package routers

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/langliu/budgie/internal/delivery/http/handlers"
	"github.com/langliu/budgie/internal/domain/repositories"
	infra_repo "github.com/langliu/budgie/internal/infrastructure/repositories"
	"github.com/langliu/budgie/internal/usecases"
)

// SetupShortVideoRoutes registers the public surface: short-video ingest
// and listing, file URL resolution, and todos. No auth on these.
func SetupShortVideoRoutes(
	app *fiber.App,
	database *gorm.DB,
	store repositories.ObjectStorage,
	resolver usecases.LinkResolver,
	log *zap.Logger,
) {
	videoRepo := infra_repo.NewShortVideoRepository(database)
	todoRepo := infra_repo.NewTodoRepository(database)

	videoService := usecases.NewShortVideoService(videoRepo, store, resolver, log)
	todoService := usecases.NewTodoService(todoRepo)

	videoHandler := handlers.NewShortVideoHandler(videoService, log)
	todoHandler := handlers.NewTodoHandler(todoService, log)

	api := app.Group("/api/v1")
	api.Post("/short-videos", videoHandler.Ingest)
	api.Get("/short-videos", videoHandler.List)
	api.Get("/file-url", videoHandler.FileURL)

	api.Post("/todos", todoHandler.Create)
	api.Get("/todos", todoHandler.List)
	api.Patch("/todos/:id", todoHandler.Toggle)
	api.Delete("/todos/:id", todoHandler.Delete)
}
