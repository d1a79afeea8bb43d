package routers

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/langliu/budgie/internal/delivery/http/handlers"
	"github.com/langliu/budgie/internal/delivery/http/middleware"
	"github.com/langliu/budgie/internal/domain/repositories"
	infra_repo "github.com/langliu/budgie/internal/infrastructure/repositories"
	"github.com/langliu/budgie/internal/usecases"
)

// SetupCMSRoutes registers the admin surface behind auth: albums, album
// images, models, tags, and direct uploads.
func SetupCMSRoutes(
	app *fiber.App,
	database *gorm.DB,
	store repositories.ObjectStorage,
	auth usecases.AuthService,
	log *zap.Logger,
) {
	albumRepo := infra_repo.NewAlbumRepository(database)
	imageRepo := infra_repo.NewAlbumImageRepository(database)
	modelRepo := infra_repo.NewModelRepository(database)
	tagRepo := infra_repo.NewTagRepository(database)

	albumService := usecases.NewAlbumService(albumRepo)
	imageService := usecases.NewAlbumImageService(albumRepo, imageRepo, store, log)
	modelService := usecases.NewModelService(modelRepo)
	tagService := usecases.NewTagService(tagRepo)
	uploadService := usecases.NewUploadService(store)

	albumHandler := handlers.NewAlbumHandler(albumService, log)
	imageHandler := handlers.NewAlbumImageHandler(imageService, log)
	modelHandler := handlers.NewModelHandler(modelService, log)
	tagHandler := handlers.NewTagHandler(tagService, log)
	uploadHandler := handlers.NewUploadHandler(uploadService, log)

	// Auth is scoped per subpath so the CMS routes stay protected no matter
	// what else registers under /api/v1, and unknown paths still 404.
	api := app.Group("/api/v1")
	requireAuth := middleware.RequireAuth(auth, log)

	albums := api.Group("/albums", requireAuth)
	albums.Post("/", albumHandler.Create)
	albums.Get("/", albumHandler.List)
	albums.Get("/:id", albumHandler.GetByID)
	albums.Put("/:id", albumHandler.Update)
	albums.Delete("/:id", albumHandler.Delete)

	albums.Post("/:id/images", imageHandler.Add)
	albums.Get("/:id/images", imageHandler.ListByAlbum)
	albums.Put("/:id/images/:imageId", imageHandler.Update)
	albums.Delete("/:id/images/:imageId", imageHandler.Delete)

	models := api.Group("/models", requireAuth)
	models.Post("/", modelHandler.Create)
	models.Get("/", modelHandler.List)
	models.Get("/:id", modelHandler.GetByID)
	models.Put("/:id", modelHandler.Update)
	models.Delete("/:id", modelHandler.Delete)

	tags := api.Group("/tags", requireAuth)
	tags.Post("/", tagHandler.Create)
	tags.Get("/", tagHandler.List)
	tags.Get("/:id", tagHandler.GetByID)
	tags.Put("/:id", tagHandler.Update)
	tags.Delete("/:id", tagHandler.Delete)

	uploads := api.Group("/upload", requireAuth)
	uploads.Post("/", uploadHandler.Upload)
	uploads.Post("/presign", uploadHandler.Presign)
}
