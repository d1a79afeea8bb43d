package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/joho/godotenv"
	"github.com/pressly/goose/v3"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/langliu/budgie/internal/delivery/http/routers"
	"github.com/langliu/budgie/internal/infrastructure/db"
	"github.com/langliu/budgie/internal/infrastructure/extractor"
	infra_repo "github.com/langliu/budgie/internal/infrastructure/repositories"
	"github.com/langliu/budgie/internal/infrastructure/sessions"
	"github.com/langliu/budgie/internal/infrastructure/storage"
	"github.com/langliu/budgie/internal/pkg/config"
	"github.com/langliu/budgie/internal/pkg/token"
	"github.com/langliu/budgie/internal/usecases"
	consts "github.com/langliu/budgie/pkg/constants"
	"github.com/langliu/budgie/pkg/logger"

	_ "github.com/langliu/budgie/migrations"
)

func main() {
	if err := godotenv.Load(); err != nil {
		fmt.Println("No .env file found, using system environment variables")
	}
	cfg := config.LoadConfig()

	log, err := logger.New(cfg.Env)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger init failed: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	database, err := db.NewPostgresDB(cfg.Database)
	if err != nil {
		log.Fatal("db connection failed", zap.Error(err))
	}

	if os.Getenv("RUN_AUTO_MIGRATION") == "true" {
		sqlDB, err := database.DB()
		if err != nil {
			log.Fatal("sql.DB handle unavailable", zap.Error(err))
		}
		goose.SetBaseFS(nil)
		if err := goose.Up(sqlDB, "."); err != nil {
			log.Fatal("failed to apply migrations", zap.Error(err))
		}
	} else if cfg.Env == "development" {
		if err := db.AutoMigrate(database); err != nil {
			log.Fatal("auto migration failed", zap.Error(err))
		}
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	store, err := storage.NewR2Storage(context.Background(), cfg.Storage)
	if err != nil {
		log.Fatal("storage init failed", zap.Error(err))
	}

	resolver := extractor.NewClient(cfg.Extractor)

	userRepo := infra_repo.NewUserRepository(database)
	sessionStore := sessions.NewStore(rdb, cfg.Auth.SessionTTL)
	tokenManager := token.NewManager(cfg.Auth.JWTSecret, cfg.Auth.SessionTTL)
	authService := usecases.NewAuthService(userRepo, sessionStore, tokenManager)

	app := fiber.New(fiber.Config{
		BodyLimit: int(cfg.Server.BodyLimit),
	})

	app.Use(fiberlogger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.Server.CORSOrigin,
	}))

	routers.SetupShortVideoRoutes(app, database, store, resolver, log)
	routers.SetupAuthRoutes(app, authService, log)
	routers.SetupCMSRoutes(app, database, store, authService, log)

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": consts.StatusOK})
	})

	// Orphaned-object sweep. Empty schedule disables it.
	if cfg.Cleanup.Schedule != "" {
		videoRepo := infra_repo.NewShortVideoRepository(database)
		cleanup := usecases.NewCleanupService(videoRepo, store, cfg.Cleanup.MinAge, log)

		c := cron.New()
		if _, err := c.AddFunc(cfg.Cleanup.Schedule, func() {
			if _, err := cleanup.SweepOrphans(context.Background()); err != nil {
				log.Error("orphan sweep failed", zap.Error(err))
			}
		}); err != nil {
			log.Fatal("invalid cleanup schedule", zap.String("schedule", cfg.Cleanup.Schedule), zap.Error(err))
		}
		c.Start()
		defer c.Stop()
	}

	addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
	log.Info("server starting", zap.String("addr", addr))

	go func() {
		if err := app.Listen(addr); err != nil {
			log.Fatal("server failed to start", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("shutdown signal received")

	ctxShut, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(ctxShut); err != nil {
		log.Fatal("server shutdown failed", zap.Error(err))
	}
	log.Info("server stopped")
}
