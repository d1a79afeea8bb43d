package db

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/langliu/budgie/internal/domain/entities"
	"github.com/langliu/budgie/internal/pkg/config"
)

func NewPostgresDB(cfg config.DatabaseConfig) (*gorm.DB, error) {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.DBName, cfg.SSLMode)

	database, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}

	// The videos<->topics join carries a created_at column, so gorm has to
	// know about the join model before any association write.
	if err := database.SetupJoinTable(&entities.ShortVideo{}, "Topics", &entities.ShortVideoToTopic{}); err != nil {
		return nil, fmt.Errorf("setup join table: %w", err)
	}
	if err := database.SetupJoinTable(&entities.Album{}, "Models", &entities.AlbumModel{}); err != nil {
		return nil, fmt.Errorf("setup join table: %w", err)
	}
	if err := database.SetupJoinTable(&entities.Album{}, "Tags", &entities.AlbumTag{}); err != nil {
		return nil, fmt.Errorf("setup join table: %w", err)
	}

	return database, nil
}
