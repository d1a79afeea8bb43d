package db

import (
	"gorm.io/gorm"

	"github.com/langliu/budgie/internal/domain/entities"
)

func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&entities.User{},
		&entities.Model{},
		&entities.Tag{},
		&entities.Album{},
		&entities.AlbumImage{},
		&entities.ShortVideo{},
		&entities.Topic{},
		&entities.Todo{},
	)
}
