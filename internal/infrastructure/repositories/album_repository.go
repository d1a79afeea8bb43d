package repositories

import (
	"context"

	"gorm.io/gorm"

	"github.com/langliu/budgie/internal/domain/dto"
	"github.com/langliu/budgie/internal/domain/entities"
	"github.com/langliu/budgie/internal/domain/repositories"
)

type albumRepository struct {
	db *gorm.DB
}

func NewAlbumRepository(db *gorm.DB) repositories.AlbumRepository {
	return &albumRepository{db: db}
}

func (r *albumRepository) Create(ctx context.Context, album *entities.Album, modelIDs, tagIDs []string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(album).Error; err != nil {
			return err
		}
		if err := r.replaceAssociations(tx, album, modelIDs, tagIDs); err != nil {
			return err
		}
		return nil
	})
}

func (r *albumRepository) GetByID(ctx context.Context, id string) (*entities.Album, error) {
	var album entities.Album
	err := r.db.WithContext(ctx).
		Preload("Models").
		Preload("Tags").
		Preload("Images", func(db *gorm.DB) *gorm.DB {
			return db.Order("sort_order ASC")
		}).
		First(&album, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &album, nil
}

func (r *albumRepository) List(ctx context.Context, q dto.AlbumListQuery) ([]entities.Album, int64, error) {
	base := r.db.WithContext(ctx).Model(&entities.Album{})

	if q.Keyword != "" {
		pattern := "%" + q.Keyword + "%"
		base = base.Where("title LIKE ? OR description LIKE ?", pattern, pattern)
	}
	if q.ModelID != "" {
		base = base.Where("id IN (?)", r.db.Model(&entities.AlbumModel{}).
			Select("album_id").Where("model_id = ?", q.ModelID))
	}
	if q.TagID != "" {
		base = base.Where("id IN (?)", r.db.Model(&entities.AlbumTag{}).
			Select("album_id").Where("tag_id = ?", q.TagID))
	}

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var albums []entities.Album
	err := base.
		Preload("Models").
		Preload("Tags").
		Order("created_at DESC").
		Limit(q.PageSize).
		Offset((q.Page - 1) * q.PageSize).
		Find(&albums).Error
	if err != nil {
		return nil, 0, err
	}
	return albums, total, nil
}

func (r *albumRepository) Update(ctx context.Context, album *entities.Album, modelIDs, tagIDs []string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(album).Error; err != nil {
			return err
		}
		return r.replaceAssociations(tx, album, modelIDs, tagIDs)
	})
}

func (r *albumRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("album_id = ?", id).Delete(&entities.AlbumModel{}).Error; err != nil {
			return err
		}
		if err := tx.Where("album_id = ?", id).Delete(&entities.AlbumTag{}).Error; err != nil {
			return err
		}
		if err := tx.Where("album_id = ?", id).Delete(&entities.AlbumImage{}).Error; err != nil {
			return err
		}
		return tx.Delete(&entities.Album{}, "id = ?", id).Error
	})
}

// replaceAssociations swaps the album's model/tag links for the given id
// sets. A nil slice means "leave this association alone".
func (r *albumRepository) replaceAssociations(tx *gorm.DB, album *entities.Album, modelIDs, tagIDs []string) error {
	if modelIDs != nil {
		if err := tx.Where("album_id = ?", album.ID).Delete(&entities.AlbumModel{}).Error; err != nil {
			return err
		}
		for _, modelID := range modelIDs {
			link := entities.AlbumModel{AlbumID: album.ID, ModelID: modelID}
			if err := tx.Create(&link).Error; err != nil {
				return err
			}
		}
	}
	if tagIDs != nil {
		if err := tx.Where("album_id = ?", album.ID).Delete(&entities.AlbumTag{}).Error; err != nil {
			return err
		}
		for _, tagID := range tagIDs {
			link := entities.AlbumTag{AlbumID: album.ID, TagID: tagID}
			if err := tx.Create(&link).Error; err != nil {
				return err
			}
		}
	}
	return nil
}
