package repositories

import (
	"context"

	"gorm.io/gorm"

	"github.com/langliu/budgie/internal/domain/entities"
	"github.com/langliu/budgie/internal/domain/repositories"
)

type tagRepository struct {
	db *gorm.DB
}

func NewTagRepository(db *gorm.DB) repositories.TagRepository {
	return &tagRepository{db: db}
}

func (r *tagRepository) Create(ctx context.Context, tag *entities.Tag) error {
	return r.db.WithContext(ctx).Create(tag).Error
}

func (r *tagRepository) GetByID(ctx context.Context, id string) (*entities.Tag, error) {
	var tag entities.Tag
	if err := r.db.WithContext(ctx).First(&tag, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &tag, nil
}

func (r *tagRepository) List(ctx context.Context) ([]entities.Tag, error) {
	var tags []entities.Tag
	err := r.db.WithContext(ctx).Order("created_at DESC").Find(&tags).Error
	return tags, err
}

func (r *tagRepository) Update(ctx context.Context, tag *entities.Tag) error {
	return r.db.WithContext(ctx).Save(tag).Error
}

func (r *tagRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("tag_id = ?", id).Delete(&entities.AlbumTag{}).Error; err != nil {
			return err
		}
		return tx.Delete(&entities.Tag{}, "id = ?", id).Error
	})
}
