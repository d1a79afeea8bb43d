package repositories

import (
	"context"

	"gorm.io/gorm"

	"github.com/langliu/budgie/internal/domain/entities"
	"github.com/langliu/budgie/internal/domain/repositories"
)

type albumImageRepository struct {
	db *gorm.DB
}

func NewAlbumImageRepository(db *gorm.DB) repositories.AlbumImageRepository {
	return &albumImageRepository{db: db}
}

func (r *albumImageRepository) Create(ctx context.Context, image *entities.AlbumImage) error {
	return r.db.WithContext(ctx).Create(image).Error
}

func (r *albumImageRepository) GetByID(ctx context.Context, id string) (*entities.AlbumImage, error) {
	var image entities.AlbumImage
	if err := r.db.WithContext(ctx).First(&image, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &image, nil
}

func (r *albumImageRepository) ListByAlbum(ctx context.Context, albumID string) ([]entities.AlbumImage, error) {
	var images []entities.AlbumImage
	err := r.db.WithContext(ctx).
		Where("album_id = ?", albumID).
		Order("sort_order ASC").
		Find(&images).Error
	return images, err
}

func (r *albumImageRepository) MaxSortOrder(ctx context.Context, albumID string) (int, error) {
	var max int
	// COALESCE covers an album without images: the next image starts at 0.
	err := r.db.WithContext(ctx).
		Model(&entities.AlbumImage{}).
		Where("album_id = ?", albumID).
		Select("COALESCE(MAX(sort_order), -1)").
		Row().Scan(&max)
	if err != nil {
		return -1, err
	}
	return max, nil
}

func (r *albumImageRepository) Update(ctx context.Context, image *entities.AlbumImage) error {
	return r.db.WithContext(ctx).Save(image).Error
}

func (r *albumImageRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&entities.AlbumImage{}, "id = ?", id).Error
}
