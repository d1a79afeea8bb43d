package repositories

import (
	"context"

	"gorm.io/gorm"

	"github.com/langliu/budgie/internal/domain/dto"
	"github.com/langliu/budgie/internal/domain/entities"
	"github.com/langliu/budgie/internal/domain/repositories"
)

type modelRepository struct {
	db *gorm.DB
}

func NewModelRepository(db *gorm.DB) repositories.ModelRepository {
	return &modelRepository{db: db}
}

func (r *modelRepository) Create(ctx context.Context, model *entities.Model) error {
	return r.db.WithContext(ctx).Create(model).Error
}

func (r *modelRepository) GetByID(ctx context.Context, id string) (*entities.Model, error) {
	var model entities.Model
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &model, nil
}

func (r *modelRepository) List(ctx context.Context, q dto.ModelListQuery) ([]entities.Model, int64, error) {
	base := r.db.WithContext(ctx).Model(&entities.Model{})
	if q.Keyword != "" {
		pattern := "%" + q.Keyword + "%"
		base = base.Where("name LIKE ? OR alias LIKE ?", pattern, pattern)
	}

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var models []entities.Model
	err := base.
		Order("created_at DESC").
		Limit(q.PageSize).
		Offset((q.Page - 1) * q.PageSize).
		Find(&models).Error
	if err != nil {
		return nil, 0, err
	}
	return models, total, nil
}

func (r *modelRepository) Update(ctx context.Context, model *entities.Model) error {
	return r.db.WithContext(ctx).Save(model).Error
}

func (r *modelRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("model_id = ?", id).Delete(&entities.AlbumModel{}).Error; err != nil {
			return err
		}
		return tx.Delete(&entities.Model{}, "id = ?", id).Error
	})
}
