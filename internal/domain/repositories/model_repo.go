package repositories

import (
	"context"

	"github.com/langliu/budgie/internal/domain/dto"
	"github.com/langliu/budgie/internal/domain/entities"
)

type ModelRepository interface {
	Create(ctx context.Context, model *entities.Model) error
	GetByID(ctx context.Context, id string) (*entities.Model, error)
	// List matches keyword against name and alias.
	List(ctx context.Context, q dto.ModelListQuery) ([]entities.Model, int64, error)
	Update(ctx context.Context, model *entities.Model) error
	Delete(ctx context.Context, id string) error
}

type TagRepository interface {
	Create(ctx context.Context, tag *entities.Tag) error
	GetByID(ctx context.Context, id string) (*entities.Tag, error)
	List(ctx context.Context) ([]entities.Tag, error)
	Update(ctx context.Context, tag *entities.Tag) error
	Delete(ctx context.Context, id string) error
}
