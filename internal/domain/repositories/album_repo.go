package repositories

import (
	"context"

	"github.com/langliu/budgie/internal/domain/dto"
	"github.com/langliu/budgie/internal/domain/entities"
)

type AlbumRepository interface {
	// Create inserts the album and links the given model and tag ids.
	Create(ctx context.Context, album *entities.Album, modelIDs, tagIDs []string) error
	GetByID(ctx context.Context, id string) (*entities.Album, error)
	// List filters by keyword/model/tag and returns one page plus the total
	// row count for that filter.
	List(ctx context.Context, q dto.AlbumListQuery) ([]entities.Album, int64, error)
	// Update saves the album and, when modelIDs or tagIDs is non-nil,
	// replaces the corresponding associations.
	Update(ctx context.Context, album *entities.Album, modelIDs, tagIDs []string) error
	Delete(ctx context.Context, id string) error
}

type AlbumImageRepository interface {
	Create(ctx context.Context, image *entities.AlbumImage) error
	GetByID(ctx context.Context, id string) (*entities.AlbumImage, error)
	ListByAlbum(ctx context.Context, albumID string) ([]entities.AlbumImage, error)
	// MaxSortOrder returns -1 for an album without images.
	MaxSortOrder(ctx context.Context, albumID string) (int, error)
	Update(ctx context.Context, image *entities.AlbumImage) error
	Delete(ctx context.Context, id string) error
}
