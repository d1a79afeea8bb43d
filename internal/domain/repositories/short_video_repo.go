package repositories

import (
	"context"

	"github.com/langliu/budgie/internal/domain/entities"
)

// ShortVideoRepository persists re-hosted videos and their topics.
type ShortVideoRepository interface {
	// FindByOriginalURL returns the video with topics preloaded, or
	// gorm.ErrRecordNotFound.
	FindByOriginalURL(ctx context.Context, originalURL string) (*entities.ShortVideo, error)
	FindByID(ctx context.Context, id string) (*entities.ShortVideo, error)
	// CreateWithTopics resolves each tag to an existing or new topic row,
	// inserts the video and its join rows, all inside one transaction.
	CreateWithTopics(ctx context.Context, video *entities.ShortVideo, tags []string) error
	List(ctx context.Context) ([]entities.ShortVideo, error)
	// AllKeys returns every bucket key referenced by a video row. Used by
	// the orphaned-object sweep.
	AllKeys(ctx context.Context) ([]string, error)
}
