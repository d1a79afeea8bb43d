package usecases

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/langliu/budgie/internal/domain/repositories"
	"github.com/langliu/budgie/pkg/constants"
)

// CleanupService reconciles the bucket against the database: an ingest that
// failed after its upload leaves a blob no row references, and this sweep
// removes it.
type CleanupService interface {
	SweepOrphans(ctx context.Context) (int, error)
}

type cleanupService struct {
	repo    repositories.ShortVideoRepository
	storage repositories.ObjectStorage
	minAge  time.Duration
	log     *zap.Logger
}

func NewCleanupService(
	repo repositories.ShortVideoRepository,
	storage repositories.ObjectStorage,
	minAge time.Duration,
	log *zap.Logger,
) CleanupService {
	return &cleanupService{repo: repo, storage: storage, minAge: minAge, log: log}
}

func (s *cleanupService) SweepOrphans(ctx context.Context) (int, error) {
	keys, err := s.repo.AllKeys(ctx)
	if err != nil {
		return 0, err
	}
	referenced := make(map[string]bool, len(keys))
	for _, key := range keys {
		referenced[key] = true
	}

	// Only the video prefix is swept. Cover keys are not recorded anywhere,
	// so covers are left alone.
	objects, err := s.storage.List(ctx, constants.ShortVideoPrefix+"/")
	if err != nil {
		return 0, err
	}

	deleted := 0
	for _, obj := range objects {
		if referenced[obj.Key] {
			continue
		}
		// Recent objects may belong to an ingest still in flight.
		if time.Since(obj.LastModified) < s.minAge {
			continue
		}
		if err := s.storage.Delete(ctx, obj.Key); err != nil {
			s.log.Warn("orphan delete failed", zap.String("key", obj.Key), zap.Error(err))
			continue
		}
		deleted++
	}

	if deleted > 0 {
		s.log.Info("orphan sweep finished", zap.Int("deleted", deleted))
	}
	return deleted, nil
}
