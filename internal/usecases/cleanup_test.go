package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/langliu/budgie/internal/domain/entities"
	infra_repo "github.com/langliu/budgie/internal/infrastructure/repositories"
	"github.com/langliu/budgie/internal/infrastructure/storage"
)

func TestCleanupService_SweepOrphans(t *testing.T) {
	ctx := context.Background()

	setup := func(t *testing.T) (*infra_repo.InMemoryShortVideoRepository, *storage.MemoryStorage) {
		t.Helper()
		repo := infra_repo.NewInMemoryShortVideoRepository()
		store := storage.NewMemoryStorage("https://cdn.example.com")

		video := &entities.ShortVideo{
			Name:        "kept",
			OriginalURL: "https://v.example.com/share/kept",
			R2Key:       "short-videos/kept.mp4",
		}
		require.NoError(t, repo.CreateWithTopics(ctx, video, nil))
		require.NoError(t, store.Put(ctx, "short-videos/kept.mp4", []byte("a"), "video/mp4"))
		require.NoError(t, store.Put(ctx, "short-videos/orphan.mp4", []byte("b"), "video/mp4"))
		require.NoError(t, store.Put(ctx, "covers/unrelated.jpg", []byte("c"), "image/jpeg"))
		return repo, store
	}

	t.Run("removes unreferenced video objects only", func(t *testing.T) {
		repo, store := setup(t)
		svc := NewCleanupService(repo, store, 0, zap.NewNop())

		deleted, err := svc.SweepOrphans(ctx)
		require.NoError(t, err)

		assert.Equal(t, 1, deleted)
		assert.ElementsMatch(t, []string{"short-videos/kept.mp4", "covers/unrelated.jpg"}, store.Keys())
	})

	t.Run("successful sweep logs a single summary line", func(t *testing.T) {
		repo, store := setup(t)
		core, logs := observer.New(zap.InfoLevel)
		svc := NewCleanupService(repo, store, 0, zap.New(core))

		_, err := svc.SweepOrphans(ctx)
		require.NoError(t, err)

		assert.Len(t, logs.FilterMessage("orphan sweep finished").All(), 1)
	})

	t.Run("recent objects survive the sweep", func(t *testing.T) {
		repo, store := setup(t)
		svc := NewCleanupService(repo, store, time.Hour, zap.NewNop())

		deleted, err := svc.SweepOrphans(ctx)
		require.NoError(t, err)

		assert.Equal(t, 0, deleted)
		assert.Equal(t, 3, store.Len())
	})
}
