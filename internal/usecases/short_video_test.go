package usecases

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/langliu/budgie/internal/infrastructure/extractor"
	infra_repo "github.com/langliu/budgie/internal/infrastructure/repositories"
	"github.com/langliu/budgie/internal/infrastructure/storage"
	apperrors "github.com/langliu/budgie/pkg/errors"
)

type fakeResolver struct {
	info       *extractor.VideoInfo
	resolveErr error
	// downloads that should fail, keyed by url
	failDownloads map[string]error

	resolveCalls  int
	downloadCalls int
}

func (f *fakeResolver) Resolve(_ context.Context, _ string) (*extractor.VideoInfo, error) {
	f.resolveCalls++
	if f.resolveErr != nil {
		return nil, f.resolveErr
	}
	return f.info, nil
}

func (f *fakeResolver) Download(_ context.Context, url string) ([]byte, string, error) {
	f.downloadCalls++
	if err := f.failDownloads[url]; err != nil {
		return nil, "", err
	}
	if strings.HasSuffix(url, ".mp4") {
		return []byte("video-bytes"), "video/mp4", nil
	}
	return []byte("cover-bytes"), "image/jpeg", nil
}

func newIngestFixture(resolver *fakeResolver) (ShortVideoService, *infra_repo.InMemoryShortVideoRepository, *storage.MemoryStorage) {
	repo := infra_repo.NewInMemoryShortVideoRepository()
	store := storage.NewMemoryStorage("https://cdn.example.com")
	svc := NewShortVideoService(repo, store, resolver, zap.NewNop())
	return svc, repo, store
}

func TestShortVideoService_Ingest(t *testing.T) {
	ctx := context.Background()
	link := "https://v.example.com/share/abc123"

	t.Run("happy path stores video, cover and topics", func(t *testing.T) {
		resolver := &fakeResolver{info: &extractor.VideoInfo{
			Desc:     "猫猫凝视 #少女感 #二次元 #动漫",
			PlayAddr: "https://media.example.com/raw.mp4",
			Cover:    "https://media.example.com/cover.jpeg",
		}}
		svc, repo, store := newIngestFixture(resolver)

		resp, err := svc.Ingest(ctx, link)
		require.NoError(t, err)

		assert.Equal(t, "猫猫凝视", resp.Name)
		assert.Equal(t, link, resp.OriginalURL)
		assert.Len(t, resp.Topics, 3)
		assert.True(t, strings.HasPrefix(resp.VideoURL, "https://cdn.example.com/short-videos/"))
		assert.True(t, strings.HasPrefix(resp.CoverURL, "https://cdn.example.com/covers/"))
		assert.Equal(t, 2, store.Len())
		assert.Equal(t, 3, repo.TopicCount())
	})

	t.Run("second call with same link is read only", func(t *testing.T) {
		resolver := &fakeResolver{info: &extractor.VideoInfo{
			Desc:     "clip #fun",
			PlayAddr: "https://media.example.com/raw.mp4",
			Cover:    "https://media.example.com/cover.jpeg",
		}}
		svc, repo, store := newIngestFixture(resolver)

		first, err := svc.Ingest(ctx, link)
		require.NoError(t, err)
		resolveCalls, downloadCalls, putCalls := resolver.resolveCalls, resolver.downloadCalls, store.PutCalls

		second, err := svc.Ingest(ctx, link)
		require.NoError(t, err)

		assert.Equal(t, first.ID, second.ID)
		assert.Equal(t, first.VideoURL, second.VideoURL)
		assert.Empty(t, second.CoverURL)
		assert.Equal(t, resolveCalls, resolver.resolveCalls)
		assert.Equal(t, downloadCalls, resolver.downloadCalls)
		assert.Equal(t, putCalls, store.PutCalls)
		assert.Equal(t, 1, repo.VideoCount())
	})

	t.Run("same hashtag across links reuses the topic row", func(t *testing.T) {
		resolver := &fakeResolver{info: &extractor.VideoInfo{
			Desc:     "clip #fun",
			PlayAddr: "https://media.example.com/raw.mp4",
		}}
		svc, repo, _ := newIngestFixture(resolver)

		_, err := svc.Ingest(ctx, "https://v.example.com/share/one")
		require.NoError(t, err)
		_, err = svc.Ingest(ctx, "https://v.example.com/share/two")
		require.NoError(t, err)

		assert.Equal(t, 2, repo.VideoCount())
		assert.Equal(t, 1, repo.TopicCount())
	})

	t.Run("resolution failure leaves nothing behind", func(t *testing.T) {
		resolver := &fakeResolver{resolveErr: errors.New("upstream said no")}
		svc, repo, store := newIngestFixture(resolver)

		_, err := svc.Ingest(ctx, link)
		require.Error(t, err)

		var appErr *apperrors.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, "resolution_failed", appErr.Code)
		assert.Equal(t, 0, repo.VideoCount())
		assert.Equal(t, 0, store.Len())
	})

	t.Run("video download failure leaves nothing behind", func(t *testing.T) {
		resolver := &fakeResolver{
			info: &extractor.VideoInfo{
				Desc:     "clip #fun",
				PlayAddr: "https://media.example.com/raw.mp4",
			},
			failDownloads: map[string]error{
				"https://media.example.com/raw.mp4": fmt.Errorf("connection reset"),
			},
		}
		svc, repo, store := newIngestFixture(resolver)

		_, err := svc.Ingest(ctx, link)
		require.Error(t, err)

		var appErr *apperrors.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, "download_failed", appErr.Code)
		assert.Equal(t, 0, repo.VideoCount())
		assert.Equal(t, 0, store.Len())
	})

	t.Run("cover failure does not fail the ingest", func(t *testing.T) {
		resolver := &fakeResolver{
			info: &extractor.VideoInfo{
				Desc:     "clip #fun",
				PlayAddr: "https://media.example.com/raw.mp4",
				Cover:    "https://media.example.com/cover.jpeg",
			},
			failDownloads: map[string]error{
				"https://media.example.com/cover.jpeg": fmt.Errorf("404"),
			},
		}
		svc, repo, store := newIngestFixture(resolver)

		resp, err := svc.Ingest(ctx, link)
		require.NoError(t, err)

		assert.Empty(t, resp.CoverURL)
		assert.NotEmpty(t, resp.VideoURL)
		assert.Equal(t, 1, repo.VideoCount())
		assert.Equal(t, 1, store.Len())
	})

	t.Run("too short link is rejected before any lookup", func(t *testing.T) {
		resolver := &fakeResolver{}
		svc, _, _ := newIngestFixture(resolver)

		_, err := svc.Ingest(ctx, "short")
		require.Error(t, err)

		var appErr *apperrors.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, "validation_failed", appErr.Code)
		assert.Equal(t, 0, resolver.resolveCalls)
	})
}

func TestShortVideoService_FileURL(t *testing.T) {
	ctx := context.Background()
	resolver := &fakeResolver{}
	svc, _, store := newIngestFixture(resolver)

	require.NoError(t, store.Put(ctx, "short-videos/known.mp4", []byte("abc"), "video/mp4"))

	resp, err := svc.FileURL(ctx, "short-videos/known.mp4")
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/short-videos/known.mp4", resp.URL)
	assert.Equal(t, int64(3), resp.Size)

	_, err = svc.FileURL(ctx, "short-videos/missing.mp4")
	require.Error(t, err)

	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "not_found", appErr.Code)
}
