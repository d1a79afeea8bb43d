package usecases

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/langliu/budgie/internal/domain/dto"
	"github.com/langliu/budgie/internal/domain/entities"
	"github.com/langliu/budgie/internal/domain/repositories"
	"github.com/langliu/budgie/internal/infrastructure/extractor"
	"github.com/langliu/budgie/pkg/constants"
	apperrors "github.com/langliu/budgie/pkg/errors"
	"github.com/langliu/budgie/pkg/file"
)

// LinkResolver resolves a share link into direct media URLs and fetches
// the media bytes.
type LinkResolver interface {
	Resolve(ctx context.Context, link string) (*extractor.VideoInfo, error)
	Download(ctx context.Context, url string) ([]byte, string, error)
}

type ShortVideoService interface {
	// Ingest re-hosts the video behind a share link. Safe to call twice
	// with the same link: the second call returns the stored record
	// without touching the network or the bucket.
	Ingest(ctx context.Context, originalURL string) (*dto.ShortVideoResponse, error)
	List(ctx context.Context) ([]dto.ShortVideoResponse, error)
	FileURL(ctx context.Context, key string) (*dto.FileURLResponse, error)
}

type shortVideoService struct {
	repo     repositories.ShortVideoRepository
	storage  repositories.ObjectStorage
	resolver LinkResolver
	log      *zap.Logger
}

func NewShortVideoService(
	repo repositories.ShortVideoRepository,
	storage repositories.ObjectStorage,
	resolver LinkResolver,
	log *zap.Logger,
) ShortVideoService {
	return &shortVideoService{repo: repo, storage: storage, resolver: resolver, log: log}
}

func (s *shortVideoService) Ingest(ctx context.Context, originalURL string) (*dto.ShortVideoResponse, error) {
	if len(originalURL) < 10 {
		return nil, apperrors.ErrValidation(fmt.Errorf("link too short: %q", originalURL))
	}

	// Dedup on the exact link string. Different links that resolve to the
	// same underlying video stay distinct.
	existing, err := s.repo.FindByOriginalURL(ctx, originalURL)
	if err == nil {
		// Cover keys are not persisted, so the dedup path has no cover URL.
		return &dto.ShortVideoResponse{
			ShortVideo: *existing,
			VideoURL:   s.storage.PublicURL(existing.R2Key),
		}, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	info, err := s.resolver.Resolve(ctx, originalURL)
	if err != nil {
		return nil, apperrors.ErrResolutionFailed(originalURL, err)
	}

	parsed := ParseDescription(info.Desc)

	body, contentType, err := s.resolver.Download(ctx, info.PlayAddr)
	if err != nil {
		return nil, apperrors.ErrDownloadFailed(originalURL, err)
	}
	if contentType == "" {
		contentType = constants.DefaultVideoContentType
	}

	id := file.NewID()
	videoKey := file.MakeVideoKey(constants.ShortVideoPrefix, id)
	if err := s.storage.Put(ctx, videoKey, body, contentType); err != nil {
		return nil, err
	}

	// Cover is best effort: any failure is logged and the ingest carries on.
	coverURL := ""
	if info.Cover != "" {
		coverURL = s.uploadCover(ctx, info.Cover, id)
	}

	video := &entities.ShortVideo{
		Name:        parsed.Title,
		OriginalURL: originalURL,
		R2Key:       videoKey,
	}
	if err := s.repo.CreateWithTopics(ctx, video, parsed.Tags); err != nil {
		return nil, err
	}

	stored, err := s.repo.FindByID(ctx, video.ID)
	if err != nil {
		return nil, err
	}

	return &dto.ShortVideoResponse{
		ShortVideo: *stored,
		VideoURL:   s.storage.PublicURL(stored.R2Key),
		CoverURL:   coverURL,
	}, nil
}

func (s *shortVideoService) uploadCover(ctx context.Context, coverURL, id string) string {
	body, contentType, err := s.resolver.Download(ctx, coverURL)
	if err != nil {
		s.log.Warn("cover download failed", zap.String("url", coverURL), zap.Error(err))
		return ""
	}
	if contentType == "" {
		contentType = constants.DefaultCoverContentType
	}

	key := file.MakeCoverKey(constants.CoverPrefix, id, contentType)
	if err := s.storage.Put(ctx, key, body, contentType); err != nil {
		s.log.Warn("cover upload failed", zap.String("key", key), zap.Error(err))
		return ""
	}
	return s.storage.PublicURL(key)
}

func (s *shortVideoService) List(ctx context.Context) ([]dto.ShortVideoResponse, error) {
	videos, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]dto.ShortVideoResponse, 0, len(videos))
	for _, video := range videos {
		out = append(out, dto.ShortVideoResponse{
			ShortVideo: video,
			VideoURL:   s.storage.PublicURL(video.R2Key),
		})
	}
	return out, nil
}

func (s *shortVideoService) FileURL(ctx context.Context, key string) (*dto.FileURLResponse, error) {
	info, err := s.storage.Head(ctx, key)
	if err != nil {
		return nil, apperrors.ErrNotFound(err)
	}
	return &dto.FileURLResponse{
		Key:  key,
		Size: info.Size,
		URL:  s.storage.PublicURL(key),
	}, nil
}
