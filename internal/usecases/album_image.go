package usecases

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"

	"github.com/disintegration/imaging"
	"go.uber.org/zap"

	"github.com/langliu/budgie/internal/domain/dto"
	"github.com/langliu/budgie/internal/domain/entities"
	"github.com/langliu/budgie/internal/domain/repositories"
	"github.com/langliu/budgie/pkg/constants"
	apperrors "github.com/langliu/budgie/pkg/errors"
	"github.com/langliu/budgie/pkg/file"
)

type AlbumImageService interface {
	// AddImages uploads a batch of base64 images into the album's bucket
	// folder and appends them after the current sort order.
	AddImages(ctx context.Context, albumID string, req *dto.AddImagesRequest) ([]entities.AlbumImage, error)
	ListByAlbum(ctx context.Context, albumID string) ([]entities.AlbumImage, error)
	Update(ctx context.Context, id string, req *dto.UpdateImageRequest) (*entities.AlbumImage, error)
	// Delete removes the bucket object first, then the row.
	Delete(ctx context.Context, id string) error
}

type albumImageService struct {
	albums  repositories.AlbumRepository
	images  repositories.AlbumImageRepository
	storage repositories.ObjectStorage
	log     *zap.Logger
}

func NewAlbumImageService(
	albums repositories.AlbumRepository,
	images repositories.AlbumImageRepository,
	storage repositories.ObjectStorage,
	log *zap.Logger,
) AlbumImageService {
	return &albumImageService{albums: albums, images: images, storage: storage, log: log}
}

func (s *albumImageService) AddImages(ctx context.Context, albumID string, req *dto.AddImagesRequest) ([]entities.AlbumImage, error) {
	if _, err := s.albums.GetByID(ctx, albumID); err != nil {
		return nil, err
	}

	maxSortOrder, err := s.images.MaxSortOrder(ctx, albumID)
	if err != nil {
		return nil, err
	}

	results := make([]entities.AlbumImage, 0, len(req.Images))
	for i, payload := range req.Images {
		data, err := base64.StdEncoding.DecodeString(payload.Data)
		if err != nil {
			return results, apperrors.ErrValidation(fmt.Errorf("image %d: %w", i, err))
		}

		width, height := payload.Width, payload.Height
		if width == 0 || height == 0 {
			if decoded, err := imaging.Decode(bytes.NewReader(data)); err == nil {
				bounds := decoded.Bounds()
				width, height = bounds.Dx(), bounds.Dy()
			} else {
				s.log.Warn("image decode failed, storing without dimensions", zap.Error(err))
			}
		}

		key := fmt.Sprintf("%s/%s/%s.%s",
			constants.AlbumPrefix, albumID, file.NewID(),
			file.ExtensionFromContentType(payload.ContentType))
		if err := s.storage.Put(ctx, key, data, payload.ContentType); err != nil {
			return results, err
		}

		fileSize := payload.FileSize
		if fileSize == 0 {
			fileSize = int64(len(data))
		}

		image := entities.AlbumImage{
			AlbumID:   albumID,
			Key:       key,
			URL:       s.storage.PublicURL(key),
			Caption:   payload.Caption,
			Width:     width,
			Height:    height,
			FileSize:  fileSize,
			SortOrder: maxSortOrder + i + 1,
		}
		if err := s.images.Create(ctx, &image); err != nil {
			return results, err
		}
		results = append(results, image)
	}

	return results, nil
}

func (s *albumImageService) ListByAlbum(ctx context.Context, albumID string) ([]entities.AlbumImage, error) {
	return s.images.ListByAlbum(ctx, albumID)
}

func (s *albumImageService) Update(ctx context.Context, id string, req *dto.UpdateImageRequest) (*entities.AlbumImage, error) {
	image, err := s.images.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Caption != nil {
		image.Caption = *req.Caption
	}
	if req.SortOrder != nil {
		image.SortOrder = *req.SortOrder
	}

	if err := s.images.Update(ctx, image); err != nil {
		return nil, err
	}
	return image, nil
}

func (s *albumImageService) Delete(ctx context.Context, id string) error {
	image, err := s.images.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.storage.Delete(ctx, image.Key); err != nil {
		return err
	}
	return s.images.Delete(ctx, id)
}
