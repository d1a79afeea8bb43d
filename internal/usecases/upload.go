package usecases

import (
	"context"
	"encoding/base64"
	"time"

	"github.com/langliu/budgie/internal/domain/dto"
	"github.com/langliu/budgie/internal/domain/repositories"
	"github.com/langliu/budgie/pkg/constants"
	apperrors "github.com/langliu/budgie/pkg/errors"
	"github.com/langliu/budgie/pkg/file"
)

const presignExpiry = 15 * time.Minute

type UploadService interface {
	// Upload stores a base64 payload under {folder}/{id}.{ext}.
	Upload(ctx context.Context, req *dto.UploadRequest) (*dto.UploadResponse, error)
	// Presign hands out a short-lived PUT URL for direct browser uploads.
	Presign(ctx context.Context, req *dto.PresignRequest) (*dto.PresignResponse, error)
}

type uploadService struct {
	storage repositories.ObjectStorage
}

func NewUploadService(storage repositories.ObjectStorage) UploadService {
	return &uploadService{storage: storage}
}

func (s *uploadService) Upload(ctx context.Context, req *dto.UploadRequest) (*dto.UploadResponse, error) {
	folder := req.Folder
	if folder == "" {
		folder = constants.UploadFolder
	}

	data, err := base64.StdEncoding.DecodeString(req.Data)
	if err != nil {
		return nil, apperrors.ErrValidation(err)
	}

	key := file.MakeUploadKey(folder, req.ContentType)
	if err := s.storage.Put(ctx, key, data, req.ContentType); err != nil {
		return nil, err
	}

	return &dto.UploadResponse{
		Key: key,
		URL: s.storage.PublicURL(key),
	}, nil
}

func (s *uploadService) Presign(ctx context.Context, req *dto.PresignRequest) (*dto.PresignResponse, error) {
	folder := req.Folder
	if folder == "" {
		folder = constants.UploadFolder
	}

	key := file.MakeUploadKey(folder, req.ContentType)
	uploadURL, err := s.storage.PresignPut(ctx, key, req.ContentType, presignExpiry)
	if err != nil {
		return nil, err
	}

	return &dto.PresignResponse{
		Key:       key,
		UploadURL: uploadURL,
	}, nil
}
