package usecases

import (
	"context"
	"time"

	"github.com/langliu/budgie/internal/domain/dto"
	"github.com/langliu/budgie/internal/domain/entities"
	"github.com/langliu/budgie/internal/domain/repositories"
)

type AlbumService interface {
	Create(ctx context.Context, req *dto.CreateAlbumRequest) (*entities.Album, error)
	GetByID(ctx context.Context, id string) (*entities.Album, error)
	List(ctx context.Context, q dto.AlbumListQuery) (*dto.Page[entities.Album], error)
	Update(ctx context.Context, id string, req *dto.UpdateAlbumRequest) (*entities.Album, error)
	Delete(ctx context.Context, id string) error
}

type albumService struct {
	repo repositories.AlbumRepository
}

func NewAlbumService(repo repositories.AlbumRepository) AlbumService {
	return &albumService{repo: repo}
}

func (s *albumService) Create(ctx context.Context, req *dto.CreateAlbumRequest) (*entities.Album, error) {
	album := &entities.Album{
		Title:         req.Title,
		Description:   req.Description,
		CoverImageURL: req.CoverImageURL,
	}
	if req.PublishedAt != "" {
		publishedAt, err := time.Parse(time.RFC3339, req.PublishedAt)
		if err == nil {
			album.PublishedAt = &publishedAt
		}
	}

	if err := s.repo.Create(ctx, album, req.ModelIDs, req.TagIDs); err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, album.ID)
}

func (s *albumService) GetByID(ctx context.Context, id string) (*entities.Album, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *albumService) List(ctx context.Context, q dto.AlbumListQuery) (*dto.Page[entities.Album], error) {
	q.Normalize()
	albums, total, err := s.repo.List(ctx, q)
	if err != nil {
		return nil, err
	}
	return dto.NewPage(albums, q.Page, q.PageSize, total), nil
}

func (s *albumService) Update(ctx context.Context, id string, req *dto.UpdateAlbumRequest) (*entities.Album, error) {
	album, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	// Detach loaded associations so Save only touches the albums table.
	album.Models, album.Tags, album.Images = nil, nil, nil

	if req.Title != nil {
		album.Title = *req.Title
	}
	if req.Description != nil {
		album.Description = *req.Description
	}
	if req.CoverImageURL != nil {
		album.CoverImageURL = *req.CoverImageURL
	}
	if req.PublishedAt != nil {
		if *req.PublishedAt == "" {
			album.PublishedAt = nil
		} else if publishedAt, err := time.Parse(time.RFC3339, *req.PublishedAt); err == nil {
			album.PublishedAt = &publishedAt
		}
	}

	if err := s.repo.Update(ctx, album, req.ModelIDs, req.TagIDs); err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, id)
}

func (s *albumService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
