package usecases

import (
	"context"

	"github.com/langliu/budgie/internal/domain/dto"
	"github.com/langliu/budgie/internal/domain/entities"
	"github.com/langliu/budgie/internal/domain/repositories"
)

type ModelService interface {
	Create(ctx context.Context, req *dto.CreateModelRequest) (*entities.Model, error)
	GetByID(ctx context.Context, id string) (*entities.Model, error)
	List(ctx context.Context, q dto.ModelListQuery) (*dto.Page[entities.Model], error)
	Update(ctx context.Context, id string, req *dto.UpdateModelRequest) (*entities.Model, error)
	Delete(ctx context.Context, id string) error
}

type modelService struct {
	repo repositories.ModelRepository
}

func NewModelService(repo repositories.ModelRepository) ModelService {
	return &modelService{repo: repo}
}

func (s *modelService) Create(ctx context.Context, req *dto.CreateModelRequest) (*entities.Model, error) {
	model := &entities.Model{
		Name:         req.Name,
		Alias:        req.Alias,
		AvatarURL:    req.AvatarURL,
		Bio:          req.Bio,
		HomepageURL:  req.HomepageURL,
		InstagramURL: req.InstagramURL,
		WeiboURL:     req.WeiboURL,
		XURL:         req.XURL,
		YoutubeURL:   req.YoutubeURL,
	}
	if err := s.repo.Create(ctx, model); err != nil {
		return nil, err
	}
	return model, nil
}

func (s *modelService) GetByID(ctx context.Context, id string) (*entities.Model, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *modelService) List(ctx context.Context, q dto.ModelListQuery) (*dto.Page[entities.Model], error) {
	q.Normalize()
	models, total, err := s.repo.List(ctx, q)
	if err != nil {
		return nil, err
	}
	return dto.NewPage(models, q.Page, q.PageSize, total), nil
}

func (s *modelService) Update(ctx context.Context, id string, req *dto.UpdateModelRequest) (*entities.Model, error) {
	model, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		model.Name = *req.Name
	}
	if req.Alias != nil {
		model.Alias = *req.Alias
	}
	if req.AvatarURL != nil {
		model.AvatarURL = *req.AvatarURL
	}
	if req.Bio != nil {
		model.Bio = *req.Bio
	}
	if req.HomepageURL != nil {
		model.HomepageURL = *req.HomepageURL
	}
	if req.InstagramURL != nil {
		model.InstagramURL = *req.InstagramURL
	}
	if req.WeiboURL != nil {
		model.WeiboURL = *req.WeiboURL
	}
	if req.XURL != nil {
		model.XURL = *req.XURL
	}
	if req.YoutubeURL != nil {
		model.YoutubeURL = *req.YoutubeURL
	}

	if err := s.repo.Update(ctx, model); err != nil {
		return nil, err
	}
	return model, nil
}

func (s *modelService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
