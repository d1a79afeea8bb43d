package usecases

import (
	"context"

	"github.com/langliu/budgie/internal/domain/dto"
	"github.com/langliu/budgie/internal/domain/entities"
	"github.com/langliu/budgie/internal/domain/repositories"
)

type TagService interface {
	Create(ctx context.Context, req *dto.CreateTagRequest) (*entities.Tag, error)
	GetByID(ctx context.Context, id string) (*entities.Tag, error)
	List(ctx context.Context) ([]entities.Tag, error)
	Update(ctx context.Context, id string, req *dto.UpdateTagRequest) (*entities.Tag, error)
	Delete(ctx context.Context, id string) error
}

type tagService struct {
	repo repositories.TagRepository
}

func NewTagService(repo repositories.TagRepository) TagService {
	return &tagService{repo: repo}
}

func (s *tagService) Create(ctx context.Context, req *dto.CreateTagRequest) (*entities.Tag, error) {
	tag := &entities.Tag{Name: req.Name}
	if err := s.repo.Create(ctx, tag); err != nil {
		return nil, err
	}
	return tag, nil
}

func (s *tagService) GetByID(ctx context.Context, id string) (*entities.Tag, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *tagService) List(ctx context.Context) ([]entities.Tag, error) {
	return s.repo.List(ctx)
}

func (s *tagService) Update(ctx context.Context, id string, req *dto.UpdateTagRequest) (*entities.Tag, error) {
	tag, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	tag.Name = req.Name
	if err := s.repo.Update(ctx, tag); err != nil {
		return nil, err
	}
	return tag, nil
}

func (s *tagService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
