package usecases

import (
	"context"

	"github.com/langliu/budgie/internal/domain/dto"
	"github.com/langliu/budgie/internal/domain/entities"
	"github.com/langliu/budgie/internal/domain/repositories"
)

type TodoService interface {
	Create(ctx context.Context, req *dto.CreateTodoRequest) (*entities.Todo, error)
	List(ctx context.Context) ([]entities.Todo, error)
	Toggle(ctx context.Context, id int64, completed bool) error
	Delete(ctx context.Context, id int64) error
}

type todoService struct {
	repo repositories.TodoRepository
}

func NewTodoService(repo repositories.TodoRepository) TodoService {
	return &todoService{repo: repo}
}

func (s *todoService) Create(ctx context.Context, req *dto.CreateTodoRequest) (*entities.Todo, error) {
	todo := &entities.Todo{Text: req.Text}
	if err := s.repo.Create(ctx, todo); err != nil {
		return nil, err
	}
	return todo, nil
}

func (s *todoService) List(ctx context.Context) ([]entities.Todo, error) {
	return s.repo.List(ctx)
}

func (s *todoService) Toggle(ctx context.Context, id int64, completed bool) error {
	return s.repo.SetCompleted(ctx, id, completed)
}

func (s *todoService) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
