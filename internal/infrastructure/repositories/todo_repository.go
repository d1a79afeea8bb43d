package repositories

import (
	"context"

	"gorm.io/gorm"

	"github.com/langliu/budgie/internal/domain/entities"
	"github.com/langliu/budgie/internal/domain/repositories"
)

type todoRepository struct {
	db *gorm.DB
}

func NewTodoRepository(db *gorm.DB) repositories.TodoRepository {
	return &todoRepository{db: db}
}

func (r *todoRepository) Create(ctx context.Context, todo *entities.Todo) error {
	return r.db.WithContext(ctx).Create(todo).Error
}

func (r *todoRepository) List(ctx context.Context) ([]entities.Todo, error) {
	var todos []entities.Todo
	err := r.db.WithContext(ctx).
		Order("completed ASC").
		Order("created_at DESC").
		Find(&todos).Error
	return todos, err
}

func (r *todoRepository) SetCompleted(ctx context.Context, id int64, completed bool) error {
	return r.db.WithContext(ctx).
		Model(&entities.Todo{}).
		Where("id = ?", id).
		Update("completed", completed).Error
}

func (r *todoRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&entities.Todo{}, "id = ?", id).Error
}
