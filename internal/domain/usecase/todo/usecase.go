package todo

import (
	"context"

	"todo-tracker/internal/domain/entity"
	"todo-tracker/internal/domain/model"
)

// UseCase manages the to-dos of a single owner. Every method returns model.ErrNotFound for rows
// that are missing or belong to someone else, and *model.ValidationError for rejected forms.
type UseCase interface {
	List(ctx context.Context, ownerID uint, filter model.TodoFilter) ([]entity.Todo, error)
	FindByID(ctx context.Context, ownerID uint, id uint) (*entity.Todo, error)
	Create(ctx context.Context, ownerID uint, form model.TodoForm) (*entity.Todo, error)
	Update(ctx context.Context, ownerID uint, id uint, form model.TodoForm) (*entity.Todo, error)
	Delete(ctx context.Context, ownerID uint, id uint) error
	// ToggleComplete flips the completion flag and returns the new value.
	ToggleComplete(ctx context.Context, ownerID uint, id uint) (bool, error)
}
