package db

import (
	"context"

	"todo-tracker/internal/domain/entity"
	"todo-tracker/internal/domain/model"
)

type TodoGateway interface {
	// FindAll returns the owner's to-dos matching filter, ordered by priority, due date
	// (missing dates last) and creation time.
	FindAll(ctx context.Context, ownerID uint, filter model.TodoFilter) ([]entity.Todo, error)
	FindByID(ctx context.Context, ownerID uint, id uint) (*entity.Todo, error)

	Create(ctx context.Context, todo entity.Todo) (*entity.Todo, error)
	Update(ctx context.Context, ownerID uint, todo entity.Todo) (*entity.Todo, error)
	// ToggleCompleted flips the completion flag and returns the new value.
	ToggleCompleted(ctx context.Context, ownerID uint, id uint) (bool, error)
	DeleteByID(ctx context.Context, ownerID uint, id uint) error
}
