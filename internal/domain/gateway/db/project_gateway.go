package db

import (
	"context"

	"todo-tracker/internal/domain/entity"
)

type ProjectGateway interface {
	FindAll(ctx context.Context, ownerID uint) ([]entity.Project, error)
	FindByID(ctx context.Context, ownerID uint, id uint) (*entity.Project, error)
	// CountTodos returns to-do totals for every project of the owner that has at least one to-do.
	CountTodos(ctx context.Context, ownerID uint) (map[uint]entity.TodoCount, error)

	Create(ctx context.Context, project entity.Project) (*entity.Project, error)
	// DeleteByID removes the project and every to-do referencing it.
	DeleteByID(ctx context.Context, ownerID uint, id uint) (*entity.Project, error)
}
