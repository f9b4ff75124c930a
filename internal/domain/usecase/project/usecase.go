package project

import (
	"context"

	"todo-tracker/internal/domain/entity"
	"todo-tracker/internal/domain/model"
)

type UseCase interface {
	// List returns the owner's projects with CompletionPercent filled in.
	List(ctx context.Context, ownerID uint) ([]entity.Project, error)
	FindByID(ctx context.Context, ownerID uint, id uint) (*entity.Project, error)
	Create(ctx context.Context, ownerID uint, form model.ProjectForm) (*entity.Project, error)
	// Delete removes the project together with its to-dos and returns what was deleted.
	Delete(ctx context.Context, ownerID uint, id uint) (*entity.Project, error)
}
