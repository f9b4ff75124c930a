package project

import (
	"context"
	"fmt"
	"sync"

	"todo-tracker/internal/domain/entity"
	"todo-tracker/internal/domain/gateway/db"
	"todo-tracker/internal/domain/model"
)

type projectUseCase struct {
	gateway db.ProjectGateway
}

func NewProjectUseCase(gateway db.ProjectGateway) UseCase {
	return &projectUseCase{
		gateway: gateway,
	}
}

func (uc *projectUseCase) List(ctx context.Context, ownerID uint) ([]entity.Project, error) {
	var wg sync.WaitGroup
	var projects []entity.Project
	var counts map[uint]entity.TodoCount
	var projectsErr, countErr error

	wg.Add(2)
	go func() {
		defer wg.Done()
		projects, projectsErr = uc.gateway.FindAll(ctx, ownerID)
	}()
	go func() {
		defer wg.Done()
		counts, countErr = uc.gateway.CountTodos(ctx, ownerID)
	}()
	wg.Wait()

	if projectsErr != nil {
		return nil, fmt.Errorf("failed to find projects: %w", projectsErr)
	}
	if countErr != nil {
		return nil, fmt.Errorf("failed to count project todos: %w", countErr)
	}

	for i := range projects {
		count := counts[projects[i].ID]
		projects[i].CompletionPercent = entity.CompletionPercent(count.Completed, count.Total)
	}
	return projects, nil
}

func (uc *projectUseCase) FindByID(ctx context.Context, ownerID uint, id uint) (*entity.Project, error) {
	return uc.gateway.FindByID(ctx, ownerID, id)
}

func (uc *projectUseCase) Create(ctx context.Context, ownerID uint, form model.ProjectForm) (*entity.Project, error) {
	form = form.Trimmed()
	validation, err := model.ValidateForm("project", form)
	if err != nil {
		return nil, err
	}
	if err := validation.OrNil(); err != nil {
		return nil, err
	}

	return uc.gateway.Create(ctx, entity.Project{
		OwnerID:     ownerID,
		Name:        form.Name,
		Description: form.Description,
	})
}

func (uc *projectUseCase) Delete(ctx context.Context, ownerID uint, id uint) (*entity.Project, error) {
	return uc.gateway.DeleteByID(ctx, ownerID, id)
}
