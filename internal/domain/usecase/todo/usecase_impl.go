package todo

import (
	"context"
	"errors"
	"time"

	"todo-tracker/internal/domain/entity"
	"todo-tracker/internal/domain/gateway/db"
	"todo-tracker/internal/domain/model"
	"todo-tracker/pkg/util/numberutils"
)

type todoUseCase struct {
	todos    db.TodoGateway
	projects db.ProjectGateway
}

func NewTodoUseCase(todos db.TodoGateway, projects db.ProjectGateway) UseCase {
	return &todoUseCase{
		todos:    todos,
		projects: projects,
	}
}

func (uc *todoUseCase) List(ctx context.Context, ownerID uint, filter model.TodoFilter) ([]entity.Todo, error) {
	return uc.todos.FindAll(ctx, ownerID, filter)
}

func (uc *todoUseCase) FindByID(ctx context.Context, ownerID uint, id uint) (*entity.Todo, error) {
	return uc.todos.FindByID(ctx, ownerID, id)
}

func (uc *todoUseCase) Create(ctx context.Context, ownerID uint, form model.TodoForm) (*entity.Todo, error) {
	todo, err := uc.validate(ctx, ownerID, form)
	if err != nil {
		return nil, err
	}
	todo.OwnerID = ownerID

	return uc.todos.Create(ctx, *todo)
}

func (uc *todoUseCase) Update(ctx context.Context, ownerID uint, id uint, form model.TodoForm) (*entity.Todo, error) {
	if _, err := uc.todos.FindByID(ctx, ownerID, id); err != nil {
		return nil, err
	}

	todo, err := uc.validate(ctx, ownerID, form)
	if err != nil {
		return nil, err
	}
	todo.ID = id
	todo.OwnerID = ownerID

	return uc.todos.Update(ctx, ownerID, *todo)
}

func (uc *todoUseCase) Delete(ctx context.Context, ownerID uint, id uint) error {
	return uc.todos.DeleteByID(ctx, ownerID, id)
}

func (uc *todoUseCase) ToggleComplete(ctx context.Context, ownerID uint, id uint) (bool, error) {
	return uc.todos.ToggleCompleted(ctx, ownerID, id)
}

// validate turns a form into an unsaved to-do, collecting every field error before returning.
func (uc *todoUseCase) validate(ctx context.Context, ownerID uint, form model.TodoForm) (*entity.Todo, error) {
	form = form.Trimmed()
	validation, err := model.ValidateForm("todo", form)
	if err != nil {
		return nil, err
	}

	todo := &entity.Todo{
		Name:        form.Name,
		Description: form.Description,
		Priority:    entity.DefaultPriority,
		Completed:   form.IsCompleted(),
	}
	if dueDate, err := time.Parse(entity.DateLayout, form.DueDate); err == nil {
		todo.DueDate = &dueDate
	}
	if value, ok := numberutils.ToUint(form.Priority); ok {
		todo.Priority = entity.Priority(value)
	}

	if form.Project != "" {
		projectID, err := uc.ownedProject(ctx, ownerID, form.Project)
		if err != nil {
			if !errors.Is(err, model.ErrNotFound) {
				return nil, err
			}
			validation.Add("project", "todo.error.project.owned")
		} else {
			todo.ProjectID = &projectID
		}
	}

	if err := validation.OrNil(); err != nil {
		return nil, err
	}
	return todo, nil
}

func (uc *todoUseCase) ownedProject(ctx context.Context, ownerID uint, raw string) (uint, error) {
	id, ok := numberutils.ToUint(raw)
	if !ok {
		return 0, model.ErrNotFound
	}
	project, err := uc.projects.FindByID(ctx, ownerID, id)
	if err != nil {
		return 0, err
	}
	return project.ID, nil
}
