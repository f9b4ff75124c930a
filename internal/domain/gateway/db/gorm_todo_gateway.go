package db

import (
	"context"
	"strings"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"todo-tracker/internal/domain/entity"
	"todo-tracker/internal/domain/model"
)

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

type GormTodoGateway struct {
	DB *gorm.DB
}

var _ TodoGateway = (*GormTodoGateway)(nil)

func NewGormTodoGateway(db *gorm.DB) *GormTodoGateway {
	return &GormTodoGateway{DB: db}
}

func (gateway *GormTodoGateway) FindAll(ctx context.Context, ownerID uint, filter model.TodoFilter) ([]entity.Todo, error) {
	query := gateway.DB.WithContext(ctx).
		Scopes(OwnedBy(ownerID), withFilter(filter)).
		Preload("Project").
		Order("priority ASC").
		Order("due_date IS NULL").
		Order("due_date ASC").
		Order("created_at ASC").
		Order("id ASC")

	todos := make([]entity.Todo, 0)
	if err := query.Find(&todos).Error; err != nil {
		return nil, err
	}
	return todos, nil
}

func withFilter(filter model.TodoFilter) func(*gorm.DB) *gorm.DB {
	return func(tx *gorm.DB) *gorm.DB {
		if filter.Query != "" {
			pattern := "%" + likeEscaper.Replace(strings.ToLower(filter.Query)) + "%"
			tx = tx.Where(`LOWER(name) LIKE ? ESCAPE '\'`, pattern)
		}
		if filter.ProjectID != nil {
			tx = tx.Where("project_id = ?", *filter.ProjectID)
		}
		if filter.Priority != nil {
			tx = tx.Where("priority = ?", *filter.Priority)
		}
		switch filter.Status {
		case model.StatusCompleted:
			tx = tx.Where("completed = ?", true)
		case model.StatusIncomplete:
			tx = tx.Where("completed = ?", false)
		}
		return tx
	}
}

func (gateway *GormTodoGateway) FindByID(ctx context.Context, ownerID uint, id uint) (*entity.Todo, error) {
	var todo entity.Todo
	err := gateway.DB.WithContext(ctx).
		Scopes(OwnedBy(ownerID)).
		Preload("Project").
		Where("id = ?", id).
		First(&todo).Error
	if err != nil {
		return nil, translateNotFound(err)
	}
	return &todo, nil
}

func (gateway *GormTodoGateway) Create(ctx context.Context, todo entity.Todo) (*entity.Todo, error) {
	if err := gateway.DB.WithContext(ctx).Omit(clause.Associations).Create(&todo).Error; err != nil {
		return nil, err
	}
	return &todo, nil
}

func (gateway *GormTodoGateway) Update(ctx context.Context, ownerID uint, todo entity.Todo) (*entity.Todo, error) {
	todo.UpdatedAt = time.Now().UTC()

	result := gateway.DB.WithContext(ctx).
		Model(&entity.Todo{}).
		Scopes(OwnedBy(ownerID)).
		Where("id = ?", todo.ID).
		Select("project_id", "name", "description", "priority", "completed", "due_date", "updated_at").
		Updates(&todo)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, model.ErrNotFound
	}
	return gateway.FindByID(ctx, ownerID, todo.ID)
}

func (gateway *GormTodoGateway) ToggleCompleted(ctx context.Context, ownerID uint, id uint) (bool, error) {
	var completed bool

	err := gateway.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var todo entity.Todo
		if err := tx.Scopes(OwnedBy(ownerID)).Where("id = ?", id).First(&todo).Error; err != nil {
			return translateNotFound(err)
		}

		completed = !todo.Completed
		return tx.Model(&todo).Update("completed", completed).Error
	})
	if err != nil {
		return false, err
	}
	return completed, nil
}

func (gateway *GormTodoGateway) DeleteByID(ctx context.Context, ownerID uint, id uint) error {
	result := gateway.DB.WithContext(ctx).
		Scopes(OwnedBy(ownerID)).
		Where("id = ?", id).
		Delete(&entity.Todo{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}
