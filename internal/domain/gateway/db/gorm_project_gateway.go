package db

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"todo-tracker/internal/domain/entity"
)

type GormProjectGateway struct {
	DB *gorm.DB
}

var _ ProjectGateway = (*GormProjectGateway)(nil)

func NewGormProjectGateway(db *gorm.DB) *GormProjectGateway {
	return &GormProjectGateway{DB: db}
}

func (gateway *GormProjectGateway) FindAll(ctx context.Context, ownerID uint) ([]entity.Project, error) {
	projects := make([]entity.Project, 0)
	err := gateway.DB.WithContext(ctx).
		Scopes(OwnedBy(ownerID)).
		Order("name ASC").
		Order("id ASC").
		Find(&projects).Error
	if err != nil {
		return nil, err
	}
	return projects, nil
}

func (gateway *GormProjectGateway) FindByID(ctx context.Context, ownerID uint, id uint) (*entity.Project, error) {
	var project entity.Project
	err := gateway.DB.WithContext(ctx).
		Scopes(OwnedBy(ownerID)).
		Where("id = ?", id).
		First(&project).Error
	if err != nil {
		return nil, translateNotFound(err)
	}
	return &project, nil
}

func (gateway *GormProjectGateway) CountTodos(ctx context.Context, ownerID uint) (map[uint]entity.TodoCount, error) {
	var rows []entity.TodoCount
	err := gateway.DB.WithContext(ctx).
		Model(&entity.Todo{}).
		Scopes(OwnedBy(ownerID)).
		Select("project_id, COUNT(*) AS total, SUM(CASE WHEN completed THEN 1 ELSE 0 END) AS completed").
		Where("project_id IS NOT NULL").
		Group("project_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[uint]entity.TodoCount, len(rows))
	for _, row := range rows {
		counts[row.ProjectID] = row
	}
	return counts, nil
}

func (gateway *GormProjectGateway) Create(ctx context.Context, project entity.Project) (*entity.Project, error) {
	if err := gateway.DB.WithContext(ctx).Omit(clause.Associations).Create(&project).Error; err != nil {
		return nil, err
	}
	return &project, nil
}

func (gateway *GormProjectGateway) DeleteByID(ctx context.Context, ownerID uint, id uint) (*entity.Project, error) {
	var project entity.Project

	err := gateway.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Scopes(OwnedBy(ownerID)).Where("id = ?", id).First(&project).Error; err != nil {
			return translateNotFound(err)
		}
		if err := tx.Where("project_id = ?", project.ID).Delete(&entity.Todo{}).Error; err != nil {
			return err
		}
		return tx.Delete(&project).Error
	})
	if err != nil {
		return nil, err
	}
	return &project, nil
}
