package db

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"todo-tracker/internal/domain/entity"
	"todo-tracker/internal/domain/model"
)

type GormUserGateway struct {
	DB *gorm.DB
}

var _ UserGateway = (*GormUserGateway)(nil)

func NewGormUserGateway(db *gorm.DB) *GormUserGateway {
	return &GormUserGateway{DB: db}
}

func (gateway *GormUserGateway) FindByID(ctx context.Context, id uint) (*entity.User, error) {
	var user entity.User
	if err := gateway.DB.WithContext(ctx).First(&user, id).Error; err != nil {
		return nil, translateNotFound(err)
	}
	return &user, nil
}

func (gateway *GormUserGateway) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	var user entity.User
	if err := gateway.DB.WithContext(ctx).Where("username = ?", username).First(&user).Error; err != nil {
		return nil, translateNotFound(err)
	}
	return &user, nil
}

func (gateway *GormUserGateway) Create(ctx context.Context, user entity.User) (*entity.User, error) {
	if err := gateway.DB.WithContext(ctx).Create(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, model.ErrUsernameTaken
		}
		return nil, err
	}
	return &user, nil
}
