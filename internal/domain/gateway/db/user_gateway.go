package db

import (
	"context"

	"todo-tracker/internal/domain/entity"
)

type UserGateway interface {
	FindByID(ctx context.Context, id uint) (*entity.User, error)
	FindByUsername(ctx context.Context, username string) (*entity.User, error)
	Create(ctx context.Context, user entity.User) (*entity.User, error)
}
