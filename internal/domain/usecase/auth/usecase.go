package auth

import (
	"context"

	"todo-tracker/internal/domain/entity"
	"todo-tracker/internal/domain/model"
)

type UseCase interface {
	// Authenticate checks the credentials and returns model.ErrInvalidCredentials whether the
	// username is unknown or the password is wrong.
	Authenticate(ctx context.Context, form model.LoginForm, clientIP string) (*entity.User, error)
	// Register creates an account, returning *model.ValidationError for rejected forms.
	Register(ctx context.Context, form model.RegisterForm) (*entity.User, error)
}
