package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"todo-tracker/internal/domain/entity"
	"todo-tracker/internal/domain/gateway/db"
	"todo-tracker/internal/domain/gateway/throttle"
	"todo-tracker/internal/domain/model"
	"todo-tracker/pkg/log"
	"todo-tracker/pkg/msg"
)

type authUseCase struct {
	users    db.UserGateway
	throttle throttle.LoginThrottle
	cost     int
	// dummyHash is compared against when the user does not exist, so both failures cost one bcrypt round.
	dummyHash []byte
}

func NewAuthUseCase(users db.UserGateway, loginThrottle throttle.LoginThrottle, cost int) (UseCase, error) {
	dummyHash, err := bcrypt.GenerateFromPassword([]byte("todo-tracker-dummy-password"), cost)
	if err != nil {
		return nil, fmt.Errorf("failed to prepare password hashing: %w", err)
	}

	return &authUseCase{
		users:     users,
		throttle:  loginThrottle,
		cost:      cost,
		dummyHash: dummyHash,
	}, nil
}

func (uc *authUseCase) Authenticate(ctx context.Context, form model.LoginForm, clientIP string) (*entity.User, error) {
	username := strings.TrimSpace(form.Username)
	if username == "" || form.Password == "" {
		return nil, model.ErrInvalidCredentials
	}

	throttleKey := strings.ToLower(username) + "|" + clientIP
	allowed, err := uc.throttle.Allow(ctx, throttleKey)
	if err != nil {
		log.Warn(msg.GetMessage("auth.log.throttle-failed", err.Error()))
	} else if !allowed {
		return nil, model.ErrTooManyAttempts
	}

	user, err := uc.users.FindByUsername(ctx, username)
	if err != nil {
		if !errors.Is(err, model.ErrNotFound) {
			return nil, err
		}
		_ = bcrypt.CompareHashAndPassword(uc.dummyHash, []byte(form.Password))
		log.Info(msg.GetMessage("auth.log.login-failed", username))
		return nil, model.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(form.Password)); err != nil {
		log.Info(msg.GetMessage("auth.log.login-failed", username))
		return nil, model.ErrInvalidCredentials
	}

	if err := uc.throttle.Reset(ctx, throttleKey); err != nil {
		log.Warn(msg.GetMessage("auth.log.throttle-failed", err.Error()))
	}
	log.Info(msg.GetMessage("auth.log.login", user.Username))
	return user, nil
}

func (uc *authUseCase) Register(ctx context.Context, form model.RegisterForm) (*entity.User, error) {
	form = form.Trimmed()
	username := form.Username

	validation, err := model.ValidateForm("auth", form)
	if err != nil {
		return nil, err
	}
	if err := validation.OrNil(); err != nil {
		return nil, err
	}

	if _, err := uc.users.FindByUsername(ctx, username); err == nil {
		validation.Add("username", "auth.error.username.taken")
		return nil, validation
	} else if !errors.Is(err, model.ErrNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(form.Password), uc.cost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user, err := uc.users.Create(ctx, entity.User{Username: username, PasswordHash: string(hash)})
	if err != nil {
		if errors.Is(err, model.ErrUsernameTaken) {
			validation.Add("username", "auth.error.username.taken")
			return nil, validation
		}
		return nil, err
	}

	log.Info(msg.GetMessage("auth.log.registered", user.Username))
	return user, nil
}
