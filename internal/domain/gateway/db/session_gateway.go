package db

import (
	"context"
	"time"

	"todo-tracker/internal/domain/entity"
)

type SessionGateway interface {
	// FindByKey returns the session with its user, or model.ErrNotFound when missing or expired.
	FindByKey(ctx context.Context, key string, now time.Time) (*entity.Session, error)
	Create(ctx context.Context, session entity.Session) (*entity.Session, error)
	UpdateNotices(ctx context.Context, key string, notices []string) error
	DeleteByKey(ctx context.Context, key string) error
	// DeleteExpired removes sessions that expired at or before now and returns how many were removed.
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}
