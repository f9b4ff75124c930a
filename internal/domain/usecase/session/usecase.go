package session

import (
	"context"
	"time"

	"todo-tracker/internal/domain/entity"
)

type UseCase interface {
	// Start opens a new session for user and returns it with its cookie key.
	Start(ctx context.Context, user entity.User) (*entity.Session, error)
	// Resolve returns the live session for key, or model.ErrNotFound.
	Resolve(ctx context.Context, key string) (*entity.Session, error)
	End(ctx context.Context, key string) error

	// AddNotice queues a flash notice shown on the next rendered page.
	AddNotice(ctx context.Context, session *entity.Session, notice string) error
	// TakeNotices returns and clears the queued notices.
	TakeNotices(ctx context.Context, session *entity.Session) ([]string, error)

	// ClearExpired deletes expired sessions and returns how many were removed.
	ClearExpired(ctx context.Context) (int64, error)
	TTL() time.Duration
}
