package session

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"todo-tracker/internal/domain/entity"
	"todo-tracker/internal/domain/gateway/db"
)

type Option func(*sessionUseCase)

// WithClock replaces time.Now, mostly useful in tests.
func WithClock(now func() time.Time) Option {
	return func(uc *sessionUseCase) {
		uc.now = now
	}
}

type sessionUseCase struct {
	gateway db.SessionGateway
	ttl     time.Duration
	now     func() time.Time
}

func NewSessionUseCase(gateway db.SessionGateway, ttl time.Duration, opts ...Option) UseCase {
	uc := &sessionUseCase{
		gateway: gateway,
		ttl:     ttl,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

func (uc *sessionUseCase) Start(ctx context.Context, user entity.User) (*entity.Session, error) {
	now := uc.now().UTC()
	session, err := uc.gateway.Create(ctx, entity.Session{
		Key:       newKey(),
		UserID:    user.ID,
		ExpiresAt: now.Add(uc.ttl),
	})
	if err != nil {
		return nil, err
	}
	session.User = user
	return session, nil
}

func (uc *sessionUseCase) Resolve(ctx context.Context, key string) (*entity.Session, error) {
	return uc.gateway.FindByKey(ctx, key, uc.now().UTC())
}

func (uc *sessionUseCase) End(ctx context.Context, key string) error {
	return uc.gateway.DeleteByKey(ctx, key)
}

func (uc *sessionUseCase) AddNotice(ctx context.Context, session *entity.Session, notice string) error {
	notices := append(append([]string(nil), session.Notices...), notice)
	if err := uc.gateway.UpdateNotices(ctx, session.Key, notices); err != nil {
		return err
	}
	session.Notices = notices
	return nil
}

func (uc *sessionUseCase) TakeNotices(ctx context.Context, session *entity.Session) ([]string, error) {
	if len(session.Notices) == 0 {
		return nil, nil
	}
	if err := uc.gateway.UpdateNotices(ctx, session.Key, nil); err != nil {
		return nil, err
	}
	notices := session.Notices
	session.Notices = nil
	return notices, nil
}

func (uc *sessionUseCase) ClearExpired(ctx context.Context) (int64, error) {
	return uc.gateway.DeleteExpired(ctx, uc.now().UTC())
}

func (uc *sessionUseCase) TTL() time.Duration {
	return uc.ttl
}

// newKey returns 64 hex characters from two random UUIDs.
func newKey() string {
	return strings.ReplaceAll(uuid.NewString()+uuid.NewString(), "-", "")
}
