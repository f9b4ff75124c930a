package throttle

import (
	"context"

	"todo-tracker/internal/domain/model"
)

// LoginThrottle limits repeated login attempts per key.
type LoginThrottle interface {
	// Allow records an attempt and reports whether it may proceed.
	Allow(ctx context.Context, key string) (bool, error)
	// Reset forgets the attempts recorded for key.
	Reset(ctx context.Context, key string) error
}

type HealthGateway interface {
	Health(ctx context.Context) model.ComponentHealthStatus
}

// Gateway is a login throttle that also reports the health of its backing store.
type Gateway interface {
	LoginThrottle
	HealthGateway
}
