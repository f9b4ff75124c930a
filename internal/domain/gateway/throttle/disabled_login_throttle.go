package throttle

import (
	"context"

	"todo-tracker/internal/domain/model"
)

// DisabledLoginThrottle lets every attempt through; used when Redis is not configured.
type DisabledLoginThrottle struct{}

var (
	_ LoginThrottle = DisabledLoginThrottle{}
	_ HealthGateway = DisabledLoginThrottle{}
)

func (DisabledLoginThrottle) Allow(context.Context, string) (bool, error) {
	return true, nil
}

func (DisabledLoginThrottle) Reset(context.Context, string) error {
	return nil
}

func (DisabledLoginThrottle) Health(context.Context) model.ComponentHealthStatus {
	return model.ComponentHealthStatus{
		Status: model.StatusUnknown,
		Details: map[string]string{
			"message": "Redis disabled",
		},
	}
}
