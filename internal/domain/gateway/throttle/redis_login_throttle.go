package throttle

import (
	"context"
	"time"

	"todo-tracker/internal/domain/model"
	"todo-tracker/pkg/redis"
)

type RedisLoginThrottle struct {
	limiter *redis.RateLimiter
	checker *redis.HealthChecker
}

var (
	_ LoginThrottle = (*RedisLoginThrottle)(nil)
	_ HealthGateway = (*RedisLoginThrottle)(nil)
)

func NewRedisLoginThrottle(client *redis.Client, maxAttempts int, window time.Duration) *RedisLoginThrottle {
	opts := redis.NewRateLimiterOptions().
		WithMaxHits(maxAttempts).
		WithWindow(window).
		WithNamespace("login_attempts")

	return &RedisLoginThrottle{
		limiter: redis.NewRateLimiter(client, opts),
		checker: redis.NewHealthChecker(client),
	}
}

func (gateway *RedisLoginThrottle) Allow(ctx context.Context, key string) (bool, error) {
	return gateway.limiter.Allow(ctx, key)
}

func (gateway *RedisLoginThrottle) Reset(ctx context.Context, key string) error {
	return gateway.limiter.Reset(ctx, key)
}

func (gateway *RedisLoginThrottle) Health(ctx context.Context) model.ComponentHealthStatus {
	result := gateway.checker.HealthCheck(ctx)
	return model.ComponentHealthStatus{
		Status:  model.HealthStatus(result.Status),
		Details: result.Details,
	}
}
