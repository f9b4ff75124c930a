package throttle

import (
	"context"
	"strconv"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"todo-tracker/internal/domain/model"
	"todo-tracker/pkg/redis"
)

func newThrottle(t *testing.T, maxAttempts int) *RedisLoginThrottle {
	t.Helper()
	server := miniredis.RunT(t)
	port, err := strconv.Atoi(server.Port())
	require.NoError(t, err)

	config := redis.DefaultConfig()
	config.Host = server.Host()
	config.Port = port
	client, err := redis.NewClient(config)
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })

	return NewRedisLoginThrottle(client, maxAttempts, time.Minute)
}

func TestRedisLoginThrottle(t *testing.T) {
	throttle := newThrottle(t, 2)
	ctx := context.Background()

	for _, want := range []bool{true, true, false} {
		allowed, err := throttle.Allow(ctx, "alice|127.0.0.1")
		require.NoError(t, err)
		assert.Equal(t, want, allowed)
	}

	require.NoError(t, throttle.Reset(ctx, "alice|127.0.0.1"))
	allowed, err := throttle.Allow(ctx, "alice|127.0.0.1")
	require.NoError(t, err)
	assert.True(t, allowed)

	assert.Equal(t, model.StatusUp, throttle.Health(ctx).Status)
}

func TestDisabledLoginThrottle(t *testing.T) {
	var throttle DisabledLoginThrottle
	for i := 0; i < 100; i++ {
		allowed, err := throttle.Allow(context.Background(), "anyone")
		require.NoError(t, err)
		require.True(t, allowed)
	}
	assert.Equal(t, model.StatusUnknown, throttle.Health(context.Background()).Status)
}
