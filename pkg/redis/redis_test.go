package redis

import (
	"context"
	"strconv"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T) (*Client, *miniredis.Miniredis) {
	t.Helper()
	server := miniredis.RunT(t)

	port, err := strconv.Atoi(server.Port())
	require.NoError(t, err)

	config := DefaultConfig()
	config.Host = server.Host()
	config.Port = port

	client, err := NewClient(config)
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })
	return client, server
}

func TestNewClientRejectsInvalidConfig(t *testing.T) {
	config := DefaultConfig()
	config.Port = 0

	_, err := NewClient(config)
	assert.Error(t, err)
}

func TestRateLimiterAllowsUpToMaxHits(t *testing.T) {
	client, server := newTestClient(t)
	ctx := context.Background()
	limiter := NewRateLimiter(client, NewRateLimiterOptions().WithMaxHits(3).WithWindow(time.Minute))

	for i := 0; i < 3; i++ {
		allowed, err := limiter.Allow(ctx, "alice")
		require.NoError(t, err)
		assert.True(t, allowed, "hit %d should be allowed", i+1)
	}

	allowed, err := limiter.Allow(ctx, "alice")
	require.NoError(t, err)
	assert.False(t, allowed)

	other, err := limiter.Allow(ctx, "bob")
	require.NoError(t, err)
	assert.True(t, other)

	assert.Equal(t, time.Minute, server.TTL("rate_limit::alice"))

	server.FastForward(time.Minute + time.Second)
	allowed, err = limiter.Allow(ctx, "alice")
	require.NoError(t, err)
	assert.True(t, allowed)
}

func TestRateLimiterReset(t *testing.T) {
	client, _ := newTestClient(t)
	ctx := context.Background()
	limiter := NewRateLimiter(client, NewRateLimiterOptions().WithMaxHits(1))

	_, err := limiter.Allow(ctx, "alice")
	require.NoError(t, err)
	allowed, err := limiter.Allow(ctx, "alice")
	require.NoError(t, err)
	assert.False(t, allowed)

	require.NoError(t, limiter.Reset(ctx, "alice"))
	allowed, err = limiter.Allow(ctx, "alice")
	require.NoError(t, err)
	assert.True(t, allowed)
}

func TestLockIsExclusive(t *testing.T) {
	client, _ := newTestClient(t)
	ctx := context.Background()

	first := NewLock(client, "job", time.Minute)
	second := NewLock(client, "job", time.Minute)

	acquired, err := first.TryLock(ctx)
	require.NoError(t, err)
	assert.True(t, acquired)

	acquired, err = second.TryLock(ctx)
	require.NoError(t, err)
	assert.False(t, acquired)

	assert.ErrorIs(t, second.Unlock(ctx), ErrLockNotHeld)
	require.NoError(t, first.Unlock(ctx))

	acquired, err = second.TryLock(ctx)
	require.NoError(t, err)
	assert.True(t, acquired)
}

func TestHealthCheck(t *testing.T) {
	client, server := newTestClient(t)

	result := NewHealthChecker(client).HealthCheck(context.Background())
	assert.Equal(t, StatusUp, result.Status)
	assert.Equal(t, client.GetConfig().Addr(), result.Details["address"])

	server.Close()
	result = NewHealthChecker(client).HealthCheck(context.Background())
	assert.Equal(t, StatusDown, result.Status)
	assert.NotEmpty(t, result.Details["message"])
}
