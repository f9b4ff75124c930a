package redis

import (
	"context"
	"fmt"
	"time"
)

// RateLimiterOptions represents options for fixed window rate limiting
type RateLimiterOptions struct {
	// MaxHits is the number of hits allowed per key inside one window
	MaxHits int
	// Window is the length of the counting window
	Window time.Duration
	// Namespace prefixes every counter key
	Namespace string
}

// NewRateLimiterOptions creates rate limiter options with default values
func NewRateLimiterOptions() *RateLimiterOptions {
	return &RateLimiterOptions{
		MaxHits:   5,
		Window:    5 * time.Minute,
		Namespace: "rate_limit",
	}
}

// WithMaxHits sets the number of hits allowed per window
func (o *RateLimiterOptions) WithMaxHits(maxHits int) *RateLimiterOptions {
	if maxHits < 1 {
		panic(fmt.Sprintf("invalid max hits: %d, must be positive", maxHits))
	}
	o.MaxHits = maxHits
	return o
}

// WithWindow sets the counting window
func (o *RateLimiterOptions) WithWindow(window time.Duration) *RateLimiterOptions {
	if window <= 0 {
		panic(fmt.Sprintf("invalid window: %v, must be positive", window))
	}
	o.Window = window
	return o
}

// WithNamespace sets the key namespace
func (o *RateLimiterOptions) WithNamespace(namespace string) *RateLimiterOptions {
	o.Namespace = namespace
	return o
}

// RateLimiter counts hits per key in fixed windows stored in Redis
type RateLimiter struct {
	client *Client
	opts   *RateLimiterOptions
}

// NewRateLimiter creates a new fixed window rate limiter
func NewRateLimiter(client *Client, opts *RateLimiterOptions) *RateLimiter {
	if opts == nil {
		opts = NewRateLimiterOptions()
	}
	return &RateLimiter{client: client, opts: opts}
}

// buildKey constructs the full counter key using Namespace::key format
func (rl *RateLimiter) buildKey(key string) string {
	if rl.opts.Namespace != "" {
		return rl.opts.Namespace + "::" + key
	}
	return key
}

// Allow records a hit for key and reports whether it is still within the limit
func (rl *RateLimiter) Allow(ctx context.Context, key string) (bool, error) {
	fullKey := rl.buildKey(key)

	pipe := rl.client.GetClient().TxPipeline()
	incr := pipe.Incr(ctx, fullKey)
	ttl := pipe.TTL(ctx, fullKey)
	if _, err := pipe.Exec(ctx); err != nil {
		return false, fmt.Errorf("failed to count hit: %w", err)
	}

	// First hit of a window, or a counter left without expiry.
	if ttl.Val() < 0 {
		if err := rl.client.GetClient().Expire(ctx, fullKey, rl.opts.Window).Err(); err != nil {
			return false, fmt.Errorf("failed to set window expiry: %w", err)
		}
	}

	return incr.Val() <= int64(rl.opts.MaxHits), nil
}

// Reset clears the counter of key
func (rl *RateLimiter) Reset(ctx context.Context, key string) error {
	return rl.client.Delete(ctx, rl.buildKey(key))
}
