package redis

import (
	"context"
	"fmt"
	"strconv"
	"time"
)

// RedisHealthCheck represents the health check response for Redis
type RedisHealthCheck struct {
	Status  HealthStatus      `json:"status"`
	Details map[string]string `json:"details"`
}

// HealthChecker provides Redis health checking functionality
type HealthChecker struct {
	client  *Client
	timeout time.Duration
}

// NewHealthChecker creates a new Redis health checker
func NewHealthChecker(client *Client) *HealthChecker {
	return &HealthChecker{client: client, timeout: 2 * time.Second}
}

// HealthCheck pings the server and round-trips a probe key
func (h *HealthChecker) HealthCheck(ctx context.Context) RedisHealthCheck {
	ctx, cancel := context.WithTimeout(ctx, h.timeout)
	defer cancel()

	config := h.client.GetConfig()
	stats := h.client.Stats()
	details := map[string]string{
		"address":     config.Addr(),
		"database":    strconv.Itoa(config.Database),
		"total_conns": strconv.FormatUint(uint64(stats.TotalConns), 10),
		"idle_conns":  strconv.FormatUint(uint64(stats.IdleConns), 10),
	}

	if err := h.probe(ctx); err != nil {
		details["message"] = err.Error()
		return RedisHealthCheck{Status: StatusDown, Details: details}
	}

	details["message"] = string(StatusUp)
	return RedisHealthCheck{Status: StatusUp, Details: details}
}

func (h *HealthChecker) probe(ctx context.Context) error {
	if err := h.client.Ping(ctx); err != nil {
		return fmt.Errorf("ping failed: %w", err)
	}

	const probeKey, probeValue = "health_check_probe", "ok"
	if err := h.client.Set(ctx, probeKey, probeValue, time.Minute); err != nil {
		return fmt.Errorf("set operation failed: %w", err)
	}
	value, err := h.client.Get(ctx, probeKey)
	if err != nil {
		return fmt.Errorf("get operation failed: %w", err)
	}
	if value != probeValue {
		return fmt.Errorf("value mismatch: expected %s, got %s", probeValue, value)
	}
	return h.client.Delete(ctx, probeKey)
}
