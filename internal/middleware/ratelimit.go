package middleware

import (
	"context"
	"net/http"
	"time"

	"github.com/amd4k/ZHV/pkg/logger"
	"github.com/amd4k/ZHV/pkg/metrics"
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// Counter is a shared counter with expiry, as provided by redis.
type Counter interface {
	Incr(ctx context.Context, key string) (int64, error)
	Expire(ctx context.Context, key string, ttl time.Duration) error
}

type redisCounter struct {
	client *redis.Client
}

// NewRedisCounter adapts a redis client to Counter. A nil client yields a
// nil Counter, which disables rate limiting.
func NewRedisCounter(client *redis.Client) Counter {
	if client == nil {
		return nil
	}
	return &redisCounter{client: client}
}

func (r *redisCounter) Incr(ctx context.Context, key string) (int64, error) {
	return r.client.Incr(ctx, key).Result()
}

func (r *redisCounter) Expire(ctx context.Context, key string, ttl time.Duration) error {
	return r.client.Expire(ctx, key, ttl).Err()
}

// RateLimitConfig describes a fixed window limit for one route group
type RateLimitConfig struct {
	Scope    string
	Requests int
	Window   time.Duration
}

// RateLimit allows cfg.Requests requests per client IP per window. When the
// counter is nil or fails, requests pass through.
func RateLimit(counter Counter, cfg RateLimitConfig, m *metrics.Metrics) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		if counter == nil || cfg.Requests <= 0 {
			return next
		}
		return func(c echo.Context) error {
			ctx := c.Request().Context()
			key := "rate_limit:" + cfg.Scope + ":" + c.RealIP()

			count, err := counter.Incr(ctx, key)
			if err != nil {
				logger.FromEcho(c).Warn("Rate limiter unavailable", zap.Error(err))
				return next(c)
			}
			if count == 1 {
				if err := counter.Expire(ctx, key, cfg.Window); err != nil {
					logger.FromEcho(c).Warn("Failed to set rate limit window", zap.Error(err))
				}
			}

			if count > int64(cfg.Requests) {
				m.RecordRateLimited(cfg.Scope)
				logger.FromEcho(c).Warn("Rate limit exceeded",
					zap.String("scope", cfg.Scope),
					zap.String("ip", c.RealIP()),
					zap.Int64("count", count))
				return c.JSON(http.StatusTooManyRequests, echo.Map{"message": "Too many requests"})
			}

			return next(c)
		}
	}
}
