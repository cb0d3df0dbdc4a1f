package app

import (
	"context"
	"fmt"
	"time"

	"github.com/guttosm/stockmetrics/config"
	"github.com/guttosm/stockmetrics/internal/ratelimit"
)

// limiterOpener is an indirection for unit testing; defaults to InitRateLimiter.
var limiterOpener = InitRateLimiter

// InitRateLimiter builds the per-client rate-limit backend.
//
// Behavior:
//   - Without RATE_LIMIT_REDIS_ADDR, counters live in process memory.
//   - With it, counters live in Redis and the connection is pinged once so a
//     misconfigured address fails at startup instead of on every request.
func InitRateLimiter(cfg config.RateLimitConfig) (ratelimit.Limiter, error) {
	if cfg.RedisAddr == "" {
		return ratelimit.NewMemory(cfg.PerMinute, time.Minute), nil
	}

	limiter := ratelimit.NewRedis(ratelimit.RedisOptions{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
		Limit:    cfg.PerMinute,
		Window:   time.Minute,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := limiter.Ping(ctx); err != nil {
		_ = limiter.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	return limiter, nil
}
