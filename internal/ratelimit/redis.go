package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisOptions configure the Redis limiter.
type RedisOptions struct {
	Addr     string
	Password string
	DB       int
	Limit    int
	Window   time.Duration
	Prefix   string
}

// Redis is a fixed-window limiter whose counters live in Redis, so every
// instance behind a load balancer shares them.
type Redis struct {
	client *redis.Client
	limit  int
	window time.Duration
	prefix string
	now    func() time.Time
}

// NewRedis creates the client lazily; connectivity is checked by Ping.
func NewRedis(opts RedisOptions) *Redis {
	prefix := opts.Prefix
	if prefix == "" {
		prefix = "stockmetrics:ratelimit"
	}
	window := opts.Window
	if window <= 0 {
		window = time.Minute
	}

	return &Redis{
		client: redis.NewClient(&redis.Options{
			Addr:         opts.Addr,
			Password:     opts.Password,
			DB:           opts.DB,
			DialTimeout:  2 * time.Second,
			ReadTimeout:  time.Second,
			WriteTimeout: time.Second,
		}),
		limit:  opts.Limit,
		window: window,
		prefix: prefix,
		now:    time.Now,
	}
}

// Allow increments the counter of key's current window.
func (r *Redis) Allow(ctx context.Context, key string) (bool, error) {
	k := r.windowKey(key)

	var incr *redis.IntCmd
	_, err := r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		incr = pipe.Incr(ctx, k)
		pipe.Expire(ctx, k, r.window)
		return nil
	})
	if err != nil {
		return false, fmt.Errorf("ratelimit incr: %w", err)
	}
	return incr.Val() <= int64(r.limit), nil
}

// windowKey buckets time into fixed windows so each bucket expires on its own.
func (r *Redis) windowKey(key string) string {
	bucket := r.now().UnixNano() / int64(r.window)
	return fmt.Sprintf("%s:%s:%d", r.prefix, key, bucket)
}

// Ping checks the Redis connection.
func (r *Redis) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

// Close closes the Redis connection.
func (r *Redis) Close() error {
	return r.client.Close()
}

var _ Limiter = (*Redis)(nil)
