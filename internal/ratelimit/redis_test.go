package ratelimit

import (
	"context"
	"strings"
	"testing"
	"time"
)

func TestRedisWindowKey(t *testing.T) {
	r := NewRedis(RedisOptions{Addr: "localhost:0", Limit: 1, Window: time.Minute})
	defer r.Close()

	base := time.Date(2024, 3, 1, 12, 0, 5, 0, time.UTC)
	r.now = func() time.Time { return base }
	k1 := r.windowKey("1.2.3.4")

	r.now = func() time.Time { return base.Add(30 * time.Second) }
	k2 := r.windowKey("1.2.3.4")

	r.now = func() time.Time { return base.Add(time.Minute) }
	k3 := r.windowKey("1.2.3.4")

	if !strings.HasPrefix(k1, "stockmetrics:ratelimit:1.2.3.4:") {
		t.Fatalf("unexpected key %q", k1)
	}
	if k1 != k2 {
		t.Fatalf("same window must share key: %q vs %q", k1, k2)
	}
	if k1 == k3 {
		t.Fatalf("next window must use a new key")
	}
}

func TestRedisUnreachable(t *testing.T) {
	// Port 1 on loopback is expected to refuse connections.
	r := NewRedis(RedisOptions{Addr: "127.0.0.1:1", Limit: 10})
	defer r.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if err := r.Ping(ctx); err == nil {
		t.Fatalf("expected ping error for unreachable redis")
	}
	if _, err := r.Allow(ctx, "a"); err == nil {
		t.Fatalf("expected allow error for unreachable redis")
	}
}
