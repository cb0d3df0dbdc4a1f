package ratelimit

import (
	"context"
	"sync"
	"time"
)

// client represents a rate-limited client with request count and window start.
type client struct {
	windowStart time.Time
	count       int
}

// Memory is a fixed-window limiter keeping counters in process memory.
// Counters are not shared between instances; use Redis for that.
type Memory struct {
	limit  int
	window time.Duration
	now    func() time.Time

	mu      sync.Mutex
	clients map[string]*client
}

// NewMemory allows limit requests per window for each key.
func NewMemory(limit int, window time.Duration) *Memory {
	return &Memory{
		limit:   limit,
		window:  window,
		now:     time.Now,
		clients: make(map[string]*client),
	}
}

// Allow counts the request and reports whether it is within the limit.
func (m *Memory) Allow(_ context.Context, key string) (bool, error) {
	now := m.now()

	m.mu.Lock()
	defer m.mu.Unlock()

	cl, ok := m.clients[key]
	if !ok || now.Sub(cl.windowStart) >= m.window {
		m.evict(now)
		cl = &client{windowStart: now}
		m.clients[key] = cl
	}
	cl.count++
	return cl.count <= m.limit, nil
}

// evict drops expired windows so idle clients do not accumulate. Caller holds mu.
func (m *Memory) evict(now time.Time) {
	for k, cl := range m.clients {
		if now.Sub(cl.windowStart) >= m.window {
			delete(m.clients, k)
		}
	}
}

// Ping always succeeds.
func (m *Memory) Ping(context.Context) error { return nil }

// Close is a no-op.
func (m *Memory) Close() error { return nil }

var _ Limiter = (*Memory)(nil)
