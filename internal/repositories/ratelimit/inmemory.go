package ratelimit

import (
	"context"
	"sync"
	"time"

	"github.com/KirkDiggler/hexpath/internal/pkg/clock"
)

type bucket struct {
	count   int64
	resetAt time.Time
}

// InMemoryRepository implements Repository for a single process
type InMemoryRepository struct {
	mu        sync.Mutex
	clock     clock.Clock
	buckets   map[string]*bucket
	lastSweep time.Time
}

// NewInMemory creates a new in-memory repository. A nil clock uses wall time.
func NewInMemory(c clock.Clock) *InMemoryRepository {
	if c == nil {
		c = clock.New()
	}
	return &InMemoryRepository{
		clock:   c,
		buckets: make(map[string]*bucket),
	}
}

var _ Repository = (*InMemoryRepository)(nil)

// Hit increments the counter for the key's current window
func (r *InMemoryRepository) Hit(_ context.Context, input HitInput) (*HitOutput, error) {
	if err := validateHit(input); err != nil {
		return nil, err
	}

	now := r.clock.Now()
	start, resetAt := windowBounds(now, input.Window)
	key := counterKey(input.Key, start.UnixMilli())

	r.mu.Lock()
	defer r.mu.Unlock()

	if now.Sub(r.lastSweep) >= input.Window {
		r.sweep(now)
	}

	b, ok := r.buckets[key]
	if !ok {
		b = &bucket{resetAt: resetAt}
		r.buckets[key] = b
	}
	b.count++

	return &HitOutput{
		Count:   b.count,
		ResetAt: b.resetAt,
	}, nil
}

func (r *InMemoryRepository) sweep(now time.Time) {
	for key, b := range r.buckets {
		if !now.Before(b.resetAt) {
			delete(r.buckets, key)
		}
	}
	r.lastSweep = now
}
