// Package ratelimit provides fixed-window request counters
package ratelimit

import (
	"context"
	"time"

	"github.com/KirkDiggler/hexpath/internal/errors"
)

//go:generate mockgen -destination=mock/mock_repository.go -package=ratelimitmock github.com/KirkDiggler/hexpath/internal/repositories/ratelimit Repository

// HitInput identifies the counter to increment
type HitInput struct {
	// Key is the caller identity, usually a client IP
	Key string

	// Window is the length of the fixed window. Windows are aligned to
	// multiples of Window as computed by time.Time.Truncate.
	Window time.Duration
}

// HitOutput is the counter state after the hit
type HitOutput struct {
	// Count includes the hit just recorded
	Count int64

	// ResetAt is when the current window ends
	ResetAt time.Time
}

// Repository defines the interface for rate limit counters
type Repository interface {
	// Hit increments the counter for the key's current window
	Hit(ctx context.Context, input HitInput) (*HitOutput, error)
}

func validateHit(input HitInput) error {
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("key", input.Key, vb)
	if input.Window <= 0 {
		vb.InvalidField("window", "must be positive")
	}
	return vb.Build()
}

func windowBounds(now time.Time, window time.Duration) (time.Time, time.Time) {
	start := now.Truncate(window)
	return start, start.Add(window)
}
