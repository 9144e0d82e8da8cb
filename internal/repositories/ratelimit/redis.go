package ratelimit

import (
	"context"
	"fmt"

	"github.com/KirkDiggler/hexpath/internal/errors"
	"github.com/KirkDiggler/hexpath/internal/pkg/clock"
	redisclient "github.com/KirkDiggler/hexpath/internal/redis"
)

// Key pattern: ratelimit:{key}:{window start unix ms}
const keyPrefix = "ratelimit:"

// Config holds the configuration for the Redis repository
type Config struct {
	Client redisclient.Client
	Clock  clock.Clock
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config is required")
	}
	if c.Client == nil {
		return errors.InvalidArgument("redis client is required")
	}
	if c.Clock == nil {
		return errors.InvalidArgument("clock is required")
	}
	return nil
}

type redisRepository struct {
	client redisclient.Client
	clock  clock.Clock
}

// NewRedisRepository creates a new Redis backed rate limit repository
func NewRedisRepository(cfg *Config) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &redisRepository{
		client: cfg.Client,
		clock:  cfg.Clock,
	}, nil
}

var _ Repository = (*redisRepository)(nil)

// Hit increments the window counter and refreshes its expiry in one transaction
func (r *redisRepository) Hit(ctx context.Context, input HitInput) (*HitOutput, error) {
	if err := validateHit(input); err != nil {
		return nil, err
	}

	start, resetAt := windowBounds(r.clock.Now(), input.Window)
	key := counterKey(input.Key, start.UnixMilli())

	pipe := r.client.TxPipeline()
	incr := pipe.Incr(ctx, key)
	pipe.Expire(ctx, key, input.Window)
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to record rate limit hit").
			WithMeta("key", input.Key)
	}

	return &HitOutput{
		Count:   incr.Val(),
		ResetAt: resetAt,
	}, nil
}

func counterKey(key string, windowStart int64) string {
	return fmt.Sprintf("%s%s:%d", keyPrefix, key, windowStart)
}
