package main

import (
	"context"

	"golang.org/x/time/rate"

	"github.com/KirkDiggler/hexpath/internal/errors"
	"github.com/KirkDiggler/hexpath/internal/metrics"
)

// tokenBucket rejects gRPC calls beyond a process-wide rate
type tokenBucket struct {
	limiter *rate.Limiter
	metrics *metrics.Metrics
}

func newTokenBucket(perSecond float64, burst int, m *metrics.Metrics) *tokenBucket {
	return &tokenBucket{
		limiter: rate.NewLimiter(rate.Limit(perSecond), burst),
		metrics: m,
	}
}

// Limit implements the go-grpc-middleware ratelimit.Limiter interface
func (b *tokenBucket) Limit(_ context.Context) error {
	if b.limiter.Allow() {
		return nil
	}
	b.metrics.ObserveRateLimited()
	return errors.ToGRPCError(errors.ResourceExhausted("rate limit exceeded"))
}
