// Package mocks provides mock expectation helpers for common testing patterns
package mocks

import (
	"context"
	"time"

	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/hexpath/internal/engine"
	enginemock "github.com/KirkDiggler/hexpath/internal/engine/mock"
	"github.com/KirkDiggler/hexpath/internal/repositories/ratelimit"
	ratelimitmock "github.com/KirkDiggler/hexpath/internal/repositories/ratelimit/mock"
)

// ExpectSearchFails sets up a single engine search that returns err
func ExpectSearchFails(ctx context.Context, mockEngine *enginemock.MockEngine, err error) {
	mockEngine.EXPECT().
		FindPath(ctx, gomock.Any()).
		Return(nil, err)
}

// ExpectNoPath sets up a single engine search that exhausts the frontier
func ExpectNoPath(ctx context.Context, mockEngine *enginemock.MockEngine) {
	ExpectSearchFails(ctx, mockEngine, engine.ErrNoPathFound)
}

// ExpectHits sets up a rate limit repository that counts every hit within
// one window starting at windowStart
func ExpectHits(
	mockRepo *ratelimitmock.MockRepository,
	windowStart time.Time,
	window time.Duration,
) {
	var count int64
	mockRepo.EXPECT().
		Hit(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ ratelimit.HitInput) (*ratelimit.HitOutput, error) {
			count++
			return &ratelimit.HitOutput{
				Count:   count,
				ResetAt: windowStart.Add(window),
			}, nil
		}).
		AnyTimes()
}

// ExpectHitFails sets up a single rate limit lookup that returns err
func ExpectHitFails(mockRepo *ratelimitmock.MockRepository, err error) {
	mockRepo.EXPECT().
		Hit(gomock.Any(), gomock.Any()).
		Return(nil, err)
}
