// Package limit bounds how many benchmarks a transport admits and how many run at once.
package limit

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/sync/semaphore"
	"golang.org/x/time/rate"
)

// ErrRateLimited is returned when the request rate has been exceeded.
var ErrRateLimited = errors.New("rate limit exceeded")

// Gate combines a request rate limit with a bound on concurrently running benchmarks.
// A nil *Gate admits everything.
type Gate struct {
	limiter *rate.Limiter
	slots   *semaphore.Weighted
}

// NewGate creates a gate admitting perMinute requests per minute (burst perMinute) with at most
// maxConcurrent running at once. Zero disables the corresponding limit.
func NewGate(maxConcurrent, perMinute int) *Gate {
	g := &Gate{}
	if perMinute > 0 {
		g.limiter = rate.NewLimiter(rate.Every(time.Minute/time.Duration(perMinute)), perMinute)
	}
	if maxConcurrent > 0 {
		g.slots = semaphore.NewWeighted(int64(maxConcurrent))
	}
	return g
}

// Acquire admits one request. It fails fast with ErrRateLimited, then queues for a free slot
// until ctx is done. The returned release must be called once the benchmark has finished.
func (g *Gate) Acquire(ctx context.Context) (func(), error) {
	if g == nil {
		return func() {}, nil
	}

	if g.limiter != nil && !g.limiter.Allow() {
		return nil, ErrRateLimited
	}

	if g.slots == nil {
		return func() {}, nil
	}
	if err := g.slots.Acquire(ctx, 1); err != nil {
		return nil, fmt.Errorf("failed to wait for a free benchmark slot: %w", err)
	}
	return func() { g.slots.Release(1) }, nil
}
