// Package rategov provides named rate-limit buckets for external APIs.
//
// Three variants cover the upstreams this process talks to: a sliding-window
// counter ("at most K requests in the last W seconds"), a token bucket
// (replenish rate R, capacity C), and an adaptive bucket that re-tunes its
// rate from upstream rate_limit_remaining/rate_limit_reset signals.
package rategov

import (
	"context"
	"fmt"
	"sync"
	"time"
)

// Kind selects a limiter variant for a bucket.
type Kind string

// Limiter variants.
const (
	KindSlidingWindow Kind = "sliding_window"
	KindTokenBucket   Kind = "token_bucket"
	KindAdaptive      Kind = "adaptive"
)

// BucketConfig describes one named bucket.
type BucketConfig struct {
	Kind Kind

	// Sliding window: at most MaxRequests per Window.
	MaxRequests int
	Window      time.Duration

	// Token bucket / adaptive: replenish Rate tokens per second, burst Capacity.
	Rate     float64
	Capacity int
}

// DeniedError is returned when a permit cannot be granted before the
// caller's deadline. RetryAfter is the earliest time a retry could succeed.
type DeniedError struct {
	Bucket     string
	RetryAfter time.Duration
}

func (e *DeniedError) Error() string {
	return fmt.Sprintf("rate bucket %q exhausted, retry after %v", e.Bucket, e.RetryAfter)
}

// limiter is the internal contract each variant satisfies.
type limiter interface {
	// reserve takes cost tokens if available; otherwise reports how long
	// until a retry could succeed.
	reserve(now time.Time, cost int) (ok bool, retryAfter time.Duration)

	// observe feeds upstream quota signals back. Non-adaptive variants
	// ignore it.
	observe(remaining int, reset time.Time)
}

// Governor holds the named buckets. Safe for concurrent use.
type Governor struct {
	mu      sync.RWMutex
	buckets map[string]limiter
}

// New creates an empty Governor.
func New() *Governor {
	return &Governor{buckets: make(map[string]limiter)}
}

// Register creates or replaces a named bucket.
func (g *Governor) Register(name string, cfg BucketConfig) error {
	var lim limiter
	switch cfg.Kind {
	case KindSlidingWindow:
		if cfg.MaxRequests <= 0 || cfg.Window <= 0 {
			return fmt.Errorf("bucket %q: sliding window needs positive max_requests and window", name)
		}
		lim = newSlidingWindow(cfg.MaxRequests, cfg.Window)
	case KindTokenBucket:
		if cfg.Rate <= 0 || cfg.Capacity <= 0 {
			return fmt.Errorf("bucket %q: token bucket needs positive rate and capacity", name)
		}
		lim = newTokenBucket(cfg.Rate, cfg.Capacity, false)
	case KindAdaptive:
		if cfg.Rate <= 0 || cfg.Capacity <= 0 {
			return fmt.Errorf("bucket %q: adaptive bucket needs positive rate and capacity", name)
		}
		lim = newTokenBucket(cfg.Rate, cfg.Capacity, true)
	default:
		return fmt.Errorf("bucket %q: unknown limiter kind %q", name, cfg.Kind)
	}

	g.mu.Lock()
	g.buckets[name] = lim
	g.mu.Unlock()
	return nil
}

func (g *Governor) get(name string) (limiter, error) {
	g.mu.RLock()
	lim, ok := g.buckets[name]
	g.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("unknown rate bucket %q", name)
	}
	return lim, nil
}

// TryAcquire takes cost tokens without blocking. On denial the returned
// error is a *DeniedError carrying the retry hint.
func (g *Governor) TryAcquire(bucket string, cost int) error {
	lim, err := g.get(bucket)
	if err != nil {
		return err
	}
	if ok, retryAfter := lim.reserve(time.Now(), cost); !ok {
		return &DeniedError{Bucket: bucket, RetryAfter: retryAfter}
	}
	return nil
}

// Acquire blocks until cost tokens are granted or ctx expires. When the
// permit cannot arrive before the deadline, Acquire fails fast with a
// *DeniedError instead of sleeping out the deadline.
func (g *Governor) Acquire(ctx context.Context, bucket string, cost int) error {
	lim, err := g.get(bucket)
	if err != nil {
		return err
	}

	for {
		ok, retryAfter := lim.reserve(time.Now(), cost)
		if ok {
			return nil
		}

		if deadline, has := ctx.Deadline(); has && time.Now().Add(retryAfter).After(deadline) {
			return &DeniedError{Bucket: bucket, RetryAfter: retryAfter}
		}

		timer := time.NewTimer(retryAfter)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}
	}
}

// Observe feeds upstream quota headers into an adaptive bucket.
// No-op for other variants and unknown buckets.
func (g *Governor) Observe(bucket string, remaining int, reset time.Time) {
	g.mu.RLock()
	lim, ok := g.buckets[bucket]
	g.mu.RUnlock()
	if ok {
		lim.observe(remaining, reset)
	}
}
