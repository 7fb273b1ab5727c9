package rategov

import (
	"math"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// tokenBucket wraps x/time/rate. In adaptive mode, observe re-tunes the
// replenish rate from upstream remaining/reset signals so the bucket drains
// no faster than the quota actually allows.
type tokenBucket struct {
	mu       sync.Mutex
	lim      *rate.Limiter
	baseRate float64
	adaptive bool
}

func newTokenBucket(r float64, capacity int, adaptive bool) *tokenBucket {
	return &tokenBucket{
		lim:      rate.NewLimiter(rate.Limit(r), capacity),
		baseRate: r,
		adaptive: adaptive,
	}
}

func (b *tokenBucket) reserve(now time.Time, cost int) (bool, time.Duration) {
	b.mu.Lock()
	defer b.mu.Unlock()

	r := b.lim.ReserveN(now, cost)
	if !r.OK() {
		// cost exceeds burst; never satisfiable at this capacity.
		return false, time.Duration(float64(cost) / float64(b.lim.Limit()) * float64(time.Second))
	}
	if delay := r.DelayFrom(now); delay > 0 {
		r.CancelAt(now)
		return false, delay
	}
	return true, 0
}

func (b *tokenBucket) observe(remaining int, reset time.Time) {
	if !b.adaptive {
		return
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	until := time.Until(reset)
	if until <= 0 {
		// Quota window rolled over; restore the configured rate.
		b.lim.SetLimit(rate.Limit(b.baseRate))
		return
	}

	if remaining <= 0 {
		// Quota exhausted: at most one request per remaining window.
		b.lim.SetLimit(rate.Every(until))
		return
	}

	// Spread the remaining quota across the time left in the window,
	// never exceeding the configured base rate.
	newRate := math.Min(b.baseRate, float64(remaining)/until.Seconds())
	b.lim.SetLimit(rate.Limit(newRate))
}
