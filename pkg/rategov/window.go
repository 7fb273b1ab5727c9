package rategov

import (
	"sync"
	"time"
)

// slidingWindow enforces "at most max requests in the last window".
// Timestamps are kept in arrival order; expired entries are pruned on
// every reservation, bounding memory at max entries.
type slidingWindow struct {
	mu     sync.Mutex
	max    int
	window time.Duration
	stamps []time.Time
}

func newSlidingWindow(max int, window time.Duration) *slidingWindow {
	return &slidingWindow{
		max:    max,
		window: window,
		stamps: make([]time.Time, 0, max),
	}
}

func (w *slidingWindow) reserve(now time.Time, cost int) (bool, time.Duration) {
	if cost > w.max {
		// Never satisfiable; report a full window so callers back off.
		return false, w.window
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	cutoff := now.Add(-w.window)
	keep := 0
	for _, ts := range w.stamps {
		if ts.After(cutoff) {
			break
		}
		keep++
	}
	w.stamps = w.stamps[keep:]

	if len(w.stamps)+cost > w.max {
		// Retry once enough of the oldest entries age out.
		idx := len(w.stamps) + cost - w.max - 1
		return false, w.stamps[idx].Add(w.window).Sub(now)
	}

	for i := 0; i < cost; i++ {
		w.stamps = append(w.stamps, now)
	}
	return true, 0
}

func (w *slidingWindow) observe(int, time.Time) {}
