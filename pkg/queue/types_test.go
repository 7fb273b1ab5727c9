package queue

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRetryBackoffGrowsAndCaps(t *testing.T) {
	base := 10 * time.Second
	max := 5 * time.Minute

	// ±25% jitter around base*2^(n-1), capped at max.
	for attempts, want := range map[int]time.Duration{
		1: 10 * time.Second,
		2: 20 * time.Second,
		3: 40 * time.Second,
		9: max, // past the cap
	} {
		got := retryBackoff(base, max, attempts)
		assert.GreaterOrEqual(t, got, time.Duration(float64(want)*0.75), "attempts=%d", attempts)
		assert.LessOrEqual(t, got, time.Duration(float64(want)*1.25), "attempts=%d", attempts)
	}
}

func TestRetryBackoffClampsAttempts(t *testing.T) {
	got := retryBackoff(time.Second, time.Minute, 0)
	assert.GreaterOrEqual(t, got, 750*time.Millisecond)
	assert.LessOrEqual(t, got, 1250*time.Millisecond)
}

func TestPollIntervalJitterRange(t *testing.T) {
	base := 500 * time.Millisecond
	jitter := 250 * time.Millisecond

	for i := 0; i < 100; i++ {
		got := pollInterval(base, jitter)
		assert.GreaterOrEqual(t, got, base-jitter)
		assert.LessOrEqual(t, got, base+jitter)
	}

	assert.Equal(t, base, pollInterval(base, 0))
}
