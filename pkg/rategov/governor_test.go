package rategov

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterValidation(t *testing.T) {
	g := New()

	require.Error(t, g.Register("bad-window", BucketConfig{Kind: KindSlidingWindow}))
	require.Error(t, g.Register("bad-bucket", BucketConfig{Kind: KindTokenBucket, Rate: -1}))
	require.Error(t, g.Register("bad-kind", BucketConfig{Kind: "nonsense"}))

	require.NoError(t, g.Register("ok", BucketConfig{
		Kind: KindSlidingWindow, MaxRequests: 1, Window: time.Second,
	}))
}

func TestTryAcquireUnknownBucket(t *testing.T) {
	g := New()
	err := g.TryAcquire("missing", 1)
	require.Error(t, err)
}

func TestSlidingWindowDeniesOverLimit(t *testing.T) {
	g := New()
	require.NoError(t, g.Register("win", BucketConfig{
		Kind: KindSlidingWindow, MaxRequests: 3, Window: time.Minute,
	}))

	for i := 0; i < 3; i++ {
		require.NoError(t, g.TryAcquire("win", 1))
	}

	err := g.TryAcquire("win", 1)
	require.Error(t, err)

	var denied *DeniedError
	require.True(t, errors.As(err, &denied))
	assert.Equal(t, "win", denied.Bucket)
	assert.Greater(t, denied.RetryAfter, time.Duration(0))
	assert.LessOrEqual(t, denied.RetryAfter, time.Minute)
}

func TestSlidingWindowRecoversAfterWindow(t *testing.T) {
	w := newSlidingWindow(2, 100*time.Millisecond)

	now := time.Now()
	ok, _ := w.reserve(now, 1)
	require.True(t, ok)
	ok, _ = w.reserve(now, 1)
	require.True(t, ok)

	ok, retryAfter := w.reserve(now, 1)
	require.False(t, ok)
	require.Greater(t, retryAfter, time.Duration(0))

	// Past the window the old stamps are pruned.
	ok, _ = w.reserve(now.Add(150*time.Millisecond), 1)
	assert.True(t, ok)
}

func TestTokenBucketBurstThenDeny(t *testing.T) {
	g := New()
	require.NoError(t, g.Register("tb", BucketConfig{
		Kind: KindTokenBucket, Rate: 0.001, Capacity: 2,
	}))

	require.NoError(t, g.TryAcquire("tb", 1))
	require.NoError(t, g.TryAcquire("tb", 1))

	err := g.TryAcquire("tb", 1)
	var denied *DeniedError
	require.True(t, errors.As(err, &denied))
	assert.Greater(t, denied.RetryAfter, time.Duration(0))
}

func TestAcquireFailsFastBeforeDeadline(t *testing.T) {
	g := New()
	require.NoError(t, g.Register("slow", BucketConfig{
		Kind: KindTokenBucket, Rate: 0.001, Capacity: 1,
	}))
	require.NoError(t, g.TryAcquire("slow", 1))

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	start := time.Now()
	err := g.Acquire(ctx, "slow", 1)
	require.Error(t, err)

	var denied *DeniedError
	require.True(t, errors.As(err, &denied), "should fail fast with DeniedError, got %v", err)
	assert.Less(t, time.Since(start), 40*time.Millisecond, "must not sleep out the deadline")
}

func TestAcquireBlocksUntilPermit(t *testing.T) {
	g := New()
	require.NoError(t, g.Register("fast", BucketConfig{
		Kind: KindTokenBucket, Rate: 50, Capacity: 1,
	}))
	require.NoError(t, g.TryAcquire("fast", 1))

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, g.Acquire(ctx, "fast", 1))
}

func TestAdaptiveObserveThrottles(t *testing.T) {
	g := New()
	require.NoError(t, g.Register("ad", BucketConfig{
		Kind: KindAdaptive, Rate: 100, Capacity: 10,
	}))

	// Upstream says quota exhausted for the next while: the bucket should
	// stop granting bursts.
	g.Observe("ad", 0, time.Now().Add(time.Minute))

	granted := 0
	for i := 0; i < 20; i++ {
		if g.TryAcquire("ad", 1) == nil {
			granted++
		}
	}
	assert.LessOrEqual(t, granted, 10, "exhausted quota must not grant beyond the existing burst")
}

func TestObserveIgnoresNonAdaptive(t *testing.T) {
	g := New()
	require.NoError(t, g.Register("win", BucketConfig{
		Kind: KindSlidingWindow, MaxRequests: 5, Window: time.Second,
	}))
	// Must not panic or change behavior.
	g.Observe("win", 0, time.Now().Add(time.Hour))
	g.Observe("missing", 0, time.Now())
	require.NoError(t, g.TryAcquire("win", 1))
}
