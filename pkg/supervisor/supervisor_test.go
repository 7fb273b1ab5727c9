package supervisor

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSuperviseRestartsFailedComponent(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var runs atomic.Int32
	s := New(100)
	s.Supervise(ctx, Component{
		Name: "flaky",
		Run: func(ctx context.Context) error {
			if runs.Add(1) >= 3 {
				<-ctx.Done()
				return nil
			}
			return errors.New("boom")
		},
	})

	require.Eventually(t, func() bool { return runs.Load() >= 3 }, 10*time.Second, 10*time.Millisecond)
	cancel()
	s.Wait()
}

func TestSuperviseEscalatesAfterBudget(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	s := New(3)
	s.Supervise(ctx, Component{
		Name: "doomed",
		Run: func(context.Context) error {
			return errors.New("always fails")
		},
	})

	select {
	case esc := <-s.Escalations():
		assert.Equal(t, "doomed", esc.Component)
		assert.Equal(t, 3, esc.Failures)
		assert.Error(t, esc.LastErr)
	case <-time.After(30 * time.Second):
		t.Fatal("expected escalation")
	}
	s.Wait()
}

func TestSuperviseRestartsAfterPanic(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var runs atomic.Int32
	s := New(100)
	s.Supervise(ctx, Component{
		Name: "panicky",
		Run: func(ctx context.Context) error {
			if runs.Add(1) >= 3 {
				<-ctx.Done()
				return nil
			}
			panic("worker died")
		},
	})

	require.Eventually(t, func() bool { return runs.Load() >= 3 }, 10*time.Second, 10*time.Millisecond)
	cancel()
	s.Wait()
}

func TestSuperviseEscalatesOnPersistentPanic(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	s := New(2)
	s.Supervise(ctx, Component{
		Name: "panicky",
		Run:  func(context.Context) error { panic("worker died") },
	})

	select {
	case esc := <-s.Escalations():
		assert.Equal(t, "panicky", esc.Component)
		require.Error(t, esc.LastErr)
		assert.Contains(t, esc.LastErr.Error(), "panicked")
	case <-time.After(30 * time.Second):
		t.Fatal("expected escalation")
	}
	s.Wait()
}

func TestSuperviseStopsOnContextCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	s := New(5)
	s.Supervise(ctx, Component{
		Name: "well-behaved",
		Run: func(ctx context.Context) error {
			<-ctx.Done()
			return ctx.Err()
		},
	})

	cancel()

	done := make(chan struct{})
	go func() {
		s.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("supervisor did not stop after cancel")
	}

	select {
	case esc := <-s.Escalations():
		t.Fatalf("unexpected escalation: %+v", esc)
	default:
	}
}

func TestBackoffCapped(t *testing.T) {
	assert.Equal(t, time.Second, backoff(1))
	assert.Equal(t, 2*time.Second, backoff(2))
	assert.Equal(t, 16*time.Second, backoff(5))
	assert.Equal(t, restartBackoffMax, backoff(10))
}
