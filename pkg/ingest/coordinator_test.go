package ingest

import (
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/signalhouse/postwatch/pkg/config"
	"github.com/signalhouse/postwatch/pkg/metrics"
	"github.com/signalhouse/postwatch/pkg/models"
)

// testCoordinator builds a coordinator that is never Started; the scheduler
// loop is irrelevant for trigger-submission behavior.
func testCoordinator(queueSize int, spacing time.Duration) *Coordinator {
	cfg := config.DefaultSourceConfig()
	cfg.TriggerQueueSize = queueSize
	cfg.MinPollSpacing = spacing
	return NewCoordinator(cfg, nil, nil, metrics.New())
}

func TestSubmitPushQueues(t *testing.T) {
	c := testCoordinator(4, time.Minute)

	coalesced, err := c.SubmitPush("acme", "42")
	require.NoError(t, err)
	assert.False(t, coalesced)

	trig := <-c.Triggers()
	assert.Equal(t, "acme", trig.Account)
	assert.Equal(t, models.TriggerPush, trig.Reason)
	assert.Equal(t, "42", trig.HintPostID)
}

func TestSubmitPushCoalescesWithinSpacing(t *testing.T) {
	c := testCoordinator(4, time.Minute)

	coalesced, err := c.SubmitPush("acme", "1")
	require.NoError(t, err)
	require.False(t, coalesced)

	// Second push lands inside the spacing window of the first.
	coalesced, err = c.SubmitPush("acme", "2")
	require.NoError(t, err)
	assert.True(t, coalesced)

	// A different account is unaffected.
	coalesced, err = c.SubmitPush("other", "3")
	require.NoError(t, err)
	assert.False(t, coalesced)
}

func TestSubmitPushAfterSpacingElapsed(t *testing.T) {
	c := testCoordinator(4, 10*time.Millisecond)

	_, err := c.SubmitPush("acme", "1")
	require.NoError(t, err)
	<-c.Triggers()

	time.Sleep(20 * time.Millisecond)

	coalesced, err := c.SubmitPush("acme", "2")
	require.NoError(t, err)
	assert.False(t, coalesced)
}

func TestForcePollBypassesCoalescing(t *testing.T) {
	c := testCoordinator(4, time.Minute)

	_, err := c.SubmitPush("acme", "1")
	require.NoError(t, err)

	// A push now would coalesce; a forced poll must not.
	require.NoError(t, c.ForcePoll("acme"))

	<-c.Triggers()
	trig := <-c.Triggers()
	assert.Equal(t, models.TriggerForced, trig.Reason)
}

func TestTriggerQueueSaturation(t *testing.T) {
	c := testCoordinator(1, time.Minute)

	require.NoError(t, c.ForcePoll("a"))
	err := c.ForcePoll("b")
	assert.ErrorIs(t, err, ErrQueueSaturated)
}

func TestSubmitAfterStop(t *testing.T) {
	c := testCoordinator(4, time.Minute)
	c.Stop()

	_, err := c.SubmitPush("acme", "1")
	assert.ErrorIs(t, err, ErrCoordinatorStopped)
	assert.ErrorIs(t, c.ForcePoll("acme"), ErrCoordinatorStopped)

	_, open := <-c.Triggers()
	assert.False(t, open, "trigger channel closes on stop")
}

func TestStopDuringConcurrentSubmissions(t *testing.T) {
	// Stop closes the trigger channel while submitters are mid-flight; a
	// submission that passed the stopped check must never land on the
	// closed channel. Repeat to give the interleaving a chance to bite.
	for i := 0; i < 25; i++ {
		c := testCoordinator(2, 0)

		drained := make(chan struct{})
		go func() {
			defer close(drained)
			for range c.Triggers() {
			}
		}()

		var wg sync.WaitGroup
		for g := 0; g < 4; g++ {
			wg.Add(1)
			go func(g int) {
				defer wg.Done()
				for j := 0; ; j++ {
					account := fmt.Sprintf("acct-%d-%d", g, j)
					var err error
					if g%2 == 0 {
						_, err = c.SubmitPush(account, "")
					} else {
						err = c.ForcePoll(account)
					}
					if errors.Is(err, ErrCoordinatorStopped) {
						return
					}
				}
			}(g)
		}

		c.Stop()
		wg.Wait()
		<-drained
	}
}

func TestPenalizeDefersNextPoll(t *testing.T) {
	c := testCoordinator(4, time.Minute)
	c.Penalize("acme", time.Hour)

	c.mu.Lock()
	until, ok := c.penalty["acme"]
	c.mu.Unlock()
	require.True(t, ok)
	assert.WithinDuration(t, time.Now().Add(time.Hour), until, time.Minute)
}
