// Package ingest turns poll triggers into persisted posts. The Coordinator
// decides when each account is polled; the Pipeline executes the polls.
package ingest

import (
	"context"
	"errors"
	"log/slog"
	"math/rand"
	"sync"
	"time"

	"github.com/signalhouse/postwatch/pkg/config"
	"github.com/signalhouse/postwatch/pkg/metrics"
	"github.com/signalhouse/postwatch/pkg/models"
	"github.com/signalhouse/postwatch/pkg/services"
)

// sweepInterval is how often the scheduler checks accounts for due polls.
const sweepInterval = 5 * time.Second

// ErrQueueSaturated is returned when the trigger queue cannot accept more
// work. HTTP callers map it to 429.
var ErrQueueSaturated = errors.New("trigger queue saturated")

// ErrCoordinatorStopped is returned for triggers submitted after shutdown.
var ErrCoordinatorStopped = errors.New("coordinator stopped")

// Coordinator owns the per-account poll schedule. It merges three trigger
// sources (the interval scheduler, push notifications, forced polls) into a
// single bounded channel and enforces the minimum poll spacing per account.
type Coordinator struct {
	cfg      *config.SourceConfig
	accounts *services.AccountService
	settings *services.SettingService
	metrics  *metrics.Metrics
	logger   *slog.Logger

	triggers chan models.PollTrigger

	mu       sync.Mutex
	lastPoll map[string]time.Time // last trigger emission or completed poll
	penalty  map[string]time.Time // next-eligible after an upstream rate limit
	stopped  bool

	stopCh   chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
}

// NewCoordinator creates a Coordinator. Triggers flow until Stop is called.
func NewCoordinator(cfg *config.SourceConfig, accounts *services.AccountService, settings *services.SettingService, m *metrics.Metrics) *Coordinator {
	return &Coordinator{
		cfg:      cfg,
		accounts: accounts,
		settings: settings,
		metrics:  m,
		logger:   slog.Default().With("component", "coordinator"),
		triggers: make(chan models.PollTrigger, cfg.TriggerQueueSize),
		lastPoll: make(map[string]time.Time),
		penalty:  make(map[string]time.Time),
		stopCh:   make(chan struct{}),
	}
}

// Triggers is the channel the pipeline consumes. Closed on Stop.
func (c *Coordinator) Triggers() <-chan models.PollTrigger {
	return c.triggers
}

// Start launches the interval scheduler.
func (c *Coordinator) Start() {
	c.wg.Add(1)
	go c.run()
	c.logger.Info("Coordinator started",
		"poll_interval", c.cfg.PollInterval,
		"min_poll_spacing", c.cfg.MinPollSpacing)
}

// Stop halts the scheduler, rejects further submissions, and closes the
// trigger channel so the pipeline can drain and exit.
func (c *Coordinator) Stop() {
	c.stopOnce.Do(func() {
		close(c.stopCh)
		c.wg.Wait()

		// The stopped flag and the channel close flip under the same lock
		// the submitters hold across their sends, so no submission can slip
		// between the stopped check and a send on a closed channel.
		c.mu.Lock()
		c.stopped = true
		close(c.triggers)
		c.mu.Unlock()

		c.logger.Info("Coordinator stopped")
	})
}

func (c *Coordinator) run() {
	defer c.wg.Done()

	// Jitter the first sweep so replicas restarted together don't stampede.
	select {
	case <-time.After(time.Duration(rand.Int63n(int64(sweepInterval)))):
	case <-c.stopCh:
		return
	}

	ticker := time.NewTicker(sweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-c.stopCh:
			return
		case <-ticker.C:
			c.sweep()
		}
	}
}

// sweep emits a scheduled trigger for every enabled account whose poll
// interval has elapsed. The interval is a runtime setting, re-read each sweep.
func (c *Coordinator) sweep() {
	defer func() {
		if r := recover(); r != nil {
			c.logger.Error("Scheduler sweep panicked", "panic", r)
		}
	}()

	ctx, cancel := context.WithTimeout(context.Background(), sweepInterval)
	defer cancel()

	interval := c.cfg.PollInterval
	if snap, err := c.settings.Snapshot(ctx); err != nil {
		c.logger.Warn("Settings snapshot failed, using configured poll interval", "error", err)
	} else {
		interval = snap.PollInterval
	}

	accounts, err := c.accounts.Monitored(ctx)
	if err != nil {
		c.logger.Error("Failed to list monitored accounts", "error", err)
		return
	}

	now := time.Now()
	for _, acc := range accounts {
		c.mu.Lock()
		last, seen := c.lastPoll[acc.ID]
		if !seen && acc.LastPolledAt != nil {
			last = *acc.LastPolledAt
			c.lastPoll[acc.ID] = last
		}
		due := now.Sub(last) >= interval // zero last means never polled
		if until, penalized := c.penalty[acc.ID]; penalized {
			if now.Before(until) {
				due = false
			} else {
				delete(c.penalty, acc.ID)
			}
		}
		if due {
			c.lastPoll[acc.ID] = now
		}
		c.mu.Unlock()

		if !due {
			continue
		}

		select {
		case c.triggers <- models.PollTrigger{Account: acc.ID, Reason: models.TriggerScheduled}:
		default:
			// Next sweep will retry; losing a scheduled tick is harmless.
			c.metrics.TriggersDropped.Inc()
			c.logger.Warn("Trigger queue full, dropping scheduled poll", "account", acc.ID)
		}
	}
}

// SubmitPush handles an authenticated push notification. Pushes landing
// within the minimum poll spacing of the account's last poll are coalesced
// into the next scheduled poll. Returns coalesced=true in that case.
func (c *Coordinator) SubmitPush(account, hintPostID string) (coalesced bool, err error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.stopped {
		return false, ErrCoordinatorStopped
	}
	if last, ok := c.lastPoll[account]; ok && time.Since(last) < c.cfg.MinPollSpacing {
		c.metrics.PushesCoalesced.Inc()
		return true, nil
	}

	// The non-blocking send stays under the lock so Stop cannot close the
	// channel between the stopped check and the send.
	select {
	case c.triggers <- models.PollTrigger{Account: account, Reason: models.TriggerPush, HintPostID: hintPostID}:
		c.lastPoll[account] = time.Now()
		return false, nil
	default:
		return false, ErrQueueSaturated
	}
}

// ForcePoll enqueues an operator-initiated poll, bypassing coalescing.
func (c *Coordinator) ForcePoll(account string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.stopped {
		return ErrCoordinatorStopped
	}

	select {
	case c.triggers <- models.PollTrigger{Account: account, Reason: models.TriggerForced}:
		c.lastPoll[account] = time.Now()
		return nil
	default:
		return ErrQueueSaturated
	}
}

// NotePolled records a completed poll so spacing is measured from completion,
// not emission.
func (c *Coordinator) NotePolled(account string, at time.Time) {
	c.mu.Lock()
	c.lastPoll[account] = at
	c.mu.Unlock()
}

// Penalize delays the account's next poll after an upstream rate limit.
// A zero retryAfter falls back to the minimum poll spacing.
func (c *Coordinator) Penalize(account string, retryAfter time.Duration) {
	if retryAfter <= 0 {
		retryAfter = c.cfg.MinPollSpacing
	}
	c.mu.Lock()
	c.penalty[account] = time.Now().Add(retryAfter)
	c.mu.Unlock()
	c.logger.Warn("Account polling penalized", "account", account, "retry_after", retryAfter)
}
