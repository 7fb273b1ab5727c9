package queue

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/signalhouse/postwatch/ent"
	"github.com/signalhouse/postwatch/pkg/dispatch"
	"github.com/signalhouse/postwatch/pkg/models"
	"github.com/signalhouse/postwatch/pkg/rategov"
	"github.com/signalhouse/postwatch/pkg/services"
)

// dispatchRetryBase is the first retry delay after a transient send
// failure; doubled per attempt up to the configured max backoff.
const dispatchRetryBase = 10 * time.Second

// DispatchWorker claims analyzed posts, renders their messages, and sends
// them to the chat destination.
type DispatchWorker struct {
	id       string
	pool     *DispatchPool
	stopCh   chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup

	mu            sync.RWMutex
	status        WorkerStatus
	currentPostID string
	processed     int
	lastActivity  time.Time
}

func newDispatchWorker(id string, pool *DispatchPool) *DispatchWorker {
	return &DispatchWorker{
		id:           id,
		pool:         pool,
		stopCh:       make(chan struct{}),
		status:       WorkerStatusIdle,
		lastActivity: time.Now(),
	}
}

// Start begins the polling loop in a goroutine.
func (w *DispatchWorker) Start() {
	w.wg.Add(1)
	go w.run()
}

// Stop signals the worker and waits for the current send to finish.
// Safe to call multiple times.
func (w *DispatchWorker) Stop() {
	w.stopOnce.Do(func() { close(w.stopCh) })
	w.wg.Wait()
}

// Health returns the worker's health snapshot.
func (w *DispatchWorker) Health() WorkerHealth {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return WorkerHealth{
		ID:            w.id,
		Status:        w.status,
		CurrentPostID: w.currentPostID,
		Processed:     w.processed,
		LastActivity:  w.lastActivity,
	}
}

func (w *DispatchWorker) run() {
	defer w.wg.Done()

	log := slog.With("worker_id", w.id)
	log.Info("Dispatch worker started")

	cfg := w.pool.cfg
	failures := 0
	for {
		select {
		case <-w.stopCh:
			log.Info("Dispatch worker shutting down")
			return
		default:
			err := w.safePoll()
			switch {
			case err == nil:
				failures = 0
			case errors.Is(err, ErrNoWorkAvailable):
				failures = 0
				w.sleep(pollInterval(cfg.PollInterval, cfg.PollIntervalJitter))
			default:
				failures++
				log.Error("Error processing claim", "failures", failures, "error", err)
				w.sleep(workerRestartDelay(failures))
			}
		}
	}
}

// safePoll runs one poll cycle, converting a panic into an error so a bad
// post or a dependency bug cannot kill the worker goroutine.
func (w *DispatchWorker) safePoll() (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("worker panic: %v", r)
		}
	}()
	return w.pollAndProcess()
}

func (w *DispatchWorker) sleep(d time.Duration) {
	select {
	case <-w.stopCh:
	case <-time.After(d):
	}
}

func (w *DispatchWorker) pollAndProcess() error {
	ctx := context.Background()

	// Notifications can be paused at runtime; posts rest at analyzed
	// until re-enabled.
	snap, err := w.pool.settings.Snapshot(ctx)
	if err != nil {
		return err
	}
	if !snap.NotificationsEnabled {
		return ErrNoWorkAvailable
	}

	claimed, err := w.pool.posts.ClaimForDispatch(ctx, 1)
	if err != nil {
		return err
	}
	if len(claimed) == 0 {
		return ErrNoWorkAvailable
	}

	for _, p := range claimed {
		w.setStatus(WorkerStatusWorking, p.ID)
		w.processPost(p, snap)
		w.setStatus(WorkerStatusIdle, "")

		w.mu.Lock()
		w.processed++
		w.mu.Unlock()
	}
	return nil
}

// processPost renders and sends one claimed post, always releasing the
// claim to dispatched, back to analyzed, or failed.
func (w *DispatchWorker) processPost(p *ent.Post, snap *services.Snapshot) {
	log := slog.With("worker_id", w.id, "post_id", p.ID, "attempt", p.DispatchAttempts)
	cfg := w.pool.cfg

	ctx, cancel := context.WithTimeout(context.Background(), cfg.SendTimeout+30*time.Second)
	defer cancel()

	analysisText := ""
	if a, err := w.pool.posts.AnalysisFor(ctx, p.ID); err == nil {
		analysisText = a.OutputText
	} else if !errors.Is(err, services.ErrNotFound) {
		w.releaseUnsent(p, "analysis lookup failed: "+err.Error(), 0)
		return
	} else if snap.NotifyOnlyAnalyzed {
		// Should not happen: dispatch claims come from analyzed. Treat as
		// a lost analysis row and fail loudly rather than send a bare post.
		w.fail(p, "post has no analysis", models.KindInternalFatal, 0)
		return
	}

	text := dispatch.RenderMessage(dispatch.MessageInput{
		Post:         p,
		AnalysisText: analysisText,
		Markup:       snap.DispatchMarkup,
		Cap:          cfg.MessageCap,
	})

	if err := w.pool.governor.Acquire(ctx, dispatch.Bucket, 1); err != nil {
		var denied *rategov.DeniedError
		retryAfter := time.Duration(0)
		if errors.As(err, &denied) {
			retryAfter = denied.RetryAfter
		}
		w.releaseUnsent(p, "dispatch rate bucket exhausted", retryAfter)
		return
	}

	if err := w.pool.dispatcher.Send(ctx, cfg.Channel, text); err != nil {
		kind := models.KindOf(err)
		log.Warn("Dispatch failed", "kind", kind, "error", err)
		w.pool.metrics.DispatchesFailed.WithLabelValues(string(kind)).Inc()
		w.fail(p, err.Error(), kind, models.RetryAfterOf(err))
		return
	}

	err := w.pool.posts.CompleteDispatch(context.Background(), p.ID, cfg.Channel, p.DispatchAttempts)
	if err != nil {
		log.Error("Failed to record dispatch", "error", err)
		return
	}

	w.pool.metrics.DispatchesSent.Inc()
	log.Info("Post dispatched", "channel", cfg.Channel)
}

// releaseUnsent returns the post to analyzed without recording an attempt;
// nothing reached the destination.
func (w *DispatchWorker) releaseUnsent(p *ent.Post, reason string, retryAfterHint time.Duration) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	delay := retryAfterHint
	if delay <= 0 {
		delay = retryBackoff(dispatchRetryBase, w.pool.cfg.MaxBackoff, p.DispatchAttempts)
	}
	err := w.pool.posts.ReleaseDispatchClaim(ctx, p.ID, reason, time.Now().Add(delay))
	if err != nil {
		slog.Error("Failed to release dispatch claim", "post_id", p.ID, "error", err)
	}
}

// fail records the attempt outcome and releases the claim per the error
// kind and the attempt budget.
func (w *DispatchWorker) fail(p *ent.Post, reason string, kind models.ErrorKind, retryAfterHint time.Duration) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	retryable := kind.Retryable() && p.DispatchAttempts < w.pool.cfg.MaxRetries

	var retryAt time.Time
	if retryable {
		delay := retryAfterHint
		if delay <= 0 {
			delay = retryBackoff(dispatchRetryBase, w.pool.cfg.MaxBackoff, p.DispatchAttempts)
		}
		retryAt = time.Now().Add(delay)
	}

	err := w.pool.posts.FailDispatch(ctx, p.ID, w.pool.cfg.Channel, p.DispatchAttempts, reason, retryable, retryAt)
	if err != nil {
		slog.Error("Failed to record dispatch failure", "post_id", p.ID, "error", err)
	}
}

func (w *DispatchWorker) setStatus(status WorkerStatus, postID string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.status = status
	w.currentPostID = postID
	w.lastActivity = time.Now()
}
