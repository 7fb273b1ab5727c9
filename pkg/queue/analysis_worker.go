package queue

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/signalhouse/postwatch/ent"
	"github.com/signalhouse/postwatch/pkg/analyzer"
	"github.com/signalhouse/postwatch/pkg/models"
	"github.com/signalhouse/postwatch/pkg/rategov"
	"github.com/signalhouse/postwatch/pkg/services"
)

// analysisRetryBase is the first retry delay after a transient analysis
// failure; doubled per attempt up to analysisRetryMax.
const (
	analysisRetryBase = 30 * time.Second
	analysisRetryMax  = 10 * time.Minute
)

// AnalysisWorker claims posts from the new queue, runs them through the
// LLM, and releases them to analyzed or back to new.
type AnalysisWorker struct {
	id       string
	pool     *AnalysisPool
	stopCh   chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup

	mu            sync.RWMutex
	status        WorkerStatus
	currentPostID string
	processed     int
	lastActivity  time.Time
}

func newAnalysisWorker(id string, pool *AnalysisPool) *AnalysisWorker {
	return &AnalysisWorker{
		id:           id,
		pool:         pool,
		stopCh:       make(chan struct{}),
		status:       WorkerStatusIdle,
		lastActivity: time.Now(),
	}
}

// Start begins the polling loop in a goroutine.
func (w *AnalysisWorker) Start() {
	w.wg.Add(1)
	go w.run()
}

// Stop signals the worker and waits for the current post to finish.
// Safe to call multiple times.
func (w *AnalysisWorker) Stop() {
	w.stopOnce.Do(func() { close(w.stopCh) })
	w.wg.Wait()
}

// Health returns the worker's health snapshot.
func (w *AnalysisWorker) Health() WorkerHealth {
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

func (w *AnalysisWorker) run() {
	defer w.wg.Done()

	log := slog.With("worker_id", w.id)
	log.Info("Analysis worker started")

	cfg := w.pool.cfg
	failures := 0
	for {
		select {
		case <-w.stopCh:
			log.Info("Analysis worker shutting down")
			return
		default:
			err := w.safePoll()
			switch {
			case err == nil:
				failures = 0
			case errors.Is(err, ErrNoWorkAvailable) || errors.Is(err, ErrCostCeilingReached):
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
func (w *AnalysisWorker) safePoll() (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("worker panic: %v", r)
		}
	}()
	return w.pollAndProcess()
}

func (w *AnalysisWorker) sleep(d time.Duration) {
	select {
	case <-w.stopCh:
	case <-time.After(d):
	}
}

func (w *AnalysisWorker) pollAndProcess() error {
	ctx := context.Background()

	if w.pool.ceilingReached(ctx) {
		return ErrCostCeilingReached
	}

	claimed, err := w.pool.posts.ClaimForAnalysis(ctx, w.pool.cfg.BatchSize)
	if err != nil {
		return err
	}
	if len(claimed) == 0 {
		return ErrNoWorkAvailable
	}

	for _, p := range claimed {
		w.setStatus(WorkerStatusWorking, p.ID)
		w.processPost(p)
		w.setStatus(WorkerStatusIdle, "")

		w.mu.Lock()
		w.processed++
		w.mu.Unlock()
	}
	return nil
}

// processPost runs one claimed post through the analyzer and always
// releases the claim, to a terminal or retryable state.
func (w *AnalysisWorker) processPost(p *ent.Post) {
	log := slog.With("worker_id", w.id, "post_id", p.ID, "attempt", p.AnalysisAttempts)
	cfg := w.pool.cfg

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Timeout)
	defer cancel()

	snap, err := w.pool.settings.Snapshot(ctx)
	if err != nil {
		w.release(p, "settings snapshot failed: "+err.Error(), models.KindInternalTransient, 0)
		return
	}

	prompt, err := analyzer.RenderPrompt(snap.Prompt, p.Text, p.AccountUsername, p.CreatedAt)
	if err != nil {
		// A broken template is an operator mistake; retryable so fixing
		// the setting recovers queued posts.
		log.Warn("Prompt template failed", "error", err)
		w.release(p, err.Error(), models.KindInternalTransient, 0)
		return
	}

	if err := w.pool.governor.Acquire(ctx, analyzer.Bucket, 1); err != nil {
		var denied *rategov.DeniedError
		retryAfter := time.Duration(0)
		if errors.As(err, &denied) {
			retryAfter = denied.RetryAfter
		}
		w.release(p, "analyzer rate bucket exhausted", models.KindUpstreamRateLimit, retryAfter)
		return
	}

	result, err := w.pool.llm.Analyze(ctx, analyzer.Request{
		Model:        snap.Model,
		SystemPrompt: snap.SystemPrompt,
		UserPrompt:   prompt,
		Params:       snap.Params,
	})
	if err != nil {
		kind := models.KindOf(err)
		log.Warn("Analysis failed", "kind", kind, "error", err)
		w.pool.metrics.AnalysesFailed.WithLabelValues(string(kind)).Inc()
		w.release(p, err.Error(), kind, models.RetryAfterOf(err))
		return
	}

	err = w.pool.posts.CompleteAnalysis(context.Background(), p.ID, services.AnalysisRecord{
		Model:          snap.Model,
		PromptSnapshot: prompt,
		ParamsSnapshot: snap.Params,
		OutputText:     result.Text,
		TokensUsed:     result.TokensUsed,
		CostEstimate:   result.CostEstimate,
		Elapsed:        result.Elapsed,
	})
	if err != nil {
		log.Error("Failed to record analysis", "error", err)
		return
	}

	w.pool.metrics.AnalysesCompleted.Inc()
	log.Info("Post analyzed",
		"model", snap.Model,
		"tokens", result.TokensUsed,
		"elapsed_ms", result.Elapsed.Milliseconds())
}

// release returns a claimed post to the queue or fails it permanently,
// depending on the error kind and the attempt budget.
func (w *AnalysisWorker) release(p *ent.Post, reason string, kind models.ErrorKind, retryAfterHint time.Duration) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	retryable := kind.Retryable() && p.AnalysisAttempts < w.pool.cfg.MaxRetries

	var retryAt time.Time
	if retryable {
		delay := retryAfterHint
		if delay <= 0 {
			delay = retryBackoff(analysisRetryBase, analysisRetryMax, p.AnalysisAttempts)
		}
		retryAt = time.Now().Add(delay)
	}

	if err := w.pool.posts.FailAnalysis(ctx, p.ID, reason, retryable, retryAt); err != nil {
		slog.Error("Failed to release analysis claim", "post_id", p.ID, "error", err)
	}
}

func (w *AnalysisWorker) setStatus(status WorkerStatus, postID string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.status = status
	w.currentPostID = postID
	w.lastActivity = time.Now()
}
