package ingest

import (
	"context"
	"errors"
	"log/slog"
	"sort"
	"strconv"
	"sync"
	"time"

	"github.com/signalhouse/postwatch/ent"
	"github.com/signalhouse/postwatch/pkg/config"
	"github.com/signalhouse/postwatch/pkg/metrics"
	"github.com/signalhouse/postwatch/pkg/models"
	"github.com/signalhouse/postwatch/pkg/rategov"
	"github.com/signalhouse/postwatch/pkg/services"
	"github.com/signalhouse/postwatch/pkg/source"
)

// dbBudget is the slice of a trigger's deadline reserved for persistence
// after the fetch returns.
const dbBudget = 15 * time.Second

// Pipeline consumes poll triggers, fetches new posts from the source, and
// persists them. One goroutine; the source is the bottleneck, not this loop.
type Pipeline struct {
	cfg      *config.SourceConfig
	source   source.Client
	posts    *services.PostService
	accounts *services.AccountService
	coord    *Coordinator
	governor *rategov.Governor
	metrics  *metrics.Metrics
	logger   *slog.Logger

	wg sync.WaitGroup
}

// NewPipeline creates a Pipeline bound to the coordinator's trigger channel.
func NewPipeline(cfg *config.SourceConfig, src source.Client, posts *services.PostService,
	accounts *services.AccountService, coord *Coordinator, governor *rategov.Governor,
	m *metrics.Metrics) *Pipeline {
	return &Pipeline{
		cfg:      cfg,
		source:   src,
		posts:    posts,
		accounts: accounts,
		coord:    coord,
		governor: governor,
		metrics:  m,
		logger:   slog.Default().With("component", "ingest-pipeline"),
	}
}

// Start launches the trigger consumer.
func (p *Pipeline) Start() {
	p.wg.Add(1)
	go p.run()
	p.logger.Info("Ingest pipeline started")
}

// Stop waits for the consumer to drain. The coordinator must be stopped
// first; its channel close is what ends the loop.
func (p *Pipeline) Stop() {
	p.wg.Wait()
	p.logger.Info("Ingest pipeline stopped")
}

func (p *Pipeline) run() {
	defer p.wg.Done()
	for trigger := range p.coord.Triggers() {
		p.safeProcess(trigger)
	}
}

// safeProcess recovers a panicking poll so one poisoned trigger cannot kill
// the sole consumer and wedge ingestion for good.
func (p *Pipeline) safeProcess(trigger models.PollTrigger) {
	defer func() {
		if r := recover(); r != nil {
			p.logger.Error("Poll processing panicked", "account", trigger.Account, "panic", r)
		}
	}()
	p.process(trigger)
}

func (p *Pipeline) process(trigger models.PollTrigger) {
	ctx, cancel := context.WithTimeout(context.Background(), p.cfg.RequestTimeout+dbBudget)
	defer cancel()

	logger := p.logger.With("account", trigger.Account, "reason", trigger.Reason)

	acc, err := p.accounts.Get(ctx, trigger.Account)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			logger.Warn("Dropping trigger for unknown account")
		} else {
			logger.Error("Failed to load account", "error", err)
		}
		return
	}
	if !acc.Enabled && trigger.Reason != models.TriggerForced {
		logger.Debug("Dropping trigger for disabled account")
		return
	}

	if err := p.governor.Acquire(ctx, source.Bucket, 1); err != nil {
		var denied *rategov.DeniedError
		if errors.As(err, &denied) {
			p.coord.Penalize(trigger.Account, denied.RetryAfter)
		}
		logger.Warn("Source rate bucket exhausted, deferring poll", "error", err)
		return
	}

	fetched, err := p.source.FetchSince(ctx, acc.ID, acc.LastSeenPostID, p.cfg.MaxFetch)
	if err != nil {
		p.handleFetchError(logger, trigger.Account, err)
		return
	}

	inserted, lastSeen := p.persist(ctx, logger, acc, fetched)

	// The watermark only moves once every post in the window is stored, so
	// a partial failure refetches instead of losing posts.
	now := time.Now()
	if err := p.accounts.MarkPolled(ctx, acc.ID, lastSeen, now); err != nil {
		logger.Error("Failed to record poll completion", "error", err)
		return
	}
	p.coord.NotePolled(acc.ID, now)

	if inserted > 0 {
		logger.Info("Ingested posts", "inserted", inserted, "fetched", len(fetched), "last_seen", lastSeen)
	}
}

// persist stores the fetched posts oldest first. Returns the number of new
// rows and the highest post ID safe to use as the next watermark; an empty
// ID means the watermark must not move.
func (p *Pipeline) persist(ctx context.Context, logger *slog.Logger, acc *ent.Account, fetched []models.SourcePost) (int, string) {
	firstSight := acc.LastSeenPostID == "" && acc.LastPolledAt == nil
	cutoff := time.Now().Add(-time.Duration(p.cfg.HistoricalHours) * time.Hour)

	posts := make([]models.SourcePost, 0, len(fetched))
	lastSeen := ""
	for _, sp := range fetched {
		// Everything the source returned counts toward the watermark,
		// including posts filtered below; they are older, not newer.
		if comparePostIDs(sp.ID, lastSeen) > 0 {
			lastSeen = sp.ID
		}
		if firstSight && sp.CreatedAt.Before(cutoff) {
			continue
		}
		if !firstSight && !p.cfg.AllowBackdatedPosts &&
			acc.LastSeenPostID != "" && comparePostIDs(sp.ID, acc.LastSeenPostID) <= 0 {
			continue
		}
		posts = append(posts, sp)
	}

	// Oldest first so analysis and dispatch see source order.
	sort.Slice(posts, func(i, j int) bool {
		if posts[i].CreatedAt.Equal(posts[j].CreatedAt) {
			return comparePostIDs(posts[i].ID, posts[j].ID) < 0
		}
		return posts[i].CreatedAt.Before(posts[j].CreatedAt)
	})

	inserted := 0
	for _, sp := range posts {
		isNew, err := p.posts.Upsert(ctx, sp)
		if err != nil {
			logger.Error("Failed to persist post, keeping watermark for refetch",
				"post_id", sp.ID, "error", err)
			return inserted, ""
		}
		if isNew {
			inserted++
			p.metrics.PostsIngested.Inc()
		}
	}
	return inserted, lastSeen
}

func (p *Pipeline) handleFetchError(logger *slog.Logger, account string, err error) {
	kind := models.KindOf(err)
	switch kind {
	case models.KindUpstreamRateLimit:
		p.coord.Penalize(account, models.RetryAfterOf(err))
		logger.Warn("Source rate limited", "error", err)
	case models.KindTransientNetwork, models.KindInternalTransient:
		// Watermark untouched; the next scheduled poll refetches the window.
		logger.Warn("Transient fetch failure", "kind", kind, "error", err)
	default:
		logger.Error("Fetch rejected by source", "kind", kind, "error", err)
	}
}

// comparePostIDs orders source post IDs. Snowflake-style numeric IDs compare
// numerically; anything else falls back to length-then-lexicographic, which
// matches numeric order for zero-padded schemes too.
func comparePostIDs(a, b string) int {
	if a == b {
		return 0
	}
	if b == "" {
		return 1
	}
	if a == "" {
		return -1
	}
	na, errA := strconv.ParseUint(a, 10, 64)
	nb, errB := strconv.ParseUint(b, 10, 64)
	if errA == nil && errB == nil {
		switch {
		case na < nb:
			return -1
		case na > nb:
			return 1
		default:
			return 0
		}
	}
	if len(a) != len(b) {
		if len(a) < len(b) {
			return -1
		}
		return 1
	}
	if a < b {
		return -1
	}
	return 1
}
