package queue

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/signalhouse/postwatch/pkg/analyzer"
	"github.com/signalhouse/postwatch/pkg/config"
	"github.com/signalhouse/postwatch/pkg/metrics"
	"github.com/signalhouse/postwatch/pkg/rategov"
	"github.com/signalhouse/postwatch/pkg/services"
)

// costGateTTL is how long a cost-ceiling check result is cached. The
// ceiling is a soft brake; a few extra analyses near the edge are fine.
const costGateTTL = 15 * time.Second

// AnalysisPool manages the LLM analysis workers.
type AnalysisPool struct {
	podID    string
	cfg      *config.AnalysisConfig
	posts    *services.PostService
	settings *services.SettingService
	llm      analyzer.Analyzer
	governor *rategov.Governor
	metrics  *metrics.Metrics
	workers  []*AnalysisWorker
	started  bool

	gate costGate
}

// costGate caches the daily-cost-ceiling decision across workers.
type costGate struct {
	mu        sync.Mutex
	checkedAt time.Time
	saturated bool
}

// NewAnalysisPool creates the pool; Start launches the workers.
func NewAnalysisPool(podID string, cfg *config.AnalysisConfig, posts *services.PostService,
	settings *services.SettingService, llm analyzer.Analyzer, governor *rategov.Governor,
	m *metrics.Metrics) *AnalysisPool {
	return &AnalysisPool{
		podID:    podID,
		cfg:      cfg,
		posts:    posts,
		settings: settings,
		llm:      llm,
		governor: governor,
		metrics:  m,
		workers:  make([]*AnalysisWorker, 0, cfg.WorkerCount),
	}
}

// Start spawns the worker goroutines. Safe to call once.
func (p *AnalysisPool) Start() {
	if p.started {
		slog.Warn("Analysis pool already started, ignoring duplicate Start call", "pod_id", p.podID)
		return
	}
	p.started = true

	slog.Info("Starting analysis pool", "pod_id", p.podID, "worker_count", p.cfg.WorkerCount)
	for i := 0; i < p.cfg.WorkerCount; i++ {
		w := newAnalysisWorker(fmt.Sprintf("%s-analysis-%d", p.podID, i), p)
		p.workers = append(p.workers, w)
		w.Start()
	}
}

// Stop signals all workers and waits for in-flight analyses to finish.
func (p *AnalysisPool) Stop() {
	slog.Info("Stopping analysis pool")
	for _, w := range p.workers {
		w.Stop()
	}
	slog.Info("Analysis pool stopped")
}

// Health returns the pool's health snapshot.
func (p *AnalysisPool) Health() *PoolHealth {
	depth, _, err := p.posts.QueueDepths(context.Background())

	stats := make([]WorkerHealth, len(p.workers))
	active := 0
	for i, w := range p.workers {
		stats[i] = w.Health()
		if stats[i].Status == WorkerStatusWorking {
			active++
		}
	}

	h := &PoolHealth{
		Name:          "analysis",
		PodID:         p.podID,
		ActiveWorkers: active,
		TotalWorkers:  len(p.workers),
		QueueDepth:    depth,
		DBReachable:   err == nil,
		WorkerStats:   stats,
	}
	if err != nil {
		h.DBError = err.Error()
	}
	return h
}

// ceilingReached reports whether the daily spend ceiling is blocking new
// claims. The check is cached briefly and shared by all workers.
func (p *AnalysisPool) ceilingReached(ctx context.Context) bool {
	if p.cfg.DailyCostCeiling <= 0 {
		return false
	}

	p.gate.mu.Lock()
	defer p.gate.mu.Unlock()

	if time.Since(p.gate.checkedAt) < costGateTTL {
		return p.gate.saturated
	}

	now := time.Now()
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	spent, err := p.posts.SumCostSince(ctx, midnight)
	if err != nil {
		slog.Warn("Cost ceiling check failed, allowing claims", "error", err)
		return false
	}

	p.gate.checkedAt = now
	p.gate.saturated = spent >= p.cfg.DailyCostCeiling
	p.metrics.DailyCost.Set(spent)
	if p.gate.saturated {
		p.metrics.CostSaturated.Set(1)
		slog.Warn("Daily cost ceiling reached, pausing analysis claims",
			"spent", spent, "ceiling", p.cfg.DailyCostCeiling)
	} else {
		p.metrics.CostSaturated.Set(0)
	}
	return p.gate.saturated
}
