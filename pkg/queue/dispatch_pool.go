package queue

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/signalhouse/postwatch/pkg/config"
	"github.com/signalhouse/postwatch/pkg/dispatch"
	"github.com/signalhouse/postwatch/pkg/metrics"
	"github.com/signalhouse/postwatch/pkg/rategov"
	"github.com/signalhouse/postwatch/pkg/services"
)

// DispatchPool manages the outbound message workers. One worker keeps
// total delivery order; more workers only make sense with sharded
// destinations.
type DispatchPool struct {
	podID      string
	cfg        *config.DispatchConfig
	posts      *services.PostService
	settings   *services.SettingService
	dispatcher dispatch.Dispatcher
	governor   *rategov.Governor
	metrics    *metrics.Metrics
	workers    []*DispatchWorker
	started    bool
}

// NewDispatchPool creates the pool; Start launches the workers.
func NewDispatchPool(podID string, cfg *config.DispatchConfig, posts *services.PostService,
	settings *services.SettingService, dispatcher dispatch.Dispatcher, governor *rategov.Governor,
	m *metrics.Metrics) *DispatchPool {
	return &DispatchPool{
		podID:      podID,
		cfg:        cfg,
		posts:      posts,
		settings:   settings,
		dispatcher: dispatcher,
		governor:   governor,
		metrics:    m,
		workers:    make([]*DispatchWorker, 0, cfg.WorkerCount),
	}
}

// Start spawns the worker goroutines. Safe to call once.
func (p *DispatchPool) Start() {
	if p.started {
		slog.Warn("Dispatch pool already started, ignoring duplicate Start call", "pod_id", p.podID)
		return
	}
	p.started = true

	slog.Info("Starting dispatch pool",
		"pod_id", p.podID,
		"worker_count", p.cfg.WorkerCount,
		"channel", p.cfg.Channel)
	for i := 0; i < p.cfg.WorkerCount; i++ {
		w := newDispatchWorker(fmt.Sprintf("%s-dispatch-%d", p.podID, i), p)
		p.workers = append(p.workers, w)
		w.Start()
	}
}

// Stop signals all workers and waits for in-flight sends to finish.
func (p *DispatchPool) Stop() {
	slog.Info("Stopping dispatch pool")
	for _, w := range p.workers {
		w.Stop()
	}
	slog.Info("Dispatch pool stopped")
}

// Health returns the pool's health snapshot.
func (p *DispatchPool) Health() *PoolHealth {
	_, depth, err := p.posts.QueueDepths(context.Background())

	stats := make([]WorkerHealth, len(p.workers))
	active := 0
	for i, w := range p.workers {
		stats[i] = w.Health()
		if stats[i].Status == WorkerStatusWorking {
			active++
		}
	}

	h := &PoolHealth{
		Name:          "dispatch",
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
