package queue

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/signalhouse/postwatch/pkg/config"
	"github.com/signalhouse/postwatch/pkg/services"
)

// Reaper periodically releases claims whose pod stopped making progress,
// returning the posts to their queues. All pods run it independently;
// the release is idempotent.
type Reaper struct {
	posts *services.PostService
	cfg   *config.RetentionConfig

	stopCh   chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup

	mu        sync.Mutex
	lastScan  time.Time
	recovered int
}

// NewReaper creates a Reaper; Start launches the scan loop.
func NewReaper(posts *services.PostService, cfg *config.RetentionConfig) *Reaper {
	return &Reaper{
		posts:  posts,
		cfg:    cfg,
		stopCh: make(chan struct{}),
	}
}

// Start launches the periodic scan.
func (r *Reaper) Start() {
	r.wg.Add(1)
	go r.run()
	slog.Info("Stale claim reaper started",
		"scan_interval", r.cfg.OrphanScanInterval,
		"threshold", r.cfg.StaleClaimThreshold)
}

// Stop halts the scan loop. Safe to call multiple times.
func (r *Reaper) Stop() {
	r.stopOnce.Do(func() { close(r.stopCh) })
	r.wg.Wait()
	slog.Info("Stale claim reaper stopped")
}

// Stats returns the last scan time and the total claims recovered.
func (r *Reaper) Stats() (lastScan time.Time, recovered int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.lastScan, r.recovered
}

func (r *Reaper) run() {
	defer r.wg.Done()

	ticker := time.NewTicker(r.cfg.OrphanScanInterval)
	defer ticker.Stop()

	for {
		select {
		case <-r.stopCh:
			return
		case <-ticker.C:
			r.scan()
		}
	}
}

func (r *Reaper) scan() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	released, err := r.posts.ReleaseStaleClaims(ctx, r.cfg.StaleClaimThreshold)
	if err != nil {
		slog.Error("Stale claim scan failed", "error", err)
		return
	}
	if released > 0 {
		slog.Warn("Released stale claims", "count", released)
	}

	r.mu.Lock()
	r.lastScan = time.Now()
	r.recovered += released
	r.mu.Unlock()
}
