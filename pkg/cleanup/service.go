// Package cleanup provides data retention enforcement.
package cleanup

import (
	"context"
	"log/slog"
	"time"

	"github.com/signalhouse/postwatch/pkg/config"
	"github.com/signalhouse/postwatch/pkg/services"
)

// Service periodically deletes terminal posts (dispatched or failed) older
// than the retention window; their analyses and dispatch records cascade.
// Idempotent and safe to run from multiple pods.
type Service struct {
	config      *config.RetentionConfig
	postService *services.PostService

	cancel context.CancelFunc
	done   chan struct{}
}

// NewService creates a new cleanup service.
func NewService(cfg *config.RetentionConfig, postService *services.PostService) *Service {
	return &Service{
		config:      cfg,
		postService: postService,
	}
}

// Start launches the background cleanup loop.
func (s *Service) Start(ctx context.Context) {
	if s.cancel != nil {
		return
	}
	ctx, s.cancel = context.WithCancel(ctx)
	s.done = make(chan struct{})

	go s.run(ctx)

	slog.Info("Cleanup service started",
		"post_retention_days", s.config.PostRetentionDays,
		"interval", s.config.CleanupInterval)
}

// Stop signals the cleanup loop to exit and waits for it to finish.
func (s *Service) Stop() {
	if s.cancel == nil {
		return
	}
	s.cancel()
	<-s.done
	slog.Info("Cleanup service stopped")
}

func (s *Service) run(ctx context.Context) {
	defer close(s.done)

	s.deleteExpiredPosts()

	ticker := time.NewTicker(s.config.CleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.deleteExpiredPosts()
		}
	}
}

func (s *Service) deleteExpiredPosts() {
	cutoff := time.Now().AddDate(0, 0, -s.config.PostRetentionDays)
	count, err := s.postService.DeleteTerminalBefore(context.Background(), cutoff)
	if err != nil {
		slog.Error("Retention: delete terminal posts failed", "error", err)
		return
	}
	if count > 0 {
		slog.Info("Retention: deleted terminal posts", "count", count)
	}
}
