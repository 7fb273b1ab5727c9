// Package api exposes the HTTP surface: push intake, account and post
// management, runtime settings, health, and metrics.
package api

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/signalhouse/postwatch/pkg/config"
	"github.com/signalhouse/postwatch/pkg/database"
	"github.com/signalhouse/postwatch/pkg/ingest"
	"github.com/signalhouse/postwatch/pkg/metrics"
	"github.com/signalhouse/postwatch/pkg/queue"
	"github.com/signalhouse/postwatch/pkg/services"
)

// PoolHealthReporter is the slice of a worker pool the health endpoint needs.
type PoolHealthReporter interface {
	Health() *queue.PoolHealth
}

// Server wires the HTTP handlers to the service layer.
type Server struct {
	cfg      *config.Config
	db       *database.Client
	accounts *services.AccountService
	settings *services.SettingService
	stats    *services.StatsService
	coord    *ingest.Coordinator
	metrics  *metrics.Metrics
	podID    string
	started  time.Time

	// Pools may be nil when the corresponding stage is disabled.
	analysisPool PoolHealthReporter
	dispatchPool PoolHealthReporter

	httpServer *http.Server
}

// NewServer creates the API server.
func NewServer(cfg *config.Config, db *database.Client, accounts *services.AccountService,
	settings *services.SettingService, stats *services.StatsService, coord *ingest.Coordinator,
	m *metrics.Metrics, podID string) *Server {
	return &Server{
		cfg:      cfg,
		db:       db,
		accounts: accounts,
		settings: settings,
		stats:    stats,
		coord:    coord,
		metrics:  m,
		podID:    podID,
		started:  time.Now(),
	}
}

// SetPools attaches the worker pools for health reporting. Called after
// construction because the pools start later in the boot sequence.
func (s *Server) SetPools(analysis, dispatch PoolHealthReporter) {
	s.analysisPool = analysis
	s.dispatchPool = dispatch
}

// Router builds the gin engine with all routes registered.
func (s *Server) Router() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery(), requestLogger())

	r.GET("/health", s.healthHandler)
	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(s.metrics.Registry, promhttp.HandlerOpts{})))

	// Ingest intake lives outside /api/v1; push producers and operators
	// address it as a webhook, not as part of the read API.
	ing := r.Group("/ingest")
	if s.cfg.Push != nil && s.cfg.Push.SharedSecret != "" {
		ing.POST("/push", verifySignature(s.cfg.Push.SharedSecret, s.metrics), s.pushHandler)
	} else {
		ing.POST("/push", s.pushDisabledHandler)
	}
	ing.POST("/poll/:username/force", s.forcePollHandler)

	v1 := r.Group("/api/v1")
	{
		v1.POST("/accounts", s.createAccountHandler)
		v1.GET("/accounts", s.listAccountsHandler)
		v1.GET("/accounts/:username", s.getAccountHandler)
		v1.PATCH("/accounts/:username", s.updateAccountHandler)
		v1.DELETE("/accounts/:username", s.deleteAccountHandler)

		v1.GET("/posts", s.listPostsHandler)
		v1.GET("/posts/:id", s.getPostHandler)

		v1.GET("/settings", s.listSettingsHandler)
		v1.PUT("/settings/:key", s.putSettingHandler)

		v1.GET("/stats/overview", s.overviewHandler)
	}

	return r
}

// Start runs the HTTP server until Shutdown.
func (s *Server) Start() error {
	s.httpServer = &http.Server{
		Addr:              fmt.Sprintf(":%s", s.cfg.HTTPPort),
		Handler:           s.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	slog.Info("HTTP server listening", "addr", s.httpServer.Addr)
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown drains in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer == nil {
		return nil
	}
	return s.httpServer.Shutdown(ctx)
}

// requestLogger logs one line per request.
func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		slog.Info("HTTP request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration_ms", time.Since(start).Milliseconds())
	}
}
