// Postwatch server: polls monitored accounts, analyzes new posts with an
// LLM, and dispatches the results to a chat channel.
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/signalhouse/postwatch/pkg/analyzer"
	"github.com/signalhouse/postwatch/pkg/api"
	"github.com/signalhouse/postwatch/pkg/cleanup"
	"github.com/signalhouse/postwatch/pkg/config"
	"github.com/signalhouse/postwatch/pkg/database"
	"github.com/signalhouse/postwatch/pkg/dispatch"
	"github.com/signalhouse/postwatch/pkg/ingest"
	"github.com/signalhouse/postwatch/pkg/metrics"
	"github.com/signalhouse/postwatch/pkg/queue"
	"github.com/signalhouse/postwatch/pkg/rategov"
	"github.com/signalhouse/postwatch/pkg/services"
	"github.com/signalhouse/postwatch/pkg/source"
	"github.com/signalhouse/postwatch/pkg/supervisor"
	"github.com/signalhouse/postwatch/pkg/version"
)

// Exit codes.
const (
	exitOK          = 0
	exitConfig      = 2 // invalid configuration
	exitStartup     = 3 // could not reach required infrastructure
	exitSupervision = 4 // a component exhausted its restart budget
)

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// resolvePodID determines the pod identifier for multi-replica coordination.
// Priority: POD_ID env > HOSTNAME env > "local"
func resolvePodID() string {
	if id := os.Getenv("POD_ID"); id != "" {
		return id
	}
	if hostname := os.Getenv("HOSTNAME"); hostname != "" {
		return hostname
	}
	return "local"
}

func main() {
	// Parse command-line flags
	configDir := flag.String("config-dir",
		getEnv("CONFIG_DIR", "./deploy/config"),
		"Path to configuration directory")
	flag.Parse()

	// Load .env file from config directory
	envPath := filepath.Join(*configDir, ".env")
	if err := godotenv.Load(envPath); err != nil {
		slog.Warn("Could not load .env file, continuing with existing environment",
			"path", envPath, "error", err)
	} else {
		slog.Info("Loaded environment", "path", envPath)
	}

	podID := resolvePodID()
	ctx := context.Background()

	// 1. Load configuration
	cfg, err := config.LoadFromEnv()
	if err != nil {
		slog.Error("Invalid configuration", "error", err)
		os.Exit(exitConfig)
	}

	slog.Info("Starting postwatch",
		"version", version.Full(),
		"http_port", cfg.HTTPPort,
		"pod_id", podID,
		"poll_interval", cfg.Source.PollInterval)

	// 2. Connect to the database and run migrations
	dbConfig, err := database.LoadConfigFromEnv()
	if err != nil {
		slog.Error("Failed to load database config", "error", err)
		os.Exit(exitConfig)
	}

	dbClient, err := database.NewClient(ctx, dbConfig)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(exitStartup)
	}
	slog.Info("Connected to PostgreSQL database")

	// 3. Build domain services
	accountService := services.NewAccountService(dbClient.Client)
	postService := services.NewPostService(dbClient.Client, podID)
	settingService := services.NewSettingService(dbClient.Client, cfg)
	statsService := services.NewStatsService(dbClient.Client, postService)
	slog.Info("Services initialized")

	// 4. Release claims left over from a previous run of this pod
	if released, err := postService.ReleasePodClaims(ctx, podID); err != nil {
		slog.Error("Failed to release startup claims", "error", err)
		// Non-fatal; the stale claim reaper will pick them up
	} else if released > 0 {
		slog.Warn("Released claims from previous run", "count", released)
	}

	// 5. Register rate buckets
	governor := rategov.New()
	mustRegister := func(name string, bc rategov.BucketConfig) {
		if err := governor.Register(name, bc); err != nil {
			slog.Error("Invalid rate bucket", "bucket", name, "error", err)
			os.Exit(exitConfig)
		}
	}
	mustRegister(source.Bucket, rategov.BucketConfig{
		Kind: rategov.KindAdaptive, Rate: 1, Capacity: 5,
	})
	mustRegister(analyzer.Bucket, rategov.BucketConfig{
		Kind:        rategov.KindSlidingWindow,
		MaxRequests: cfg.Analysis.RequestsPerMinute,
		Window:      time.Minute,
	})
	dispatchBurst := int(cfg.Dispatch.RatePerSecond)
	if dispatchBurst < 1 {
		dispatchBurst = 1
	}
	mustRegister(dispatch.Bucket, rategov.BucketConfig{
		Kind: rategov.KindTokenBucket, Rate: cfg.Dispatch.RatePerSecond, Capacity: dispatchBurst,
	})

	// 6. Start the ingest side: coordinator + pipeline
	m := metrics.New()
	coordinator := ingest.NewCoordinator(cfg.Source, accountService, settingService, m)
	sourceClient := source.NewHTTPClient(cfg.Source, governor)
	pipeline := ingest.NewPipeline(cfg.Source, sourceClient, postService, accountService,
		coordinator, governor, m)
	coordinator.Start()
	pipeline.Start()

	// 7. Start the analysis pool
	llmClient := analyzer.NewHTTPClient(cfg.Analysis)
	analysisPool := queue.NewAnalysisPool(podID, cfg.Analysis, postService, settingService,
		llmClient, governor, m)
	analysisPool.Start()

	// 8. Start the dispatch pool; an empty token disables dispatch and posts
	// rest at analyzed
	var dispatchPool *queue.DispatchPool
	if cfg.Dispatch.SlackToken != "" && cfg.Dispatch.Channel != "" {
		slackDispatcher := dispatch.NewSlackDispatcher(cfg.Dispatch.SlackToken, cfg.Dispatch.SendTimeout)
		dispatchPool = queue.NewDispatchPool(podID, cfg.Dispatch, postService, settingService,
			slackDispatcher, governor, m)
		dispatchPool.Start()
	} else {
		slog.Warn("Dispatch disabled: no Slack token or channel configured")
	}

	// 9. Start background maintenance: stale claim reaper + retention cleanup
	reaper := queue.NewReaper(postService, cfg.Retention)
	reaper.Start()

	cleanupService := cleanup.NewService(cfg.Retention, postService)
	cleanupService.Start(ctx)

	// 10. Start the HTTP server under supervision
	httpServer := api.NewServer(cfg, dbClient, accountService, settingService, statsService,
		coordinator, m, podID)
	if dispatchPool != nil {
		httpServer.SetPools(analysisPool, dispatchPool)
	} else {
		httpServer.SetPools(analysisPool, nil)
	}

	superCtx, superCancel := context.WithCancel(ctx)
	defer superCancel()

	super := supervisor.New(5)
	super.Supervise(superCtx, supervisor.Component{
		Name: "http-server",
		Run: func(context.Context) error {
			return httpServer.Start()
		},
	})

	slog.Info("Postwatch started successfully", "pod_id", podID)

	// 11. Wait for a shutdown signal or an escalation
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)

	exitCode := exitOK
	select {
	case sig := <-sigCh:
		slog.Info("Shutdown signal received", "signal", sig)
	case esc := <-super.Escalations():
		slog.Error("Component unrecoverable, shutting down",
			"component", esc.Component, "failures", esc.Failures, "error", esc.LastErr)
		exitCode = exitSupervision
	}

	// 12. Graceful shutdown: stop intake first, then drain the pools
	coordinator.Stop()
	pipeline.Stop()

	drainCtx, drainCancel := context.WithTimeout(ctx, cfg.Retention.DrainTimeout)
	defer drainCancel()

	poolsDone := make(chan struct{})
	go func() {
		analysisPool.Stop()
		if dispatchPool != nil {
			dispatchPool.Stop()
		}
		close(poolsDone)
	}()
	select {
	case <-poolsDone:
		slog.Info("Worker pools stopped gracefully")
	case <-drainCtx.Done():
		slog.Warn("Drain timeout exceeded, remaining claims will be released")
	}

	reaper.Stop()
	cleanupService.Stop()

	// Release anything still claimed by this pod so no post is stranded
	releaseCtx, releaseCancel := context.WithTimeout(ctx, 10*time.Second)
	defer releaseCancel()
	if released, err := postService.ReleasePodClaims(releaseCtx, podID); err != nil {
		slog.Error("Failed to release claims during shutdown", "error", err)
	} else if released > 0 {
		slog.Info("Released undrained claims", "count", released)
	}

	// Stop HTTP server with its own timeout budget
	httpShutdownCtx, httpCancel := context.WithTimeout(ctx, 5*time.Second)
	defer httpCancel()
	superCancel()
	if err := httpServer.Shutdown(httpShutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}
	super.Wait()

	if err := dbClient.Close(); err != nil {
		slog.Error("Error closing database client", "error", err)
	}

	slog.Info("Shutdown complete")
	os.Exit(exitCode)
}
