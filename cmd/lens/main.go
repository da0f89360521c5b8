// Lens pipeline server — signal ingress API, enrichment and evaluation
// workers, and the WebSocket decision feed, in one process.
package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/sigmapilot/lens/pkg/api"
	"github.com/sigmapilot/lens/pkg/auth"
	"github.com/sigmapilot/lens/pkg/config"
	"github.com/sigmapilot/lens/pkg/database"
	"github.com/sigmapilot/lens/pkg/enrichment"
	"github.com/sigmapilot/lens/pkg/evaluation"
	"github.com/sigmapilot/lens/pkg/logging"
	"github.com/sigmapilot/lens/pkg/market"
	"github.com/sigmapilot/lens/pkg/metrics"
	"github.com/sigmapilot/lens/pkg/publisher"
	"github.com/sigmapilot/lens/pkg/queue"
	"github.com/sigmapilot/lens/pkg/ratelimit"
	"github.com/sigmapilot/lens/pkg/registry"
	"github.com/sigmapilot/lens/pkg/services"
	"github.com/sigmapilot/lens/pkg/version"
)

// queueDepthInterval is how often the stream depth gauges refresh.
const queueDepthInterval = 10 * time.Second

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Warn("Could not load .env file, continuing with existing environment", "error", err)
	}

	ctx := context.Background()

	// 1. Configuration and logging
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}
	logging.Setup(cfg.AppName, cfg.LogLevel, cfg.Debug)

	slog.Info("Starting Lens",
		"version", version.Full(),
		"http_addr", cfg.HTTPAddr,
		"evaluation_mode", cfg.EvaluationMode,
		"auth_mode", cfg.Auth.Mode)

	// 2. PostgreSQL (runs embedded migrations)
	dbCfg, err := database.LoadConfigFromEnv()
	if err != nil {
		slog.Error("Failed to load database config", "error", err)
		os.Exit(1)
	}
	dbClient, err := database.NewClient(ctx, dbCfg)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			slog.Error("Error closing database client", "error", err)
		}
	}()
	slog.Info("Connected to PostgreSQL")

	// 3. Redis Streams
	qc, err := queue.NewClient(cfg.RedisURL, cfg.RedisMaxConnections)
	if err != nil {
		slog.Error("Failed to connect to Redis", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := qc.Close(); err != nil {
			slog.Error("Error closing Redis client", "error", err)
		}
	}()
	if err := qc.EnsureGroup(ctx, queue.StreamPending, queue.GroupEnrichment); err != nil {
		slog.Error("Failed to create enrichment consumer group", "error", err)
		os.Exit(1)
	}
	if err := qc.EnsureGroup(ctx, queue.StreamEnriched, queue.GroupEvaluation); err != nil {
		slog.Error("Failed to create evaluation consumer group", "error", err)
		os.Exit(1)
	}
	slog.Info("Connected to Redis", "url", cfg.RedisURL)

	// 4. Feature profiles
	profiles, err := config.LoadProfiles(cfg.FeatureProfilesPath)
	if err != nil {
		slog.Error("Failed to load feature profiles", "path", cfg.FeatureProfilesPath, "error", err)
		os.Exit(1)
	}
	slog.Info("Feature profiles loaded", "profiles", profiles.Names())

	// 5. Runtime registries
	llmReg := registry.NewLLMRegistry(dbClient.Client)
	if err := llmReg.Initialize(ctx); err != nil {
		slog.Error("Failed to initialize LLM registry", "error", err)
		os.Exit(1)
	}
	promptReg := registry.NewPromptRegistry(dbClient.Client)
	if err := promptReg.Initialize(ctx, cfg.PromptsDir); err != nil {
		slog.Error("Failed to initialize prompt registry", "error", err)
		os.Exit(1)
	}

	// 6. Domain services, hub, instrumentation
	m := metrics.New()
	hub := publisher.NewHub(cfg.WSMaxConnections)

	signalSvc := services.NewSignalService(dbClient.Client, qc, cfg.FeatureProfile, m)
	eventSvc := services.NewEventService(dbClient.Client)
	decisionSvc := services.NewDecisionService(dbClient.Client)
	dlqSvc := services.NewDLQService(dbClient.Client, qc, hub)
	slog.Info("Services initialized")

	// 7. Workers (consumers start before the HTTP server so a backlog
	// drains even if the listener fails to bind)
	provider := market.NewHyperliquid(cfg.HyperliquidBaseURL, cfg.ProviderTimeout)

	enrichWorker := enrichment.NewWorker(provider, profiles, eventSvc, qc, m, cfg)
	enrichConsumer := queue.NewConsumer(qc, enrichment.ConsumerConfig(cfg), enrichWorker, dlqSvc, m)
	if err := enrichConsumer.Start(ctx); err != nil {
		slog.Error("Failed to start enrichment consumer", "error", err)
		os.Exit(1)
	}

	evalWorker := evaluation.NewWorker(llmReg, promptReg, decisionSvc, eventSvc, hub, m, cfg)
	evalConsumer := queue.NewConsumer(qc, evaluation.ConsumerConfig(cfg), evalWorker, dlqSvc, m)
	if err := evalConsumer.Start(ctx); err != nil {
		slog.Error("Failed to start evaluation consumer", "error", err)
		os.Exit(1)
	}
	slog.Info("Workers started", "mode", cfg.EvaluationMode)

	// 8. Queue depth gauges
	depthCtx, depthCancel := context.WithCancel(ctx)
	defer depthCancel()
	go reportQueueDepth(depthCtx, qc, m)

	// 9. HTTP server
	authenticator, err := auth.New(cfg.Auth)
	if err != nil {
		slog.Error("Failed to configure authentication", "error", err)
		os.Exit(1)
	}
	limiter := ratelimit.New(qc.Redis(), cfg.RateLimitPerMin, cfg.RateLimitBurst, cfg.RateLimitEnabled)

	httpServer := api.NewServer(api.Deps{
		Config:    cfg,
		DB:        dbClient,
		Queue:     qc,
		Auth:      authenticator,
		Limiter:   limiter,
		Signals:   signalSvc,
		Events:    eventSvc,
		Decisions: decisionSvc,
		DLQ:       dlqSvc,
		LLM:       llmReg,
		Prompts:   promptReg,
		Hub:       hub,
		Metrics:   m,
		KeyProbe:  evaluation.ProbeAPIKey,
	})

	errCh := make(chan error, 1)
	go func() {
		slog.Info("HTTP server listening", "addr", cfg.HTTPAddr)
		if err := httpServer.Start(cfg.HTTPAddr); err != nil && err != http.ErrServerClosed {
			slog.Error("HTTP server error", "error", err)
			errCh <- err
		}
	}()

	slog.Info("Lens started successfully")

	// 10. Wait for shutdown signal or server error
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)

	select {
	case sig := <-sigCh:
		slog.Info("Shutdown signal received", "signal", sig)
	case err := <-errCh:
		slog.Error("Server error triggered shutdown", "error", err)
	}

	// 11. Graceful shutdown: stop ingress first so no new work arrives,
	// then drain the workers within the configured budget.
	httpShutdownCtx, httpCancel := context.WithTimeout(ctx, 5*time.Second)
	defer httpCancel()
	if err := httpServer.Shutdown(httpShutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}

	depthCancel()

	drainCtx, drainCancel := context.WithTimeout(ctx, cfg.GracefulShutdownTimeout)
	defer drainCancel()

	done := make(chan struct{})
	go func() {
		enrichConsumer.Stop()
		evalConsumer.Stop()
		close(done)
	}()

	select {
	case <-done:
		slog.Info("Workers stopped gracefully")
	case <-drainCtx.Done():
		slog.Warn("Shutdown timeout exceeded — in-flight messages will be redelivered")
	}

	slog.Info("Shutdown complete")
}

// reportQueueDepth refreshes the stream depth gauges until ctx is cancelled.
func reportQueueDepth(ctx context.Context, qc *queue.Client, m *metrics.Metrics) {
	ticker := time.NewTicker(queueDepthInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}

		if n, err := qc.Length(ctx, queue.StreamPending); err == nil {
			m.PendingEnrichment.Set(float64(n))
			m.QueueDepth.WithLabelValues(queue.StreamPending).Set(float64(n))
		}
		if n, err := qc.Length(ctx, queue.StreamEnriched); err == nil {
			m.PendingEvaluation.Set(float64(n))
			m.QueueDepth.WithLabelValues(queue.StreamEnriched).Set(float64(n))
		}
	}
}
