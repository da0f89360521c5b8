// Package api is the HTTP surface: signal ingress, event and decision
// queries, DLQ operations, the admin registries, WebSocket subscriptions
// and the health/readiness/metrics endpoints.
package api

import (
	"context"
	"net/http"

	echo "github.com/labstack/echo/v5"

	"github.com/sigmapilot/lens/pkg/auth"
	"github.com/sigmapilot/lens/pkg/config"
	"github.com/sigmapilot/lens/pkg/database"
	"github.com/sigmapilot/lens/pkg/metrics"
	"github.com/sigmapilot/lens/pkg/publisher"
	"github.com/sigmapilot/lens/pkg/queue"
	"github.com/sigmapilot/lens/pkg/ratelimit"
	"github.com/sigmapilot/lens/pkg/registry"
	"github.com/sigmapilot/lens/pkg/services"
)

// Deps bundles everything the HTTP layer serves.
type Deps struct {
	Config    *config.Config
	DB        *database.Client
	Queue     *queue.Client
	Auth      auth.Authenticator
	Limiter   *ratelimit.Limiter
	Signals   *services.SignalService
	Events    *services.EventService
	Decisions *services.DecisionService
	DLQ       *services.DLQService
	LLM       *registry.LLMRegistry
	Prompts   *registry.PromptRegistry
	Hub       *publisher.Hub
	Metrics   *metrics.Metrics
	KeyProbe  registry.KeyProbe
}

// Server is the HTTP server.
type Server struct {
	cfg       *config.Config
	db        *database.Client
	queue     *queue.Client
	auth      auth.Authenticator
	limiter   *ratelimit.Limiter
	signals   *services.SignalService
	events    *services.EventService
	decisions *services.DecisionService
	dlq       *services.DLQService
	llm       *registry.LLMRegistry
	prompts   *registry.PromptRegistry
	hub       *publisher.Hub
	metrics   *metrics.Metrics
	keyProbe  registry.KeyProbe

	echo *echo.Echo
	http *http.Server
}

// NewServer wires the routes and returns a server ready to Start.
func NewServer(d Deps) *Server {
	s := &Server{
		cfg:       d.Config,
		db:        d.DB,
		queue:     d.Queue,
		auth:      d.Auth,
		limiter:   d.Limiter,
		signals:   d.Signals,
		events:    d.Events,
		decisions: d.Decisions,
		dlq:       d.DLQ,
		llm:       d.LLM,
		prompts:   d.Prompts,
		hub:       d.Hub,
		metrics:   d.Metrics,
		keyProbe:  d.KeyProbe,
		echo:      echo.New(),
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	e := s.echo
	e.Use(recoverPanics(), requestLogger(), cors())

	e.GET("/health", s.healthHandler)
	e.GET("/ready", s.readyHandler)
	if s.metrics != nil && s.cfg.MetricsEnabled {
		e.GET("/metrics", s.metricsHandler)
	}
	e.GET("/ws/stream", s.wsHandler)

	e.POST("/api/v1/signals", s.requireScope(auth.ScopeSubmit, s.rateLimit(s.submitSignalHandler)))

	e.GET("/api/v1/events", s.requireScope(auth.ScopeRead, s.listEventsHandler))
	e.GET("/api/v1/events/:id", s.requireScope(auth.ScopeRead, s.getEventHandler))
	e.GET("/api/v1/events/:id/status", s.requireScope(auth.ScopeRead, s.eventStatusHandler))

	e.GET("/api/v1/decisions", s.requireScope(auth.ScopeRead, s.listDecisionsHandler))
	e.GET("/api/v1/decisions/:id", s.requireScope(auth.ScopeRead, s.getDecisionHandler))

	e.GET("/api/v1/dlq", s.requireScope(auth.ScopeRead, s.listDLQHandler))
	e.GET("/api/v1/dlq/:id", s.requireScope(auth.ScopeRead, s.getDLQHandler))
	e.POST("/api/v1/dlq/:id/retry", s.requireScope(auth.ScopeAdmin, s.retryDLQHandler))
	e.POST("/api/v1/dlq/:id/resolve", s.requireScope(auth.ScopeAdmin, s.resolveDLQHandler))

	e.GET("/api/v1/llm-configs", s.requireScope(auth.ScopeAdmin, s.listLLMConfigsHandler))
	e.GET("/api/v1/llm-configs/:model", s.requireScope(auth.ScopeAdmin, s.getLLMConfigHandler))
	e.PUT("/api/v1/llm-configs/:model", s.requireScope(auth.ScopeAdmin, s.upsertLLMConfigHandler))
	e.PATCH("/api/v1/llm-configs/:model", s.requireScope(auth.ScopeAdmin, s.patchLLMConfigHandler))
	e.DELETE("/api/v1/llm-configs/:model", s.requireScope(auth.ScopeAdmin, s.deleteLLMConfigHandler))
	e.POST("/api/v1/llm-configs/:model/test", s.requireScope(auth.ScopeAdmin, s.testLLMConfigHandler))
	e.POST("/api/v1/llm-configs/:model/enable", s.requireScope(auth.ScopeAdmin, s.enableLLMConfigHandler))
	e.POST("/api/v1/llm-configs/:model/disable", s.requireScope(auth.ScopeAdmin, s.disableLLMConfigHandler))

	e.GET("/api/v1/prompts", s.requireScope(auth.ScopeAdmin, s.listPromptsHandler))
	e.GET("/api/v1/prompts/:id", s.requireScope(auth.ScopeAdmin, s.getPromptHandler))
	e.PUT("/api/v1/prompts", s.requireScope(auth.ScopeAdmin, s.createPromptHandler))
	e.POST("/api/v1/prompts/:id/activate", s.requireScope(auth.ScopeAdmin, s.activatePromptHandler))
	e.POST("/api/v1/prompts/:id/deactivate", s.requireScope(auth.ScopeAdmin, s.deactivatePromptHandler))

	e.GET("/api/v1/ws/stream/stats", s.requireScope(auth.ScopeRead, s.wsStatsHandler))
}

// Start serves until the listener fails or Shutdown is called.
func (s *Server) Start(addr string) error {
	s.http = &http.Server{
		Addr:    addr,
		Handler: s.echo,
	}
	return s.http.ListenAndServe()
}

// Shutdown stops accepting connections and drains in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.http == nil {
		return nil
	}
	return s.http.Shutdown(ctx)
}
