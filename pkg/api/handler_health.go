package api

import (
	"context"
	"net/http"
	"time"

	echo "github.com/labstack/echo/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// ReadyResponse is returned by GET /ready.
type ReadyResponse struct {
	Status       string            `json:"status"`
	Dependencies map[string]string `json:"dependencies"`
}

// healthHandler handles GET /health. Liveness only; no dependency checks so
// the orchestrator does not restart the process when a backend blips.
func (s *Server) healthHandler(c *echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// readyHandler handles GET /ready. Pings Postgres and Redis.
func (s *Server) readyHandler(c *echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	resp := ReadyResponse{
		Status:       "ready",
		Dependencies: map[string]string{"postgres": "ok", "redis": "ok"},
	}

	if err := s.db.DB().PingContext(ctx); err != nil {
		resp.Status = "not_ready"
		resp.Dependencies["postgres"] = err.Error()
	}
	if err := s.queue.Ping(ctx); err != nil {
		resp.Status = "not_ready"
		resp.Dependencies["redis"] = err.Error()
	}

	if resp.Status != "ready" {
		return c.JSON(http.StatusServiceUnavailable, resp)
	}
	return c.JSON(http.StatusOK, resp)
}

// metricsHandler handles GET /metrics in Prometheus text format.
func (s *Server) metricsHandler(c *echo.Context) error {
	h := promhttp.HandlerFor(s.metrics.Registry(), promhttp.HandlerOpts{})
	h.ServeHTTP(c.Response(), c.Request())
	return nil
}
