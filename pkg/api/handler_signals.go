package api

import (
	"errors"
	"net/http"

	echo "github.com/labstack/echo/v5"

	"github.com/sigmapilot/lens/pkg/models"
	"github.com/sigmapilot/lens/pkg/queue"
)

// submitSignalHandler handles POST /api/v1/signals.
// Persists the signal, appends it to the pending stream and returns 201.
// A repeated X-Idempotency-Key returns the original event with 200.
func (s *Server) submitSignalHandler(c *echo.Context) error {
	var payload models.SignalPayload
	if err := c.Bind(&payload); err != nil {
		return newHTTPError(http.StatusBadRequest, "INVALID_JSON", err.Error())
	}

	idempotencyKey := c.Request().Header.Get("X-Idempotency-Key")
	result, err := s.signals.Submit(c.Request().Context(), &payload, idempotencyKey)
	if err != nil {
		var queueErr *queue.Error
		if errors.As(err, &queueErr) {
			return newHTTPError(http.StatusInternalServerError, "QUEUE_ERROR", "Failed to enqueue signal")
		}
		return err
	}

	if result.Duplicate {
		return c.JSON(http.StatusOK, result)
	}
	return c.JSON(http.StatusCreated, result)
}
