package api

import (
	"net/http"
	"strconv"

	"github.com/google/uuid"
	echo "github.com/labstack/echo/v5"

	"github.com/sigmapilot/lens/pkg/services"
)

// listDLQHandler handles GET /api/v1/dlq.
func (s *Server) listDLQHandler(c *echo.Context) error {
	filter := services.DLQFilter{
		Stage:      c.QueryParam("stage"),
		ReasonCode: c.QueryParam("reason_code"),
		EventID:    c.QueryParam("event_id"),
	}
	if v := c.QueryParam("resolved"); v != "" {
		resolved, err := strconv.ParseBool(v)
		if err != nil {
			return newHTTPError(http.StatusBadRequest, "VALIDATION_ERROR",
				"resolved must be true or false")
		}
		filter.Resolved = &resolved
	}
	filter.Since = parseTimeParam(c, "since")
	filter.Until = parseTimeParam(c, "until")
	filter.Limit, filter.Offset = parsePaging(c)

	entries, total, err := s.dlq.List(c.Request().Context(), filter)
	if err != nil {
		return err
	}

	items := make([]DLQEntryResponse, 0, len(entries))
	for _, entry := range entries {
		items = append(items, newDLQEntryResponse(entry, false))
	}
	return c.JSON(http.StatusOK, listResponse{
		Items:  items,
		Total:  total,
		Limit:  filter.Limit,
		Offset: filter.Offset,
	})
}

// getDLQHandler handles GET /api/v1/dlq/:id.
func (s *Server) getDLQHandler(c *echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return newHTTPError(http.StatusBadRequest, "VALIDATION_ERROR", "id must be a UUID")
	}

	entry, err := s.dlq.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, newDLQEntryResponse(entry, true))
}

// retryDLQHandler handles POST /api/v1/dlq/:id/retry.
// Replays the dead-lettered message into the stage it failed at.
func (s *Server) retryDLQHandler(c *echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return newHTTPError(http.StatusBadRequest, "VALIDATION_ERROR", "id must be a UUID")
	}

	result, err := s.dlq.Retry(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, result)
}

// resolveDLQHandler handles POST /api/v1/dlq/:id/resolve.
func (s *Server) resolveDLQHandler(c *echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return newHTTPError(http.StatusBadRequest, "VALIDATION_ERROR", "id must be a UUID")
	}

	var req ResolveDLQRequest
	if err := c.Bind(&req); err != nil {
		return newHTTPError(http.StatusBadRequest, "INVALID_JSON", err.Error())
	}

	result, err := s.dlq.Resolve(c.Request().Context(), id, req.ResolutionNote)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, result)
}
