package api

import (
	"net/http"
	"strconv"

	"github.com/google/uuid"
	echo "github.com/labstack/echo/v5"

	"github.com/sigmapilot/lens/pkg/services"
)

// listDecisionsHandler handles GET /api/v1/decisions.
func (s *Server) listDecisionsHandler(c *echo.Context) error {
	filter := services.DecisionFilter{
		Model:     c.QueryParam("model"),
		Symbol:    c.QueryParam("symbol"),
		EventType: c.QueryParam("event_type"),
		Decision:  c.QueryParam("decision"),
	}
	if v := c.QueryParam("min_confidence"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil || f < 0 || f > 1 {
			return newHTTPError(http.StatusBadRequest, "VALIDATION_ERROR",
				"min_confidence must be a number between 0 and 1")
		}
		filter.MinConfidence = &f
	}
	filter.Since = parseTimeParam(c, "since")
	filter.Until = parseTimeParam(c, "until")
	filter.Limit, filter.Offset = parsePaging(c)

	rows, total, err := s.decisions.List(c.Request().Context(), filter)
	if err != nil {
		return err
	}

	items := make([]DecisionResponse, 0, len(rows))
	for _, row := range rows {
		items = append(items, newDecisionResponse(row))
	}
	return c.JSON(http.StatusOK, listResponse{
		Items:  items,
		Total:  total,
		Limit:  filter.Limit,
		Offset: filter.Offset,
	})
}

// getDecisionHandler handles GET /api/v1/decisions/:id.
func (s *Server) getDecisionHandler(c *echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return newHTTPError(http.StatusBadRequest, "VALIDATION_ERROR", "id must be a UUID")
	}

	row, err := s.decisions.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, newDecisionResponse(row))
}
