package api

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	echo "github.com/labstack/echo/v5"

	"github.com/sigmapilot/lens/pkg/models"
	"github.com/sigmapilot/lens/pkg/services"
)

// listEventsHandler handles GET /api/v1/events.
func (s *Server) listEventsHandler(c *echo.Context) error {
	filter := services.EventFilter{
		Symbol:    c.QueryParam("symbol"),
		EventType: c.QueryParam("event_type"),
		Source:    c.QueryParam("source"),
		Status:    c.QueryParam("status"),
	}
	filter.Since = parseTimeParam(c, "since")
	filter.Until = parseTimeParam(c, "until")
	filter.Limit, filter.Offset = parsePaging(c)

	events, total, err := s.events.List(c.Request().Context(), filter)
	if err != nil {
		return err
	}

	items := make([]EventResponse, 0, len(events))
	for _, evt := range events {
		items = append(items, newEventResponse(evt))
	}
	return c.JSON(http.StatusOK, listResponse{
		Items:  items,
		Total:  total,
		Limit:  filter.Limit,
		Offset: filter.Offset,
	})
}

// getEventHandler handles GET /api/v1/events/:id.
func (s *Server) getEventHandler(c *echo.Context) error {
	eventID := c.Param("id")

	ctx := c.Request().Context()
	evt, err := s.events.Get(ctx, eventID)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			return newHTTPError(http.StatusNotFound, "NOT_FOUND",
				fmt.Sprintf("Event %s not found", eventID))
		}
		return err
	}

	timeline, err := s.events.Timeline(ctx, eventID)
	if err != nil {
		return err
	}
	enriched, err := s.events.GetEnriched(ctx, eventID)
	if err != nil {
		return err
	}
	decisions, err := s.decisions.ForEvent(ctx, eventID)
	if err != nil {
		return err
	}

	detail := EventDetailResponse{
		EventResponse: newEventResponse(evt),
		Timeline:      make([]TimelineEntry, 0, len(timeline)),
		Decisions:     make([]DecisionSummary, 0, len(decisions)),
	}
	for _, entry := range timeline {
		detail.Timeline = append(detail.Timeline, TimelineEntry{
			Status:     entry.Status,
			Details:    entry.Details,
			OccurredAt: entry.OccurredAt,
		})
	}
	if enriched != nil {
		detail.Enriched = &EnrichedSummary{
			FeatureProfile: enriched.FeatureProfile,
			QualityFlags:   enriched.QualityFlags,
		}
	}
	for _, d := range decisions {
		detail.Decisions = append(detail.Decisions, DecisionSummary{
			Model:      d.ModelName,
			Decision:   d.Decision,
			Confidence: d.Confidence,
		})
	}
	return c.JSON(http.StatusOK, detail)
}

// eventStatusHandler handles GET /api/v1/events/:id/status.
// duration_ms runs from received_at to published_at, or to now while the
// event is still in flight.
func (s *Server) eventStatusHandler(c *echo.Context) error {
	eventID := c.Param("id")

	evt, err := s.events.Get(c.Request().Context(), eventID)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			return newHTTPError(http.StatusNotFound, "NOT_FOUND",
				fmt.Sprintf("Event %s not found", eventID))
		}
		return err
	}

	end := time.Now().UTC()
	if evt.PublishedAt != nil {
		end = *evt.PublishedAt
	}

	return c.JSON(http.StatusOK, EventStatusResponse{
		EventID:     evt.EventID,
		Status:      string(evt.Status),
		Stage:       services.StageView(models.EventStatus(evt.Status)),
		DurationMS:  end.Sub(evt.ReceivedAt).Milliseconds(),
		ReceivedAt:  evt.ReceivedAt,
		EnrichedAt:  evt.EnrichedAt,
		EvaluatedAt: evt.EvaluatedAt,
		PublishedAt: evt.PublishedAt,
	})
}

// parsePaging reads limit (1..100, default 50) and offset (>= 0). Values
// outside the bounds fall back to the defaults.
func parsePaging(c *echo.Context) (limit, offset int) {
	limit = 50
	if v := c.QueryParam("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 1 && n <= 100 {
			limit = n
		}
	}
	if v := c.QueryParam("offset"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			offset = n
		}
	}
	return limit, offset
}

// parseTimeParam reads an RFC3339 query parameter, nil when absent or
// unparseable.
func parseTimeParam(c *echo.Context, name string) *time.Time {
	v := c.QueryParam(name)
	if v == "" {
		return nil
	}
	t, err := time.Parse(time.RFC3339, v)
	if err != nil {
		return nil
	}
	return &t
}
