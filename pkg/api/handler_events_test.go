package api

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	echo "github.com/labstack/echo/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func queryContext(t *testing.T, query string) *echo.Context {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/events?"+query, nil)
	return e.NewContext(req, httptest.NewRecorder())
}

func TestParsePaging(t *testing.T) {
	tests := []struct {
		name       string
		query      string
		wantLimit  int
		wantOffset int
	}{
		{"defaults", "", 50, 0},
		{"explicit", "limit=25&offset=100", 25, 100},
		{"limit floor", "limit=1", 1, 0},
		{"limit ceiling", "limit=100", 100, 0},
		{"limit above ceiling ignored", "limit=500", 50, 0},
		{"limit zero ignored", "limit=0", 50, 0},
		{"negative offset ignored", "offset=-5", 50, 0},
		{"garbage ignored", "limit=abc&offset=xyz", 50, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			limit, offset := parsePaging(queryContext(t, tt.query))
			assert.Equal(t, tt.wantLimit, limit)
			assert.Equal(t, tt.wantOffset, offset)
		})
	}
}

func TestParseTimeParam(t *testing.T) {
	ts := parseTimeParam(queryContext(t, "since=2026-08-26T10:00:00Z"), "since")
	require.NotNil(t, ts)
	assert.Equal(t, time.Date(2026, 8, 26, 10, 0, 0, 0, time.UTC), ts.UTC())

	assert.Nil(t, parseTimeParam(queryContext(t, ""), "since"))
	assert.Nil(t, parseTimeParam(queryContext(t, "since=yesterday"), "since"))
	// Date-only is not RFC3339.
	assert.Nil(t, parseTimeParam(queryContext(t, "since=2026-08-26"), "since"))
}

func TestListDecisionsHandler_InvalidMinConfidence(t *testing.T) {
	s := &Server{}

	for _, value := range []string{"abc", "-0.1", "1.5"} {
		c := queryContext(t, "min_confidence="+value)
		err := s.listDecisionsHandler(c)

		require.Error(t, err, value)
		httpErr, ok := err.(*HTTPError)
		require.True(t, ok, value)
		assert.Equal(t, http.StatusBadRequest, httpErr.Status)
		assert.Equal(t, "VALIDATION_ERROR", httpErr.Code)
	}
}

func TestGetDecisionHandler_InvalidID(t *testing.T) {
	s := &Server{}
	e := echo.New()
	e.GET("/api/v1/decisions/:id", wrap(s.getDecisionHandler))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/decisions/not-a-uuid", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	envelope := decodeEnvelope(t, rec)
	assert.Equal(t, "VALIDATION_ERROR", envelope.Error.Code)
	assert.Equal(t, "id must be a UUID", envelope.Error.Message)
}

func TestListDLQHandler_InvalidResolved(t *testing.T) {
	s := &Server{}
	c := queryContext(t, "resolved=maybe")

	err := s.listDLQHandler(c)
	require.Error(t, err)
	httpErr, ok := err.(*HTTPError)
	require.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, httpErr.Status)
	assert.Equal(t, "resolved must be true or false", httpErr.Message)
}
