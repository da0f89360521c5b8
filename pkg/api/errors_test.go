package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	echo "github.com/labstack/echo/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sigmapilot/lens/pkg/services"
)

func TestMapServiceError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{
			name:       "validation error",
			err:        services.NewValidationError("symbol", "must be between 1 and 20 characters"),
			wantStatus: http.StatusBadRequest,
			wantCode:   "VALIDATION_ERROR",
		},
		{
			name:       "not found",
			err:        services.ErrNotFound,
			wantStatus: http.StatusNotFound,
			wantCode:   "NOT_FOUND",
		},
		{
			name:       "already exists",
			err:        services.ErrAlreadyExists,
			wantStatus: http.StatusConflict,
			wantCode:   "CONFLICT",
		},
		{
			name:       "already resolved",
			err:        services.ErrAlreadyResolved,
			wantStatus: http.StatusBadRequest,
			wantCode:   "ALREADY_RESOLVED",
		},
		{
			name:       "wrapped not found",
			err:        errors.Join(errors.New("context"), services.ErrNotFound),
			wantStatus: http.StatusNotFound,
			wantCode:   "NOT_FOUND",
		},
		{
			name:       "unexpected",
			err:        errors.New("boom"),
			wantStatus: http.StatusInternalServerError,
			wantCode:   "INTERNAL",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			httpErr := mapServiceError(tt.err)
			assert.Equal(t, tt.wantStatus, httpErr.Status)
			assert.Equal(t, tt.wantCode, httpErr.Code)
		})
	}
}

func TestMapServiceError_ValidationDetails(t *testing.T) {
	httpErr := mapServiceError(services.NewValidationError("entry_price", "must be greater than 0"))
	assert.Equal(t, "must be greater than 0", httpErr.Message)
	assert.Equal(t, "entry_price", httpErr.Details["field"])
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) errorEnvelope {
	t.Helper()
	var envelope errorEnvelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	return envelope
}

func TestWrap_RendersEnvelope(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/events/missing", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	h := wrap(func(c *echo.Context) error {
		return services.ErrNotFound
	})
	require.NoError(t, h(c))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	envelope := decodeEnvelope(t, rec)
	assert.Equal(t, "NOT_FOUND", envelope.Error.Code)
	assert.Equal(t, "resource not found", envelope.Error.Message)
}

func TestWrap_PassesThroughHTTPError(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	h := wrap(func(c *echo.Context) error {
		return newHTTPError(http.StatusNotFound, "NOT_FOUND", "Event abc not found")
	})
	require.NoError(t, h(c))

	envelope := decodeEnvelope(t, rec)
	assert.Equal(t, "Event abc not found", envelope.Error.Message)
}

func TestWrap_UnauthorizedSetsChallenge(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	h := wrap(func(c *echo.Context) error {
		return newHTTPError(http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
	})
	require.NoError(t, h(c))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Bearer", rec.Header().Get("WWW-Authenticate"))
}

func TestWrap_SuccessUntouched(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	h := wrap(func(c *echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})
	require.NoError(t, h(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}
