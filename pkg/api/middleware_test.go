package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/alicebob/miniredis/v2"
	echo "github.com/labstack/echo/v5"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sigmapilot/lens/pkg/auth"
	"github.com/sigmapilot/lens/pkg/config"
	"github.com/sigmapilot/lens/pkg/ratelimit"
)

func pskServer(t *testing.T) *Server {
	t.Helper()
	authenticator, err := auth.New(config.AuthConfig{
		Mode:        "psk",
		TokenAdmin:  "admin-token",
		TokenSubmit: "submit-token",
		TokenRead:   "read-token",
	})
	require.NoError(t, err)
	return &Server{auth: authenticator}
}

func okHandler(c *echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

func invoke(t *testing.T, h echo.HandlerFunc, req *http.Request) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	require.NoError(t, h(c))
	return rec
}

func TestRequireScope_MissingToken(t *testing.T) {
	s := pskServer(t)
	req := httptest.NewRequest(http.MethodGet, "/api/v1/events", nil)

	rec := invoke(t, s.requireScope(auth.ScopeRead, okHandler), req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Bearer", rec.Header().Get("WWW-Authenticate"))
	envelope := decodeEnvelope(t, rec)
	assert.Equal(t, "UNAUTHORIZED", envelope.Error.Code)
	assert.Equal(t, "Authentication required", envelope.Error.Message)
}

func TestRequireScope_WrongScope(t *testing.T) {
	s := pskServer(t)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/dlq/x/retry", nil)
	req.Header.Set("Authorization", "Bearer read-token")

	rec := invoke(t, s.requireScope(auth.ScopeAdmin, okHandler), req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
	envelope := decodeEnvelope(t, rec)
	assert.Equal(t, "FORBIDDEN", envelope.Error.Code)
	assert.Equal(t, "Insufficient permissions. Required scope: lens:admin", envelope.Error.Message)
}

func TestRequireScope_AdminImpliesAll(t *testing.T) {
	s := pskServer(t)
	req := httptest.NewRequest(http.MethodGet, "/api/v1/events", nil)
	req.Header.Set("Authorization", "Bearer admin-token")

	rec := invoke(t, s.requireScope(auth.ScopeRead, okHandler), req)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRequireScope_NoneModeAdmitsAll(t *testing.T) {
	authenticator, err := auth.New(config.AuthConfig{Mode: "none"})
	require.NoError(t, err)
	s := &Server{auth: authenticator}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/events", nil)
	rec := invoke(t, s.requireScope(auth.ScopeAdmin, okHandler), req)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func rateLimitedServer(t *testing.T, perMin, burst int) *Server {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	return &Server{
		cfg:     &config.Config{RateLimitPerMin: perMin, RateLimitBurst: burst},
		limiter: ratelimit.New(rdb, perMin, burst, true),
	}
}

func TestRateLimit_AllowsAndSetsHeaders(t *testing.T) {
	s := rateLimitedServer(t, 60, 120)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/signals", nil)
	req.RemoteAddr = "10.0.0.1:4242"

	rec := invoke(t, s.rateLimit(okHandler), req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "60", rec.Header().Get("X-RateLimit-Limit"))
	assert.Equal(t, "59", rec.Header().Get("X-RateLimit-Remaining"))
	assert.Equal(t, "60", rec.Header().Get("X-RateLimit-Window"))
}

func TestRateLimit_RejectsBeyondBurst(t *testing.T) {
	s := rateLimitedServer(t, 1, 2)

	var last *httptest.ResponseRecorder
	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/signals", nil)
		req.RemoteAddr = "10.0.0.2:4242"
		last = invoke(t, s.rateLimit(okHandler), req)
	}

	assert.Equal(t, http.StatusTooManyRequests, last.Code)
	assert.NotEmpty(t, last.Header().Get("Retry-After"))
	envelope := decodeEnvelope(t, last)
	assert.Equal(t, "RATE_LIMITED", envelope.Error.Code)
	assert.Equal(t, "Too many requests. Please try again later.", envelope.Error.Message)
}

func TestRateLimit_KeyedByClientIP(t *testing.T) {
	s := rateLimitedServer(t, 1, 1)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/signals", nil)
	req.RemoteAddr = "10.0.0.3:4242"
	rec := invoke(t, s.rateLimit(okHandler), req)
	assert.Equal(t, http.StatusOK, rec.Code)

	// A different caller gets a fresh window.
	req = httptest.NewRequest(http.MethodPost, "/api/v1/signals", nil)
	req.RemoteAddr = "10.0.0.4:4242"
	rec = invoke(t, s.rateLimit(okHandler), req)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestClientIP(t *testing.T) {
	e := echo.New()

	tests := []struct {
		name    string
		headers map[string]string
		remote  string
		want    string
	}{
		{
			name:    "forwarded chain takes first hop",
			headers: map[string]string{"X-Forwarded-For": "203.0.113.7, 10.0.0.1"},
			remote:  "10.0.0.9:1234",
			want:    "203.0.113.7",
		},
		{
			name:    "real ip fallback",
			headers: map[string]string{"X-Real-IP": "203.0.113.8"},
			remote:  "10.0.0.9:1234",
			want:    "203.0.113.8",
		},
		{
			name:   "socket peer",
			remote: "192.0.2.4:9999",
			want:   "192.0.2.4",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.RemoteAddr = tt.remote
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}
			c := e.NewContext(req, httptest.NewRecorder())
			assert.Equal(t, tt.want, clientIP(c))
		})
	}
}
