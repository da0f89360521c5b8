package api

import (
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"

	"log/slog"

	echo "github.com/labstack/echo/v5"

	"github.com/sigmapilot/lens/pkg/auth"
)

// identityKey is the echo context key the authenticated identity is stored
// under for downstream handlers.
const identityKey = "identity"

// requireScope authenticates the bearer credential and checks the scope
// before running next. The chain renders failures through wrap.
func (s *Server) requireScope(scope string, next echo.HandlerFunc) echo.HandlerFunc {
	return wrap(func(c *echo.Context) error {
		token, _ := auth.ParseBearer(c.Request().Header.Get("Authorization"))
		identity, err := s.auth.Authenticate(c.Request().Context(), token)
		if err != nil {
			return newHTTPError(http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
		}
		if !identity.HasScope(scope) {
			return newHTTPError(http.StatusForbidden, "FORBIDDEN",
				"Insufficient permissions. Required scope: "+scope)
		}
		c.Set(identityKey, identity)
		return next(c)
	})
}

// identity returns the authenticated caller stored by requireScope.
func identityFrom(c *echo.Context) *auth.Identity {
	if id, ok := c.Get(identityKey).(*auth.Identity); ok {
		return id
	}
	return &auth.Identity{Subject: "anonymous"}
}

// rateLimit applies the sliding-window limiter keyed by client IP. Limiter
// failures admit the request; rejections carry Retry-After plus the window
// headers.
func (s *Server) rateLimit(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c *echo.Context) error {
		if s.limiter == nil {
			return next(c)
		}

		result, err := s.limiter.Allow(c.Request().Context(), "signals:"+clientIP(c))
		if err != nil {
			slog.Error("Rate limit check failed, admitting request", "error", err)
			return next(c)
		}

		h := c.Response().Header()
		h.Set("X-RateLimit-Limit", strconv.Itoa(s.cfg.RateLimitPerMin))
		h.Set("X-RateLimit-Remaining", strconv.Itoa(result.Remaining))
		h.Set("X-RateLimit-Window", "60")

		if !result.Allowed {
			h.Set("Retry-After", strconv.Itoa(result.RetryAfter))
			e := newHTTPError(http.StatusTooManyRequests, "RATE_LIMITED",
				"Too many requests. Please try again later.")
			e.Details = map[string]interface{}{"retry_after": result.RetryAfter}
			return c.JSON(e.Status, errorEnvelope{Error: errorBody{
				Code: e.Code, Message: e.Message, Details: e.Details,
			}})
		}
		return next(c)
	}
}

// clientIP resolves the caller address: X-Forwarded-For first hop, then
// X-Real-IP, then the socket peer.
func clientIP(c *echo.Context) string {
	if fwd := c.Request().Header.Get("X-Forwarded-For"); fwd != "" {
		if i := strings.IndexByte(fwd, ','); i >= 0 {
			fwd = fwd[:i]
		}
		return strings.TrimSpace(fwd)
	}
	if real := c.Request().Header.Get("X-Real-IP"); real != "" {
		return real
	}
	host, _, err := net.SplitHostPort(c.Request().RemoteAddr)
	if err != nil {
		return c.Request().RemoteAddr
	}
	return host
}

// recoverPanics converts handler panics into 500 envelopes instead of
// dropping the connection.
func recoverPanics() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c *echo.Context) (err error) {
			defer func() {
				if r := recover(); r != nil {
					slog.Error("Handler panic", "panic", r,
						"method", c.Request().Method, "path", c.Request().URL.Path)
					err = c.JSON(http.StatusInternalServerError, errorEnvelope{Error: errorBody{
						Code:    "INTERNAL",
						Message: "internal server error",
					}})
				}
			}()
			return next(c)
		}
	}
}

// requestLogger emits one slog line per request.
func requestLogger() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c *echo.Context) error {
			start := time.Now()
			err := next(c)
			status := 0
			if res, resErr := echo.UnwrapResponse(c.Response()); resErr == nil {
				status = res.Status
			}
			slog.Info("HTTP request",
				"method", c.Request().Method,
				"path", c.Request().URL.Path,
				"status", status,
				"duration_ms", time.Since(start).Milliseconds())
			return err
		}
	}
}

// cors sets permissive CORS headers and short-circuits preflight.
func cors() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c *echo.Context) error {
			h := c.Response().Header()
			h.Set("Access-Control-Allow-Origin", "*")
			h.Set("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
			h.Set("Access-Control-Allow-Headers", "Authorization, Content-Type, X-Idempotency-Key")
			if c.Request().Method == http.MethodOptions {
				return c.NoContent(http.StatusNoContent)
			}
			return next(c)
		}
	}
}
