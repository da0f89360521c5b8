package api

import (
	"net/http"
	"strings"

	"github.com/coder/websocket"
	echo "github.com/labstack/echo/v5"

	"github.com/sigmapilot/lens/pkg/auth"
)

// Close codes for subscription handshake failures. 4029 (connection cap)
// lives in the publisher package.
const (
	statusAuthRequired websocket.StatusCode = 4001
	statusForbidden    websocket.StatusCode = 4003
)

// wsHandler handles GET /ws/stream. The bearer token travels in the
// Sec-WebSocket-Protocol header as "bearer,<token>" because browser clients
// cannot set Authorization on the upgrade request; the server echoes the
// "bearer" subprotocol back. Auth failures close after the handshake so the
// client sees the code instead of a failed upgrade.
func (s *Server) wsHandler(c *echo.Context) error {
	conn, err := websocket.Accept(c.Response(), c.Request(), &websocket.AcceptOptions{
		Subprotocols:       []string{"bearer"},
		InsecureSkipVerify: true,
	})
	if err != nil {
		return nil
	}

	if !s.cfg.WSEnabled {
		_ = conn.Close(websocket.StatusNormalClosure, "WebSocket disabled")
		return nil
	}

	identity, err := s.auth.Authenticate(c.Request().Context(), wsToken(c.Request()))
	if err != nil {
		_ = conn.Close(statusAuthRequired, "Authentication required")
		return nil
	}
	if !identity.HasScope(auth.ScopeRead) {
		_ = conn.Close(statusForbidden, "Insufficient permissions")
		return nil
	}

	// Blocks until the connection closes. Cap rejection (4029) happens
	// inside the hub.
	s.hub.HandleConnection(c.Request().Context(), conn)
	return nil
}

// wsToken extracts the bearer token from the subprotocol offer, skipping the
// "bearer" marker itself.
func wsToken(r *http.Request) string {
	for _, header := range r.Header.Values("Sec-WebSocket-Protocol") {
		for _, part := range strings.Split(header, ",") {
			part = strings.TrimSpace(part)
			if part != "" && !strings.EqualFold(part, "bearer") {
				return part
			}
		}
	}
	return ""
}

// wsStatsHandler handles GET /api/v1/ws/stream/stats.
func (s *Server) wsStatsHandler(c *echo.Context) error {
	return c.JSON(http.StatusOK, s.hub.Snapshot())
}
