// Package publisher fans published decisions out to WebSocket subscribers
// through a filtered subscription hub.
package publisher

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/coder/websocket"
	"github.com/google/uuid"
)

// StatusTooManyConnections is the close code sent when the hub is at its
// connection cap.
const StatusTooManyConnections websocket.StatusCode = 4029

// defaultWriteTimeout bounds each send so one stalled client cannot hold a
// broadcast pass.
const defaultWriteTimeout = 5 * time.Second

// DecisionFrame is the wire frame pushed for every published decision.
type DecisionFrame struct {
	Type        string                 `json:"type"`
	EventID     string                 `json:"event_id"`
	Symbol      string                 `json:"symbol"`
	EventType   string                 `json:"event_type"`
	Model       string                 `json:"model"`
	Decision    map[string]interface{} `json:"decision"`
	PublishedAt time.Time              `json:"published_at"`
}

// Filters narrows which decision frames a subscriber receives. All set
// fields must match; the zero value matches everything.
type Filters struct {
	Model     string
	Symbol    string
	EventType string
}

// Matches reports whether a frame passes the filter conjunction.
func (f Filters) Matches(frame *DecisionFrame) bool {
	if f.Model != "" && f.Model != frame.Model {
		return false
	}
	if f.Symbol != "" && f.Symbol != frame.Symbol {
		return false
	}
	if f.EventType != "" && f.EventType != frame.EventType {
		return false
	}
	return true
}

func (f Filters) empty() bool {
	return f.Model == "" && f.Symbol == "" && f.EventType == ""
}

// subscription is one WebSocket client. filters and active are guarded by
// the hub mutex; a parked (unsubscribed) connection stays registered but
// receives no frames.
type subscription struct {
	id      uuid.UUID
	conn    *websocket.Conn
	ctx     context.Context
	cancel  context.CancelFunc
	filters Filters
	active  bool
}

// Hub tracks WebSocket subscribers and broadcasts decision frames to those
// whose filters match.
type Hub struct {
	mu           sync.RWMutex
	subs         map[uuid.UUID]*subscription
	maxConns     int
	writeTimeout time.Duration
}

// NewHub creates a hub capped at maxConns concurrent connections. maxConns
// of zero or less means unlimited.
func NewHub(maxConns int) *Hub {
	return &Hub{
		subs:         make(map[uuid.UUID]*subscription),
		maxConns:     maxConns,
		writeTimeout: defaultWriteTimeout,
	}
}

// clientMessage is what subscribers send. subscribe/unsubscribe arrive under
// "action"; ping arrives under "type".
type clientMessage struct {
	Action  string            `json:"action"`
	Type    string            `json:"type"`
	Filters map[string]string `json:"filters"`
}

// HandleConnection manages the lifecycle of one subscriber. Blocks until
// the connection closes. At the connection cap the client is refused with
// close code 4029.
func (h *Hub) HandleConnection(parentCtx context.Context, conn *websocket.Conn) {
	ctx, cancel := context.WithCancel(parentCtx)
	sub := &subscription{
		id:     uuid.New(),
		conn:   conn,
		ctx:    ctx,
		cancel: cancel,
	}

	if !h.register(sub) {
		cancel()
		_ = conn.Close(StatusTooManyConnections, "Too many connections")
		return
	}
	defer h.unregister(sub)

	h.sendJSON(sub, map[string]string{
		"type":          "connection.established",
		"connection_id": sub.id.String(),
	})

	for {
		_, data, err := conn.Read(ctx)
		if err != nil {
			return
		}

		var msg clientMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			slog.Warn("Invalid WebSocket message", "connection_id", sub.id, "error", err)
			continue
		}
		h.handleClientMessage(sub, &msg)
	}
}

func (h *Hub) handleClientMessage(sub *subscription, msg *clientMessage) {
	if msg.Type == "ping" && msg.Action == "" {
		h.sendJSON(sub, map[string]string{"type": "pong"})
		return
	}

	switch msg.Action {
	case "subscribe":
		// Unknown filter keys are ignored.
		filters := Filters{
			Model:     msg.Filters["model"],
			Symbol:    msg.Filters["symbol"],
			EventType: msg.Filters["event_type"],
		}
		h.mu.Lock()
		sub.filters = filters
		sub.active = true
		h.mu.Unlock()
		h.sendJSON(sub, map[string]interface{}{
			"type": "subscription.confirmed",
			"filters": map[string]string{
				"model":      filters.Model,
				"symbol":     filters.Symbol,
				"event_type": filters.EventType,
			},
		})

	case "unsubscribe":
		h.mu.Lock()
		sub.active = false
		sub.filters = Filters{}
		h.mu.Unlock()
		h.sendJSON(sub, map[string]string{"type": "subscription.removed"})

	default:
		action := msg.Action
		if action == "" {
			action = msg.Type
		}
		h.sendJSON(sub, map[string]string{
			"type":    "error",
			"code":    "INVALID_ACTION",
			"message": fmt.Sprintf("Unknown action: %s", action),
		})
	}
}

// BroadcastDecision pushes one decision frame to every active subscriber
// whose filters match. Connections that fail the send are evicted after the
// pass.
func (h *Hub) BroadcastDecision(frame DecisionFrame) {
	frame.Type = "decision"
	data, err := json.Marshal(frame)
	if err != nil {
		slog.Error("Failed to encode decision frame", "event_id", frame.EventID, "error", err)
		return
	}

	// Snapshot matching subscribers, then send outside the lock so a slow
	// client cannot stall register/unregister.
	h.mu.RLock()
	targets := make([]*subscription, 0, len(h.subs))
	for _, sub := range h.subs {
		if sub.active && sub.filters.Matches(&frame) {
			targets = append(targets, sub)
		}
	}
	h.mu.RUnlock()

	var failed []*subscription
	for _, sub := range targets {
		if err := h.sendRaw(sub, data); err != nil {
			slog.Warn("Failed to send decision to subscriber",
				"connection_id", sub.id, "error", err)
			failed = append(failed, sub)
		}
	}
	for _, sub := range failed {
		h.evict(sub)
	}
}

// Stats reports connection totals for the stats endpoint.
type Stats struct {
	TotalConnections      int            `json:"total_connections"`
	SubscriptionsByFilter map[string]int `json:"subscriptions_by_filter"`
}

// Snapshot returns the current hub statistics.
func (h *Hub) Snapshot() Stats {
	h.mu.RLock()
	defer h.mu.RUnlock()

	byFilter := map[string]int{"model": 0, "symbol": 0, "event_type": 0, "all": 0}
	for _, sub := range h.subs {
		if !sub.active {
			continue
		}
		if sub.filters.empty() {
			byFilter["all"]++
			continue
		}
		if sub.filters.Model != "" {
			byFilter["model"]++
		}
		if sub.filters.Symbol != "" {
			byFilter["symbol"]++
		}
		if sub.filters.EventType != "" {
			byFilter["event_type"]++
		}
	}
	return Stats{
		TotalConnections:      len(h.subs),
		SubscriptionsByFilter: byFilter,
	}
}

// ActiveConnections returns the number of registered connections.
func (h *Hub) ActiveConnections() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subs)
}

func (h *Hub) register(sub *subscription) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.maxConns > 0 && len(h.subs) >= h.maxConns {
		return false
	}
	h.subs[sub.id] = sub
	return true
}

func (h *Hub) unregister(sub *subscription) {
	h.mu.Lock()
	delete(h.subs, sub.id)
	h.mu.Unlock()

	sub.cancel()
	_ = sub.conn.Close(websocket.StatusNormalClosure, "")
}

func (h *Hub) evict(sub *subscription) {
	h.mu.Lock()
	delete(h.subs, sub.id)
	h.mu.Unlock()

	sub.cancel()
	_ = sub.conn.Close(websocket.StatusGoingAway, "send failed")
}

func (h *Hub) sendJSON(sub *subscription, v interface{}) {
	data, err := json.Marshal(v)
	if err != nil {
		slog.Warn("Failed to marshal WebSocket message", "connection_id", sub.id, "error", err)
		return
	}
	if err := h.sendRaw(sub, data); err != nil {
		slog.Warn("Failed to send WebSocket message", "connection_id", sub.id, "error", err)
	}
}

func (h *Hub) sendRaw(sub *subscription, data []byte) error {
	writeCtx, cancel := context.WithTimeout(sub.ctx, h.writeTimeout)
	defer cancel()
	return sub.conn.Write(writeCtx, websocket.MessageText, data)
}
