package publisher

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/coder/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestHub(t *testing.T, maxConns int) (*Hub, *httptest.Server) {
	t.Helper()

	hub := NewHub(maxConns)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
			InsecureSkipVerify: true,
		})
		if err != nil {
			t.Logf("WebSocket accept error: %v", err)
			return
		}
		hub.HandleConnection(r.Context(), conn)
	}))

	t.Cleanup(func() { server.Close() })
	return hub, server
}

func connectWS(t *testing.T, server *httptest.Server) *websocket.Conn {
	t.Helper()
	url := "ws" + server.URL[len("http"):]
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	conn, _, err := websocket.Dial(ctx, url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close(websocket.StatusNormalClosure, "") })
	return conn
}

func readJSON(t *testing.T, conn *websocket.Conn) map[string]interface{} {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, data, err := conn.Read(ctx)
	require.NoError(t, err)

	var msg map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &msg))
	return msg
}

func sendJSON(t *testing.T, conn *websocket.Conn, v interface{}) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	data, err := json.Marshal(v)
	require.NoError(t, err)
	require.NoError(t, conn.Write(ctx, websocket.MessageText, data))
}

// subscribe sends a subscribe action and consumes the confirmation.
func subscribe(t *testing.T, conn *websocket.Conn, filters map[string]string) {
	t.Helper()
	sendJSON(t, conn, map[string]interface{}{"action": "subscribe", "filters": filters})
	msg := readJSON(t, conn)
	require.Equal(t, "subscription.confirmed", msg["type"])
}

func waitForActive(t *testing.T, hub *Hub, want int) {
	t.Helper()
	require.Eventually(t, func() bool {
		return hub.ActiveConnections() == want
	}, 5*time.Second, 10*time.Millisecond)
}

func testFrame(model, symbol, eventType string) DecisionFrame {
	return DecisionFrame{
		EventID:     "evt-1",
		Symbol:      symbol,
		EventType:   eventType,
		Model:       model,
		Decision:    map[string]interface{}{"decision": "OPEN_LONG", "confidence": 0.75},
		PublishedAt: time.Now().UTC(),
	}
}

func TestHub_ConnectionEstablished(t *testing.T) {
	hub, server := setupTestHub(t, 0)
	conn := connectWS(t, server)

	msg := readJSON(t, conn)
	assert.Equal(t, "connection.established", msg["type"])
	assert.NotEmpty(t, msg["connection_id"])
	waitForActive(t, hub, 1)
}

func TestHub_BroadcastToMatchingSubscribers(t *testing.T) {
	hub, server := setupTestHub(t, 0)

	all := connectWS(t, server)
	readJSON(t, all)
	subscribe(t, all, nil)

	btcOnly := connectWS(t, server)
	readJSON(t, btcOnly)
	subscribe(t, btcOnly, map[string]string{"symbol": "ETH"})

	hub.BroadcastDecision(testFrame("chatgpt", "BTC", "OPEN_SIGNAL"))

	msg := readJSON(t, all)
	assert.Equal(t, "decision", msg["type"])
	assert.Equal(t, "evt-1", msg["event_id"])
	assert.Equal(t, "chatgpt", msg["model"])
	decision, ok := msg["decision"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "OPEN_LONG", decision["decision"])

	// The ETH subscriber must not have received the BTC frame: a ping must
	// be the next thing it reads.
	sendJSON(t, btcOnly, map[string]string{"type": "ping"})
	msg = readJSON(t, btcOnly)
	assert.Equal(t, "pong", msg["type"])
}

func TestHub_FilterConjunction(t *testing.T) {
	f := Filters{Model: "claude", Symbol: "BTC"}

	match := testFrame("claude", "BTC", "OPEN_SIGNAL")
	assert.True(t, f.Matches(&match))

	wrongModel := testFrame("gemini", "BTC", "OPEN_SIGNAL")
	assert.False(t, f.Matches(&wrongModel))

	wrongSymbol := testFrame("claude", "ETH", "OPEN_SIGNAL")
	assert.False(t, f.Matches(&wrongSymbol))

	everything := Filters{}
	assert.True(t, everything.Matches(&wrongModel))
}

func TestHub_UnsubscribeParksConnection(t *testing.T) {
	hub, server := setupTestHub(t, 0)

	conn := connectWS(t, server)
	readJSON(t, conn)
	subscribe(t, conn, nil)

	sendJSON(t, conn, map[string]string{"action": "unsubscribe"})
	msg := readJSON(t, conn)
	require.Equal(t, "subscription.removed", msg["type"])

	hub.BroadcastDecision(testFrame("chatgpt", "BTC", "OPEN_SIGNAL"))

	// Parked: the broadcast must be skipped, connection stays usable.
	sendJSON(t, conn, map[string]string{"type": "ping"})
	msg = readJSON(t, conn)
	assert.Equal(t, "pong", msg["type"])
	assert.Equal(t, 1, hub.ActiveConnections())
}

func TestHub_UnknownAction(t *testing.T) {
	_, server := setupTestHub(t, 0)

	conn := connectWS(t, server)
	readJSON(t, conn)

	sendJSON(t, conn, map[string]string{"action": "resubscribe"})
	msg := readJSON(t, conn)
	assert.Equal(t, "error", msg["type"])
	assert.Equal(t, "INVALID_ACTION", msg["code"])
	assert.Equal(t, "Unknown action: resubscribe", msg["message"])

	// The connection survives the bad action.
	sendJSON(t, conn, map[string]string{"type": "ping"})
	msg = readJSON(t, conn)
	assert.Equal(t, "pong", msg["type"])
}

func TestHub_ConnectionCap(t *testing.T) {
	hub, server := setupTestHub(t, 1)

	first := connectWS(t, server)
	readJSON(t, first)
	waitForActive(t, hub, 1)

	second := connectWS(t, server)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_, _, err := second.Read(ctx)
	require.Error(t, err)
	assert.Equal(t, StatusTooManyConnections, websocket.CloseStatus(err))
}

func TestHub_Snapshot(t *testing.T) {
	hub, server := setupTestHub(t, 0)

	all := connectWS(t, server)
	readJSON(t, all)
	subscribe(t, all, nil)

	filtered := connectWS(t, server)
	readJSON(t, filtered)
	subscribe(t, filtered, map[string]string{"model": "claude", "symbol": "BTC"})

	stats := hub.Snapshot()
	assert.Equal(t, 2, stats.TotalConnections)
	assert.Equal(t, 1, stats.SubscriptionsByFilter["all"])
	assert.Equal(t, 1, stats.SubscriptionsByFilter["model"])
	assert.Equal(t, 1, stats.SubscriptionsByFilter["symbol"])
	assert.Equal(t, 0, stats.SubscriptionsByFilter["event_type"])
}

func TestHub_DisconnectUnregisters(t *testing.T) {
	hub, server := setupTestHub(t, 0)

	conn := connectWS(t, server)
	readJSON(t, conn)
	waitForActive(t, hub, 1)

	require.NoError(t, conn.Close(websocket.StatusNormalClosure, ""))
	waitForActive(t, hub, 0)
}
