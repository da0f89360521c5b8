package queue

import (
	"fmt"
	"strconv"
	"time"
)

// Message is one stream entry. Payload is the JSON-encoded stage payload;
// RetryCount travels with the message because Redis Streams have no native
// redelivery counter across re-appends.
type Message struct {
	ID         string
	EventID    string
	Payload    []byte
	RetryCount int
	EnqueuedAt time.Time
}

// NewMessage builds an entry for first enqueue.
func NewMessage(eventID string, payload []byte) *Message {
	return &Message{
		EventID:    eventID,
		Payload:    payload,
		EnqueuedAt: time.Now().UTC(),
	}
}

// values renders the message into stream fields.
func (m *Message) values() map[string]interface{} {
	return map[string]interface{}{
		"event_id":    m.EventID,
		"payload":     string(m.Payload),
		"enqueued_at": m.EnqueuedAt.Format(time.RFC3339Nano),
		"retry_count": strconv.Itoa(m.RetryCount),
	}
}

// decodeMessage parses stream fields back into a Message.
func decodeMessage(id string, values map[string]interface{}) (*Message, error) {
	msg := &Message{ID: id}

	payload, ok := values["payload"].(string)
	if !ok {
		return nil, fmt.Errorf("message %s: missing payload field", id)
	}
	msg.Payload = []byte(payload)

	if v, ok := values["event_id"].(string); ok {
		msg.EventID = v
	}
	if v, ok := values["retry_count"].(string); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("message %s: invalid retry_count %q", id, v)
		}
		msg.RetryCount = n
	}
	if v, ok := values["enqueued_at"].(string); ok {
		if t, err := time.Parse(time.RFC3339Nano, v); err == nil {
			msg.EnqueuedAt = t
		}
	}
	return msg, nil
}
