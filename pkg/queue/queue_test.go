package queue

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sigmapilot/lens/pkg/models"
)

func newTestClient(t *testing.T) *Client {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	return NewClientFromRedis(rdb)
}

func TestAppendReadAckRoundTrip(t *testing.T) {
	ctx := context.Background()
	client := newTestClient(t)

	require.NoError(t, client.EnsureGroup(ctx, StreamPending, "enrichment-workers"))

	msg := NewMessage("evt-1", []byte(`{"symbol":"BTC"}`))
	id, err := client.Append(ctx, StreamPending, msg)
	require.NoError(t, err)
	assert.NotEmpty(t, id)

	got, err := client.ReadGroup(ctx, StreamPending, "enrichment-workers", "c1", 10, 10*time.Millisecond)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "evt-1", got[0].EventID)
	assert.Equal(t, `{"symbol":"BTC"}`, string(got[0].Payload))
	assert.Equal(t, 0, got[0].RetryCount)

	require.NoError(t, client.Ack(ctx, StreamPending, "enrichment-workers", got[0].ID))

	// Acked messages are not redelivered on the new-messages cursor.
	got, err = client.ReadGroup(ctx, StreamPending, "enrichment-workers", "c1", 10, 10*time.Millisecond)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestEnsureGroupIdempotent(t *testing.T) {
	ctx := context.Background()
	client := newTestClient(t)

	require.NoError(t, client.EnsureGroup(ctx, StreamEnriched, "evaluation-workers"))
	require.NoError(t, client.EnsureGroup(ctx, StreamEnriched, "evaluation-workers"))
}

func TestGroupDeliversEachMessageOnce(t *testing.T) {
	ctx := context.Background()
	client := newTestClient(t)

	require.NoError(t, client.EnsureGroup(ctx, StreamPending, "g"))
	for _, id := range []string{"a", "b", "c"} {
		_, err := client.Append(ctx, StreamPending, NewMessage(id, []byte("{}")))
		require.NoError(t, err)
	}

	first, err := client.ReadGroup(ctx, StreamPending, "g", "c1", 2, 10*time.Millisecond)
	require.NoError(t, err)
	second, err := client.ReadGroup(ctx, StreamPending, "g", "c2", 2, 10*time.Millisecond)
	require.NoError(t, err)

	seen := map[string]bool{}
	for _, m := range append(first, second...) {
		assert.False(t, seen[m.EventID], "event %s delivered twice", m.EventID)
		seen[m.EventID] = true
	}
	assert.Len(t, seen, 3)
}

func TestLength(t *testing.T) {
	ctx := context.Background()
	client := newTestClient(t)

	n, err := client.Length(ctx, StreamPending)
	require.NoError(t, err)
	assert.Zero(t, n)

	_, err = client.Append(ctx, StreamPending, NewMessage("e1", []byte("{}")))
	require.NoError(t, err)
	n, err = client.Length(ctx, StreamPending)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}

func TestRetryDelayBounds(t *testing.T) {
	base := 500 * time.Millisecond
	max := 30 * time.Second

	for attempt := 0; attempt < 10; attempt++ {
		for i := 0; i < 50; i++ {
			d := RetryDelay(attempt, base, max)
			expected := base * (1 << attempt)
			if expected > max || expected <= 0 {
				expected = max
			}
			lo := time.Duration(float64(expected) * 0.75)
			hi := time.Duration(float64(expected) * 1.25)
			assert.GreaterOrEqual(t, d, lo, "attempt %d", attempt)
			assert.LessOrEqual(t, d, hi, "attempt %d", attempt)
		}
	}
}

func TestRetryDelayCapped(t *testing.T) {
	d := RetryDelay(20, time.Second, 30*time.Second)
	assert.LessOrEqual(t, d, time.Duration(float64(30*time.Second)*1.25))
}

type recordingDLQ struct {
	mu   sync.Mutex
	recs []*DLQRecord
}

func (r *recordingDLQ) Record(_ context.Context, rec *DLQRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.recs = append(r.recs, rec)
	return nil
}

func (r *recordingDLQ) records() []*DLQRecord {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*DLQRecord, len(r.recs))
	copy(out, r.recs)
	return out
}

func testConsumerConfig() ConsumerConfig {
	return ConsumerConfig{
		Stream:    StreamPending,
		Group:     "enrichment-workers",
		Kind:      "enrichment",
		Stage:     models.StageEnrich,
		BatchSize: 10,
		Block:     10 * time.Millisecond,
		RetryMax:  2,
		BaseDelay: time.Millisecond,
		MaxDelay:  5 * time.Millisecond,
	}
}

func TestConsumerAcksOnSuccess(t *testing.T) {
	ctx := context.Background()
	client := newTestClient(t)

	handled := make(chan string, 1)
	handler := HandlerFunc(func(ctx context.Context, msg *Message) error {
		handled <- msg.EventID
		return nil
	})

	c := NewConsumer(client, testConsumerConfig(), handler, nil, nil)
	require.NoError(t, c.Start(ctx))
	defer c.Stop()

	_, err := client.Append(ctx, StreamPending, NewMessage("evt-ok", []byte("{}")))
	require.NoError(t, err)

	select {
	case id := <-handled:
		assert.Equal(t, "evt-ok", id)
	case <-time.After(2 * time.Second):
		t.Fatal("handler was not invoked")
	}
}

func TestConsumerRetriesTransientThenDeadLetters(t *testing.T) {
	ctx := context.Background()
	client := newTestClient(t)

	var mu sync.Mutex
	var attempts []int
	handler := HandlerFunc(func(ctx context.Context, msg *Message) error {
		mu.Lock()
		attempts = append(attempts, msg.RetryCount)
		mu.Unlock()
		return assert.AnError
	})

	dlq := &recordingDLQ{}
	c := NewConsumer(client, testConsumerConfig(), handler, dlq, nil)
	require.NoError(t, c.Start(ctx))
	defer c.Stop()

	_, err := client.Append(ctx, StreamPending, NewMessage("evt-fail", []byte(`{"k":1}`)))
	require.NoError(t, err)

	require.Eventually(t, func() bool {
		return len(dlq.records()) == 1
	}, 5*time.Second, 10*time.Millisecond)

	mu.Lock()
	defer mu.Unlock()
	// Attempts at retry_count 0, 1 and the final one at RetryMax.
	assert.Equal(t, []int{0, 1, 2}, attempts)

	rec := dlq.records()[0]
	assert.Equal(t, "evt-fail", rec.EventID)
	assert.Equal(t, models.StageEnrich, rec.Stage)
	assert.Equal(t, "max_retries_exceeded", rec.ReasonCode)
	assert.Equal(t, 2, rec.RetryCount)
	assert.Equal(t, float64(1), rec.Payload["k"])

	// The message is mirrored onto the DLQ stream.
	n, err := client.Length(ctx, StreamDLQ)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}

func TestConsumerDeadLettersNonRetryableImmediately(t *testing.T) {
	ctx := context.Background()
	client := newTestClient(t)

	var calls int
	var mu sync.Mutex
	handler := HandlerFunc(func(ctx context.Context, msg *Message) error {
		mu.Lock()
		calls++
		mu.Unlock()
		return &NonRetryableError{ReasonCode: "event_not_found", Err: assert.AnError}
	})

	dlq := &recordingDLQ{}
	c := NewConsumer(client, testConsumerConfig(), handler, dlq, nil)
	require.NoError(t, c.Start(ctx))
	defer c.Stop()

	_, err := client.Append(ctx, StreamPending, NewMessage("evt-bad", []byte("{}")))
	require.NoError(t, err)

	require.Eventually(t, func() bool {
		return len(dlq.records()) == 1
	}, 2*time.Second, 10*time.Millisecond)

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, 1, calls)
	assert.Equal(t, "event_not_found", dlq.records()[0].ReasonCode)
	assert.Equal(t, 0, dlq.records()[0].RetryCount)
}

func TestConsumerDropsOnErrDrop(t *testing.T) {
	ctx := context.Background()
	client := newTestClient(t)

	handled := make(chan struct{}, 1)
	handler := HandlerFunc(func(ctx context.Context, msg *Message) error {
		handled <- struct{}{}
		return ErrDrop
	})

	dlq := &recordingDLQ{}
	c := NewConsumer(client, testConsumerConfig(), handler, dlq, nil)
	require.NoError(t, c.Start(ctx))
	defer c.Stop()

	_, err := client.Append(ctx, StreamPending, NewMessage("evt-drop", []byte("{}")))
	require.NoError(t, err)

	select {
	case <-handled:
	case <-time.After(2 * time.Second):
		t.Fatal("handler was not invoked")
	}

	// Dropped messages never reach the DLQ.
	time.Sleep(50 * time.Millisecond)
	assert.Empty(t, dlq.records())
	n, err := client.Length(ctx, StreamDLQ)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestConsumerStopIsIdempotent(t *testing.T) {
	ctx := context.Background()
	client := newTestClient(t)

	c := NewConsumer(client, testConsumerConfig(), HandlerFunc(func(context.Context, *Message) error {
		return nil
	}), nil, nil)
	require.NoError(t, c.Start(ctx))
	c.Stop()
	c.Stop()
}
