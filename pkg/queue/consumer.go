package queue

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"sync"
	"time"

	"github.com/sigmapilot/lens/pkg/metrics"
	"github.com/sigmapilot/lens/pkg/models"
)

// ErrDrop tells the consumer loop to ack a message without retrying and
// without dead-lettering. Used when the handler has already disposed of the
// event (e.g. marked it rejected).
var ErrDrop = errors.New("message dropped")

// NonRetryableError marks a failure that retrying cannot fix (missing event
// row, undecodable payload). The message is dead-lettered immediately.
type NonRetryableError struct {
	ReasonCode string
	Err        error
}

func (e *NonRetryableError) Error() string {
	return fmt.Sprintf("%s: %v", e.ReasonCode, e.Err)
}

func (e *NonRetryableError) Unwrap() error {
	return e.Err
}

// Handler processes a single message. Returning nil acks; ErrDrop acks
// without further action; *NonRetryableError dead-letters immediately; any
// other error is retried with backoff until the retry budget is spent.
type Handler interface {
	Handle(ctx context.Context, msg *Message) error
}

// HandlerFunc adapts a function to the Handler interface.
type HandlerFunc func(ctx context.Context, msg *Message) error

// Handle calls f.
func (f HandlerFunc) Handle(ctx context.Context, msg *Message) error {
	return f(ctx, msg)
}

// DLQRecord is the row-level dead-letter payload handed to the recorder.
type DLQRecord struct {
	EventID      string
	Stage        models.Stage
	ReasonCode   string
	ErrorMessage string
	Payload      map[string]interface{}
	RetryCount   int
}

// DLQRecorder persists dead-letter rows. Implemented by the DLQ service.
type DLQRecorder interface {
	Record(ctx context.Context, rec *DLQRecord) error
}

// ConsumerConfig parameterizes one consumer loop.
type ConsumerConfig struct {
	Stream    string
	Group     string
	Kind      string // worker kind for logs, heartbeats and consumer naming
	Stage     models.Stage
	BatchSize int64
	Block     time.Duration
	RetryMax  int
	BaseDelay time.Duration
	MaxDelay  time.Duration
}

// Consumer is a long-lived loop over one stream + consumer group. Each
// delivered message is dispatched to its own goroutine so a slow message
// does not stall the batch; Stop waits for in-flight messages up to the
// caller's drain budget.
type Consumer struct {
	client   *Client
	cfg      ConsumerConfig
	handler  Handler
	dlq      DLQRecorder
	metrics  *metrics.Metrics
	consumer string

	stopCh   chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
}

// NewConsumer builds a consumer. The consumer name is {kind}-{hostname}-{pid}
// so redeliveries after a crash are attributable.
func NewConsumer(client *Client, cfg ConsumerConfig, handler Handler, dlq DLQRecorder, m *metrics.Metrics) *Consumer {
	hostname, err := os.Hostname()
	if err != nil {
		hostname = "unknown"
	}
	return &Consumer{
		client:   client,
		cfg:      cfg,
		handler:  handler,
		dlq:      dlq,
		metrics:  m,
		consumer: fmt.Sprintf("%s-%s-%d", cfg.Kind, hostname, os.Getpid()),
		stopCh:   make(chan struct{}),
	}
}

// Start ensures the group exists and begins the read loop.
func (c *Consumer) Start(ctx context.Context) error {
	if err := c.client.EnsureGroup(ctx, c.cfg.Stream, c.cfg.Group); err != nil {
		return err
	}
	c.wg.Add(1)
	go c.run(ctx)
	return nil
}

// Stop signals the loop to exit and waits for in-flight messages. Safe to
// call multiple times.
func (c *Consumer) Stop() {
	c.stopOnce.Do(func() { close(c.stopCh) })
	c.wg.Wait()
}

func (c *Consumer) run(ctx context.Context) {
	defer c.wg.Done()

	log := slog.With("worker", c.cfg.Kind, "stream", c.cfg.Stream, "consumer", c.consumer)
	log.Info("Consumer started", "group", c.cfg.Group)

	for {
		select {
		case <-c.stopCh:
			log.Info("Consumer shutting down")
			return
		case <-ctx.Done():
			log.Info("Context cancelled, consumer shutting down")
			return
		default:
		}

		c.metrics.Heartbeat(c.cfg.Kind)

		msgs, err := c.client.ReadGroup(ctx, c.cfg.Stream, c.cfg.Group, c.consumer, c.cfg.BatchSize, c.cfg.Block)
		if err != nil {
			if ctx.Err() != nil {
				continue
			}
			log.Error("Read failed", "error", err)
			c.sleep(time.Second)
			continue
		}

		for i := range msgs {
			msg := msgs[i]
			c.wg.Add(1)
			go func() {
				defer c.wg.Done()
				c.process(ctx, &msg)
			}()
		}
	}
}

// process runs the handler and disposes of the message: ack, delayed
// re-append with an incremented retry_count, or DLQ handoff.
func (c *Consumer) process(ctx context.Context, msg *Message) {
	log := slog.With("worker", c.cfg.Kind, "event_id", msg.EventID, "message_id", msg.ID)

	err := c.handler.Handle(ctx, msg)
	switch {
	case err == nil, errors.Is(err, ErrDrop):
		c.ack(ctx, msg, log)
		return
	}

	var nonRetryable *NonRetryableError
	if errors.As(err, &nonRetryable) {
		log.Error("Non-retryable failure, dead-lettering",
			"reason_code", nonRetryable.ReasonCode, "error", nonRetryable.Err)
		c.deadLetter(ctx, msg, nonRetryable.ReasonCode, nonRetryable.Error())
		c.ack(ctx, msg, log)
		return
	}

	if msg.RetryCount >= c.cfg.RetryMax {
		log.Error("Retry budget exhausted, dead-lettering",
			"retry_count", msg.RetryCount, "error", err)
		c.deadLetter(ctx, msg, "max_retries_exceeded", err.Error())
		c.ack(ctx, msg, log)
		return
	}

	delay := RetryDelay(msg.RetryCount, c.cfg.BaseDelay, c.cfg.MaxDelay)
	log.Warn("Transient failure, scheduling retry",
		"retry_count", msg.RetryCount, "delay", delay, "error", err)

	select {
	case <-time.After(delay):
	case <-c.stopCh:
		// Leave the message unacked: the substrate redelivers it to the
		// next consumer after the idle timeout.
		return
	}

	retry := &Message{
		EventID:    msg.EventID,
		Payload:    msg.Payload,
		RetryCount: msg.RetryCount + 1,
		EnqueuedAt: time.Now().UTC(),
	}
	if _, err := c.client.Append(ctx, c.cfg.Stream, retry); err != nil {
		log.Error("Failed to re-append for retry, leaving unacked", "error", err)
		return
	}
	c.ack(ctx, msg, log)
}

func (c *Consumer) ack(ctx context.Context, msg *Message, log *slog.Logger) {
	if err := c.client.Ack(ctx, c.cfg.Stream, c.cfg.Group, msg.ID); err != nil {
		log.Error("Ack failed", "error", err)
	}
}

// deadLetter writes the DLQ row and mirrors the message onto the dlq stream.
func (c *Consumer) deadLetter(ctx context.Context, msg *Message, reasonCode, errMsg string) {
	payload := map[string]interface{}{}
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		payload = map[string]interface{}{"raw": string(msg.Payload)}
	}

	rec := &DLQRecord{
		EventID:      msg.EventID,
		Stage:        c.cfg.Stage,
		ReasonCode:   reasonCode,
		ErrorMessage: errMsg,
		Payload:      payload,
		RetryCount:   msg.RetryCount,
	}
	if c.dlq != nil {
		if err := c.dlq.Record(ctx, rec); err != nil {
			slog.Error("Failed to persist DLQ row",
				"event_id", msg.EventID, "stage", c.cfg.Stage, "error", err)
		}
	}
	c.metrics.ObserveDLQ(string(c.cfg.Stage), reasonCode)

	mirror := &Message{
		EventID:    msg.EventID,
		Payload:    msg.Payload,
		RetryCount: msg.RetryCount,
		EnqueuedAt: time.Now().UTC(),
	}
	if _, err := c.client.Append(ctx, StreamDLQ, mirror); err != nil {
		slog.Error("Failed to mirror message onto DLQ stream",
			"event_id", msg.EventID, "error", err)
	}
}

// sleep waits for d or until stop is signalled.
func (c *Consumer) sleep(d time.Duration) {
	select {
	case <-c.stopCh:
	case <-time.After(d):
	}
}
