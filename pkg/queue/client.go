// Package queue implements the durable stream substrate on Redis Streams:
// ordered append, consumer-group reads with per-message ack, and the shared
// consumer loop with retry, backoff and DLQ handoff.
package queue

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

// Stream names. The DLQ stream mirrors dead-lettered messages; the
// authoritative DLQ record is the dlq_entries row.
const (
	StreamPending  = "lens:signals:pending"
	StreamEnriched = "lens:signals:enriched"
	StreamDLQ      = "lens:dlq"
)

// Consumer group names.
const (
	GroupEnrichment = "enrichment-workers"
	GroupEvaluation = "evaluation-workers"
)

// maxStreamLen caps stream growth with approximate trimming.
const maxStreamLen = 100000

// Error wraps a queue substrate failure. Queue errors are transient: the
// consumer retries them and ingress maps them to 500 QUEUE_ERROR.
type Error struct {
	Op  string
	Err error
}

func (e *Error) Error() string {
	return fmt.Sprintf("queue %s: %v", e.Op, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Client wraps go-redis stream operations.
type Client struct {
	rdb *redis.Client
}

// NewClient parses the Redis URL and returns a connected client.
func NewClient(redisURL string, poolSize int) (*Client, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("invalid REDIS_URL: %w", err)
	}
	if poolSize > 0 {
		opts.PoolSize = poolSize
	}
	return &Client{rdb: redis.NewClient(opts)}, nil
}

// NewClientFromRedis wraps an existing go-redis client (useful for testing).
func NewClientFromRedis(rdb *redis.Client) *Client {
	return &Client{rdb: rdb}
}

// Redis exposes the underlying client for the rate limiter and readiness
// checks, which share the connection pool.
func (c *Client) Redis() *redis.Client {
	return c.rdb
}

// Ping verifies connectivity.
func (c *Client) Ping(ctx context.Context) error {
	if err := c.rdb.Ping(ctx).Err(); err != nil {
		return &Error{Op: "ping", Err: err}
	}
	return nil
}

// Close releases the connection pool.
func (c *Client) Close() error {
	return c.rdb.Close()
}

// Append adds a message to the stream and returns its id. Ids are
// monotonically non-decreasing within a stream.
func (c *Client) Append(ctx context.Context, stream string, msg *Message) (string, error) {
	id, err := c.rdb.XAdd(ctx, &redis.XAddArgs{
		Stream: stream,
		MaxLen: maxStreamLen,
		Approx: true,
		Values: msg.values(),
	}).Result()
	if err != nil {
		return "", &Error{Op: "append", Err: err}
	}
	return id, nil
}

// ReadGroup blocks up to block for new entries and returns at most count
// messages. Each entry is delivered to exactly one consumer in the group
// until acked. A timed-out block returns (nil, nil).
func (c *Client) ReadGroup(ctx context.Context, stream, group, consumer string, count int64, block time.Duration) ([]Message, error) {
	streams, err := c.rdb.XReadGroup(ctx, &redis.XReadGroupArgs{
		Group:    group,
		Consumer: consumer,
		Streams:  []string{stream, ">"},
		Count:    count,
		Block:    block,
	}).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		// The group can vanish when Redis is flushed out from under a
		// running consumer. Recreate once and let the caller re-poll.
		if strings.HasPrefix(err.Error(), "NOGROUP") {
			if gerr := c.EnsureGroup(ctx, stream, group); gerr != nil {
				return nil, gerr
			}
			return nil, nil
		}
		return nil, &Error{Op: "read_group", Err: err}
	}

	var msgs []Message
	for _, s := range streams {
		for _, xm := range s.Messages {
			msg, err := decodeMessage(xm.ID, xm.Values)
			if err != nil {
				// Undecodable entries are acked and skipped; they can
				// only come from a foreign producer.
				_ = c.Ack(ctx, stream, group, xm.ID)
				continue
			}
			msgs = append(msgs, *msg)
		}
	}
	return msgs, nil
}

// Ack acknowledges a delivered message.
func (c *Client) Ack(ctx context.Context, stream, group, id string) error {
	if err := c.rdb.XAck(ctx, stream, group, id).Err(); err != nil {
		return &Error{Op: "ack", Err: err}
	}
	return nil
}

// Length returns the current stream length.
func (c *Client) Length(ctx context.Context, stream string) (int64, error) {
	n, err := c.rdb.XLen(ctx, stream).Result()
	if err != nil {
		return 0, &Error{Op: "length", Err: err}
	}
	return n, nil
}

// EnsureGroup creates the consumer group if it does not exist. Idempotent:
// BUSYGROUP from a concurrent creation is not an error.
func (c *Client) EnsureGroup(ctx context.Context, stream, group string) error {
	err := c.rdb.XGroupCreateMkStream(ctx, stream, group, "0").Err()
	if err != nil && !strings.HasPrefix(err.Error(), "BUSYGROUP") {
		return &Error{Op: "ensure_group", Err: err}
	}
	return nil
}
