// Package ratelimit implements a sliding-window rate limiter on Redis
// sorted sets. Each request timestamp is a ZSET member; pruning, counting
// and adding happen in one pipeline so concurrent requests stay consistent.
package ratelimit

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

const windowSize = 60 * time.Second

// Result is the outcome of one admission check.
type Result struct {
	Allowed    bool
	Remaining  int
	RetryAfter int // seconds; zero when allowed
}

// Usage reports the current window occupancy for a key.
type Usage struct {
	Limit         int `json:"limit"`
	Burst         int `json:"burst"`
	Used          int `json:"used"`
	Remaining     int `json:"remaining"`
	WindowSeconds int `json:"window_seconds"`
}

// Limiter enforces a soft per-minute limit with a hard burst cap. Requests
// between the two consume burst allowance; beyond the cap they are rejected
// until the window slides.
type Limiter struct {
	rdb     *redis.Client
	perMin  int
	burst   int
	enabled bool
}

// New builds a limiter. enabled=false admits everything.
func New(rdb *redis.Client, perMin, burst int, enabled bool) *Limiter {
	return &Limiter{rdb: rdb, perMin: perMin, burst: burst, enabled: enabled}
}

// Allow admits or rejects one request for key. The count is taken before the
// current request is added, so the first request in an empty window sees
// count zero.
func (l *Limiter) Allow(ctx context.Context, key string) (Result, error) {
	if !l.enabled {
		return Result{Allowed: true, Remaining: l.perMin}, nil
	}

	now := time.Now()
	windowStart := now.Add(-windowSize)
	redisKey := "ratelimit:" + key

	pipe := l.rdb.Pipeline()
	pipe.ZRemRangeByScore(ctx, redisKey, "0", strconv.FormatFloat(unixFloat(windowStart), 'f', -1, 64))
	card := pipe.ZCard(ctx, redisKey)
	member := strconv.FormatFloat(unixFloat(now), 'f', -1, 64)
	pipe.ZAdd(ctx, redisKey, redis.Z{Score: unixFloat(now), Member: member})
	pipe.Expire(ctx, redisKey, windowSize+time.Second)
	if _, err := pipe.Exec(ctx); err != nil {
		return Result{}, fmt.Errorf("rate limit check: %w", err)
	}

	count := int(card.Val())

	if count >= l.burst {
		return Result{RetryAfter: int(windowSize / time.Second)}, nil
	}

	if count >= l.perMin {
		remaining := l.burst - count - 1
		if remaining <= 0 {
			return Result{RetryAfter: int(windowSize / time.Second / 2)}, nil
		}
		return Result{Allowed: true, Remaining: remaining}, nil
	}

	remaining := l.perMin - count - 1
	if remaining < 0 {
		remaining = 0
	}
	return Result{Allowed: true, Remaining: remaining}, nil
}

// GetUsage returns window occupancy without consuming a slot.
func (l *Limiter) GetUsage(ctx context.Context, key string) (Usage, error) {
	now := time.Now()
	windowStart := now.Add(-windowSize)
	redisKey := "ratelimit:" + key

	count, err := l.rdb.ZCount(ctx, redisKey,
		strconv.FormatFloat(unixFloat(windowStart), 'f', -1, 64),
		strconv.FormatFloat(unixFloat(now), 'f', -1, 64)).Result()
	if err != nil {
		return Usage{}, fmt.Errorf("rate limit usage: %w", err)
	}

	remaining := l.perMin - int(count)
	if remaining < 0 {
		remaining = 0
	}
	return Usage{
		Limit:         l.perMin,
		Burst:         l.burst,
		Used:          int(count),
		Remaining:     remaining,
		WindowSeconds: int(windowSize / time.Second),
	}, nil
}

func unixFloat(t time.Time) float64 {
	return float64(t.UnixNano()) / float64(time.Second)
}
