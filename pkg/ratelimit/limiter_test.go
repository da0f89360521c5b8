package ratelimit

import (
	"context"
	"fmt"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLimiter(t *testing.T, perMin, burst int) *Limiter {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	return New(rdb, perMin, burst, true)
}

func TestAllowWithinSoftLimit(t *testing.T) {
	ctx := context.Background()
	l := newTestLimiter(t, 5, 10)

	for i := 0; i < 5; i++ {
		res, err := l.Allow(ctx, "client-a")
		require.NoError(t, err)
		assert.True(t, res.Allowed, "request %d", i+1)
		assert.Equal(t, 5-i-1, res.Remaining, "request %d", i+1)
		assert.Zero(t, res.RetryAfter)
	}
}

func TestBurstZone(t *testing.T) {
	ctx := context.Background()
	l := newTestLimiter(t, 3, 6)

	// First 3 requests pass the soft limit.
	for i := 0; i < 3; i++ {
		res, err := l.Allow(ctx, "k")
		require.NoError(t, err)
		require.True(t, res.Allowed)
	}

	// Requests 4 and 5 consume burst allowance.
	res, err := l.Allow(ctx, "k")
	require.NoError(t, err)
	assert.True(t, res.Allowed)
	assert.Equal(t, 2, res.Remaining)

	res, err = l.Allow(ctx, "k")
	require.NoError(t, err)
	assert.True(t, res.Allowed)
	assert.Equal(t, 1, res.Remaining)

	// Request 6 exhausts the burst zone: rejected with half-window wait.
	res, err = l.Allow(ctx, "k")
	require.NoError(t, err)
	assert.False(t, res.Allowed)
	assert.Equal(t, 30, res.RetryAfter)
}

func TestHardLimitRejected(t *testing.T) {
	ctx := context.Background()
	l := newTestLimiter(t, 2, 4)

	for i := 0; i < 6; i++ {
		_, err := l.Allow(ctx, "k")
		require.NoError(t, err)
	}

	res, err := l.Allow(ctx, "k")
	require.NoError(t, err)
	assert.False(t, res.Allowed)
	assert.Zero(t, res.Remaining)
	assert.Equal(t, 60, res.RetryAfter)
}

func TestKeysAreIndependent(t *testing.T) {
	ctx := context.Background()
	l := newTestLimiter(t, 2, 3)

	for i := 0; i < 4; i++ {
		_, err := l.Allow(ctx, "noisy")
		require.NoError(t, err)
	}
	res, err := l.Allow(ctx, "noisy")
	require.NoError(t, err)
	require.False(t, res.Allowed)

	res, err = l.Allow(ctx, "quiet")
	require.NoError(t, err)
	assert.True(t, res.Allowed)
	assert.Equal(t, 1, res.Remaining)
}

func TestDisabledLimiterAdmitsEverything(t *testing.T) {
	ctx := context.Background()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	l := New(rdb, 1, 2, false)

	for i := 0; i < 50; i++ {
		res, err := l.Allow(ctx, "k")
		require.NoError(t, err)
		assert.True(t, res.Allowed)
		assert.Equal(t, 1, res.Remaining)
	}
}

func TestGetUsage(t *testing.T) {
	ctx := context.Background()
	l := newTestLimiter(t, 10, 20)

	for i := 0; i < 4; i++ {
		_, err := l.Allow(ctx, fmt.Sprintf("signals:%s", "1.2.3.4"))
		require.NoError(t, err)
	}

	usage, err := l.GetUsage(ctx, "signals:1.2.3.4")
	require.NoError(t, err)
	assert.Equal(t, 10, usage.Limit)
	assert.Equal(t, 20, usage.Burst)
	assert.Equal(t, 4, usage.Used)
	assert.Equal(t, 6, usage.Remaining)
	assert.Equal(t, 60, usage.WindowSeconds)
}
