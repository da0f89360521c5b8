package queue

import (
	"math/rand/v2"
	"time"
)

// RetryDelay computes the delay before attempt n (0-based) is retried:
// base × 2^n with ±25% jitter, capped at max. The jitter is applied after
// the cap so the expected delay stays monotone below it.
func RetryDelay(attempt int, base, max time.Duration) time.Duration {
	if base <= 0 {
		return 0
	}
	d := base
	for i := 0; i < attempt; i++ {
		d *= 2
		if d >= max {
			break
		}
	}
	if d > max {
		d = max
	}
	// jitter in [-25%, +25%)
	jitter := time.Duration((rand.Float64()*0.5 - 0.25) * float64(d))
	return d + jitter
}
