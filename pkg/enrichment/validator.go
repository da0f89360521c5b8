// Package enrichment consumes pending signals, validates them, attaches
// market data and indicators per the feature profile, and forwards the
// enriched payload to evaluation.
package enrichment

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/sigmapilot/lens/pkg/market"
	"github.com/sigmapilot/lens/pkg/models"
)

// Rejection reason codes.
const (
	ReasonSignalTooOld      = "signal_too_old"
	ReasonPriceDriftTooHigh = "price_drift_too_high"
)

// RejectionError marks a signal that fails hard validation. The event is
// terminally rejected: no retry, no DLQ.
type RejectionError struct {
	Reason string
	Detail string
}

func (e *RejectionError) Error() string {
	return fmt.Sprintf("%s: %s", e.Reason, e.Detail)
}

// Validator applies the hard gates before enrichment spends provider budget:
// signal age first (no network), then price drift against the live mid.
type Validator struct {
	provider    market.Provider
	maxAge      time.Duration
	maxDriftBps float64
}

// NewValidator builds a validator with the configured limits.
func NewValidator(provider market.Provider, maxAge time.Duration, maxDriftBps float64) *Validator {
	return &Validator{provider: provider, maxAge: maxAge, maxDriftBps: maxDriftBps}
}

// Validate returns nil for an acceptable signal, *RejectionError for a hard
// failure, or a transient error when the drift check could not reach the
// provider.
func (v *Validator) Validate(ctx context.Context, payload *models.SignalPayload) error {
	age := time.Since(payload.TsUTC)
	if age > v.maxAge {
		return &RejectionError{
			Reason: ReasonSignalTooOld,
			Detail: fmt.Sprintf("signal is %.0fs old (max: %.0fs)", age.Seconds(), v.maxAge.Seconds()),
		}
	}

	entry := payload.EntryPrice.InexactFloat64()
	if entry <= 0 {
		return nil
	}

	ticker, err := v.provider.GetTicker(ctx, payload.Symbol)
	if err != nil {
		return fmt.Errorf("drift check: %w", err)
	}

	drift := DriftBps(ticker.Mid, entry)
	if drift > v.maxDriftBps {
		return &RejectionError{
			Reason: ReasonPriceDriftTooHigh,
			Detail: fmt.Sprintf("price drifted %.1f bps from entry (max: %.0f bps)", drift, v.maxDriftBps),
		}
	}
	return nil
}

// DriftBps is the absolute distance between the live mid and the signalled
// entry price in basis points of the entry.
func DriftBps(mid, entry float64) float64 {
	if entry <= 0 {
		return 0
	}
	return math.Abs(mid-entry) / entry * 10000
}
