package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// SignalPayload is the canonical in-flight representation of a submitted
// signal. It is serialized into the `payload` field of pending-stream
// messages and stored verbatim as events.raw_payload.
type SignalPayload struct {
	EventID          string          `json:"event_id"`
	EventType        EventType       `json:"event_type"`
	Symbol           string          `json:"symbol"`
	SignalDirection  SignalDirection `json:"signal_direction"`
	EntryPrice       decimal.Decimal `json:"entry_price"`
	Size             decimal.Decimal `json:"size"`
	LiquidationPrice decimal.Decimal `json:"liquidation_price"`
	TsUTC            time.Time       `json:"ts_utc"`
	Source           string          `json:"source"`
	FeatureProfile   string          `json:"feature_profile,omitempty"`
}
