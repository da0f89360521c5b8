package models

import "time"

// MarketSnapshot is the provider-agnostic price block attached to an
// enriched event.
type MarketSnapshot struct {
	MidPrice               float64  `json:"mid_price"`
	Bid                    float64  `json:"bid"`
	Ask                    float64  `json:"ask"`
	SpreadBps              float64  `json:"spread_bps"`
	PriceDriftFromEntryBps float64  `json:"price_drift_from_entry_bps"`
	Volume24h              *float64 `json:"volume_24h,omitempty"`
}

// DerivsBlock carries the derivatives context bundle when the feature
// profile requires it.
type DerivsBlock struct {
	FundingRate      float64  `json:"funding_rate"`
	PredictedFunding *float64 `json:"predicted_funding,omitempty"`
	FundingIntervalH int      `json:"funding_interval_h"`
	OpenInterest     float64  `json:"open_interest"`
	OIContracts      float64  `json:"oi_contracts"`
	MarkPrice        float64  `json:"mark_price"`
}

// QualityFlags records data-quality problems discovered during enrichment.
// Flags are advisory: a partially degraded event still forwards to
// evaluation, which may down-weight or refuse stale input.
type QualityFlags struct {
	Stale          []string `json:"stale"`
	Missing        []string `json:"missing"`
	OutOfRange     []string `json:"out_of_range"`
	ProviderErrors []string `json:"provider_errors"`
}

// Empty reports whether no quality problems were recorded.
func (q *QualityFlags) Empty() bool {
	return len(q.Stale) == 0 && len(q.Missing) == 0 &&
		len(q.OutOfRange) == 0 && len(q.ProviderErrors) == 0
}

// Constraints bound what the models may recommend for a signal. Sourced
// from the feature profile and serialized into every rendered prompt.
type Constraints struct {
	MaxPositionSizePct float64 `json:"max_position_size_pct" yaml:"max_position_size_pct"`
	MinHoldMinutes     int     `json:"min_hold_minutes" yaml:"min_hold_minutes"`
	MaxTradesPerHour   int     `json:"max_trades_per_hour" yaml:"max_trades_per_hour"`
	MaxLeverage        float64 `json:"max_leverage" yaml:"max_leverage"`
}

// EnrichedPayload is the compact shape handed to AI adapters. It is
// serialized into enriched-stream messages and stored as
// enriched_events.enriched_payload.
type EnrichedPayload struct {
	EventID         string                 `json:"event_id"`
	Symbol          string                 `json:"symbol"`
	EventType       EventType              `json:"event_type"`
	SignalDirection SignalDirection        `json:"signal_direction"`
	EntryPrice      string                 `json:"entry_price"`
	Size            string                 `json:"size"`
	TsUTC           time.Time              `json:"ts_utc"`
	Source          string                 `json:"source"`
	Market          MarketSnapshot         `json:"market"`
	TA              map[string]interface{} `json:"ta"`
	Derivs          *DerivsBlock           `json:"derivs,omitempty"`
	Constraints     Constraints            `json:"constraints"`
	QualityFlags    QualityFlags           `json:"quality_flags"`
}
