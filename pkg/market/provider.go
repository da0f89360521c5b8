// Package market fetches exchange market data for enrichment: ticker,
// candles, order book and the perp derivatives bundle.
package market

import (
	"context"
	"fmt"
	"time"
)

// Ticker is the current top-of-book snapshot for a symbol.
type Ticker struct {
	Symbol    string
	Mid       float64
	Bid       float64
	Ask       float64
	SpreadBps float64
	Timestamp time.Time
}

// Candle is one OHLCV bar.
type Candle struct {
	Timestamp time.Time
	Open      float64
	High      float64
	Low       float64
	Close     float64
	Volume    float64
}

// BookLevel is one price level of the order book.
type BookLevel struct {
	Price float64
	Size  float64
}

// OrderBook is an L2 depth snapshot.
type OrderBook struct {
	Symbol    string
	Bids      []BookLevel
	Asks      []BookLevel
	Timestamp time.Time
}

// FundingRate is the perp funding snapshot. Rate is the current hourly rate;
// PredictedRate is nil when the venue does not expose a premium.
type FundingRate struct {
	Symbol          string
	Rate            float64
	PredictedRate   *float64
	NextFundingTime time.Time
	Timestamp       time.Time
}

// OpenInterest is the perp OI snapshot, notional and contract terms.
type OpenInterest struct {
	Symbol      string
	OIUSD       float64
	OIContracts float64
	Timestamp   time.Time
}

// Provider is the market-data source used by the enrichment worker.
type Provider interface {
	Name() string
	GetTicker(ctx context.Context, symbol string) (*Ticker, error)
	GetCandles(ctx context.Context, symbol, timeframe string, limit int) ([]Candle, error)
	GetOrderBook(ctx context.Context, symbol string, depth int) (*OrderBook, error)
	GetFundingRate(ctx context.Context, symbol string) (*FundingRate, error)
	GetOpenInterest(ctx context.Context, symbol string) (*OpenInterest, error)
	GetMarkPrice(ctx context.Context, symbol string) (float64, error)
	Get24hVolume(ctx context.Context, symbol string) (float64, error)
}

// ProviderError wraps any provider failure with enough context to classify
// it: a non-2xx response carries StatusCode, a transport fault carries only
// the cause.
type ProviderError struct {
	Provider   string
	Endpoint   string
	StatusCode int
	Err        error
}

func (e *ProviderError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("%s %s: HTTP %d: %v", e.Provider, e.Endpoint, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("%s %s: %v", e.Provider, e.Endpoint, e.Err)
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}
