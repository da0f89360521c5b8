package enrichment

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sigmapilot/lens/pkg/market"
	"github.com/sigmapilot/lens/pkg/models"
)

// fakeProvider is a canned market.Provider for worker and validator tests.
type fakeProvider struct {
	ticker    *market.Ticker
	tickerErr error

	candles    map[string][]market.Candle
	candleErrs map[string]error

	book    *market.OrderBook
	bookErr error

	funding    *market.FundingRate
	fundingErr error
	oi         *market.OpenInterest
	oiErr      error
	markPrice  float64
	volume24h  float64
	volumeErr  error

	tickerCalls int
}

func (f *fakeProvider) Name() string { return "fake" }

func (f *fakeProvider) GetTicker(ctx context.Context, symbol string) (*market.Ticker, error) {
	f.tickerCalls++
	if f.tickerErr != nil {
		return nil, f.tickerErr
	}
	return f.ticker, nil
}

func (f *fakeProvider) GetCandles(ctx context.Context, symbol, timeframe string, limit int) ([]market.Candle, error) {
	if err := f.candleErrs[timeframe]; err != nil {
		return nil, err
	}
	return f.candles[timeframe], nil
}

func (f *fakeProvider) GetOrderBook(ctx context.Context, symbol string, depth int) (*market.OrderBook, error) {
	if f.bookErr != nil {
		return nil, f.bookErr
	}
	if f.book != nil {
		return f.book, nil
	}
	return &market.OrderBook{Symbol: symbol, Timestamp: time.Now().UTC()}, nil
}

func (f *fakeProvider) GetFundingRate(ctx context.Context, symbol string) (*market.FundingRate, error) {
	if f.fundingErr != nil {
		return nil, f.fundingErr
	}
	return f.funding, nil
}

func (f *fakeProvider) GetOpenInterest(ctx context.Context, symbol string) (*market.OpenInterest, error) {
	if f.oiErr != nil {
		return nil, f.oiErr
	}
	return f.oi, nil
}

func (f *fakeProvider) GetMarkPrice(ctx context.Context, symbol string) (float64, error) {
	return f.markPrice, nil
}

func (f *fakeProvider) Get24hVolume(ctx context.Context, symbol string) (float64, error) {
	if f.volumeErr != nil {
		return 0, f.volumeErr
	}
	return f.volume24h, nil
}

func healthyTicker(mid float64) *market.Ticker {
	return &market.Ticker{
		Symbol:    "BTC",
		Mid:       mid,
		Bid:       mid - 0.5,
		Ask:       mid + 0.5,
		SpreadBps: 0.15,
		Timestamp: time.Now().UTC(),
	}
}

func signalAt(entry float64, age time.Duration) *models.SignalPayload {
	return &models.SignalPayload{
		EventID:         "tv_val_1",
		EventType:       models.EventTypeOpenSignal,
		Symbol:          "BTCUSDT",
		SignalDirection: models.DirectionLong,
		EntryPrice:      decimal.NewFromFloat(entry),
		Size:            decimal.NewFromFloat(0.5),
		TsUTC:           time.Now().UTC().Add(-age),
		Source:          "tradingview",
	}
}

func TestValidator_AcceptsFreshSignal(t *testing.T) {
	provider := &fakeProvider{ticker: healthyTicker(67000)}
	v := NewValidator(provider, 5*time.Minute, 200)

	require.NoError(t, v.Validate(context.Background(), signalAt(67000, time.Minute)))
}

func TestValidator_RejectsOldSignal(t *testing.T) {
	provider := &fakeProvider{ticker: healthyTicker(67000)}
	v := NewValidator(provider, 5*time.Minute, 200)

	err := v.Validate(context.Background(), signalAt(67000, 10*time.Minute))

	var rejection *RejectionError
	require.ErrorAs(t, err, &rejection)
	assert.Equal(t, ReasonSignalTooOld, rejection.Reason)
	// Age fails before any network touch.
	assert.Zero(t, provider.tickerCalls)
}

func TestValidator_RejectsDriftedPrice(t *testing.T) {
	// Entry 67000, mid 69000: about 298 bps of drift.
	provider := &fakeProvider{ticker: healthyTicker(69000)}
	v := NewValidator(provider, 5*time.Minute, 200)

	err := v.Validate(context.Background(), signalAt(67000, time.Minute))

	var rejection *RejectionError
	require.ErrorAs(t, err, &rejection)
	assert.Equal(t, ReasonPriceDriftTooHigh, rejection.Reason)
}

func TestValidator_BoundaryIsNotRejected(t *testing.T) {
	// Exactly maxAge and exactly maxDrift pass: limits are strict.
	provider := &fakeProvider{ticker: healthyTicker(67000)}
	v := NewValidator(provider, 5*time.Minute, DriftBps(67000, 66000))

	require.NoError(t, v.Validate(context.Background(), signalAt(66000, time.Minute)))
}

func TestValidator_SkipsDriftWithoutEntryPrice(t *testing.T) {
	provider := &fakeProvider{tickerErr: errors.New("down")}
	v := NewValidator(provider, 5*time.Minute, 200)

	require.NoError(t, v.Validate(context.Background(), signalAt(0, time.Minute)))
	assert.Zero(t, provider.tickerCalls)
}

func TestValidator_ProviderErrorIsTransient(t *testing.T) {
	provider := &fakeProvider{
		tickerErr: &market.ProviderError{Provider: "fake", Endpoint: "ticker", Err: errors.New("timeout")},
	}
	v := NewValidator(provider, 5*time.Minute, 200)

	err := v.Validate(context.Background(), signalAt(67000, time.Minute))
	require.Error(t, err)

	var rejection *RejectionError
	assert.False(t, errors.As(err, &rejection))
}

func TestDriftBps(t *testing.T) {
	assert.InDelta(t, 100, DriftBps(67670, 67000), 1e-9)
	assert.Equal(t, 0.0, DriftBps(67000, 0))
	assert.Equal(t, 0.0, DriftBps(67000, 67000))
	assert.InDelta(t, 149.25, DriftBps(66000, 67000), 0.01)
}
