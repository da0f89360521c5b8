package enrichment

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/sigmapilot/lens/ent"
	"github.com/sigmapilot/lens/pkg/config"
	"github.com/sigmapilot/lens/pkg/logging"
	"github.com/sigmapilot/lens/pkg/market"
	"github.com/sigmapilot/lens/pkg/metrics"
	"github.com/sigmapilot/lens/pkg/models"
	"github.com/sigmapilot/lens/pkg/queue"
	"github.com/sigmapilot/lens/pkg/services"
	"github.com/sigmapilot/lens/pkg/ta"
)

// timeframeBar maps a candle timeframe to its bar duration, used for the
// 2x-bar candle staleness threshold.
var timeframeBar = map[string]time.Duration{
	"1m":  time.Minute,
	"5m":  5 * time.Minute,
	"15m": 15 * time.Minute,
	"1h":  time.Hour,
	"4h":  4 * time.Hour,
	"1d":  24 * time.Hour,
}

// Worker consumes the pending stream: validate, fetch market data per the
// feature profile, compute indicators, persist the enriched row and forward
// to the enriched stream.
type Worker struct {
	validator *Validator
	provider  market.Provider
	profiles  *config.ProfileRegistry
	events    *services.EventService
	queue     *queue.Client
	metrics   *metrics.Metrics

	defaultProfile    string
	staleMid          time.Duration
	staleBook         time.Duration
	staleFunding      time.Duration
	staleCandleFactor int
}

// NewWorker wires an enrichment worker.
func NewWorker(
	provider market.Provider,
	profiles *config.ProfileRegistry,
	events *services.EventService,
	qc *queue.Client,
	m *metrics.Metrics,
	cfg *config.Config,
) *Worker {
	return &Worker{
		validator:         NewValidator(provider, cfg.ValidatorMaxAge, cfg.ValidatorMaxDriftBps),
		provider:          provider,
		profiles:          profiles,
		events:            events,
		queue:             qc,
		metrics:           m,
		defaultProfile:    cfg.FeatureProfile,
		staleMid:          cfg.StaleMid,
		staleBook:         cfg.StaleBook,
		staleFunding:      cfg.StaleFunding,
		staleCandleFactor: cfg.StaleCandleFactor,
	}
}

// ConsumerConfig returns the stream binding for this worker.
func ConsumerConfig(cfg *config.Config) queue.ConsumerConfig {
	return queue.ConsumerConfig{
		Stream:    queue.StreamPending,
		Group:     queue.GroupEnrichment,
		Kind:      "enrichment",
		Stage:     models.StageEnrich,
		BatchSize: int64(cfg.ConsumerBatchSize),
		Block:     cfg.ConsumerBlock,
		RetryMax:  cfg.RetryMax,
		BaseDelay: cfg.RetryBaseDelay,
		MaxDelay:  cfg.RetryMaxDelay,
	}
}

// fetchResult accumulates the concurrent provider fetches for one event.
type fetchResult struct {
	mu sync.Mutex

	ticker    *market.Ticker
	tickerErr error
	volume24h *float64

	book    *market.OrderBook
	bookErr error

	candles    map[string][]market.Candle
	candleErrs map[string]error

	funding    *market.FundingRate
	oi         *market.OpenInterest
	markPrice  float64
	derivsErr  error
	hasDerivs  bool
	derivsTime time.Time
}

// Handle implements queue.Handler for the pending stream.
func (w *Worker) Handle(ctx context.Context, msg *queue.Message) error {
	start := time.Now()

	var payload models.SignalPayload
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		return &queue.NonRetryableError{ReasonCode: "invalid_payload", Err: err}
	}
	eventID := payload.EventID
	if eventID == "" {
		eventID = msg.EventID
		payload.EventID = eventID
	}

	logging.LogStage(slog.Default(), "ENRICHMENT", eventID, "started", "symbol", payload.Symbol)

	if err := w.validator.Validate(ctx, &payload); err != nil {
		var rejection *RejectionError
		if errors.As(err, &rejection) {
			return w.reject(ctx, eventID, rejection)
		}
		return err
	}

	evt, err := w.events.Get(ctx, eventID)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			return &queue.NonRetryableError{ReasonCode: "missing_event",
				Err: fmt.Errorf("no event row for %s", eventID)}
		}
		return err
	}

	profile := w.resolveProfile(&payload, evt)
	if profile == nil {
		return &queue.NonRetryableError{ReasonCode: "unknown_profile",
			Err: fmt.Errorf("no feature profile for event %s", eventID)}
	}

	res := w.fetchAll(ctx, &payload, profile)

	// Nothing to enrich with: the whole provider is down, retry later.
	if res.ticker == nil {
		return fmt.Errorf("no market data for %s: %w", payload.Symbol, res.tickerErr)
	}

	taByTimeframe := make(map[string]*ta.Result, len(profile.Timeframes))
	for _, tf := range profile.Timeframes {
		if candles := res.candles[tf]; len(candles) >= 2 {
			taByTimeframe[tf] = ta.CalculateAll(candles, profile.Indicators)
		}
	}

	flags := w.qualityFlags(profile, res, taByTimeframe)
	enriched := w.buildPayload(&payload, profile, res, taByTimeframe, flags)

	durationMS := int(time.Since(start).Milliseconds())
	if err := w.persist(ctx, profile, res, enriched, flags, durationMS); err != nil {
		return err
	}

	status := models.EventStatusEnriched
	if len(flags.ProviderErrors) > 0 {
		status = models.EventStatusEnrichmentPartial
	}
	if err := w.events.MarkEnriched(ctx, eventID, status); err != nil {
		return err
	}
	if err := w.events.AddTimeline(ctx, eventID, models.TimelineEnriched, map[string]interface{}{
		"profile": profile.Name,
		"quality": map[string]interface{}{
			"stale":           len(flags.Stale),
			"missing":         len(flags.Missing),
			"out_of_range":    len(flags.OutOfRange),
			"provider_errors": len(flags.ProviderErrors),
		},
		"duration_ms": durationMS,
	}); err != nil {
		slog.Error("Failed to record ENRICHED timeline", "event_id", eventID, "error", err)
	}

	data, err := json.Marshal(enriched)
	if err != nil {
		return &queue.NonRetryableError{ReasonCode: "encode_failed", Err: err}
	}
	if _, err := w.queue.Append(ctx, queue.StreamEnriched, queue.NewMessage(eventID, data)); err != nil {
		return err
	}

	if w.metrics != nil {
		w.metrics.SignalsEnriched.WithLabelValues(profile.Name, payload.Symbol).Inc()
		w.metrics.EnrichmentDuration.WithLabelValues(profile.Name).Observe(time.Since(start).Seconds())
	}
	logging.LogStage(slog.Default(), "ENRICHMENT", eventID, "completed",
		"profile", profile.Name, "status", string(status), "duration_ms", durationMS)
	return nil
}

// reject terminally disposes of a signal that failed hard validation.
func (w *Worker) reject(ctx context.Context, eventID string, rejection *RejectionError) error {
	slog.Warn("Signal rejected", "event_id", eventID,
		"reason", rejection.Reason, "detail", rejection.Detail)

	if err := w.events.SetStatus(ctx, eventID, models.EventStatusRejected); err != nil &&
		!errors.Is(err, services.ErrNotFound) {
		return err
	}
	if err := w.events.AddTimeline(ctx, eventID, models.TimelineRejected, map[string]interface{}{
		"reason": rejection.Reason,
		"detail": rejection.Detail,
	}); err != nil {
		slog.Error("Failed to record REJECTED timeline", "event_id", eventID, "error", err)
	}
	return queue.ErrDrop
}

// resolveProfile picks the profile named on the payload, then the event row,
// then the configured default.
func (w *Worker) resolveProfile(payload *models.SignalPayload, evt *ent.Event) *config.FeatureProfile {
	for _, name := range []string{payload.FeatureProfile, evt.FeatureProfile} {
		if name == "" {
			continue
		}
		if p := w.profiles.Get(name); p != nil {
			return p
		}
		slog.Warn("Unknown feature profile, falling back to default",
			"profile", name, "default", w.defaultProfile)
	}
	return w.profiles.Get(w.defaultProfile)
}

// fetchAll runs the provider fetches concurrently: ticker + 24h volume,
// candles per timeframe, and the derivs bundle when the profile asks for it.
// Individual failures land in the result, never abort the group.
func (w *Worker) fetchAll(ctx context.Context, payload *models.SignalPayload, profile *config.FeatureProfile) *fetchResult {
	res := &fetchResult{
		candles:    make(map[string][]market.Candle),
		candleErrs: make(map[string]error),
	}
	limit := profile.CandleLimit()

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		ticker, err := observe(w, "ticker", func() (*market.Ticker, error) {
			return w.provider.GetTicker(gctx, payload.Symbol)
		})
		res.mu.Lock()
		res.ticker, res.tickerErr = ticker, err
		res.mu.Unlock()
		if err != nil {
			return nil
		}
		if vol, verr := w.provider.Get24hVolume(gctx, payload.Symbol); verr == nil {
			res.mu.Lock()
			res.volume24h = &vol
			res.mu.Unlock()
		}
		return nil
	})

	g.Go(func() error {
		book, err := observe(w, "book", func() (*market.OrderBook, error) {
			return w.provider.GetOrderBook(gctx, payload.Symbol, 1)
		})
		res.mu.Lock()
		res.book, res.bookErr = book, err
		res.mu.Unlock()
		return nil
	})

	for _, tf := range profile.Timeframes {
		g.Go(func() error {
			candles, err := observe(w, fmt.Sprintf("candles_%s", tf), func() ([]market.Candle, error) {
				return w.provider.GetCandles(gctx, payload.Symbol, tf, limit)
			})
			res.mu.Lock()
			if err != nil {
				res.candleErrs[tf] = err
			} else {
				res.candles[tf] = candles
			}
			res.mu.Unlock()
			return nil
		})
	}

	if profile.RequireDerivs {
		g.Go(func() error {
			funding, err := observe(w, "derivs", func() (*market.FundingRate, error) {
				return w.provider.GetFundingRate(gctx, payload.Symbol)
			})
			res.mu.Lock()
			defer res.mu.Unlock()
			res.hasDerivs = true
			if err != nil {
				res.derivsErr = err
				return nil
			}
			res.funding = funding
			res.derivsTime = funding.Timestamp
			if oi, oerr := w.provider.GetOpenInterest(gctx, payload.Symbol); oerr == nil {
				res.oi = oi
			} else {
				res.derivsErr = oerr
			}
			if mark, merr := w.provider.GetMarkPrice(gctx, payload.Symbol); merr == nil {
				res.markPrice = mark
			} else if res.derivsErr == nil {
				res.derivsErr = merr
			}
			return nil
		})
	}

	_ = g.Wait()
	return res
}

// observe wraps one provider call with latency and outcome metrics.
func observe[T any](w *Worker, endpoint string, call func() (T, error)) (T, error) {
	start := time.Now()
	out, err := call()
	if w.metrics != nil {
		status := "ok"
		if err != nil {
			status = "error"
		}
		w.metrics.ProviderLatency.WithLabelValues(w.provider.Name(), endpoint).
			Observe(time.Since(start).Seconds())
		w.metrics.ProviderRequests.WithLabelValues(w.provider.Name(), endpoint, status).Inc()
	}
	return out, err
}

// qualityFlags derives the advisory data-quality block from the fetch
// results: stale sources, missing blocks, out-of-range values and provider
// failures.
func (w *Worker) qualityFlags(profile *config.FeatureProfile, res *fetchResult, taByTimeframe map[string]*ta.Result) *models.QualityFlags {
	flags := &models.QualityFlags{}
	now := time.Now().UTC()

	if res.ticker != nil {
		if age := now.Sub(res.ticker.Timestamp); age > w.staleMid {
			flags.Stale = append(flags.Stale, staleFlag("mid", age, w.staleMid))
		}
		t := res.ticker
		if t.SpreadBps > 100 {
			flags.OutOfRange = append(flags.OutOfRange,
				fmt.Sprintf("spread_bps: %.2f (max: 100)", t.SpreadBps))
		}
		if t.Bid > t.Ask && t.Ask > 0 {
			flags.OutOfRange = append(flags.OutOfRange,
				fmt.Sprintf("bid %.8g above ask %.8g", t.Bid, t.Ask))
		}
		if t.Bid > 0 && t.Ask > 0 && (t.Mid < t.Bid*0.99 || t.Mid > t.Ask*1.01) {
			flags.OutOfRange = append(flags.OutOfRange,
				fmt.Sprintf("mid %.8g outside book [%.8g, %.8g]", t.Mid, t.Bid, t.Ask))
		}
	}
	if res.tickerErr != nil {
		flags.ProviderErrors = append(flags.ProviderErrors,
			fmt.Sprintf("ticker: %v", res.tickerErr))
	}
	if res.book != nil {
		if age := now.Sub(res.book.Timestamp); age > w.staleBook {
			flags.Stale = append(flags.Stale, staleFlag("book", age, w.staleBook))
		}
	}
	if res.bookErr != nil {
		flags.ProviderErrors = append(flags.ProviderErrors,
			fmt.Sprintf("book: %v", res.bookErr))
	}
	if res.volume24h == nil {
		flags.Missing = append(flags.Missing, "volume_24h")
	}

	for _, tf := range profile.Timeframes {
		if err := res.candleErrs[tf]; err != nil {
			flags.ProviderErrors = append(flags.ProviderErrors,
				fmt.Sprintf("candles_%s: %v", tf, err))
		}
		candles := res.candles[tf]
		if len(candles) < 2 {
			flags.Missing = append(flags.Missing, fmt.Sprintf("candles_%s", tf))
			continue
		}
		if bar, ok := timeframeBar[tf]; ok {
			threshold := time.Duration(w.staleCandleFactor) * bar
			if age := now.Sub(candles[len(candles)-1].Timestamp); age > threshold {
				flags.Stale = append(flags.Stale, staleFlag(fmt.Sprintf("candles_%s", tf), age, threshold))
			}
		}
		if result := taByTimeframe[tf]; result != nil {
			if result.RSI != nil && (*result.RSI < 0 || *result.RSI > 100) {
				flags.OutOfRange = append(flags.OutOfRange,
					fmt.Sprintf("rsi_%s: %.2f", tf, *result.RSI))
			}
			if result.ATR != nil && *result.ATR < 0 {
				flags.OutOfRange = append(flags.OutOfRange,
					fmt.Sprintf("atr_%s: %.4f", tf, *result.ATR))
			}
		}
	}

	if res.hasDerivs {
		if res.derivsErr != nil {
			flags.ProviderErrors = append(flags.ProviderErrors,
				fmt.Sprintf("derivs: %v", res.derivsErr))
		}
		if res.funding != nil {
			if age := now.Sub(res.funding.Timestamp); age > w.staleFunding {
				flags.Stale = append(flags.Stale, staleFlag("funding", age, w.staleFunding))
			}
		}
	}

	sort.Strings(flags.ProviderErrors)
	return flags
}

// staleFlag renders one staleness entry: "<key>: <N>s old (threshold: <M>s)".
func staleFlag(key string, age, threshold time.Duration) string {
	return fmt.Sprintf("%s: %.0fs old (threshold: %.0fs)", key, age.Seconds(), threshold.Seconds())
}

// buildPayload assembles the compact shape handed to the AI adapters.
func (w *Worker) buildPayload(
	payload *models.SignalPayload,
	profile *config.FeatureProfile,
	res *fetchResult,
	taByTimeframe map[string]*ta.Result,
	flags *models.QualityFlags,
) *models.EnrichedPayload {
	entry := payload.EntryPrice.InexactFloat64()

	snapshot := models.MarketSnapshot{
		MidPrice:               res.ticker.Mid,
		Bid:                    res.ticker.Bid,
		Ask:                    res.ticker.Ask,
		SpreadBps:              res.ticker.SpreadBps,
		PriceDriftFromEntryBps: DriftBps(res.ticker.Mid, entry),
		Volume24h:              res.volume24h,
	}

	taBlock := make(map[string]interface{}, len(taByTimeframe))
	for tf, result := range taByTimeframe {
		taBlock[tf] = result
	}

	var derivs *models.DerivsBlock
	if res.funding != nil {
		derivs = &models.DerivsBlock{
			FundingRate:      res.funding.Rate,
			PredictedFunding: res.funding.PredictedRate,
			FundingIntervalH: 1,
			MarkPrice:        res.markPrice,
		}
		if res.oi != nil {
			derivs.OpenInterest = res.oi.OIUSD
			derivs.OIContracts = res.oi.OIContracts
		}
	}

	return &models.EnrichedPayload{
		EventID:         payload.EventID,
		Symbol:          payload.Symbol,
		EventType:       payload.EventType,
		SignalDirection: payload.SignalDirection,
		EntryPrice:      payload.EntryPrice.String(),
		Size:            payload.Size.String(),
		TsUTC:           payload.TsUTC,
		Source:          payload.Source,
		Market:          snapshot,
		TA:              taBlock,
		Derivs:          derivs,
		Constraints:     profile.Constraints,
		QualityFlags:    *flags,
	}
}

// persist writes the enriched_events row.
func (w *Worker) persist(
	ctx context.Context,
	profile *config.FeatureProfile,
	res *fetchResult,
	enriched *models.EnrichedPayload,
	flags *models.QualityFlags,
	durationMS int,
) error {
	timestamps := map[string]interface{}{
		"signal_ts": enriched.TsUTC.Format(time.RFC3339Nano),
		"mid_ts":    res.ticker.Timestamp.Format(time.RFC3339Nano),
	}
	for tf, candles := range res.candles {
		if len(candles) > 0 {
			timestamps[fmt.Sprintf("candles_%s_ts", tf)] =
				candles[len(candles)-1].Timestamp.Format(time.RFC3339Nano)
		}
	}
	if res.funding != nil {
		timestamps["funding_ts"] = res.funding.Timestamp.Format(time.RFC3339Nano)
	}

	rec := &services.EnrichedRecord{
		EventID:         enriched.EventID,
		FeatureProfile:  profile.Name,
		Provider:        w.provider.Name(),
		MarketData:      toMap(enriched.Market),
		TAData:          map[string]interface{}{"timeframes": enriched.TA},
		Constraints:     toMap(enriched.Constraints),
		DataTimestamps:  timestamps,
		QualityFlags:    toMap(*flags),
		EnrichedPayload: toMap(enriched),
		DurationMS:      durationMS,
	}
	if enriched.Derivs != nil {
		rec.DerivsData = toMap(*enriched.Derivs)
	}

	if _, err := w.events.SaveEnriched(ctx, rec); err != nil {
		return err
	}
	return nil
}

// toMap round-trips a typed struct through JSON into the generic map the
// jsonb columns take.
func toMap(v interface{}) map[string]interface{} {
	data, err := json.Marshal(v)
	if err != nil {
		return nil
	}
	var out map[string]interface{}
	if err := json.Unmarshal(data, &out); err != nil {
		return nil
	}
	return out
}
