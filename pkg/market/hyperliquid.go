package market

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"
)

// Hyperliquid exposes everything through a single POST {base}/info endpoint
// with a "type" discriminator in the JSON body.
const providerHyperliquid = "hyperliquid"

const (
	maxCandleLimit = 5000
	assetCtxTTL    = 5 * time.Second
)

var intervalMillis = map[string]int64{
	"1m":  60_000,
	"5m":  300_000,
	"15m": 900_000,
	"1h":  3_600_000,
	"4h":  14_400_000,
	"1d":  86_400_000,
}

// assetCtx is the per-asset slice of the metaAndAssetCtxs response.
type assetCtx struct {
	Funding      string `json:"funding"`
	Premium      string `json:"premium"`
	OpenInterest string `json:"openInterest"`
	MarkPx       string `json:"markPx"`
	DayNtlVlm    string `json:"dayNtlVlm"`
}

// Hyperliquid implements Provider against the Hyperliquid info API. Asset
// contexts (funding, OI, mark price, volume) come as one bundle and are
// memoized for 5 s since every derivs field reads from them.
type Hyperliquid struct {
	baseURL string
	http    *http.Client

	mu        sync.Mutex
	ctxCache  map[string]assetCtx
	fetchedAt time.Time
}

// NewHyperliquid builds a provider with the given per-request timeout.
func NewHyperliquid(baseURL string, timeout time.Duration) *Hyperliquid {
	return &Hyperliquid{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

// Name implements Provider.
func (h *Hyperliquid) Name() string {
	return providerHyperliquid
}

// NormalizeSymbol converts common perp naming to the venue's coin names
// (BTC, ETH): uppercase, then one suffix of -PERP/PERP//USDT//USD/-USD/USD
// stripped, longest match first.
func NormalizeSymbol(symbol string) string {
	normalized := strings.ToUpper(symbol)
	for _, suffix := range []string{"-PERP", "PERP", "/USDT", "/USD", "-USD", "USD"} {
		if strings.HasSuffix(normalized, suffix) {
			return strings.TrimSuffix(normalized, suffix)
		}
	}
	return normalized
}

func (h *Hyperliquid) post(ctx context.Context, endpoint string, body map[string]interface{}, out interface{}) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return &ProviderError{Provider: providerHyperliquid, Endpoint: endpoint, Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, h.baseURL+"/info", bytes.NewReader(payload))
	if err != nil {
		return &ProviderError{Provider: providerHyperliquid, Endpoint: endpoint, Err: err}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := h.http.Do(req)
	if err != nil {
		return &ProviderError{Provider: providerHyperliquid, Endpoint: endpoint, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return &ProviderError{
			Provider:   providerHyperliquid,
			Endpoint:   endpoint,
			StatusCode: resp.StatusCode,
			Err:        fmt.Errorf("%s", strings.TrimSpace(string(snippet))),
		}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &ProviderError{Provider: providerHyperliquid, Endpoint: endpoint, Err: fmt.Errorf("decode response: %w", err)}
	}
	return nil
}

// assetContexts returns the symbol→context map, refreshing when the memoized
// copy is older than the TTL.
func (h *Hyperliquid) assetContexts(ctx context.Context) (map[string]assetCtx, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.ctxCache != nil && time.Since(h.fetchedAt) < assetCtxTTL {
		return h.ctxCache, nil
	}

	// Response shape: [ {universe: [{name}, ...]}, [assetCtx, ...] ]
	var raw []json.RawMessage
	if err := h.post(ctx, "metaAndAssetCtxs", map[string]interface{}{"type": "metaAndAssetCtxs"}, &raw); err != nil {
		return nil, err
	}
	if len(raw) < 2 {
		return nil, &ProviderError{Provider: providerHyperliquid, Endpoint: "metaAndAssetCtxs",
			Err: fmt.Errorf("unexpected response shape: %d elements", len(raw))}
	}

	var meta struct {
		Universe []struct {
			Name string `json:"name"`
		} `json:"universe"`
	}
	if err := json.Unmarshal(raw[0], &meta); err != nil {
		return nil, &ProviderError{Provider: providerHyperliquid, Endpoint: "metaAndAssetCtxs", Err: err}
	}
	var ctxs []assetCtx
	if err := json.Unmarshal(raw[1], &ctxs); err != nil {
		return nil, &ProviderError{Provider: providerHyperliquid, Endpoint: "metaAndAssetCtxs", Err: err}
	}

	result := make(map[string]assetCtx, len(meta.Universe))
	for i, asset := range meta.Universe {
		if i < len(ctxs) {
			result[asset.Name] = ctxs[i]
		}
	}

	h.ctxCache = result
	h.fetchedAt = time.Now()
	return result, nil
}

func (h *Hyperliquid) assetContext(ctx context.Context, endpoint, symbol string) (assetCtx, error) {
	normalized := NormalizeSymbol(symbol)
	ctxs, err := h.assetContexts(ctx)
	if err != nil {
		return assetCtx{}, err
	}
	ac, ok := ctxs[normalized]
	if !ok {
		return assetCtx{}, &ProviderError{Provider: providerHyperliquid, Endpoint: endpoint,
			Err: fmt.Errorf("symbol not found: %s", normalized)}
	}
	return ac, nil
}

// GetTicker builds the ticker from allMids plus depth-1 book, falling back
// to mid when a side is empty.
func (h *Hyperliquid) GetTicker(ctx context.Context, symbol string) (*Ticker, error) {
	normalized := NormalizeSymbol(symbol)

	var mids map[string]string
	if err := h.post(ctx, "allMids", map[string]interface{}{"type": "allMids"}, &mids); err != nil {
		return nil, err
	}

	mid := parseFloat(mids[normalized])
	if mid == 0 {
		return nil, &ProviderError{Provider: providerHyperliquid, Endpoint: "allMids",
			Err: fmt.Errorf("symbol not found: %s", normalized)}
	}

	book, err := h.GetOrderBook(ctx, symbol, 1)
	if err != nil {
		return nil, err
	}

	bid, ask := mid, mid
	if len(book.Bids) > 0 {
		bid = book.Bids[0].Price
	}
	if len(book.Asks) > 0 {
		ask = book.Asks[0].Price
	}

	return &Ticker{
		Symbol:    normalized,
		Mid:       mid,
		Bid:       bid,
		Ask:       ask,
		SpreadBps: round2((ask - bid) / mid * 10000),
		Timestamp: time.Now().UTC(),
	}, nil
}

// GetCandles fetches a candleSnapshot window sized to the interval and
// returns the trailing limit candles, oldest first.
func (h *Hyperliquid) GetCandles(ctx context.Context, symbol, timeframe string, limit int) ([]Candle, error) {
	normalized := NormalizeSymbol(symbol)

	candleMS, ok := intervalMillis[timeframe]
	if !ok {
		timeframe = "1h"
		candleMS = intervalMillis["1h"]
	}
	if limit > maxCandleLimit {
		limit = maxCandleLimit
	}

	nowMS := time.Now().UTC().UnixMilli()
	startMS := nowMS - candleMS*int64(limit)

	var raw []struct {
		T int64  `json:"t"`
		O string `json:"o"`
		H string `json:"h"`
		L string `json:"l"`
		C string `json:"c"`
		V string `json:"v"`
	}
	err := h.post(ctx, "candleSnapshot", map[string]interface{}{
		"type": "candleSnapshot",
		"req": map[string]interface{}{
			"coin":      normalized,
			"interval":  timeframe,
			"startTime": startMS,
			"endTime":   nowMS,
		},
	}, &raw)
	if err != nil {
		return nil, err
	}

	if len(raw) > limit {
		raw = raw[len(raw)-limit:]
	}
	candles := make([]Candle, 0, len(raw))
	for _, c := range raw {
		candles = append(candles, Candle{
			Timestamp: time.UnixMilli(c.T).UTC(),
			Open:      parseFloat(c.O),
			High:      parseFloat(c.H),
			Low:       parseFloat(c.L),
			Close:     parseFloat(c.C),
			Volume:    parseFloat(c.V),
		})
	}
	return candles, nil
}

// GetOrderBook fetches the L2 book truncated to depth levels per side.
func (h *Hyperliquid) GetOrderBook(ctx context.Context, symbol string, depth int) (*OrderBook, error) {
	normalized := NormalizeSymbol(symbol)

	var raw struct {
		Coin   string `json:"coin"`
		Time   int64  `json:"time"`
		Levels [][]struct {
			Px string `json:"px"`
			Sz string `json:"sz"`
		} `json:"levels"`
	}
	if err := h.post(ctx, "l2Book", map[string]interface{}{"type": "l2Book", "coin": normalized}, &raw); err != nil {
		return nil, err
	}

	book := &OrderBook{Symbol: normalized, Timestamp: time.Now().UTC()}
	if raw.Time > 0 {
		book.Timestamp = time.UnixMilli(raw.Time).UTC()
	}
	if len(raw.Levels) > 0 {
		for _, lvl := range truncate(raw.Levels[0], depth) {
			book.Bids = append(book.Bids, BookLevel{Price: parseFloat(lvl.Px), Size: parseFloat(lvl.Sz)})
		}
	}
	if len(raw.Levels) > 1 {
		for _, lvl := range truncate(raw.Levels[1], depth) {
			book.Asks = append(book.Asks, BookLevel{Price: parseFloat(lvl.Px), Size: parseFloat(lvl.Sz)})
		}
	}
	return book, nil
}

// GetFundingRate reads the hourly funding rate from the asset context; the
// premium field serves as the predicted rate. Next funding is the top of the
// next hour.
func (h *Hyperliquid) GetFundingRate(ctx context.Context, symbol string) (*FundingRate, error) {
	ac, err := h.assetContext(ctx, "metaAndAssetCtxs", symbol)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	fr := &FundingRate{
		Symbol:          NormalizeSymbol(symbol),
		Rate:            parseFloat(ac.Funding),
		NextFundingTime: now.Truncate(time.Hour).Add(time.Hour),
		Timestamp:       now,
	}
	if ac.Premium != "" {
		predicted := parseFloat(ac.Premium)
		fr.PredictedRate = &predicted
	}
	return fr, nil
}

// GetOpenInterest returns OI in contracts and USD (contracts × mark price).
func (h *Hyperliquid) GetOpenInterest(ctx context.Context, symbol string) (*OpenInterest, error) {
	ac, err := h.assetContext(ctx, "metaAndAssetCtxs", symbol)
	if err != nil {
		return nil, err
	}

	contracts := parseFloat(ac.OpenInterest)
	return &OpenInterest{
		Symbol:      NormalizeSymbol(symbol),
		OIContracts: contracts,
		OIUSD:       contracts * parseFloat(ac.MarkPx),
		Timestamp:   time.Now().UTC(),
	}, nil
}

// GetMarkPrice returns the venue mark price.
func (h *Hyperliquid) GetMarkPrice(ctx context.Context, symbol string) (float64, error) {
	ac, err := h.assetContext(ctx, "metaAndAssetCtxs", symbol)
	if err != nil {
		return 0, err
	}
	return parseFloat(ac.MarkPx), nil
}

// Get24hVolume returns the 24h notional volume.
func (h *Hyperliquid) Get24hVolume(ctx context.Context, symbol string) (float64, error) {
	ac, err := h.assetContext(ctx, "metaAndAssetCtxs", symbol)
	if err != nil {
		return 0, err
	}
	return parseFloat(ac.DayNtlVlm), nil
}

func truncate[T any](s []T, n int) []T {
	if n > 0 && len(s) > n {
		return s[:n]
	}
	return s
}

func parseFloat(s string) float64 {
	f, _ := strconv.ParseFloat(s, 64)
	return f
}

func round2(f float64) float64 {
	return math.Round(f*100) / 100
}
