package market

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeSymbol(t *testing.T) {
	cases := map[string]string{
		"btc":      "BTC",
		"BTC-PERP": "BTC",
		"BTCPERP":  "BTC",
		"ETH/USDT": "ETH",
		"ETH/USD":  "ETH",
		"SOL-USD":  "SOL",
		"SOLUSD":   "SOL",
		"DOGE":     "DOGE",
	}
	for in, want := range cases {
		assert.Equal(t, want, NormalizeSymbol(in), "input %q", in)
	}
}

func TestNormalizeSymbolStripsOnlyOneSuffix(t *testing.T) {
	// -PERP matches before PERP; only one suffix comes off.
	assert.Equal(t, "BTCUSD", NormalizeSymbol("BTCUSD-PERP"))
}

// infoServer fakes the Hyperliquid info API: one POST endpoint dispatched on
// the "type" field.
func infoServer(t *testing.T, handlers map[string]func(req map[string]interface{}) interface{}) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/info", r.URL.Path)

		var req map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		h, ok := handlers[req["type"].(string)]
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		require.NoError(t, json.NewEncoder(w).Encode(h(req)))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestGetTicker(t *testing.T) {
	srv := infoServer(t, map[string]func(map[string]interface{}) interface{}{
		"allMids": func(map[string]interface{}) interface{} {
			return map[string]string{"BTC": "50000.5", "ETH": "3000"}
		},
		"l2Book": func(req map[string]interface{}) interface{} {
			return map[string]interface{}{
				"coin": "BTC",
				"time": time.Now().UnixMilli(),
				"levels": [][]map[string]string{
					{{"px": "49999", "sz": "1.5"}},
					{{"px": "50002", "sz": "2.0"}},
				},
			}
		},
	})

	h := NewHyperliquid(srv.URL, time.Second)
	tk, err := h.GetTicker(context.Background(), "BTC-PERP")
	require.NoError(t, err)

	assert.Equal(t, "BTC", tk.Symbol)
	assert.Equal(t, 50000.5, tk.Mid)
	assert.Equal(t, 49999.0, tk.Bid)
	assert.Equal(t, 50002.0, tk.Ask)
	// (50002-49999)/50000.5*10000 = 0.59999... -> 0.6
	assert.Equal(t, 0.6, tk.SpreadBps)
}

func TestGetTickerUnknownSymbol(t *testing.T) {
	srv := infoServer(t, map[string]func(map[string]interface{}) interface{}{
		"allMids": func(map[string]interface{}) interface{} {
			return map[string]string{"BTC": "50000"}
		},
	})

	h := NewHyperliquid(srv.URL, time.Second)
	_, err := h.GetTicker(context.Background(), "NOPE")
	require.Error(t, err)

	var perr *ProviderError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, "hyperliquid", perr.Provider)
	assert.Equal(t, "allMids", perr.Endpoint)
}

func TestGetTickerFallsBackToMidOnEmptyBook(t *testing.T) {
	srv := infoServer(t, map[string]func(map[string]interface{}) interface{}{
		"allMids": func(map[string]interface{}) interface{} {
			return map[string]string{"BTC": "50000"}
		},
		"l2Book": func(map[string]interface{}) interface{} {
			return map[string]interface{}{"coin": "BTC", "levels": [][]map[string]string{}}
		},
	})

	h := NewHyperliquid(srv.URL, time.Second)
	tk, err := h.GetTicker(context.Background(), "BTC")
	require.NoError(t, err)
	assert.Equal(t, 50000.0, tk.Bid)
	assert.Equal(t, 50000.0, tk.Ask)
	assert.Zero(t, tk.SpreadBps)
}

func TestGetCandles(t *testing.T) {
	srv := infoServer(t, map[string]func(map[string]interface{}) interface{}{
		"candleSnapshot": func(req map[string]interface{}) interface{} {
			r := req["req"].(map[string]interface{})
			assert.Equal(t, "ETH", r["coin"])
			assert.Equal(t, "1h", r["interval"])
			out := []map[string]interface{}{}
			for i := 0; i < 5; i++ {
				out = append(out, map[string]interface{}{
					"t": int64(1700000000000) + int64(i)*3_600_000,
					"o": "100", "h": "110", "l": "90", "c": "105", "v": "42.5",
				})
			}
			return out
		},
	})

	h := NewHyperliquid(srv.URL, time.Second)
	candles, err := h.GetCandles(context.Background(), "ETH", "1h", 3)
	require.NoError(t, err)

	// Trailing 3 of 5, oldest first.
	require.Len(t, candles, 3)
	assert.True(t, candles[0].Timestamp.Before(candles[2].Timestamp))
	assert.Equal(t, 105.0, candles[0].Close)
	assert.Equal(t, 42.5, candles[0].Volume)
}

func TestGetFundingAndOpenInterestShareCache(t *testing.T) {
	var calls int32
	srv := infoServer(t, map[string]func(map[string]interface{}) interface{}{
		"metaAndAssetCtxs": func(map[string]interface{}) interface{} {
			atomic.AddInt32(&calls, 1)
			return []interface{}{
				map[string]interface{}{"universe": []map[string]string{{"name": "BTC"}, {"name": "ETH"}}},
				[]map[string]string{
					{"funding": "0.0001", "premium": "0.0002", "openInterest": "1000", "markPx": "50000", "dayNtlVlm": "9000000"},
					{"funding": "0.00005", "openInterest": "20000", "markPx": "3000", "dayNtlVlm": "4000000"},
				},
			}
		},
	})

	h := NewHyperliquid(srv.URL, time.Second)
	ctx := context.Background()

	fr, err := h.GetFundingRate(ctx, "BTC")
	require.NoError(t, err)
	assert.Equal(t, 0.0001, fr.Rate)
	require.NotNil(t, fr.PredictedRate)
	assert.Equal(t, 0.0002, *fr.PredictedRate)
	assert.Equal(t, 0, fr.NextFundingTime.Minute())
	assert.True(t, fr.NextFundingTime.After(fr.Timestamp))

	oi, err := h.GetOpenInterest(ctx, "BTC")
	require.NoError(t, err)
	assert.Equal(t, 1000.0, oi.OIContracts)
	assert.Equal(t, 5e7, oi.OIUSD)

	mark, err := h.GetMarkPrice(ctx, "ETH")
	require.NoError(t, err)
	assert.Equal(t, 3000.0, mark)

	vol, err := h.Get24hVolume(ctx, "ETH")
	require.NoError(t, err)
	assert.Equal(t, 4e6, vol)

	// All four reads hit the memoized bundle.
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestProviderErrorCarriesStatusCode(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "rate limited", http.StatusTooManyRequests)
	}))
	t.Cleanup(srv.Close)

	h := NewHyperliquid(srv.URL, time.Second)
	_, err := h.GetOrderBook(context.Background(), "BTC", 5)
	require.Error(t, err)

	var perr *ProviderError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, http.StatusTooManyRequests, perr.StatusCode)
	assert.Equal(t, "l2Book", perr.Endpoint)
}
