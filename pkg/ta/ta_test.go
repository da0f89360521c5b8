package ta

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sigmapilot/lens/pkg/config"
	"github.com/sigmapilot/lens/pkg/market"
)

// Classic RSI teaching series, extended with a downtrend tail.
var testCloses = []float64{
	44, 44.34, 44.09, 43.61, 44.33, 44.83, 45.10, 45.42, 45.84, 46.08,
	45.89, 46.03, 45.61, 46.28, 46.28, 46.00, 46.03, 46.41, 46.22, 45.64,
	46.21, 46.25, 45.71, 46.45, 45.78, 45.35, 44.03, 44.18, 44.22, 44.57,
	43.42, 42.66, 43.13,
}

func fixedOHLC() (highs, lows []float64) {
	highs = make([]float64, len(testCloses))
	lows = make([]float64, len(testCloses))
	for i, c := range testCloses {
		highs[i] = c + 0.5
		lows[i] = c - 0.5
	}
	return highs, lows
}

func TestEMA(t *testing.T) {
	assert.InDelta(t, 44.0203, EMA(testCloses, 9), 0.0001)
	assert.InDelta(t, 44.6543, EMA(testCloses, 21), 0.0001)
}

func TestEMAShortSeriesFallsBackToMean(t *testing.T) {
	assert.Equal(t, 11.0, EMA([]float64{10, 11, 12}, 5))
}

func TestSMA(t *testing.T) {
	assert.InDelta(t, 45.241, SMA(testCloses, 20), 0.0001)
	// Shorter than period: mean of everything.
	assert.Equal(t, 2.0, SMA([]float64{1, 2, 3}, 10))
}

func TestMACD(t *testing.T) {
	// 40-point trending sine series.
	closes := []float64{
		100.0, 101.836, 103.4918, 104.8074, 105.6597, 105.977, 105.7465,
		105.0154, 103.8864, 102.5056, 101.0472, 99.6936, 98.616, 97.9549,
		97.8052, 98.2054, 99.1334, 100.509, 102.2029, 104.0506, 105.8708,
		107.4849, 108.7375, 109.5125, 109.7468, 109.4365, 108.6378,
		107.4606, 106.0566, 104.6023, 103.2799, 102.2569, 101.668, 101.6,
		102.0825, 103.0843, 104.5171, 106.2453, 108.1006, 109.9008,
	}
	m := CalcMACD(closes, 12, 26, 9)
	assert.InDelta(t, 1.0598, m.MACDLine, 0.0001)
	assert.InDelta(t, 0.9144, m.SignalLine, 0.0001)
	assert.InDelta(t, 0.1454, m.Histogram, 0.0001)
}

func TestMACDShortSeriesIsZero(t *testing.T) {
	m := CalcMACD(testCloses, 12, 26, 9) // needs 35, has 33
	assert.Zero(t, m.MACDLine)
	assert.Zero(t, m.SignalLine)
	assert.Zero(t, m.Histogram)
}

func TestRSI(t *testing.T) {
	assert.Equal(t, 38.56, RSI(testCloses, 14))
}

func TestRSINeutralWhenShort(t *testing.T) {
	assert.Equal(t, 50.0, RSI(testCloses[:10], 14))
}

func TestRSIHundredWithoutLosses(t *testing.T) {
	up := make([]float64, 19)
	for i := range up {
		up[i] = float64(i + 1)
	}
	assert.Equal(t, 100.0, RSI(up, 14))
}

func TestATR(t *testing.T) {
	highs, lows := fixedOHLC()
	assert.Equal(t, 1.1227, ATR(highs, lows, testCloses, 14))
}

func TestATRShortSeriesUsesMeanRange(t *testing.T) {
	highs := []float64{11, 12, 13}
	lows := []float64{10, 10, 11}
	closes := []float64{10.5, 11, 12}
	assert.InDelta(t, (1.0+2.0+2.0)/3, ATR(highs, lows, closes, 14), 0.0001)
}

func TestBollinger(t *testing.T) {
	b := CalcBollinger(testCloses, 20, 2.0)
	assert.InDelta(t, 47.6202, b.Upper, 0.0001)
	assert.InDelta(t, 45.241, b.Middle, 0.0001)
	assert.InDelta(t, 42.8618, b.Lower, 0.0001)
	assert.InDelta(t, 0.1052, b.BBW, 0.0001)
	assert.Equal(t, -2, b.Rating)
	assert.Equal(t, "SELL", b.Signal)
}

func TestBollingerShortSeriesCollapses(t *testing.T) {
	b := CalcBollinger([]float64{100, 101}, 20, 2.0)
	assert.Equal(t, 101.0, b.Upper)
	assert.Equal(t, 101.0, b.Middle)
	assert.Equal(t, 101.0, b.Lower)
	assert.Equal(t, 0, b.Rating)
	assert.Equal(t, "NEUTRAL", b.Signal)
}

func TestBollingerRatingScale(t *testing.T) {
	cases := []struct {
		close  float64
		rating int
		signal string
	}{
		{111, 3, "BUY"},
		{108, 2, "BUY"},
		{102, 1, "NEUTRAL"},
		{100, 0, "NEUTRAL"},
		{98, -1, "NEUTRAL"},
		{92, -2, "SELL"},
		{89, -3, "SELL"},
	}
	for _, tc := range cases {
		rating, signal := bbRating(tc.close, 110, 100, 90)
		assert.Equal(t, tc.rating, rating, "close %v", tc.close)
		assert.Equal(t, tc.signal, signal, "close %v", tc.close)
	}
}

func TestADX(t *testing.T) {
	highs, lows := fixedOHLC()
	assert.Equal(t, 358.62, ADX(highs, lows, testCloses, 14))
}

func TestADXDefaultWhenShort(t *testing.T) {
	highs, lows := fixedOHLC()
	assert.Equal(t, 25.0, ADX(highs[:20], lows[:20], testCloses[:20], 14))
}

func TestStochastic(t *testing.T) {
	highs, lows := fixedOHLC()
	s := CalcStochastic(highs, lows, testCloses, 14, 3)
	assert.Equal(t, 20.25, s.K)
	assert.Equal(t, 14.37, s.D)
	assert.Equal(t, "NEUTRAL", s.Signal)
}

func TestStochasticNeutralWhenShort(t *testing.T) {
	s := CalcStochastic([]float64{11, 12}, []float64{10, 11}, []float64{10.5, 11.5}, 14, 3)
	assert.Equal(t, 50.0, s.K)
	assert.Equal(t, 50.0, s.D)
	assert.Equal(t, "NEUTRAL", s.Signal)
}

func candlesFromCloses(closes []float64) []market.Candle {
	out := make([]market.Candle, len(closes))
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	for i, c := range closes {
		out[i] = market.Candle{
			Timestamp: base.Add(time.Duration(i) * time.Hour),
			Open:      c, High: c + 0.5, Low: c - 0.5, Close: c,
			Volume: float64(100 + i),
		}
	}
	return out
}

func TestCalculateAll(t *testing.T) {
	candles := candlesFromCloses(testCloses)
	specs := []config.IndicatorSpec{
		{Name: "ema", Period: 9},
		{Name: "ema", Period: 21},
		{Name: "sma", Period: 20},
		{Name: "rsi", Period: 14},
		{Name: "atr", Period: 14},
		{Name: "bollinger", Period: 20, StdDev: 2.0},
		{Name: "stochastic", Period: 14, Smooth: 3},
	}

	r := CalculateAll(candles, specs)
	require.NotNil(t, r)

	assert.InDelta(t, 44.0203, r.EMA["ema_9"], 0.0001)
	assert.InDelta(t, 44.6543, r.EMA["ema_21"], 0.0001)
	assert.InDelta(t, 45.241, r.SMA["sma_20"], 0.0001)
	require.NotNil(t, r.RSI)
	assert.Equal(t, 38.56, *r.RSI)
	require.NotNil(t, r.ATR)
	require.NotNil(t, r.Bollinger)
	require.NotNil(t, r.Stochastic)
	assert.Nil(t, r.MACD)
	assert.Nil(t, r.ADX)

	// Volume of the last candle, SMA 20 of the tail.
	assert.Equal(t, 132.0, r.Volume)
	assert.Equal(t, 122.5, r.VolumeSMA)
}

func TestCalculateAllNilOnTooFewCandles(t *testing.T) {
	assert.Nil(t, CalculateAll(nil, nil))
	assert.Nil(t, CalculateAll(candlesFromCloses([]float64{100}), nil))
}
