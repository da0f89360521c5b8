// Package ta computes technical indicators over OHLCV candles: EMA, SMA,
// MACD, RSI, ATR, Bollinger Bands, ADX and Stochastic. Inputs are ordered
// oldest to newest; short series fall back to documented neutral defaults
// instead of erroring.
package ta

import (
	"fmt"
	"math"

	"github.com/sigmapilot/lens/pkg/config"
	"github.com/sigmapilot/lens/pkg/market"
)

// MACD holds the MACD line, its signal EMA and the histogram.
type MACD struct {
	MACDLine   float64 `json:"macd_line"`
	SignalLine float64 `json:"signal_line"`
	Histogram  float64 `json:"histogram"`
}

// Bollinger holds the band values plus a -3..+3 position rating.
type Bollinger struct {
	Upper  float64 `json:"upper"`
	Middle float64 `json:"middle"`
	Lower  float64 `json:"lower"`
	BBW    float64 `json:"bbw"`
	Rating int     `json:"rating"`
	Signal string  `json:"signal"`
}

// Stochastic holds %K, %D and the overbought/oversold signal.
type Stochastic struct {
	K      float64 `json:"k"`
	D      float64 `json:"d"`
	Signal string  `json:"signal"`
}

// Result is the full indicator set for one timeframe. Maps key by
// "ema_<period>" / "sma_<period>". Pointers are nil when the profile did
// not select that indicator.
type Result struct {
	EMA        map[string]float64 `json:"ema,omitempty"`
	SMA        map[string]float64 `json:"sma,omitempty"`
	MACD       *MACD              `json:"macd,omitempty"`
	RSI        *float64           `json:"rsi,omitempty"`
	ATR        *float64           `json:"atr,omitempty"`
	Bollinger  *Bollinger         `json:"bollinger,omitempty"`
	ADX        *float64           `json:"adx,omitempty"`
	Stochastic *Stochastic        `json:"stochastic,omitempty"`
	Volume     float64            `json:"volume"`
	VolumeSMA  float64            `json:"volume_sma"`
}

// SMA returns the simple moving average of the trailing period values, or
// the mean of the whole series when it is shorter.
func SMA(data []float64, period int) float64 {
	if len(data) < period {
		return mean(data)
	}
	return mean(data[len(data)-period:])
}

// EMA returns the current exponential moving average: multiplier 2/(p+1),
// seeded with the SMA of the first p values. Short series return the mean.
func EMA(closes []float64, period int) float64 {
	if len(closes) < period {
		return mean(closes)
	}
	multiplier := 2.0 / float64(period+1)
	ema := mean(closes[:period])
	for _, close := range closes[period:] {
		ema = (close-ema)*multiplier + ema
	}
	return ema
}

// emaSeries computes the EMA at every index, NaN before the seed point.
func emaSeries(closes []float64, period int) []float64 {
	out := make([]float64, len(closes))
	if len(closes) < period {
		for i := range out {
			out[i] = math.NaN()
		}
		return out
	}
	multiplier := 2.0 / float64(period+1)
	for i := 0; i < period-1; i++ {
		out[i] = math.NaN()
	}
	out[period-1] = mean(closes[:period])
	for i := period; i < len(closes); i++ {
		out[i] = (closes[i]-out[i-1])*multiplier + out[i-1]
	}
	return out
}

// CalcMACD computes MACD over closes. Zeros when the series is shorter
// than slow+signal.
func CalcMACD(closes []float64, fast, slow, signal int) *MACD {
	if len(closes) < slow+signal {
		return &MACD{}
	}

	fastEMA := emaSeries(closes, fast)
	slowEMA := emaSeries(closes, slow)

	macdLine := make([]float64, len(closes))
	for i := range closes {
		macdLine[i] = fastEMA[i] - slowEMA[i]
	}

	// Signal line is the EMA over the region where the slow EMA exists.
	validMACD := macdLine[slow-1:]
	signalEMA := emaSeries(validMACD, signal)

	currentMACD := macdLine[len(macdLine)-1]
	currentSignal := 0.0
	if len(signalEMA) > 0 {
		currentSignal = signalEMA[len(signalEMA)-1]
	}

	return &MACD{
		MACDLine:   round4(currentMACD),
		SignalLine: round4(currentSignal),
		Histogram:  round4(currentMACD - currentSignal),
	}
}

// RSI computes the Wilder-smoothed relative strength index. Neutral 50
// when the series is shorter than period+1; 100 when there are no losses.
func RSI(closes []float64, period int) float64 {
	if len(closes) < period+1 {
		return 50.0
	}

	gains := make([]float64, len(closes)-1)
	losses := make([]float64, len(closes)-1)
	for i := 1; i < len(closes); i++ {
		delta := closes[i] - closes[i-1]
		if delta > 0 {
			gains[i-1] = delta
		} else {
			losses[i-1] = -delta
		}
	}

	avgGain := mean(gains[:period])
	avgLoss := mean(losses[:period])
	for i := period; i < len(gains); i++ {
		avgGain = (avgGain*float64(period-1) + gains[i]) / float64(period)
		avgLoss = (avgLoss*float64(period-1) + losses[i]) / float64(period)
	}

	if avgLoss == 0 {
		return 100.0
	}
	rs := avgGain / avgLoss
	return round2(100 - 100/(1+rs))
}

// ATR computes the Wilder-smoothed average true range. Short series return
// the mean high-low range.
func ATR(highs, lows, closes []float64, period int) float64 {
	if len(closes) < period+1 {
		ranges := make([]float64, len(highs))
		for i := range highs {
			ranges[i] = highs[i] - lows[i]
		}
		return mean(ranges)
	}

	tr := trueRange(highs, lows, closes)
	atr := mean(tr[:period])
	for i := period; i < len(tr); i++ {
		atr = (atr*float64(period-1) + tr[i]) / float64(period)
	}
	return round4(atr)
}

func trueRange(highs, lows, closes []float64) []float64 {
	tr := make([]float64, len(closes))
	for i := range closes {
		prevClose := closes[0]
		if i > 0 {
			prevClose = closes[i-1]
		}
		tr[i] = math.Max(highs[i]-lows[i],
			math.Max(math.Abs(highs[i]-prevClose), math.Abs(lows[i]-prevClose)))
	}
	return tr
}

// CalcBollinger computes Bollinger Bands with a population standard
// deviation. Short series collapse all bands onto the last close.
func CalcBollinger(closes []float64, period int, stdDev float64) *Bollinger {
	if len(closes) < period {
		price := 0.0
		if len(closes) > 0 {
			price = closes[len(closes)-1]
		}
		return &Bollinger{Upper: price, Middle: price, Lower: price, Signal: "NEUTRAL"}
	}

	window := closes[len(closes)-period:]
	middle := mean(window)
	std := stddevPop(window, middle)

	upper := middle + stdDev*std
	lower := middle - stdDev*std
	bbw := 0.0
	if middle != 0 {
		bbw = (upper - lower) / middle
	}

	rating, signal := bbRating(closes[len(closes)-1], upper, middle, lower)
	return &Bollinger{
		Upper:  round4(upper),
		Middle: round4(middle),
		Lower:  round4(lower),
		BBW:    round4(bbw),
		Rating: rating,
		Signal: signal,
	}
}

// bbRating maps the close's position within the bands to -3..+3:
// beyond a band is ±3, the outer halves ±2, either side of the middle ±1.
func bbRating(close, upper, middle, lower float64) (int, string) {
	rating := 0
	switch {
	case close > upper:
		rating = 3
	case close > middle+(upper-middle)/2:
		rating = 2
	case close > middle:
		rating = 1
	case close < lower:
		rating = -3
	case close < middle-(middle-lower)/2:
		rating = -2
	case close < middle:
		rating = -1
	}

	signal := "NEUTRAL"
	if rating >= 2 {
		signal = "BUY"
	} else if rating <= -2 {
		signal = "SELL"
	}
	return rating, signal
}

// ADX computes the average directional index with Wilder running-sum
// smoothing. Series shorter than 2×period return the weak-trend default 25.
func ADX(highs, lows, closes []float64, period int) float64 {
	n := len(closes)
	if n < period*2 {
		return 25.0
	}

	tr := trueRange(highs, lows, closes)
	plusDM := make([]float64, n)
	minusDM := make([]float64, n)
	for i := range highs {
		prevHigh, prevLow := highs[0], lows[0]
		if i > 0 {
			prevHigh, prevLow = highs[i-1], lows[i-1]
		}
		upMove := highs[i] - prevHigh
		downMove := prevLow - lows[i]
		if upMove > downMove && upMove > 0 {
			plusDM[i] = upMove
		}
		if downMove > upMove && downMove > 0 {
			minusDM[i] = downMove
		}
	}

	atrSm := wilderSmooth(tr, period)
	plusSm := wilderSmooth(plusDM, period)
	minusSm := wilderSmooth(minusDM, period)

	dx := make([]float64, n)
	for i := range dx {
		plusDI := 100 * plusSm[i] / atrSm[i]
		minusDI := 100 * minusSm[i] / atrSm[i]
		dx[i] = 100 * math.Abs(plusDI-minusDI) / (plusDI + minusDI + 1e-10)
	}

	adx := wilderSmooth(dx[period-1:], period)
	last := adx[len(adx)-1]
	if math.IsNaN(last) {
		return 25.0
	}
	return round2(last)
}

// wilderSmooth is Wilder's running-sum smoothing: seed with the sum of the
// first period values, then s = s - s/period + x.
func wilderSmooth(data []float64, period int) []float64 {
	out := make([]float64, len(data))
	for i := 0; i < period-1 && i < len(data); i++ {
		out[i] = math.NaN()
	}
	if len(data) < period {
		return out
	}
	out[period-1] = sum(data[:period])
	for i := period; i < len(data); i++ {
		out[i] = out[i-1] - out[i-1]/float64(period) + data[i]
	}
	return out
}

// CalcStochastic computes %K over kPeriod and %D as the SMA of the valid
// %K values. Neutral 50/50 when the series is shorter than kPeriod.
func CalcStochastic(highs, lows, closes []float64, kPeriod, dPeriod int) *Stochastic {
	if len(closes) < kPeriod {
		return &Stochastic{K: 50.0, D: 50.0, Signal: "NEUTRAL"}
	}

	var validK []float64
	for i := kPeriod - 1; i < len(closes); i++ {
		hh := maxOf(highs[i-kPeriod+1 : i+1])
		ll := minOf(lows[i-kPeriod+1 : i+1])
		k := 50.0
		if hh > ll {
			k = (closes[i] - ll) / (hh - ll) * 100
		}
		validK = append(validK, k)
	}

	kValue := validK[len(validK)-1]
	dValue := kValue
	if len(validK) >= dPeriod {
		dValue = mean(validK[len(validK)-dPeriod:])
	}

	signal := "NEUTRAL"
	if kValue > 80 {
		signal = "OVERBOUGHT"
	} else if kValue < 20 {
		signal = "OVERSOLD"
	}

	return &Stochastic{K: round2(kValue), D: round2(dValue), Signal: signal}
}

// CalculateAll computes the indicators a profile selects over the candles.
// Returns nil when fewer than 2 candles are available.
func CalculateAll(candles []market.Candle, indicators []config.IndicatorSpec) *Result {
	if len(candles) < 2 {
		return nil
	}

	closes := make([]float64, len(candles))
	highs := make([]float64, len(candles))
	lows := make([]float64, len(candles))
	volumes := make([]float64, len(candles))
	for i, c := range candles {
		closes[i] = c.Close
		highs[i] = c.High
		lows[i] = c.Low
		volumes[i] = c.Volume
	}

	result := &Result{
		EMA: map[string]float64{},
		SMA: map[string]float64{},
	}

	for _, spec := range indicators {
		switch spec.Name {
		case "ema":
			period := defaultInt(spec.Period, 21)
			result.EMA[fmt.Sprintf("ema_%d", period)] = round4(EMA(closes, period))
		case "sma":
			period := defaultInt(spec.Period, 20)
			result.SMA[fmt.Sprintf("sma_%d", period)] = round4(SMA(closes, period))
		case "macd":
			result.MACD = CalcMACD(closes,
				defaultInt(spec.Fast, 12), defaultInt(spec.Slow, 26), defaultInt(spec.Signal, 9))
		case "rsi":
			v := RSI(closes, defaultInt(spec.Period, 14))
			result.RSI = &v
		case "atr":
			v := ATR(highs, lows, closes, defaultInt(spec.Period, 14))
			result.ATR = &v
		case "bollinger":
			std := spec.StdDev
			if std == 0 {
				std = 2.0
			}
			result.Bollinger = CalcBollinger(closes, defaultInt(spec.Period, 20), std)
		case "adx":
			v := ADX(highs, lows, closes, defaultInt(spec.Period, 14))
			result.ADX = &v
		case "stochastic":
			result.Stochastic = CalcStochastic(highs, lows, closes,
				defaultInt(spec.Period, 14), defaultInt(spec.Smooth, 3))
		}
	}

	result.Volume = volumes[len(volumes)-1]
	result.VolumeSMA = round2(SMA(volumes, 20))
	return result
}

func defaultInt(v, fallback int) int {
	if v > 0 {
		return v
	}
	return fallback
}

func mean(data []float64) float64 {
	if len(data) == 0 {
		return 0
	}
	return sum(data) / float64(len(data))
}

func sum(data []float64) float64 {
	s := 0.0
	for _, v := range data {
		s += v
	}
	return s
}

func stddevPop(data []float64, mu float64) float64 {
	if len(data) == 0 {
		return 0
	}
	ss := 0.0
	for _, v := range data {
		d := v - mu
		ss += d * d
	}
	return math.Sqrt(ss / float64(len(data)))
}

func maxOf(data []float64) float64 {
	m := data[0]
	for _, v := range data[1:] {
		if v > m {
			m = v
		}
	}
	return m
}

func minOf(data []float64) float64 {
	m := data[0]
	for _, v := range data[1:] {
		if v < m {
			m = v
		}
	}
	return m
}

func round2(f float64) float64 {
	return math.Round(f*100) / 100
}

func round4(f float64) float64 {
	return math.Round(f*10000) / 10000
}
