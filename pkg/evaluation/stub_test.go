package evaluation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sigmapilot/lens/pkg/models"
)

func stubPayload(direction models.SignalDirection) *models.EnrichedPayload {
	return &models.EnrichedPayload{
		EventID:         "tv_test_1",
		Symbol:          "BTCUSDT",
		EventType:       models.EventTypeOpenSignal,
		SignalDirection: direction,
	}
}

func TestStubDecision_Personalities(t *testing.T) {
	payload := stubPayload(models.DirectionLong)

	tests := []struct {
		model      string
		confidence float64
		decision   string
		entryType  string
		atrMult    float64
	}{
		{"chatgpt", 0.75, "FOLLOW_ENTER", "market", 1.5},
		{"gemini", 0.68, "FOLLOW_ENTER", "limit", 2.0},
		{"claude", 0.72, "FOLLOW_ENTER", "limit", 2.5},
		{"deepseek", 0.70, "FOLLOW_ENTER", "limit", 2.0},
	}
	for _, tt := range tests {
		t.Run(tt.model, func(t *testing.T) {
			d := StubDecision(tt.model, payload)

			assert.Equal(t, tt.decision, d["decision"])
			assert.Equal(t, tt.confidence, d["confidence"])
			assert.Equal(t, int(tt.confidence*20), d["size_pct"])

			entry := d["entry_plan"].(map[string]interface{})
			assert.Equal(t, tt.entryType, entry["type"])

			risk := d["risk_plan"].(map[string]interface{})
			assert.Equal(t, "atr", risk["stop_method"])
			assert.Equal(t, tt.atrMult, risk["atr_multiple"])
		})
	}
}

func TestStubDecision_UnknownModel(t *testing.T) {
	d := StubDecision("mistral", stubPayload(models.DirectionLong))

	assert.Equal(t, "IGNORE", d["decision"])
	assert.Equal(t, 0.60, d["confidence"])
	assert.Equal(t, 12, d["size_pct"])

	entry := d["entry_plan"].(map[string]interface{})
	assert.Equal(t, "limit", entry["type"])
	assert.Equal(t, -5, entry["offset_bps"])
}

func TestStubDecision_DirectionReasons(t *testing.T) {
	long := StubDecision("chatgpt", stubPayload(models.DirectionLong))
	assert.Equal(t, []interface{}{
		"bullish_trend", "ema_bullish_stack", "funding_favorable", "good_rr_ratio",
	}, long["reasons"])

	short := StubDecision("chatgpt", stubPayload(models.DirectionShort))
	assert.Equal(t, []interface{}{
		"bearish_trend", "ema_bearish_stack", "funding_favorable", "good_rr_ratio",
	}, short["reasons"])
}

func TestStubDecision_Deterministic(t *testing.T) {
	payload := stubPayload(models.DirectionLong)
	assert.Equal(t, StubDecision("claude", payload), StubDecision("claude", payload))
}

func TestStubDecision_ValidatesAndNormalizes(t *testing.T) {
	for _, model := range []string{"chatgpt", "gemini", "claude", "deepseek", "other"} {
		d := StubDecision(model, stubPayload(models.DirectionShort))
		valid, errs := ValidateDecisionOutput(d)
		require.True(t, valid, "model %s: %v", model, errs)
		assert.Equal(t, d, NormalizeDecisionOutput(d), "model %s", model)
	}
}
