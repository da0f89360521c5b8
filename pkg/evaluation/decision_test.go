package evaluation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validOutput() map[string]interface{} {
	return map[string]interface{}{
		"decision":   "FOLLOW_ENTER",
		"confidence": 0.8,
		"entry_plan": map[string]interface{}{"type": "limit", "offset_bps": -5.0},
		"risk_plan":  map[string]interface{}{"stop_method": "atr", "atr_multiple": 2.0},
		"size_pct":   15.0,
		"reasons":    []interface{}{"bullish_trend"},
	}
}

func TestValidateDecisionOutput(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(m map[string]interface{})
		wantErr string
	}{
		{
			name:   "valid output passes",
			mutate: func(m map[string]interface{}) {},
		},
		{
			name:    "missing decision",
			mutate:  func(m map[string]interface{}) { delete(m, "decision") },
			wantErr: "Missing required field: decision",
		},
		{
			name:    "missing confidence",
			mutate:  func(m map[string]interface{}) { delete(m, "confidence") },
			wantErr: "Missing required field: confidence",
		},
		{
			name:    "missing reasons",
			mutate:  func(m map[string]interface{}) { delete(m, "reasons") },
			wantErr: "Missing required field: reasons",
		},
		{
			name:    "unknown decision value",
			mutate:  func(m map[string]interface{}) { m["decision"] = "BUY" },
			wantErr: "Invalid decision 'BUY'. Must be one of: FOLLOW_ENTER, IGNORE, FOLLOW_EXIT, HOLD, TIGHTEN_STOP",
		},
		{
			name:    "empty decision value",
			mutate:  func(m map[string]interface{}) { m["decision"] = "" },
			wantErr: "Invalid decision ''. Must be one of: FOLLOW_ENTER, IGNORE, FOLLOW_EXIT, HOLD, TIGHTEN_STOP",
		},
		{
			name:    "numeric decision value",
			mutate:  func(m map[string]interface{}) { m["decision"] = 42.0 },
			wantErr: "Invalid decision '42'. Must be one of: FOLLOW_ENTER, IGNORE, FOLLOW_EXIT, HOLD, TIGHTEN_STOP",
		},
		{
			name:    "boolean decision value",
			mutate:  func(m map[string]interface{}) { m["decision"] = true },
			wantErr: "Invalid decision 'true'. Must be one of: FOLLOW_ENTER, IGNORE, FOLLOW_EXIT, HOLD, TIGHTEN_STOP",
		},
		{
			name:    "confidence not a number",
			mutate:  func(m map[string]interface{}) { m["confidence"] = "high" },
			wantErr: "confidence must be a number",
		},
		{
			name:    "confidence out of range",
			mutate:  func(m map[string]interface{}) { m["confidence"] = 1.5 },
			wantErr: "confidence must be between 0 and 1, got 1.5",
		},
		{
			name:    "reasons wrong type",
			mutate:  func(m map[string]interface{}) { m["reasons"] = "because" },
			wantErr: "reasons must be an array",
		},
		{
			name:    "reasons empty",
			mutate:  func(m map[string]interface{}) { m["reasons"] = []interface{}{} },
			wantErr: "reasons must have at least one element",
		},
		{
			name:    "reasons with non-string element",
			mutate:  func(m map[string]interface{}) { m["reasons"] = []interface{}{"ok", 42} },
			wantErr: "All reasons must be strings",
		},
		{
			name: "bad entry type",
			mutate: func(m map[string]interface{}) {
				m["entry_plan"] = map[string]interface{}{"type": "stop"}
			},
			wantErr: "Invalid entry_plan.type 'stop'. Must be one of: market, limit",
		},
		{
			name: "bad stop method",
			mutate: func(m map[string]interface{}) {
				m["risk_plan"] = map[string]interface{}{"stop_method": "mental"}
			},
			wantErr: "Invalid risk_plan.stop_method 'mental'. Must be one of: fixed, atr, trailing",
		},
		{
			name: "atr multiple out of range",
			mutate: func(m map[string]interface{}) {
				m["risk_plan"] = map[string]interface{}{"stop_method": "atr", "atr_multiple": 12.0}
			},
			wantErr: "risk_plan.atr_multiple must be between 0.5 and 10, got 12",
		},
		{
			name: "trail pct out of range",
			mutate: func(m map[string]interface{}) {
				m["risk_plan"] = map[string]interface{}{"stop_method": "trailing", "trail_pct": 150.0}
			},
			wantErr: "risk_plan.trail_pct must be between 0 and 100, got 150",
		},
		{
			name:    "size pct out of range",
			mutate:  func(m map[string]interface{}) { m["size_pct"] = 120.0 },
			wantErr: "size_pct must be between 0 and 100, got 120",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			output := validOutput()
			tt.mutate(output)
			valid, errs := ValidateDecisionOutput(output)
			if tt.wantErr == "" {
				assert.True(t, valid)
				assert.Empty(t, errs)
				return
			}
			assert.False(t, valid)
			assert.Contains(t, errs, tt.wantErr)
		})
	}
}

func TestValidateDecisionOutput_NilOutput(t *testing.T) {
	valid, errs := ValidateDecisionOutput(nil)
	assert.False(t, valid)
	assert.Equal(t, []string{"Output must be a JSON object"}, errs)
}

func TestValidateDecisionOutput_CollectsAllErrors(t *testing.T) {
	valid, errs := ValidateDecisionOutput(map[string]interface{}{
		"decision":   "BUY",
		"confidence": "high",
	})
	require.False(t, valid)
	assert.Len(t, errs, 3) // bad decision, bad confidence, missing reasons
}

func TestNormalizeDecisionOutput_Defaults(t *testing.T) {
	normalized := NormalizeDecisionOutput(map[string]interface{}{})

	assert.Equal(t, "IGNORE", normalized["decision"])
	assert.Equal(t, 0.5, normalized["confidence"])
	assert.Equal(t, []interface{}{"unknown"}, normalized["reasons"])
	assert.Nil(t, normalized["entry_plan"])
	assert.Nil(t, normalized["risk_plan"])
	assert.Nil(t, normalized["size_pct"])
}

func TestNormalizeDecisionOutput_Clamps(t *testing.T) {
	normalized := NormalizeDecisionOutput(map[string]interface{}{
		"decision":   "HOLD",
		"confidence": 1.7,
		"size_pct":   250.0,
		"reasons":    []interface{}{"x"},
	})

	assert.Equal(t, 1.0, normalized["confidence"])
	assert.Equal(t, 100, normalized["size_pct"])

	normalized = NormalizeDecisionOutput(map[string]interface{}{
		"confidence": -0.2,
		"size_pct":   -5.0,
	})
	assert.Equal(t, 0.0, normalized["confidence"])
	assert.Equal(t, 0, normalized["size_pct"])
}

func TestNormalizeDecisionOutput_Idempotent(t *testing.T) {
	first := NormalizeDecisionOutput(validOutput())
	second := NormalizeDecisionOutput(first)
	assert.Equal(t, first, second)
}

func TestFallbackDecision(t *testing.T) {
	fb := FallbackDecision("claude")

	assert.Equal(t, "IGNORE", fb["decision"])
	assert.Equal(t, 0.0, fb["confidence"])
	assert.Nil(t, fb["entry_plan"])
	assert.Nil(t, fb["risk_plan"])
	assert.Equal(t, 0, fb["size_pct"])
	assert.Equal(t, []interface{}{"model_error_claude", "fallback_decision"}, fb["reasons"])

	// A fallback is itself a valid decision payload after normalization.
	valid, errs := ValidateDecisionOutput(NormalizeDecisionOutput(fb))
	assert.True(t, valid, "errors: %v", errs)
}
