package evaluation

import (
	"strings"

	"github.com/sigmapilot/lens/pkg/models"
)

// Stub-mode provenance markers recorded on decision rows.
const (
	stubModelVersion  = "stub-v1"
	stubPromptVersion = "core_decision_v1"
	stubPromptHash    = "stub"
)

// stubPersonality is the fixed behavior of one model in stub mode.
type stubPersonality struct {
	confidence float64
	decision   models.Decision
	style      string
}

var stubPersonalities = map[string]stubPersonality{
	"chatgpt":  {confidence: 0.75, decision: models.DecisionFollowEnter, style: "aggressive"},
	"gemini":   {confidence: 0.68, decision: models.DecisionFollowEnter, style: "balanced"},
	"claude":   {confidence: 0.72, decision: models.DecisionFollowEnter, style: "conservative"},
	"deepseek": {confidence: 0.70, decision: models.DecisionFollowEnter, style: "analytical"},
}

// StubDecision produces the deterministic offline decision for one model.
// Used when EVALUATION_MODE=stub: no network, no prompt, stable output for
// a given (model, payload) pair.
func StubDecision(modelName string, payload *models.EnrichedPayload) map[string]interface{} {
	p, ok := stubPersonalities[modelName]
	if !ok {
		p = stubPersonality{confidence: 0.60, decision: models.DecisionIgnore, style: "default"}
	}

	var entryPlan map[string]interface{}
	switch p.style {
	case "aggressive":
		entryPlan = map[string]interface{}{"type": "market"}
	case "conservative":
		entryPlan = map[string]interface{}{"type": "limit", "offset_bps": -10}
	default:
		entryPlan = map[string]interface{}{"type": "limit", "offset_bps": -5}
	}

	var riskPlan map[string]interface{}
	switch p.style {
	case "conservative":
		riskPlan = map[string]interface{}{"stop_method": "atr", "atr_multiple": 2.5}
	case "aggressive":
		riskPlan = map[string]interface{}{"stop_method": "atr", "atr_multiple": 1.5}
	default:
		riskPlan = map[string]interface{}{"stop_method": "atr", "atr_multiple": 2.0}
	}

	isLong := payload != nil && strings.EqualFold(string(payload.SignalDirection), "long")
	trend, stack := "bearish_trend", "ema_bearish_stack"
	if isLong {
		trend, stack = "bullish_trend", "ema_bullish_stack"
	}

	return map[string]interface{}{
		"decision":   string(p.decision),
		"confidence": p.confidence,
		"entry_plan": entryPlan,
		"risk_plan":  riskPlan,
		"size_pct":   int(p.confidence * 20),
		"reasons": []interface{}{
			trend,
			stack,
			"funding_favorable",
			"good_rr_ratio",
		},
	}
}
