package evaluation

import (
	"fmt"
	"strings"

	"github.com/sigmapilot/lens/pkg/models"
)

// ValidateDecisionOutput checks a parsed model answer against the decision
// schema. All problems are collected, not just the first.
func ValidateDecisionOutput(output map[string]interface{}) (bool, []string) {
	if output == nil {
		return false, []string{"Output must be a JSON object"}
	}

	var errs []string
	for _, field := range []string{"decision", "confidence", "reasons"} {
		if _, ok := output[field]; !ok {
			errs = append(errs, fmt.Sprintf("Missing required field: %s", field))
		}
	}

	if decision, present := output["decision"]; present {
		s, ok := decision.(string)
		if !ok || !models.IsValidDecision(s) {
			errs = append(errs, fmt.Sprintf("Invalid decision '%v'. Must be one of: %s",
				decision, joinDecisions()))
		}
	}

	if confidence, present := output["confidence"]; present && confidence != nil {
		if v, ok := asNumber(confidence); !ok {
			errs = append(errs, "confidence must be a number")
		} else if v < 0 || v > 1 {
			errs = append(errs, fmt.Sprintf("confidence must be between 0 and 1, got %v", confidence))
		}
	}

	if reasons, present := output["reasons"]; present && reasons != nil {
		list, ok := reasons.([]interface{})
		switch {
		case !ok:
			errs = append(errs, "reasons must be an array")
		case len(list) == 0:
			errs = append(errs, "reasons must have at least one element")
		default:
			for _, r := range list {
				if _, ok := r.(string); !ok {
					errs = append(errs, "All reasons must be strings")
					break
				}
			}
		}
	}

	if entryPlan, present := output["entry_plan"]; present && entryPlan != nil {
		plan, ok := entryPlan.(map[string]interface{})
		if !ok {
			errs = append(errs, "entry_plan must be an object")
		} else {
			if entryType, ok := plan["type"].(string); ok && entryType != "" {
				if !contains(models.ValidEntryTypes, entryType) {
					errs = append(errs, fmt.Sprintf("Invalid entry_plan.type '%s'. Must be one of: %s",
						entryType, strings.Join(models.ValidEntryTypes, ", ")))
				}
			}
			if offset, present := plan["offset_bps"]; present && offset != nil {
				if _, ok := asNumber(offset); !ok {
					errs = append(errs, "entry_plan.offset_bps must be a number")
				}
			}
		}
	}

	if riskPlan, present := output["risk_plan"]; present && riskPlan != nil {
		plan, ok := riskPlan.(map[string]interface{})
		if !ok {
			errs = append(errs, "risk_plan must be an object")
		} else {
			if stopMethod, ok := plan["stop_method"].(string); ok && stopMethod != "" {
				if !contains(models.ValidStopMethods, stopMethod) {
					errs = append(errs, fmt.Sprintf("Invalid risk_plan.stop_method '%s'. Must be one of: %s",
						stopMethod, strings.Join(models.ValidStopMethods, ", ")))
				}
			}
			if atrMult, present := plan["atr_multiple"]; present && atrMult != nil {
				if v, ok := asNumber(atrMult); !ok {
					errs = append(errs, "risk_plan.atr_multiple must be a number")
				} else if v < 0.5 || v > 10 {
					errs = append(errs, fmt.Sprintf("risk_plan.atr_multiple must be between 0.5 and 10, got %v", atrMult))
				}
			}
			if trailPct, present := plan["trail_pct"]; present && trailPct != nil {
				if v, ok := asNumber(trailPct); !ok {
					errs = append(errs, "risk_plan.trail_pct must be a number")
				} else if v < 0 || v > 100 {
					errs = append(errs, fmt.Sprintf("risk_plan.trail_pct must be between 0 and 100, got %v", trailPct))
				}
			}
		}
	}

	if sizePct, present := output["size_pct"]; present && sizePct != nil {
		if v, ok := asNumber(sizePct); !ok {
			errs = append(errs, "size_pct must be a number")
		} else if v < 0 || v > 100 {
			errs = append(errs, fmt.Sprintf("size_pct must be between 0 and 100, got %v", sizePct))
		}
	}

	return len(errs) == 0, errs
}

// NormalizeDecisionOutput fills defaults and clamps ranges. Idempotent:
// normalizing an already-normalized output is a no-op.
func NormalizeDecisionOutput(output map[string]interface{}) map[string]interface{} {
	normalized := map[string]interface{}{
		"decision":   valueOr(output, "decision", string(models.DecisionIgnore)),
		"confidence": 0.5,
		"entry_plan": output["entry_plan"],
		"risk_plan":  output["risk_plan"],
		"size_pct":   output["size_pct"],
		"reasons":    output["reasons"],
	}

	if confidence, present := output["confidence"]; present && confidence != nil {
		if v, ok := asNumber(confidence); ok {
			normalized["confidence"] = clampFloat(v, 0, 1)
		}
	}
	if normalized["reasons"] == nil {
		normalized["reasons"] = []interface{}{"unknown"}
	}
	if sizePct, present := output["size_pct"]; present && sizePct != nil {
		if v, ok := asNumber(sizePct); ok {
			normalized["size_pct"] = clampInt(int(v), 0, 100)
		}
	}
	return normalized
}

// FallbackDecision is the decision payload persisted when a model fails to
// produce a valid answer: downstream consumers always see a decision row.
func FallbackDecision(modelName string) map[string]interface{} {
	return map[string]interface{}{
		"decision":   string(models.DecisionIgnore),
		"confidence": 0.0,
		"entry_plan": nil,
		"risk_plan":  nil,
		"size_pct":   0,
		"reasons": []interface{}{
			fmt.Sprintf("model_error_%s", modelName),
			"fallback_decision",
		},
	}
}

func joinDecisions() string {
	names := make([]string, len(models.ValidDecisions))
	for i, d := range models.ValidDecisions {
		names[i] = string(d)
	}
	return strings.Join(names, ", ")
}

func asNumber(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	default:
		return 0, false
	}
}

func contains(list []string, v string) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}

func valueOr(m map[string]interface{}, key string, fallback interface{}) interface{} {
	if v, ok := m[key]; ok && v != nil {
		return v
	}
	return fallback
}

func clampFloat(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
