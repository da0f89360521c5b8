package models

// Decision is the model's recommendation for a signal.
type Decision string

const (
	DecisionFollowEnter Decision = "FOLLOW_ENTER"
	DecisionIgnore      Decision = "IGNORE"
	DecisionFollowExit  Decision = "FOLLOW_EXIT"
	DecisionHold        Decision = "HOLD"
	DecisionTightenStop Decision = "TIGHTEN_STOP"
)

// ValidDecisions lists every decision a model output may carry.
var ValidDecisions = []Decision{
	DecisionFollowEnter, DecisionIgnore, DecisionFollowExit,
	DecisionHold, DecisionTightenStop,
}

// IsValidDecision reports whether d is in the valid decision set.
func IsValidDecision(d string) bool {
	for _, v := range ValidDecisions {
		if Decision(d) == v {
			return true
		}
	}
	return false
}

// DecisionStatus records the outcome of a single model evaluation attempt.
// A row is persisted for every attempt, including failures.
type DecisionStatus string

const (
	DecisionStatusOK            DecisionStatus = "ok"
	DecisionStatusTimeout       DecisionStatus = "timeout"
	DecisionStatusRateLimited   DecisionStatus = "rate_limited"
	DecisionStatusAPIError      DecisionStatus = "api_error"
	DecisionStatusSchemaError   DecisionStatus = "schema_error"
	DecisionStatusNetworkError  DecisionStatus = "network_error"
	DecisionStatusInvalidConfig DecisionStatus = "invalid_config"
)

// Entry plan types and risk plan stop methods accepted by the decision schema.
var (
	ValidEntryTypes  = []string{"market", "limit"}
	ValidStopMethods = []string{"fixed", "atr", "trailing"}
)

// EntryPlan is the model's optional execution suggestion.
type EntryPlan struct {
	Type      string   `json:"type"`
	OffsetBps *float64 `json:"offset_bps,omitempty"`
}

// RiskPlan is the model's optional stop-management suggestion.
type RiskPlan struct {
	StopMethod  string   `json:"stop_method"`
	ATRMultiple *float64 `json:"atr_multiple,omitempty"`
	TrailPct    *float64 `json:"trail_pct,omitempty"`
}

// DecisionOutput is the normalized shape of a model's JSON answer. It is the
// value persisted in model_decisions.decision_payload and broadcast to
// subscribers.
type DecisionOutput struct {
	Decision   Decision   `json:"decision"`
	Confidence float64    `json:"confidence"`
	EntryPlan  *EntryPlan `json:"entry_plan,omitempty"`
	RiskPlan   *RiskPlan  `json:"risk_plan,omitempty"`
	SizePct    *float64   `json:"size_pct,omitempty"`
	Reasons    []string   `json:"reasons"`
}
