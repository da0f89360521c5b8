package evaluation

import (
	"context"

	"github.com/sigmapilot/lens/pkg/config"
	"github.com/sigmapilot/lens/pkg/models"
)

// probePrompt keeps the validation call cheap: minimal tokens, any answer
// proves the key works.
const probePrompt = `Respond with the JSON object {"status": "ok"}.`

// ProbeAPIKey makes one minimal provider call to classify an API key. The
// returned status is one of ok, invalid_key, rate_limited, error. Satisfies
// registry.KeyProbe.
func ProbeAPIKey(ctx context.Context, cfg config.ModelConfig) string {
	adapter, err := NewAdapter(cfg)
	if err != nil {
		return "error"
	}

	resp := adapter.Evaluate(ctx, probePrompt)
	switch resp.Status {
	case models.DecisionStatusOK, models.DecisionStatusSchemaError:
		// A schema error still means the provider accepted the key.
		return "ok"
	case models.DecisionStatusRateLimited:
		return "rate_limited"
	case models.DecisionStatusAPIError:
		if resp.ErrorCode == "HTTP_401" || resp.ErrorCode == "HTTP_403" {
			return "invalid_key"
		}
		return "error"
	default:
		return "error"
	}
}
