package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/sigmapilot/lens/pkg/models"
)

// ModelConfig is the resolved credential + parameter set for one AI model.
// The database-backed registry is the primary source; these env values are
// the fallback when no row exists for a model.
type ModelConfig struct {
	ModelName string
	Provider  string
	APIKey    string
	ModelID   string
	Timeout   time.Duration
	MaxTokens int
}

// IsConfigured reports whether the config carries enough to issue a call.
func (c *ModelConfig) IsConfigured() bool {
	return c.APIKey != "" && c.ModelID != ""
}

// ModelConfigFromEnv reads MODEL_<NAME>_* variables for the given model.
// Provider defaults from the model table; unknown models need an explicit
// MODEL_<NAME>_PROVIDER.
func ModelConfigFromEnv(name string) (*ModelConfig, error) {
	prefix := "MODEL_" + strings.ToUpper(name) + "_"

	provider := os.Getenv(prefix + "PROVIDER")
	if provider == "" {
		provider = models.ModelProviders[name]
	}
	if provider == "" {
		return nil, fmt.Errorf("model %q has no provider: set %sPROVIDER", name, prefix)
	}

	modelID := os.Getenv(prefix + "MODEL_ID")
	if modelID == "" {
		modelID = models.DefaultModelIDs[name]
	}

	timeout, err := getEnvMillis(prefix+"TIMEOUT_MS", 30000)
	if err != nil {
		return nil, err
	}
	maxTokens, err := getEnvInt(prefix+"MAX_TOKENS", 1000, 1)
	if err != nil {
		return nil, err
	}

	return &ModelConfig{
		ModelName: name,
		Provider:  provider,
		APIKey:    os.Getenv(prefix + "API_KEY"),
		ModelID:   modelID,
		Timeout:   timeout,
		MaxTokens: maxTokens,
	}, nil
}
