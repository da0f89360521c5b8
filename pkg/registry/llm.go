// Package registry provides the runtime-mutable configuration layer: LLM
// credentials and versioned prompts, both database-backed behind TTL caches
// with write-through invalidation.
package registry

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/sigmapilot/lens/ent"
	"github.com/sigmapilot/lens/ent/llmconfig"
	"github.com/sigmapilot/lens/pkg/config"
	"github.com/sigmapilot/lens/pkg/models"
	"github.com/sigmapilot/lens/pkg/services"
)

// cacheTTL bounds how stale a registry read can be. Writes force-refresh so
// the TTL only matters for out-of-band database changes.
const cacheTTL = 5 * time.Minute

// KeyProbe issues a minimal live evaluation against a model config and
// returns a validation status: ok, invalid_key, rate_limited or error.
// Implemented by the evaluation package; injected to keep the dependency
// one-way.
type KeyProbe func(ctx context.Context, cfg config.ModelConfig) string

// LLMRegistry caches llm_configs rows and owns their admin mutations.
// Workers resolve adapter configs through GetConfig; a model without a
// usable config resolves to nil, not an error.
type LLMRegistry struct {
	client *ent.Client
	ttl    time.Duration

	mu        sync.RWMutex
	cache     map[string]*ent.LLMConfig
	fetchedAt time.Time
}

// NewLLMRegistry creates the registry. Call Initialize before serving.
func NewLLMRegistry(client *ent.Client) *LLMRegistry {
	return &LLMRegistry{
		client: client,
		ttl:    cacheTTL,
		cache:  map[string]*ent.LLMConfig{},
	}
}

// Initialize warms the cache from the database.
func (r *LLMRegistry) Initialize(ctx context.Context) error {
	if err := r.refresh(ctx); err != nil {
		return err
	}
	r.mu.RLock()
	n := len(r.cache)
	r.mu.RUnlock()
	slog.Info("LLM config registry initialized", "configs", n)
	return nil
}

func (r *LLMRegistry) refresh(ctx context.Context) error {
	rows, err := r.client.LLMConfig.Query().All(ctx)
	if err != nil {
		return fmt.Errorf("failed to refresh LLM config cache: %w", err)
	}

	cache := make(map[string]*ent.LLMConfig, len(rows))
	for _, row := range rows {
		cache[row.ModelName] = row
	}

	r.mu.Lock()
	r.cache = cache
	r.fetchedAt = time.Now()
	r.mu.Unlock()
	return nil
}

func (r *LLMRegistry) cached(ctx context.Context, model string) (*ent.LLMConfig, bool, error) {
	r.mu.RLock()
	valid := time.Since(r.fetchedAt) < r.ttl
	row, ok := r.cache[model]
	r.mu.RUnlock()

	if valid {
		return row, ok, nil
	}
	if err := r.refresh(ctx); err != nil {
		// Serve the stale cache rather than failing the evaluation.
		slog.Error("LLM config cache refresh failed, serving stale", "error", err)
		return row, ok, nil
	}
	r.mu.RLock()
	row, ok = r.cache[model]
	r.mu.RUnlock()
	return row, ok, nil
}

// GetConfig resolves the adapter config for a model: an enabled database
// row with an API key wins; a model with no row at all falls back to the
// MODEL_<NAME>_* environment variables. Disabled rows resolve to nil.
func (r *LLMRegistry) GetConfig(ctx context.Context, model string) (*config.ModelConfig, error) {
	row, ok, err := r.cached(ctx, model)
	if err != nil {
		return nil, err
	}
	if ok {
		if !row.Enabled || row.APIKey == "" {
			return nil, nil
		}
		return &config.ModelConfig{
			ModelName: row.ModelName,
			Provider:  row.Provider,
			APIKey:    row.APIKey,
			ModelID:   row.ModelID,
			Timeout:   time.Duration(row.TimeoutMs) * time.Millisecond,
			MaxTokens: row.MaxTokens,
		}, nil
	}

	env, err := config.ModelConfigFromEnv(model)
	if err != nil || !env.IsConfigured() {
		return nil, nil
	}
	return env, nil
}

// EnabledModels lists models with a usable database config.
func (r *LLMRegistry) EnabledModels(ctx context.Context) ([]string, error) {
	if _, _, err := r.cached(ctx, ""); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	var names []string
	for name, row := range r.cache {
		if row.Enabled && row.APIKey != "" {
			names = append(names, name)
		}
	}
	return names, nil
}

// List returns all rows for the admin surface, bypassing the cache.
func (r *LLMRegistry) List(ctx context.Context) ([]*ent.LLMConfig, error) {
	rows, err := r.client.LLMConfig.Query().
		Order(ent.Asc(llmconfig.FieldModelName)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list LLM configs: %w", err)
	}
	return rows, nil
}

// Get returns one row by model name.
func (r *LLMRegistry) Get(ctx context.Context, model string) (*ent.LLMConfig, error) {
	row, err := r.client.LLMConfig.Query().
		Where(llmconfig.ModelNameEQ(model)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, services.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get LLM config: %w", err)
	}
	return row, nil
}

// UpsertParams is the admin create/replace surface. Provider is never taken
// from the caller; the model table decides it.
type UpsertParams struct {
	APIKey    string
	ModelID   string
	TimeoutMS *int
	MaxTokens *int
	Enabled   *bool
}

func validateModelName(model string) (provider string, err error) {
	provider, ok := models.ModelProviders[model]
	if !ok {
		return "", services.NewValidationError("model_name",
			fmt.Sprintf("Invalid model name. Must be one of: %s", strings.Join(models.ValidModelNames(), ", ")))
	}
	return provider, nil
}

func validateBounds(timeoutMS, maxTokens int) error {
	if timeoutMS < 1000 || timeoutMS > 120000 {
		return services.NewValidationError("timeout_ms", "must be between 1000 and 120000")
	}
	if maxTokens < 100 || maxTokens > 8000 {
		return services.NewValidationError("max_tokens", "must be between 100 and 8000")
	}
	return nil
}

// Upsert creates or replaces a model's config and refreshes the cache.
func (r *LLMRegistry) Upsert(ctx context.Context, model string, p UpsertParams) (*ent.LLMConfig, error) {
	provider, err := validateModelName(model)
	if err != nil {
		return nil, err
	}
	if p.APIKey == "" {
		return nil, services.NewValidationError("api_key", "is required")
	}

	modelID := p.ModelID
	if modelID == "" {
		modelID = models.DefaultModelIDs[model]
	}
	timeoutMS := 30000
	if p.TimeoutMS != nil {
		timeoutMS = *p.TimeoutMS
	}
	maxTokens := 1000
	if p.MaxTokens != nil {
		maxTokens = *p.MaxTokens
	}
	if err := validateBounds(timeoutMS, maxTokens); err != nil {
		return nil, err
	}
	enabled := true
	if p.Enabled != nil {
		enabled = *p.Enabled
	}

	existing, err := r.client.LLMConfig.Query().
		Where(llmconfig.ModelNameEQ(model)).
		Only(ctx)
	switch {
	case err == nil:
		row, uerr := r.client.LLMConfig.UpdateOne(existing).
			SetProvider(provider).
			SetAPIKey(p.APIKey).
			SetModelID(modelID).
			SetTimeoutMs(timeoutMS).
			SetMaxTokens(maxTokens).
			SetEnabled(enabled).
			Save(ctx)
		if uerr != nil {
			return nil, fmt.Errorf("failed to update LLM config: %w", uerr)
		}
		_ = r.refresh(ctx)
		return row, nil
	case ent.IsNotFound(err):
		row, cerr := r.client.LLMConfig.Create().
			SetModelName(model).
			SetProvider(provider).
			SetAPIKey(p.APIKey).
			SetModelID(modelID).
			SetTimeoutMs(timeoutMS).
			SetMaxTokens(maxTokens).
			SetEnabled(enabled).
			Save(ctx)
		if cerr != nil {
			return nil, fmt.Errorf("failed to create LLM config: %w", cerr)
		}
		_ = r.refresh(ctx)
		return row, nil
	default:
		return nil, fmt.Errorf("failed to query LLM config: %w", err)
	}
}

// Patch applies a partial update and refreshes the cache.
func (r *LLMRegistry) Patch(ctx context.Context, model string, p UpsertParams) (*ent.LLMConfig, error) {
	if _, err := validateModelName(model); err != nil {
		return nil, err
	}
	existing, err := r.Get(ctx, model)
	if err != nil {
		return nil, err
	}

	update := r.client.LLMConfig.UpdateOne(existing)
	timeoutMS, maxTokens := existing.TimeoutMs, existing.MaxTokens
	if p.APIKey != "" {
		update = update.SetAPIKey(p.APIKey)
	}
	if p.ModelID != "" {
		update = update.SetModelID(p.ModelID)
	}
	if p.TimeoutMS != nil {
		timeoutMS = *p.TimeoutMS
		update = update.SetTimeoutMs(timeoutMS)
	}
	if p.MaxTokens != nil {
		maxTokens = *p.MaxTokens
		update = update.SetMaxTokens(maxTokens)
	}
	if err := validateBounds(timeoutMS, maxTokens); err != nil {
		return nil, err
	}
	if p.Enabled != nil {
		update = update.SetEnabled(*p.Enabled)
	}

	row, err := update.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to patch LLM config: %w", err)
	}
	_ = r.refresh(ctx)
	return row, nil
}

// Delete removes a model's config and refreshes the cache.
func (r *LLMRegistry) Delete(ctx context.Context, model string) error {
	existing, err := r.Get(ctx, model)
	if err != nil {
		return err
	}
	if err := r.client.LLMConfig.DeleteOne(existing).Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete LLM config: %w", err)
	}
	return r.refresh(ctx)
}

// SetEnabled toggles a model's config and refreshes the cache.
func (r *LLMRegistry) SetEnabled(ctx context.Context, model string, enabled bool) (*ent.LLMConfig, error) {
	existing, err := r.Get(ctx, model)
	if err != nil {
		return nil, err
	}
	row, err := r.client.LLMConfig.UpdateOne(existing).
		SetEnabled(enabled).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to toggle LLM config: %w", err)
	}
	_ = r.refresh(ctx)
	return row, nil
}

// KeyTestResult is the outcome of a live key validation.
type KeyTestResult struct {
	ModelName        string    `json:"model_name"`
	ValidationStatus string    `json:"validation_status"`
	LastValidatedAt  time.Time `json:"last_validated_at"`
}

// TestAPIKey runs a minimal live evaluation against the stored key and
// records the outcome on the row.
func (r *LLMRegistry) TestAPIKey(ctx context.Context, model string, probe KeyProbe) (*KeyTestResult, error) {
	row, err := r.Get(ctx, model)
	if err != nil {
		return nil, err
	}

	status := probe(ctx, config.ModelConfig{
		ModelName: row.ModelName,
		Provider:  row.Provider,
		APIKey:    row.APIKey,
		ModelID:   row.ModelID,
		Timeout:   time.Duration(row.TimeoutMs) * time.Millisecond,
		MaxTokens: row.MaxTokens,
	})

	validatedAt := time.Now().UTC()
	if err := r.client.LLMConfig.UpdateOne(row).
		SetValidationStatus(status).
		SetLastValidatedAt(validatedAt).
		Exec(ctx); err != nil {
		return nil, fmt.Errorf("failed to record validation result: %w", err)
	}
	_ = r.refresh(ctx)

	return &KeyTestResult{
		ModelName:        model,
		ValidationStatus: status,
		LastValidatedAt:  validatedAt,
	}, nil
}

// MaskAPIKey renders a key for read surfaces: **** plus the last four
// characters, or just **** when the key is that short.
func MaskAPIKey(key string) string {
	if len(key) <= 4 {
		return "****"
	}
	return "****" + key[len(key)-4:]
}
