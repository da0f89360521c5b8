package registry

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/sigmapilot/lens/ent"
	"github.com/sigmapilot/lens/ent/prompt"
	"github.com/sigmapilot/lens/pkg/models"
	"github.com/sigmapilot/lens/pkg/services"
)

// PromptType values stored in the prompts table.
const (
	PromptTypeCore    = "core"
	PromptTypeWrapper = "wrapper"
)

// coreName is the shared decision prompt every wrapper embeds.
const coreName = "core_decision"

// PromptRegistry caches versioned prompts and owns their admin mutations.
// Rendering resolves the active wrapper for a model plus the active core.
type PromptRegistry struct {
	client *ent.Client
	ttl    time.Duration

	mu        sync.RWMutex
	byKey     map[string]*ent.Prompt // "name:version"
	active    map[string]*ent.Prompt // name -> newest active row
	fetchedAt time.Time
}

// NewPromptRegistry creates the registry. Call Initialize before serving.
func NewPromptRegistry(client *ent.Client) *PromptRegistry {
	return &PromptRegistry{
		client: client,
		ttl:    cacheTTL,
		byKey:  map[string]*ent.Prompt{},
		active: map[string]*ent.Prompt{},
	}
}

// Initialize warms the cache, seeding the table from dir first when it is
// empty. dir may be "" to skip seeding.
func (r *PromptRegistry) Initialize(ctx context.Context, dir string) error {
	n, err := r.client.Prompt.Query().Count(ctx)
	if err != nil {
		return fmt.Errorf("failed to count prompts: %w", err)
	}
	if n == 0 && dir != "" {
		seeded, err := r.seed(ctx, dir)
		if err != nil {
			return err
		}
		slog.Info("Prompt table seeded", "dir", dir, "prompts", seeded)
	}
	if err := r.refresh(ctx); err != nil {
		return err
	}
	r.mu.RLock()
	total := len(r.byKey)
	r.mu.RUnlock()
	slog.Info("Prompt registry initialized", "prompts", total)
	return nil
}

// seed loads markdown files from dir. core_decision_<v>.md becomes a core
// prompt; <model>_wrapper_<v>.md becomes a wrapper for that model. Other
// files are skipped.
func (r *PromptRegistry) seed(ctx context.Context, dir string) (int, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return 0, fmt.Errorf("failed to read prompts dir %s: %w", dir, err)
	}

	seeded := 0
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".md") {
			continue
		}
		base := strings.TrimSuffix(entry.Name(), ".md")

		var name, version, promptType, modelName string
		switch {
		case strings.HasPrefix(base, coreName+"_"):
			name = coreName
			version = strings.TrimPrefix(base, coreName+"_")
			promptType = PromptTypeCore
		case strings.Contains(base, "_wrapper_"):
			parts := strings.SplitN(base, "_wrapper_", 2)
			modelName = parts[0]
			version = parts[1]
			name = modelName + "_wrapper"
			promptType = PromptTypeWrapper
		default:
			slog.Warn("Skipping unrecognized prompt file", "file", entry.Name())
			continue
		}

		content, err := os.ReadFile(filepath.Join(dir, entry.Name()))
		if err != nil {
			return seeded, fmt.Errorf("failed to read prompt file %s: %w", entry.Name(), err)
		}

		create := r.client.Prompt.Create().
			SetName(name).
			SetVersion(version).
			SetPromptType(prompt.PromptType(promptType)).
			SetContent(string(content)).
			SetContentHash(hashContent(string(content))).
			SetIsActive(true).
			SetCreatedBy("seed")
		if modelName != "" {
			create = create.SetModelName(modelName)
		}
		if err := create.Exec(ctx); err != nil {
			return seeded, fmt.Errorf("failed to seed prompt %s %s: %w", name, version, err)
		}
		seeded++
	}
	return seeded, nil
}

func (r *PromptRegistry) refresh(ctx context.Context) error {
	rows, err := r.client.Prompt.Query().
		Order(ent.Asc(prompt.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return fmt.Errorf("failed to refresh prompt cache: %w", err)
	}

	byKey := make(map[string]*ent.Prompt, len(rows))
	active := map[string]*ent.Prompt{}
	for _, row := range rows {
		byKey[row.Name+":"+row.Version] = row
		// Ascending created_at, so the newest active version wins.
		if row.IsActive {
			active[row.Name] = row
		}
	}

	r.mu.Lock()
	r.byKey = byKey
	r.active = active
	r.fetchedAt = time.Now()
	r.mu.Unlock()
	return nil
}

func (r *PromptRegistry) ensureFresh(ctx context.Context) {
	r.mu.RLock()
	valid := time.Since(r.fetchedAt) < r.ttl
	r.mu.RUnlock()
	if valid {
		return
	}
	if err := r.refresh(ctx); err != nil {
		slog.Error("Prompt cache refresh failed, serving stale", "error", err)
	}
}

// Active returns the newest active version of a prompt by name, or nil.
func (r *PromptRegistry) Active(ctx context.Context, name string) *ent.Prompt {
	r.ensureFresh(ctx)
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.active[name]
}

// PromptListFilter narrows List.
type PromptListFilter struct {
	Name       string
	PromptType string
	ModelName  string
	IsActive   *bool
}

// List returns prompt rows for the admin surface, bypassing the cache.
func (r *PromptRegistry) List(ctx context.Context, f PromptListFilter) ([]*ent.Prompt, error) {
	q := r.client.Prompt.Query()
	if f.Name != "" {
		q = q.Where(prompt.NameEQ(f.Name))
	}
	if f.PromptType != "" {
		q = q.Where(prompt.PromptTypeEQ(prompt.PromptType(f.PromptType)))
	}
	if f.ModelName != "" {
		q = q.Where(prompt.ModelNameEQ(f.ModelName))
	}
	if f.IsActive != nil {
		q = q.Where(prompt.IsActiveEQ(*f.IsActive))
	}
	rows, err := q.
		Order(ent.Asc(prompt.FieldName), ent.Desc(prompt.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list prompts: %w", err)
	}
	return rows, nil
}

// Get returns one prompt row by id.
func (r *PromptRegistry) Get(ctx context.Context, id uuid.UUID) (*ent.Prompt, error) {
	row, err := r.client.Prompt.Query().
		Where(prompt.IDEQ(id)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, services.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get prompt: %w", err)
	}
	return row, nil
}

// CreateVersionParams is the admin create surface.
type CreateVersionParams struct {
	Name        string
	Version     string
	PromptType  string
	ModelName   string
	Content     string
	Description string
	CreatedBy   string
}

// CreateVersion stores a new prompt version. A duplicate (name, version)
// pair is a conflict.
func (r *PromptRegistry) CreateVersion(ctx context.Context, p CreateVersionParams) (*ent.Prompt, error) {
	if p.Name == "" {
		return nil, services.NewValidationError("name", "is required")
	}
	if p.Version == "" {
		return nil, services.NewValidationError("version", "is required")
	}
	if p.PromptType != PromptTypeCore && p.PromptType != PromptTypeWrapper {
		return nil, services.NewValidationError("prompt_type", "must be one of: core, wrapper")
	}
	if p.PromptType == PromptTypeWrapper {
		if _, ok := models.ModelProviders[p.ModelName]; !ok {
			return nil, services.NewValidationError("model_name",
				fmt.Sprintf("Invalid model name. Must be one of: %s", strings.Join(models.ValidModelNames(), ", ")))
		}
	}
	if p.Content == "" {
		return nil, services.NewValidationError("content", "is required")
	}

	create := r.client.Prompt.Create().
		SetName(p.Name).
		SetVersion(p.Version).
		SetPromptType(prompt.PromptType(p.PromptType)).
		SetContent(p.Content).
		SetContentHash(hashContent(p.Content)).
		SetIsActive(true)
	if p.ModelName != "" {
		create = create.SetModelName(p.ModelName)
	}
	if p.Description != "" {
		create = create.SetDescription(p.Description)
	}
	if p.CreatedBy != "" {
		create = create.SetCreatedBy(p.CreatedBy)
	}

	row, err := create.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, fmt.Errorf("prompt %s version %s: %w", p.Name, p.Version, services.ErrAlreadyExists)
		}
		return nil, fmt.Errorf("failed to create prompt: %w", err)
	}
	_ = r.refresh(ctx)
	return row, nil
}

// SetActive toggles a prompt version and refreshes the cache.
func (r *PromptRegistry) SetActive(ctx context.Context, id uuid.UUID, active bool) (*ent.Prompt, error) {
	existing, err := r.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	row, err := r.client.Prompt.UpdateOne(existing).
		SetIsActive(active).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to toggle prompt: %w", err)
	}
	_ = r.refresh(ctx)
	return row, nil
}

// RenderedPrompt is a fully substituted prompt ready for an adapter, plus
// the provenance fields recorded on the decision row.
type RenderedPrompt struct {
	Text    string
	Version string
	Hash    string
}

// RenderForModel builds the prompt for one model: the active core body with
// the enriched payload and constraints substituted in, framed by the model's
// active wrapper. Rendering is deterministic: fixed inputs give byte-equal
// text and equal hashes.
func (r *PromptRegistry) RenderForModel(ctx context.Context, model string, enriched, constraints map[string]interface{}) (*RenderedPrompt, error) {
	core := r.Active(ctx, coreName)
	if core == nil {
		return nil, fmt.Errorf("no active %s prompt", coreName)
	}
	wrapper := r.Active(ctx, model+"_wrapper")
	if wrapper == nil {
		return nil, fmt.Errorf("no active wrapper prompt for model %s", model)
	}

	enrichedJSON, err := json.MarshalIndent(enriched, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode enriched payload: %w", err)
	}
	constraintsJSON, err := json.MarshalIndent(constraints, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode constraints: %w", err)
	}

	renderedCore := strings.ReplaceAll(core.Content, "{enriched_event}", string(enrichedJSON))
	renderedCore = strings.ReplaceAll(renderedCore, "{constraints}", string(constraintsJSON))
	text := strings.ReplaceAll(wrapper.Content, "{core_prompt}", renderedCore)

	return &RenderedPrompt{
		Text:    text,
		Version: fmt.Sprintf("%s_%s_core_%s", model, versionOr(wrapper.Version), versionOr(core.Version)),
		Hash:    hashContent(wrapper.Content + core.Content),
	}, nil
}

func versionOr(v string) string {
	if v == "" {
		return "v1"
	}
	return v
}

func hashContent(content string) string {
	sum := sha256.Sum256([]byte(content))
	return hex.EncodeToString(sum[:])
}
