package registry

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sigmapilot/lens/pkg/config"
	"github.com/sigmapilot/lens/pkg/services"
	"github.com/sigmapilot/lens/test/util"
)

func TestLLMRegistry_GetConfig(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	ctx := context.Background()

	r := NewLLMRegistry(client)
	require.NoError(t, r.Initialize(ctx))

	t.Run("no row and no env resolves to nil", func(t *testing.T) {
		cfg, err := r.GetConfig(ctx, "claude")
		require.NoError(t, err)
		assert.Nil(t, cfg)
	})

	t.Run("enabled row wins", func(t *testing.T) {
		_, err := r.Upsert(ctx, "chatgpt", UpsertParams{APIKey: "sk-test-1234"})
		require.NoError(t, err)

		cfg, err := r.GetConfig(ctx, "chatgpt")
		require.NoError(t, err)
		require.NotNil(t, cfg)
		assert.Equal(t, "openai", cfg.Provider)
		assert.Equal(t, "sk-test-1234", cfg.APIKey)
		assert.Equal(t, "gpt-4o", cfg.ModelID)
		assert.Equal(t, 30*time.Second, cfg.Timeout)
		assert.Equal(t, 1000, cfg.MaxTokens)
	})

	t.Run("disabled row resolves to nil even with env fallback set", func(t *testing.T) {
		t.Setenv("MODEL_CHATGPT_API_KEY", "sk-env-9999")

		_, err := r.SetEnabled(ctx, "chatgpt", false)
		require.NoError(t, err)

		cfg, err := r.GetConfig(ctx, "chatgpt")
		require.NoError(t, err)
		assert.Nil(t, cfg)
	})

	t.Run("env fallback applies only without a row", func(t *testing.T) {
		t.Setenv("MODEL_DEEPSEEK_API_KEY", "sk-env-deepseek")

		cfg, err := r.GetConfig(ctx, "deepseek")
		require.NoError(t, err)
		require.NotNil(t, cfg)
		assert.Equal(t, "deepseek", cfg.Provider)
		assert.Equal(t, "sk-env-deepseek", cfg.APIKey)
		assert.Equal(t, "deepseek-chat", cfg.ModelID)
	})
}

func TestLLMRegistry_WriteThrough(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	ctx := context.Background()

	r := NewLLMRegistry(client)
	require.NoError(t, r.Initialize(ctx))

	// A write must be visible on the next read without waiting out the TTL.
	_, err := r.Upsert(ctx, "gemini", UpsertParams{APIKey: "AIza-test"})
	require.NoError(t, err)

	cfg, err := r.GetConfig(ctx, "gemini")
	require.NoError(t, err)
	require.NotNil(t, cfg)
	assert.Equal(t, "AIza-test", cfg.APIKey)

	require.NoError(t, r.Delete(ctx, "gemini"))

	cfg, err = r.GetConfig(ctx, "gemini")
	require.NoError(t, err)
	assert.Nil(t, cfg)
}

func TestLLMRegistry_TTLExpiry(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	ctx := context.Background()

	r := NewLLMRegistry(client)
	r.ttl = 10 * time.Millisecond
	require.NoError(t, r.Initialize(ctx))

	// Write behind the cache's back.
	_, err := client.LLMConfig.Create().
		SetModelName("claude").
		SetProvider("anthropic").
		SetAPIKey("sk-ant-direct").
		SetModelID("claude-sonnet-4-20250514").
		Save(ctx)
	require.NoError(t, err)

	time.Sleep(20 * time.Millisecond)

	cfg, err := r.GetConfig(ctx, "claude")
	require.NoError(t, err)
	require.NotNil(t, cfg)
	assert.Equal(t, "sk-ant-direct", cfg.APIKey)
}

func TestLLMRegistry_Validation(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	ctx := context.Background()

	r := NewLLMRegistry(client)
	require.NoError(t, r.Initialize(ctx))

	_, err := r.Upsert(ctx, "gpt5", UpsertParams{APIKey: "sk"})
	assert.True(t, services.IsValidationError(err))
	assert.Contains(t, err.Error(), "Invalid model name. Must be one of: chatgpt, claude, deepseek, gemini")

	_, err = r.Upsert(ctx, "chatgpt", UpsertParams{})
	assert.True(t, services.IsValidationError(err))

	tooLow := 500
	_, err = r.Upsert(ctx, "chatgpt", UpsertParams{APIKey: "sk", TimeoutMS: &tooLow})
	assert.True(t, services.IsValidationError(err))

	tooHigh := 9000
	_, err = r.Upsert(ctx, "chatgpt", UpsertParams{APIKey: "sk", MaxTokens: &tooHigh})
	assert.True(t, services.IsValidationError(err))
}

func TestLLMRegistry_TestAPIKey(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	ctx := context.Background()

	r := NewLLMRegistry(client)
	require.NoError(t, r.Initialize(ctx))

	_, err := r.Upsert(ctx, "chatgpt", UpsertParams{APIKey: "sk-bad"})
	require.NoError(t, err)

	var probed config.ModelConfig
	result, err := r.TestAPIKey(ctx, "chatgpt", func(ctx context.Context, cfg config.ModelConfig) string {
		probed = cfg
		return "invalid_key"
	})
	require.NoError(t, err)
	assert.Equal(t, "invalid_key", result.ValidationStatus)
	assert.Equal(t, "sk-bad", probed.APIKey)
	assert.Equal(t, "openai", probed.Provider)

	row, err := r.Get(ctx, "chatgpt")
	require.NoError(t, err)
	assert.Equal(t, "invalid_key", row.ValidationStatus)
	require.NotNil(t, row.LastValidatedAt)

	_, err = r.TestAPIKey(ctx, "claude", func(ctx context.Context, cfg config.ModelConfig) string {
		return "ok"
	})
	assert.ErrorIs(t, err, services.ErrNotFound)
}

func TestMaskAPIKey(t *testing.T) {
	assert.Equal(t, "****5678", MaskAPIKey("sk-12345678"))
	assert.Equal(t, "****", MaskAPIKey("abcd"))
	assert.Equal(t, "****", MaskAPIKey(""))
}

func TestPromptRegistry_Seeding(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	ctx := context.Background()

	dir := t.TempDir()
	writePrompt(t, dir, "core_decision_v1.md", "Decide.\n{enriched_event}\n{constraints}")
	writePrompt(t, dir, "chatgpt_wrapper_v1.md", "You are chatgpt.\n{core_prompt}")
	writePrompt(t, dir, "notes.txt", "ignored")

	r := NewPromptRegistry(client)
	require.NoError(t, r.Initialize(ctx, dir))

	core := r.Active(ctx, "core_decision")
	require.NotNil(t, core)
	assert.Equal(t, "v1", core.Version)
	assert.Equal(t, "core", string(core.PromptType))
	assert.Len(t, core.ContentHash, 64)

	wrapper := r.Active(ctx, "chatgpt_wrapper")
	require.NotNil(t, wrapper)
	assert.Equal(t, "chatgpt", wrapper.ModelName)
	assert.Equal(t, "wrapper", string(wrapper.PromptType))

	// A second Initialize against a populated table must not reseed.
	r2 := NewPromptRegistry(client)
	require.NoError(t, r2.Initialize(ctx, dir))
	n, err := client.Prompt.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestPromptRegistry_CreateVersionConflict(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	ctx := context.Background()

	r := NewPromptRegistry(client)
	require.NoError(t, r.Initialize(ctx, ""))

	_, err := r.CreateVersion(ctx, CreateVersionParams{
		Name:       "core_decision",
		Version:    "v2",
		PromptType: PromptTypeCore,
		Content:    "Decide better.",
	})
	require.NoError(t, err)

	_, err = r.CreateVersion(ctx, CreateVersionParams{
		Name:       "core_decision",
		Version:    "v2",
		PromptType: PromptTypeCore,
		Content:    "Decide differently.",
	})
	assert.ErrorIs(t, err, services.ErrAlreadyExists)
}

func TestPromptRegistry_ActivePrefersNewest(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	ctx := context.Background()

	r := NewPromptRegistry(client)
	require.NoError(t, r.Initialize(ctx, ""))

	v1, err := r.CreateVersion(ctx, CreateVersionParams{
		Name: "core_decision", Version: "v1", PromptType: PromptTypeCore, Content: "old",
	})
	require.NoError(t, err)
	_, err = r.CreateVersion(ctx, CreateVersionParams{
		Name: "core_decision", Version: "v2", PromptType: PromptTypeCore, Content: "new",
	})
	require.NoError(t, err)

	active := r.Active(ctx, "core_decision")
	require.NotNil(t, active)
	assert.Equal(t, "v2", active.Version)

	// Deactivating v2 falls back to v1.
	v2 := active
	_, err = r.SetActive(ctx, v2.ID, false)
	require.NoError(t, err)

	active = r.Active(ctx, "core_decision")
	require.NotNil(t, active)
	assert.Equal(t, v1.ID, active.ID)
}

func TestPromptRegistry_RenderDeterminism(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	ctx := context.Background()

	dir := t.TempDir()
	writePrompt(t, dir, "core_decision_v1.md", "Event:\n{enriched_event}\nConstraints:\n{constraints}")
	writePrompt(t, dir, "claude_wrapper_v2.md", "Claude frame.\n{core_prompt}\nRespond with JSON only.")

	r := NewPromptRegistry(client)
	require.NoError(t, r.Initialize(ctx, dir))

	enriched := map[string]interface{}{"symbol": "BTC", "event_type": "OPEN_SIGNAL"}
	constraints := map[string]interface{}{"max_size_pct": 20}

	first, err := r.RenderForModel(ctx, "claude", enriched, constraints)
	require.NoError(t, err)
	second, err := r.RenderForModel(ctx, "claude", enriched, constraints)
	require.NoError(t, err)

	assert.Equal(t, first.Text, second.Text)
	assert.Equal(t, first.Hash, second.Hash)
	assert.Equal(t, "claude_v2_core_v1", first.Version)
	assert.Len(t, first.Hash, 64)

	assert.Contains(t, first.Text, "Claude frame.")
	assert.Contains(t, first.Text, `"symbol": "BTC"`)
	assert.Contains(t, first.Text, `"max_size_pct": 20`)
	assert.NotContains(t, first.Text, "{core_prompt}")
	assert.NotContains(t, first.Text, "{enriched_event}")
	assert.NotContains(t, first.Text, "{constraints}")
}

func TestPromptRegistry_RenderMissingWrapper(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	ctx := context.Background()

	r := NewPromptRegistry(client)
	require.NoError(t, r.Initialize(ctx, ""))

	_, err := r.CreateVersion(ctx, CreateVersionParams{
		Name: "core_decision", Version: "v1", PromptType: PromptTypeCore, Content: "core",
	})
	require.NoError(t, err)

	_, err = r.RenderForModel(ctx, "gemini", nil, nil)
	assert.ErrorContains(t, err, "no active wrapper prompt for model gemini")
}

func writePrompt(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}
