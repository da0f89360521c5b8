package api

// LLMConfigRequest is the body for PUT/PATCH /api/v1/llm-configs/:model.
// Provider is never taken from the caller; the model table decides it.
type LLMConfigRequest struct {
	APIKey    string `json:"api_key"`
	ModelID   string `json:"model_id"`
	TimeoutMS *int   `json:"timeout_ms"`
	MaxTokens *int   `json:"max_tokens"`
	Enabled   *bool  `json:"enabled"`
}

// CreatePromptRequest is the body for PUT /api/v1/prompts.
type CreatePromptRequest struct {
	Name        string `json:"name"`
	Version     string `json:"version"`
	PromptType  string `json:"prompt_type"`
	ModelName   string `json:"model_name"`
	Content     string `json:"content"`
	Description string `json:"description"`
}

// ResolveDLQRequest is the body for POST /api/v1/dlq/:id/resolve.
type ResolveDLQRequest struct {
	ResolutionNote string `json:"resolution_note"`
}
