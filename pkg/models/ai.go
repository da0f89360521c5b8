package models

import "sort"

// ModelProviders maps a model name to the provider that serves it. The
// provider decides which adapter the factory constructs; operators cannot
// override it through the admin API.
var ModelProviders = map[string]string{
	"chatgpt":  "openai",
	"gemini":   "google",
	"claude":   "anthropic",
	"deepseek": "deepseek",
}

// DefaultModelIDs supplies the provider model identifier when an operator
// creates a config without one.
var DefaultModelIDs = map[string]string{
	"chatgpt":  "gpt-4o",
	"gemini":   "gemini-1.5-pro",
	"claude":   "claude-sonnet-4-20250514",
	"deepseek": "deepseek-chat",
}

// ValidModelNames returns the sorted set of recognized model names.
func ValidModelNames() []string {
	names := make([]string, 0, len(ModelProviders))
	for name := range ModelProviders {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
