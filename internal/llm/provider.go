package llm

import (
	"context"
	"errors"
)

// ErrProviderNotConfigured is returned when a provider is requested without an API key.
var ErrProviderNotConfigured = errors.New("llm provider not configured")

// Provider defines the interface for LLM providers
// All providers MUST support structured output (JSON Schema) so themes parse reliably
type Provider interface {
	// Generate runs a single structured-output request
	Generate(ctx context.Context, request *GenerationRequest) (*GenerationResponse, error)

	// Name returns the provider name (e.g., "openai", "gemini")
	Name() string
}

// GenerationRequest contains all parameters needed for generation
type GenerationRequest struct {
	Model        string
	InputArray   []map[string]any
	SystemPrompt string
	// ReasoningMode is honoured by reasoning-capable OpenAI models only
	ReasoningMode string
	// Structured output schema - REQUIRED for reliable JSON parsing
	OutputSchema *OutputSchema
}

// OutputSchema defines the expected JSON output structure
type OutputSchema struct {
	Name        string
	Description string
	Schema      map[string]any // JSON Schema object
}

// Usage is the provider-neutral token accounting for one call
type Usage struct {
	InputTokens  int `json:"input_tokens"`
	OutputTokens int `json:"output_tokens"`
	TotalTokens  int `json:"total_tokens"`
}

// AsMap returns the usage in the shape the observability layer consumes
func (u Usage) AsMap() map[string]interface{} {
	return map[string]interface{}{
		"input_tokens":  u.InputTokens,
		"output_tokens": u.OutputTokens,
		"total_tokens":  u.TotalTokens,
	}
}

// GenerationResponse contains the result from the LLM
type GenerationResponse struct {
	RawOutput string `json:"-"` // Raw JSON text output
	Model     string `json:"model"`
	Usage     Usage  `json:"usage"`
}

// UserMessage builds a single-entry input array
func UserMessage(content string) []map[string]any {
	return []map[string]any{
		{"role": userRole, "content": content},
	}
}
