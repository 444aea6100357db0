package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOpenAIProvider(t *testing.T) {
	provider := NewOpenAIProvider("test-api-key")
	require.NotNil(t, provider)
	assert.Equal(t, "openai", provider.Name())
	assert.NotNil(t, provider.client)
}

func TestOpenAIProvider_BuildRequestParams(t *testing.T) {
	provider := NewOpenAIProvider("test-key")

	tests := []struct {
		name    string
		request *GenerationRequest
		checks  func(t *testing.T, provider *OpenAIProvider, request *GenerationRequest)
	}{
		{
			name: "basic request with user message",
			request: &GenerationRequest{
				Model:        "gpt-5-mini",
				SystemPrompt: "test system prompt",
				InputArray:   UserMessage("test content"),
			},
			checks: func(t *testing.T, provider *OpenAIProvider, request *GenerationRequest) {
				t.Helper()
				params := provider.buildRequestParams(request)
				assert.Equal(t, "gpt-5-mini", params.Model)
				assert.Equal(t, "test system prompt", params.Instructions.Value)
				assert.Len(t, params.Input.OfInputItemList, 1)
			},
		},
		{
			name: "invalid item skipped",
			request: &GenerationRequest{
				Model: "gpt-4.1-mini",
				InputArray: []map[string]any{
					{"role": "developer", "content": "dev message"},
					{"role": "user"},
				},
			},
			checks: func(t *testing.T, provider *OpenAIProvider, request *GenerationRequest) {
				t.Helper()
				params := provider.buildRequestParams(request)
				assert.Len(t, params.Input.OfInputItemList, 1)
				assert.Empty(t, string(params.Reasoning.Effort))
			},
		},
		{
			name: "request with output schema",
			request: &GenerationRequest{
				Model:        "gpt-5-mini",
				InputArray:   UserMessage("test"),
				OutputSchema: RugThemeOutputSchema(),
			},
			checks: func(t *testing.T, provider *OpenAIProvider, request *GenerationRequest) {
				t.Helper()
				params := provider.buildRequestParams(request)
				require.NotNil(t, params.Text.Format.OfJSONSchema)
				assert.Equal(t, "rug_theme", params.Text.Format.OfJSONSchema.Name)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.checks(t, provider, tt.request)
		})
	}
}

func TestOpenAIProvider_ReasoningModeMapping(t *testing.T) {
	tests := []struct {
		mode     string
		expected string
	}{
		{"", "low"},
		{"low", "low"},
		{"medium", "medium"},
		{"high", "high"},
		{"none", "none"},
	}

	for _, tt := range tests {
		t.Run(tt.mode, func(t *testing.T) {
			assert.Equal(t, tt.expected, string(reasoningEffort(tt.mode)))
		})
	}
}

func TestCleanTextOutput(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{`{"a":1}`, `{"a":1}`},
		{"```json\n{\"a\":1}\n```", `{"a":1}`},
		{"```\n{\"a\":1}```", `{"a":1}`},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, cleanTextOutput(tt.in))
	}
}
