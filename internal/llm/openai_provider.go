package llm

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/getsentry/sentry-go"
	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/openai/openai-go/responses"
	"github.com/openai/openai-go/shared"
)

const (
	// Role constants
	userRole      = "user"
	developerRole = "developer"

	// Reasoning effort levels
	reasoningNone   = "none"
	reasoningLow    = "low"
	reasoningMedium = "medium"
	reasoningHigh   = "high"

	// Provider name
	providerNameOpenAI = "openai"

	// DefaultOpenAIModel is used when THEME_PROVIDER=openai and no model is set
	DefaultOpenAIModel = "gpt-5-mini"

	maxPreviewChars = 200
)

// modelsWithReasoning lists the models that accept a reasoning parameter.
// Models like gpt-4.1-mini reject it.
var modelsWithReasoning = map[string]bool{
	"gpt-5":        true,
	"gpt-5-mini":   true,
	"gpt-5-nano":   true,
	"gpt-5.1":      true,
	"gpt-5.1-mini": true,
	"gpt-5.2":      true,
	"gpt-5.2-mini": true,
}

// OpenAIProvider implements the Provider interface using OpenAI's Responses API
type OpenAIProvider struct {
	client *openai.Client
}

// NewOpenAIProvider creates a new OpenAI provider
func NewOpenAIProvider(apiKey string) *OpenAIProvider {
	client := openai.NewClient(option.WithAPIKey(apiKey))
	return &OpenAIProvider{
		client: &client,
	}
}

// Name returns the provider name
func (p *OpenAIProvider) Name() string {
	return providerNameOpenAI
}

// Generate sends one structured-output request through the Responses API
func (p *OpenAIProvider) Generate(ctx context.Context, request *GenerationRequest) (*GenerationResponse, error) {
	if request.Model == "" {
		request.Model = DefaultOpenAIModel
	}
	params := p.buildRequestParams(request)

	return traced(ctx, providerNameOpenAI, request.Model, func(tx *sentry.Span) (*GenerationResponse, error) {
		resp, err := roundTrip(tx, providerNameOpenAI, func(ctx context.Context) (*responses.Response, error) {
			return p.client.Responses.New(ctx, params)
		})
		if err != nil {
			return nil, err
		}

		span := tx.StartChild("process_response_json")
		defer span.Finish()
		return p.processResponse(resp, request.Model)
	})
}

// buildRequestParams converts GenerationRequest to OpenAI-specific ResponseNewParams
func (p *OpenAIProvider) buildRequestParams(request *GenerationRequest) responses.ResponseNewParams {
	inputItems := responses.ResponseInputParam{}

	for _, item := range request.InputArray {
		role, hasRole := item["role"].(string)
		content, hasContent := item["content"].(string)

		if !hasRole || !hasContent {
			log.Printf("⚠️  Skipping invalid input item (missing role or content): %v", item)
			continue
		}

		var roleEnum responses.EasyInputMessageRole
		switch role {
		case developerRole:
			roleEnum = responses.EasyInputMessageRoleDeveloper
		default:
			roleEnum = responses.EasyInputMessageRoleUser
		}

		inputItems = append(inputItems,
			responses.ResponseInputItemParamOfMessage(content, roleEnum),
		)
	}

	params := responses.ResponseNewParams{
		Model: request.Model,
		Input: responses.ResponseNewParamsInputUnion{
			OfInputItemList: inputItems,
		},
	}

	if request.SystemPrompt != "" {
		params.Instructions = openai.String(request.SystemPrompt)
	}

	if modelsWithReasoning[request.Model] {
		params.Reasoning = shared.ReasoningParam{
			Effort: reasoningEffort(request.ReasoningMode),
		}
	}

	if request.OutputSchema != nil {
		params.Text = responses.ResponseTextConfigParam{
			Format: responses.ResponseFormatTextConfigParamOfJSONSchema(
				request.OutputSchema.Name,
				request.OutputSchema.Schema,
			),
		}
		log.Printf("📋 JSON SCHEMA CONFIGURED: %s", request.OutputSchema.Name)
	}

	return params
}

// reasoningEffort maps a mode name to the SDK effort, defaulting to low
// so theme naming stays quick.
func reasoningEffort(mode string) shared.ReasoningEffort {
	switch mode {
	case reasoningNone:
		return shared.ReasoningEffort("none")
	case reasoningMedium:
		return responses.ReasoningEffortMedium
	case reasoningHigh:
		return responses.ReasoningEffortHigh
	case reasoningLow:
		return responses.ReasoningEffortLow
	default:
		return responses.ReasoningEffortLow
	}
}

// processResponse extracts JSON output from an OpenAI response
func (p *OpenAIProvider) processResponse(resp *responses.Response, model string) (*GenerationResponse, error) {
	textOutput := cleanTextOutput(resp.OutputText())
	log.Printf("📥 OPENAI JSON RESPONSE: output_length=%d, output_items=%d, tokens=%d",
		len(textOutput), len(resp.Output), resp.Usage.TotalTokens)

	if textOutput == "" {
		return nil, fmt.Errorf("openai response did not include any output text")
	}
	log.Printf("🔍 Output preview: %s", truncateString(textOutput, maxPreviewChars))
	log.Printf("📊 USAGE: input=%d, output=%d, reasoning=%d, total=%d",
		resp.Usage.InputTokens, resp.Usage.OutputTokens,
		resp.Usage.OutputTokensDetails.ReasoningTokens, resp.Usage.TotalTokens)

	return &GenerationResponse{
		RawOutput: textOutput,
		Model:     model,
		Usage: Usage{
			InputTokens:  int(resp.Usage.InputTokens),
			OutputTokens: int(resp.Usage.OutputTokens),
			TotalTokens:  int(resp.Usage.TotalTokens),
		},
	}, nil
}

// cleanTextOutput strips markdown code fences some models wrap JSON in
func cleanTextOutput(textOutput string) string {
	if textOutput == "" {
		return ""
	}

	cleaned := strings.TrimSpace(textOutput)
	cleaned = strings.TrimPrefix(cleaned, "```json")
	cleaned = strings.TrimPrefix(cleaned, "```")
	cleaned = strings.TrimSuffix(cleaned, "```")
	cleaned = strings.TrimSpace(cleaned)

	if cleaned != textOutput {
		log.Printf("🧹 Stripped markdown code blocks from output: %d -> %d chars", len(textOutput), len(cleaned))
	}

	return cleaned
}

// truncateString truncates a string to a maximum length
func truncateString(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}
