package llm

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/getsentry/sentry-go"
	"google.golang.org/genai"
)

const (
	providerNameGemini = "gemini"
	mimeTypeJSON       = "application/json"
	geminiUserRole     = "user"

	// DefaultGeminiModel is the model the loom asks for themes
	DefaultGeminiModel = "gemini-3-flash-preview"
)

// GeminiProvider implements the Provider interface using Google's Gemini API
type GeminiProvider struct {
	client *genai.Client
}

// NewGeminiProvider creates a new Gemini provider
func NewGeminiProvider(ctx context.Context, apiKey string) (*GeminiProvider, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("%w: gemini API key not set", ErrProviderNotConfigured)
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiProvider{
		client: client,
	}, nil
}

// Name returns the provider name
func (p *GeminiProvider) Name() string {
	return providerNameGemini
}

// Generate sends one request with the schema as the response schema
func (p *GeminiProvider) Generate(ctx context.Context, request *GenerationRequest) (*GenerationResponse, error) {
	model := request.Model
	if model == "" {
		model = DefaultGeminiModel
	}

	contents := p.buildGeminiContents(request.InputArray)
	if len(contents) == 0 {
		return nil, fmt.Errorf("gemini request has no usable input")
	}

	config := &genai.GenerateContentConfig{}
	if request.SystemPrompt != "" {
		config.SystemInstruction = &genai.Content{
			Parts: []*genai.Part{{Text: request.SystemPrompt}},
		}
	}
	if request.OutputSchema != nil {
		config.ResponseMIMEType = mimeTypeJSON
		config.ResponseSchema = p.convertSchemaToGemini(request.OutputSchema.Schema)
	}

	return traced(ctx, providerNameGemini, model, func(tx *sentry.Span) (*GenerationResponse, error) {
		result, err := roundTrip(tx, providerNameGemini, func(ctx context.Context) (*genai.GenerateContentResponse, error) {
			return p.client.Models.GenerateContent(ctx, model, contents, config)
		})
		if err != nil {
			return nil, err
		}
		return p.processGeminiResponse(result, model)
	})
}

// buildGeminiContents converts our input array to Gemini Content format
func (p *GeminiProvider) buildGeminiContents(inputArray []map[string]any) []*genai.Content {
	var contents []*genai.Content

	for _, item := range inputArray {
		_, hasRole := item["role"].(string)
		content, hasContent := item["content"].(string)

		if !hasRole || !hasContent {
			log.Printf("⚠️  Skipping invalid input item (missing role or content): %v", item)
			continue
		}

		// Gemini only distinguishes "user" and "model"; system/developer text goes as user
		contents = append(contents, &genai.Content{
			Role:  geminiUserRole,
			Parts: []*genai.Part{{Text: content}},
		})
	}

	return contents
}

// convertSchemaToGemini converts a JSON schema map to Gemini's schema format
func (p *GeminiProvider) convertSchemaToGemini(schema map[string]any) *genai.Schema {
	if schema == nil {
		return nil
	}

	out := &genai.Schema{}
	if t, ok := schema["type"].(string); ok {
		out.Type = geminiType(t)
	}
	if d, ok := schema["description"].(string); ok {
		out.Description = d
	}

	if props, ok := schema["properties"].(map[string]any); ok {
		out.Properties = make(map[string]*genai.Schema, len(props))
		for name, raw := range props {
			if child, ok := raw.(map[string]any); ok {
				out.Properties[name] = p.convertSchemaToGemini(child)
			}
		}
	}

	if items, ok := schema["items"].(map[string]any); ok {
		out.Items = p.convertSchemaToGemini(items)
	}

	switch req := schema["required"].(type) {
	case []string:
		out.Required = append([]string(nil), req...)
	case []any:
		for _, r := range req {
			if s, ok := r.(string); ok {
				out.Required = append(out.Required, s)
			}
		}
	}

	return out
}

func geminiType(t string) genai.Type {
	switch strings.ToLower(t) {
	case "object":
		return genai.TypeObject
	case "array":
		return genai.TypeArray
	case "integer":
		return genai.TypeInteger
	case "number":
		return genai.TypeNumber
	case "boolean":
		return genai.TypeBoolean
	default:
		return genai.TypeString
	}
}

// processGeminiResponse converts Gemini response to our GenerationResponse
func (p *GeminiProvider) processGeminiResponse(
	result *genai.GenerateContentResponse,
	model string,
) (*GenerationResponse, error) {
	if result == nil || len(result.Candidates) == 0 {
		return nil, fmt.Errorf("no candidates in Gemini response")
	}

	candidate := result.Candidates[0]
	if candidate.Content == nil || len(candidate.Content.Parts) == 0 {
		return nil, fmt.Errorf("no parts in Gemini response")
	}

	var text strings.Builder
	for _, part := range candidate.Content.Parts {
		text.WriteString(part.Text)
	}
	textOutput := strings.TrimSpace(text.String())
	log.Printf("📥 GEMINI RESPONSE: output_length=%d", len(textOutput))

	if textOutput == "" {
		return nil, fmt.Errorf("gemini response did not include any output text")
	}

	response := &GenerationResponse{
		RawOutput: textOutput,
		Model:     model,
	}

	if result.UsageMetadata != nil {
		response.Usage = Usage{
			InputTokens:  int(result.UsageMetadata.PromptTokenCount),
			OutputTokens: int(result.UsageMetadata.CandidatesTokenCount),
			TotalTokens:  int(result.UsageMetadata.TotalTokenCount),
		}
		log.Printf("📊 GEMINI USAGE: input=%d, output=%d, total=%d",
			response.Usage.InputTokens, response.Usage.OutputTokens, response.Usage.TotalTokens)
	}

	return response, nil
}
