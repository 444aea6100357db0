package llm

import (
	"context"
	"fmt"
	"strings"
)

// ProviderFactory creates providers based on model name or explicit provider choice
type ProviderFactory struct {
	openaiAPIKey string
	geminiAPIKey string
}

// NewProviderFactory creates a new provider factory
func NewProviderFactory(openaiAPIKey, geminiAPIKey string) *ProviderFactory {
	return &ProviderFactory{
		openaiAPIKey: openaiAPIKey,
		geminiAPIKey: geminiAPIKey,
	}
}

// GetProvider returns the appropriate provider for the given model/provider name
func (f *ProviderFactory) GetProvider(ctx context.Context, model, providerName string) (Provider, error) {
	// If provider is explicitly specified, use that
	if providerName != "" {
		return f.getProviderByName(ctx, providerName)
	}

	// Otherwise, infer from model name
	return f.getProviderByModel(ctx, model)
}

// DefaultModel returns the model a provider uses when none is configured
func DefaultModel(providerName string) string {
	if strings.EqualFold(providerName, providerNameOpenAI) {
		return DefaultOpenAIModel
	}
	return DefaultGeminiModel
}

// getProviderByName creates a provider by explicit name
func (f *ProviderFactory) getProviderByName(ctx context.Context, providerName string) (Provider, error) {
	switch strings.ToLower(providerName) {
	case providerNameOpenAI:
		return f.openai()
	case providerNameGemini:
		return f.gemini(ctx)
	default:
		return nil, fmt.Errorf("unknown provider: %s (allowed: gemini, openai)", providerName)
	}
}

// getProviderByModel infers provider from model name
func (f *ProviderFactory) getProviderByModel(ctx context.Context, model string) (Provider, error) {
	// GPT models use OpenAI
	if strings.HasPrefix(strings.ToLower(model), "gpt-") {
		return f.openai()
	}

	// Gemini is the default theme provider
	return f.gemini(ctx)
}

func (f *ProviderFactory) openai() (Provider, error) {
	if f.openaiAPIKey == "" {
		return nil, fmt.Errorf("%w: openai API key not set", ErrProviderNotConfigured)
	}
	return NewOpenAIProvider(f.openaiAPIKey), nil
}

func (f *ProviderFactory) gemini(ctx context.Context) (Provider, error) {
	return NewGeminiProvider(ctx, f.geminiAPIKey)
}
