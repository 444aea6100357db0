package config

import (
	"context"
	"testing"
	"time"

	"github.com/Conceptual-Machines/rug-loom/internal/llm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{
		"ENVIRONMENT", "PORT", "THEME_PROVIDER", "THEME_MODEL", "THEME_TIMEOUT",
		"DATABASE_URL", "MAX_GRID_DIMENSION", "AUTH_MODE", "LANGFUSE_ENABLED",
	} {
		t.Setenv(key, "")
	}

	cfg := Load()
	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, "8080", cfg.Port)
	assert.Empty(t, cfg.ThemeProvider)
	assert.Empty(t, cfg.ThemeModel)
	assert.Equal(t, 20*time.Second, cfg.ThemeTimeout)
	assert.Equal(t, 160, cfg.MaxGridDimension)
	assert.False(t, cfg.LangfuseEnabled)
	assert.False(t, cfg.IsGatewayMode())
	assert.False(t, cfg.IsProduction())
	assert.False(t, cfg.HasDatabase())
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("ENVIRONMENT", "production")
	t.Setenv("THEME_PROVIDER", "openai")
	t.Setenv("THEME_MODEL", "gpt-5-mini")
	t.Setenv("THEME_TIMEOUT", "5s")
	t.Setenv("DATABASE_URL", "postgres://localhost/rugs")
	t.Setenv("MAX_GRID_DIMENSION", "120")
	t.Setenv("AUTH_MODE", "gateway")
	t.Setenv("LANGFUSE_ENABLED", "true")

	cfg := Load()
	assert.Equal(t, "openai", cfg.ThemeProvider)
	assert.Equal(t, "gpt-5-mini", cfg.ThemeModel)
	assert.Equal(t, 5*time.Second, cfg.ThemeTimeout)
	assert.Equal(t, 120, cfg.MaxGridDimension)
	assert.True(t, cfg.IsGatewayMode())
	assert.True(t, cfg.IsProduction())
	assert.True(t, cfg.HasDatabase())
	assert.True(t, cfg.LangfuseEnabled)
}

func TestLoad_InvalidNumbersFallBack(t *testing.T) {
	tests := []struct {
		name    string
		timeout string
		maxDim  string
	}{
		{"garbage", "soon", "wide"},
		{"negative", "-3s", "-1"},
		{"zero", "0s", "0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("THEME_TIMEOUT", tt.timeout)
			t.Setenv("MAX_GRID_DIMENSION", tt.maxDim)
			cfg := Load()
			assert.Equal(t, defaultThemeTimeout, cfg.ThemeTimeout)
			assert.Equal(t, defaultMaxDimension, cfg.MaxGridDimension)
		})
	}
}

func TestLoad_ProviderInferredFromModel(t *testing.T) {
	tests := []struct {
		name      string
		provider  string
		model     string
		openaiKey string
		geminiKey string
		want      string
	}{
		{name: "gpt model without provider", model: "gpt-4o-mini", openaiKey: "sk-test", want: "openai"},
		{name: "gpt model with both keys", model: "gpt-4o-mini", openaiKey: "sk-test", geminiKey: "g-test", want: "openai"},
		{name: "explicit provider wins", provider: "openai", model: "", openaiKey: "sk-test", geminiKey: "g-test", want: "openai"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("THEME_PROVIDER", tt.provider)
			t.Setenv("THEME_MODEL", tt.model)
			t.Setenv("OPENAI_API_KEY", tt.openaiKey)
			t.Setenv("GEMINI_API_KEY", tt.geminiKey)

			cfg := Load()
			provider, err := llm.NewProviderFactory(cfg.OpenAIAPIKey, cfg.GeminiAPIKey).
				GetProvider(context.Background(), cfg.ThemeModel, cfg.ThemeProvider)
			require.NoError(t, err)
			assert.Equal(t, tt.want, provider.Name())
		})
	}
}
