package config

import (
	"os"
	"strconv"
	"time"
)

const (
	defaultThemeTimeout   = 20 * time.Second
	defaultMaxDimension   = 160
	authModeGateway       = "gateway"
	environmentProduction = "production"
)

// Config holds the application configuration
// The service is stateless unless DATABASE_URL is set, in which case AI themes are cached in Postgres
type Config struct {
	// Environment
	Environment string
	Port        string

	// LLM API Keys
	OpenAIAPIKey string // OpenAI API key for GPT models
	GeminiAPIKey string // Google Gemini API key

	// Theme resolution
	ThemeProvider string        // "gemini" or "openai"; empty infers from ThemeModel (gpt-* is OpenAI, else Gemini)
	ThemeModel    string        // Model override; empty uses the provider default
	ThemeTimeout  time.Duration // Upper bound on one theme request

	// Theme cache (optional)
	DatabaseURL string

	// Grid limits
	MaxGridDimension int

	// Observability
	SentryDSN         string // Sentry DSN for error tracking
	LangfusePublicKey string // Langfuse public key
	LangfuseSecretKey string // Langfuse secret key
	LangfuseHost      string // Langfuse host URL (cloud or self-hosted)
	LangfuseEnabled   bool   // Feature flag for Langfuse

	// Auth mode
	// - "none": No auth (self-hosted, local dev)
	// - "gateway": Trust X-User-* headers from an upstream gateway
	AuthMode string
}

func Load() *Config {
	return &Config{
		Environment:       getEnv("ENVIRONMENT", "development"),
		Port:              getEnv("PORT", "8080"),
		OpenAIAPIKey:      getEnv("OPENAI_API_KEY", ""),
		GeminiAPIKey:      getEnv("GEMINI_API_KEY", ""),
		ThemeProvider:     getEnv("THEME_PROVIDER", ""),
		ThemeModel:        getEnv("THEME_MODEL", ""),
		ThemeTimeout:      getEnvDuration("THEME_TIMEOUT", defaultThemeTimeout),
		DatabaseURL:       getEnv("DATABASE_URL", ""),
		MaxGridDimension:  getEnvInt("MAX_GRID_DIMENSION", defaultMaxDimension),
		SentryDSN:         getEnv("SENTRY_DSN", ""),
		LangfusePublicKey: getEnv("LANGFUSE_PUBLIC_KEY", ""),
		LangfuseSecretKey: getEnv("LANGFUSE_SECRET_KEY", ""),
		LangfuseHost:      getEnv("LANGFUSE_HOST", "https://cloud.langfuse.com"),
		LangfuseEnabled:   getEnv("LANGFUSE_ENABLED", "false") == "true",
		AuthMode:          getEnv("AUTH_MODE", "none"), // Default to no auth for self-hosted
	}
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	n, err := strconv.Atoi(getEnv(key, ""))
	if err != nil || n <= 0 {
		return defaultValue
	}
	return n
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	d, err := time.ParseDuration(getEnv(key, ""))
	if err != nil || d <= 0 {
		return defaultValue
	}
	return d
}

// IsGatewayMode returns true if running behind an auth gateway
func (c *Config) IsGatewayMode() bool {
	return c.AuthMode == authModeGateway
}

// IsProduction reports whether production-only integrations should start
func (c *Config) IsProduction() bool {
	return c.Environment == environmentProduction
}

// HasDatabase reports whether the theme cache should use Postgres
func (c *Config) HasDatabase() bool {
	return c.DatabaseURL != ""
}
