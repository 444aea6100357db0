package main

import (
	"context"
	"log"
	"time"

	"github.com/Conceptual-Machines/rug-loom/internal/api"
	"github.com/Conceptual-Machines/rug-loom/internal/config"
	"github.com/Conceptual-Machines/rug-loom/internal/database"
	"github.com/Conceptual-Machines/rug-loom/internal/llm"
	"github.com/Conceptual-Machines/rug-loom/internal/metrics"
	"github.com/Conceptual-Machines/rug-loom/internal/observability"
	"github.com/Conceptual-Machines/rug-loom/internal/theme"
	"github.com/getsentry/sentry-go"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

const (
	sentryFlushTimeout    = 2 * time.Second
	environmentProduction = "production"
)

// releaseVersion is set via ldflags during build
var releaseVersion = "dev"

// GetVersion returns the current release version
func GetVersion() string {
	return releaseVersion
}

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	// Load configuration
	cfg := config.Load()
	ctx := context.Background()

	// Initialize Sentry
	if cfg.SentryDSN != "" {
		if err := sentry.Init(sentry.ClientOptions{
			Dsn:              cfg.SentryDSN,
			Environment:      cfg.Environment,
			Release:          "rug-loom@" + releaseVersion,
			EnableTracing:    true,
			TracesSampleRate: 1.0,
			EnableLogs:       true,
			Debug:            cfg.Environment != environmentProduction,
			BeforeSend: func(event *sentry.Event, _ *sentry.EventHint) *sentry.Event {
				// Filter out sensitive data
				if event.Request != nil {
					event.Request.Headers = filterSensitiveHeaders(event.Request.Headers)
				}
				return event
			},
		}); err != nil {
			log.Printf("Failed to initialize Sentry: %v", err)
		} else {
			log.Printf("✅ Sentry initialized (environment: %s, release: %s)", cfg.Environment, releaseVersion)
			// Flush on shutdown
			defer sentry.Flush(sentryFlushTimeout)
		}
	} else {
		log.Println("⚠️  Sentry not configured (SENTRY_DSN not set)")
	}

	langfuse := observability.InitializeLangfuse(ctx, cfg)

	// CloudWatch is only enabled in production
	cloud, err := metrics.NewClient(ctx, cfg.Environment)
	if err != nil {
		log.Printf("⚠️  CloudWatch metrics unavailable: %v", err)
		cloud = nil
	}
	recorder := metrics.NewRecorder(cloud)

	// Theme cache: Postgres when configured, otherwise in memory
	var store theme.Store = theme.NewMemoryStore()
	cacheName := "memory"
	if cfg.HasDatabase() {
		db, err := database.Connect(cfg.DatabaseURL)
		if err != nil {
			sentry.CaptureException(err)
			log.Fatal("Failed to connect to database:", err)
		}
		if err := database.Migrate(db); err != nil {
			sentry.CaptureException(err)
			log.Fatal("Failed to run migrations:", err)
		}
		store = theme.NewGormStore(db)
		cacheName = "postgres"
	}

	// Theme provider is optional; without one every theme is the fallback
	factory := llm.NewProviderFactory(cfg.OpenAIAPIKey, cfg.GeminiAPIKey)
	provider, err := factory.GetProvider(ctx, cfg.ThemeModel, cfg.ThemeProvider)
	model := cfg.ThemeModel
	if err != nil {
		log.Printf("⚠️  Theme provider unavailable, serving fallback themes: %v", err)
		provider = nil
	} else if model == "" {
		model = llm.DefaultModel(provider.Name())
	}

	resolver := theme.NewResolver(theme.Options{
		Provider: provider,
		Model:    model,
		Timeout:  cfg.ThemeTimeout,
		Store:    store,
		Recorder: recorder,
		Langfuse: langfuse,
	})
	log.Printf("🧶 Theme resolver ready (provider: %s, model: %s, cache: %s)", resolver.ProviderName(), model, cacheName)

	// Set Gin mode
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	// Initialize router
	router := api.SetupRouter(api.Dependencies{
		Config:    cfg,
		Themes:    resolver,
		Recorder:  recorder,
		CacheName: cacheName,
		Version:   GetVersion(),
	})

	log.Printf("🚀 Starting server on port %s", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		sentry.CaptureException(err)
		log.Fatal("Failed to start server:", err)
	}
}

func filterSensitiveHeaders(headers map[string]string) map[string]string {
	filtered := make(map[string]string)
	sensitiveKeys := map[string]bool{
		"authorization":  true,
		"cookie":         true,
		"x-api-key":      true,
		"x-goog-api-key": true,
	}

	for k, v := range headers {
		if sensitiveKeys[k] {
			filtered[k] = "[REDACTED]"
		} else {
			filtered[k] = v
		}
	}
	return filtered
}
