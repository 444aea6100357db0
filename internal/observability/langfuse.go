package observability

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/Conceptual-Machines/rug-loom/internal/config"
	"github.com/Conceptual-Machines/rug-loom/internal/llm"
	langfuse "github.com/henomis/langfuse-go"
	"github.com/henomis/langfuse-go/model"
)

const (
	themeTraceName      = "theme.resolve"
	themeGenerationName = "rug_theme"

	levelWarning model.ObservationLevel = "WARNING"
	levelError   model.ObservationLevel = "ERROR"
)

// LangfuseClient traces theme model calls. A disabled client hands out no-op calls.
type LangfuseClient struct {
	client  *langfuse.Langfuse
	enabled bool
}

var globalClient *LangfuseClient

// InitializeLangfuse initializes the global Langfuse client
func InitializeLangfuse(ctx context.Context, cfg *config.Config) *LangfuseClient {
	if !cfg.LangfuseEnabled || cfg.LangfuseSecretKey == "" {
		log.Println("⚠️  Langfuse not configured (LANGFUSE_ENABLED=false or LANGFUSE_SECRET_KEY not set)")
		globalClient = &LangfuseClient{}
		return globalClient
	}

	// The SDK reads its host and key pair from the environment
	for key, value := range map[string]string{
		"LANGFUSE_HOST":       cfg.LangfuseHost,
		"LANGFUSE_PUBLIC_KEY": cfg.LangfusePublicKey,
		"LANGFUSE_SECRET_KEY": cfg.LangfuseSecretKey,
	} {
		if value != "" && os.Getenv(key) == "" {
			_ = os.Setenv(key, value)
		}
	}

	globalClient = &LangfuseClient{client: langfuse.New(ctx), enabled: true}
	log.Printf("✅ Langfuse initialized (host: %s)", cfg.LangfuseHost)
	return globalClient
}

// GetClient returns the global Langfuse client, disabled until InitializeLangfuse runs
func GetClient() *LangfuseClient {
	if globalClient == nil {
		return &LangfuseClient{}
	}
	return globalClient
}

// IsEnabled returns whether Langfuse is enabled
func (c *LangfuseClient) IsEnabled() bool {
	return c != nil && c.enabled && c.client != nil
}

// ThemeCall is one theme request: a trace holding a single generation.
type ThemeCall struct {
	client     *langfuse.Langfuse
	ctx        context.Context
	trace      *model.Trace
	generation *model.Generation
}

// StartThemeCall opens the trace and generation for a style
func (c *LangfuseClient) StartThemeCall(ctx context.Context, style, provider, modelName string) *ThemeCall {
	if !c.IsEnabled() {
		return &ThemeCall{}
	}

	trace, err := c.client.Trace(&model.Trace{
		Name:     themeTraceName,
		Input:    style,
		Metadata: map[string]interface{}{"provider": provider},
	})
	if err != nil {
		log.Printf("⚠️  Failed to create Langfuse trace: %v", err)
		return &ThemeCall{}
	}

	now := time.Now()
	gen, err := c.client.Generation(&model.Generation{
		TraceID:   trace.ID,
		Name:      themeGenerationName,
		Model:     modelName,
		StartTime: &now,
		Metadata:  map[string]interface{}{"style": style, "provider": provider},
	}, nil)
	if err != nil {
		log.Printf("⚠️  Failed to create Langfuse generation: %v", err)
		return &ThemeCall{client: c.client, ctx: ctx, trace: trace}
	}

	return &ThemeCall{client: c.client, ctx: ctx, trace: trace, generation: gen}
}

// Answered records the prompt, the raw answer, token usage and cost
func (t *ThemeCall) Answered(input []map[string]any, resp *llm.GenerationResponse) {
	if t.generation == nil || resp == nil {
		return
	}
	t.generation.Input = input
	t.generation.Output = resp.RawOutput
	t.generation.Usage = usageFor(t.generation.Model, resp.Usage)
}

// Failed marks the generation. A failed request is an error, an unusable answer a warning.
func (t *ThemeCall) Failed(err error, requestFailed bool) {
	if t.generation == nil || err == nil {
		return
	}
	t.generation.Level = levelWarning
	if requestFailed {
		t.generation.Level = levelError
	}
	t.generation.StatusMessage = err.Error()
}

// End closes the generation and flushes the trace
func (t *ThemeCall) End() {
	if t.client == nil {
		return
	}
	if t.generation != nil {
		now := time.Now()
		t.generation.EndTime = &now
		if _, err := t.client.GenerationEnd(t.generation); err != nil {
			log.Printf("⚠️  Failed to end Langfuse generation: %v", err)
		}
	}
	t.client.Flush(t.ctx)
}

func usageFor(modelName string, usage llm.Usage) model.Usage {
	return model.Usage{
		Unit:      model.ModelUsageUnitTokens,
		Input:     usage.InputTokens,
		Output:    usage.OutputTokens,
		Total:     usage.TotalTokens,
		TotalCost: CalculateCost(modelName, usage),
	}
}
