package theme

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/Conceptual-Machines/rug-loom/internal/llm"
	"github.com/Conceptual-Machines/rug-loom/internal/logger"
	"github.com/Conceptual-Machines/rug-loom/internal/observability"
	"github.com/Conceptual-Machines/rug-loom/internal/prompt"
	"github.com/getsentry/sentry-go"
)

const (
	defaultTimeout   = 20 * time.Second
	providerNameNone = "none"
)

// Recorder receives theme outcome metrics
type Recorder interface {
	RecordThemeResolution(ctx context.Context, provider, source string, duration time.Duration)
	RecordTokenUsage(ctx context.Context, model string, inputTokens, outputTokens, totalTokens int)
}

// Options configures a Resolver. Every field is optional.
type Options struct {
	Provider llm.Provider // nil always serves the fallback theme
	Model    string
	Timeout  time.Duration
	Store    Store
	Recorder Recorder
	Langfuse *observability.LangfuseClient
}

// Resolver turns style descriptions into themes. It never fails: any error
// along the way is logged and the fallback theme is returned.
type Resolver struct {
	provider llm.Provider
	model    string
	timeout  time.Duration
	store    Store
	recorder Recorder
	langfuse *observability.LangfuseClient
	prompts  *prompt.Builder

	mu     sync.Mutex
	seq    map[string]uint64
	latest map[string]Theme
}

// NewResolver creates a theme resolver
func NewResolver(opts Options) *Resolver {
	if opts.Timeout <= 0 {
		opts.Timeout = defaultTimeout
	}
	if opts.Langfuse == nil {
		opts.Langfuse = observability.GetClient()
	}
	return &Resolver{
		provider: opts.Provider,
		model:    opts.Model,
		timeout:  opts.Timeout,
		store:    opts.Store,
		recorder: opts.Recorder,
		langfuse: opts.Langfuse,
		prompts:  prompt.NewPromptBuilder(),
		seq:      make(map[string]uint64),
		latest:   make(map[string]Theme),
	}
}

// ProviderName reports the configured provider, or "none"
func (r *Resolver) ProviderName() string {
	if r.provider == nil {
		return providerNameNone
	}
	return r.provider.Name()
}

// Model reports the configured model
func (r *Resolver) Model() string {
	return r.model
}

// Resolve returns a theme for style. Source tells whether it came from the
// model, the cache or the fallback.
func (r *Resolver) Resolve(ctx context.Context, style string) Theme {
	start := time.Now()

	span := sentry.StartSpan(ctx, "theme.resolve")
	span.Description = style
	defer span.Finish()
	ctx = span.Context()

	key := NormalizeKey(style)
	t, usage := r.resolve(ctx, key, style)

	span.SetTag("source", string(t.Source))
	span.SetTag("provider", r.ProviderName())

	duration := time.Since(start)
	fields := logger.Fields{
		"style":      style,
		"theme_name": t.Name,
	}
	if usage.TotalTokens > 0 {
		fields["cost"] = observability.FormatCost(observability.CalculateCost(r.model, usage))
	}
	logger.LogThemeResolution(ctx, r.ProviderName(), r.model, string(t.Source), duration, usage.AsMap(), fields)
	if r.recorder != nil {
		r.recorder.RecordThemeResolution(ctx, r.ProviderName(), string(t.Source), duration)
		if t.Source == SourceAI {
			r.recorder.RecordTokenUsage(ctx, r.model, usage.InputTokens, usage.OutputTokens, usage.TotalTokens)
		}
	}
	return t
}

func (r *Resolver) resolve(ctx context.Context, key, style string) (Theme, llm.Usage) {
	if key == "" {
		return FallbackTheme(), llm.Usage{}
	}

	if r.store != nil {
		cached, ok, err := r.store.Get(ctx, key)
		if err != nil {
			logger.Warn("Theme cache lookup failed", logger.Fields{"style": style, "error": err.Error()})
		} else if ok {
			cached.Source = SourceCache
			return cached, llm.Usage{}
		}
	}

	if r.provider == nil {
		return FallbackTheme(), llm.Usage{}
	}

	t, usage, err := r.ask(ctx, style)
	if err != nil {
		logger.Error("Theme generation failed, using fallback", err, logger.Fields{
			"style":    style,
			"provider": r.ProviderName(),
			"model":    r.model,
		})
		return FallbackTheme(), usage
	}

	if r.store != nil {
		if err := r.store.Put(ctx, key, t, r.ProviderName(), r.model); err != nil {
			logger.Warn("Theme cache write failed", logger.Fields{"style": style, "error": err.Error()})
		}
	}
	return t, usage
}

// ask performs one model call and parses its answer
func (r *Resolver) ask(ctx context.Context, style string) (Theme, llm.Usage, error) {
	systemPrompt, err := r.prompts.BuildSystemPrompt()
	if err != nil {
		return Theme{}, llm.Usage{}, err
	}
	userPrompt, err := r.prompts.BuildThemePrompt(style)
	if err != nil {
		return Theme{}, llm.Usage{}, err
	}

	request := &llm.GenerationRequest{
		Model:        r.model,
		InputArray:   llm.UserMessage(userPrompt),
		SystemPrompt: systemPrompt,
		OutputSchema: llm.RugThemeOutputSchema(),
	}

	call := r.langfuse.StartThemeCall(ctx, style, r.ProviderName(), r.model)
	defer call.End()

	callCtx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	resp, err := r.provider.Generate(callCtx, request)
	if err != nil {
		call.Failed(err, true)
		return Theme{}, llm.Usage{}, fmt.Errorf("%s request failed: %w", r.ProviderName(), err)
	}
	call.Answered(request.InputArray, resp)

	t, err := ParseTheme(resp.RawOutput)
	if err != nil {
		call.Failed(err, false)
		return Theme{}, resp.Usage, err
	}
	return t, resp.Usage, nil
}

// ResolveLatest resolves style for a caller-chosen key and publishes the result
// as that key's latest theme only if no newer request for the key started in
// the meantime. The boolean reports whether the result was published.
func (r *Resolver) ResolveLatest(ctx context.Context, key, style string) (Theme, bool) {
	r.mu.Lock()
	r.seq[key]++
	ticket := r.seq[key]
	r.mu.Unlock()

	t := r.Resolve(ctx, style)

	r.mu.Lock()
	defer r.mu.Unlock()
	if r.seq[key] != ticket {
		logger.Debug("Discarding stale theme response", logger.Fields{"key": key, "style": style})
		return t, false
	}
	r.latest[key] = t
	return t, true
}

// Latest returns the theme most recently published for key
func (r *Resolver) Latest(key string) (Theme, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.latest[key]
	return t, ok
}
