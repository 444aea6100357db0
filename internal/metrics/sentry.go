package metrics

import (
	"context"
	"strconv"
	"time"

	"github.com/getsentry/sentry-go"
)

// SentryMetrics records measurements as short Sentry spans under the request transaction
type SentryMetrics struct{}

// NewSentryMetrics creates a new Sentry metrics client
func NewSentryMetrics() *SentryMetrics {
	return &SentryMetrics{}
}

func finish(span *sentry.Span, ok bool, failed sentry.SpanStatus) {
	span.Status = sentry.SpanStatusOK
	if !ok {
		span.Status = failed
	}
	span.Finish()
}

// RecordAPIRequest records API request metrics
func (m *SentryMetrics) RecordAPIRequest(ctx context.Context, endpoint string, statusCode int, duration time.Duration) {
	ok := statusCode < httpStatusClientError

	span := sentry.StartSpan(ctx, "api.request")
	span.Description = endpoint
	span.SetTag("endpoint", endpoint)
	span.SetTag("status_code", strconv.Itoa(statusCode))
	span.SetTag("success", strconv.FormatBool(ok))
	span.SetData("duration_ms", duration.Milliseconds())
	finish(span, ok, sentry.SpanStatusInternalError)
}

// RecordTokenUsage records theme model token usage on the current transaction
func (m *SentryMetrics) RecordTokenUsage(ctx context.Context, model string, inputTokens, outputTokens, totalTokens int) {
	if transaction := sentry.TransactionFromContext(ctx); transaction != nil {
		transaction.SetTag("llm.model", model)
		transaction.SetData("llm.total_tokens", totalTokens)
	}

	span := sentry.StartSpan(ctx, "llm.token_usage")
	span.Description = model
	span.SetTag("model", model)
	span.SetData("input_tokens", inputTokens)
	span.SetData("output_tokens", outputTokens)
	span.SetData("total_tokens", totalTokens)
	finish(span, true, sentry.SpanStatusOK)
}

// RecordGenerationDuration records how long a rug grid took to weave
func (m *SentryMetrics) RecordGenerationDuration(ctx context.Context, style string, cells int, duration time.Duration, success bool) {
	span := sentry.StartSpan(ctx, "rug.generate")
	span.Description = style
	span.SetTag("style", style)
	span.SetTag("success", strconv.FormatBool(success))
	span.SetData("cells", cells)
	span.SetData("duration_ms", duration.Milliseconds())
	finish(span, success, sentry.SpanStatusCanceled)
}

// RecordThemeResolution records which path produced a theme
func (m *SentryMetrics) RecordThemeResolution(ctx context.Context, provider, source string, duration time.Duration) {
	span := sentry.StartSpan(ctx, "theme.outcome")
	span.Description = source
	span.SetTag("provider", provider)
	span.SetTag("source", source)
	span.SetData("duration_ms", duration.Milliseconds())
	finish(span, source != sourceFallback, sentry.SpanStatusUnavailable)
}
