package metrics

import (
	"context"
	"time"
)

// Recorder fans every measurement out to Sentry spans and, in production, CloudWatch.
// A nil CloudWatch client is allowed.
type Recorder struct {
	sentry *SentryMetrics
	cloud  *Client
}

// NewRecorder creates a recorder over the given CloudWatch client
func NewRecorder(cloud *Client) *Recorder {
	if cloud == nil {
		cloud = &Client{enabled: false}
	}
	return &Recorder{
		sentry: NewSentryMetrics(),
		cloud:  cloud,
	}
}

// RecordAPIRequest records a finished HTTP request
func (r *Recorder) RecordAPIRequest(ctx context.Context, endpoint string, statusCode int, duration time.Duration) {
	r.sentry.RecordAPIRequest(ctx, endpoint, statusCode, duration)
	r.cloud.RecordAPIRequest(endpoint, statusCode, duration)
}

// RecordGeneration records one grid generation
func (r *Recorder) RecordGeneration(ctx context.Context, style string, cells int, duration time.Duration, success bool) {
	r.sentry.RecordGenerationDuration(ctx, style, cells, duration, success)
	r.cloud.RecordGenerationDuration(style, duration, success)
}

// RecordThemeResolution records a theme outcome
func (r *Recorder) RecordThemeResolution(ctx context.Context, provider, source string, duration time.Duration) {
	r.sentry.RecordThemeResolution(ctx, provider, source, duration)
	r.cloud.RecordThemeResolution(provider, source)
}

// RecordTokenUsage records model token counts
func (r *Recorder) RecordTokenUsage(ctx context.Context, model string, inputTokens, outputTokens, totalTokens int) {
	r.sentry.RecordTokenUsage(ctx, model, inputTokens, outputTokens, totalTokens)
	r.cloud.RecordTokenUsage(model, inputTokens, outputTokens, totalTokens)
}
