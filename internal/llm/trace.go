package llm

import (
	"context"
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/getsentry/sentry-go"
)

// traced runs one theme request under a "<provider>.generate" transaction
func traced(
	ctx context.Context,
	provider, model string,
	run func(tx *sentry.Span) (*GenerationResponse, error),
) (*GenerationResponse, error) {
	label := strings.ToUpper(provider)
	start := time.Now()
	log.Printf("🧶 %s THEME REQUEST STARTED (Model: %s)", label, model)

	tx := sentry.StartTransaction(ctx, provider+".generate")
	defer tx.Finish()
	tx.SetTag("model", model)
	tx.SetTag("provider", provider)

	resp, err := run(tx)
	tx.SetTag("success", strconv.FormatBool(err == nil))
	if err != nil {
		return nil, err
	}

	log.Printf("✅ %s GENERATION COMPLETED in %v", label, time.Since(start))
	return resp, nil
}

// roundTrip times the network call as a child span and reports failures to Sentry
func roundTrip[T any](tx *sentry.Span, provider string, send func(ctx context.Context) (T, error)) (T, error) {
	label := strings.ToUpper(provider)
	span := tx.StartChild(provider + ".api_call")
	start := time.Now()
	out, err := send(span.Context())
	elapsed := time.Since(start)
	span.Finish()

	if err != nil {
		log.Printf("❌ %s REQUEST FAILED after %v: %v", label, elapsed, err)
		sentry.CaptureException(err)
		var zero T
		return zero, fmt.Errorf("%s request failed: %w", provider, err)
	}

	log.Printf("⏱️  %s API CALL COMPLETED in %v", label, elapsed)
	return out, nil
}
