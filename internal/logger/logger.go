package logger

import (
	"context"
	"fmt"
	"log"
	"sort"
	"strings"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/gin-gonic/gin"
)

// Fields represents structured log fields
type Fields map[string]interface{}

// WithContext extracts request context for logging
func WithContext(c *gin.Context) Fields {
	fields := Fields{
		"request_id": c.GetString("request_id"),
		"method":     c.Request.Method,
		"path":       c.Request.URL.Path,
	}

	if userID, exists := c.Get("user_id"); exists {
		fields["user_id"] = userID
	}

	if style, exists := c.Get("rug_style"); exists {
		fields["style"] = style
	}

	return fields
}

// Info logs an informational message with structured fields
func Info(msg string, fields Fields) {
	log.Printf("[INFO] %s %v", msg, formatFields(fields))
	breadcrumb(sentry.LevelInfo, msg, fields)
}

// Warn logs a warning message with structured fields
func Warn(msg string, fields Fields) {
	log.Printf("[WARN] %s %v", msg, formatFields(fields))
	breadcrumb(sentry.LevelWarning, msg, fields)
}

// Debug logs a debug message with structured fields
func Debug(msg string, fields Fields) {
	log.Printf("[DEBUG] %s %v", msg, formatFields(fields))
	breadcrumb(sentry.LevelDebug, msg, fields)
}

// Error logs an error and reports it to Sentry. A nil err is reported as a message.
func Error(msg string, err error, fields Fields) {
	log.Printf("[ERROR] %s: %v %v", msg, err, formatFields(fields))

	hub := sentry.CurrentHub()
	if hub.Client() == nil {
		return
	}
	hub.WithScope(func(scope *sentry.Scope) {
		for key, value := range fields {
			scope.SetContext(key, map[string]interface{}{"value": value})
		}
		for _, tag := range []string{"request_id", "model", "style", "provider"} {
			if value, ok := fields[tag].(string); ok && value != "" {
				scope.SetTag(tag, value)
			}
		}

		if err == nil {
			scope.SetLevel(sentry.LevelError)
			hub.CaptureMessage(msg)
			return
		}
		hub.CaptureException(err)
	})
}

// breadcrumb attaches a log line to the next Sentry event
func breadcrumb(level sentry.Level, msg string, fields Fields) {
	if sentry.CurrentHub().Client() == nil {
		return
	}
	data := make(map[string]interface{}, len(fields))
	for k, v := range fields {
		data[k] = v
	}
	sentry.AddBreadcrumb(&sentry.Breadcrumb{
		Type:     string(level),
		Category: "log",
		Message:  msg,
		Data:     data,
		Level:    level,
	})
}

// LogThemeResolution logs one theme lookup and records it as a Sentry span
func LogThemeResolution(ctx context.Context, provider, model, source string, duration time.Duration, tokenUsage map[string]interface{}, fields Fields) {
	if fields == nil {
		fields = Fields{}
	}

	fields["provider"] = provider
	fields["model"] = model
	fields["source"] = source
	fields["duration_ms"] = duration.Milliseconds()
	for _, key := range []string{"total_tokens", "input_tokens", "output_tokens"} {
		if v, ok := tokenUsage[key]; ok {
			fields[key] = v
		}
	}

	if source == "fallback" {
		Warn("Theme resolution fell back", fields)
	} else {
		Info("Theme resolution completed", fields)
	}

	if hub := sentry.GetHubFromContext(ctx); hub != nil {
		span := sentry.StartSpan(ctx, "theme.usage")
		span.Description = provider + "/" + model
		span.SetTag("source", source)
		span.SetData("tokens", tokenUsage)
		span.Finish()
	}
}

// LogRugGenerated logs a finished grid
func LogRugGenerated(style string, width, height int, duration time.Duration, fields Fields) {
	if fields == nil {
		fields = Fields{}
	}

	fields["style"] = style
	fields["width"] = width
	fields["height"] = height
	fields["cells"] = width * height
	fields["duration_ms"] = duration.Milliseconds()

	Debug("Rug generated", fields)
}

// formatFields converts Fields to a readable string with keys in sorted order
func formatFields(fields Fields) string {
	if len(fields) == 0 {
		return ""
	}

	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	b.WriteString("{")
	for i, k := range keys {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(k)
		b.WriteString("=")
		if str, ok := fields[k].(string); ok {
			b.WriteString(str)
		} else {
			b.WriteString(formatValue(fields[k]))
		}
	}
	b.WriteString("}")
	return b.String()
}

func formatValue(v interface{}) string {
	switch val := v.(type) {
	case int:
		return fmt.Sprintf("%d", val)
	case int64:
		return fmt.Sprintf("%d", val)
	case float64:
		return fmt.Sprintf("%.2f", val)
	default:
		return fmt.Sprintf("%v", val)
	}
}
