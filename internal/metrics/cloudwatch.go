package metrics

import (
	"context"
	"log"
	"strconv"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/cloudwatch"
	"github.com/aws/aws-sdk-go-v2/service/cloudwatch/types"
)

const (
	namespace             = "RugLoom/API"
	httpStatusClientError = 400
	httpStatusServerError = 500
	cloudwatchTimeout     = 5 * time.Second
	sourceFallback        = "fallback"
)

// metricPutter is the slice of the CloudWatch API the client uses
type metricPutter interface {
	PutMetricData(ctx context.Context, params *cloudwatch.PutMetricDataInput, optFns ...func(*cloudwatch.Options)) (*cloudwatch.PutMetricDataOutput, error)
}

// Client wraps CloudWatch client for custom metrics
type Client struct {
	client      metricPutter
	enabled     bool
	environment string
	async       bool
}

// NewClient creates a new CloudWatch metrics client
func NewClient(ctx context.Context, environment string) (*Client, error) {
	// Only enable in production
	if environment != "production" {
		log.Printf("📊 CloudWatch Metrics: DISABLED (environment: %s)", environment)
		return &Client{
			enabled:     false,
			environment: environment,
		}, nil
	}

	cfg, err := config.LoadDefaultConfig(ctx)
	if err != nil {
		log.Printf("⚠️  Failed to load AWS config for CloudWatch: %v", err)
		return &Client{enabled: false, environment: environment}, nil
	}

	log.Printf("📊 CloudWatch Metrics: ✅ ENABLED (namespace: %s)", namespace)

	return &Client{
		client:      cloudwatch.NewFromConfig(cfg),
		enabled:     true,
		environment: environment,
		async:       true,
	}, nil
}

// dispatch runs fn in the background unless the client is synchronous (tests)
func (m *Client) dispatch(fn func(ctx context.Context)) {
	if m.async {
		go fn(context.Background())
		return
	}
	fn(context.Background())
}

func (m *Client) dimensions(pairs ...string) []types.Dimension {
	dims := make([]types.Dimension, 0, len(pairs)/2+1)
	for i := 0; i+1 < len(pairs); i += 2 {
		dims = append(dims, types.Dimension{Name: aws.String(pairs[i]), Value: aws.String(pairs[i+1])})
	}
	return append(dims, types.Dimension{Name: aws.String("Environment"), Value: aws.String(m.environment)})
}

func datum(name string, value float64, unit types.StandardUnit, dims []types.Dimension) types.MetricDatum {
	return types.MetricDatum{
		MetricName: aws.String(name),
		Value:      aws.Float64(value),
		Unit:       unit,
		Timestamp:  aws.Time(time.Now()),
		Dimensions: dims,
	}
}

// RecordAPIRequest counts a request (or a 5xx error) and its latency
func (m *Client) RecordAPIRequest(endpoint string, statusCode int, duration time.Duration) {
	if !m.enabled {
		return
	}

	m.dispatch(func(ctx context.Context) {
		name := "APIRequests"
		if statusCode >= httpStatusServerError {
			name = "APIErrors"
		}
		dims := m.dimensions("Endpoint", endpoint)
		m.put(ctx,
			datum(name, 1, types.StandardUnitCount, dims),
			datum("APILatency", float64(duration.Milliseconds()), types.StandardUnitMilliseconds, dims),
		)
	})
}

// RecordTokenUsage records theme model token usage
func (m *Client) RecordTokenUsage(model string, inputTokens, outputTokens, totalTokens int) {
	if !m.enabled {
		return
	}

	m.dispatch(func(ctx context.Context) {
		dims := m.dimensions("Model", model)
		m.put(ctx,
			datum("ThemeTokens/Total", float64(totalTokens), types.StandardUnitCount, dims),
			datum("ThemeTokens/Input", float64(inputTokens), types.StandardUnitCount, dims),
			datum("ThemeTokens/Output", float64(outputTokens), types.StandardUnitCount, dims),
		)
	})
}

// RecordGenerationDuration records rug generation duration per style
func (m *Client) RecordGenerationDuration(style string, duration time.Duration, success bool) {
	if !m.enabled {
		return
	}

	m.dispatch(func(ctx context.Context) {
		dims := m.dimensions("Style", style, "Success", strconv.FormatBool(success))
		m.put(ctx, datum("GenerationDuration", float64(duration.Milliseconds()), types.StandardUnitMilliseconds, dims))
	})
}

// RecordThemeResolution counts theme outcomes by source (ai, cache, fallback)
func (m *Client) RecordThemeResolution(provider, source string) {
	if !m.enabled {
		return
	}

	m.dispatch(func(ctx context.Context) {
		dims := m.dimensions("Provider", provider, "Source", source)
		m.put(ctx, datum("ThemeResolutions", 1, types.StandardUnitCount, dims))
	})
}

// put sends one batch of datums. Failures are logged and dropped.
func (m *Client) put(ctx context.Context, data ...types.MetricDatum) {
	if m.client == nil || len(data) == 0 {
		return
	}

	cwCtx, cancel := context.WithTimeout(ctx, cloudwatchTimeout)
	defer cancel()

	_, err := m.client.PutMetricData(cwCtx, &cloudwatch.PutMetricDataInput{
		Namespace:  aws.String(namespace),
		MetricData: data,
	})
	if err != nil {
		log.Printf("Failed to record %s metrics: %v", aws.ToString(data[0].MetricName), err)
	}
}
