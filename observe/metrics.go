package observe

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// requestMetrics records per-request counters and latency for outbound
// Keyfort calls.
type requestMetrics struct {
	total    metric.Int64Counter
	errors   metric.Int64Counter
	duration metric.Float64Histogram
}

func newRequestMetrics(meter metric.Meter) (*requestMetrics, error) {
	total, err := meter.Int64Counter(
		"keyfort.client.requests",
		metric.WithDescription("Outbound requests to the Keyfort service"),
		metric.WithUnit("{request}"),
	)
	if err != nil {
		return nil, err
	}

	errCount, err := meter.Int64Counter(
		"keyfort.client.errors",
		metric.WithDescription("Failed outbound requests to the Keyfort service"),
		metric.WithUnit("{error}"),
	)
	if err != nil {
		return nil, err
	}

	duration, err := meter.Float64Histogram(
		"keyfort.client.duration_ms",
		metric.WithDescription("Outbound request duration in milliseconds"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		return nil, err
	}

	return &requestMetrics{total: total, errors: errCount, duration: duration}, nil
}

func (m *requestMetrics) record(ctx context.Context, method, path string, status int, elapsed time.Duration, err error) {
	attrs := []attribute.KeyValue{
		attribute.String("http.request.method", method),
		attribute.String("url.path", path),
	}
	if status > 0 {
		attrs = append(attrs, attribute.Int("http.response.status_code", status))
	}
	opt := metric.WithAttributes(attrs...)

	m.total.Add(ctx, 1, opt)
	if err != nil || status >= 400 {
		m.errors.Add(ctx, 1, opt)
	}
	m.duration.Record(ctx, float64(elapsed.Milliseconds()), opt)
}
