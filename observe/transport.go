package observe

import (
	"net/http"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const instrumentationName = "github.com/keyfort/keyfort-go/observe"

// Transport is an http.RoundTripper that records a client span and request
// metrics for every outbound request. Wire it into the client via
// Config.HTTPClient.
//
// Span and metric attributes carry the request path, which for key fetches
// contains the key NAME. Key names are identifiers, not secret values;
// secret values never appear in telemetry.
type Transport struct {
	base    http.RoundTripper
	tracer  trace.Tracer
	metrics *requestMetrics
}

// NewTransport creates a Transport. A nil base defaults to
// http.DefaultTransport.
func NewTransport(obs *Observer, base http.RoundTripper) (*Transport, error) {
	if base == nil {
		base = http.DefaultTransport
	}
	metrics, err := newRequestMetrics(obs.MeterProvider().Meter(instrumentationName))
	if err != nil {
		return nil, err
	}
	return &Transport{
		base:    base,
		tracer:  obs.TracerProvider().Tracer(instrumentationName),
		metrics: metrics,
	}, nil
}

// RoundTrip issues the request through the base transport, wrapped in a
// client span, and records request metrics.
func (t *Transport) RoundTrip(req *http.Request) (*http.Response, error) {
	ctx, span := t.tracer.Start(req.Context(), req.Method+" "+req.URL.Path,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("http.request.method", req.Method),
			attribute.String("url.path", req.URL.Path),
			attribute.String("server.address", req.URL.Host),
		),
	)
	defer span.End()

	start := time.Now()
	resp, err := t.base.RoundTrip(req.WithContext(ctx))
	elapsed := time.Since(start)

	status := 0
	if resp != nil {
		status = resp.StatusCode
	}
	t.metrics.record(ctx, req.Method, req.URL.Path, status, elapsed, err)

	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	span.SetAttributes(attribute.Int("http.response.status_code", status))
	if status >= 400 {
		span.SetStatus(codes.Error, http.StatusText(status))
	}
	return resp, nil
}

var _ http.RoundTripper = (*Transport)(nil)
