package observe

import (
	"context"
	"errors"
	"fmt"

	"go.opentelemetry.io/otel/metric"
	metricnoop "go.opentelemetry.io/otel/metric/noop"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.37.0"
	"go.opentelemetry.io/otel/trace"
	tracenoop "go.opentelemetry.io/otel/trace/noop"

	"github.com/keyfort/keyfort-go/observe/exporters"
)

// Config holds all configuration for the Observer.
type Config struct {
	// ServiceName identifies the consuming service in telemetry. Required.
	ServiceName string

	// Version is the consuming service's version. Optional.
	Version string

	Tracing TracingConfig
	Metrics MetricsConfig
}

// TracingConfig configures the tracing subsystem.
type TracingConfig struct {
	Enabled     bool
	Exporter    string  // stdout|otlp|none
	SampleRatio float64 // 0.0-1.0; non-positive or >1 means 1.0
}

// MetricsConfig configures the metrics subsystem.
type MetricsConfig struct {
	Enabled  bool
	Exporter string // stdout|otlp|prometheus|none
}

// Validate checks the configuration.
func (c Config) Validate() error {
	if c.ServiceName == "" {
		return errors.New("observe: service name is required")
	}
	if c.Tracing.Enabled {
		switch c.Tracing.Exporter {
		case "stdout", "otlp", "none", "":
		default:
			return fmt.Errorf("observe: unknown tracing exporter %q", c.Tracing.Exporter)
		}
	}
	if c.Metrics.Enabled {
		switch c.Metrics.Exporter {
		case "stdout", "otlp", "prometheus", "none", "":
		default:
			return fmt.Errorf("observe: unknown metrics exporter %q", c.Metrics.Exporter)
		}
	}
	return nil
}

// Observer owns the telemetry providers for a Keyfort client.
type Observer struct {
	tracerProvider trace.TracerProvider
	meterProvider  metric.MeterProvider
	shutdown       []func(context.Context) error
}

// New builds an Observer from config. Disabled subsystems get no-op
// providers, so an all-disabled Observer costs nothing.
func New(ctx context.Context, config Config) (*Observer, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	obs := &Observer{
		tracerProvider: tracenoop.NewTracerProvider(),
		meterProvider:  metricnoop.NewMeterProvider(),
	}

	res, err := resource.Merge(resource.Default(), resource.NewWithAttributes(
		semconv.SchemaURL,
		semconv.ServiceName(config.ServiceName),
		semconv.ServiceVersion(config.Version),
	))
	if err != nil {
		return nil, fmt.Errorf("observe: build resource: %w", err)
	}

	if config.Tracing.Enabled {
		exp, err := exporters.NewSpanExporter(ctx, config.Tracing.Exporter)
		if err != nil {
			return nil, err
		}
		ratio := config.Tracing.SampleRatio
		if ratio <= 0 || ratio > 1 {
			ratio = 1
		}
		tp := sdktrace.NewTracerProvider(
			sdktrace.WithBatcher(exp),
			sdktrace.WithResource(res),
			sdktrace.WithSampler(sdktrace.ParentBased(sdktrace.TraceIDRatioBased(ratio))),
		)
		obs.tracerProvider = tp
		obs.shutdown = append(obs.shutdown, tp.Shutdown)
	}

	if config.Metrics.Enabled {
		reader, err := exporters.NewMetricReader(ctx, config.Metrics.Exporter)
		if err != nil {
			return nil, err
		}
		mp := sdkmetric.NewMeterProvider(
			sdkmetric.WithReader(reader),
			sdkmetric.WithResource(res),
		)
		obs.meterProvider = mp
		obs.shutdown = append(obs.shutdown, mp.Shutdown)
	}

	return obs, nil
}

// NewWithProviders builds an Observer around externally-managed providers.
// The Observer does not own them: Shutdown is a no-op. Useful when the
// consuming service already wires OpenTelemetry itself, and in tests.
func NewWithProviders(tp trace.TracerProvider, mp metric.MeterProvider) *Observer {
	if tp == nil {
		tp = tracenoop.NewTracerProvider()
	}
	if mp == nil {
		mp = metricnoop.NewMeterProvider()
	}
	return &Observer{tracerProvider: tp, meterProvider: mp}
}

// TracerProvider returns the configured tracer provider.
func (o *Observer) TracerProvider() trace.TracerProvider {
	return o.tracerProvider
}

// MeterProvider returns the configured meter provider.
func (o *Observer) MeterProvider() metric.MeterProvider {
	return o.meterProvider
}

// Shutdown flushes and stops all providers.
func (o *Observer) Shutdown(ctx context.Context) error {
	var errs []error
	for _, fn := range o.shutdown {
		if err := fn(ctx); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
