package exporters

import (
	"context"
	"testing"
)

func TestNewSpanExporter(t *testing.T) {
	ctx := context.Background()

	for _, name := range []string{"none", ""} {
		exp, err := NewSpanExporter(ctx, name)
		if err != nil {
			t.Fatalf("NewSpanExporter(%q) error = %v", name, err)
		}
		if exp == nil {
			t.Fatalf("NewSpanExporter(%q) = nil", name)
		}
		_ = exp.Shutdown(ctx)
	}

	if _, err := NewSpanExporter(ctx, "carrier-pigeon"); err == nil {
		t.Error("expected error for unknown exporter")
	}
}

func TestNewSpanExporter_OTLPRequiresEndpoint(t *testing.T) {
	t.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "")
	t.Setenv("OTEL_EXPORTER_OTLP_TRACES_ENDPOINT", "")

	if _, err := NewSpanExporter(context.Background(), "otlp"); err == nil {
		t.Error("expected error when no OTLP endpoint is configured")
	}
}

func TestNewMetricReader(t *testing.T) {
	ctx := context.Background()

	for _, name := range []string{"none", ""} {
		reader, err := NewMetricReader(ctx, name)
		if err != nil {
			t.Fatalf("NewMetricReader(%q) error = %v", name, err)
		}
		if reader == nil {
			t.Fatalf("NewMetricReader(%q) = nil", name)
		}
		_ = reader.Shutdown(ctx)
	}

	if _, err := NewMetricReader(ctx, "carrier-pigeon"); err == nil {
		t.Error("expected error for unknown exporter")
	}
}

func TestNewMetricReader_OTLPRequiresEndpoint(t *testing.T) {
	t.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "")
	t.Setenv("OTEL_EXPORTER_OTLP_METRICS_ENDPOINT", "")

	if _, err := NewMetricReader(context.Background(), "otlp"); err == nil {
		t.Error("expected error when no OTLP endpoint is configured")
	}
}
