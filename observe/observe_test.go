package observe

import (
	"context"
	"strings"
	"testing"
)

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr string
	}{
		{
			name: "valid full config",
			config: Config{
				ServiceName: "billing",
				Version:     "1.2.3",
				Tracing:     TracingConfig{Enabled: true, Exporter: "stdout", SampleRatio: 0.5},
				Metrics:     MetricsConfig{Enabled: true, Exporter: "prometheus"},
			},
		},
		{
			name:    "missing service name",
			config:  Config{},
			wantErr: "service name",
		},
		{
			name: "unknown tracing exporter",
			config: Config{
				ServiceName: "billing",
				Tracing:     TracingConfig{Enabled: true, Exporter: "carrier-pigeon"},
			},
			wantErr: "unknown tracing exporter",
		},
		{
			name: "unknown metrics exporter",
			config: Config{
				ServiceName: "billing",
				Metrics:     MetricsConfig{Enabled: true, Exporter: "carrier-pigeon"},
			},
			wantErr: "unknown metrics exporter",
		},
		{
			name: "disabled subsystems skip exporter checks",
			config: Config{
				ServiceName: "billing",
				Tracing:     TracingConfig{Enabled: false, Exporter: "carrier-pigeon"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("Validate() error = %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("Validate() error = %v, want containing %q", err, tt.wantErr)
			}
		})
	}
}

func TestNew_DisabledIsNoop(t *testing.T) {
	obs, err := New(context.Background(), Config{ServiceName: "billing"})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if obs.TracerProvider() == nil || obs.MeterProvider() == nil {
		t.Fatal("providers must never be nil")
	}
	if err := obs.Shutdown(context.Background()); err != nil {
		t.Errorf("Shutdown() error = %v", err)
	}
}

func TestNew_EnabledWithNoneExporters(t *testing.T) {
	obs, err := New(context.Background(), Config{
		ServiceName: "billing",
		Tracing:     TracingConfig{Enabled: true, Exporter: "none"},
		Metrics:     MetricsConfig{Enabled: true, Exporter: "none"},
	})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	defer func() {
		if err := obs.Shutdown(context.Background()); err != nil {
			t.Errorf("Shutdown() error = %v", err)
		}
	}()

	tracer := obs.TracerProvider().Tracer("test")
	_, span := tracer.Start(context.Background(), "op")
	span.End()
}

func TestNew_RejectsInvalidConfig(t *testing.T) {
	if _, err := New(context.Background(), Config{}); err == nil {
		t.Fatal("expected error for missing service name")
	}
}

func TestNewWithProviders_NilDefaultsToNoop(t *testing.T) {
	obs := NewWithProviders(nil, nil)
	if obs.TracerProvider() == nil || obs.MeterProvider() == nil {
		t.Fatal("providers must never be nil")
	}
	if err := obs.Shutdown(context.Background()); err != nil {
		t.Errorf("Shutdown() error = %v", err)
	}
}
