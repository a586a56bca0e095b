package health

import (
	"context"
	"testing"
	"time"
)

func TestStatus_String(t *testing.T) {
	tests := []struct {
		status Status
		want   string
	}{
		{StatusHealthy, "healthy"},
		{StatusDegraded, "degraded"},
		{StatusUnhealthy, "unhealthy"},
		{Status(42), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.status.String(); got != tt.want {
			t.Errorf("Status(%d).String() = %q, want %q", tt.status, got, tt.want)
		}
	}
}

func TestResultConstructors(t *testing.T) {
	r := Healthy("all good")
	if r.Status != StatusHealthy || r.Message != "all good" {
		t.Errorf("Healthy() = %+v", r)
	}
	if r.Timestamp.IsZero() {
		t.Error("Healthy() did not set Timestamp")
	}

	r = Degraded("slow")
	if r.Status != StatusDegraded {
		t.Errorf("Degraded() status = %v", r.Status)
	}

	err := context.DeadlineExceeded
	r = Unhealthy("down", err)
	if r.Status != StatusUnhealthy || r.Error != err {
		t.Errorf("Unhealthy() = %+v", r)
	}

	r = Healthy("timed").WithDuration(42 * time.Millisecond)
	if r.Duration != 42*time.Millisecond {
		t.Errorf("WithDuration() = %v", r.Duration)
	}
}

func TestCheckerFunc(t *testing.T) {
	c := NewCheckerFunc("custom", func(ctx context.Context) Result {
		return Healthy("ok")
	})

	if c.Name() != "custom" {
		t.Errorf("Name() = %q, want custom", c.Name())
	}
	if got := c.Check(context.Background()); got.Status != StatusHealthy {
		t.Errorf("Check() status = %v, want healthy", got.Status)
	}
}
