package secret

import (
	"context"
	"errors"
	"strings"
	"testing"
)

func TestLoader_LoadResolvesAllValues(t *testing.T) {
	r := NewResolver(true, &stubProvider{name: "stub", values: map[string]string{
		"DB":  "postgres://db",
		"API": "tok-123",
	}})
	l := NewLoader(r, 4)

	got, err := l.Load(context.Background(), map[string]string{
		"DATABASE_URL": "secretref:stub:DB",
		"API_TOKEN":    "secretref:stub:API",
		"REGION":       "eu-west-1",
	})
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	want := map[string]string{
		"DATABASE_URL": "postgres://db",
		"API_TOKEN":    "tok-123",
		"REGION":       "eu-west-1",
	}
	for k, v := range want {
		if got[k] != v {
			t.Errorf("Load()[%q] = %q, want %q", k, got[k], v)
		}
	}
	if len(got) != len(want) {
		t.Errorf("Load() returned %d entries, want %d", len(got), len(want))
	}
}

func TestLoader_LoadErrorNamesTheKey(t *testing.T) {
	wantErr := errors.New("backend down")
	r := NewResolver(true, &stubProvider{name: "stub", resolve: func(string) (string, error) {
		return "", wantErr
	}})
	l := NewLoader(r, 0) // default limit

	_, err := l.Load(context.Background(), map[string]string{
		"API_TOKEN": "secretref:stub:API",
	})
	if !errors.Is(err, wantErr) {
		t.Fatalf("Load() error = %v, want %v", err, wantErr)
	}
	if !strings.Contains(err.Error(), "API_TOKEN") {
		t.Errorf("Load() error = %q, want the failing key named", err)
	}
}

func TestLoader_LoadNilInput(t *testing.T) {
	l := NewLoader(NewResolver(true), 2)

	got, err := l.Load(context.Background(), nil)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if got != nil {
		t.Fatalf("Load() = %v, want nil", got)
	}
}
