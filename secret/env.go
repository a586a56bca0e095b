package secret

import (
	"context"
	"fmt"
	"os"
)

// EnvProvider resolves secrets from the process environment.
type EnvProvider struct{}

// NewEnvProvider creates an environment-backed provider.
func NewEnvProvider() *EnvProvider { return &EnvProvider{} }

// Name returns "env".
func (p *EnvProvider) Name() string { return "env" }

// Resolve looks the name up in the environment. An unset variable is an
// error; an empty one is returned as-is and left to the Resolver's strict
// mode.
func (p *EnvProvider) Resolve(_ context.Context, name string) (string, error) {
	v, ok := os.LookupEnv(name)
	if !ok {
		return "", fmt.Errorf("secret %q not present in environment", name)
	}
	return v, nil
}

// Close is a no-op.
func (p *EnvProvider) Close() error { return nil }

// StaticProvider serves a fixed map of values, for tests and local
// development.
type StaticProvider struct {
	name   string
	values map[string]string
}

// NewStaticProvider creates a provider named name over a copy of values.
func NewStaticProvider(name string, values map[string]string) *StaticProvider {
	copied := make(map[string]string, len(values))
	for k, v := range values {
		copied[k] = v
	}
	return &StaticProvider{name: name, values: copied}
}

// Name returns the name given at construction.
func (p *StaticProvider) Name() string { return p.name }

// Resolve returns the mapped value.
func (p *StaticProvider) Resolve(_ context.Context, name string) (string, error) {
	v, ok := p.values[name]
	if !ok {
		return "", fmt.Errorf("secret %q not found in static provider %q", name, p.name)
	}
	return v, nil
}

// Close is a no-op.
func (p *StaticProvider) Close() error { return nil }

var (
	_ Provider = (*EnvProvider)(nil)
	_ Provider = (*StaticProvider)(nil)
)
