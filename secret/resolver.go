package secret

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"sync"
)

// RefPrefix marks a configuration value as a secret reference.
const RefPrefix = "secretref:"

// Resolver resolves secret references inside configuration values.
//
// A value that is exactly "secretref:<provider>:<name>" resolves to the named
// secret. References may also appear inline in a larger string. Every other
// value goes through strict environment expansion only.
type Resolver struct {
	mu        sync.RWMutex
	providers map[string]Provider
	strict    bool
}

// NewResolver creates a resolver. In strict mode an empty resolved value is
// an error rather than silently accepted.
func NewResolver(strict bool, providers ...Provider) *Resolver {
	r := &Resolver{
		providers: make(map[string]Provider),
		strict:    strict,
	}
	for _, p := range providers {
		if p != nil {
			r.providers[p.Name()] = p
		}
	}
	return r
}

// Register adds or replaces a provider.
func (r *Resolver) Register(p Provider) {
	if p == nil {
		return
	}
	r.mu.Lock()
	r.providers[p.Name()] = p
	r.mu.Unlock()
}

// Close closes every registered provider.
func (r *Resolver) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	var errs []error
	for _, p := range r.providers {
		if err := p.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close provider %q: %w", p.Name(), err))
		}
	}
	return errors.Join(errs...)
}

// ParseRef splits a full secret reference into provider and secret name.
func ParseRef(value string) (provider, name string, ok bool) {
	rest, found := strings.CutPrefix(value, RefPrefix)
	if !found {
		return "", "", false
	}
	provider, name, found = strings.Cut(rest, ":")
	if !found || provider == "" || name == "" {
		return "", "", false
	}
	return provider, name, true
}

// ResolveValue expands environment references in value and then resolves any
// secret references, full or inline.
func (r *Resolver) ResolveValue(ctx context.Context, value string) (string, error) {
	expanded, err := ExpandEnvStrict(value)
	if err != nil {
		return "", err
	}

	if provider, name, ok := ParseRef(expanded); ok {
		return r.resolve(ctx, provider, name)
	}
	return r.expandInline(ctx, expanded)
}

func (r *Resolver) resolve(ctx context.Context, providerName, name string) (string, error) {
	r.mu.RLock()
	provider := r.providers[providerName]
	r.mu.RUnlock()

	if provider == nil {
		return "", fmt.Errorf("secret provider %q is not registered", providerName)
	}
	value, err := provider.Resolve(ctx, name)
	if err != nil {
		return "", err
	}
	if r.strict && value == "" {
		return "", fmt.Errorf("secret provider %q returned an empty value for %q", providerName, name)
	}
	return value, nil
}

var inlineRefPattern = regexp.MustCompile(`secretref:([^:\s]+):([^\s]+)`) // provider:name

func (r *Resolver) expandInline(ctx context.Context, value string) (string, error) {
	matches := inlineRefPattern.FindAllStringSubmatchIndex(value, -1)
	if len(matches) == 0 {
		return value, nil
	}

	var b strings.Builder
	last := 0
	for _, m := range matches {
		resolved, err := r.resolve(ctx, value[m[2]:m[3]], value[m[4]:m[5]])
		if err != nil {
			return "", err
		}
		b.WriteString(value[last:m[0]])
		b.WriteString(resolved)
		last = m[1]
	}
	b.WriteString(value[last:])
	return b.String(), nil
}
