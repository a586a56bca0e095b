package secret

import (
	"context"
	"sync"
	"time"
)

// CachedProvider caches resolved values in front of another Provider for a
// TTL. The Keyfort client itself never caches; callers who want to bound
// request volume wrap the provider instead.
type CachedProvider struct {
	provider Provider
	ttl      time.Duration

	mu      sync.RWMutex
	entries map[string]cacheEntry
}

type cacheEntry struct {
	value     string
	expiresAt time.Time
}

// NewCachedProvider wraps provider with a TTL cache. A non-positive ttl
// defaults to 5 minutes.
func NewCachedProvider(provider Provider, ttl time.Duration) *CachedProvider {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &CachedProvider{
		provider: provider,
		ttl:      ttl,
		entries:  make(map[string]cacheEntry),
	}
}

// Name returns the wrapped provider's name.
func (p *CachedProvider) Name() string { return p.provider.Name() }

// Resolve returns the cached value when fresh, otherwise resolves through
// the wrapped provider and caches the result. Errors are never cached.
func (p *CachedProvider) Resolve(ctx context.Context, name string) (string, error) {
	p.mu.RLock()
	entry, ok := p.entries[name]
	p.mu.RUnlock()

	if ok && time.Now().Before(entry.expiresAt) {
		return entry.value, nil
	}

	value, err := p.provider.Resolve(ctx, name)
	if err != nil {
		return "", err
	}

	p.mu.Lock()
	p.entries[name] = cacheEntry{value: value, expiresAt: time.Now().Add(p.ttl)}
	p.mu.Unlock()

	return value, nil
}

// Invalidate drops the cached entry for name, forcing the next Resolve to
// hit the wrapped provider.
func (p *CachedProvider) Invalidate(name string) {
	p.mu.Lock()
	delete(p.entries, name)
	p.mu.Unlock()
}

// Close clears the cache and closes the wrapped provider.
func (p *CachedProvider) Close() error {
	p.mu.Lock()
	p.entries = make(map[string]cacheEntry)
	p.mu.Unlock()
	return p.provider.Close()
}

var _ Provider = (*CachedProvider)(nil)
