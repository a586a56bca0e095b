package secret

import (
	"context"
	"fmt"
	"sync"

	"golang.org/x/sync/errgroup"
)

// Loader resolves many configuration values concurrently.
type Loader struct {
	resolver *Resolver
	limit    int
}

// NewLoader creates a loader. limit caps in-flight resolutions; non-positive
// defaults to 8.
func NewLoader(resolver *Resolver, limit int) *Loader {
	if limit <= 0 {
		limit = 8
	}
	return &Loader{resolver: resolver, limit: limit}
}

// Load resolves every value in input, preserving keys. The first resolution
// error cancels the remaining lookups and is returned wrapped with its key.
func (l *Loader) Load(ctx context.Context, input map[string]string) (map[string]string, error) {
	if input == nil {
		return nil, nil
	}

	var mu sync.Mutex
	out := make(map[string]string, len(input))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(l.limit)

	for k, v := range input {
		g.Go(func() error {
			resolved, err := l.resolver.ResolveValue(ctx, v)
			if err != nil {
				return fmt.Errorf("resolve %q: %w", k, err)
			}
			mu.Lock()
			out[k] = resolved
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
