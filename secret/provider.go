package secret

import "context"

// Provider resolves secret values by name.
//
// Implementations must be safe for concurrent use and must not log secret
// values.
type Provider interface {
	// Name identifies the provider in references ("keyfort", "env", ...).
	Name() string

	// Resolve returns the value of the named secret.
	Resolve(ctx context.Context, name string) (string, error)

	// Close releases any resources held by the provider.
	Close() error
}
