package resilience

import (
	"context"
	"time"
)

// Getter fetches a secret value by name. *client.Client implements it.
type Getter interface {
	GetKey(ctx context.Context, name string) (string, error)
}

// FetcherConfig configures a Fetcher.
type FetcherConfig struct {
	// Retry configures retry behavior. The zero value applies defaults.
	Retry RetryConfig

	// Timeout bounds each individual attempt. Zero disables the
	// per-attempt deadline.
	Timeout time.Duration
}

// Fetcher decorates a Getter with retry and timeout policy. It implements
// Getter itself, so decorated and undecorated clients are interchangeable.
type Fetcher struct {
	getter  Getter
	retry   *Retry
	timeout *Timeout
}

// NewFetcher wraps getter with the configured policy.
func NewFetcher(getter Getter, config FetcherConfig) *Fetcher {
	f := &Fetcher{
		getter: getter,
		retry:  NewRetry(config.Retry),
	}
	if config.Timeout > 0 {
		f.timeout = NewTimeout(TimeoutConfig{Timeout: config.Timeout})
	}
	return f
}

// GetKey fetches the named secret, retrying failed attempts per the
// configured policy.
func (f *Fetcher) GetKey(ctx context.Context, name string) (string, error) {
	var value string
	op := func(ctx context.Context) error {
		v, err := f.getter.GetKey(ctx, name)
		if err != nil {
			return err
		}
		value = v
		return nil
	}

	attempt := op
	if f.timeout != nil {
		attempt = func(ctx context.Context) error {
			return f.timeout.Execute(ctx, op)
		}
	}

	if err := f.retry.Execute(ctx, attempt); err != nil {
		return "", err
	}
	return value, nil
}

var _ Getter = (*Fetcher)(nil)
