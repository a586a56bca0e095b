package resilience

import (
	"context"
	"fmt"
	"time"
)

// TimeoutConfig configures the timeout wrapper.
type TimeoutConfig struct {
	// Timeout is the maximum duration for one operation.
	// Default: 30 seconds
	Timeout time.Duration
}

// Timeout bounds operations with a deadline.
type Timeout struct {
	config TimeoutConfig
}

// NewTimeout creates a timeout wrapper.
func NewTimeout(config TimeoutConfig) *Timeout {
	if config.Timeout <= 0 {
		config.Timeout = 30 * time.Second
	}
	return &Timeout{config: config}
}

// Execute runs op under a derived deadline. When the deadline is what ended
// the operation, the error is replaced by ErrTimeout so retry policies can
// recognize it.
func (t *Timeout) Execute(ctx context.Context, op func(context.Context) error) error {
	ctx, cancel := context.WithTimeout(ctx, t.config.Timeout)
	defer cancel()

	err := op(ctx)
	if err != nil && ctx.Err() == context.DeadlineExceeded {
		return fmt.Errorf("%w after %s", ErrTimeout, t.config.Timeout)
	}
	return err
}

// Config returns the effective timeout configuration.
func (t *Timeout) Config() TimeoutConfig {
	return t.config
}
