package resilience

import "errors"

// ErrTimeout indicates a single attempt exceeded its time budget.
var ErrTimeout = errors.New("resilience: operation timed out")
