package health

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/keyfort/keyfort-go/client"
)

// ServiceCheckerConfig configures the service health checker.
type ServiceCheckerConfig struct {
	// DegradedAfter marks the check degraded when the round trip takes
	// longer than this. Default: 500ms.
	DegradedAfter time.Duration

	// Timeout bounds the health request. Default: 5 seconds.
	Timeout time.Duration
}

// Pinger is the reachability probe the checker wraps. *client.Client
// implements it.
type Pinger interface {
	HealthCheck(ctx context.Context) (bool, error)
}

// ServiceChecker reports Keyfort service reachability as a health check.
type ServiceChecker struct {
	config ServiceCheckerConfig
	pinger Pinger
}

// NewServiceChecker creates a checker over pinger, applying defaults for
// zero config fields.
func NewServiceChecker(pinger Pinger, config ServiceCheckerConfig) *ServiceChecker {
	if config.DegradedAfter <= 0 {
		config.DegradedAfter = 500 * time.Millisecond
	}
	if config.Timeout <= 0 {
		config.Timeout = 5 * time.Second
	}
	return &ServiceChecker{config: config, pinger: pinger}
}

// Name returns "keyfort".
func (s *ServiceChecker) Name() string { return "keyfort" }

// Check probes the service. Unreachable or failing responses are unhealthy;
// a reachable but slow service is degraded.
func (s *ServiceChecker) Check(ctx context.Context) Result {
	ctx, cancel := context.WithTimeout(ctx, s.config.Timeout)
	defer cancel()

	start := time.Now()
	ok, err := s.pinger.HealthCheck(ctx)
	elapsed := time.Since(start)

	switch {
	case err != nil:
		var apiErr *client.APIError
		if errors.As(err, &apiErr) && apiErr.StatusCode == 0 {
			return Unhealthy("service unreachable", err).WithDuration(elapsed)
		}
		return Unhealthy("service reported failure", err).WithDuration(elapsed)
	case !ok:
		return Unhealthy("service not healthy", nil).WithDuration(elapsed)
	case elapsed > s.config.DegradedAfter:
		return Degraded(fmt.Sprintf("service responding slowly (%s)", elapsed)).WithDuration(elapsed)
	default:
		return Healthy("service reachable").WithDuration(elapsed)
	}
}

var _ Checker = (*ServiceChecker)(nil)
