// Package health adapts Keyfort service reachability into a health check.
//
// The Status/Result/Checker types form a small framework callers can plug
// into their own readiness probes; ServiceChecker wraps the client's
// HealthCheck operation and classifies the outcome by reachability and
// latency:
//
//	checker := health.NewServiceChecker(c, health.ServiceCheckerConfig{
//	    DegradedAfter: 300 * time.Millisecond,
//	})
//	result := checker.Check(ctx)
//	if result.Status != health.StatusHealthy {
//	    log.Printf("keyfort: %s", result.Message)
//	}
package health
