// Package observe provides OpenTelemetry instrumentation for Keyfort
// clients.
//
// The client itself never logs or records anything; instrumentation attaches
// at the HTTP transport seam. Build an Observer, wrap the transport, and
// inject it:
//
//	obs, _ := observe.New(ctx, observe.Config{
//	    ServiceName: "billing",
//	    Tracing:     observe.TracingConfig{Enabled: true, Exporter: "otlp"},
//	    Metrics:     observe.MetricsConfig{Enabled: true, Exporter: "prometheus"},
//	})
//	transport, _ := observe.NewTransport(obs, nil)
//	c, _ := client.New(client.Config{
//	    ...,
//	    HTTPClient: &http.Client{Transport: transport},
//	})
//
// With tracing and metrics disabled the Observer is a no-op and the
// transport adds no overhead beyond a timestamp.
package observe
