// Package client implements the HTTP client for the Keyfort secret service.
//
// A Client is built once from a validated Config and is safe for concurrent
// use: the configuration is immutable and no call mutates client state. It
// exposes exactly two operations, GetKey and HealthCheck, each a single-shot
// request with no retry, caching, or logging. Retry policy, caching, and
// instrumentation compose externally (see the resilience, secret, and
// observe packages).
package client
