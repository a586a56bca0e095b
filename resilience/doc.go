// Package resilience provides composable wrappers for calls to the Keyfort
// service.
//
// The client issues single-shot requests and never retries; retry and
// timeout policy belong to the caller. This package supplies that layer:
//
//	fetcher := resilience.NewFetcher(c, resilience.FetcherConfig{
//	    Retry:   resilience.RetryConfig{MaxAttempts: 4},
//	    Timeout: 5 * time.Second,
//	})
//	value, err := fetcher.GetKey(ctx, "OPENAI_API_KEY")
//
// By default only transport failures, 5xx responses, and per-attempt
// timeouts are retried; 4xx responses and configuration or usage errors
// fail immediately.
package resilience
