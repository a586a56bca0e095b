package client

import "errors"

// Sentinel errors for configuration and usage failures. They are deliberately
// not *APIError: they mean the caller's setup or arguments were wrong, not
// that an operation ran and failed.
var (
	// Configuration errors, returned by New.
	ErrMissingAccessKey = errors.New("client: access key is required")
	ErrMissingProjectID = errors.New("client: project ID is required")
	ErrInvalidAccessKey = errors.New(`client: access key must start with "ak_"`)
	ErrInvalidBaseURL   = errors.New("client: base URL must be an absolute URL")

	// Usage errors, returned before any network activity.
	ErrEmptyKeyName = errors.New("client: key name is required")
)

// APIError is the uniform failure for every operation outcome that is not a
// success: transport failures, server-reported failures, and undecodable
// response bodies.
//
// StatusCode 0 is reserved for transport-level failures that never produced
// an HTTP status. Callers branch on StatusCode: 0 = connectivity,
// 401/403 = credentials, 404 = unknown key or project, 5xx = server side.
type APIError struct {
	// StatusCode is the HTTP status of the response, or 0 when the request
	// never completed.
	StatusCode int

	// Message describes the failure, preferring the server's detail field
	// when one was returned.
	Message string

	// Detail is the parsed error body from the server, if any.
	Detail map[string]any
}

func (e *APIError) Error() string { return e.Message }

// Retryable reports whether err is an *APIError worth retrying: a transport
// failure or a server-side (5xx) status. Client-side statuses and plain
// configuration or usage errors never are.
func Retryable(err error) bool {
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		return false
	}
	return apiErr.StatusCode == 0 || apiErr.StatusCode >= 500
}
