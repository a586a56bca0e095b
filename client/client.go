package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
)

// DefaultBaseURL is the production Keyfort origin, used when Config.BaseURL
// is empty.
const DefaultBaseURL = "https://api.keyfort.io"

// AccessKeyPrefix is the literal prefix every access key carries.
const AccessKeyPrefix = "ak_"

// Config configures a Client.
type Config struct {
	// AccessKey is the public credential. Required, must start with "ak_".
	AccessKey string

	// SecretKey is the private credential. Optional; when set, requests
	// carry the full credential pair instead of public-only access.
	SecretKey string

	// ProjectID selects the secret namespace. Required, opaque: it may be
	// numeric text, a prefixed token, or a free-form name.
	ProjectID string

	// BaseURL overrides the production origin, e.g. for a staging
	// deployment. Optional; must parse as an absolute URL when set.
	BaseURL string

	// HTTPClient is the HTTP client to use. If nil, http.DefaultClient.
	HTTPClient *http.Client
}

// Client fetches secrets from the Keyfort service.
//
// The zero value is not usable; construct with New. A Client holds no state
// between calls, so concurrent use is safe.
type Client struct {
	config     Config
	baseURL    string
	httpClient *http.Client
}

// New validates config and creates a Client. Validation is synchronous and
// the first failing check wins: access key present, project ID present,
// access key prefix, base URL well-formed.
func New(config Config) (*Client, error) {
	if config.AccessKey == "" {
		return nil, ErrMissingAccessKey
	}
	if config.ProjectID == "" {
		return nil, ErrMissingProjectID
	}
	if !strings.HasPrefix(config.AccessKey, AccessKeyPrefix) {
		return nil, ErrInvalidAccessKey
	}

	baseURL := DefaultBaseURL
	if config.BaseURL != "" {
		u, err := url.Parse(config.BaseURL)
		if err != nil || !u.IsAbs() {
			return nil, fmt.Errorf("%w: %q", ErrInvalidBaseURL, config.BaseURL)
		}
		baseURL = config.BaseURL
	}
	baseURL = strings.TrimRight(baseURL, "/")

	httpClient := config.HTTPClient
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	return &Client{
		config:     config,
		baseURL:    baseURL,
		httpClient: httpClient,
	}, nil
}

// BaseURL returns the effective base URL the client sends requests to.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// keyResponse mirrors the service's key payload. Only Value is surfaced to
// callers; Name and ProjectID are received but unused.
type keyResponse struct {
	Name      string `json:"name"`
	Value     string `json:"value"`
	ProjectID string `json:"project_id"`
}

// GetKey fetches the named secret and returns its value.
//
// The request carries the bearer credential and project ID recomputed from
// the stored configuration. Any failure after validation is returned as an
// *APIError; an empty name returns ErrEmptyKeyName before any network
// activity.
func (c *Client) GetKey(ctx context.Context, name string) (string, error) {
	if name == "" {
		return "", ErrEmptyKeyName
	}

	endpoint := c.baseURL + "/v1/keys/" + url.PathEscape(name)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+c.bearerCredential())
	req.Header.Set("X-Project-ID", c.config.ProjectID)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", &APIError{
			StatusCode: 0,
			Message:    fmt.Sprintf("request for key %q failed: %v", name, err),
		}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", c.serverError(resp)
	}

	var key keyResponse
	if err := json.NewDecoder(resp.Body).Decode(&key); err != nil {
		return "", &APIError{
			StatusCode: resp.StatusCode,
			Message:    fmt.Sprintf("decode response body: %v", err),
		}
	}
	return key.Value, nil
}

// HealthCheck verifies service reachability. The request is unauthenticated:
// no Authorization or X-Project-ID header is sent. It returns true on any
// 2xx response; the response body is ignored.
func (c *Client) HealthCheck(ctx context.Context) (bool, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/health", nil)
	if err != nil {
		return false, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return false, &APIError{
			StatusCode: 0,
			Message:    fmt.Sprintf("health check failed: %v", err),
		}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return false, &APIError{
			StatusCode: resp.StatusCode,
			Message:    fmt.Sprintf("health check failed: HTTP %d", resp.StatusCode),
		}
	}
	return true, nil
}

// bearerCredential builds the Authorization value from the stored credential
// pair: "accessKey:secretKey" with full access, "accessKey" alone otherwise.
func (c *Client) bearerCredential() string {
	if c.config.SecretKey != "" {
		return c.config.AccessKey + ":" + c.config.SecretKey
	}
	return c.config.AccessKey
}

// serverError normalizes a non-2xx response into an *APIError. The body is
// expected to be `{"detail": "..."}`; an undecodable body still yields an
// *APIError carrying the real status.
func (c *Client) serverError(resp *http.Response) *APIError {
	var detail map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&detail); err != nil {
		return &APIError{
			StatusCode: resp.StatusCode,
			Message:    fmt.Sprintf("decode response body: %v", err),
		}
	}

	message := fmt.Sprintf("HTTP %d: %s", resp.StatusCode, http.StatusText(resp.StatusCode))
	if d, ok := detail["detail"].(string); ok && d != "" {
		message = d
	}

	return &APIError{
		StatusCode: resp.StatusCode,
		Message:    message,
		Detail:     detail,
	}
}
