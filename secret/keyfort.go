package secret

import (
	"context"

	"github.com/keyfort/keyfort-go/client"
)

// KeyfortProvider resolves secrets from the Keyfort service.
type KeyfortProvider struct {
	client *client.Client
}

// NewKeyfortProvider wraps an already-constructed client.
func NewKeyfortProvider(c *client.Client) *KeyfortProvider {
	return &KeyfortProvider{client: c}
}

// NewKeyfortProviderFromConfig builds the provider from a factory config
// map. Recognized keys: access_key, secret_key, project_id, base_url.
func NewKeyfortProviderFromConfig(cfg map[string]any) (Provider, error) {
	str := func(key string) string {
		v, _ := cfg[key].(string)
		return v
	}
	c, err := client.New(client.Config{
		AccessKey: str("access_key"),
		SecretKey: str("secret_key"),
		ProjectID: str("project_id"),
		BaseURL:   str("base_url"),
	})
	if err != nil {
		return nil, err
	}
	return NewKeyfortProvider(c), nil
}

// Name returns "keyfort".
func (p *KeyfortProvider) Name() string { return "keyfort" }

// Resolve fetches the named key from the service.
func (p *KeyfortProvider) Resolve(ctx context.Context, name string) (string, error) {
	return p.client.GetKey(ctx, name)
}

// Close is a no-op; the underlying HTTP client holds no resources that
// outlive its idle connections.
func (p *KeyfortProvider) Close() error { return nil }

var _ Provider = (*KeyfortProvider)(nil)
