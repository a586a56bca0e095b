package client

import "github.com/kelseyhightower/envconfig"

// EnvPrefix is the prefix for environment-based configuration.
const EnvPrefix = "KEYFORT"

// envSpec mirrors Config for envconfig processing. Validation still happens
// in New, so a missing or malformed variable surfaces as the same
// construction error as a hand-built Config.
type envSpec struct {
	AccessKey string `envconfig:"ACCESS_KEY"`
	SecretKey string `envconfig:"SECRET_KEY"`
	ProjectID string `envconfig:"PROJECT_ID"`
	BaseURL   string `envconfig:"BASE_URL"`
}

// FromEnv builds a Config from KEYFORT_ACCESS_KEY, KEYFORT_SECRET_KEY,
// KEYFORT_PROJECT_ID, and KEYFORT_BASE_URL.
func FromEnv() (Config, error) {
	var spec envSpec
	if err := envconfig.Process(EnvPrefix, &spec); err != nil {
		return Config{}, err
	}
	return Config{
		AccessKey: spec.AccessKey,
		SecretKey: spec.SecretKey,
		ProjectID: spec.ProjectID,
		BaseURL:   spec.BaseURL,
	}, nil
}

// NewFromEnv builds a validated Client from environment configuration.
func NewFromEnv() (*Client, error) {
	config, err := FromEnv()
	if err != nil {
		return nil, err
	}
	return New(config)
}
