package config

import (
	serrors "github.com/brijrajsingh/SuperTerminal/internal/errors"
)

const (
	DefaultModel = "gpt-4"
	APIKeyEnv    = serrors.APIKeyEnv
)

const (
	DefaultMaxTokens   uint32  = 150
	DefaultTemperature float32 = 0.3
	MinTemperature     float32 = 0.0
	MaxTemperature     float32 = 2.0
)

// DefaultConfig returns the built-in settings with no API key.
func DefaultConfig() *Config {
	return &Config{
		APIKey:      "",
		Model:       DefaultModel,
		MaxTokens:   DefaultMaxTokens,
		Temperature: DefaultTemperature,
	}
}

// NewFromEnv returns the defaults with the API key taken from the
// environment. It fails with a MissingAPIKey error when the key is unset.
func NewFromEnv(getenv func(string) string) (*Config, error) {
	key := getenv(APIKeyEnv)
	if key == "" {
		return nil, serrors.MissingAPIKey()
	}
	cfg := DefaultConfig()
	cfg.APIKey = key
	return cfg, nil
}
