package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// EnvOverrides carries the environment variables recognized by the tool.
// Environment values take precedence over values from the config file.
type EnvOverrides struct {
	GoogleAPIKey string `env:"GOOGLE_API_KEY"`
	OpenAIAPIKey string `env:"OPENAI_API_KEY"`
	ClaudeAPIKey string `env:"CLAUDE_API_KEY"`
	RefreshCaps  *bool  `env:"REFRESH_CAPS"`
	EnableProbes *bool  `env:"ENABLE_OPENAI_PROBES"`
}

// LoadEnvOverrides reads a .env file from the working directory when one
// exists, then parses the recognized environment variables. A missing .env
// file is not an error.
func LoadEnvOverrides() (EnvOverrides, error) {
	_ = godotenv.Load()

	var overrides EnvOverrides
	if err := env.Parse(&overrides); err != nil {
		return EnvOverrides{}, fmt.Errorf("failed to parse environment variables: %w", err)
	}

	return overrides, nil
}

// Apply merges the overrides into cfg. Unset variables leave the existing
// values untouched.
func (o EnvOverrides) Apply(cfg *Config) {
	if o.GoogleAPIKey != "" {
		cfg.Providers.Google.APIKey = o.GoogleAPIKey
	}
	if o.OpenAIAPIKey != "" {
		cfg.Providers.OpenAI.APIKey = o.OpenAIAPIKey
	}
	if o.ClaudeAPIKey != "" {
		cfg.Providers.Anthropic.APIKey = o.ClaudeAPIKey
	}
	if o.RefreshCaps != nil {
		cfg.Sync.RefreshCaps = *o.RefreshCaps
	}
	if o.EnableProbes != nil {
		cfg.Sync.EnableProbes = *o.EnableProbes
	}
}
