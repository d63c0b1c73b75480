package config

// ProviderCredentials holds the API credential for a single provider
type ProviderCredentials struct {
	APIKey string `yaml:"api_key,omitempty"`
}

// ProvidersConfig groups the credentials for the managed providers
type ProvidersConfig struct {
	Google    ProviderCredentials `yaml:"google"`
	OpenAI    ProviderCredentials `yaml:"openai"`
	Anthropic ProviderCredentials `yaml:"anthropic"`
}

// CatalogConfig represents the catalog file configuration.
// An empty path means the default location under the application
// data directory is used.
type CatalogConfig struct {
	Path string `yaml:"path,omitempty"`
}

// SyncConfig represents the sync behaviour configuration
type SyncConfig struct {
	RefreshCaps    bool `yaml:"refresh_caps"`
	EnableProbes   bool `yaml:"enable_probes"`
	TimeoutSeconds int  `yaml:"timeout_seconds,omitempty"`
}

// WebServerConfig represents the HTTP API configuration
type WebServerConfig struct {
	Port int `yaml:"port,omitempty"`
}

// UsageTracking represents the anonymous usage tracking configuration
type UsageTracking struct {
	Enabled bool `yaml:"enabled"`
}

// Config represents the main configuration
type Config struct {
	Providers     ProvidersConfig `yaml:"providers"`
	Catalog       CatalogConfig   `yaml:"catalog"`
	Sync          SyncConfig      `yaml:"sync"`
	WebServer     WebServerConfig `yaml:"webserver"`
	UsageTracking UsageTracking   `yaml:"usage_tracking"`
}

// Default values applied when the configuration file is missing or silent
const (
	DefaultWebServerPort  = 10333
	DefaultTimeoutSeconds = 30
)

// Default returns a configuration populated with default values
func (c *Config) Default() Config {
	return Config{
		Sync: SyncConfig{
			RefreshCaps:    false,
			EnableProbes:   false,
			TimeoutSeconds: DefaultTimeoutSeconds,
		},
		WebServer: WebServerConfig{
			Port: DefaultWebServerPort,
		},
		UsageTracking: UsageTracking{
			Enabled: false,
		},
	}
}

// ProviderAPIKey returns the configured API key for a managed provider id,
// or an empty string when the provider is unknown or has no key.
func (c *Config) ProviderAPIKey(providerID string) string {
	switch providerID {
	case "google":
		return c.Providers.Google.APIKey
	case "openai":
		return c.Providers.OpenAI.APIKey
	case "anthropic":
		return c.Providers.Anthropic.APIKey
	default:
		return ""
	}
}

// SetProviderAPIKey stores the API key for a managed provider id. Unknown
// ids are ignored.
func (c *Config) SetProviderAPIKey(providerID, key string) {
	switch providerID {
	case "google":
		c.Providers.Google.APIKey = key
	case "openai":
		c.Providers.OpenAI.APIKey = key
	case "anthropic":
		c.Providers.Anthropic.APIKey = key
	}
}
