package config

// Config represents the entire user configuration file.
type Config struct {
	Version int `yaml:"version"`

	// Token is the Hugging Face API token used for inference requests.
	// The documented placeholder value is treated as "not configured".
	Token string `yaml:"token,omitempty"`

	// Endpoint overrides the default inference endpoint URL. Leave empty
	// to use the built-in default model route.
	Endpoint string `yaml:"endpoint,omitempty"`
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Version: 1,
	}
}

// HasToken reports whether the config carries a usable token (present and
// not the documented placeholder).
func (c *Config) HasToken() bool {
	return c.Token != "" && c.Token != TokenPlaceholder
}
