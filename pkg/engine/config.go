package engine

import (
	"fmt"
	"os"
	"time"

	"github.com/armandmorin/wp-autoplugin/pkg/providers/openai"
	"gopkg.in/yaml.v3"
)

// Environment variables consulted when the config leaves a value empty.
const (
	EnvAPIKey = "OPENAI_API_KEY"
	EnvModel  = "OPENAI_MODEL"
)

// DefaultModel is used when neither the config nor the environment names one.
const DefaultModel = "gpt-4o"

// Config is the top-level configuration.
type Config struct {
	APIKey        string          `yaml:"api_key"` //nolint:gosec // configuration field, not a hardcoded secret
	Model         string          `yaml:"model"`
	BaseURL       string          `yaml:"base_url"`
	Timeout       string          `yaml:"timeout"` // Request timeout as a duration string (e.g. "60s").
	SystemMessage string          `yaml:"system_message"`
	Overrides     OverridesConfig `yaml:"overrides"`
}

// OverridesConfig holds request fields that replace the client defaults on
// the first request of every prompt.
type OverridesConfig struct {
	Model          string   `yaml:"model"`
	Temperature    *float64 `yaml:"temperature"`
	MaxTokens      *int     `yaml:"max_tokens"`
	ResponseFormat string   `yaml:"response_format"` // "text" or "json_object".
}

// Default returns the configuration used when no file is given. Model is
// left empty so ApplyEnv can still consult the environment.
func Default() Config {
	return Config{}
}

// LoadConfig reads a YAML file and returns a Config.
// Environment variables referenced as ${VAR} or $VAR in the YAML are expanded
// before parsing, so the API key can live in the environment (e.g. loaded
// from a .env file) rather than in the config.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is caller-provided configuration, not user input
	if err != nil {
		return Config{}, fmt.Errorf("engine: load config: %w", err)
	}

	expanded := os.ExpandEnv(string(data))

	cfg := Default()
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return Config{}, fmt.Errorf("engine: parse config: %w", err)
	}

	return cfg, nil
}

// ApplyEnv fills empty APIKey and Model from OPENAI_API_KEY and OPENAI_MODEL,
// falling back to DefaultModel.
func (c *Config) ApplyEnv() {
	if c.APIKey == "" {
		c.APIKey = os.Getenv(EnvAPIKey)
	}
	if c.Model == "" {
		c.Model = os.Getenv(EnvModel)
	}
	if c.Model == "" {
		c.Model = DefaultModel
	}
}

// TimeoutDuration parses Timeout. Zero means the client default.
func (c Config) TimeoutDuration() (time.Duration, error) {
	if c.Timeout == "" {
		return 0, nil
	}

	d, err := time.ParseDuration(c.Timeout)
	if err != nil {
		return 0, fmt.Errorf("engine: config: timeout: %w", err)
	}

	return d, nil
}

// Validate checks that the configuration is internally consistent.
func (c Config) Validate() error {
	if c.APIKey == "" {
		return fmt.Errorf("engine: config: api_key is required (or set %s)", EnvAPIKey)
	}
	if c.Model == "" {
		return fmt.Errorf("engine: config: model is required")
	}

	d, err := c.TimeoutDuration()
	if err != nil {
		return err
	}
	if d < 0 {
		return fmt.Errorf("engine: config: timeout must not be negative")
	}

	o := c.Overrides
	if o.Temperature != nil && (*o.Temperature < 0 || *o.Temperature > 2) {
		return fmt.Errorf("engine: config: overrides.temperature must be between 0 and 2")
	}
	if o.MaxTokens != nil && *o.MaxTokens <= 0 {
		return fmt.Errorf("engine: config: overrides.max_tokens must be positive")
	}
	switch o.ResponseFormat {
	case "", "text", "json_object":
	default:
		return fmt.Errorf("engine: config: unknown overrides.response_format %q", o.ResponseFormat)
	}

	return nil
}

// RequestOverrides converts the overrides block for the client. It returns
// nil when nothing is overridden.
func (c Config) RequestOverrides() *openai.Overrides {
	o := &openai.Overrides{
		Temperature: c.Overrides.Temperature,
		MaxTokens:   c.Overrides.MaxTokens,
	}
	if c.Overrides.Model != "" {
		o.Model = openai.Ptr(c.Overrides.Model)
	}
	if c.Overrides.ResponseFormat != "" {
		o.ResponseFormat = &openai.ResponseFormat{Type: c.Overrides.ResponseFormat}
	}

	if o.IsZero() {
		return nil
	}

	return o
}
