package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	yamlv3 "gopkg.in/yaml.v3"
)

// legacyEnv maps the environment variable names of earlier deployments
// onto config keys. They are applied last so hosting platforms that set
// PORT keep working.
var legacyEnv = map[string]string{
	"OPENROUTER_API_KEY": "upstream.api_key",
	"PORT":               "server.port",
	"ADMIN_KEY":          "admin_key",
}

// Load reads configuration from the given YAML file, then overlays
// environment variable overrides (EDUBOT_*, with "__" separating nested
// keys) and finally the legacy variables in legacyEnv.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	// Start from defaults.
	cfg := DefaultConfig()

	// Load YAML file if it exists.
	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("accessing config %s: %w", path, err)
	}

	// EDUBOT_SERVER__PORT -> server.port, EDUBOT_ADMIN_KEY -> admin_key.
	if err := k.Load(env.Provider("EDUBOT_", ".", func(s string) string {
		key := strings.ToLower(strings.TrimPrefix(s, "EDUBOT_"))
		return strings.ReplaceAll(key, "__", ".")
	}), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	if err := k.Load(env.ProviderWithValue("", ".", func(key, value string) (string, interface{}) {
		if value == "" {
			return "", nil
		}
		return legacyEnv[key], value
	}), nil); err != nil {
		return nil, fmt.Errorf("loading legacy env: %w", err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	return cfg, nil
}

// Save writes the configuration to the given YAML file path.
// Secrets are written only if they are set on c.
func (c *Config) Save(path string) error {
	data, err := yamlv3.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}
	return nil
}

var validLogLevels = map[string]bool{
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

// Validate checks that the configuration contains valid values.
// A missing API key is not an error: the relay still answers with its
// fallback text.
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server.port %d", c.Server.Port)
	}

	if c.Upstream.URL == "" {
		return fmt.Errorf("upstream.url is required")
	}
	u, err := url.Parse(c.Upstream.URL)
	if err != nil {
		return fmt.Errorf("invalid upstream.url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("invalid upstream.url %q: scheme must be http or https", c.Upstream.URL)
	}
	if c.Upstream.TimeoutSeconds <= 0 {
		return fmt.Errorf("upstream.timeout_seconds must be positive")
	}

	if c.Primary.ID == "" {
		return fmt.Errorf("primary.id is required")
	}
	if c.Secondary.ID == "" {
		return fmt.Errorf("secondary.id is required")
	}

	if c.Sampling.Temperature < 0 || c.Sampling.Temperature > 2 {
		return fmt.Errorf("sampling.temperature must be between 0 and 2")
	}
	if c.Sampling.MaxTokens <= 0 {
		return fmt.Errorf("sampling.max_tokens must be positive")
	}
	if c.Sampling.TopP < 0 || c.Sampling.TopP > 1 {
		return fmt.Errorf("sampling.top_p must be between 0 and 1")
	}
	if c.Sampling.TopK < 0 {
		return fmt.Errorf("sampling.top_k must be non-negative")
	}

	if c.DataDir == "" {
		return fmt.Errorf("data_dir is required")
	}

	if c.Log.Level != "" && !validLogLevels[strings.ToLower(c.Log.Level)] {
		return fmt.Errorf("invalid log.level %q: must be one of debug, info, warn, error", c.Log.Level)
	}

	return nil
}

// Timeout bounds the wait for an upstream response.
func (c *Config) Timeout() time.Duration {
	return time.Duration(c.Upstream.TimeoutSeconds) * time.Second
}

// DBPath is the sqlite file holding feedback submissions.
func (c *Config) DBPath() string {
	return filepath.Join(c.DataDir, "edubot.db")
}

// APIKeyEnvVar is the conventional environment variable for the upstream credential.
const APIKeyEnvVar = "OPENROUTER_API_KEY"
