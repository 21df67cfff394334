package cmd

import (
	"fmt"

	"github.com/ziadkadry99/edubot/internal/config"
	"github.com/ziadkadry99/edubot/internal/llm"
)

// loadConfig loads and validates the config, providing a user-friendly error.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w\nRun `edubot init` to create a config file", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", cfgFile, err)
	}
	return cfg, nil
}

// gatewayConfigFrom maps the loaded config onto the upstream gateway settings.
func gatewayConfigFrom(cfg *config.Config) llm.GatewayConfig {
	return llm.GatewayConfig{
		URL:     cfg.Upstream.URL,
		APIKey:  cfg.Upstream.APIKey,
		Referer: cfg.Upstream.Referer,
		Title:   cfg.Upstream.Title,
		Timeout: cfg.Timeout(),
		Sampling: llm.Sampling{
			Temperature: cfg.Sampling.Temperature,
			MaxTokens:   cfg.Sampling.MaxTokens,
			TopP:        cfg.Sampling.TopP,
			TopK:        cfg.Sampling.TopK,
		},
		Primary:   llm.Target{ID: cfg.Primary.ID, Name: cfg.Primary.Name},
		Secondary: llm.Target{ID: cfg.Secondary.ID, Name: cfg.Secondary.Name},
	}
}

// requireAPIKey fails commands that cannot work without an upstream credential.
func requireAPIKey(cfg *config.Config) error {
	if cfg.Upstream.APIKey == "" {
		return fmt.Errorf("no upstream API key: set %s or upstream.api_key in %s", config.APIKeyEnvVar, cfgFile)
	}
	return nil
}
