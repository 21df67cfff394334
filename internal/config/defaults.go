package config

// DefaultConfigFile is the config path used when --config is not given.
const DefaultConfigFile = ".edubot.yml"

// DefaultUpstreamURL is the OpenRouter chat completions endpoint.
const DefaultUpstreamURL = "https://openrouter.ai/api/v1/chat/completions"

// Models served out of the box. The display names are what the frontend
// has always shown and do not match the ids.
var (
	DefaultPrimary = ModelTarget{
		ID:   "meta-llama/llama-3.1-8b-instruct:free",
		Name: "Llama 3.1 405B Instruct",
	}
	DefaultSecondary = ModelTarget{
		ID:   "google/gemma-2-9b-it:free",
		Name: "Gemma 3 4B",
	}
)

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port:     8080,
			AllowAll: true,
		},
		Upstream: UpstreamConfig{
			URL:            DefaultUpstreamURL,
			Referer:        "https://your-website.com",
			Title:          "Educational Chatbot",
			TimeoutSeconds: 60,
		},
		Primary:   DefaultPrimary,
		Secondary: DefaultSecondary,
		Sampling: SamplingConfig{
			Temperature: 0.3,
			MaxTokens:   512,
		},
		DataDir: "data",
		Log: LogConfig{
			Level: "info",
		},
	}
}
