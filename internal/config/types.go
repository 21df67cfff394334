package config

// Config is the top-level edubot configuration, corresponding to .edubot.yml.
type Config struct {
	Server    ServerConfig   `yaml:"server" koanf:"server"`
	Upstream  UpstreamConfig `yaml:"upstream" koanf:"upstream"`
	Primary   ModelTarget    `yaml:"primary" koanf:"primary"`
	Secondary ModelTarget    `yaml:"secondary" koanf:"secondary"`
	Sampling  SamplingConfig `yaml:"sampling" koanf:"sampling"`
	AdminKey  string         `yaml:"admin_key,omitempty" koanf:"admin_key"`
	DataDir   string         `yaml:"data_dir" koanf:"data_dir"`
	Log       LogConfig      `yaml:"log" koanf:"log"`
}

// ServerConfig controls the HTTP listener and CORS.
type ServerConfig struct {
	Port           int      `yaml:"port" koanf:"port"`
	AllowAll       bool     `yaml:"allow_all_origins" koanf:"allow_all_origins"`
	AllowedOrigins []string `yaml:"allowed_origins,omitempty" koanf:"allowed_origins"`
}

// UpstreamConfig describes the OpenAI-compatible chat completions endpoint.
type UpstreamConfig struct {
	URL            string `yaml:"url" koanf:"url"`
	APIKey         string `yaml:"api_key,omitempty" koanf:"api_key"`
	Referer        string `yaml:"referer" koanf:"referer"`
	Title          string `yaml:"title" koanf:"title"`
	TimeoutSeconds int    `yaml:"timeout_seconds" koanf:"timeout_seconds"`
}

// ModelTarget is one model the relay can call. ID goes on the wire,
// Name is what /health and /model-info report.
type ModelTarget struct {
	ID   string `yaml:"id" koanf:"id"`
	Name string `yaml:"name" koanf:"name"`
}

// SamplingConfig holds the default generation parameters. A zero TopP or
// TopK is left out of the upstream request.
type SamplingConfig struct {
	Temperature float64 `yaml:"temperature" koanf:"temperature"`
	MaxTokens   int     `yaml:"max_tokens" koanf:"max_tokens"`
	TopP        float64 `yaml:"top_p,omitempty" koanf:"top_p"`
	TopK        int     `yaml:"top_k,omitempty" koanf:"top_k"`
}

// LogConfig controls the process logger.
type LogConfig struct {
	Level   string `yaml:"level" koanf:"level"`
	NoColor bool   `yaml:"no_color" koanf:"no_color"`
}
