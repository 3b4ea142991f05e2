package domain

import "time"

// Config is the process configuration, constructed once at startup and
// passed into services. Core logic never reads the environment directly.
type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Providers ProvidersConfig `mapstructure:"providers"`
}

// ServerConfig configures the HTTP API adapter.
type ServerConfig struct {
	Addr           string   `mapstructure:"addr"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// ProvidersConfig configures the AI fallback orchestrator and its two
// provider clients.
type ProvidersConfig struct {
	OpenRouter ProviderConfig `mapstructure:"openrouter"`
	Google     ProviderConfig `mapstructure:"google"`

	// RequestTimeout bounds each individual provider call.
	RequestTimeout time.Duration `mapstructure:"request_timeout"`

	// CombinedDeadline bounds the total wait across all racing calls.
	CombinedDeadline time.Duration `mapstructure:"combined_deadline"`
}

// ProviderConfig holds one provider's credential, model identifier and
// API base URL.
type ProviderConfig struct {
	APIKey  string `mapstructure:"api_key"`
	Model   string `mapstructure:"model"`
	BaseURL string `mapstructure:"base_url"`
}

// Configured reports whether a credential is present.
func (p ProviderConfig) Configured() bool { return p.APIKey != "" }

// DefaultConfig returns the defaults applied underneath environment and
// file overrides.
func DefaultConfig() Config {
	return Config{
		Server: ServerConfig{
			Addr: "127.0.0.1:8000",
			AllowedOrigins: []string{
				"http://localhost:8080",
				"http://127.0.0.1:8080",
				"http://localhost:5173",
				"http://127.0.0.1:5173",
			},
		},
		Providers: ProvidersConfig{
			OpenRouter: ProviderConfig{
				Model:   "google/gemini-2.0-flash-exp:free",
				BaseURL: "https://openrouter.ai/api/v1",
			},
			Google: ProviderConfig{
				Model:   "gemini-1.5-flash",
				BaseURL: "https://generativelanguage.googleapis.com/v1beta",
			},
			RequestTimeout:   15 * time.Second,
			CombinedDeadline: 20 * time.Second,
		},
	}
}
