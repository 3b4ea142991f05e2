// Package config builds the process configuration from defaults, an
// optional codelens.yaml, and environment variables. The result is an
// explicit struct handed to services at startup; core logic never reads
// the environment.
package config

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"

	"github.com/codelens/codelens/internal/domain"
)

// Environment variable names. The provider credentials keep the names
// the external services document.
const (
	envOpenRouterKey   = "OPENROUTER_API_KEY"
	envOpenRouterModel = "OPENROUTER_MODEL"
	envGoogleKey       = "GOOGLE_API_KEY"
	envGoogleModel     = "GOOGLE_MODEL"
)

// Load reads configuration from configPath (or codelens.yaml in the
// working directory when empty) and the environment. A missing file is
// not an error; environment values win over file values.
func Load(configPath string) (domain.Config, error) {
	cfg := domain.DefaultConfig()

	v := viper.New()
	v.SetConfigType("yaml")

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("codelens")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.codelens")
	}

	// Registering defaults makes every key visible to Unmarshal even
	// when it comes only from the environment.
	v.SetDefault("server.addr", cfg.Server.Addr)
	v.SetDefault("server.allowed_origins", cfg.Server.AllowedOrigins)
	v.SetDefault("providers.request_timeout", cfg.Providers.RequestTimeout)
	v.SetDefault("providers.combined_deadline", cfg.Providers.CombinedDeadline)
	v.SetDefault("providers.openrouter.model", cfg.Providers.OpenRouter.Model)
	v.SetDefault("providers.openrouter.base_url", cfg.Providers.OpenRouter.BaseURL)
	v.SetDefault("providers.google.model", cfg.Providers.Google.Model)
	v.SetDefault("providers.google.base_url", cfg.Providers.Google.BaseURL)

	bindings := map[string]string{
		"providers.openrouter.api_key": envOpenRouterKey,
		"providers.openrouter.model":   envOpenRouterModel,
		"providers.google.api_key":     envGoogleKey,
		"providers.google.model":       envGoogleModel,
		"server.addr":                  "CODELENS_ADDR",
	}
	for key, env := range bindings {
		if err := v.BindEnv(key, env); err != nil {
			return domain.Config{}, fmt.Errorf("binding %s: %w", env, err)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return domain.Config{}, fmt.Errorf("reading config file: %w", err)
		}
	}

	if err := v.Unmarshal(&cfg); err != nil {
		return domain.Config{}, fmt.Errorf("unmarshaling config: %w", err)
	}

	return cfg, nil
}
