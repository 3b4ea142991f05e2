package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codelens/codelens/internal/adapters/outbound/config"
)

func TestLoad_Defaults(t *testing.T) {
	// No config file in the package directory, so the search comes up
	// empty and only defaults apply.
	cfg, err := config.Load("")
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:8000", cfg.Server.Addr)
	assert.Equal(t, "google/gemini-2.0-flash-exp:free", cfg.Providers.OpenRouter.Model)
	assert.Equal(t, "gemini-1.5-flash", cfg.Providers.Google.Model)
	assert.Equal(t, 15*time.Second, cfg.Providers.RequestTimeout)
	assert.Equal(t, 20*time.Second, cfg.Providers.CombinedDeadline)
	assert.False(t, cfg.Providers.OpenRouter.Configured())
	assert.False(t, cfg.Providers.Google.Configured())
}

func TestLoad_FileOverrides(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "codelens.yaml")
	content := `
server:
  addr: "0.0.0.0:9000"
providers:
  request_timeout: 5s
  openrouter:
    model: "custom/model"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0:9000", cfg.Server.Addr)
	assert.Equal(t, 5*time.Second, cfg.Providers.RequestTimeout)
	assert.Equal(t, "custom/model", cfg.Providers.OpenRouter.Model)
	// Untouched keys keep their defaults.
	assert.Equal(t, "gemini-1.5-flash", cfg.Providers.Google.Model)
}

func TestLoad_EnvironmentWins(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "codelens.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server:\n  addr: \"1.2.3.4:80\"\n"), 0o644))

	t.Setenv("OPENROUTER_API_KEY", "sk-test")
	t.Setenv("GOOGLE_API_KEY", "g-test")
	t.Setenv("GOOGLE_MODEL", "gemini-pro")
	t.Setenv("CODELENS_ADDR", "127.0.0.1:7777")

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, "sk-test", cfg.Providers.OpenRouter.APIKey)
	assert.True(t, cfg.Providers.OpenRouter.Configured())
	assert.Equal(t, "g-test", cfg.Providers.Google.APIKey)
	assert.Equal(t, "gemini-pro", cfg.Providers.Google.Model)
	assert.Equal(t, "127.0.0.1:7777", cfg.Server.Addr)
}

func TestLoad_MalformedFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "codelens.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server: [unclosed"), 0o644))

	_, err := config.Load(path)
	assert.Error(t, err)
}
