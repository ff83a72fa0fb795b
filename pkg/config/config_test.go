package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Chdir(t.TempDir())
	// empty variables count as unset
	for _, k := range []string{"PORT", "OPENAI_MODEL", "GENERATION_TIMEOUT", "STORAGE_DRIVER"} {
		t.Setenv(k, "")
	}

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.Addr())
	assert.Equal(t, "gpt-3.5-turbo", cfg.OpenAI.Model)
	assert.Equal(t, 30*time.Second, cfg.Generation.Timeout)
	assert.Equal(t, int64(2000), cfg.Generation.MaxTokens)
	assert.InDelta(t, 0.8, cfg.Generation.Temperature, 1e-9)
	assert.Equal(t, uint(1), cfg.Generation.Attempts)
	assert.Equal(t, DriverFile, cfg.Storage.Driver)
	assert.Equal(t, 2*time.Hour, cfg.Session.IdleTTL)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("PORT", "9090")
	t.Setenv("OPENAI_API_KEY", "sk-test")
	t.Setenv("OPENAI_MODEL", "gpt-4o-mini")
	t.Setenv("GROK_API_KEY", "xai-test")
	t.Setenv("GENERATION_TIMEOUT", "45s")
	t.Setenv("STORAGE_DRIVER", "sqlite")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, ":9090", cfg.Addr())
	assert.Equal(t, "sk-test", cfg.OpenAI.APIKey)
	assert.Equal(t, "gpt-4o-mini", cfg.OpenAI.Model)
	assert.Equal(t, "xai-test", cfg.Grok.APIKey)
	assert.Equal(t, 45*time.Second, cfg.Generation.Timeout)
	assert.Equal(t, DriverSQLite, cfg.Storage.Driver)
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "velora.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
llm:
  provider: gemini
gemini:
  api_key: g-key
generation:
  attempts: 3
  retry_delay: 250ms
storage:
  path: /var/lib/velora
`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "gemini", cfg.LLM.Provider)
	assert.Equal(t, "g-key", cfg.Gemini.APIKey)
	assert.Equal(t, uint(3), cfg.Generation.Attempts)
	assert.Equal(t, 250*time.Millisecond, cfg.Generation.RetryDelay)
	assert.Equal(t, "/var/lib/velora", cfg.Storage.Path)
	assert.Equal(t, "gpt-3.5-turbo", cfg.OpenAI.Model)
}

func TestLoadMissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("STORAGE_DRIVER", "postgres")
	_, err := Load("")
	assert.ErrorIs(t, err, ErrInvalid)

	t.Setenv("STORAGE_DRIVER", "file")
	t.Setenv("GENERATION_ATTEMPTS", "0")
	_, err = Load("")
	assert.ErrorIs(t, err, ErrInvalid)
}

func TestLoadZeroTemperature(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("GENERATION_TEMPERATURE", "0")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Zero(t, cfg.Generation.Temperature)
}
