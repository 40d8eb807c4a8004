package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate points DOTENV_PATH at a missing file and clears variables a
// developer machine might export.
func isolate(t *testing.T) {
	t.Helper()
	t.Setenv("DOTENV_PATH", filepath.Join(t.TempDir(), "absent.env"))
	for _, key := range []string{"CONFIG_FILE", "OPENAI_API_KEY", "LLM_BACKEND", "LISTEN_ADDR", "LLM_TIMEOUT", "CORS_ORIGINS", "METRICS_ENABLED", "STORE_BACKEND"} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
}

func TestLoad(t *testing.T) {
	isolate(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":8000", cfg.ListenAddr)
	assert.Equal(t, "openai", cfg.LLMBackend)
	assert.Empty(t, cfg.OpenAIAPIKey)
	assert.Equal(t, "memory", cfg.StoreBackend)
	assert.Equal(t, 60*time.Second, cfg.LLMTimeout)
	assert.Equal(t, []string{"*"}, cfg.CORSOrigins)
	assert.True(t, cfg.MetricsEnabled)
}

func TestLoadCustomValues(t *testing.T) {
	isolate(t)
	t.Setenv("LISTEN_ADDR", ":9000")
	t.Setenv("LLM_BACKEND", "Claude")
	t.Setenv("OPENAI_API_KEY", "sk-test123")
	t.Setenv("LLM_TIMEOUT", "15s")
	t.Setenv("CORS_ORIGINS", "http://localhost:3000, http://localhost:5173")
	t.Setenv("METRICS_ENABLED", "false")
	t.Setenv("STORE_BACKEND", "sqlite")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":9000", cfg.ListenAddr)
	assert.Equal(t, "claude", cfg.LLMBackend)
	assert.Equal(t, "sk-test123", cfg.OpenAIAPIKey)
	assert.Equal(t, 15*time.Second, cfg.LLMTimeout)
	assert.Equal(t, []string{"http://localhost:3000", "http://localhost:5173"}, cfg.CORSOrigins)
	assert.False(t, cfg.MetricsEnabled)
	assert.Equal(t, "sqlite", cfg.StoreBackend)
}

func TestLoadInvalidValues(t *testing.T) {
	isolate(t)
	t.Setenv("LLM_TIMEOUT", "soon")
	_, err := Load()
	assert.Error(t, err)

	isolate(t)
	t.Setenv("METRICS_ENABLED", "maybe")
	_, err = Load()
	assert.Error(t, err)
}

func TestLoadYAMLOverlay(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "pantrychef.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
listen_addr: ":7000"
llm_backend: ollama
ollama_model: mistral
llm_timeout: 5s
cors_origins:
  - http://example.test
`), 0600))
	t.Setenv("CONFIG_FILE", path)
	t.Setenv("OLLAMA_MODEL", "llama3.2")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":7000", cfg.ListenAddr)
	assert.Equal(t, "ollama", cfg.LLMBackend)
	// Environment wins over the file.
	assert.Equal(t, "llama3.2", cfg.OllamaModel)
	assert.Equal(t, 5*time.Second, cfg.LLMTimeout)
	assert.Equal(t, []string{"http://example.test"}, cfg.CORSOrigins)
}

func TestLoadDotEnv(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("OPENAI_API_KEY=sk-from-dotenv\n"), 0600))
	t.Setenv("DOTENV_PATH", path)
	t.Cleanup(func() { _ = os.Unsetenv("OPENAI_API_KEY") })

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "sk-from-dotenv", cfg.OpenAIAPIKey)
}

func TestLoadMissingConfigFile(t *testing.T) {
	isolate(t)
	t.Setenv("CONFIG_FILE", filepath.Join(t.TempDir(), "nope.yaml"))

	_, err := Load()
	assert.Error(t, err)
}
