package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "gpt-4o", cfg.LLM.Model)
	assert.Equal(t, "https://api.openai.com/v1/chat/completions", cfg.LLM.BaseURL)
	assert.Equal(t, 144, cfg.Pipeline.RenderDPI)
	assert.Equal(t, 4, cfg.Pipeline.Workers)
	assert.True(t, cfg.Orientation.Enabled)
	assert.Equal(t, float64(5), cfg.Orientation.ConfidenceThreshold)
}

func TestLoad_YAMLFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	yaml := `
llm:
  model: gpt-4o-mini
  request_timeout: 90s
fetch:
  timeout: 10s
pipeline:
  workers: 2
orientation:
  enabled: false
`
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "gpt-4o-mini", cfg.LLM.Model)
	assert.Equal(t, 90*time.Second, cfg.LLM.RequestTimeout)
	assert.Equal(t, 10*time.Second, cfg.Fetch.Timeout)
	assert.Equal(t, 2, cfg.Pipeline.Workers)
	assert.False(t, cfg.Orientation.Enabled)
	// untouched defaults survive
	assert.Equal(t, 144, cfg.Pipeline.RenderDPI)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "sk-test")
	t.Setenv("LLM_MODEL", "gpt-4.1")
	t.Setenv("SERVER_PORT", "9999")
	t.Setenv("ORIENTATION_ENABLED", "false")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "sk-test", cfg.LLM.APIKey)
	assert.Equal(t, "gpt-4.1", cfg.LLM.Model)
	assert.Equal(t, 9999, cfg.Server.Port)
	assert.False(t, cfg.Orientation.Enabled)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load("/nonexistent/config.yaml")
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"bad port", func(c *Config) { c.Server.Port = 0 }},
		{"empty base url", func(c *Config) { c.LLM.BaseURL = "" }},
		{"empty model", func(c *Config) { c.LLM.Model = "" }},
		{"zero workers", func(c *Config) { c.Pipeline.Workers = 0 }},
		{"dpi too low", func(c *Config) { c.Pipeline.RenderDPI = 10 }},
		{"negative threshold", func(c *Config) { c.Orientation.ConfidenceThreshold = -1 }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}
