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

	assert.Equal(t, "info", cfg.Log.Level)
	assert.True(t, cfg.Log.Console)
	assert.Equal(t, "claude-3-5-sonnet-20241022", cfg.Model.Name)
	assert.Equal(t, 4000, cfg.Model.MaxTokens)
	assert.InDelta(t, 0.7, cfg.Model.Temperature, 1e-9)
	assert.True(t, cfg.Cache.Enabled)
	assert.Equal(t, "./templates", cfg.Templates.Dir)

	ttl, err := cfg.CacheTTL()
	require.NoError(t, err)
	assert.Equal(t, time.Hour, ttl)

	timeout, err := cfg.RequestTimeout()
	require.NoError(t, err)
	assert.Equal(t, 2*time.Minute, timeout)
}

func TestLoad_TOMLFileOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "conceptsvc.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[model]
name = "claude-3-opus-20240229"
max_tokens = 2000

[cache]
enabled = false
ttl = "30m"
`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "claude-3-opus-20240229", cfg.Model.Name)
	assert.Equal(t, 2000, cfg.Model.MaxTokens)
	assert.False(t, cfg.Cache.Enabled)

	ttl, err := cfg.CacheTTL()
	require.NoError(t, err)
	assert.Equal(t, 30*time.Minute, ttl)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	t.Setenv("CONCEPTS_MODEL_API_KEY", "sk-test")
	t.Setenv("CONCEPTS_LOG_LEVEL", "debug")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "sk-test", cfg.Model.APIKey)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestValidate_RequiresAPIKey(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	err = Validate(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "api_key")

	cfg.Model.APIKey = "sk-test"
	assert.NoError(t, Validate(cfg))
}

func TestValidate_RejectsBadDurations(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	cfg.Model.APIKey = "sk-test"

	cfg.Cache.TTL = "soon"
	assert.Error(t, Validate(cfg))

	cfg.Cache.TTL = "-5m"
	assert.Error(t, Validate(cfg))
}
