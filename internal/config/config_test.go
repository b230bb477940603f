package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"DONATE_API_URL", "DONATE_ENVIRONMENT", "DONATE_TOKEN_STORE", "DONATE_TOKEN_PATH",
		"DONATE_HTTP_TIMEOUT", "DONATE_DEBUG", "DONATE_MOCK_ADDR", "DONATE_MOCK_PREFIX",
	} {
		t.Setenv(k, "") // restores the original value after the test
		_ = os.Unsetenv(k)
	}
}

func TestConfigLoad_Defaults(t *testing.T) {
	clearEnv(t)
	home := t.TempDir()
	t.Setenv("HELPINGHANDS_HOME", home)

	cfg, err := New()
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:5000/api", cfg.APIURL)
	assert.Equal(t, EnvProduction, cfg.Environment)
	assert.True(t, cfg.IsProduction())
	assert.False(t, cfg.IsDevelopment())
	assert.Equal(t, "file", cfg.TokenStore)
	assert.Equal(t, filepath.Join(home, "session.json"), cfg.TokenPath)
	assert.Equal(t, time.Duration(0), cfg.HTTPTimeout)
	assert.Equal(t, ":5000", cfg.MockAddr)
	assert.Equal(t, "/api", cfg.MockPrefix)
}

func TestConfigLoad_EnvOverride(t *testing.T) {
	clearEnv(t)
	home := t.TempDir()
	t.Setenv("HELPINGHANDS_HOME", home)
	t.Setenv("DONATE_API_URL", "https://api.example.org/api")
	t.Setenv("DONATE_ENVIRONMENT", "development")
	t.Setenv("DONATE_TOKEN_STORE", "sqlite")
	t.Setenv("DONATE_HTTP_TIMEOUT", "15s")
	t.Setenv("DONATE_MOCK_PREFIX", "v1/")

	cfg, err := New()
	require.NoError(t, err)
	assert.Equal(t, "https://api.example.org/api", cfg.APIURL)
	assert.True(t, cfg.IsDevelopment())
	assert.Equal(t, filepath.Join(home, "session.db"), cfg.TokenPath)
	assert.Equal(t, 15*time.Second, cfg.HTTPTimeout)
	assert.Equal(t, "/v1", cfg.MockPrefix)
}

func TestConfigLoad_ExplicitTokenPathKept(t *testing.T) {
	clearEnv(t)
	t.Setenv("DONATE_TOKEN_PATH", "/tmp/custom.json")
	cfg, err := New()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/custom.json", cfg.TokenPath)
}

func TestResolveDefaults_Rejects(t *testing.T) {
	cfg := NewForTesting()
	cfg.Environment = "staging"
	assert.Error(t, cfg.ResolveDefaults())

	cfg = NewForTesting()
	cfg.TokenStore = "redis"
	assert.Error(t, cfg.ResolveDefaults())

	cfg = NewForTesting()
	cfg.HTTPTimeout = -time.Second
	assert.Error(t, cfg.ResolveDefaults())
}

func TestNewForTesting(t *testing.T) {
	cfg := NewForTesting()
	require.NoError(t, cfg.ResolveDefaults())
	assert.Equal(t, EnvTesting, cfg.Environment)
	assert.Empty(t, cfg.TokenPath)
	assert.False(t, cfg.IsDevelopment())
	assert.False(t, cfg.IsProduction())
}
