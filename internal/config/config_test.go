package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"PORT", "SUPERAGENT_PACE", "SUPERAGENT_MAX_SESSIONS",
		"SUPERAGENT_LOG_LEVEL", "SUPERAGENT_LOG_FORMAT", "SUPERAGENT_MODE",
	} {
		t.Setenv(k, "")
	}
}

func missingEnvFile(t *testing.T) string {
	return filepath.Join(t.TempDir(), "missing.env")
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load(missingEnvFile(t))
	require.NoError(t, err)
	assert.Equal(t, ModeRelease, cfg.Mode)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, ":8080", cfg.Addr())
	assert.Equal(t, 1.0, cfg.Pace)
	assert.Equal(t, 1024, cfg.MaxSessions)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
}

func TestLoadFromEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "9090")
	t.Setenv("SUPERAGENT_PACE", "0")
	t.Setenv("SUPERAGENT_MAX_SESSIONS", "16")
	t.Setenv("SUPERAGENT_MODE", "DEBUG")
	t.Setenv("SUPERAGENT_LOG_FORMAT", "text")

	cfg, err := Load(missingEnvFile(t))
	require.NoError(t, err)
	assert.Equal(t, ModeDebug, cfg.Mode)
	assert.Equal(t, "9090", cfg.Port)
	assert.Zero(t, cfg.Pace)
	assert.Equal(t, 16, cfg.MaxSessions)
	assert.Equal(t, "text", cfg.LogFormat)
}

func TestLoadEnvFile(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("SUPERAGENT_PACE=0.25\nSUPERAGENT_LOG_LEVEL=debug\n"), 0o600))
	t.Cleanup(func() {
		os.Unsetenv("SUPERAGENT_PACE")
		os.Unsetenv("SUPERAGENT_LOG_LEVEL")
	})
	// godotenv does not override variables that are set, even when empty.
	os.Unsetenv("SUPERAGENT_PACE")
	os.Unsetenv("SUPERAGENT_LOG_LEVEL")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 0.25, cfg.Pace)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoadInvalid(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  string
	}{
		{"pace not a number", "SUPERAGENT_PACE", "fast"},
		{"negative pace", "SUPERAGENT_PACE", "-1"},
		{"sessions not a number", "SUPERAGENT_MAX_SESSIONS", "many"},
		{"zero sessions", "SUPERAGENT_MAX_SESSIONS", "0"},
		{"unknown mode", "SUPERAGENT_MODE", "staging"},
		{"bad port", "PORT", "http"},
		{"bad log format", "SUPERAGENT_LOG_FORMAT", "xml"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(tt.key, tt.val)

			_, err := Load(missingEnvFile(t))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.key)
		})
	}
}
