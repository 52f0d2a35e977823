package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "", cfg.DBPath)
	assert.Equal(t, 2*time.Second, cfg.ComboWindow)
	assert.Equal(t, 600*time.Millisecond, cfg.RevealDelay)
	assert.Equal(t, int64(0), cfg.Seed)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("BATBALL_DB", "/tmp/batball-test.db")
	t.Setenv("BATBALL_COMBO_WINDOW", "1500ms")
	t.Setenv("BATBALL_REVEAL_DELAY", "0s")
	t.Setenv("BATBALL_SEED", "42")
	t.Setenv("BATBALL_LOG_LEVEL", "debug")
	t.Setenv("BATBALL_LOG_FORMAT", "json")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "/tmp/batball-test.db", cfg.DBPath)
	assert.Equal(t, 1500*time.Millisecond, cfg.ComboWindow)
	assert.Equal(t, time.Duration(0), cfg.RevealDelay)
	assert.Equal(t, int64(42), cfg.Seed)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"unparsable duration", "BATBALL_COMBO_WINDOW", "soon"},
		{"zero combo window", "BATBALL_COMBO_WINDOW", "0s"},
		{"negative reveal", "BATBALL_REVEAL_DELAY", "-1s"},
		{"bad seed", "BATBALL_SEED", "lucky"},
		{"bad level", "BATBALL_LOG_LEVEL", "loud"},
		{"bad format", "BATBALL_LOG_FORMAT", "xml"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			_, err := Load()
			assert.Error(t, err)
		})
	}
}
