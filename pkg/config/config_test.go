package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	for _, k := range []string{"PORT", "STORE_DRIVER", "UPLOAD_DIR", "MAX_UPLOAD_BYTES", "LLM_PROVIDER", "LLM_TIMEOUT_SECONDS", "LOG_FORMAT"} {
		t.Setenv(k, "")
	}

	cfg := Load()
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "memory", cfg.StoreDriver)
	assert.Equal(t, "uploads", cfg.UploadDir)
	assert.Equal(t, int64(5*1024*1024), cfg.MaxUploadBytes)
	assert.Equal(t, "openrouter", cfg.LLMProvider)
	assert.Equal(t, 60*time.Second, cfg.LLMTimeout)
	require.NoError(t, cfg.Validate())
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("STORE_DRIVER", "SQLite")
	t.Setenv("SQLITE_PATH", "/tmp/x.db")
	t.Setenv("LLM_TIMEOUT_SECONDS", "5")
	t.Setenv("MAX_UPLOAD_BYTES", "not-a-number")

	cfg := Load()
	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "sqlite", cfg.StoreDriver)
	assert.Equal(t, "/tmp/x.db", cfg.SQLitePath)
	assert.Equal(t, 5*time.Second, cfg.LLMTimeout)
	assert.Equal(t, int64(5*1024*1024), cfg.MaxUploadBytes)
}

func TestValidate(t *testing.T) {
	base := func() Config {
		return Config{
			Port: "8080", StoreDriver: "memory", UploadDir: "uploads", MaxUploadBytes: 1,
			LLMProvider: "none", LLMTimeout: time.Second, LogFormat: "json",
		}
	}

	tests := []struct {
		name   string
		mutate func(*Config)
		ok     bool
	}{
		{"valid", func(*Config) {}, true},
		{"unknown driver", func(c *Config) { c.StoreDriver = "mongo" }, false},
		{"postgres without dsn", func(c *Config) { c.StoreDriver = "postgres" }, false},
		{"postgres with dsn", func(c *Config) { c.StoreDriver = "postgres"; c.DatabaseURL = "postgres://x" }, true},
		{"unknown provider", func(c *Config) { c.LLMProvider = "claude" }, false},
		{"zero upload limit", func(c *Config) { c.MaxUploadBytes = 0 }, false},
		{"bad port", func(c *Config) { c.Port = "http" }, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := base()
			tt.mutate(&c)
			err := c.Validate()
			if tt.ok {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}
