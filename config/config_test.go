package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func validConfig() *Config {
	return &Config{
		Wordnik: WordnikConfig{APIKey: "valid-api-key", Timeout: time.Second},
		Output:  OutputConfig{Format: "table"},
		Logging: LoggingConfig{Level: "info", Format: "console"},
	}
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
wordnik:
  api_key: abc123
  timeout: 3s
  username: reader
output:
  format: json
logging:
  level: debug
  file: /tmp/wordnik.log
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "abc123", cfg.Wordnik.APIKey)
	assert.Equal(t, 3*time.Second, cfg.Wordnik.Timeout)
	assert.Equal(t, "https://api.wordnik.com/v4", cfg.Wordnik.BaseURL)
	assert.True(t, cfg.Wordnik.HasCredentials())
	assert.Equal(t, "json", cfg.Output.Format)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "console", cfg.Logging.Format)
	assert.Equal(t, "/tmp/wordnik.log", cfg.Logging.File)
	assert.Equal(t, 10, cfg.Logging.MaxSizeMB)
	assert.Equal(t, 3, cfg.Logging.MaxBackups)
}

func TestLoad_EnvOverrides(t *testing.T) {
	path := writeConfig(t, `
wordnik:
  api_key: from-file
  username: file-user
`)
	t.Setenv("WORDNIK_API_KEY", "from-env")
	t.Setenv("WORDNIK_PASSWORD", "secret")
	t.Setenv("WORDNIK_TIMEOUT", "250ms")
	t.Setenv("WORDNIK_OUTPUT", "yaml")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "from-env", cfg.Wordnik.APIKey)
	assert.Equal(t, "file-user", cfg.Wordnik.Username)
	assert.Equal(t, "secret", cfg.Wordnik.Password)
	assert.Equal(t, 250*time.Millisecond, cfg.Wordnik.Timeout)
	assert.Equal(t, "yaml", cfg.Output.Format)
}

func TestLoad_NoFile(t *testing.T) {
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(wd) })
	t.Setenv("HOME", t.TempDir())
	t.Setenv("WORDNIK_API_KEY", "env-only")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "env-only", cfg.Wordnik.APIKey)
	assert.Equal(t, "table", cfg.Output.Format)
}

func TestLoad_Errors(t *testing.T) {
	t.Run("explicit file missing", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "error reading config")
	})

	t.Run("placeholder key", func(t *testing.T) {
		path := writeConfig(t, "wordnik:\n  api_key: YOUR_API_KEY\n")
		_, err := Load(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "wordnik.api_key")
	})

	t.Run("invalid env timeout", func(t *testing.T) {
		path := writeConfig(t, "wordnik:\n  api_key: abc\n")
		t.Setenv("WORDNIK_TIMEOUT", "soon")
		_, err := Load(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "environment variables")
	})
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:   "valid",
			mutate: func(*Config) {},
		},
		{
			name:    "missing api key",
			mutate:  func(c *Config) { c.Wordnik.APIKey = " " },
			wantErr: "wordnik.api_key",
		},
		{
			name:    "zero timeout",
			mutate:  func(c *Config) { c.Wordnik.Timeout = 0 },
			wantErr: "wordnik.timeout",
		},
		{
			name:    "invalid output format",
			mutate:  func(c *Config) { c.Output.Format = "xml" },
			wantErr: "invalid output format: xml",
		},
		{
			name:    "invalid logging level",
			mutate:  func(c *Config) { c.Logging.Level = "trace" },
			wantErr: "invalid logging level: trace",
		},
		{
			name:    "invalid logging format",
			mutate:  func(c *Config) { c.Logging.Format = "logfmt" },
			wantErr: "invalid logging format: logfmt",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)

			err := validate(cfg)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestWordnikConfig_HasCredentials(t *testing.T) {
	assert.True(t, WordnikConfig{Username: "reader"}.HasCredentials())
	// a stored token is reused as is and cannot be renewed without a username
	assert.False(t, WordnikConfig{AuthToken: "session-123"}.HasCredentials())
	assert.False(t, WordnikConfig{}.HasCredentials())
}
