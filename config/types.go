package config

import "time"

// Config represents the complete configuration structure
type Config struct {
	Wordnik WordnikConfig `mapstructure:"wordnik"`
	Output  OutputConfig  `mapstructure:"output"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// WordnikConfig holds Wordnik API connection details and account credentials
type WordnikConfig struct {
	APIKey    string        `mapstructure:"api_key"`
	BaseURL   string        `mapstructure:"base_url"`
	Timeout   time.Duration `mapstructure:"timeout"`
	UserAgent string        `mapstructure:"user_agent"`
	Username  string        `mapstructure:"username"`
	Password  string        `mapstructure:"password"`
	AuthToken string        `mapstructure:"auth_token"`
	Debug     bool          `mapstructure:"debug"`
}

// HasCredentials reports whether a login can be attempted. The password may
// still be prompted for.
func (w WordnikConfig) HasCredentials() bool {
	return w.Username != ""
}

// OutputConfig controls how command results are printed
type OutputConfig struct {
	Format string `mapstructure:"format"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Color  bool   `mapstructure:"color"`

	// File enables rotating file output instead of stderr
	File       string `mapstructure:"file"`
	MaxSizeMB  int    `mapstructure:"max_size_mb"`
	MaxBackups int    `mapstructure:"max_backups"`
	MaxAgeDays int    `mapstructure:"max_age_days"`
	Compress   bool   `mapstructure:"compress"`
}

// envOverrides are read from WORDNIK_* environment variables and win over the file
type envOverrides struct {
	APIKey    string        `envconfig:"API_KEY"`
	BaseURL   string        `envconfig:"BASE_URL"`
	Timeout   time.Duration `envconfig:"TIMEOUT"`
	UserAgent string        `envconfig:"USER_AGENT"`
	Username  string        `envconfig:"USERNAME"`
	Password  string        `envconfig:"PASSWORD"`
	AuthToken string        `envconfig:"AUTH_TOKEN"`
	LogLevel  string        `envconfig:"LOG_LEVEL"`
	Output    string        `envconfig:"OUTPUT"`
}
