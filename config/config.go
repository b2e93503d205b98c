package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/spf13/viper"
)

// EnvPrefix is the prefix of environment overrides, e.g. WORDNIK_API_KEY
const EnvPrefix = "WORDNIK"

const placeholderAPIKey = "YOUR_API_KEY"

// Load loads the configuration from file and environment.
// A missing config file is not an error when configPath is empty.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	// Set default values
	setDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		// Look for config in standard locations
		v.SetConfigName("config")
		v.SetConfigType("yaml")

		// Check current directory first
		v.AddConfigPath(".")

		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".wordnik"))
		}

		v.AddConfigPath("/etc/wordnik/")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configPath != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	if err := applyEnv(&cfg); err != nil {
		return nil, err
	}

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	v.SetDefault("wordnik.base_url", "https://api.wordnik.com/v4")
	v.SetDefault("wordnik.timeout", 10*time.Second)
	v.SetDefault("wordnik.user_agent", "wordnik-go")

	v.SetDefault("output.format", "table")

	v.SetDefault("logging.level", "warn")
	v.SetDefault("logging.format", "console")
	v.SetDefault("logging.color", true)
	v.SetDefault("logging.max_size_mb", 10)
	v.SetDefault("logging.max_backups", 3)
	v.SetDefault("logging.max_age_days", 28)
}

// applyEnv copies non-empty WORDNIK_* variables over the file values
func applyEnv(cfg *Config) error {
	var env envOverrides
	if err := envconfig.Process(EnvPrefix, &env); err != nil {
		return fmt.Errorf("failed to process environment variables: %w", err)
	}

	override := func(dst *string, value string) {
		if value != "" {
			*dst = value
		}
	}
	override(&cfg.Wordnik.APIKey, env.APIKey)
	override(&cfg.Wordnik.BaseURL, env.BaseURL)
	override(&cfg.Wordnik.UserAgent, env.UserAgent)
	override(&cfg.Wordnik.Username, env.Username)
	override(&cfg.Wordnik.Password, env.Password)
	override(&cfg.Wordnik.AuthToken, env.AuthToken)
	override(&cfg.Logging.Level, env.LogLevel)
	override(&cfg.Output.Format, env.Output)
	if env.Timeout > 0 {
		cfg.Wordnik.Timeout = env.Timeout
	}

	return nil
}

// validate checks if the configuration is valid
func validate(cfg *Config) error {
	key := strings.TrimSpace(cfg.Wordnik.APIKey)
	if key == "" || key == placeholderAPIKey {
		return fmt.Errorf("wordnik.api_key must be set to a valid API key (or %s_API_KEY)", EnvPrefix)
	}

	if cfg.Wordnik.Timeout <= 0 {
		return fmt.Errorf("wordnik.timeout must be positive, got %s", cfg.Wordnik.Timeout)
	}

	validOutputs := map[string]bool{
		"table": true,
		"json":  true,
		"yaml":  true,
	}
	if !validOutputs[cfg.Output.Format] {
		return fmt.Errorf("invalid output format: %s", cfg.Output.Format)
	}

	validLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLevels[cfg.Logging.Level] {
		return fmt.Errorf("invalid logging level: %s", cfg.Logging.Level)
	}

	validFormats := map[string]bool{
		"console": true,
		"json":    true,
	}
	if !validFormats[cfg.Logging.Format] {
		return fmt.Errorf("invalid logging format: %s", cfg.Logging.Format)
	}

	return nil
}
