// Package config loads the verdict tool configuration from
// .verdict/config.json, falling back to defaults when no file exists.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"verdict/internal/compare"
)

// Version is the current config schema version.
const Version = 1

// Config is the complete verdict configuration.
type Config struct {
	Version int `json:"version" mapstructure:"version"`

	// Compare holds the comparator tuning knobs; per-test-case overrides
	// are applied on top of these at call time.
	Compare compare.Config `json:"compare" mapstructure:"compare"`

	Logging LoggingConfig `json:"logging" mapstructure:"logging"`
}

// LoggingConfig contains logging configuration.
type LoggingConfig struct {
	Level string `json:"level" mapstructure:"level"`
	File  string `json:"file,omitempty" mapstructure:"file"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Version: Version,
		Compare: compare.DefaultConfig(),
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// LoadConfig loads configuration from <root>/.verdict/config.json.
// A missing file yields the defaults; a malformed file is an error.
func LoadConfig(root string) (*Config, error) {
	v := viper.New()

	defaults := DefaultConfig()
	v.SetDefault("version", defaults.Version)
	v.SetDefault("compare.floatEps", defaults.Compare.FloatEps)
	v.SetDefault("compare.unicodeForm", string(defaults.Compare.UnicodeForm))
	v.SetDefault("compare.largeOutputThreshold", defaults.Compare.LargeOutputThreshold)
	v.SetDefault("compare.tokenSetSizeLimit", defaults.Compare.TokenSetSizeLimit)
	v.SetDefault("logging.level", defaults.Logging.Level)

	v.SetConfigName("config")
	v.SetConfigType("json")
	v.AddConfigPath(filepath.Join(root, ".verdict"))

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return defaults, nil
		}
		return nil, err
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Save writes the configuration to <root>/.verdict/config.json.
func (c *Config) Save(root string) error {
	dir := filepath.Join(root, ".verdict")
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(dir, "config.json"), data, 0644)
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Version != Version {
		return &ConfigError{Field: "version", Message: "unsupported config version"}
	}
	if c.Compare.FloatEps < 0 {
		return &ConfigError{Field: "compare.floatEps", Message: "must not be negative"}
	}
	if c.Compare.LargeOutputThreshold < 0 {
		return &ConfigError{Field: "compare.largeOutputThreshold", Message: "must not be negative"}
	}
	if c.Compare.TokenSetSizeLimit < 0 {
		return &ConfigError{Field: "compare.tokenSetSizeLimit", Message: "must not be negative"}
	}
	return nil
}

// ConfigError represents a configuration error.
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return "config error in field '" + e.Field + "': " + e.Message
}
