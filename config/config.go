// Package config loads the stockbook settings from defaults, an optional
// config file and the environment.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/etnz/stockbook"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment variable read by Load.
const EnvPrefix = "STOCKBOOK"

// Config holds the application settings.
type Config struct {
	Dir      string // Dir is the data directory holding the state files.
	Currency string // Currency is the ISO code of the account currency.
	LogLevel string // LogLevel is one of trace, debug, info, warn, error.
	Pretty   bool   // Pretty renders markdown output for the terminal.
}

// Default returns a configuration with sensible defaults
func Default() *Config {
	return &Config{
		Dir:      ".",
		Currency: stockbook.DefaultCurrency,
		LogLevel: "warn",
	}
}

// Load reads the configuration. Sources, lowest priority first: defaults,
// stockbook.{yaml,json,toml} in the working directory or
// $HOME/.config/stockbook, then STOCKBOOK_* environment variables.
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("stockbook")
	v.AddConfigPath(".")
	v.AddConfigPath("$HOME/.config/stockbook")
	return load(v)
}

// LoadFile reads the configuration from an explicit file, then the environment.
func LoadFile(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	return load(v)
}

func load(v *viper.Viper) (*Config, error) {
	def := Default()
	v.SetDefault("dir", def.Dir)
	v.SetDefault("currency", def.Currency)
	v.SetDefault("log_level", def.LogLevel)
	v.SetDefault("pretty", def.Pretty)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	cfg := &Config{
		Dir:      v.GetString("dir"),
		Currency: v.GetString("currency"),
		LogLevel: v.GetString("log_level"),
		Pretty:   v.GetBool("pretty"),
	}
	if err := cfg.Normalize().Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// Normalize upper cases the currency and lower cases the log level.
func (c *Config) Normalize() *Config {
	c.Currency = strings.ToUpper(strings.TrimSpace(c.Currency))
	c.LogLevel = strings.ToLower(strings.TrimSpace(c.LogLevel))
	return c
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Dir == "" {
		return fmt.Errorf("dir is required")
	}
	if !stockbook.KnownCurrency(c.Currency) {
		return fmt.Errorf("unknown currency: %q", c.Currency)
	}
	switch c.LogLevel {
	case "trace", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log_level must be one of trace, debug, info, warn, error, got %q", c.LogLevel)
	}
	return nil
}
