// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"
	"io"

	"github.com/rs/zerolog"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Config manages CLI configuration using Viper. Precedence: flags, config
// file, defaults.
type Config struct {
	v *viper.Viper
}

// NewConfig creates a new configuration with defaults.
func NewConfig() *Config {
	v := viper.New()

	// Network parameters
	v.SetDefault("network.order", 2)
	v.SetDefault("network.delta", 1)

	// Input parameters
	v.SetDefault("input.separator", ",")
	v.SetDefault("input.delimiter", "")

	// Logging parameters
	v.SetDefault("logging.level", "info")

	return &Config{v: v}
}

// LoadFromFile loads configuration from file (yaml, json, toml, ...).
func (c *Config) LoadFromFile(path string) error {
	c.v.SetConfigFile(path)
	return c.v.ReadInConfig()
}

// BindFlag ties key to a command-line flag.
func (c *Config) BindFlag(key string, f *pflag.Flag) error {
	return c.v.BindPFlag(key, f)
}

// mustBindFlag is BindFlag for flags registered at command construction;
// viper only fails on a nil flag, which is a programming error.
func (c *Config) mustBindFlag(key string, f *pflag.Flag) {
	if err := c.BindFlag(key, f); err != nil {
		panic(fmt.Sprintf("cli: binding flag for %q: %v", key, err))
	}
}

func (c *Config) Order() int        { return c.v.GetInt("network.order") }
func (c *Config) Delta() int64      { return c.v.GetInt64("network.delta") }
func (c *Config) Separator() string { return c.v.GetString("input.separator") }
func (c *Config) Delimiter() string { return c.v.GetString("input.delimiter") }
func (c *Config) LogLevel() string  { return c.v.GetString("logging.level") }

// Set allows dynamic configuration changes.
func (c *Config) Set(key string, value interface{}) {
	c.v.Set(key, value)
}

// CreateLogger creates a zerolog logger writing human-readable lines to w.
func (c *Config) CreateLogger(w io.Writer) zerolog.Logger {
	level, err := zerolog.ParseLevel(c.LogLevel())
	if err != nil {
		level = zerolog.InfoLevel
	}

	return zerolog.New(zerolog.ConsoleWriter{
		Out:        zerolog.SyncWriter(w),
		TimeFormat: "15:04:05",
		NoColor:    true,
	}).Level(level).With().Timestamp().Str("service", "honet").Logger()
}
