// Package config loads the trip client settings from .trip.yaml, the environment
// and flags.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

// Keys understood in .trip.yaml and as TRIP_* environment variables.
const (
	KeyAPIURL   = "api_url"
	KeyDataPath = "data_path"
	KeyListen   = "listen"
	KeyLogLevel = "log_level"
	KeyLogFile  = "log_file"
)

// Config is the resolved client configuration.
type Config struct {
	// APIURL is the trip API the client talks to.
	APIURL string `json:"api_url" yaml:"api_url"`
	// DataPath is where the local store keeps its files.
	DataPath string `json:"data_path" yaml:"data_path"`
	// Listen is the address `trip serve` binds.
	Listen   string `json:"listen" yaml:"listen"`
	LogLevel string `json:"log_level" yaml:"log_level"`
	LogFile  string `json:"log_file" yaml:"log_file"`
}

// BasePath implements store.Config.
func (c *Config) BasePath() string {
	return c.DataPath
}

// Level parses LogLevel, defaulting to info.
func (c *Config) Level() slog.Level {
	var l slog.Level
	if err := l.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo
	}
	return l
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.APIURL, validation.Required, is.URL),
		validation.Field(&c.DataPath, validation.Required),
		validation.Field(&c.Listen, validation.Required),
		validation.Field(&c.LogLevel, validation.In("debug", "info", "warn", "error", "DEBUG", "INFO", "WARN", "ERROR")),
	)
}

// Defaults registers the default value of every key on v.
func Defaults(v *viper.Viper) {
	v.SetDefault(KeyAPIURL, "http://localhost:3333")
	v.SetDefault(KeyDataPath, "~/.trip/data")
	v.SetDefault(KeyListen, "localhost:3333")
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyLogFile, "~/.trip/trip.log")
}

// Load reads .trip.yaml from $TRIP_CONFIG_PATH, the working directory or the home
// directory, then overlays TRIP_* environment variables and any flags bound on v.
func Load(v *viper.Viper) (*Config, error) {
	if v == nil {
		v = viper.New()
	}
	Defaults(v)
	v.SetConfigName(".trip") // .yaml is implicit
	v.SetEnvPrefix("TRIP")
	v.AutomaticEnv()

	if override := os.Getenv("TRIP_CONFIG_PATH"); override != "" {
		v.AddConfigPath(override)
	}
	v.AddConfigPath("./")
	if home, err := homedir.Dir(); err == nil {
		v.AddConfigPath(home)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{
		APIURL:   strings.TrimRight(v.GetString(KeyAPIURL), "/"),
		LogLevel: v.GetString(KeyLogLevel),
		Listen:   v.GetString(KeyListen),
	}
	var err error
	if cfg.DataPath, err = expand(v.GetString(KeyDataPath)); err != nil {
		return nil, err
	}
	if cfg.LogFile, err = expand(v.GetString(KeyLogFile)); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return cfg, nil
}

func expand(path string) (string, error) {
	if path == "" {
		return "", nil
	}
	p, err := homedir.Expand(path)
	if err != nil {
		return "", fmt.Errorf("expand %q: %w", path, err)
	}
	return filepath.Clean(p), nil
}
