// Package config provides configuration loading and management for the
// fileops CLI.
package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Config represents the full configuration for the fileops CLI.
type Config struct {
	// DefaultEncoding is the encoding assumed when a command is not given
	// an explicit --encoding flag.
	DefaultEncoding string `yaml:"default_encoding"`

	// LogLevel controls console output (debug, info, warn, error, quiet).
	LogLevel string `yaml:"log_level"`

	// IgnoreMissing makes batch copies skip missing sources instead of
	// failing.
	IgnoreMissing bool `yaml:"ignore_missing"`
}

// Defaults returns a Config with default values.
func Defaults() Config {
	return Config{
		DefaultEncoding: "utf-8",
		LogLevel:        "info",
	}
}

// LoadFromFile loads configuration from a YAML file.
func LoadFromFile(path string) (Config, error) {
	cfg := Defaults()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}

	return cfg, nil
}
