package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/dyluth/ut/internal/timespec"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// Environment variables that override the config file.
const (
	EnvConfig    = "UT_CONFIG"
	EnvOffset    = "UT_OFFSET"
	EnvPrecision = "UT_PRECISION"
	EnvLogLevel  = "UT_LOG_LEVEL"
)

// Config holds user defaults for ut. Empty fields are unset.
type Config struct {
	Offset    string `yaml:"offset,omitempty"`    // "local", "utc" or a fixed offset such as "+09:00"
	Precision string `yaml:"precision,omitempty"` // "second" or "millisecond", prefixes allowed
	LogLevel  string `yaml:"log_level,omitempty"` // any logrus level

	// Path is the file the config was read from, empty when none was
	Path string `yaml:"-"`
}

// Validate checks every set field with the parsers the command line uses
func (c *Config) Validate() error {
	if c.Offset != "" {
		if _, err := timespec.ParseZone(c.Offset); err != nil {
			return fmt.Errorf("offset: %w", err)
		}
	}

	if c.Precision != "" {
		if _, err := timespec.ParsePrecision(c.Precision); err != nil {
			return fmt.Errorf("precision: %w", err)
		}
	}

	if c.LogLevel != "" {
		if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
			return fmt.Errorf("log_level: %w", err)
		}
	}

	return nil
}

// Zone returns the configured zone, local when unset
func (c *Config) Zone() (timespec.Zone, error) {
	return timespec.ResolveZone(false, c.Offset)
}

// PrecisionOrDefault returns the configured precision, seconds when unset
func (c *Config) PrecisionOrDefault() (timespec.Precision, error) {
	if c.Precision == "" {
		return timespec.PrecisionSecond, nil
	}
	return timespec.ParsePrecision(c.Precision)
}

// Load reads and validates a config file from the specified path
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	config.Path = path
	return &config, nil
}

// DefaultPath returns the per-user config location, e.g. ~/.config/ut/config.yml
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "ut", "config.yml"), nil
}

// Discover builds the effective config: the file named by path, else by
// UT_CONFIG, else the default path if it exists; then UT_* environment
// overrides. An explicitly named file must exist.
func Discover(path string) (*Config, error) {
	explicit := true
	if path == "" {
		path = os.Getenv(EnvConfig)
	}
	if path == "" {
		explicit = false
		if p, err := DefaultPath(); err == nil {
			path = p
		}
	}

	config := &Config{}
	if path != "" {
		loaded, err := Load(path)
		switch {
		case err == nil:
			config = loaded
		case !explicit && errors.Is(err, os.ErrNotExist):
		default:
			return nil, err
		}
	}

	if v, ok := os.LookupEnv(EnvOffset); ok && v != "" {
		config.Offset = v
	}
	if v, ok := os.LookupEnv(EnvPrecision); ok && v != "" {
		config.Precision = v
	}
	if v, ok := os.LookupEnv(EnvLogLevel); ok && v != "" {
		config.LogLevel = v
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid environment: %w", err)
	}

	return config, nil
}
