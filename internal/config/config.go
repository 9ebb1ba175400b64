// Package config loads optional CLI defaults from a YAML file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/typeglass/fontcompare/internal/fileutil"
	"github.com/typeglass/fontcompare/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
)

// Config holds CLI defaults. Flags override environment variables, which
// override these values.
type Config struct {
	// Root is the default project root directory.
	Root string `yaml:"root"`

	// FontPaths lists additional font search directories.
	FontPaths []string `yaml:"fontPaths"`

	// Include and Exclude are default family filter patterns.
	Include string `yaml:"include"`
	Exclude string `yaml:"exclude"`

	// PPI is the default render resolution; 0 keeps the built-in default.
	PPI float64 `yaml:"ppi"`

	// Variants enables per-variant comparison by default.
	Variants bool `yaml:"variants"`

	// Fallback enables font fallback by default.
	Fallback bool `yaml:"fallback"`

	// Workers bounds the parallel worker pool; 0 means auto.
	Workers int `yaml:"workers"`
}

// Validate performs basic sanity checks.
func (c *Config) Validate() error {
	if c.PPI < 0 {
		return fmt.Errorf("ppi: must be positive, got %g", c.PPI)
	}
	if c.Workers < 0 {
		return fmt.Errorf("workers: must be non-negative, got %d", c.Workers)
	}
	return nil
}

// DefaultConfig returns a neutral configuration.
func DefaultConfig() *Config {
	return &Config{}
}

// LoadConfig loads configuration from a file path or config name. If
// nameOrPath contains a path separator, it is treated as a file path;
// otherwise it is searched in standard locations. A missing file is an
// error (no silent fallback).
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	configPath := nameOrPath
	if !fileutil.IsFilePath(nameOrPath) {
		resolved, err := resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
		configPath = resolved
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := yamlutil.UnmarshalStrict(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// resolveConfigPath searches for a config file by name: first the current
// directory, then the user config directory, trying .yaml then .yml.
func resolveConfigPath(name string) (string, error) {
	extensions := []string{".yaml", ".yml"}
	tried := make([]string, 0, len(extensions)*2)

	for _, ext := range extensions {
		localPath := name + ext
		if fileutil.FileExists(localPath) {
			return localPath, nil
		}
		tried = append(tried, localPath)
	}

	userConfigDir, err := os.UserConfigDir()
	if err == nil {
		for _, ext := range extensions {
			userPath := filepath.Join(userConfigDir, "fontcompare", name+ext)
			if fileutil.FileExists(userPath) {
				return userPath, nil
			}
			tried = append(tried, userPath)
		}
	}

	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(tried, ", "))
}
