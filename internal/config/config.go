package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pr0nt0-Zz/StorageCleaner/pkg/utils"
	"gopkg.in/yaml.v3"
)

// Config represents the application configuration
type Config struct {
	Scan                Scan          `yaml:"scan"`
	ProtectedPaths      []string      `yaml:"protected_paths"`
	ProtectedExtensions []string      `yaml:"protected_extensions"`
	History             HistoryConfig `yaml:"history"`
	DryRun              bool          `yaml:"dry_run"`
	Verbose             bool          `yaml:"verbose"`
}

// Scan defines scan pipeline settings
type Scan struct {
	MinFileSize string `yaml:"min_file_size"` // e.g. "50MB"
	MaxDepth    int    `yaml:"max_depth"`
}

// HistoryConfig holds scan history persistence settings
type HistoryConfig struct {
	Enabled bool   `yaml:"enabled"`
	Path    string `yaml:"path,omitempty"` // empty = default data dir
}

// MinSizeBytes parses the configured minimum file size
func (c *Config) MinSizeBytes() (int64, error) {
	return utils.ParseSize(c.Scan.MinFileSize)
}

// Load loads configuration from a file, falling back to defaults when
// the file does not exist.
func Load(configPath string) (*Config, error) {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return GetDefault(), nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// Save saves configuration to a file
func Save(config *Config, configPath string) error {
	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(configPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Scan.MinFileSize != "" {
		if _, err := utils.ParseSize(c.Scan.MinFileSize); err != nil {
			return fmt.Errorf("invalid min_file_size: %w", err)
		}
	}

	if c.Scan.MaxDepth < 0 {
		return fmt.Errorf("max_depth must be >= 0")
	}

	for _, path := range c.ProtectedPaths {
		if !filepath.IsAbs(path) {
			return fmt.Errorf("protected path must be absolute: %s", path)
		}
	}

	for _, ext := range c.ProtectedExtensions {
		if len(ext) < 2 || ext[0] != '.' {
			return fmt.Errorf("protected extension must start with a dot: %s", ext)
		}
	}

	return nil
}

// GetConfigPath returns the default config path
func GetConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	configDir := filepath.Join(homeDir, ".config", "storagecleaner")
	return filepath.Join(configDir, "config.yaml"), nil
}
