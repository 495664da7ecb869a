package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/kepbod/seqlib/internal/paths"
	"gopkg.in/yaml.v3"
)

// DefaultBaseURL is the origin of the ENCODE metadata service.
const DefaultBaseURL = "https://www.encodeproject.org"

// Config represents the seqlib configuration
type Config struct {
	Service ServiceConfig `yaml:"service"` // Metadata service settings
	Catalog CatalogConfig `yaml:"catalog"` // Local catalog settings
}

// ServiceConfig contains metadata service settings
type ServiceConfig struct {
	BaseURL        string `yaml:"base_url"`        // Service origin
	TimeoutSeconds int    `yaml:"timeout_seconds"` // HTTP request timeout
}

// CatalogConfig contains local catalog settings
type CatalogConfig struct {
	Path string `yaml:"path"` // SQLite catalog path
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Service: ServiceConfig{
			BaseURL:        DefaultBaseURL,
			TimeoutSeconds: 30,
		},
		Catalog: CatalogConfig{
			Path: paths.GetCatalogPath(),
		},
	}
}

// Timeout returns the HTTP timeout as a duration.
func (c *Config) Timeout() time.Duration {
	return time.Duration(c.Service.TimeoutSeconds) * time.Second
}

// Load loads configuration from a file
func Load(path string) (*Config, error) {
	// Start with defaults
	config := DefaultConfig()

	// Check if file exists
	if _, err := os.Stat(path); os.IsNotExist(err) {
		// Return defaults if file doesn't exist
		return config, nil
	}

	// Read file
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Parse YAML
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	config.Catalog.Path = expandPath(config.Catalog.Path)

	if config.Service.BaseURL == "" {
		config.Service.BaseURL = DefaultBaseURL
	}
	if config.Service.TimeoutSeconds <= 0 {
		config.Service.TimeoutSeconds = 30
	}

	return config, nil
}

// Save saves the configuration to a file
func (c *Config) Save(path string) error {
	// Create directory if it doesn't exist
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	// Marshal to YAML
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	// Write to file
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// GetConfigPath returns the default config file path
func GetConfigPath() string {
	// Check environment variable first
	if path := os.Getenv("SEQLIB_CONFIG"); path != "" {
		return path
	}

	// Check current directory
	if _, err := os.Stat("seqlib.yaml"); err == nil {
		return "seqlib.yaml"
	}

	// Use default location
	p := paths.GetPaths()
	return filepath.Join(p.ConfigDir, "config.yaml")
}

// expandPath expands ~ to home directory
func expandPath(path string) string {
	if len(path) == 0 {
		return path
	}

	if path[0] == '~' {
		homeDir, _ := os.UserHomeDir()
		return filepath.Join(homeDir, path[1:])
	}

	return path
}
