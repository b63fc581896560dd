// Package config provides configuration loading and management for gocam.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/gocamtools/gocam/export"
	"github.com/gocamtools/gocam/loader"
)

// Config represents the complete gocam configuration
type Config struct {
	NATS   NATSConfig         `yaml:"nats"`
	Models ModelsConfig       `yaml:"models"`
	Export ExportConfig       `yaml:"export"`
	Watch  loader.WatchConfig `yaml:"watch"`
}

// NATSConfig configures the NATS connection
type NATSConfig struct {
	// URL is the NATS server URL (empty = publishing disabled)
	URL string `yaml:"url"`
	// Name is the client connection name
	Name string `yaml:"name"`
	// Subject is the graph ingest subject models are published to
	Subject string `yaml:"subject"`
}

// ModelsConfig configures where model documents live
type ModelsConfig struct {
	// Dir is the model documents directory (auto-detected if empty)
	Dir string `yaml:"dir"`
}

// ExportConfig configures the default export behavior
type ExportConfig struct {
	// Format is the default export format (json, yaml, turtle, ntriples, jsonld)
	Format string `yaml:"format"`
}

// DefaultConfig returns a Config with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		NATS: NATSConfig{
			URL:     "", // Publishing disabled until configured
			Name:    "gocam",
			Subject: "graph.ingest.entity",
		},
		Models: ModelsConfig{
			Dir: "", // Auto-detect
		},
		Export: ExportConfig{
			Format: string(export.FormatJSON),
		},
		Watch: loader.DefaultWatchConfig(),
	}
}

// Validate checks that the configuration is valid
func (c *Config) Validate() error {
	if c.NATS.Subject == "" {
		return fmt.Errorf("nats.subject is required")
	}
	if c.NATS.Name == "" {
		return fmt.Errorf("nats.name is required")
	}
	if _, ok := export.GetFormatInfo(export.Format(c.Export.Format)); !ok {
		return fmt.Errorf("export.format %q is not a supported format", c.Export.Format)
	}
	return nil
}

// LoadFromFile loads configuration from a YAML file
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return config, nil
}

// SaveToFile saves configuration to a YAML file
func (c *Config) SaveToFile(path string) error {
	// Ensure parent directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Merge merges another config into this one (other takes precedence for non-zero values)
func (c *Config) Merge(other *Config) {
	if other == nil {
		return
	}

	// NATS
	if other.NATS.URL != "" {
		c.NATS.URL = other.NATS.URL
	}
	if other.NATS.Name != "" {
		c.NATS.Name = other.NATS.Name
	}
	if other.NATS.Subject != "" {
		c.NATS.Subject = other.NATS.Subject
	}

	// Models
	if other.Models.Dir != "" {
		c.Models.Dir = other.Models.Dir
	}

	// Export
	if other.Export.Format != "" {
		c.Export.Format = other.Export.Format
	}

	// Watch
	if other.Watch.DebounceDelay != "" {
		c.Watch.DebounceDelay = other.Watch.DebounceDelay
	}
	if len(other.Watch.ExcludeDirs) > 0 {
		c.Watch.ExcludeDirs = other.Watch.ExcludeDirs
	}
}
