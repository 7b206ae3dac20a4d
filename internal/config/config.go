// Package config loads the optional .widlidl.yaml configuration file.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultExtensions are the file extensions scanned when the config
// does not override them.
var DefaultExtensions = []string{".idl", ".webidl"}

// Config is the tool configuration.
type Config struct {
	Name        string   `yaml:"name"`
	IgnoreKinds []string `yaml:"ignore_kinds"`
	Extensions  []string `yaml:"extensions"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{Name: "widlidl", Extensions: DefaultExtensions}
}

// Load reads a YAML configuration file, filling unset fields with
// defaults. An empty path returns the defaults unchanged.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(content, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	if len(cfg.Extensions) == 0 {
		cfg.Extensions = DefaultExtensions
	}
	if cfg.Name == "" {
		cfg.Name = "widlidl"
	}
	return cfg, nil
}

// Ignored reports whether issues of this kind are suppressed.
func (c *Config) Ignored(kind string) bool {
	for _, k := range c.IgnoreKinds {
		if k == kind {
			return true
		}
	}
	return false
}
