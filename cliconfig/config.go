// Package cliconfig loads the optional YAML configuration file read by
// the gqlcheck command line tool.
package cliconfig

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config is the shape of the YAML file passed to gqlcheck with --config.
type Config struct {
	// MaxDepth bounds recursion through selection sets and list
	// types/values. Zero means unlimited.
	MaxDepth int `yaml:"maxDepth,omitempty"`

	// Color enables ANSI highlighting in the error report. Defaults
	// to true when the config key is absent.
	Color *bool `yaml:"color,omitempty"`
}

// ColorEnabled reports whether error output should be colorized,
// treating an absent Color key as enabled.
func (c *Config) ColorEnabled() bool {
	if c == nil || c.Color == nil {
		return true
	}
	return *c.Color
}

// Load reads and parses the config file at path. A zero Config is
// returned, not an error, when path is empty.
func Load(path string) (*Config, error) {
	if path == "" {
		return &Config{}, nil
	}
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, err
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
