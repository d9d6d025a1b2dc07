// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package config loads the optional YAML configuration of gdidraw.
package config

import (
	"errors"
	"fmt"
	"image/color"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/gogpu/gdi"
)

// Config represents a gdidraw configuration file.
type Config struct {
	Width      int           `yaml:"width,omitempty"`
	Height     int           `yaml:"height,omitempty"`
	Chain      []string      `yaml:"chain,omitempty"`
	Background string        `yaml:"background,omitempty"`
	Flatten    FlattenConfig `yaml:"flatten,omitempty"`
}

// FlattenConfig contains Bezier flattening settings. Zero values select
// the library defaults.
type FlattenConfig struct {
	MaxDepth  int `yaml:"max_depth,omitempty"`
	Tolerance int `yaml:"tolerance,omitempty"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		Width:      256,
		Height:     256,
		Chain:      []string{"raster"},
		Background: "#ffffff",
	}
}

// LoadOptional reads the configuration at path if present. Keys missing
// from the file keep their default values.
func LoadOptional(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the configuration values.
func (c *Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: size %dx%d", gdi.ErrInvalidArgument, c.Width, c.Height)
	}
	if len(c.Chain) == 0 {
		return fmt.Errorf("%w: empty driver chain", gdi.ErrInvalidArgument)
	}
	if _, err := gdi.ParseHex(c.Background); err != nil {
		return fmt.Errorf("background: %w", err)
	}
	if c.Flatten.MaxDepth < 0 || c.Flatten.Tolerance < 0 {
		return fmt.Errorf("%w: negative flatten setting", gdi.ErrInvalidArgument)
	}
	return nil
}

// BackgroundColor returns the parsed background, or white if it does not
// parse.
func (c *Config) BackgroundColor() color.RGBA {
	bg, err := gdi.ParseHex(c.Background)
	if err != nil {
		return gdi.White
	}
	return bg
}

// Flattener returns the configured Bezier flattener.
func (c *Config) Flattener() gdi.Flattener {
	return gdi.Flattener{MaxDepth: c.Flatten.MaxDepth, Tolerance: c.Flatten.Tolerance}
}
