// Package config provides the layout constants and their file-based overrides.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the layout constants. A value is passed to the layout engine
// at construction and never mutated during a pass.
type Config struct {
	// Font settings
	DefaultFontSize float64 `yaml:"default_font_size"`
	LineHeight      float64 `yaml:"line_height"`
	CharWidth       float64 `yaml:"char_width"`

	// Layout settings
	Margin        float64 `yaml:"margin"`
	Padding       float64 `yaml:"padding"`
	ViewportWidth int     `yaml:"viewport_width"`
	MinHeight     int     `yaml:"min_height"`

	// Heading size multipliers keyed by tag (h1..h6)
	HeadingSizes map[string]float64 `yaml:"heading_sizes"`
}

// Defaults returns a Config with default values.
func Defaults() Config {
	return Config{
		DefaultFontSize: 16,
		LineHeight:      1.5,
		CharWidth:       8,

		Margin:        10,
		Padding:       5,
		ViewportWidth: 800,
		MinHeight:     600,

		HeadingSizes: map[string]float64{
			"h1": 2.0,
			"h2": 1.75,
			"h3": 1.5,
			"h4": 1.25,
			"h5": 1.1,
			"h6": 1.0,
		},
	}
}

// HeadingSize returns the font-size multiplier for a heading tag.
// Unrecognized heading tags get a multiplier of 1.
func (c Config) HeadingSize(tag string) float64 {
	if m, ok := c.HeadingSizes[tag]; ok {
		return m
	}
	return 1.0
}

// Load reads a YAML config file and merges it over the defaults.
// Fields absent from the file keep their default values.
func Load(path string) (Config, error) {
	cfg := Defaults()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate checks that the constants describe a usable layout space.
func (c Config) Validate() error {
	if c.DefaultFontSize <= 0 {
		return fmt.Errorf("default_font_size must be positive, got %v", c.DefaultFontSize)
	}
	if c.LineHeight <= 0 {
		return fmt.Errorf("line_height must be positive, got %v", c.LineHeight)
	}
	if c.CharWidth <= 0 {
		return fmt.Errorf("char_width must be positive, got %v", c.CharWidth)
	}
	if c.Margin < 0 || c.Padding < 0 {
		return fmt.Errorf("margin and padding must not be negative")
	}
	if c.ViewportWidth <= 0 {
		return fmt.Errorf("viewport_width must be positive, got %d", c.ViewportWidth)
	}
	if c.MinHeight <= 0 {
		return fmt.Errorf("min_height must be positive, got %d", c.MinHeight)
	}
	return nil
}
