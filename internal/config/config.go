package config

import (
	"fmt"
	"slices"
)

// Defaults.
const (
	DefaultFormat        = "text"
	DefaultUpper         = 2
	DefaultLower         = 2
	DefaultDecimalPlaces = 15

	// MaxWindow is the widest hex window on either side of the point, in bytes.
	MaxWindow = 8
	// MaxDecimalPlaces covers the exact decimal expansion of a Q64.64 fraction.
	MaxDecimalPlaces = 64
)

// Formats lists the accepted output formats.
var Formats = []string{"text", "json"}

// Config is the root configuration for btime.
type Config struct {
	Format        string     `yaml:"format"`
	Date          DateConfig `yaml:"date"`
	DecimalPlaces int        `yaml:"decimal_places"`
}

// DateConfig sets the granular hex window for timestamps.
type DateConfig struct {
	Upper int `yaml:"upper"` // integer bytes shown
	Lower int `yaml:"lower"` // fractional bytes shown
}

// Default returns the configuration used without a file.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

func (c *Config) applyDefaults() {
	if c.Format == "" {
		c.Format = DefaultFormat
	}
	if c.Date.Upper == 0 {
		c.Date.Upper = DefaultUpper
	}
	if c.Date.Lower == 0 {
		c.Date.Lower = DefaultLower
	}
	if c.DecimalPlaces == 0 {
		c.DecimalPlaces = DefaultDecimalPlaces
	}
}

// Validate checks field ranges.
func (c *Config) Validate() error {
	if !slices.Contains(Formats, c.Format) {
		return fmt.Errorf("format: must be one of %v, got %q", Formats, c.Format)
	}
	if c.Date.Upper < 1 || c.Date.Upper > MaxWindow {
		return fmt.Errorf("date.upper: must be between 1 and %d, got %d", MaxWindow, c.Date.Upper)
	}
	if c.Date.Lower < 1 || c.Date.Lower > MaxWindow {
		return fmt.Errorf("date.lower: must be between 1 and %d, got %d", MaxWindow, c.Date.Lower)
	}
	if c.DecimalPlaces < 0 || c.DecimalPlaces > MaxDecimalPlaces {
		return fmt.Errorf("decimal_places: must be between 0 and %d, got %d", MaxDecimalPlaces, c.DecimalPlaces)
	}
	return nil
}
