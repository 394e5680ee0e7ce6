package config

import (
	"fmt"

	"github.com/nmeilick/juration/format"
	"github.com/nmeilick/juration/units"
)

// Config holds the defaults of the parse and stringify commands
type Config struct {
	// Format is the default output format of stringify
	Format string `hcl:"format,optional"`

	// UnitCount caps the number of units stringify renders, 0 means all
	UnitCount int `hcl:"unit_count,optional"`

	// Weeks includes weeks when stringifying
	Weeks bool `hcl:"weeks,optional"`

	// Fallback lets parse accept Go notation such as "1h30m" when the
	// Norwegian parser fails
	Fallback bool `hcl:"fallback,optional"`

	parsedFormat units.Format
}

// DefaultConfig returns a new Config with default values
func DefaultConfig() *Config {
	return &Config{
		Format:       string(units.DefaultFormat),
		parsedFormat: units.DefaultFormat,
	}
}

// Normalize sets default values for vital settings that haven't been set
func (c *Config) Normalize() error {
	f, err := units.ParseFormat(c.Format)
	if err != nil {
		return fmt.Errorf("invalid format: %w", err)
	}
	c.parsedFormat = f
	c.Format = string(f)

	return c.Validate()
}

// Validate checks the configuration for errors
func (c *Config) Validate() error {
	if c.UnitCount < 0 {
		return fmt.Errorf("unit_count must not be negative: %d", c.UnitCount)
	}
	return nil
}

// GetFormat returns the parsed output format
func (c *Config) GetFormat() units.Format {
	if c.parsedFormat == "" {
		return units.DefaultFormat
	}
	return c.parsedFormat
}

// Options returns the stringify options described by the configuration
func (c *Config) Options() *format.Options {
	return &format.Options{
		Format:    c.GetFormat(),
		UnitCount: c.UnitCount,
		Weeks:     c.Weeks,
	}
}

// GetSampleConfig returns a sample configuration for the convert block
func GetSampleConfig() string {
	return `convert {
  format     = "short"  # chrono, micro, short or long
  unit_count = 0        # Maximum number of units to render, 0 renders all
  weeks      = false    # Include weeks when stringifying
  fallback   = false    # Let parse accept Go notation like "1h30m"
}`
}
