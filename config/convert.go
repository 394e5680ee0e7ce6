package config

import (
	"fmt"

	convertconfig "github.com/nmeilick/juration/convert/config"
	"github.com/urfave/cli/v2"
)

// LoadConvertConfig loads the convert block, falling back to the defaults when it is missing
func LoadConvertConfig(c *cli.Context) (*convertconfig.Config, string, error) {
	cfg, path, err := LoadConfig(c)
	if err != nil {
		return nil, path, err
	}
	return cfg.NormalizedConvert(path)
}

// NormalizedConvert returns the normalized convert block or its defaults
func (cfg *Config) NormalizedConvert(path string) (*convertconfig.Config, string, error) {
	if cfg.Convert == nil {
		cfg.Convert = convertconfig.DefaultConfig()
	}
	if err := cfg.Convert.Normalize(); err != nil {
		return nil, path, fmt.Errorf("config has problems: %s: %w", path, err)
	}
	return cfg.Convert, path, nil
}
