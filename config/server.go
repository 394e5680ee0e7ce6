package config

import (
	"fmt"

	serverconfig "github.com/nmeilick/juration/server/config"
	"github.com/urfave/cli/v2"
)

// LoadServerConfig loads the server block, falling back to the defaults when it is missing
func LoadServerConfig(c *cli.Context) (*serverconfig.Config, string, error) {
	cfg, path, err := LoadConfig(c)
	if err != nil {
		return nil, path, err
	}
	return cfg.NormalizedServer(path)
}

// NormalizedServer returns the normalized server block or its defaults
func (cfg *Config) NormalizedServer(path string) (*serverconfig.Config, string, error) {
	if cfg.Server == nil {
		cfg.Server = serverconfig.DefaultConfig()
	}
	if err := cfg.Server.Normalize(); err != nil {
		return nil, path, fmt.Errorf("config has problems: %s: %w", path, err)
	}
	return cfg.Server, path, nil
}
