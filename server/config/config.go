package config

import (
	"fmt"
	"strings"

	"github.com/nmeilick/juration/server/listen"
	"github.com/nmeilick/juration/server/log"
)

// Default configuration constants
const (
	DefaultAPIPrefix = "/api/v1"
)

// DefaultConfig returns a server configuration with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Listen:    listen.DefaultConfig(),
		Log:       log.DefaultConfig(),
		APIPrefix: DefaultAPIPrefix,
	}
}

// Config holds the server-specific configuration
type Config struct {
	Listen    *listen.Config `hcl:"listen,block"`
	Log       *log.LogConfig `hcl:"log,block"`
	APIPrefix string         `hcl:"api_prefix,optional"`
}

// Normalize sets default values for vital settings that haven't been set
// and then validates the configuration
func (sc *Config) Normalize() error {
	if sc.Listen == nil {
		sc.Listen = &listen.Config{}
	}
	if err := sc.Listen.Normalize(); err != nil {
		return fmt.Errorf("listen configuration error: %w", err)
	}

	if sc.Log == nil {
		sc.Log = &log.LogConfig{}
	}
	if err := sc.Log.Normalize(); err != nil {
		return fmt.Errorf("log configuration error: %w", err)
	}

	if sc.APIPrefix == "" {
		sc.APIPrefix = DefaultAPIPrefix
	}
	sc.APIPrefix = "/" + strings.Trim(sc.APIPrefix, "/")

	return sc.Validate()
}

// Validate checks the server configuration for errors or missing required settings
func (sc *Config) Validate() error {
	if sc.Listen == nil {
		return fmt.Errorf("listen configuration is required")
	}
	if err := sc.Listen.Validate(); err != nil {
		return fmt.Errorf("listen configuration error: %w", err)
	}

	if sc.Log == nil {
		return fmt.Errorf("log configuration is required")
	}
	if err := sc.Log.Validate(); err != nil {
		return fmt.Errorf("log configuration error: %w", err)
	}

	if strings.ContainsAny(sc.APIPrefix, " ?#") {
		return fmt.Errorf("invalid api_prefix: %q", sc.APIPrefix)
	}

	return nil
}

// GetSampleConfig returns a sample configuration for the server block
func GetSampleConfig() string {
	return strings.Join([]string{
		"server {",
		`  api_prefix = "/api/v1"           # Prefix of all API routes`,
		"",
		listen.GetSampleConfig(),
		"",
		log.GetSampleConfig(),
		"}",
	}, "\n")
}
