package listen

import (
	"fmt"
	"time"

	"github.com/nmeilick/juration/common/duration"
)

// Default configuration constants
const (
	DefaultHost            = "127.0.0.1"
	DefaultPort            = 8080
	DefaultReadTimeout     = 10 * time.Second
	DefaultWriteTimeout    = 30 * time.Second
	DefaultIdleTimeout     = 120 * time.Second
	DefaultHeaderTimeout   = 5 * time.Second
	DefaultGracefulTimeout = 30 * time.Second
)

// Config defines configuration for server listening
type Config struct {
	// Host is the interface to listen on
	Host string `hcl:"host,optional"`

	// Port is the port to listen on
	Port int `hcl:"port,optional"`

	// DisableServerHeader disables the Server header in responses
	DisableServerHeader bool `hcl:"disable_server_header,optional"`

	// Timeouts configuration
	Timeouts *TimeoutsConfig `hcl:"timeouts,block"`

	// TLS configuration
	TLS *TLSConfig `hcl:"tls,block"`
}

// TimeoutsConfig defines timeout settings for the server. Values may be
// written in Go notation ("10s") or in Norwegian ("10 sekunder").
type TimeoutsConfig struct {
	// Read is the maximum duration for reading the entire request
	Read string `hcl:"read,optional"`

	// Write is the maximum duration before timing out writes of the response
	Write string `hcl:"write,optional"`

	// Idle is the maximum amount of time to wait for the next request
	Idle string `hcl:"idle,optional"`

	// ReadHeader is the amount of time allowed to read request headers
	ReadHeader string `hcl:"read_header,optional"`

	// Graceful is how long shutdown waits for open requests to finish
	Graceful string `hcl:"graceful,optional"`

	read, write, idle, readHeader, graceful time.Duration
}

// TLSConfig defines TLS settings for the server
type TLSConfig struct {
	// Cert is the path to the TLS certificate file
	Cert string `hcl:"cert,optional"`

	// Key is the path to the TLS key file
	Key string `hcl:"key,optional"`
}

// DefaultConfig returns a new Config with default values
func DefaultConfig() *Config {
	cfg := &Config{
		Host:     DefaultHost,
		Port:     DefaultPort,
		Timeouts: defaultTimeouts(),
		TLS:      &TLSConfig{},
	}
	// The defaults are rendered by duration.Norwegian and always parse back
	_ = cfg.Timeouts.normalize()
	return cfg
}

func defaultTimeouts() *TimeoutsConfig {
	return &TimeoutsConfig{
		Read:       duration.Norwegian(DefaultReadTimeout),
		Write:      duration.Norwegian(DefaultWriteTimeout),
		Idle:       duration.Norwegian(DefaultIdleTimeout),
		ReadHeader: duration.Norwegian(DefaultHeaderTimeout),
		Graceful:   duration.Norwegian(DefaultGracefulTimeout),
	}
}

// Normalize sets default values for vital settings that haven't been set
func (cfg *Config) Normalize() error {
	if cfg.Host == "" {
		cfg.Host = DefaultHost
	}
	if cfg.Port <= 0 {
		cfg.Port = DefaultPort
	}
	if cfg.Timeouts == nil {
		cfg.Timeouts = defaultTimeouts()
	}
	if cfg.TLS == nil {
		cfg.TLS = &TLSConfig{}
	}

	if err := cfg.Timeouts.normalize(); err != nil {
		return err
	}

	return cfg.Validate()
}

// normalize parses every timeout, unset or non-positive values fall back to the defaults
func (t *TimeoutsConfig) normalize() error {
	fields := []struct {
		name   string
		value  string
		def    time.Duration
		target *time.Duration
	}{
		{"read", t.Read, DefaultReadTimeout, &t.read},
		{"write", t.Write, DefaultWriteTimeout, &t.write},
		{"idle", t.Idle, DefaultIdleTimeout, &t.idle},
		{"read_header", t.ReadHeader, DefaultHeaderTimeout, &t.readHeader},
		{"graceful", t.Graceful, DefaultGracefulTimeout, &t.graceful},
	}

	for _, f := range fields {
		d, err := duration.Parse(f.value)
		if err != nil {
			return fmt.Errorf("invalid %s timeout: %w", f.name, err)
		}
		if d <= 0 {
			d = f.def
		}
		*f.target = d
	}
	return nil
}

// GetReadTimeout returns the parsed read timeout duration
func (cfg *Config) GetReadTimeout() time.Duration {
	if cfg.Timeouts == nil {
		return DefaultReadTimeout
	}
	return cfg.Timeouts.read
}

// GetWriteTimeout returns the parsed write timeout duration
func (cfg *Config) GetWriteTimeout() time.Duration {
	if cfg.Timeouts == nil {
		return DefaultWriteTimeout
	}
	return cfg.Timeouts.write
}

// GetIdleTimeout returns the parsed idle timeout duration
func (cfg *Config) GetIdleTimeout() time.Duration {
	if cfg.Timeouts == nil {
		return DefaultIdleTimeout
	}
	return cfg.Timeouts.idle
}

// GetReadHeaderTimeout returns the parsed read header timeout duration
func (cfg *Config) GetReadHeaderTimeout() time.Duration {
	if cfg.Timeouts == nil {
		return DefaultHeaderTimeout
	}
	return cfg.Timeouts.readHeader
}

// GetGracefulTimeout returns the parsed graceful timeout duration
func (cfg *Config) GetGracefulTimeout() time.Duration {
	if cfg.Timeouts == nil {
		return DefaultGracefulTimeout
	}
	return cfg.Timeouts.graceful
}

// GetTLSCert returns the TLS certificate path
func (cfg *Config) GetTLSCert() string {
	if cfg.TLS != nil {
		return cfg.TLS.Cert
	}
	return ""
}

// GetTLSKey returns the TLS key path
func (cfg *Config) GetTLSKey() string {
	if cfg.TLS != nil {
		return cfg.TLS.Key
	}
	return ""
}

// Address returns the host:port to listen on
func (cfg *Config) Address() string {
	return fmt.Sprintf("%s:%d", cfg.Host, cfg.Port)
}

// Validate checks the listen configuration for errors
func (cfg *Config) Validate() error {
	if cfg.Port <= 0 || cfg.Port > 65535 {
		return fmt.Errorf("invalid port number: %d (must be between 1 and 65535)", cfg.Port)
	}

	if cfg.TLS != nil {
		if cfg.TLS.Cert != "" && cfg.TLS.Key == "" {
			return fmt.Errorf("TLS key file must be specified when TLS certificate is provided")
		}
		if cfg.TLS.Key != "" && cfg.TLS.Cert == "" {
			return fmt.Errorf("TLS certificate file must be specified when TLS key is provided")
		}
	}

	return nil
}

// GetSampleConfig returns a sample configuration for listening
func GetSampleConfig() string {
	return `  # Listen configuration
  listen {
    host = "127.0.0.1"                # Interface to listen on
    port = 8080                       # Port to listen on
    disable_server_header = false     # Hide the Server header

    # Durations accept Go notation ("10s") or Norwegian ("10 sekunder")
    timeouts {
      read        = "10 sekunder"
      write       = "30 sekunder"
      idle        = "2 minutter"
      read_header = "5s"
      graceful    = "30s"
    }

    # tls {
    #   cert = "/etc/juration/cert.pem"
    #   key  = "/etc/juration/key.pem"
    # }
  }`
}
