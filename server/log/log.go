package log

import (
	"fmt"
	"path/filepath"
)

// Default configuration constants
const (
	DefaultAccessLog     = "access.log"
	DefaultErrorLog      = "error.log"
	DefaultLogMaxSize    = 100 // MB
	DefaultLogMaxBackups = 5
	DefaultLogMaxAge     = 30 // days
)

// LogConfig defines configuration for server logging. Without a log
// directory the server only logs to the console.
type LogConfig struct {
	// LogDir is the directory where log files are stored
	LogDir string `hcl:"log_dir,optional"`

	// AccessLog is the filename for the access log
	AccessLog string `hcl:"access_log,optional"`

	// ErrorLog is the filename for the error log
	ErrorLog string `hcl:"error_log,optional"`

	// LogMaxSize is the maximum size of log files in megabytes before rotation
	LogMaxSize int `hcl:"log_max_size,optional"`

	// LogMaxBackups is the maximum number of old log files to retain
	LogMaxBackups int `hcl:"log_max_backups,optional"`

	// LogMaxAge is the maximum number of days to retain old log files
	LogMaxAge int `hcl:"log_max_age,optional"`

	// LogCompress determines if rotated log files should be compressed
	LogCompress bool `hcl:"log_compress,optional"`
}

// DefaultConfig returns a new LogConfig with default values
func DefaultConfig() *LogConfig {
	return &LogConfig{
		AccessLog:     DefaultAccessLog,
		ErrorLog:      DefaultErrorLog,
		LogMaxSize:    DefaultLogMaxSize,
		LogMaxBackups: DefaultLogMaxBackups,
		LogMaxAge:     DefaultLogMaxAge,
	}
}

// Normalize sets default values for vital settings that haven't been set
func (cfg *LogConfig) Normalize() error {
	if cfg.AccessLog == "" {
		cfg.AccessLog = DefaultAccessLog
	}
	if cfg.ErrorLog == "" {
		cfg.ErrorLog = DefaultErrorLog
	}
	if cfg.LogMaxSize <= 0 {
		cfg.LogMaxSize = DefaultLogMaxSize
	}
	if cfg.LogMaxBackups <= 0 {
		cfg.LogMaxBackups = DefaultLogMaxBackups
	}
	if cfg.LogMaxAge <= 0 {
		cfg.LogMaxAge = DefaultLogMaxAge
	}
	return cfg.Validate()
}

// Enabled reports whether logs are written to files
func (cfg *LogConfig) Enabled() bool {
	return cfg != nil && cfg.LogDir != ""
}

// AccessLogPath returns the access log file path, empty when file logging is disabled
func (cfg *LogConfig) AccessLogPath() string {
	if !cfg.Enabled() {
		return ""
	}
	return filepath.Join(cfg.LogDir, cfg.AccessLog)
}

// ErrorLogPath returns the error log file path, empty when file logging is disabled
func (cfg *LogConfig) ErrorLogPath() string {
	if !cfg.Enabled() {
		return ""
	}
	return filepath.Join(cfg.LogDir, cfg.ErrorLog)
}

// Validate checks the log configuration for errors
func (cfg *LogConfig) Validate() error {
	if filepath.Base(cfg.AccessLog) != cfg.AccessLog {
		return fmt.Errorf("access_log must be a file name, not a path: %s", cfg.AccessLog)
	}
	if filepath.Base(cfg.ErrorLog) != cfg.ErrorLog {
		return fmt.Errorf("error_log must be a file name, not a path: %s", cfg.ErrorLog)
	}
	if cfg.AccessLog == cfg.ErrorLog {
		return fmt.Errorf("access_log and error_log must differ")
	}
	return nil
}
