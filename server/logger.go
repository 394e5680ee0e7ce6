package server

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/handlers"
	"github.com/mattn/go-colorable"
	"github.com/nmeilick/juration/common"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gopkg.in/natefinch/lumberjack.v2"
)

// SetupLogging configures request and error logging. Rotating log files are
// only written when a log directory is configured.
func (s *Server) SetupLogging() error {
	cfg := s.Config.Log
	if cfg == nil {
		return fmt.Errorf("log configuration is missing")
	}

	// Setup console writer with colors if stdout is a TTY
	var consoleWriter io.Writer
	if common.IsTTY(os.Stdout) {
		consoleWriter = zerolog.ConsoleWriter{
			Out:        colorable.NewColorableStdout(),
			TimeFormat: "2006-01-02 15:04:05.000",
			NoColor:    false,
		}
	} else {
		consoleWriter = os.Stdout
	}
	writers := []io.Writer{consoleWriter}

	if cfg.Enabled() {
		if err := os.MkdirAll(cfg.LogDir, 0755); err != nil {
			return fmt.Errorf("failed to create log directory: %w", err)
		}
		s.accessLogger = newRotatingLogger(cfg.AccessLogPath(), cfg.LogMaxSize, cfg.LogMaxBackups, cfg.LogMaxAge, cfg.LogCompress)
		s.errorLogger = newRotatingLogger(cfg.ErrorLogPath(), cfg.LogMaxSize, cfg.LogMaxBackups, cfg.LogMaxAge, cfg.LogCompress)
		writers = append(writers, s.errorLogger)
	}

	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	zerolog.TimestampFunc = func() time.Time {
		return time.Now().UTC()
	}

	level := zerolog.InfoLevel
	if os.Getenv("DEBUG") == "1" {
		level = zerolog.DebugLevel
	}

	log.Logger = zerolog.New(zerolog.MultiLevelWriter(writers...)).
		Level(level).
		With().
		Timestamp().
		Str("service", common.AppName).
		Logger()
	s.logger = log.Logger

	s.logger.Info().Bool("file_logging", cfg.Enabled()).Msg("Server starting up")
	return nil
}

func newRotatingLogger(path string, maxSize, maxBackups, maxAge int, compress bool) *lumberjack.Logger {
	return &lumberjack.Logger{
		Filename:   path,
		MaxSize:    maxSize,
		MaxBackups: maxBackups,
		MaxAge:     maxAge,
		Compress:   compress,
	}
}

// Handler returns the HTTP handler, wrapped with the access log when file logging is enabled
func (s *Server) Handler() http.Handler {
	if s.accessLogger == nil {
		return s.Router
	}
	return handlers.CombinedLoggingHandler(s.accessLogger, s.Router)
}

// GinLogger returns a gin middleware logging every request at debug level
func (s *Server) GinLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		s.logger.Debug().
			Str("request_id", c.GetString(requestIDKey)).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Str("query", c.Request.URL.RawQuery).
			Int("status", c.Writer.Status()).
			Dur("elapsed", time.Since(start)).
			Msg("Request")
	}
}

// closeLoggers closes the rotating log files
func (s *Server) closeLoggers() {
	if s.accessLogger != nil {
		s.accessLogger.Close()
	}
	if s.errorLogger != nil {
		s.errorLogger.Close()
	}
}
