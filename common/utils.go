package common

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/urfave/cli/v2"
)

// ExitWithError prints an error message and exits
func ExitWithError(err error) {
	fmt.Fprintf(os.Stderr, "Error: %s\n", err)
	os.Exit(1)
}

// IsTTY checks if the given file is a TTY
func IsTTY(file *os.File) bool {
	return isatty.IsTerminal(file.Fd()) || isatty.IsCygwinTerminal(file.Fd())
}

// NewLogger creates a new zerolog logger with appropriate settings
// It configures colorful output when stderr is a TTY and sets the log level
// based on the verbose flag from the CLI context. DEBUG=1 enables debug output.
func NewLogger(c *cli.Context) zerolog.Logger {
	// Set time format with millisecond precision
	zerolog.TimeFieldFormat = "2006-01-02 15:04:05.000"

	// Set global time function to use UTC
	zerolog.TimestampFunc = func() time.Time {
		return time.Now().UTC()
	}

	// Determine log level based on verbose flag
	level := zerolog.FatalLevel
	if c.Bool("verbose") {
		level = zerolog.InfoLevel
	}
	if os.Getenv("DEBUG") == "1" {
		level = zerolog.DebugLevel
	}

	// Create console writer with colors if stderr is a TTY
	var consoleWriter io.Writer
	if IsTTY(os.Stderr) {
		consoleWriter = zerolog.ConsoleWriter{
			Out:        colorable.NewColorableStderr(),
			TimeFormat: "2006-01-02 15:04:05.000",
			NoColor:    false,
		}
	} else {
		consoleWriter = os.Stderr
	}

	component := AppName
	if c.Command != nil && c.Command.Name != "" {
		component = c.Command.Name
	}

	// Create and return configured logger
	return zerolog.New(consoleWriter).
		Level(level).
		With().
		Timestamp().
		Str("component", component).
		Logger()
}

// JoinArgs joins command line arguments into a single expression
func JoinArgs(args []string) string {
	return strings.TrimSpace(strings.Join(args, " "))
}
