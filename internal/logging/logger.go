package logging

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

const (
	// EnvLevel overrides the configured log level.
	EnvLevel = "BEZEL_LOG_LEVEL"
	// EnvFormat overrides the configured log format.
	EnvFormat = "BEZEL_LOG_FORMAT"

	FormatConsole = "console"
	FormatJSON    = "json"
)

// Config holds logging configuration
type Config struct {
	Level      zerolog.Level
	Format     string // "json" or "console"
	TimeFormat string
	Output     io.Writer // defaults to os.Stderr
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Level:      zerolog.InfoLevel,
		Format:     FormatConsole,
		TimeFormat: time.RFC3339,
	}
}

// ParseLevel maps a level name to a zerolog level.
// Unknown names report false.
func ParseLevel(name string) (zerolog.Level, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "trace":
		return zerolog.TraceLevel, true
	case "debug":
		return zerolog.DebugLevel, true
	case "info":
		return zerolog.InfoLevel, true
	case "warn", "warning":
		return zerolog.WarnLevel, true
	case "error":
		return zerolog.ErrorLevel, true
	case "fatal":
		return zerolog.FatalLevel, true
	case "disabled", "off":
		return zerolog.Disabled, true
	}
	return zerolog.InfoLevel, false
}

// New creates a new zerolog logger with the given configuration
func New(cfg Config) zerolog.Logger {
	out := cfg.Output
	if out == nil {
		out = os.Stderr
	}

	var output io.Writer = out
	if cfg.Format != FormatJSON {
		output = zerolog.ConsoleWriter{
			Out:        out,
			TimeFormat: cfg.TimeFormat,
		}
	}

	return zerolog.New(output).
		Level(cfg.Level).
		With().
		Timestamp().
		Logger()
}

// ResolveConfig turns string settings into a Config. Environment variables
// win over the arguments; invalid values keep the defaults.
func ResolveConfig(level, format string) Config {
	cfg := DefaultConfig()

	if env := os.Getenv(EnvLevel); env != "" {
		level = env
	}
	if env := os.Getenv(EnvFormat); env != "" {
		format = env
	}

	if lvl, ok := ParseLevel(level); ok {
		cfg.Level = lvl
	}

	switch strings.ToLower(format) {
	case FormatJSON, FormatConsole:
		cfg.Format = strings.ToLower(format)
	}

	return cfg
}
