// Package logging configures the process-wide zerolog logger.
package logging

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// New constructs a zerolog logger from level and format configuration and
// installs it as the package-global logger used across the module. Logs go
// to stderr so command output on stdout stays clean.
//
// level: "debug" | "info" | "warn" | "error" (empty = "info").
// format: "console" | "json" (empty = "console").
func New(level, format string) (zerolog.Logger, error) {
	if level == "" {
		level = "info"
	}
	lvl, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil {
		return zerolog.Logger{}, fmt.Errorf("logging: parse level %q: %w", level, err)
	}

	var logger zerolog.Logger
	switch strings.ToLower(format) {
	case "json":
		logger = zerolog.New(os.Stderr).With().Timestamp().Logger()
	case "", "console":
		consoleWriter := zerolog.ConsoleWriter{
			Out:        os.Stderr,
			TimeFormat: time.RFC3339,
		}
		logger = zerolog.New(consoleWriter).With().Timestamp().Logger()
	default:
		return zerolog.Logger{}, fmt.Errorf("logging: unsupported log format %q", format)
	}

	zerolog.SetGlobalLevel(lvl)
	log.Logger = logger.Level(lvl)

	return log.Logger, nil
}
