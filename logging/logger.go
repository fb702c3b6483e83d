package logging

import (
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// New constructs the application logger. LOG_LEVEL and LOG_FORMAT come from
// the environment; defaults are info level, console output.
func New() zerolog.Logger {
	level := zerolog.InfoLevel
	if parsed, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(os.Getenv("LOG_LEVEL")))); err == nil && parsed != zerolog.NoLevel {
		level = parsed
	}

	var out = zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}
	if strings.EqualFold(strings.TrimSpace(os.Getenv("LOG_FORMAT")), "json") {
		return zerolog.New(os.Stdout).Level(level).With().Timestamp().Str("app", "cabin-backoffice").Logger()
	}

	return zerolog.New(out).Level(level).With().Timestamp().Str("app", "cabin-backoffice").Logger()
}
