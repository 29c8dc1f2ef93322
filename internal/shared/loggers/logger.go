package loggers

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/rs/zerolog"
)

const (
	FormatJSON    = "json"
	FormatConsole = "console"

	consoleTimeFormat = "[15:04:05]"
)

// Logger is a wrapper around zerolog.Logger for convenience.
type Logger = zerolog.Logger

// New creates a new zerolog logger writing to w at the given level.
// format selects between raw JSON lines and a human readable console layout.
func New(level string, format string, w io.Writer) (Logger, error) {
	zerologLevel, err := zerolog.ParseLevel(level)
	if err != nil {
		return zerolog.Nop(), err
	}

	zerolog.TimestampFunc = func() time.Time {
		return time.Now().UTC()
	}

	switch format {
	case FormatJSON, "":
	case FormatConsole:
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: consoleTimeFormat, NoColor: true}
	default:
		return zerolog.Nop(), fmt.Errorf("unknown log format %q", format)
	}

	logger := zerolog.New(w).
		Level(zerologLevel).
		With().
		Timestamp().
		Caller().
		Logger()

	return logger, nil
}

// Nop returns a logger that discards everything.
func Nop() Logger {
	return zerolog.Nop()
}

// Ctx extracts a logger from the context.
// Returns a disabled logger if no logger is found in context.
var Ctx = func(ctx context.Context) *Logger {
	return zerolog.Ctx(ctx)
}
