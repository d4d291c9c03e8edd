// Package logger provides structured logging for the server.
package logger

import (
	"os"
	"time"

	"github.com/rs/zerolog"
)

// New creates a zerolog logger at the given level. Unknown levels fall back
// to info. Output is a console writer on stdout.
func New(level string) zerolog.Logger {
	zerologLevel, err := zerolog.ParseLevel(level)
	if err != nil || zerologLevel == zerolog.NoLevel {
		zerologLevel = zerolog.InfoLevel
	}

	output := zerolog.ConsoleWriter{
		Out:        os.Stdout,
		TimeFormat: time.RFC3339,
	}

	return zerolog.New(output).
		Level(zerologLevel).
		With().
		Timestamp().
		Str("service", "codebro-server").
		Logger()
}
