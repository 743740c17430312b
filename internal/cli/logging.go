package cli

import (
	"os"
	"time"

	"github.com/rs/zerolog"
)

// log is the package logger. It starts at info on the console and is
// replaced once the configuration is resolved.
var log = newLogger("info")

// newLogger builds a console logger at the given level, falling back to
// info when the level does not parse.
func newLogger(level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		lvl = zerolog.InfoLevel
	}

	console := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
	}

	return zerolog.New(console).
		Level(lvl).
		With().
		Timestamp().
		Logger()
}
