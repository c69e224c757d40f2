package logger

import (
	"os"
	"time"

	"github.com/rs/zerolog"
)

var Log zerolog.Logger

// Init configures the global logger. Dev mode gets a human console writer,
// anything else structured JSON. Diagnostics go to stderr so they never mix
// with the progress lines on stdout.
func Init(isDev bool) {
	zerolog.TimeFieldFormat = time.RFC3339

	if isDev {
		Log = zerolog.New(zerolog.ConsoleWriter{
			Out:        os.Stderr,
			TimeFormat: "15:04:05",
		}).With().Timestamp().Logger()
	} else {
		Log = zerolog.New(os.Stderr).With().Timestamp().Logger()
	}
	Log = Log.Level(zerolog.InfoLevel)
}

// SetVerbose lowers the level to debug.
func SetVerbose(v bool) {
	if v {
		Log = Log.Level(zerolog.DebugLevel)
	}
}

func IsDev() bool {
	env := os.Getenv("ENV")
	return env == "" || env == "dev" || env == "development"
}
