// Package logger holds the process-wide zerolog logger. Commands call Setup
// once during flag handling; everything else logs through Log.
package logger

import (
	"os"
	"time"

	"github.com/rs/zerolog"
)

// Log writes human-readable output to stderr so it never mixes with the
// YAML/JSON results on stdout.
var Log = zerolog.New(zerolog.ConsoleWriter{
	Out:        os.Stderr,
	TimeFormat: time.RFC3339,
}).With().Timestamp().Logger().Level(zerolog.WarnLevel)

// Setup adjusts the global log level. Debug logging stays opt-in.
func Setup(verbose bool) {
	if verbose {
		Log = Log.Level(zerolog.DebugLevel)
	} else {
		Log = Log.Level(zerolog.WarnLevel)
	}
}
