// Package solverlog provides the structured logger shared by the CLI
// commands and the HTTP facade. The constraint-propagation core itself
// never logs; only its callers do.
package solverlog

import (
	"os"

	"github.com/rs/zerolog"
)

// New returns a console-pretty-printed logger at the given level, stamped
// with component as a persistent field.
func New(level zerolog.Level, component string) zerolog.Logger {
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().
		Timestamp().
		Str("component", component).
		Logger()
}
