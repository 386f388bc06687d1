// Package logging configures the process-wide zerolog logger.
package logging

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Init sets the global level and output. Unknown levels fall back to info.
// With json=false output goes through a human-readable console writer.
func Init(level string, json bool) {
	InitWithWriter(level, json, os.Stderr)
}

// InitWithWriter is Init with an explicit destination
func InitWithWriter(level string, json bool, out io.Writer) {
	zerolog.SetGlobalLevel(ParseLevel(level))
	zerolog.TimeFieldFormat = time.RFC3339

	if json {
		log.Logger = zerolog.New(out).With().Timestamp().Logger()
		return
	}
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: out, TimeFormat: time.Kitchen}).
		With().Timestamp().Logger()
}

// ParseLevel maps a config level name to a zerolog level
func ParseLevel(level string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return zerolog.DebugLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}
