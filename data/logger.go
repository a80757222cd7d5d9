package data

import (
	"io"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// ParseLevel maps a config level name to zerolog. Unknown names fall back to info.
func ParseLevel(level string) zerolog.Level {
	switch strings.ToUpper(strings.TrimSpace(level)) {
	case "TRACE":
		return zerolog.TraceLevel
	case "DEBUG":
		return zerolog.DebugLevel
	case "WARN":
		return zerolog.WarnLevel
	case "ERROR":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

// NewLogger writes console formatted, timestamped entries to every writer.
// The first writer gets colors; the rest (files) do not.
func NewLogger(level string, out io.Writer, more ...io.Writer) zerolog.Logger {
	writers := []io.Writer{zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}}
	for _, w := range more {
		writers = append(writers, zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339, NoColor: true})
	}
	return zerolog.New(zerolog.MultiLevelWriter(writers...)).
		Level(ParseLevel(level)).
		With().Timestamp().Logger()
}
