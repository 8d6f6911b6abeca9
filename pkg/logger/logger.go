package logger

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

func New(env string) zerolog.Logger {
	return NewWithWriter(env, os.Stdout)
}

// NewWithWriter logs JSON to w; dev gets debug level, everything else info.
func NewWithWriter(env string, w io.Writer) zerolog.Logger {
	zerolog.TimeFieldFormat = time.RFC3339
	l := zerolog.New(w).With().Timestamp().Str("service", "insurance-portal").Logger()
	if env == "dev" {
		return l.Level(zerolog.DebugLevel)
	}
	return l.Level(zerolog.InfoLevel)
}
