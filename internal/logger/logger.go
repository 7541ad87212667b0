package logger

import (
	"context"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type contextKey string

const loggerKey contextKey = "logger"

// Setup configures the global logger: human-readable console output during development,
// JSON with unix timestamps in production
func Setup(production bool) {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	if production {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
		log.Logger = zerolog.New(os.Stderr).With().Timestamp().Logger()
		return
	}
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
}

// NewWithWriter creates a logger writing JSON to w
func NewWithWriter(w io.Writer) zerolog.Logger {
	return zerolog.New(w).With().Timestamp().Logger()
}

// Component returns the global logger tagged with a component name
func Component(name string) zerolog.Logger {
	return log.With().Str("component", name).Logger()
}

// WithContext stores a logger in ctx
func WithContext(ctx context.Context, l zerolog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// FromContext returns the logger stored in ctx, or the global logger
func FromContext(ctx context.Context) zerolog.Logger {
	if l, ok := ctx.Value(loggerKey).(zerolog.Logger); ok {
		return l
	}
	return log.Logger
}
