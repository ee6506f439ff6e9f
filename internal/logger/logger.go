package logger

import (
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

var (
	base     zerolog.Logger
	initOnce sync.Once
)

// Options override the environment-derived logger settings.
type Options struct {
	// Debug forces debug level and console output regardless of LOG_LEVEL / LOG_PRETTY.
	Debug bool
	// Out defaults to os.Stdout.
	Out io.Writer
}

// Init configures the global JSON logger from the environment.
//
// Environment variables (optional):
//   - LOG_LEVEL: debug|info|warn|error (default: info)
//   - LOG_PRETTY: true|false (default: false)
func Init() {
	Configure(Options{})
}

// Configure builds the global logger. The "service" field is attached to every event.
// It replaces the lazily built default and may be called again to override it.
func Configure(opts Options) {
	l := build(opts)
	initOnce.Do(func() {})
	base = l
}

func build(opts Options) zerolog.Logger {
	level := parseLevel(getenv("LOG_LEVEL", "info"))
	pretty := strings.EqualFold(getenv("LOG_PRETTY", "false"), "true")
	if opts.Debug {
		level = zerolog.DebugLevel
		pretty = true
	}

	out := opts.Out
	if out == nil {
		out = os.Stdout
	}

	zerolog.TimeFieldFormat = time.RFC3339Nano
	w := out
	if pretty {
		w = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}
	}
	return zerolog.New(w).With().Timestamp().Str("service", "financial-data").Logger().Level(level)
}

// L returns the global logger. Call Init() or Configure() once on startup;
// otherwise the first call builds it from the environment.
func L() *zerolog.Logger {
	initOnce.Do(func() { base = build(Options{}) })
	return &base
}

// Component returns a child logger tagged with the given component name.
func Component(name string) zerolog.Logger {
	return L().With().Str("component", name).Logger()
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func parseLevel(s string) zerolog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return zerolog.DebugLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error", "err":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}
