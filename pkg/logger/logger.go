// Package logger owns the process-wide zerolog logger for the sharing API.
// cmd/api calls Init once at startup and hands the returned logger to the
// router, services and infrastructure by injection; every event carries a
// service field so log lines from several deployments can be told apart.
package logger

import (
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

const defaultService = "sharing-api"

// Options controls how the logger is built.
type Options struct {
	// Level is the minimum level to emit: trace, debug, info, warn, error
	// or fatal. Empty or unrecognised values fall back to info.
	Level string
	// Pretty switches to the human-readable console writer. Production
	// deployments leave it off and ship JSON.
	Pretty bool
	// Service is stamped on every event. Defaults to "sharing-api".
	Service string
	// Output defaults to os.Stdout.
	Output io.Writer
}

var (
	instance    zerolog.Logger
	once        sync.Once
	initialized bool
)

// Init builds the logger on the first call and returns it. Later calls return
// the logger from the first call unchanged, whatever options they carry.
func Init(opts Options) zerolog.Logger {
	once.Do(func() {
		zerolog.TimeFieldFormat = time.RFC3339Nano

		out := opts.Output
		if out == nil {
			out = os.Stdout
		}
		if opts.Pretty {
			out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}
		}

		service := opts.Service
		if service == "" {
			service = defaultService
		}

		lvl := parseLevel(opts.Level)
		zerolog.SetGlobalLevel(lvl)

		instance = zerolog.New(out).
			Level(lvl).
			With().
			Timestamp().
			Str("service", service).
			Logger()

		initialized = true
	})
	return instance
}

// Get returns the logger built by Init and panics when called before it.
func Get() zerolog.Logger {
	if !initialized {
		panic("logger: Get() called before Init()")
	}
	return instance
}

// Reset discards the current logger so the next Init rebuilds it. Test use only.
func Reset() {
	once = sync.Once{}
	instance = zerolog.Logger{}
	initialized = false
}

func parseLevel(s string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	case "fatal":
		return zerolog.FatalLevel
	default:
		return zerolog.InfoLevel
	}
}
