package logging

import (
	"context"

	"github.com/rs/zerolog"
)

// Logger is the process-wide logger. It discards everything until a command
// installs a real logger with SetGlobalLogger.
var Logger zerolog.Logger

func init() {
	SetGlobalLogger(zerolog.Nop())
}

func SetGlobalLogger(logger zerolog.Logger) {
	Logger = logger
	zerolog.DefaultContextLogger = &Logger
}

// Component returns a child of the global logger tagged with the given
// component name.
func Component(name string) zerolog.Logger {
	return Logger.With().Str("component", name).Logger()
}

func With() zerolog.Context { return Logger.With() }

func Err(err error) *zerolog.Event { return Logger.Err(err) }

func Trace() *zerolog.Event { return Logger.Trace() }

func Debug() *zerolog.Event { return Logger.Debug() }

func Info() *zerolog.Event { return Logger.Info() }

func Warn() *zerolog.Event { return Logger.Warn() }

func Error() *zerolog.Event { return Logger.Error() }

func Fatal() *zerolog.Event { return Logger.Fatal() }

func Ctx(ctx context.Context) *zerolog.Logger { return zerolog.Ctx(ctx) }
