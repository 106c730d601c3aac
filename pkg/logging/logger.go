// Package logging provides structured logging for storecat using zerolog.
// Terminals get human-readable console output; pipes and files get JSON
// lines that can be shipped alongside the produced table.
//
// Example usage:
//
//	log := logging.Default()
//	log.Info().Str("snapshot", path).Int("documents", n).Msg("Snapshot loaded")
//
//	ctx := logging.WithRun(context.Background(), runID)
//	logging.FromContext(ctx).Debug().Msg("Extraction started")
package logging

import (
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

var (
	// defaultLogger is the global logger instance.
	defaultLogger zerolog.Logger

	// Nop logger for discarding output.
	Nop = zerolog.Nop()
)

func init() {
	defaultLogger = NewLoggerFromConfig(ConfigFromEnv())
}

// Default returns the default global logger.
func Default() *zerolog.Logger {
	return &defaultLogger
}

// SetDefault sets the default global logger.
// The global level is lowered when the logger is more verbose than it, so
// the logger's own level decides what is written.
func SetDefault(logger zerolog.Logger) {
	if level := logger.GetLevel(); level < zerolog.GlobalLevel() {
		zerolog.SetGlobalLevel(level)
	}
	defaultLogger = logger
	log.Logger = logger
}

// New creates a new logger with the given writer.
func New(w io.Writer) zerolog.Logger {
	return zerolog.New(w).
		Level(zerolog.GlobalLevel()).
		With().
		Timestamp().
		Logger()
}

// Debug starts a new debug level log event.
func Debug() *zerolog.Event {
	return defaultLogger.Debug()
}

// Info starts a new info level log event.
func Info() *zerolog.Event {
	return defaultLogger.Info()
}

// Warn starts a new warning level log event.
func Warn() *zerolog.Event {
	return defaultLogger.Warn()
}

// Error starts a new error level log event.
func Error() *zerolog.Event {
	return defaultLogger.Error()
}

// Err creates a new error log event with the given error.
func Err(err error) *zerolog.Event {
	return defaultLogger.Err(err)
}

func stderrIsTerminal() bool {
	fd := os.Stderr.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
