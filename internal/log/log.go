// Package log is the structured logger used across BeOnTrack, a thin layer
// over charmbracelet/log.
package log

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
)

// Level represents log levels
type Level = log.Level

// Level constants
const (
	DebugLevel = log.DebugLevel
	InfoLevel  = log.InfoLevel
	WarnLevel  = log.WarnLevel
	ErrorLevel = log.ErrorLevel
)

// Logger is a structured logger instance
type Logger struct {
	*log.Logger
}

// Options configures a logger
type Options struct {
	Level           Level
	Prefix          string
	ReportTimestamp bool
	Output          io.Writer
}

// DefaultOptions logs warnings and above to stderr. The CLI prints its own
// styled output, so info level chatter is opt-in through --debug.
func DefaultOptions() Options {
	return Options{
		Level:           WarnLevel,
		Prefix:          "beontrack",
		ReportTimestamp: true,
		Output:          os.Stderr,
	}
}

// New creates a new logger with the given options
func New(opts Options) *Logger {
	output := opts.Output
	if output == nil {
		output = os.Stderr
	}

	l := log.NewWithOptions(output, log.Options{
		Level:           opts.Level,
		Prefix:          opts.Prefix,
		ReportTimestamp: opts.ReportTimestamp,
	})
	return &Logger{Logger: l}
}

// Discard returns a logger that drops everything, for tests
func Discard() *Logger {
	return New(Options{Level: ErrorLevel, Output: io.Discard})
}

var defaultLogger = New(DefaultOptions())

// Default returns the default logger instance
func Default() *Logger {
	return defaultLogger
}

// SetDefault sets the default logger
func SetDefault(l *Logger) {
	defaultLogger = l
}

// LevelFor picks the level for the --debug flag
func LevelFor(debug bool) Level {
	if debug {
		return DebugLevel
	}
	return DefaultOptions().Level
}

// With returns a new logger with additional context
func (l *Logger) With(keyvals ...interface{}) *Logger {
	return &Logger{Logger: l.Logger.With(keyvals...)}
}

// WithPrefix returns a new logger with the given prefix
func (l *Logger) WithPrefix(prefix string) *Logger {
	return &Logger{Logger: l.Logger.WithPrefix(prefix)}
}

// Debug logs a debug message on the default logger
func Debug(msg interface{}, keyvals ...interface{}) {
	defaultLogger.Debug(msg, keyvals...)
}

// Info logs an info message on the default logger
func Info(msg interface{}, keyvals ...interface{}) {
	defaultLogger.Info(msg, keyvals...)
}

// Warn logs a warning on the default logger
func Warn(msg interface{}, keyvals ...interface{}) {
	defaultLogger.Warn(msg, keyvals...)
}

// Error logs an error on the default logger
func Error(msg interface{}, keyvals ...interface{}) {
	defaultLogger.Error(msg, keyvals...)
}
