package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"doc-compare/internal/domain"

	"github.com/rs/zerolog"
)

// AppLogger implements the domain.Logger interface on top of zerolog
type AppLogger struct {
	logger zerolog.Logger
}

// NewLogger creates a new logger instance writing to stdout
func NewLogger(levelStr, format string) domain.Logger {
	return New(os.Stdout, levelStr, format)
}

// New creates a logger writing to out. format is "json" or "console".
func New(out io.Writer, levelStr, format string) *AppLogger {
	if strings.ToLower(format) != "json" {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.DateTime}
	}
	zl := zerolog.New(out).
		Level(parseLogLevel(levelStr)).
		With().
		Timestamp().
		Logger()

	return &AppLogger{logger: zl}
}

// NewNop returns a logger that discards everything.
func NewNop() domain.Logger {
	return &AppLogger{logger: zerolog.Nop()}
}

// Info logs an info message
func (l *AppLogger) Info(msg string, fields ...interface{}) {
	withFields(l.logger.Info(), fields).Msg(msg)
}

// Error logs an error message
func (l *AppLogger) Error(msg string, err error, fields ...interface{}) {
	withFields(l.logger.Error().Err(err), fields).Msg(msg)
}

// Debug logs a debug message
func (l *AppLogger) Debug(msg string, fields ...interface{}) {
	withFields(l.logger.Debug(), fields).Msg(msg)
}

// Warn logs a warning message
func (l *AppLogger) Warn(msg string, fields ...interface{}) {
	withFields(l.logger.Warn(), fields).Msg(msg)
}

// With returns a child logger carrying the given key/value pairs
func (l *AppLogger) With(fields ...interface{}) domain.Logger {
	ctx := l.logger.With()
	for i := 0; i+1 < len(fields); i += 2 {
		ctx = ctx.Interface(fmt.Sprint(fields[i]), fields[i+1])
	}
	return &AppLogger{logger: ctx.Logger()}
}

// withFields attaches alternating key/value pairs; a trailing key without value is dropped.
func withFields(e *zerolog.Event, fields []interface{}) *zerolog.Event {
	for i := 0; i+1 < len(fields); i += 2 {
		key := fmt.Sprint(fields[i])
		switch v := fields[i+1].(type) {
		case error:
			e = e.AnErr(key, v)
		case string:
			e = e.Str(key, v)
		case int:
			e = e.Int(key, v)
		case time.Duration:
			e = e.Dur(key, v)
		default:
			e = e.Interface(key, v)
		}
	}
	return e
}

// parseLogLevel converts string log level to a zerolog level
func parseLogLevel(levelStr string) zerolog.Level {
	switch strings.ToLower(levelStr) {
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

// Redact keeps the first and last four characters of a secret.
func Redact(value string) string {
	if value == "" {
		return "NOT SET"
	}
	if len(value) <= 8 {
		return strings.Repeat("*", len(value))
	}
	return value[:4] + "..." + value[len(value)-4:]
}
