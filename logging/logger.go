// Package logging configures the structured logger shared by the command
// line and the terminal composer.
package logging

import (
	"io"
	"log/slog"
	"strings"

	"github.com/pkg/errors"
)

// Level is the logging verbosity.
type Level int

const (
	LevelError Level = iota
	LevelWarn
	LevelInfo
	LevelDebug
)

func (l Level) String() string {
	switch l {
	case LevelError:
		return "error"
	case LevelWarn:
		return "warn"
	case LevelInfo:
		return "info"
	case LevelDebug:
		return "debug"
	default:
		return "warn"
	}
}

func (l Level) slogLevel() slog.Level {
	switch l {
	case LevelError:
		return slog.LevelError
	case LevelInfo:
		return slog.LevelInfo
	case LevelDebug:
		return slog.LevelDebug
	default:
		return slog.LevelWarn
	}
}

// ParseLevel accepts error, warn, info and debug. An empty string is warn.
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "error":
		return LevelError, nil
	case "", "warn", "warning":
		return LevelWarn, nil
	case "info":
		return LevelInfo, nil
	case "debug":
		return LevelDebug, nil
	}
	return LevelWarn, errors.Errorf("invalid log level: %s (must be one of error, warn, info, debug)", s)
}

// Logger wraps slog.Logger with the context helpers used across packages.
type Logger struct {
	*slog.Logger
	level Level
}

// New returns a text logger writing to w.
func New(w io.Writer, level Level) *Logger {
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level.slogLevel(),
	})
	return &Logger{
		Logger: slog.New(handler),
		level:  level,
	}
}

// Discard returns a logger that drops every record.
func Discard() *Logger {
	return &Logger{
		Logger: slog.New(slog.DiscardHandler),
		level:  LevelError,
	}
}

func (l *Logger) Level() Level {
	return l.level
}

func (l *Logger) WithComponent(component string) *Logger {
	return &Logger{
		Logger: l.Logger.With("component", component),
		level:  l.level,
	}
}

// WithRequest adds the method and the masked URL to every record.
func (l *Logger) WithRequest(method, url string) *Logger {
	return &Logger{
		Logger: l.Logger.With("method", method, "url", Mask(url)),
		level:  l.level,
	}
}

// OrDiscard returns l, or a discarding logger when l is nil.
func (l *Logger) OrDiscard() *Logger {
	if l == nil {
		return Discard()
	}
	return l
}
