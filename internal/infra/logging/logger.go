// Package logging provides the slog-backed logger used by use cases.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"sync"
	"time"

	"figroad/internal/domain"
)

// Ensure Logger implements domain.Logger.
var _ domain.Logger = (*Logger)(nil)

// Logger writes leveled, categorized log lines to a single writer.
type Logger struct {
	w     io.Writer
	mu    sync.Mutex
	level slog.Level
	now   func() time.Time
}

// New creates a Logger writing to w. A nil writer disables logging.
func New(w io.Writer, level slog.Level) *Logger {
	return &Logger{w: w, level: level, now: time.Now}
}

// ParseLevel parses a log level string into slog.Level.
func ParseLevel(levelStr string) slog.Level {
	switch levelStr {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// formatLine formats one entry.
// Format: [2025-12-30 09:32:51] [INFO] [export] message
func formatLine(t time.Time, level slog.Level, category, msg string) string {
	return fmt.Sprintf("[%s] [%s] [%s] %s\n",
		t.Format("2006-01-02 15:04:05"),
		levelToString(level),
		category,
		msg,
	)
}

func levelToString(level slog.Level) string {
	switch level {
	case slog.LevelDebug:
		return "DEBUG"
	case slog.LevelWarn:
		return "WARN"
	case slog.LevelError:
		return "ERROR"
	default:
		return "INFO"
	}
}

func (l *Logger) log(level slog.Level, category, msg string) {
	if l.w == nil || level < l.level {
		return
	}
	entry := formatLine(l.now(), level, category, msg)
	l.mu.Lock()
	defer l.mu.Unlock()
	_, _ = io.WriteString(l.w, entry)
}

// Debug logs a debug message.
func (l *Logger) Debug(category, msg string) { l.log(slog.LevelDebug, category, msg) }

// Info logs an info message.
func (l *Logger) Info(category, msg string) { l.log(slog.LevelInfo, category, msg) }

// Warn logs a warning message.
func (l *Logger) Warn(category, msg string) { l.log(slog.LevelWarn, category, msg) }

// Error logs an error message.
func (l *Logger) Error(category, msg string) { l.log(slog.LevelError, category, msg) }
