// Package log configures the process wide slog logger.
package log

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"
)

// ParseLevel converts a textual level into slog.Level; empty means info.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "ERROR":
		return slog.LevelError, nil
	case "WARN", "WARNING":
		return slog.LevelWarn, nil
	case "INFO", "":
		return slog.LevelInfo, nil
	case "DEBUG":
		return slog.LevelDebug, nil
	default:
		return 0, fmt.Errorf("invalid log level: %s", s)
	}
}

// New creates a logger writing to w; format "json" selects the JSON handler.
func New(w io.Writer, level slog.Level, format string) *slog.Logger {
	options := &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey && len(groups) == 0 {
				return slog.Attr{Key: slog.TimeKey, Value: slog.StringValue(a.Value.Time().Format(time.RFC3339Nano))}
			}
			return a
		},
	}
	if strings.EqualFold(format, "json") {
		return slog.New(slog.NewJSONHandler(w, options))
	}
	return slog.New(slog.NewTextHandler(w, options))
}

// Setup installs a default logger on stderr; LOG_LEVEL and LOG_FORMAT are used when arguments are empty.
func Setup(level, format string) (*slog.Logger, error) {
	if level == "" {
		level = os.Getenv("LOG_LEVEL")
	}
	if format == "" {
		format = os.Getenv("LOG_FORMAT")
	}
	parsed, err := ParseLevel(level)
	if err != nil {
		return nil, err
	}
	logger := New(os.Stderr, parsed, format)
	slog.SetDefault(logger)
	return logger, nil
}

// Discard returns a logger that drops everything.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError + 1}))
}
