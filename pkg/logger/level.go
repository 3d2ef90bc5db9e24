package logger

import (
	"log/slog"
	"strings"
)

const (
	levelTrace    = slog.LevelDebug - 4
	levelCritical = slog.LevelError + 4
)

func levelName(level slog.Level) string {
	switch level {
	case levelTrace:
		return "TRACE"
	case levelCritical:
		return "CRITICAL"
	}
	return level.String()
}

// ParseLevel maps a configuration value to a level. Unknown values yield
// fallback.
func ParseLevel(value string, fallback slog.Level) slog.Level {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "trace":
		return levelTrace
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	case "critical", "fatal":
		return levelCritical
	default:
		return fallback
	}
}
