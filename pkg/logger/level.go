package logger

import (
	"fmt"
	"log/slog"
)

// Levels above [slog.LevelError], used for failures that stop a request or the process.
const (
	LevelCritical = slog.Level(12)
	LevelPanic    = slog.Level(14)
	LevelFatal    = slog.Level(16)
)

var customLevels = []struct {
	level slog.Level
	name  string
}{
	{LevelFatal, "FATAL"},
	{LevelPanic, "PANIC"},
	{LevelCritical, "CRITICAL"},
}

// levelName names custom levels as slog names its own: "PANIC", or "PANIC+1" in between.
func levelName(l slog.Level) (string, bool) {
	for _, c := range customLevels {
		if l < c.level {
			continue
		}
		if l == c.level {
			return c.name, true
		}
		return fmt.Sprintf("%s%+d", c.name, l-c.level), true
	}
	return "", false
}

func levelAttrReplacer(groups []string, attr slog.Attr) slog.Attr {
	if len(groups) != 0 || attr.Key != slog.LevelKey {
		return attr
	}
	if l, ok := attr.Value.Any().(slog.Level); ok {
		if name, ok := levelName(l); ok {
			return slog.String(attr.Key, name)
		}
	}
	return attr
}
