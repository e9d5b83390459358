package logging

import (
	"context"
	"io"
	"log/slog"

	"github.com/andrescamacho/infrast-go/internal/application/common"
)

// SlogLogger writes session log entries through log/slog
type SlogLogger struct {
	logger *slog.Logger
}

// NewSlogLogger creates a logger with the given level (debug, info, warn,
// error) and format (json or text). It does not touch the global logger.
func NewSlogLogger(levelStr, formatStr string, outW io.Writer) *SlogLogger {
	handlerOpts := &slog.HandlerOptions{Level: parseLevel(levelStr)}

	var handler slog.Handler
	if formatStr == "json" {
		handler = slog.NewJSONHandler(outW, handlerOpts)
	} else {
		handler = slog.NewTextHandler(outW, handlerOpts)
	}

	return &SlogLogger{logger: slog.New(handler)}
}

// Log implements common.SessionLogger
func (l *SlogLogger) Log(level, message string, metadata map[string]interface{}) {
	attrs := make([]any, 0, len(metadata)*2)
	for k, v := range metadata {
		attrs = append(attrs, k, v)
	}
	l.logger.Log(context.Background(), sessionLevel(level), message, attrs...)
}

func parseLevel(levelStr string) slog.Level {
	switch levelStr {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}
	return slog.LevelInfo
}

func sessionLevel(level string) slog.Level {
	switch level {
	case common.LevelDebug:
		return slog.LevelDebug
	case common.LevelWarn:
		return slog.LevelWarn
	case common.LevelError:
		return slog.LevelError
	}
	return slog.LevelInfo
}

// Tee fans each entry out to several loggers
type Tee []common.SessionLogger

// Log implements common.SessionLogger
func (t Tee) Log(level, message string, metadata map[string]interface{}) {
	for _, l := range t {
		l.Log(level, message, metadata)
	}
}
