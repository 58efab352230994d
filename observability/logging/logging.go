package logging

import (
	"log/slog"
	"os"
	"strings"
)

// Setup configures structured JSON logging for a tool and returns the
// slog.Logger. Every line carries the tool name and, when set, the backend in
// use.
func Setup(tool, backend string) *slog.Logger {
	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		ReplaceAttr: func(groups []string, attr slog.Attr) slog.Attr {
			switch attr.Key {
			case slog.TimeKey:
				return slog.Attr{Key: "timestamp", Value: attr.Value}
			case slog.LevelKey:
				return slog.String("severity", strings.ToUpper(attr.Value.String()))
			case slog.MessageKey:
				return slog.Attr{Key: "message", Value: attr.Value}
			}
			return attr
		},
	})

	args := []any{slog.String("tool", strings.TrimSpace(tool))}
	if backend = strings.TrimSpace(backend); backend != "" {
		args = append(args, slog.String("backend", backend))
	}

	logger := slog.New(handler).With(args...)
	slog.SetDefault(logger)
	return logger
}
