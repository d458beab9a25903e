// Package logger provides structured logging for the module.
//
// It uses Go's standard library log/slog package to emit structured JSON
// logs with a configurable level.
package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/phrazzld/servicekit/internal/config"
)

// Setup initializes structured JSON logging from the given configuration.
// The returned logger is also installed as the process default so code can
// use the slog package functions directly.
func Setup(cfg config.LoggingConfig) (*slog.Logger, error) {
	return SetupWithWriter(cfg, os.Stdout)
}

// SetupWithWriter is Setup with an explicit output writer, used by tests to
// capture log output.
func SetupWithWriter(cfg config.LoggingConfig, w io.Writer) (*slog.Logger, error) {
	level := parseLevel(cfg.Level)

	handler := slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: level,
	})

	logger := slog.New(handler)
	slog.SetDefault(logger)

	return logger, nil
}

// parseLevel maps a configured level name (case-insensitive) to a slog
// level. Unknown names fall back to info with a warning, rather than
// failing setup over a cosmetic setting.
func parseLevel(name string) slog.Level {
	switch strings.ToLower(name) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		tmpLogger := slog.New(slog.NewTextHandler(os.Stderr, nil))
		tmpLogger.Warn("invalid log level configured, using default level",
			"configured_level", name,
			"default_level", "info")
		return slog.LevelInfo
	}
}
