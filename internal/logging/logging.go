// Package logging provides the component-scoped structured logger shared by
// the viewer. The level comes from FILE_VIEWER_LOG_LEVEL (debug, info, warn,
// error) and defaults to info. Output goes to stderr.
package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"
)

// LevelEnv names the environment variable that sets the log level.
const LevelEnv = "FILE_VIEWER_LOG_LEVEL"

var (
	initLogger sync.Once
	baseLogger *slog.Logger
)

// New returns a logger tagged with component. An empty component returns the
// base logger.
func New(component string) *slog.Logger {
	initLogger.Do(func() {
		baseLogger = newLogger(os.Stderr, os.Getenv(LevelEnv))
	})
	if component == "" {
		return baseLogger
	}
	return baseLogger.With("component", component)
}

func newLogger(w io.Writer, level string) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: parseLevel(level),
	}))
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
