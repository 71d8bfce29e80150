package logger

import (
	"log/slog"
	"os"
	"strings"
	"sync"
)

var (
	logger *slog.Logger
	once   sync.Once
)

// Init installs the global structured logger. LOG_LEVEL picks the level
// (debug, info, warn, error); default is info.
func Init() {
	once.Do(func() {
		opts := &slog.HandlerOptions{Level: parseLevel(os.Getenv("LOG_LEVEL"))}
		logger = slog.New(slog.NewTextHandler(os.Stdout, opts))
		slog.SetDefault(logger)
	})
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}
	return slog.LevelInfo
}

// L returns the global logger instance
func L() *slog.Logger {
	Init()
	return logger
}

func Info(msg string, args ...any) {
	L().Info(msg, args...)
}

func Error(msg string, args ...any) {
	L().Error(msg, args...)
}

func Debug(msg string, args ...any) {
	L().Debug(msg, args...)
}

func Warn(msg string, args ...any) {
	L().Warn(msg, args...)
}
