package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// Records go to stderr so commands can keep stdout for their own output.
var log = slog.New(slog.NewTextHandler(os.Stderr, nil))

// Init configures the package logger for the given environment: JSON output
// in production, human readable text with debug records everywhere else.
func Init(env string) {
	InitWithWriter(env, os.Stderr)
}

// InitWithWriter is Init with an explicit destination.
func InitWithWriter(env string, w io.Writer) {
	switch strings.ToLower(env) {
	case "production", "prod":
		log = slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: slog.LevelInfo}))
	default:
		log = slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
	slog.SetDefault(log)
}

func Debug(msg string, args ...any) {
	log.Debug(msg, args...)
}

func Info(msg string, args ...any) {
	log.Info(msg, args...)
}

func Warn(msg string, args ...any) {
	log.Warn(msg, args...)
}

func Error(msg string, args ...any) {
	log.Error(msg, args...)
}

// Fatal logs at error level and exits the process.
func Fatal(msg string, args ...any) {
	log.Error(msg, args...)
	os.Exit(1)
}
