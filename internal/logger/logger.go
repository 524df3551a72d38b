package logger

import (
	"context"
	"log/slog"
	"os"
	"strings"
)

var defaultLogger *slog.Logger

func init() {
	defaultLogger = newLogger(slog.LevelInfo)
}

func newLogger(level slog.Level) *slog.Logger {
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: level,
	})
	return slog.New(handler)
}

// Init configures the default logger from a textual level ("debug", "info",
// "warn", "error"). Unknown levels fall back to info.
func Init(level string) {
	l := slog.LevelInfo
	switch strings.ToLower(level) {
	case "debug":
		l = slog.LevelDebug
	case "warn":
		l = slog.LevelWarn
	case "error":
		l = slog.LevelError
	}
	defaultLogger = newLogger(l)
}

// SetLogger allows setting a custom logger (useful for testing)
func SetLogger(logger *slog.Logger) {
	defaultLogger = logger
}

// Default returns the default logger
func Default() *slog.Logger {
	return defaultLogger
}

// Info logs an info message with optional attributes
func Info(msg string, args ...any) {
	defaultLogger.Info(msg, args...)
}

// InfoContext logs an info message with context
func InfoContext(ctx context.Context, msg string, args ...any) {
	defaultLogger.InfoContext(ctx, msg, args...)
}

// Error logs an error message with optional attributes
func Error(msg string, args ...any) {
	defaultLogger.Error(msg, args...)
}

// Warn logs a warning message with optional attributes
func Warn(msg string, args ...any) {
	defaultLogger.Warn(msg, args...)
}

// Debug logs a debug message with optional attributes
func Debug(msg string, args ...any) {
	defaultLogger.Debug(msg, args...)
}

// Fatal logs a fatal message and exits
func Fatal(msg string, args ...any) {
	defaultLogger.Error(msg, args...)
	os.Exit(1)
}

// WithRequestID adds request_id to logger context
func WithRequestID(requestID string) *slog.Logger {
	return defaultLogger.With(slog.String("request_id", requestID))
}

// WithUserID adds user_id to logger context
func WithUserID(userID string) *slog.Logger {
	return defaultLogger.With(slog.String("user_id", userID))
}
