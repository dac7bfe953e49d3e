package logging

import (
	"log/slog"
	"time"
)

// Info logs an info message when a logger is configured.
func Info(logger *slog.Logger, msg string, args ...any) {
	if logger != nil {
		logger.Info(msg, args...)
	}
}

// Warn logs a warning when a logger is configured.
func Warn(logger *slog.Logger, msg string, args ...any) {
	if logger != nil {
		logger.Warn(msg, args...)
	}
}

// Error logs an error when a logger is configured, under FieldError.
func Error(logger *slog.Logger, msg string, err error, args ...any) {
	if logger == nil {
		return
	}
	if err != nil {
		args = append(args, slog.Any(FieldError, err))
	}
	logger.Error(msg, args...)
}

// Stage logs one finished pipeline stage: its name, how many items it produced and
// how long it took.
func Stage(logger *slog.Logger, msg, stage string, count int, elapsed time.Duration, args ...any) {
	if logger == nil {
		return
	}
	attrs := append([]any{
		slog.String(FieldStage, stage),
		slog.Int(FieldCount, count),
		slog.Int64(FieldDurationMS, elapsed.Milliseconds()),
	}, args...)
	logger.Info(msg, attrs...)
}
