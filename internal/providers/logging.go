package providers

import (
	"context"
	"log/slog"

	"github.com/preston-bernstein/nba-shooting-stats/internal/logging"
)

// logSource emits a log entry tagged with the source name when logger is set.
func logSource(ctx context.Context, logger *slog.Logger, level slog.Level, source, msg string, args ...any) {
	if logger == nil {
		return
	}
	args = append(args, slog.String(logging.FieldProvider, source))
	logger.Log(ctx, level, msg, args...)
}
