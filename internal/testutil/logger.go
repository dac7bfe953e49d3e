package testutil

import (
	"bytes"
	"log/slog"

	"github.com/preston-bernstein/nba-shooting-stats/internal/logging"
)

// NewBufferLogger returns a debug-level text logger built like the process logger,
// writing to a buffer the caller can assert on.
func NewBufferLogger() (*slog.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	logger := logging.NewLogger(logging.Config{
		Level:  "debug",
		Format: "text",
		Output: &buf,
	})
	return logger, &buf
}
