package providers

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/preston-bernstein/nba-shooting-stats/internal/logging"
	"github.com/preston-bernstein/nba-shooting-stats/internal/metrics"
)

// observedSource wraps a Source with open logging and latency/error metrics.
type observedSource struct {
	inner   Source
	logger  *slog.Logger
	metrics *metrics.Recorder
	now     func() time.Time
}

// NewObservedSource wraps inner so every Open is logged and recorded.
func NewObservedSource(inner Source, logger *slog.Logger, recorder *metrics.Recorder) Source {
	return &observedSource{
		inner:   inner,
		logger:  logger,
		metrics: recorder,
		now:     time.Now,
	}
}

func (s *observedSource) Name() string {
	return s.inner.Name()
}

func (s *observedSource) Open(ctx context.Context) (io.ReadCloser, error) {
	start := s.now()
	rc, err := s.inner.Open(ctx)
	elapsed := s.now().Sub(start)
	s.metrics.RecordSourceOpen(s.inner.Name(), elapsed, err)

	if err != nil {
		logSource(ctx, s.logger, slog.LevelError, s.inner.Name(), "shot source open failed",
			slog.Any(logging.FieldError, err),
			slog.Int64(logging.FieldDurationMS, elapsed.Milliseconds()),
		)
		return nil, err
	}
	logSource(ctx, s.logger, slog.LevelInfo, s.inner.Name(), "shot source opened",
		slog.Int64(logging.FieldDurationMS, elapsed.Milliseconds()),
	)
	return rc, nil
}
