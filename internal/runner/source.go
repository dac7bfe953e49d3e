package runner

import (
	"log/slog"

	"github.com/preston-bernstein/nba-shooting-stats/internal/config"
	"github.com/preston-bernstein/nba-shooting-stats/internal/metrics"
	"github.com/preston-bernstein/nba-shooting-stats/internal/providers"
	"github.com/preston-bernstein/nba-shooting-stats/internal/providers/csvfile"
	"github.com/preston-bernstein/nba-shooting-stats/internal/providers/fixture"
)

func selectSource(cfg config.Config, logger *slog.Logger) providers.Source {
	switch cfg.Provider {
	case config.ProviderFixture:
		return fixture.New()
	case config.ProviderCSV, "":
		return csvfile.New(cfg.InputPath)
	default:
		if logger != nil {
			logger.Warn("unknown provider, falling back to csv", slog.String("provider", cfg.Provider))
		}
		return csvfile.New(cfg.InputPath)
	}
}

// sourceFactory assembles the configured source with the shared observation wrapper.
type sourceFactory struct {
	logger  *slog.Logger
	metrics *metrics.Recorder
}

func newSourceFactory(logger *slog.Logger, metrics *metrics.Recorder) sourceFactory {
	return sourceFactory{logger: logger, metrics: metrics}
}

func (f sourceFactory) build(cfg config.Config) providers.Source {
	return providers.NewObservedSource(selectSource(cfg, f.logger), f.logger, f.metrics)
}
