// Package runner wires configuration, telemetry, the shot source and the output
// writers into one batch run.
package runner

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/preston-bernstein/nba-shooting-stats/internal/app/shooting"
	"github.com/preston-bernstein/nba-shooting-stats/internal/config"
	"github.com/preston-bernstein/nba-shooting-stats/internal/logging"
	"github.com/preston-bernstein/nba-shooting-stats/internal/metrics"
	"github.com/preston-bernstein/nba-shooting-stats/internal/providers"
)

var (
	metricsSetup = metrics.Setup
	newRunID     = uuid.NewString
)

// Summary lists what a run produced.
type Summary struct {
	RunID    string
	Result   shooting.Result
	Plots    []string
	Workbook string
	Snapshot string
	Textfile string
}

// Runner executes the pipeline once and writes the configured artifacts.
type Runner struct {
	cfg         config.Config
	logger      *slog.Logger
	out         io.Writer
	metrics     *metrics.Recorder
	gatherer    prometheus.Gatherer
	metricsStop func(context.Context) error
	source      providers.Source
	service     *shooting.Service
	now         func() time.Time
}

// New constructs a runner that prints tables to out.
func New(cfg config.Config, logger *slog.Logger, out io.Writer) *Runner {
	return newRunnerWithSource(cfg, logger, out, nil)
}

func newRunnerWithSource(cfg config.Config, logger *slog.Logger, out io.Writer, source providers.Source) *Runner {
	recorder, gatherer, stop := buildMetrics(cfg, logger)
	if source == nil {
		source = newSourceFactory(logger, recorder).build(cfg)
	} else {
		source = providers.NewObservedSource(source, logger, recorder)
	}
	if out == nil {
		out = io.Discard
	}
	return &Runner{
		cfg:         cfg,
		logger:      logger,
		out:         out,
		metrics:     recorder,
		gatherer:    gatherer,
		metricsStop: stop,
		source:      source,
		service:     shooting.NewService(logger, recorder),
		now:         time.Now,
	}
}

func buildMetrics(cfg config.Config, logger *slog.Logger) (*metrics.Recorder, prometheus.Gatherer, func(context.Context) error) {
	recCfg := metrics.TelemetryConfig{
		Enabled:      cfg.Metrics.Enabled,
		ServiceName:  cfg.Metrics.ServiceName,
		OtlpEndpoint: cfg.Metrics.OtlpEndpoint,
		OtlpInsecure: cfg.Metrics.OtlpInsecure,
	}

	rec, gatherer, shutdown, err := metricsSetup(context.Background(), recCfg)
	if err != nil {
		logging.Warn(logger, "metrics setup failed, continuing without telemetry", logging.FieldError, err)
		return metrics.NewRecorder(), nil, nil
	}
	return rec, gatherer, shutdown
}

// Run loads, computes and presents one report. Telemetry is flushed whether or not
// the pipeline succeeds.
func (r *Runner) Run(ctx context.Context) (Summary, error) {
	sum := Summary{RunID: newRunID()}
	logger := r.logger
	if logger != nil {
		r.logger = logger.With(slog.String(logging.FieldRunID, sum.RunID))
		defer func() { r.logger = logger }()
	}
	logging.Info(r.logger, "run starting", slog.String(logging.FieldProvider, r.source.Name()))

	err := r.run(ctx, &sum)
	if ferr := r.finish(&sum); ferr != nil {
		err = errors.Join(err, ferr)
	}
	if err != nil {
		return sum, err
	}
	logging.Info(r.logger, "run complete",
		slog.Int("players", len(sum.Result.Report.Players)),
		slog.Int("plots", len(sum.Plots)),
	)
	return sum, nil
}

func (r *Runner) run(ctx context.Context, sum *Summary) error {
	res, err := r.service.Run(ctx, r.source)
	if err != nil {
		return err
	}
	sum.Result = res

	if err := r.stage(StageTables, func() (int, error) { return r.writeTables(res) }); err != nil {
		return err
	}
	out := r.cfg.Output
	if out.PlotsEnabled {
		if err := r.stage(StagePlots, func() (int, error) { return r.writePlots(res, sum) }); err != nil {
			return err
		}
	}
	if out.WorkbookEnabled {
		if err := r.stage(StageWorkbook, func() (int, error) { return r.writeWorkbook(res, sum) }); err != nil {
			return err
		}
	}
	if out.SnapshotEnabled {
		if err := r.stage(StageSnapshot, func() (int, error) { return r.writeSnapshot(res, sum, sum.RunID) }); err != nil {
			return err
		}
	}
	return nil
}

// finish writes the metrics textfile and shuts the meter provider down.
func (r *Runner) finish(sum *Summary) error {
	var errs []error
	if r.gatherer != nil && r.cfg.Metrics.TextfilePath != "" {
		if err := metrics.WriteTextfile(r.cfg.Metrics.TextfilePath, r.gatherer); err != nil {
			errs = append(errs, err)
		} else {
			sum.Textfile = r.cfg.Metrics.TextfilePath
			logging.Info(r.logger, "metrics textfile written", slog.String(logging.FieldPath, sum.Textfile))
		}
	}

	if r.metricsStop != nil {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := r.metricsStop(shutdownCtx); err != nil {
			logging.Warn(r.logger, "metrics shutdown failed", logging.FieldError, err)
		}
	}
	return errors.Join(errs...)
}
