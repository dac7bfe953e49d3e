package shooting

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/preston-bernstein/nba-shooting-stats/internal/ingest"
	"github.com/preston-bernstein/nba-shooting-stats/internal/logging"
	"github.com/preston-bernstein/nba-shooting-stats/internal/metrics"
	"github.com/preston-bernstein/nba-shooting-stats/internal/providers"
	"github.com/preston-bernstein/nba-shooting-stats/internal/stats"
)

// Stage names used in logs and metrics.
const (
	StageLoad    = "load"
	StageCompute = "compute"
)

// Result is the outcome of one pipeline run over a source.
type Result struct {
	Provider string
	Ingest   ingest.Stats
	Report   stats.Report
}

// Service runs the shooting pipeline: open, load and clean, then aggregate, derive
// and rank.
type Service struct {
	logger  *slog.Logger
	metrics *metrics.Recorder
	now     func() time.Time
}

// NewService constructs a Service. Logger and recorder may be nil.
func NewService(logger *slog.Logger, recorder *metrics.Recorder) *Service {
	return &Service{
		logger:  logger,
		metrics: recorder,
		now:     time.Now,
	}
}

// Run executes the pipeline once. Source and structural failures are returned;
// row-level problems are reported in Result.Ingest.
func (s *Service) Run(ctx context.Context, source providers.Source) (Result, error) {
	loaded, err := s.load(ctx, source)
	if err != nil {
		return Result{}, err
	}
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}

	start := s.now()
	report := stats.Compute(loaded.Records)
	elapsed := s.now().Sub(start)
	s.metrics.RecordStage(StageCompute, elapsed, nil)
	s.metrics.RecordPlayers(len(report.Players))

	logging.Stage(s.logger, "players aggregated", StageCompute, len(report.Players), elapsed)
	if report.NameConflicts > 0 {
		logging.Warn(s.logger, "player ids seen with more than one name; first name kept",
			slog.Int("conflicts", report.NameConflicts),
		)
	}

	return Result{
		Provider: source.Name(),
		Ingest:   loaded.Stats,
		Report:   report,
	}, nil
}

func (s *Service) load(ctx context.Context, source providers.Source) (ingest.Result, error) {
	start := s.now()
	rc, err := source.Open(ctx)
	if err != nil {
		s.metrics.RecordStage(StageLoad, s.now().Sub(start), err)
		return ingest.Result{}, fmt.Errorf("open %s source: %w", source.Name(), err)
	}
	defer rc.Close()

	res, err := ingest.Load(rc)
	elapsed := s.now().Sub(start)
	s.metrics.RecordStage(StageLoad, elapsed, err)
	if err != nil {
		logging.Error(s.logger, "shot source could not be loaded", err,
			slog.String(logging.FieldProvider, source.Name()),
		)
		return ingest.Result{}, fmt.Errorf("load %s source: %w", source.Name(), err)
	}

	s.recordIngest(res.Stats)
	logging.Stage(s.logger, "shot records loaded", StageLoad, res.Stats.RowsKept, elapsed,
		slog.String(logging.FieldProvider, source.Name()),
		slog.Int("rows_read", res.Stats.RowsRead),
	)
	if dropped := res.Stats.TotalDropped(); dropped > 0 {
		logging.Warn(s.logger, "rows dropped during cleaning",
			slog.Int(logging.FieldCount, dropped),
			slog.Any("by_reason", dropSummary(res.Stats.Dropped)),
		)
	}
	if failures := res.Stats.TotalCoercionFailures(); failures > 0 {
		logging.Warn(s.logger, "values could not be read as numbers",
			slog.Int(logging.FieldCount, failures),
			slog.Any("by_column", res.Stats.CoercionFailures),
		)
	}
	return res, nil
}

func (s *Service) recordIngest(st ingest.Stats) {
	s.metrics.RecordRows(st.RowsRead, st.RowsKept)
	for reason, n := range st.Dropped {
		s.metrics.RecordDropped(string(reason), n)
	}
	for col, n := range st.CoercionFailures {
		s.metrics.RecordCoercionFailures(col, n)
	}
}

func dropSummary(dropped map[ingest.DropReason]int) map[string]int {
	out := make(map[string]int, len(dropped))
	for reason, n := range dropped {
		out[string(reason)] = n
	}
	return out
}
