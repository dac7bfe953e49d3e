package runner

import (
	"fmt"
	"log/slog"

	"github.com/preston-bernstein/nba-shooting-stats/internal/app/shooting"
	"github.com/preston-bernstein/nba-shooting-stats/internal/logging"
	"github.com/preston-bernstein/nba-shooting-stats/internal/plot"
	"github.com/preston-bernstein/nba-shooting-stats/internal/report"
	"github.com/preston-bernstein/nba-shooting-stats/internal/snapshots"
	"github.com/preston-bernstein/nba-shooting-stats/internal/timeutil"
)

// Artifact stage names used in logs and metrics.
const (
	StageTables   = "tables"
	StagePlots    = "plots"
	StageWorkbook = "workbook"
	StageSnapshot = "snapshot"
)

// stage times fn and records its outcome under name.
func (r *Runner) stage(name string, fn func() (int, error)) error {
	start := r.now()
	count, err := fn()
	elapsed := r.now().Sub(start)
	r.metrics.RecordStage(name, elapsed, err)
	if err != nil {
		logging.Error(r.logger, "stage failed", err, slog.String(logging.FieldStage, name))
		return fmt.Errorf("%s: %w", name, err)
	}
	logging.Stage(r.logger, "stage complete", name, count, elapsed)
	return nil
}

func (r *Runner) writeTables(res shooting.Result) (int, error) {
	if err := report.WriteTables(r.out, res.Report.Views); err != nil {
		return 0, err
	}
	if _, err := fmt.Fprintln(r.out); err != nil {
		return 0, err
	}
	if err := report.WriteIngestSummary(r.out, res.Ingest); err != nil {
		return 0, err
	}
	return len(res.Report.Views), nil
}

func (r *Runner) writePlots(res shooting.Result, sum *Summary) (int, error) {
	dir := r.cfg.Output.PlotsDir()
	for _, s := range res.Report.Plots {
		path, err := plot.WriteScatterFile(dir, s)
		if err != nil {
			return len(sum.Plots), err
		}
		sum.Plots = append(sum.Plots, path)
		logging.Info(r.logger, "plot written", slog.String(logging.FieldPath, path))
	}
	return len(sum.Plots), nil
}

func (r *Runner) writeWorkbook(res shooting.Result, sum *Summary) (int, error) {
	path := r.cfg.Output.WorkbookPath()
	if err := report.WriteWorkbook(path, res.Report); err != nil {
		return 0, err
	}
	sum.Workbook = path
	logging.Info(r.logger, "workbook written", slog.String(logging.FieldPath, path))
	return len(res.Report.Views) + 1, nil
}

func (r *Runner) writeSnapshot(res shooting.Result, sum *Summary, runID string) (int, error) {
	w := snapshots.NewWriter(r.cfg.Output.SnapshotDir(), r.cfg.Output.SnapshotRetentionDays)
	date := timeutil.RunDate(r.now())
	out, err := w.WriteReport(date, runID, snapshots.ReportSnapshot{
		Ingest: res.Ingest,
		Report: res.Report,
	})
	if err != nil {
		return 0, err
	}
	sum.Snapshot = out.Path
	logging.Info(r.logger, "report snapshot written",
		slog.String(logging.FieldPath, out.Path),
		slog.String(logging.FieldDate, date),
		slog.Bool("unchanged", out.Unchanged),
		slog.Int("pruned", len(out.Pruned)),
	)
	return 1, nil
}
