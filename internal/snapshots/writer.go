package snapshots

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"slices"
	"time"

	"github.com/preston-bernstein/nba-shooting-stats/internal/ingest"
	"github.com/preston-bernstein/nba-shooting-stats/internal/stats"
	"github.com/preston-bernstein/nba-shooting-stats/internal/timeutil"
)

type snapshotKind string

const (
	kindReports snapshotKind = "reports"

	defaultRetentionDays = 14
)

// ReportSnapshot is the persisted form of one run's report. It carries no run
// identity or timestamps so that identical inputs give identical bytes.
type ReportSnapshot struct {
	Date   string       `json:"date"`
	Ingest ingest.Stats `json:"ingest"`
	stats.Report
}

// WriteResult describes what a write did on disk.
type WriteResult struct {
	Path      string
	Unchanged bool
	Pruned    []string
}

// Writer persists snapshots and manifest with pruning.
type Writer struct {
	basePath      string
	retentionDays int
	now           func() time.Time
}

// NewWriter constructs a writer rooted at basePath with a rolling window retention.
func NewWriter(basePath string, retentionDays int) *Writer {
	if retentionDays <= 0 {
		retentionDays = defaultRetentionDays
	}
	return &Writer{
		basePath:      basePath,
		retentionDays: retentionDays,
		now:           time.Now,
	}
}

// BasePath exposes the writer root path (primarily for testing).
func (w *Writer) BasePath() string {
	if w == nil {
		return ""
	}
	return w.basePath
}

// WriteReport writes the report snapshot for date (YYYY-MM-DD), records runID in the
// manifest and prunes snapshots older than the retention window.
func (w *Writer) WriteReport(date, runID string, snap ReportSnapshot) (WriteResult, error) {
	if w == nil {
		return WriteResult{}, errors.New("snapshot writer not configured")
	}
	if _, err := timeutil.ParseDate(date); err != nil {
		return WriteResult{}, errors.New("snapshot date must be YYYY-MM-DD")
	}
	snap.Date = date

	target := ReportSnapshotPath(w.basePath, date)
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return WriteResult{}, err
	}
	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return WriteResult{}, err
	}

	res := WriteResult{Path: target}
	if existing, err := os.ReadFile(target); err == nil && bytes.Equal(existing, data) {
		res.Unchanged = true
	} else {
		tmp := target + ".tmp"
		if err := os.WriteFile(tmp, data, 0o644); err != nil {
			return WriteResult{}, err
		}
		if err := os.Rename(tmp, target); err != nil {
			return WriteResult{}, err
		}
	}

	pruned, err := w.updateManifest(kindReports, date, runID)
	if err != nil {
		return WriteResult{}, err
	}
	res.Pruned = pruned
	return res, nil
}

func (w *Writer) updateManifest(kind snapshotKind, date, runID string) ([]string, error) {
	now := w.now().UTC()
	m, _ := readManifest(w.basePath, w.retentionDays, now)

	dates, err := w.listDates(kind)
	if err != nil {
		return nil, err
	}
	if !slices.Contains(dates, date) {
		dates = append(dates, date)
	}
	keep, pruned := w.pruneOldSnapshots(kind, dates, now)

	m.Reports.Dates = keep
	m.Reports.LastRefreshed = now
	m.Reports.LastRunID = runID
	m.Retention.ReportsDays = w.retentionDays

	return pruned, writeManifest(w.basePath, m, now)
}

func (w *Writer) listDates(kind snapshotKind) ([]string, error) {
	dir := filepath.Join(w.basePath, string(kind))
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return []string{}, nil
		}
		return nil, err
	}
	var dates []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		if filepath.Ext(name) != ".json" {
			continue
		}
		dates = append(dates, name[:len(name)-len(".json")])
	}
	slices.Sort(dates)
	return dates, nil
}

func (w *Writer) pruneOldSnapshots(kind snapshotKind, dates []string, now time.Time) (keep, pruned []string) {
	cutoff := timeutil.RetentionCutoff(now, w.retentionDays)
	keep = []string{}
	for _, d := range dates {
		parsed, err := timeutil.ParseDate(d)
		if err != nil {
			keep = append(keep, d)
			continue
		}
		if parsed.Before(cutoff) {
			_ = os.Remove(filepath.Join(w.basePath, string(kind), d+".json"))
			pruned = append(pruned, d)
			continue
		}
		keep = append(keep, d)
	}
	slices.Sort(keep)
	return keep, pruned
}
