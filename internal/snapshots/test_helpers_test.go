package snapshots

import (
	"os"
	"testing"
	"time"

	"github.com/preston-bernstein/nba-shooting-stats/internal/ingest"
	"github.com/preston-bernstein/nba-shooting-stats/internal/stats"
	"github.com/preston-bernstein/nba-shooting-stats/internal/testutil"
)

func sampleSnapshot() ReportSnapshot {
	return ReportSnapshot{
		Ingest: ingest.Stats{
			RowsRead:         8,
			RowsKept:         8,
			Dropped:          map[ingest.DropReason]int{},
			CoercionFailures: map[string]int{},
		},
		Report: stats.Compute(testutil.SeasonRecords(4)),
	}
}

func fixedWriter(base string, retention int, now time.Time) *Writer {
	w := NewWriter(base, retention)
	w.now = testutil.NowAt(now)
	return w
}

func writeReport(t *testing.T, w *Writer, date string) WriteResult {
	t.Helper()
	if w == nil {
		t.Fatalf("writer is nil for date %s", date)
	}
	res, err := w.WriteReport(date, "run-"+date, sampleSnapshot())
	if err != nil {
		t.Fatalf("failed to write snapshot %s: %v", date, err)
	}
	return res
}

func requireSnapshotExists(t *testing.T, w *Writer, date string) {
	t.Helper()
	if _, err := os.Stat(ReportSnapshotPath(w.BasePath(), date)); err != nil {
		t.Fatalf("expected snapshot for %s to be written: %v", date, err)
	}
}

func assertDatesEqual(t *testing.T, got, want []string) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("dates length mismatch: got %v, want %v", got, want)
	}
	for i := range got {
		if got[i] != want[i] {
			t.Fatalf("dates mismatch at %d: got %v, want %v", i, got, want)
		}
	}
}
