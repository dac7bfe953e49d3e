package testutil

import (
	"context"
	"strings"
	"testing"
	"time"
)

func TestClockHelpers(t *testing.T) {
	now := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	if got := NowAt(now)(); !got.Equal(now) {
		t.Fatalf("expected fixed time, got %v", got)
	}
	if got := MustParseDate("2024-01-02"); got.Day() != 2 || got.Location() != time.UTC {
		t.Fatalf("unexpected parsed date %v", got)
	}

	clock := StepClock(now, time.Second)
	if first, second := clock(), clock(); second.Sub(first) != time.Second {
		t.Fatalf("expected clock to step by one second, got %v then %v", first, second)
	}

	defer func() {
		if r := recover(); r == nil {
			t.Fatalf("expected panic on invalid date")
		}
	}()
	MustParseDate("not-a-date")
}

func TestShotCSVBuildsHeaderAndRows(t *testing.T) {
	csv := ShotCSV(Row(7, "Ann Guard", 5, 10, 1, 2, 2, 4))
	lines := strings.Split(strings.TrimSpace(csv), "\n")
	if len(lines) != 2 || lines[0] != ShotHeader {
		t.Fatalf("unexpected csv %q", csv)
	}
	if got := len(strings.Split(lines[1], ",")); got != len(strings.Split(ShotHeader, ",")) {
		t.Fatalf("row has %d fields", got)
	}
	if !strings.Contains(lines[1], ",5,10,0.500,1,2,0.500,2,4,0.500") {
		t.Fatalf("unexpected row %q", lines[1])
	}
}

func TestSeasonRecordsShape(t *testing.T) {
	recs := SeasonRecords(6)
	if len(recs) != 12 {
		t.Fatalf("expected two records per player, got %d", len(recs))
	}
	for _, r := range recs {
		if r.PlayerID == 3 && r.ThreeAttempted.Value != 0 {
			t.Fatalf("expected every third player to have no three-point attempts")
		}
		if r.FieldGoalsMade.Value > r.FieldGoalsAttempted.Value {
			t.Fatalf("made exceeds attempted for %+v", r)
		}
	}
}

func TestBufferLoggerAndRecorder(t *testing.T) {
	logger, buf := NewBufferLogger()
	logger.Debug("hello", "stage", "load")
	if !strings.Contains(buf.String(), "msg=hello") || !strings.Contains(buf.String(), "stage=load") {
		t.Fatalf("expected buffered debug output, got %q", buf.String())
	}

	rec, shutdown := NewRecorderWithShutdown()
	if rec == nil {
		t.Fatalf("expected recorder")
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("expected no-op shutdown, got %v", err)
	}
}
