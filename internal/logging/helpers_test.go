package logging

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"
	"time"
)

func TestHelpersTolerateNilLogger(t *testing.T) {
	Info(nil, "x")
	Warn(nil, "x")
	Error(nil, "x", errors.New("boom"))
	Stage(nil, "x", "load", 1, time.Second)
}

func TestErrorAppendsErrorField(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	Error(logger, "stage failed", errors.New("boom"), FieldStage, "load")

	out := buf.String()
	if !strings.Contains(out, "error=boom") || !strings.Contains(out, "stage=load") {
		t.Fatalf("expected error and stage fields, got %q", out)
	}
}

func TestStageLogsCountAndDuration(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	Stage(logger, "shot records loaded", "load", 217, 1500*time.Millisecond, FieldProvider, "fixture")

	out := buf.String()
	for _, want := range []string{"stage=load", "count=217", "duration_ms=1500", "provider=fixture"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in %q", want, out)
		}
	}
}
