package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// Smoke test to ensure main honors SKIP_RUN and does not block test runs.
func TestMainSkipsWhenEnvSet(t *testing.T) {
	t.Setenv("SKIP_RUN", "1")
	main()
}

func TestRunWithFixtureProvider(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("SHOTS_PROVIDER", "fixture")
	t.Setenv("OUTPUT_DIR", dir)
	t.Setenv("METRICS_ENABLED", "false")

	var stdout, stderr bytes.Buffer
	if code := run(&stdout, &stderr); code != 0 {
		t.Fatalf("expected exit code 0, got %d: %s", code, stderr.String())
	}
	if !strings.Contains(stdout.String(), "Top 10 shooters:") {
		t.Fatalf("expected tables on stdout, got %q", stdout.String())
	}
	if strings.Contains(stdout.String(), "level=") {
		t.Fatalf("expected logs to stay off stdout")
	}
	if _, err := os.Stat(filepath.Join(dir, "shooting_stats.xlsx")); err != nil {
		t.Fatalf("expected workbook: %v", err)
	}
}

func TestRunMissingInputExitsNonZero(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("SHOTS_PROVIDER", "csv")
	t.Setenv("SHOTS_INPUT_PATH", filepath.Join(dir, "nope.csv"))
	t.Setenv("OUTPUT_DIR", dir)
	t.Setenv("METRICS_ENABLED", "false")

	var stdout, stderr bytes.Buffer
	if code := run(&stdout, &stderr); code != 1 {
		t.Fatalf("expected exit code 1, got %d", code)
	}
	if !strings.Contains(stderr.String(), "run failed") {
		t.Fatalf("expected failure logged to stderr, got %q", stderr.String())
	}
}
