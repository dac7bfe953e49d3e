package timeutil

import (
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	parsed, err := ParseDate("2024-01-02")
	if err != nil {
		t.Fatalf("expected parse to succeed, got %v", err)
	}
	if got := FormatDate(parsed); got != "2024-01-02" {
		t.Fatalf("expected formatted date to round-trip, got %s", got)
	}
	if _, err := ParseDate("01/02/2024"); err == nil {
		t.Fatalf("expected error for non-canonical date")
	}
}

func TestFormatDateUsesLocation(t *testing.T) {
	loc := time.FixedZone("test", -5*60*60)
	value := time.Date(2024, 1, 2, 23, 0, 0, 0, loc)
	if got := FormatDate(value); got != "2024-01-02" {
		t.Fatalf("expected formatted date, got %s", got)
	}
}

func TestRunDateUsesUTC(t *testing.T) {
	loc := time.FixedZone("test", -5*60*60)
	value := time.Date(2024, 1, 2, 23, 0, 0, 0, loc)
	if got := RunDate(value); got != "2024-01-03" {
		t.Fatalf("expected UTC date, got %s", got)
	}
}

func TestRetentionCutoff(t *testing.T) {
	now := time.Date(2024, 3, 10, 15, 30, 0, 0, time.UTC)
	want := time.Date(2024, 3, 3, 0, 0, 0, 0, time.UTC)
	if got := RetentionCutoff(now, 7); !got.Equal(want) {
		t.Fatalf("expected cutoff %v, got %v", want, got)
	}
	if got := RetentionCutoff(now, 0); !got.Equal(time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("expected same-day cutoff, got %v", got)
	}
}
