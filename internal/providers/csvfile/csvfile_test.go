package csvfile

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/preston-bernstein/nba-shooting-stats/internal/providers"
)

func TestOpenReadsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "games_details.csv")
	if err := os.WriteFile(path, []byte("PLAYER_ID\n1\n"), 0o644); err != nil {
		t.Fatalf("failed to write input: %v", err)
	}

	p := New(path)
	rc, err := p.Open(context.Background())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	defer rc.Close()
	data, _ := io.ReadAll(rc)
	if string(data) != "PLAYER_ID\n1\n" {
		t.Fatalf("unexpected content %q", data)
	}
	if p.Name() != Name || p.Path() != path {
		t.Fatalf("unexpected provider identity %s %s", p.Name(), p.Path())
	}
}

func TestOpenMissingFileIsSourceUnavailable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.csv")

	_, err := New(path).Open(context.Background())

	su, ok := providers.AsSourceUnavailableError(err)
	if !ok {
		t.Fatalf("expected SourceUnavailableError, got %v", err)
	}
	if su.Provider != Name || su.Location != path {
		t.Fatalf("unexpected error fields %+v", su)
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected not-exist cause, got %v", err)
	}
}

func TestOpenRejectsDirectoryAndEmptyPath(t *testing.T) {
	if _, err := New(t.TempDir()).Open(context.Background()); err == nil {
		t.Fatalf("expected error for directory")
	}
	if _, err := New("").Open(context.Background()); err == nil {
		t.Fatalf("expected error for empty path")
	}
}

func TestOpenHonorsCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := New("whatever.csv").Open(ctx)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected canceled error, got %v", err)
	}
}
