package csvfile

import (
	"context"
	"errors"
	"io"
	"os"

	"github.com/preston-bernstein/nba-shooting-stats/internal/providers"
)

// Name is the provider name used in config, logs and metrics.
const Name = "csv"

// Provider reads box scores from a CSV file on disk.
type Provider struct {
	path string
}

// New creates a provider for the file at path.
func New(path string) *Provider {
	return &Provider{path: path}
}

func (p *Provider) Name() string {
	return Name
}

// Path returns the configured file location.
func (p *Provider) Path() string {
	return p.path
}

// Open opens the file. Any failure is reported as a SourceUnavailableError.
func (p *Provider) Open(ctx context.Context) (io.ReadCloser, error) {
	if err := ctx.Err(); err != nil {
		return nil, p.unavailable(err)
	}
	if p.path == "" {
		return nil, p.unavailable(errors.New("no input path configured"))
	}
	info, err := os.Stat(p.path)
	if err != nil {
		return nil, p.unavailable(err)
	}
	if info.IsDir() {
		return nil, p.unavailable(errors.New("input path is a directory"))
	}
	f, err := os.Open(p.path)
	if err != nil {
		return nil, p.unavailable(err)
	}
	return f, nil
}

func (p *Provider) unavailable(err error) error {
	return &providers.SourceUnavailableError{
		Provider: Name,
		Location: p.path,
		Err:      err,
	}
}
