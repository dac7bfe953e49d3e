package fixture

import (
	"bytes"
	"context"
	_ "embed"
	"io"
)

// Name is the provider name used in config, logs and metrics.
const Name = "fixture"

//go:embed games_details.csv
var gamesDetails []byte

// Provider serves a small, deterministic box-score sample (twelve games, eighteen
// players, one inactive reserve per game and one garbled export line) useful for
// local runs and tests.
type Provider struct{}

// New creates a fixture provider.
func New() *Provider {
	return &Provider{}
}

func (p *Provider) Name() string {
	return Name
}

// Open returns the embedded sample.
func (p *Provider) Open(ctx context.Context) (io.ReadCloser, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return io.NopCloser(bytes.NewReader(gamesDetails)), nil
}
