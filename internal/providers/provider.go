package providers

import (
	"context"
	"io"
)

// Source opens the raw box-score data for one run. The caller closes the returned
// reader as soon as loading finishes.
type Source interface {
	Name() string
	Open(ctx context.Context) (io.ReadCloser, error)
}
