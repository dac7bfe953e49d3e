package providers

import (
	"errors"
	"fmt"
)

// SourceUnavailableError reports that the input could not be opened or read.
// It is fatal for a run; nothing retries it.
type SourceUnavailableError struct {
	Provider string
	Location string
	Err      error
}

func (e *SourceUnavailableError) Error() string {
	msg := "shot source unavailable"
	if e.Provider != "" {
		msg = fmt.Sprintf("%s (provider=%s)", msg, e.Provider)
	}
	if e.Location != "" {
		msg = fmt.Sprintf("%s: %s", msg, e.Location)
	}
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

func (e *SourceUnavailableError) Unwrap() error {
	return e.Err
}

// AsSourceUnavailableError attempts to unwrap an error into a SourceUnavailableError.
func AsSourceUnavailableError(err error) (*SourceUnavailableError, bool) {
	var suErr *SourceUnavailableError
	if errors.As(err, &suErr) {
		return suErr, true
	}
	return nil, false
}
