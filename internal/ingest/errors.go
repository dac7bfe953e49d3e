package ingest

import (
	"errors"
	"fmt"
	"strings"
)

// ErrMalformedSource reports a source whose structure cannot be read as CSV at all.
var ErrMalformedSource = errors.New("malformed shot source")

// DropReason names why a row was excluded before aggregation.
type DropReason string

const (
	// DropMissingRequired: one of FGM, FGA, FG_PCT is absent.
	DropMissingRequired DropReason = "missing_required_field"
	// DropRequiredNotNumeric: one of FGM, FGA, FG_PCT did not coerce.
	DropRequiredNotNumeric DropReason = "required_not_numeric"
	DropInvalidPlayerID    DropReason = "invalid_player_id"
)

// MissingColumnsError is returned when the header lacks expected columns.
type MissingColumnsError struct {
	Columns []string
}

func (e *MissingColumnsError) Error() string {
	return fmt.Sprintf("shot source missing columns: %s", strings.Join(e.Columns, ", "))
}

// AsMissingColumnsError attempts to unwrap an error into a MissingColumnsError.
func AsMissingColumnsError(err error) (*MissingColumnsError, bool) {
	var mcErr *MissingColumnsError
	if errors.As(err, &mcErr) {
		return mcErr, true
	}
	return nil, false
}
