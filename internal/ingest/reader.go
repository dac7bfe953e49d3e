package ingest

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/preston-bernstein/nba-shooting-stats/internal/domain/shots"
)

const utf8BOM = "\ufeff"

// Stats summarizes what the load stage kept and discarded.
type Stats struct {
	RowsRead         int                `json:"rowsRead"`
	RowsKept         int                `json:"rowsKept"`
	Dropped          map[DropReason]int `json:"dropped"`
	CoercionFailures map[string]int     `json:"coercionFailures"`
}

// TotalDropped returns the number of rows excluded for any reason.
func (s Stats) TotalDropped() int {
	total := 0
	for _, n := range s.Dropped {
		total += n
	}
	return total
}

// TotalCoercionFailures returns the number of values replaced by the missing marker
// because they did not parse.
func (s Stats) TotalCoercionFailures() int {
	total := 0
	for _, n := range s.CoercionFailures {
		total += n
	}
	return total
}

// Result is the cleaned projection of a shot source.
type Result struct {
	Records []shots.RawShotRecord
	Stats   Stats
}

type columnIndex map[string]int

// Load reads a comma-separated box-score source with a header row and returns the
// cleaned records. Row-level problems are counted in Stats, never returned as errors;
// only a source that cannot be read as CSV, or lacks expected columns, fails.
func Load(r io.Reader) (Result, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.ReuseRecord = true

	header, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return Result{}, fmt.Errorf("%w: empty input", ErrMalformedSource)
		}
		return Result{}, fmt.Errorf("%w: header: %w", ErrMalformedSource, err)
	}
	idx, err := indexColumns(header)
	if err != nil {
		return Result{}, err
	}

	res := Result{
		Stats: Stats{
			Dropped:          make(map[DropReason]int),
			CoercionFailures: make(map[string]int),
		},
	}
	for {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return Result{}, fmt.Errorf("%w: %w", ErrMalformedSource, err)
		}
		res.Stats.RowsRead++

		rec, reason, ok := parseRow(row, idx, res.Stats.CoercionFailures)
		if !ok {
			res.Stats.Dropped[reason]++
			continue
		}
		res.Records = append(res.Records, rec)
	}
	res.Stats.RowsKept = len(res.Records)
	return res, nil
}

func indexColumns(header []string) (columnIndex, error) {
	idx := make(columnIndex, len(header))
	for i, name := range header {
		if i == 0 {
			name = strings.TrimPrefix(name, utf8BOM)
		}
		name = strings.TrimSpace(name)
		if _, seen := idx[name]; seen {
			continue
		}
		idx[name] = i
	}

	var missing []string
	for _, col := range Columns {
		if _, ok := idx[col]; !ok {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return nil, &MissingColumnsError{Columns: missing}
	}
	return idx, nil
}

// field returns the value of col, or "" when the row ends before it so that short
// rows read as absent values.
func (idx columnIndex) field(row []string, col string) string {
	i := idx[col]
	if i >= len(row) {
		return ""
	}
	return row[i]
}

func parseRow(row []string, idx columnIndex, failures map[string]int) (shots.RawShotRecord, DropReason, bool) {
	field := func(col string) string { return idx.field(row, col) }

	for _, col := range RequiredColumns {
		if isAbsent(field(col)) {
			return shots.RawShotRecord{}, DropMissingRequired, false
		}
	}

	id, ok := parsePlayerID(field(ColPlayerID))
	if !ok {
		return shots.RawShotRecord{}, DropInvalidPlayerID, false
	}

	rec := shots.RawShotRecord{
		PlayerID:      id,
		PlayerName:    strings.TrimSpace(field(ColPlayerName)),
		StartPosition: strings.TrimSpace(field(ColStartPosition)),
	}

	requiredFailed := false
	count := func(col string) shots.Count {
		v, res := parseCount(field(col))
		if res == coerceFailed {
			failures[col]++
			requiredFailed = requiredFailed || isRequired(col)
		}
		return v
	}
	ratio := func(col string) shots.Ratio {
		v, res := parseRatio(field(col))
		if res == coerceFailed {
			failures[col]++
			requiredFailed = requiredFailed || isRequired(col)
		}
		return v
	}

	rec.FieldGoalsMade = count(ColFGM)
	rec.FieldGoalsAttempted = count(ColFGA)
	rec.FieldGoalPct = ratio(ColFGPct)
	rec.ThreeMade = count(ColFG3M)
	rec.ThreeAttempted = count(ColFG3A)
	rec.ThreePct = ratio(ColFG3Pct)
	rec.FreeThrowsMade = count(ColFTM)
	rec.FreeThrowsAttempted = count(ColFTA)
	rec.FreeThrowPct = ratio(ColFTPct)

	if requiredFailed {
		return shots.RawShotRecord{}, DropRequiredNotNumeric, false
	}
	return rec, "", true
}
