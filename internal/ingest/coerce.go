package ingest

import (
	"math"
	"strconv"
	"strings"

	"github.com/preston-bernstein/nba-shooting-stats/internal/domain/shots"
)

type coerceResult int

const (
	coerceOK coerceResult = iota
	coerceAbsent
	coerceFailed
)

func isAbsent(raw string) bool {
	_, ok := naTokens[strings.TrimSpace(raw)]
	return ok
}

// parseCount accepts whole, non-negative numbers ("7" or "7.0").
func parseCount(raw string) (shots.Count, coerceResult) {
	if isAbsent(raw) {
		return shots.Count{}, coerceAbsent
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) || f < 0 || f != math.Trunc(f) || f > math.MaxInt32 {
		return shots.Count{}, coerceFailed
	}
	return shots.Count{Value: int(f), Valid: true}, coerceOK
}

func parseRatio(raw string) (shots.Ratio, coerceResult) {
	if isAbsent(raw) {
		return shots.Ratio{}, coerceAbsent
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return shots.Ratio{}, coerceFailed
	}
	return shots.Ratio{Value: f, Valid: true}, coerceOK
}

func parsePlayerID(raw string) (int, bool) {
	trimmed := strings.TrimSpace(raw)
	if id, err := strconv.Atoi(trimmed); err == nil {
		return id, true
	}
	// Some exports write integer keys as floats ("203500.0").
	f, err := strconv.ParseFloat(trimmed, 64)
	if err != nil || f != math.Trunc(f) || math.IsInf(f, 0) || math.Abs(f) > math.MaxInt32 {
		return 0, false
	}
	return int(f), true
}
