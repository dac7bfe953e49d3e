package stats

import (
	"cmp"
	"slices"

	"github.com/preston-bernstein/nba-shooting-stats/internal/domain/shots"
)

// Aggregation is the per-player grouping of cleaned records.
type Aggregation struct {
	// Players holds summed counting fields only, ordered by ascending player id.
	Players []shots.PlayerAggregate
	// NameConflicts counts records whose name differed from the first name seen for
	// the same player id.
	NameConflicts int
}

// Aggregate groups records by player id and sums the six counting fields. Missing
// values contribute zero. Derived fields are left unset; see Derive.
func Aggregate(records []shots.RawShotRecord) Aggregation {
	var (
		agg   Aggregation
		index = make(map[int]int, len(records)/8+1)
	)
	for _, rec := range records {
		i, ok := index[rec.PlayerID]
		if !ok {
			i = len(agg.Players)
			index[rec.PlayerID] = i
			agg.Players = append(agg.Players, shots.PlayerAggregate{
				PlayerID:   rec.PlayerID,
				PlayerName: rec.PlayerName,
			})
		} else if agg.Players[i].PlayerName != rec.PlayerName {
			agg.NameConflicts++
		}

		p := &agg.Players[i]
		p.FieldGoalsMade += countValue(rec.FieldGoalsMade)
		p.FieldGoalsAttempted += countValue(rec.FieldGoalsAttempted)
		p.ThreeMade += countValue(rec.ThreeMade)
		p.ThreeAttempted += countValue(rec.ThreeAttempted)
		p.FreeThrowsMade += countValue(rec.FreeThrowsMade)
		p.FreeThrowsAttempted += countValue(rec.FreeThrowsAttempted)
	}

	slices.SortFunc(agg.Players, byPlayerID)
	return agg
}

func countValue(c shots.Count) int {
	if !c.Valid {
		return 0
	}
	return c.Value
}

func byPlayerID(a, b shots.PlayerAggregate) int {
	return cmp.Compare(a.PlayerID, b.PlayerID)
}
