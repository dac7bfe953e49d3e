package stats

import "github.com/preston-bernstein/nba-shooting-stats/internal/domain/shots"

// Derive fills the percentage and ranking fields of a summed aggregate.
// It is defined for every input, including players with no attempts.
func Derive(p shots.PlayerAggregate) shots.PlayerAggregate {
	p.FieldGoalPct = ratio(p.FieldGoalsMade, p.FieldGoalsAttempted)
	p.ThreePct = ratio(p.ThreeMade, p.ThreeAttempted)
	p.FreeThrowPct = ratio(p.FreeThrowsMade, p.FreeThrowsAttempted)

	// Every make counts two, threes add three on top. Kept as-is so rankings match
	// historical output; it is not the box-score points total.
	p.TotalPoints = 2*p.FieldGoalsMade + 3*p.ThreeMade + p.FreeThrowsMade
	p.ShootingEfficiency = (p.FieldGoalPct + p.ThreePct + p.FreeThrowPct) / 3
	p.Score = float64(p.TotalPoints) * p.ShootingEfficiency
	p.MissedFieldGoals = p.FieldGoalsAttempted - p.FieldGoalsMade
	return p
}

// DeriveAll returns derived copies of players, preserving order.
func DeriveAll(players []shots.PlayerAggregate) []shots.PlayerAggregate {
	out := make([]shots.PlayerAggregate, len(players))
	for i, p := range players {
		out[i] = Derive(p)
	}
	return out
}

// ratio is made/attempted clamped to [0,1]; zero attempts yield 0.
func ratio(made, attempted int) float64 {
	if attempted <= 0 {
		return 0
	}
	r := float64(made) / float64(attempted)
	if r > 1 {
		return 1
	}
	if r < 0 {
		return 0
	}
	return r
}
