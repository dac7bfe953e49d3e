package report

import (
	"strconv"

	"github.com/preston-bernstein/nba-shooting-stats/internal/domain/shots"
)

// Headers are the aggregate columns, named as in the source data.
var Headers = []string{
	"PLAYER_ID",
	"PLAYER_NAME",
	"FGM",
	"FGA",
	"FG3M",
	"FG3A",
	"FTM",
	"FTA",
	"FG_PCT",
	"FG3_PCT",
	"FT_PCT",
	"TOTAL_POINTS",
	"SHOOTING_EFFICIENCY",
	"SCORE",
	"MISSED_FGA",
}

// cells returns p's values in Headers order as typed values.
func cells(p shots.PlayerAggregate) []any {
	return []any{
		p.PlayerID,
		p.PlayerName,
		p.FieldGoalsMade,
		p.FieldGoalsAttempted,
		p.ThreeMade,
		p.ThreeAttempted,
		p.FreeThrowsMade,
		p.FreeThrowsAttempted,
		p.FieldGoalPct,
		p.ThreePct,
		p.FreeThrowPct,
		p.TotalPoints,
		p.ShootingEfficiency,
		p.Score,
		p.MissedFieldGoals,
	}
}

// textCells returns p's values in Headers order formatted for the console.
func textCells(p shots.PlayerAggregate) []string {
	return []string{
		strconv.Itoa(p.PlayerID),
		p.PlayerName,
		strconv.Itoa(p.FieldGoalsMade),
		strconv.Itoa(p.FieldGoalsAttempted),
		strconv.Itoa(p.ThreeMade),
		strconv.Itoa(p.ThreeAttempted),
		strconv.Itoa(p.FreeThrowsMade),
		strconv.Itoa(p.FreeThrowsAttempted),
		formatRatio(p.FieldGoalPct),
		formatRatio(p.ThreePct),
		formatRatio(p.FreeThrowPct),
		strconv.Itoa(p.TotalPoints),
		formatRatio(p.ShootingEfficiency),
		strconv.FormatFloat(p.Score, 'f', 3, 64),
		strconv.Itoa(p.MissedFieldGoals),
	}
}

func formatRatio(v float64) string {
	return strconv.FormatFloat(v, 'f', 4, 64)
}
