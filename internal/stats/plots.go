package stats

import "github.com/preston-bernstein/nba-shooting-stats/internal/domain/shots"

const (
	SeriesAllPlayers     = "missed_vs_score"
	SeriesWorstQualified = "worst_missed_vs_score"

	xLabel = "Total Missed Field Goals"
	yLabel = "Shooting Score"
)

// Point is one player on a scatter plot.
type Point struct {
	PlayerID   int     `json:"playerId"`
	PlayerName string  `json:"playerName"`
	X          float64 `json:"x"`
	Y          float64 `json:"y"`
}

// Series is the data behind one scatter plot. Highlight marks the series drawn in the
// alert color.
type Series struct {
	Name      string  `json:"name"`
	Title     string  `json:"title"`
	XLabel    string  `json:"xLabel"`
	YLabel    string  `json:"yLabel"`
	Highlight bool    `json:"highlight"`
	Points    []Point `json:"points"`
}

// BuildPlots returns missed field goals against score for every player, and the same
// axes for the worst qualified shooters.
func BuildPlots(players []shots.PlayerAggregate, worst View) []Series {
	return []Series{
		{
			Name:   SeriesAllPlayers,
			Title:  "Shooting Score vs Total Missed Field Goals",
			XLabel: xLabel,
			YLabel: yLabel,
			Points: missedVsScore(players),
		},
		{
			Name:      SeriesWorstQualified,
			Title:     "Shooting Score vs Total Missed Field Goals for Worst Shooters",
			XLabel:    xLabel,
			YLabel:    yLabel,
			Highlight: true,
			Points:    missedVsScore(worst.Players),
		},
	}
}

func missedVsScore(players []shots.PlayerAggregate) []Point {
	points := make([]Point, len(players))
	for i, p := range players {
		points[i] = Point{
			PlayerID:   p.PlayerID,
			PlayerName: p.PlayerName,
			X:          float64(p.MissedFieldGoals),
			Y:          p.Score,
		}
	}
	return points
}
