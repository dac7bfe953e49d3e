package shots

// Count is a counting stat read from a box score. Valid is false when the source value
// was absent or could not be coerced.
type Count struct {
	Value int
	Valid bool
}

// Ratio is a per-game percentage read from a box score.
type Ratio struct {
	Value float64
	Valid bool
}

// RawShotRecord is one player's shooting line for one game.
// The per-game percentages are kept for completeness but never aggregated.
type RawShotRecord struct {
	PlayerID            int
	PlayerName          string
	StartPosition       string
	FieldGoalsMade      Count
	FieldGoalsAttempted Count
	FieldGoalPct        Ratio
	ThreeMade           Count
	ThreeAttempted      Count
	ThreePct            Ratio
	FreeThrowsMade      Count
	FreeThrowsAttempted Count
	FreeThrowPct        Ratio
}

// PlayerAggregate is the season-level shooting line for one player.
type PlayerAggregate struct {
	PlayerID            int     `json:"playerId"`
	PlayerName          string  `json:"playerName"`
	FieldGoalsMade      int     `json:"fgm"`
	FieldGoalsAttempted int     `json:"fga"`
	ThreeMade           int     `json:"fg3m"`
	ThreeAttempted      int     `json:"fg3a"`
	FreeThrowsMade      int     `json:"ftm"`
	FreeThrowsAttempted int     `json:"fta"`
	FieldGoalPct        float64 `json:"fgPct"`
	ThreePct            float64 `json:"fg3Pct"`
	FreeThrowPct        float64 `json:"ftPct"`
	TotalPoints         int     `json:"totalPoints"`
	ShootingEfficiency  float64 `json:"shootingEfficiency"`
	Score               float64 `json:"score"`
	MissedFieldGoals    int     `json:"missedFga"`
}
