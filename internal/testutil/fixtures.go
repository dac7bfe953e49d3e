package testutil

import (
	"strconv"
	"strings"

	"github.com/preston-bernstein/nba-shooting-stats/internal/domain/shots"
)

// ShotHeader is the box-score header in the upstream column order, with one extra
// column the loader is expected to ignore.
const ShotHeader = "GAME_ID,TEAM_ID,PLAYER_ID,PLAYER_NAME,START_POSITION,MIN,FGM,FGA,FG_PCT,FG3M,FG3A,FG3_PCT,FTM,FTA,FT_PCT"

// ShotRow describes one CSV line. Empty strings are written as-is so tests can model
// absent values.
type ShotRow struct {
	PlayerID string
	Name     string
	Position string
	FGM      string
	FGA      string
	FGPct    string
	FG3M     string
	FG3A     string
	FG3Pct   string
	FTM      string
	FTA      string
	FTPct    string
}

// Line renders the row under ShotHeader.
func (r ShotRow) Line() string {
	return strings.Join([]string{
		"22200001", "1610612737",
		r.PlayerID, r.Name, r.Position, "30:00",
		r.FGM, r.FGA, r.FGPct,
		r.FG3M, r.FG3A, r.FG3Pct,
		r.FTM, r.FTA, r.FTPct,
	}, ",")
}

// Row builds a fully populated ShotRow from integer counts; percentages are derived
// per game the way upstream box scores report them.
func Row(id int, name string, fgm, fga, fg3m, fg3a, ftm, fta int) ShotRow {
	return ShotRow{
		PlayerID: strconv.Itoa(id),
		Name:     name,
		Position: "G",
		FGM:      strconv.Itoa(fgm),
		FGA:      strconv.Itoa(fga),
		FGPct:    pct(fgm, fga),
		FG3M:     strconv.Itoa(fg3m),
		FG3A:     strconv.Itoa(fg3a),
		FG3Pct:   pct(fg3m, fg3a),
		FTM:      strconv.Itoa(ftm),
		FTA:      strconv.Itoa(fta),
		FTPct:    pct(ftm, fta),
	}
}

func pct(made, att int) string {
	if att == 0 {
		return "0"
	}
	return strconv.FormatFloat(float64(made)/float64(att), 'f', 3, 64)
}

// ShotCSV joins rows under ShotHeader.
func ShotCSV(rows ...ShotRow) string {
	var b strings.Builder
	b.WriteString(ShotHeader)
	b.WriteString("\n")
	for _, r := range rows {
		b.WriteString(r.Line())
		b.WriteString("\n")
	}
	return b.String()
}

// SampleRecord returns a cleaned record with every counting field present.
func SampleRecord(id int, name string, fgm, fga, fg3m, fg3a, ftm, fta int) shots.RawShotRecord {
	return shots.RawShotRecord{
		PlayerID:            id,
		PlayerName:          name,
		StartPosition:       "G",
		FieldGoalsMade:      shots.Count{Value: fgm, Valid: true},
		FieldGoalsAttempted: shots.Count{Value: fga, Valid: true},
		ThreeMade:           shots.Count{Value: fg3m, Valid: true},
		ThreeAttempted:      shots.Count{Value: fg3a, Valid: true},
		FreeThrowsMade:      shots.Count{Value: ftm, Valid: true},
		FreeThrowsAttempted: shots.Count{Value: fta, Valid: true},
	}
}

// SeasonRecords builds n players with distinct, deterministic shooting lines. Player
// ids start at 1; every third player has zero three-point attempts and ids divisible by
// five share their score with the previous id to exercise tie-breaks.
func SeasonRecords(n int) []shots.RawShotRecord {
	out := make([]shots.RawShotRecord, 0, n*2)
	for id := 1; id <= n; id++ {
		base := id
		if id%5 == 0 {
			base = id - 1
		}
		fga := 40 + base*7
		fgm := fga * (30 + base%20) / 100
		fg3a, fg3m := base*2, base*2*(25+base%15)/100
		if id%3 == 0 {
			fg3a, fg3m = 0, 0
		}
		fta, ftm := 10+base, (10+base)*(60+base%30)/100
		// Split the season across two games so aggregation has something to sum.
		out = append(out,
			SampleRecord(id, "Player "+strconv.Itoa(id), fgm/2, fga/2, fg3m/2, fg3a/2, ftm/2, fta/2),
			SampleRecord(id, "Player "+strconv.Itoa(id), fgm-fgm/2, fga-fga/2, fg3m-fg3m/2, fg3a-fg3a/2, ftm-ftm/2, fta-fta/2),
		)
	}
	return out
}
