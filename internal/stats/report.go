package stats

import "github.com/preston-bernstein/nba-shooting-stats/internal/domain/shots"

// Report is everything one run produces from a set of cleaned records.
type Report struct {
	// Players are the derived aggregates ordered by ascending player id.
	Players       []shots.PlayerAggregate `json:"players"`
	Views         []View                  `json:"views"`
	Plots         []Series                `json:"plots"`
	NameConflicts int                     `json:"nameConflicts"`
}

// Compute runs aggregation, derivation, ranking and plot extraction.
func Compute(records []shots.RawShotRecord) Report {
	agg := Aggregate(records)
	players := DeriveAll(agg.Players)
	views := BuildViews(players)

	worst, _ := findView(views, ViewWorstQualified)
	return Report{
		Players:       players,
		Views:         views,
		Plots:         BuildPlots(players, worst),
		NameConflicts: agg.NameConflicts,
	}
}

// View returns the view of the given kind.
func (r Report) View(kind ViewKind) (View, bool) {
	return findView(r.Views, kind)
}

func findView(views []View, kind ViewKind) (View, bool) {
	for _, v := range views {
		if v.Kind == kind {
			return v, true
		}
	}
	return View{}, false
}
