package stats

import (
	"cmp"
	"slices"

	"github.com/preston-bernstein/nba-shooting-stats/internal/domain/shots"
)

// Fixed ranking sizes and the qualifying volume for the worst-shooters view.
const (
	TopScorersLimit     = 10
	TopFieldGoalsLimit  = 10
	MostMissedLimit     = 30
	TopThreePointLimit  = 10
	WorstQualifiedLimit = 30
	QualifyingAttempts  = 150
)

// ViewKind identifies one ranked view.
type ViewKind string

const (
	ViewTopScorers     ViewKind = "top_scorers"
	ViewTopFieldGoals  ViewKind = "top_field_goals"
	ViewMostMissed     ViewKind = "most_missed"
	ViewTopThreePoint  ViewKind = "top_three_point"
	ViewWorstQualified ViewKind = "worst_qualified"
)

// View is an ordered, read-only selection of aggregates.
type View struct {
	Kind    ViewKind                `json:"kind"`
	Title   string                  `json:"title"`
	Players []shots.PlayerAggregate `json:"players"`
}

type viewDef struct {
	kind    ViewKind
	title   string
	limit   int
	keep    func(shots.PlayerAggregate) bool
	compare func(a, b shots.PlayerAggregate) int
}

// viewDefs lists the views in presentation order.
var viewDefs = []viewDef{
	{
		kind:  ViewTopScorers,
		title: "Top 10 shooters",
		limit: TopScorersLimit,
		compare: func(a, b shots.PlayerAggregate) int {
			return cmp.Compare(b.Score, a.Score)
		},
	},
	{
		kind:  ViewTopFieldGoals,
		title: "Top 10 players with the most field goals made",
		limit: TopFieldGoalsLimit,
		compare: func(a, b shots.PlayerAggregate) int {
			return cmp.Compare(b.FieldGoalsMade, a.FieldGoalsMade)
		},
	},
	{
		kind:  ViewMostMissed,
		title: "Top 30 players with most missed FGA",
		limit: MostMissedLimit,
		compare: func(a, b shots.PlayerAggregate) int {
			return cmp.Compare(b.MissedFieldGoals, a.MissedFieldGoals)
		},
	},
	{
		kind:  ViewTopThreePoint,
		title: "Top 10 3-point shooters",
		limit: TopThreePointLimit,
		compare: func(a, b shots.PlayerAggregate) int {
			return cmp.Compare(b.ThreeMade, a.ThreeMade)
		},
	},
	{
		kind:  ViewWorstQualified,
		title: "Top 30 worst shooters",
		limit: WorstQualifiedLimit,
		keep: func(p shots.PlayerAggregate) bool {
			return p.FieldGoalsAttempted >= QualifyingAttempts
		},
		compare: func(a, b shots.PlayerAggregate) int {
			return cmp.Compare(a.Score, b.Score)
		},
	},
}

// BuildViews ranks derived aggregates into the five views, in presentation order.
// Ties on a view's key fall back to ascending player id.
func BuildViews(players []shots.PlayerAggregate) []View {
	views := make([]View, 0, len(viewDefs))
	for _, def := range viewDefs {
		views = append(views, rank(players, def))
	}
	return views
}

func rank(players []shots.PlayerAggregate, def viewDef) View {
	selected := make([]shots.PlayerAggregate, 0, len(players))
	for _, p := range players {
		if def.keep == nil || def.keep(p) {
			selected = append(selected, p)
		}
	}
	slices.SortStableFunc(selected, func(a, b shots.PlayerAggregate) int {
		if c := def.compare(a, b); c != 0 {
			return c
		}
		return byPlayerID(a, b)
	})
	if len(selected) > def.limit {
		selected = selected[:def.limit]
	}
	return View{
		Kind:    def.kind,
		Title:   def.title,
		Players: slices.Clip(selected),
	}
}
