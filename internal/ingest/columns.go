package ingest

// Column names expected in the box-score header.
const (
	ColPlayerID      = "PLAYER_ID"
	ColPlayerName    = "PLAYER_NAME"
	ColStartPosition = "START_POSITION"
	ColFGM           = "FGM"
	ColFGA           = "FGA"
	ColFGPct         = "FG_PCT"
	ColFG3M          = "FG3M"
	ColFG3A          = "FG3A"
	ColFG3Pct        = "FG3_PCT"
	ColFTM           = "FTM"
	ColFTA           = "FTA"
	ColFTPct         = "FT_PCT"
)

// Columns is the projection kept from the source, in output order.
var Columns = []string{
	ColPlayerID,
	ColPlayerName,
	ColStartPosition,
	ColFGM,
	ColFGA,
	ColFGPct,
	ColFG3M,
	ColFG3A,
	ColFG3Pct,
	ColFTM,
	ColFTA,
	ColFTPct,
}

// RequiredColumns must be present on a row for it to be kept.
var RequiredColumns = []string{ColFGM, ColFGA, ColFGPct}

// naTokens are read as absent values, matching what common CSV tooling treats as NA.
var naTokens = map[string]struct{}{
	"":     {},
	"NA":   {},
	"N/A":  {},
	"NaN":  {},
	"nan":  {},
	"null": {},
	"NULL": {},
	"#N/A": {},
}

func isRequired(col string) bool {
	for _, c := range RequiredColumns {
		if c == col {
			return true
		}
	}
	return false
}
