package report

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/preston-bernstein/nba-shooting-stats/internal/ingest"
	"github.com/preston-bernstein/nba-shooting-stats/internal/stats"
)

// WriteTables renders each view as an aligned text table, in the given order.
func WriteTables(w io.Writer, views []stats.View) error {
	for i, v := range views {
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		if err := WriteTable(w, v); err != nil {
			return err
		}
	}
	return nil
}

// WriteTable renders one view: a title line, a header and one row per player with a
// 1-based rank.
func WriteTable(w io.Writer, v stats.View) error {
	if _, err := fmt.Fprintf(w, "%s:\n", v.Title); err != nil {
		return err
	}
	if len(v.Players) == 0 {
		_, err := fmt.Fprintln(w, "(no players)")
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintf(tw, "#\t%s\t\n", strings.Join(Headers, "\t"))
	for i, p := range v.Players {
		fmt.Fprintf(tw, "%d\t%s\t\n", i+1, strings.Join(textCells(p), "\t"))
	}
	return tw.Flush()
}

// WriteIngestSummary prints what cleaning kept and discarded.
func WriteIngestSummary(w io.Writer, st ingest.Stats) error {
	var b strings.Builder
	b.WriteString("Ingest summary:\n")
	fmt.Fprintf(&b, "  rows read: %d\n", st.RowsRead)
	fmt.Fprintf(&b, "  rows kept: %d\n", st.RowsKept)
	fmt.Fprintf(&b, "  rows dropped: %d\n", st.TotalDropped())
	for _, reason := range sortedKeys(st.Dropped) {
		fmt.Fprintf(&b, "    %s: %d\n", reason, st.Dropped[ingest.DropReason(reason)])
	}
	fmt.Fprintf(&b, "  values not numeric: %d\n", st.TotalCoercionFailures())
	for _, col := range sortedKeys(st.CoercionFailures) {
		fmt.Fprintf(&b, "    %s: %d\n", col, st.CoercionFailures[col])
	}
	_, err := io.WriteString(w, b.String())
	return err
}

func sortedKeys[K ~string, V any](m map[K]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, string(k))
	}
	sort.Strings(keys)
	return keys
}
