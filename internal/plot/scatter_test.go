package plot

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/preston-bernstein/nba-shooting-stats/internal/stats"
	"github.com/preston-bernstein/nba-shooting-stats/internal/testutil"
)

func sampleSeries(highlight bool) stats.Series {
	return stats.Series{
		Name:      "sample",
		Title:     "Shooting Score vs Total Missed Field Goals",
		XLabel:    "Total Missed Field Goals",
		YLabel:    "Shooting Score",
		Highlight: highlight,
		Points: []stats.Point{
			{PlayerID: 1, PlayerName: "A", X: 7, Y: 2.844},
			{PlayerID: 2, PlayerName: "B", X: 120, Y: 310.5},
			{PlayerID: 3, PlayerName: "C", X: 64, Y: 90},
		},
	}
}

func TestWriteScatterDocument(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteScatter(&buf, sampleSeries(false)))
	out := buf.String()

	assert.Contains(t, out, "<svg")
	assert.True(t, strings.HasSuffix(strings.TrimSpace(out), "</svg>"))
	assert.Equal(t, 3, strings.Count(out, "<circle"))
	assert.Contains(t, out, "Shooting Score vs Total Missed Field Goals")
	assert.Contains(t, out, "Total Missed Field Goals")
	assert.Contains(t, out, "fill:"+baseFill)
	assert.NotContains(t, out, highlightFill)
}

func TestWriteScatterHighlight(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteScatter(&buf, sampleSeries(true)))
	assert.Contains(t, buf.String(), "fill:"+highlightFill)
}

func TestWriteScatterEmptySeries(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteScatter(&buf, stats.Series{Name: "empty", Title: "Empty"}))
	assert.Zero(t, strings.Count(buf.String(), "<circle"))
	assert.Contains(t, buf.String(), "</svg>")
}

func TestWriteScatterReportsWriteError(t *testing.T) {
	err := WriteScatter(failingWriter{}, sampleSeries(false))
	require.Error(t, err)
	assert.True(t, errors.Is(err, errDiskFull))
}

func TestWriteScatterFileFromReport(t *testing.T) {
	rep := stats.Compute(testutil.SeasonRecords(40))
	dir := filepath.Join(t.TempDir(), "plots")

	for _, s := range rep.Plots {
		path, err := WriteScatterFile(dir, s)
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(dir, s.Name+".svg"), path)

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, len(s.Points), strings.Count(string(data), "<circle"))
	}
}

func TestRangeOfPointsIncludesZeroAndPads(t *testing.T) {
	r := rangeOf(sampleSeries(false).Points, func(p stats.Point) float64 { return p.X })
	assert.Equal(t, 0.0, r.min)
	assert.InDelta(t, 126.0, r.max, 1e-9)

	flat := rangeOf([]stats.Point{{X: 0}, {X: 0}}, func(p stats.Point) float64 { return p.X })
	assert.Greater(t, flat.max, flat.min)
}

func TestVmap(t *testing.T) {
	assert.InDelta(t, 50.0, vmap(5, 0, 10, 0, 100), 1e-9)
	assert.InDelta(t, 100.0, vmap(0, 0, 10, 100, 0), 1e-9)
}

var errDiskFull = errors.New("disk full")

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errDiskFull }
