package shooting

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/preston-bernstein/nba-shooting-stats/internal/ingest"
	"github.com/preston-bernstein/nba-shooting-stats/internal/metrics"
	"github.com/preston-bernstein/nba-shooting-stats/internal/providers"
	"github.com/preston-bernstein/nba-shooting-stats/internal/providers/fixture"
	"github.com/preston-bernstein/nba-shooting-stats/internal/stats"
	"github.com/preston-bernstein/nba-shooting-stats/internal/testutil"
)

type stringSource struct {
	body string
	err  error
}

func (s stringSource) Name() string { return "string" }

func (s stringSource) Open(ctx context.Context) (io.ReadCloser, error) {
	if s.err != nil {
		return nil, s.err
	}
	return io.NopCloser(strings.NewReader(s.body)), nil
}

func TestRunProducesReportAndRecordsMetrics(t *testing.T) {
	logger, buf := testutil.NewBufferLogger()
	rec := metrics.NewRecorder()
	svc := NewService(logger, rec)

	bad := testutil.Row(3, "Dropped", 1, 2, 0, 0, 0, 0)
	bad.FGA = ""
	src := stringSource{body: testutil.ShotCSV(
		testutil.Row(1, "Example", 5, 10, 0, 0, 0, 0),
		testutil.Row(1, "Example", 3, 5, 0, 0, 0, 0),
		testutil.Row(2, "Other", 2, 2, 1, 1, 0, 0),
		bad,
	)}

	res, err := svc.Run(context.Background(), src)

	require.NoError(t, err)
	assert.Equal(t, "string", res.Provider)
	require.Len(t, res.Report.Players, 2)
	assert.Equal(t, 16, res.Report.Players[0].TotalPoints)
	assert.Equal(t, 4, res.Ingest.RowsRead)
	assert.Equal(t, 1, res.Ingest.Dropped[ingest.DropMissingRequired])

	rows := rec.Rows()
	assert.Equal(t, 4, rows.Read)
	assert.Equal(t, 3, rows.Kept)
	assert.Equal(t, 2, rows.Players)
	assert.Equal(t, 1, rows.Dropped[string(ingest.DropMissingRequired)])
	assert.Equal(t, 1, rec.Stage(StageLoad).Runs)
	assert.Equal(t, 1, rec.Stage(StageCompute).Runs)

	out := buf.String()
	assert.Contains(t, out, "shot records loaded")
	assert.Contains(t, out, "rows dropped during cleaning")
}

func TestRunSourceUnavailableIsFatal(t *testing.T) {
	rec := metrics.NewRecorder()
	svc := NewService(nil, rec)
	cause := &providers.SourceUnavailableError{Provider: "string", Location: "nowhere.csv", Err: errors.New("no such file")}

	_, err := svc.Run(context.Background(), stringSource{err: cause})

	require.Error(t, err)
	_, ok := providers.AsSourceUnavailableError(err)
	assert.True(t, ok)
	assert.Equal(t, 1, rec.Stage(StageLoad).Errors)
	assert.Zero(t, rec.Stage(StageCompute).Runs)
}

func TestRunMalformedSourceIsFatal(t *testing.T) {
	svc := NewService(nil, nil)

	_, err := svc.Run(context.Background(), stringSource{body: "PLAYER_ID,FGM\n1,2\n"})

	require.Error(t, err)
	_, ok := ingest.AsMissingColumnsError(err)
	assert.True(t, ok)
}

type closeTracker struct {
	io.Reader
	closed int
}

func (c *closeTracker) Close() error {
	c.closed++
	return nil
}

type trackedSource struct {
	rc *closeTracker
}

func (s trackedSource) Name() string { return "tracked" }

func (s trackedSource) Open(ctx context.Context) (io.ReadCloser, error) {
	return s.rc, nil
}

func TestRunClosesSourceAfterLoad(t *testing.T) {
	svc := NewService(nil, nil)

	ok := &closeTracker{Reader: strings.NewReader(testutil.ShotCSV(testutil.Row(1, "Example", 5, 10, 0, 0, 0, 0)))}
	_, err := svc.Run(context.Background(), trackedSource{rc: ok})
	require.NoError(t, err)
	assert.Equal(t, 1, ok.closed)

	bad := &closeTracker{Reader: strings.NewReader("PLAYER_ID,FGM\n1,2\n")}
	_, err = svc.Run(context.Background(), trackedSource{rc: bad})
	require.Error(t, err)
	assert.Equal(t, 1, bad.closed)
}

func TestRunStopsOnCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewService(nil, nil).Run(ctx, stringSource{body: testutil.ShotCSV(testutil.Row(1, "A", 1, 1, 0, 0, 0, 0))})

	assert.ErrorIs(t, err, context.Canceled)
}

func TestRunOverFixtureIsIdempotent(t *testing.T) {
	svc := NewService(nil, nil)

	first, err := svc.Run(context.Background(), fixture.New())
	require.NoError(t, err)
	second, err := svc.Run(context.Background(), fixture.New())
	require.NoError(t, err)

	assert.Equal(t, first.Report, second.Report)
	assert.Len(t, first.Report.Players, 18)
	assert.Equal(t, 229, first.Ingest.RowsRead)
	assert.Equal(t, 12, first.Ingest.Dropped[ingest.DropMissingRequired])
	assert.Equal(t, 1, first.Ingest.CoercionFailures[ingest.ColFG3M])

	worst, ok := first.Report.View(stats.ViewWorstQualified)
	require.True(t, ok)
	assert.NotEmpty(t, worst.Players)
}
