package metrics

import (
	"sync"
	"time"
)

type sourceStats struct {
	opens           int
	errors          int
	lastOpenLatency time.Duration
}

type stageStats struct {
	runs        int
	errors      int
	lastLatency time.Duration
}

type rowStats struct {
	read             int
	kept             int
	dropped          map[string]int
	coercionFailures map[string]int
	players          int
}

// Recorder captures in-memory metrics about a pipeline run and forwards them to
// OpenTelemetry instruments when Setup configured them. A nil Recorder is a no-op.
type Recorder struct {
	mu      sync.Mutex
	sources map[string]*sourceStats
	stages  map[string]*stageStats
	rows    rowStats
	otel    *otelInstruments
}

func NewRecorder() *Recorder {
	return newRecorder(nil)
}

func newRecorder(otel *otelInstruments) *Recorder {
	return &Recorder{
		sources: make(map[string]*sourceStats),
		stages:  make(map[string]*stageStats),
		rows: rowStats{
			dropped:          make(map[string]int),
			coercionFailures: make(map[string]int),
		},
		otel: otel,
	}
}

// RecordSourceOpen counts an attempt to open the input and stores its latency.
func (r *Recorder) RecordSourceOpen(provider string, duration time.Duration, err error) {
	if r == nil {
		return
	}
	r.mu.Lock()
	stats, ok := r.sources[provider]
	if !ok {
		stats = &sourceStats{}
		r.sources[provider] = stats
	}
	stats.opens++
	stats.lastOpenLatency = duration
	if err != nil {
		stats.errors++
	}
	r.mu.Unlock()

	r.otel.recordSourceOpen(provider, duration, err)
}

// RecordStage tracks one execution of a pipeline stage.
func (r *Recorder) RecordStage(stage string, duration time.Duration, err error) {
	if r == nil {
		return
	}
	r.mu.Lock()
	stats, ok := r.stages[stage]
	if !ok {
		stats = &stageStats{}
		r.stages[stage] = stats
	}
	stats.runs++
	stats.lastLatency = duration
	if err != nil {
		stats.errors++
	}
	r.mu.Unlock()

	r.otel.recordStage(stage, duration, err)
}

// RecordRows adds the rows read from the source and the rows that survived cleaning.
func (r *Recorder) RecordRows(read, kept int) {
	if r == nil {
		return
	}
	r.mu.Lock()
	r.rows.read += read
	r.rows.kept += kept
	r.mu.Unlock()

	r.otel.recordRows(read, kept)
}

// RecordDropped adds n rows excluded for reason.
func (r *Recorder) RecordDropped(reason string, n int) {
	if r == nil || n <= 0 {
		return
	}
	r.mu.Lock()
	r.rows.dropped[reason] += n
	r.mu.Unlock()

	r.otel.recordDropped(reason, n)
}

// RecordCoercionFailures adds n values of column that did not parse.
func (r *Recorder) RecordCoercionFailures(column string, n int) {
	if r == nil || n <= 0 {
		return
	}
	r.mu.Lock()
	r.rows.coercionFailures[column] += n
	r.mu.Unlock()

	r.otel.recordCoercionFailures(column, n)
}

// RecordPlayers adds the number of aggregates produced.
func (r *Recorder) RecordPlayers(n int) {
	if r == nil {
		return
	}
	r.mu.Lock()
	r.rows.players += n
	r.mu.Unlock()

	r.otel.recordPlayers(n)
}

// SourceSnapshot is a copy of the open stats for one provider.
type SourceSnapshot struct {
	Opens           int
	Errors          int
	LastOpenLatency time.Duration
}

// Source returns a copy of the current stats for the provider.
func (r *Recorder) Source(provider string) SourceSnapshot {
	if r == nil {
		return SourceSnapshot{}
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	stats, ok := r.sources[provider]
	if !ok {
		return SourceSnapshot{}
	}
	return SourceSnapshot{
		Opens:           stats.opens,
		Errors:          stats.errors,
		LastOpenLatency: stats.lastOpenLatency,
	}
}

// StageSnapshot is a copy of the stats for one stage.
type StageSnapshot struct {
	Runs        int
	Errors      int
	LastLatency time.Duration
}

// Stage returns a copy of the current stats for the stage.
func (r *Recorder) Stage(stage string) StageSnapshot {
	if r == nil {
		return StageSnapshot{}
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	stats, ok := r.stages[stage]
	if !ok {
		return StageSnapshot{}
	}
	return StageSnapshot{
		Runs:        stats.runs,
		Errors:      stats.errors,
		LastLatency: stats.lastLatency,
	}
}

// RowSnapshot is a copy of the row-level counters.
type RowSnapshot struct {
	Read             int
	Kept             int
	Dropped          map[string]int
	CoercionFailures map[string]int
	Players          int
}

// Rows returns a copy of the row-level counters.
func (r *Recorder) Rows() RowSnapshot {
	if r == nil {
		return RowSnapshot{}
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return RowSnapshot{
		Read:             r.rows.read,
		Kept:             r.rows.kept,
		Dropped:          copyCounts(r.rows.dropped),
		CoercionFailures: copyCounts(r.rows.coercionFailures),
		Players:          r.rows.players,
	}
}

func copyCounts(in map[string]int) map[string]int {
	out := make(map[string]int, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}
