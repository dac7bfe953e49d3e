package metrics

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	promexporter "go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	semconv "go.opentelemetry.io/otel/semconv/v1.24.0"
)

const defaultServiceName = "nba-shooting-stats"

var (
	promReaderFactory = prometheusComponents
	otlpReaderFactory = buildOTLPReader
	instrumentFactory = newOtelInstruments
)

// TelemetryConfig controls how metrics are exported.
type TelemetryConfig struct {
	Enabled      bool
	ServiceName  string
	OtlpEndpoint string
	OtlpInsecure bool
}

// Setup configures OpenTelemetry metrics with a Prometheus exporter and optional OTLP exporter.
// It returns a Recorder, the Prometheus gatherer backing the exporter (nil when disabled),
// and a shutdown function that flushes pending exports.
func Setup(ctx context.Context, cfg TelemetryConfig) (*Recorder, prometheus.Gatherer, func(context.Context) error, error) {
	if !cfg.Enabled {
		return NewRecorder(), nil, func(context.Context) error { return nil }, nil
	}

	if cfg.ServiceName == "" {
		cfg.ServiceName = defaultServiceName
	}

	promReader, gatherer, err := promReaderFactory()
	if err != nil {
		return nil, nil, nil, err
	}

	opts := []sdkmetric.Option{sdkmetric.WithReader(promReader)}
	if cfg.OtlpEndpoint != "" {
		otlpReader, err := otlpReaderFactory(ctx, cfg.OtlpEndpoint, cfg.OtlpInsecure)
		if err != nil {
			return nil, nil, nil, err
		}
		opts = append(opts, sdkmetric.WithReader(otlpReader))
	}

	res, err := resource.New(ctx,
		resource.WithAttributes(semconv.ServiceName(cfg.ServiceName)),
	)
	if err != nil {
		return nil, nil, nil, err
	}
	opts = append(opts, sdkmetric.WithResource(res))

	provider := sdkmetric.NewMeterProvider(opts...)
	otelInst, err := instrumentFactory(provider)
	if err != nil {
		return nil, nil, nil, err
	}

	rec := newRecorder(otelInst)
	shutdown := func(c context.Context) error {
		return provider.Shutdown(c)
	}

	return rec, gatherer, shutdown, nil
}

func buildOTLPReader(ctx context.Context, endpoint string, insecure bool) (sdkmetric.Reader, error) {
	otlpOpts := []otlpmetrichttp.Option{otlpmetrichttp.WithEndpoint(endpoint)}
	if insecure {
		otlpOpts = append(otlpOpts, otlpmetrichttp.WithInsecure())
	}
	otlpExp, err := otlpmetrichttp.New(ctx, otlpOpts...)
	if err != nil {
		return nil, err
	}
	// A run is short; shutdown flushes whatever the interval has not exported yet.
	return sdkmetric.NewPeriodicReader(otlpExp, sdkmetric.WithInterval(15*time.Second)), nil
}

func prometheusComponents() (sdkmetric.Reader, prometheus.Gatherer, error) {
	reg := prometheus.NewRegistry()
	promExp, err := promexporter.New(promexporter.WithRegisterer(reg))
	if err != nil {
		return nil, nil, err
	}
	return promExp, reg, nil
}

type otelInstruments struct {
	ctx             context.Context
	meter           metric.Meter
	sourceOpens     metric.Int64Counter
	sourceErrors    metric.Int64Counter
	sourceLatencyMs metric.Float64Histogram
	stageRuns       metric.Int64Counter
	stageErrors     metric.Int64Counter
	stageLatencyMs  metric.Float64Histogram
	rowsRead        metric.Int64Counter
	rowsKept        metric.Int64Counter
	rowsDropped     metric.Int64Counter
	coercionFails   metric.Int64Counter
	players         metric.Int64Counter
}

func newOtelInstruments(provider metric.MeterProvider) (*otelInstruments, error) {
	meter := provider.Meter(defaultServiceName)
	ctx := context.Background()

	sourceOpens, err := meter.Int64Counter("source_open_attempts_total")
	if err != nil {
		return nil, err
	}
	sourceErrors, err := meter.Int64Counter("source_open_errors_total")
	if err != nil {
		return nil, err
	}
	sourceLatency, err := meter.Float64Histogram("source_open_duration_ms")
	if err != nil {
		return nil, err
	}
	stageRuns, err := meter.Int64Counter("pipeline_stage_runs_total")
	if err != nil {
		return nil, err
	}
	stageErrors, err := meter.Int64Counter("pipeline_stage_errors_total")
	if err != nil {
		return nil, err
	}
	stageLatency, err := meter.Float64Histogram("pipeline_stage_duration_ms")
	if err != nil {
		return nil, err
	}
	rowsRead, err := meter.Int64Counter("rows_read_total")
	if err != nil {
		return nil, err
	}
	rowsKept, err := meter.Int64Counter("rows_kept_total")
	if err != nil {
		return nil, err
	}
	rowsDropped, err := meter.Int64Counter("rows_dropped_total")
	if err != nil {
		return nil, err
	}
	coercionFails, err := meter.Int64Counter("coercion_failures_total")
	if err != nil {
		return nil, err
	}
	players, err := meter.Int64Counter("players_aggregated_total")
	if err != nil {
		return nil, err
	}

	return &otelInstruments{
		ctx:             ctx,
		meter:           meter,
		sourceOpens:     sourceOpens,
		sourceErrors:    sourceErrors,
		sourceLatencyMs: sourceLatency,
		stageRuns:       stageRuns,
		stageErrors:     stageErrors,
		stageLatencyMs:  stageLatency,
		rowsRead:        rowsRead,
		rowsKept:        rowsKept,
		rowsDropped:     rowsDropped,
		coercionFails:   coercionFails,
		players:         players,
	}, nil
}

func (o *otelInstruments) recordSourceOpen(provider string, duration time.Duration, err error) {
	if o == nil {
		return
	}
	attrs := []attribute.KeyValue{attribute.String(AttrProvider, provider)}
	o.recordCounter(o.sourceOpens, 1, attrs...)
	o.recordHistogram(o.sourceLatencyMs, float64(duration.Milliseconds()), attrs...)
	if err != nil {
		o.recordCounter(o.sourceErrors, 1, attrs...)
	}
}

func (o *otelInstruments) recordStage(stage string, duration time.Duration, err error) {
	if o == nil {
		return
	}
	attrs := []attribute.KeyValue{attribute.String(AttrStage, stage)}
	o.recordCounter(o.stageRuns, 1, attrs...)
	o.recordHistogram(o.stageLatencyMs, float64(duration.Milliseconds()), attrs...)
	if err != nil {
		o.recordCounter(o.stageErrors, 1, attrs...)
	}
}

func (o *otelInstruments) recordRows(read, kept int) {
	if o == nil {
		return
	}
	o.recordCounter(o.rowsRead, int64(read))
	o.recordCounter(o.rowsKept, int64(kept))
}

func (o *otelInstruments) recordDropped(reason string, n int) {
	if o == nil {
		return
	}
	o.recordCounter(o.rowsDropped, int64(n), attribute.String(AttrReason, reason))
}

func (o *otelInstruments) recordCoercionFailures(column string, n int) {
	if o == nil {
		return
	}
	o.recordCounter(o.coercionFails, int64(n), attribute.String(AttrColumn, column))
}

func (o *otelInstruments) recordPlayers(n int) {
	if o == nil {
		return
	}
	o.recordCounter(o.players, int64(n))
}

func (o *otelInstruments) recordCounter(counter metric.Int64Counter, value int64, attrs ...attribute.KeyValue) {
	if o == nil {
		return
	}
	counter.Add(o.ctx, value, metric.WithAttributes(attrs...))
}

func (o *otelInstruments) recordHistogram(hist metric.Float64Histogram, value float64, attrs ...attribute.KeyValue) {
	if o == nil {
		return
	}
	hist.Record(o.ctx, value, metric.WithAttributes(attrs...))
}
