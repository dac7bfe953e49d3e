package config

const (
	envProvider        = "SHOTS_PROVIDER"
	envInputPath       = "SHOTS_INPUT_PATH"
	envOutputDir       = "OUTPUT_DIR"
	envPlotsOn         = "PLOTS_ENABLED"
	envWorkbookOn      = "XLSX_EXPORT_ENABLED"
	envSnapshotOn      = "SNAPSHOT_ENABLED"
	envSnapshotDays    = "SNAPSHOT_RETENTION_DAYS"
	envMetricsOn       = "METRICS_ENABLED"
	envMetricsTextfile = "METRICS_TEXTFILE"
	envOtelEndpoint    = "OTEL_EXPORTER_OTLP_ENDPOINT"
	envOtelService     = "OTEL_SERVICE_NAME"
	envOtelInsecure    = "OTEL_EXPORTER_OTLP_INSECURE"
	envLogLevel        = "LOG_LEVEL"
	envLogFormat       = "LOG_FORMAT"

	// ProviderCSV reads SHOTS_INPUT_PATH; ProviderFixture serves the embedded sample.
	ProviderCSV     = "csv"
	ProviderFixture = "fixture"

	defaultProvider     = ProviderCSV
	defaultInputPath    = "games_details.csv"
	defaultOutputDir    = "out"
	defaultPlotsOn      = true
	defaultWorkbookOn   = true
	defaultSnapshotOn   = true
	defaultSnapshotDays = 14
	defaultMetricsOn    = true
	defaultServiceName  = "nba-shooting-stats"
	defaultLogLevel     = "info"
	defaultLogFormat    = "text"

	plotsSubdir     = "plots"
	snapshotsSubdir = "snapshots"
	workbookFile    = "shooting_stats.xlsx"
	metricsFile     = "metrics.prom"
)
