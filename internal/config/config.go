package config

import (
	"path/filepath"
	"strings"
)

// Config holds runtime configuration for a pipeline run.
type Config struct {
	Provider  string
	InputPath string
	Output    OutputConfig
	Metrics   MetricsConfig
	Logging   LoggingConfig
}

// LoggingConfig selects log level and handler format.
type LoggingConfig struct {
	Level  string
	Format string
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	output := loadOutput()
	return Config{
		Provider:  normalizeProvider(envOrDefault(envProvider, defaultProvider)),
		InputPath: envOrDefault(envInputPath, defaultInputPath),
		Output:    output,
		Metrics:   loadMetrics(output.Dir),
		Logging: LoggingConfig{
			Level:  envOrDefault(envLogLevel, defaultLogLevel),
			Format: envOrDefault(envLogFormat, defaultLogFormat),
		},
	}
}

func normalizeProvider(raw string) string {
	switch p := strings.ToLower(strings.TrimSpace(raw)); p {
	case ProviderCSV, ProviderFixture:
		return p
	default:
		return defaultProvider
	}
}

// OutputConfig controls which run artifacts are written and where.
type OutputConfig struct {
	Dir                   string
	PlotsEnabled          bool
	WorkbookEnabled       bool
	SnapshotEnabled       bool
	SnapshotRetentionDays int
}

func loadOutput() OutputConfig {
	return OutputConfig{
		Dir:                   envOrDefault(envOutputDir, defaultOutputDir),
		PlotsEnabled:          boolEnvOrDefault(envPlotsOn, defaultPlotsOn),
		WorkbookEnabled:       boolEnvOrDefault(envWorkbookOn, defaultWorkbookOn),
		SnapshotEnabled:       boolEnvOrDefault(envSnapshotOn, defaultSnapshotOn),
		SnapshotRetentionDays: intEnvOrDefault(envSnapshotDays, defaultSnapshotDays),
	}
}

// PlotsDir is where scatter plots are written.
func (o OutputConfig) PlotsDir() string {
	return filepath.Join(o.Dir, plotsSubdir)
}

// WorkbookPath is the XLSX export location.
func (o OutputConfig) WorkbookPath() string {
	return filepath.Join(o.Dir, workbookFile)
}

// SnapshotDir is the root of report snapshots and their manifest.
func (o OutputConfig) SnapshotDir() string {
	return filepath.Join(o.Dir, snapshotsSubdir)
}
