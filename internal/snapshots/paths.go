package snapshots

import (
	"fmt"
	"path/filepath"
)

const manifestFile = "manifest.json"

// ReportSnapshotPath builds the path to a report snapshot for a given date.
func ReportSnapshotPath(basePath, date string) string {
	return filepath.Join(basePath, string(kindReports), fmt.Sprintf("%s.json", date))
}

// ManifestPath is where the writer keeps the manifest.
func ManifestPath(basePath string) string {
	return filepath.Join(basePath, manifestFile)
}
