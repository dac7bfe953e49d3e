package snapshots

import (
	"encoding/json"
	"errors"
	"os"
)

// Store defines how snapshots are loaded.
type Store interface {
	LoadReport(date string) (ReportSnapshot, error)
}

// FSStore loads snapshots from the filesystem.
type FSStore struct {
	basePath string
}

// NewFSStore constructs an FS-backed snapshot store rooted at basePath.
func NewFSStore(basePath string) *FSStore {
	return &FSStore{basePath: basePath}
}

// LoadReport reads the report snapshot for the given date (YYYY-MM-DD) from disk.
// Files are expected at {basePath}/reports/{date}.json.
func (s *FSStore) LoadReport(date string) (ReportSnapshot, error) {
	var payload ReportSnapshot
	if err := s.load(date, &payload); err != nil {
		return ReportSnapshot{}, err
	}
	if payload.Date == "" {
		payload.Date = date
	}
	return payload, nil
}

// HasReport reports whether a snapshot exists for date.
func (s *FSStore) HasReport(date string) bool {
	if s == nil || date == "" {
		return false
	}
	_, err := os.Stat(ReportSnapshotPath(s.basePath, date))
	return err == nil
}

func (s *FSStore) load(date string, payload any) error {
	if s == nil {
		return errors.New("snapshot store not configured")
	}
	if date == "" {
		return errors.New("snapshot date required")
	}
	return decodeFile(ReportSnapshotPath(s.basePath, date), payload)
}

func decodeFile(path string, payload any) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return json.NewDecoder(f).Decode(payload)
}
