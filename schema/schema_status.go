package schema

import "time"

// HistoryStatus represents the status of the history store.
type HistoryStatus struct {
	Backend         string         `json:"backend"`
	Connected       bool           `json:"connected"`
	TotalEntries    int            `json:"total_entries"`
	Users           int            `json:"users"`
	EntriesByDomain map[Domain]int `json:"entries_by_domain"`
	LastEntryTime   time.Time      `json:"last_entry_time"`
	OldestEntryTime time.Time      `json:"oldest_entry_time"`
	TableSizeBytes  int64          `json:"table_size_bytes"`
}

// SnapshotRecord represents a row from the readiness_snapshots table.
type SnapshotRecord struct {
	EntryID     string
	UserID      string
	Domain      string
	EntryDate   time.Time
	Metrics     string
	Score       float64
	Level       string
	CriticalCap bool
	RecordedAt  time.Time
}
