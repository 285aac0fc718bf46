// Package parquet exports stored readiness history to Parquet files
// using github.com/parquet-go/parquet-go.
package parquet

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/parquet-go/parquet-go"
	"github.com/restorepath/readiness/schema"
)

// Snapshot is one scored history entry. It maps to the readiness_snapshots table.
type Snapshot struct {
	EntryID string `parquet:"entry_id,snappy"`
	UserID  string `parquet:"user_id,snappy,dict"`
	Domain  string `parquet:"domain,snappy,dict"`

	// EntryDate is the calendar day of the snapshot at midnight UTC
	EntryDate time.Time `parquet:"entry_date,snappy"`

	// Input is the JSON-encoded domain input
	Input string `parquet:"input,snappy"`

	Score       int32     `parquet:"score,snappy"`
	Level       string    `parquet:"level,snappy,dict"`
	CriticalCap bool      `parquet:"critical_cap"`
	RecordedAt  time.Time `parquet:"recorded_at,snappy"`
}

// MetricValue is one drainage metric of one snapshot, flattened for analysis.
type MetricValue struct {
	EntryID   string    `parquet:"entry_id,snappy"`
	UserID    string    `parquet:"user_id,snappy,dict"`
	EntryDate time.Time `parquet:"entry_date,snappy"`
	Metric    string    `parquet:"metric,snappy,dict"`
	Value     int32     `parquet:"value,snappy"`
}

// writeParquet writes rows of T to a new file at outputPath.
func writeParquet[T any](data []T, outputPath string) error {
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	writer := parquet.NewGenericWriter[T](file)
	if _, err := writer.Write(data); err != nil {
		_ = writer.Close()
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("failed to finalize parquet file: %w", err)
	}
	return nil
}

// WriteSnapshotsParquet writes snapshot rows to a Parquet file.
func WriteSnapshotsParquet(data []Snapshot, outputPath string) error {
	return writeParquet(data, outputPath)
}

// WriteMetricValuesParquet writes flattened drainage metric rows to a Parquet file.
func WriteMetricValuesParquet(data []MetricValue, outputPath string) error {
	return writeParquet(data, outputPath)
}

// ConvertHistoryEntries converts history entries to Snapshot rows.
func ConvertHistoryEntries(entries []schema.HistoryEntry) []Snapshot {
	result := make([]Snapshot, len(entries))
	for i, e := range entries {
		result[i] = Snapshot{
			EntryID:     e.ID,
			UserID:      e.UserID,
			Domain:      string(e.Domain),
			EntryDate:   e.Date,
			Input:       string(e.Input),
			Score:       int32(e.Result.Score),
			Level:       e.Result.Level,
			CriticalCap: e.Result.TriggeredCriticalCap,
			RecordedAt:  e.RecordedAt,
		}
	}
	return result
}

// FlattenDrainageMetrics expands the stored drainage snapshots into one row per metric,
// in rubric order. Entries of other domains and undecodable inputs are skipped.
func FlattenDrainageMetrics(entries []schema.HistoryEntry) []MetricValue {
	result := []MetricValue{}
	for _, e := range entries {
		if e.Domain != schema.DrainageDomain {
			continue
		}
		var snap schema.Snapshot
		if err := json.Unmarshal(e.Input, &snap); err != nil {
			continue
		}
		for _, key := range schema.DrainageMetricKeys {
			v, ok := snap[key]
			if !ok {
				continue
			}
			result = append(result, MetricValue{
				EntryID:   e.ID,
				UserID:    e.UserID,
				EntryDate: e.Date,
				Metric:    string(key),
				Value:     int32(v),
			})
		}
	}
	return result
}
