package history

import (
	"errors"
	"fmt"
	"io"

	"github.com/restorepath/readiness/internal/contract"
	"github.com/restorepath/readiness/internal/parquet"
)

// ExecuteHistoryExport writes all stored history to Parquet files named after outputFile.
func ExecuteHistoryExport(store contract.SnapshotStore, outputFile string, out io.Writer) error {
	if outputFile == "" {
		return errors.New("--output-file is required for export command")
	}
	if store == nil {
		return errors.New("history store is not initialized")
	}

	status, err := store.GetStatus()
	if err != nil {
		return fmt.Errorf("failed to get history status: %w", err)
	}
	if status.TotalEntries == 0 {
		return errors.New("no history data found to export")
	}

	_, _ = fmt.Fprintf(out, "Exporting data from %s backend...\n", status.Backend)
	_, _ = fmt.Fprintf(out, "Total entries: %d across %d users\n", status.TotalEntries, status.Users)

	entries, err := store.All()
	if err != nil {
		return fmt.Errorf("failed to retrieve history: %w", err)
	}

	snapshots := parquet.ConvertHistoryEntries(entries)
	snapshotsFile := outputFile + ".snapshots.parquet"
	if err := parquet.WriteSnapshotsParquet(snapshots, snapshotsFile); err != nil {
		return fmt.Errorf("failed to write snapshots: %w", err)
	}
	_, _ = fmt.Fprintf(out, "Exported %d snapshots to: %s\n", len(snapshots), snapshotsFile)

	metrics := parquet.FlattenDrainageMetrics(entries)
	metricsFile := outputFile + ".drainage_metrics.parquet"
	if err := parquet.WriteMetricValuesParquet(metrics, metricsFile); err != nil {
		return fmt.Errorf("failed to write drainage metrics: %w", err)
	}
	_, _ = fmt.Fprintf(out, "Exported %d drainage metric values to: %s\n", len(metrics), metricsFile)

	return nil
}
