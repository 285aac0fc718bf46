package history

import (
	"fmt"
	"io"
	"slices"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/restorepath/readiness/schema"
)

// GetStatus returns status information about the history store.
func (ss *SnapshotStoreImpl) GetStatus() (schema.HistoryStatus, error) {
	status := schema.HistoryStatus{
		Backend:         string(ss.backend),
		Connected:       ss.db != nil,
		EntriesByDomain: map[schema.Domain]int{},
	}

	if ss.backend == schema.NoneBackend || ss.db == nil {
		return status, nil
	}

	quoted := quoteTableName(ss.tableName, ss.backend)

	row := ss.db.QueryRow(fmt.Sprintf("SELECT COUNT(*), COUNT(DISTINCT user_id) FROM %s", quoted))
	if err := row.Scan(&status.TotalEntries, &status.Users); err != nil {
		return status, fmt.Errorf("failed to get total entries: %w", err)
	}
	if status.TotalEntries == 0 {
		return status, nil
	}

	rows, err := ss.db.Query(fmt.Sprintf("SELECT domain, COUNT(*) FROM %s GROUP BY domain", quoted))
	if err != nil {
		return status, fmt.Errorf("failed to count entries by domain: %w", err)
	}
	for rows.Next() {
		var domain string
		var count int
		if err := rows.Scan(&domain, &count); err != nil {
			_ = rows.Close()
			return status, fmt.Errorf("failed to scan domain count: %w", err)
		}
		status.EntriesByDomain[schema.Domain(domain)] = count
	}
	_ = rows.Close()

	var lastTs, oldestTs int64
	row = ss.db.QueryRow(fmt.Sprintf("SELECT MAX(recorded_at), MIN(recorded_at) FROM %s", quoted))
	if err := row.Scan(&lastTs, &oldestTs); err != nil {
		return status, fmt.Errorf("failed to get entry times: %w", err)
	}
	status.LastEntryTime = time.Unix(lastTs, 0)
	status.OldestEntryTime = time.Unix(oldestTs, 0)

	status.TableSizeBytes = ss.tableSize(status.TotalEntries)
	return status, nil
}

// tableSize estimates the on-disk size of the snapshots table. Failures fall back
// to a rough per-row estimate.
func (ss *SnapshotStoreImpl) tableSize(totalEntries int) int64 {
	estimate := int64(totalEntries) * 512
	var size int64

	switch ss.backend {
	case schema.SQLiteBackend:
		row := ss.db.QueryRow("SELECT page_count * page_size FROM pragma_page_count(), pragma_page_size()")
		if err := row.Scan(&size); err != nil {
			return estimate
		}
	case schema.MySQLBackend:
		cfg, err := mysql.ParseDSN(ss.connStr)
		if err != nil || cfg.DBName == "" {
			return estimate
		}
		row := ss.db.QueryRow("SELECT data_length + index_length FROM information_schema.tables WHERE table_schema = ? AND table_name = ?", cfg.DBName, ss.tableName)
		if err := row.Scan(&size); err != nil {
			return estimate
		}
	case schema.PostgreSQLBackend:
		row := ss.db.QueryRow("SELECT pg_total_relation_size($1)", ss.tableName)
		if err := row.Scan(&size); err != nil {
			return estimate
		}
	default:
		return estimate
	}
	return size
}

// PrintHistoryStatus prints history status information.
func PrintHistoryStatus(w io.Writer, status schema.HistoryStatus) {
	_, _ = fmt.Fprintf(w, "History Backend: %s\n", status.Backend)
	_, _ = fmt.Fprintf(w, "Connected: %t\n", status.Connected)
	if !status.Connected {
		return
	}
	_, _ = fmt.Fprintf(w, "Total Entries: %d\n", status.TotalEntries)
	if status.TotalEntries > 0 {
		_, _ = fmt.Fprintf(w, "Users: %d\n", status.Users)
		_, _ = fmt.Fprintf(w, "Last Entry: %s\n", status.LastEntryTime.Format("2006-01-02 15:04:05"))
		_, _ = fmt.Fprintf(w, "Oldest Entry: %s\n", status.OldestEntryTime.Format("2006-01-02 15:04:05"))
		_, _ = fmt.Fprintln(w, "Entries by Domain:")
		domains := make([]schema.Domain, 0, len(status.EntriesByDomain))
		for d := range status.EntriesByDomain {
			domains = append(domains, d)
		}
		slices.Sort(domains)
		for _, d := range domains {
			_, _ = fmt.Fprintf(w, "  %s: %d\n", d, status.EntriesByDomain[d])
		}
	}
	_, _ = fmt.Fprintf(w, "Table Size: %d bytes\n", status.TableSizeBytes)
}
