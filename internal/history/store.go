package history

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	_ "github.com/go-sql-driver/mysql" // MySQL driver
	"github.com/google/uuid"
	_ "github.com/jackc/pgx/v5/stdlib" // PostgreSQL driver
	"github.com/restorepath/readiness/internal/contract"
	"github.com/restorepath/readiness/schema"
	_ "modernc.org/sqlite" // SQLite driver
)

// snapshotsTable is the table holding one scored snapshot per (user, domain, date).
const snapshotsTable = "readiness_snapshots"

// SnapshotStoreImpl persists history entries on one of the SQL backends.
type SnapshotStoreImpl struct {
	db         *sql.DB
	tableName  string
	backend    schema.DatabaseBackend
	driverName string
	connStr    string
}

var _ contract.SnapshotStore = &SnapshotStoreImpl{} // Compile-time check

// driverFor maps a backend to its database/sql driver name.
func driverFor(backend schema.DatabaseBackend) (string, error) {
	switch backend {
	case schema.SQLiteBackend:
		return "sqlite", nil
	case schema.MySQLBackend:
		return "mysql", nil
	case schema.PostgreSQLBackend:
		return "pgx", nil
	default:
		return "", fmt.Errorf("unsupported history backend: %s. Must be sqlite, mysql, postgresql, or none", backend)
	}
}

// openDB opens and pings the database of a backend.
func openDB(backend schema.DatabaseBackend, connStr string) (*sql.DB, string, error) {
	driverName, err := driverFor(backend)
	if err != nil {
		return nil, "", err
	}

	dsn := connStr
	if backend == schema.SQLiteBackend && dsn == "" {
		dsn = GetDBFilePath()
	}
	db, err := sql.Open(driverName, dsn)
	if err != nil {
		return nil, "", fmt.Errorf("failed to open %s database: %w", backend, err)
	}
	if backend == schema.SQLiteBackend {
		// Limit SQLite to a single open connection to avoid "database is locked" errors
		db.SetMaxOpenConns(1)
	}

	if err := db.Ping(); err != nil {
		_ = db.Close()
		var detail string
		switch backend {
		case schema.MySQLBackend:
			detail = "Check connection format: user:password@tcp(host:port)/dbname"
		case schema.PostgreSQLBackend:
			detail = "Check connection format: host=localhost port=5432 user=postgres dbname=mydb"
		default:
			detail = "Ensure the directory is writable"
		}
		return nil, "", fmt.Errorf("failed to connect to %s database: %w. %s", backend, err, detail)
	}
	return db, driverName, nil
}

// NewSnapshotStore initializes a SnapshotStore for the backend. The none backend
// returns a store that records nothing.
func NewSnapshotStore(tableName string, backend schema.DatabaseBackend, connStr string) (contract.SnapshotStore, error) {
	if err := validateTableName(tableName); err != nil {
		return nil, err
	}

	if backend == schema.NoneBackend {
		return &SnapshotStoreImpl{tableName: tableName, backend: backend, connStr: connStr}, nil
	}

	db, driverName, err := openDB(backend, connStr)
	if err != nil {
		return nil, err
	}

	if _, err := db.Exec(getCreateTableQuery(tableName, backend)); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create table %s: %w", tableName, err)
	}

	return &SnapshotStoreImpl{
		db:         db,
		tableName:  tableName,
		backend:    backend,
		driverName: driverName,
		connStr:    connStr,
	}, nil
}

// OpenSnapshotStore opens the snapshots table of a backend.
func OpenSnapshotStore(backend schema.DatabaseBackend, connStr string) (contract.SnapshotStore, error) {
	return NewSnapshotStore(snapshotsTable, backend, connStr)
}

// getCreateTableQuery returns the CREATE TABLE query for the given backend.
func getCreateTableQuery(tableName string, backend schema.DatabaseBackend) string {
	quoted := quoteTableName(tableName, backend)
	switch backend {
	case schema.MySQLBackend:
		return fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS %s (
				entry_id VARCHAR(36) PRIMARY KEY,
				user_id VARCHAR(128) NOT NULL,
				domain VARCHAR(32) NOT NULL,
				entry_date VARCHAR(10) NOT NULL,
				metrics TEXT NOT NULL,
				score INT NOT NULL,
				level VARCHAR(32) NOT NULL,
				critical_cap TINYINT NOT NULL DEFAULT 0,
				recorded_at BIGINT NOT NULL,
				UNIQUE KEY uq_user_domain_date (user_id, domain, entry_date)
			);
		`, quoted)

	case schema.PostgreSQLBackend:
		return fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS %s (
				entry_id TEXT PRIMARY KEY,
				user_id TEXT NOT NULL,
				domain TEXT NOT NULL,
				entry_date TEXT NOT NULL,
				metrics TEXT NOT NULL,
				score INTEGER NOT NULL,
				level TEXT NOT NULL,
				critical_cap INTEGER NOT NULL DEFAULT 0,
				recorded_at BIGINT NOT NULL,
				UNIQUE (user_id, domain, entry_date)
			);
		`, quoted)

	default: // SQLite
		return fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS %s (
				entry_id TEXT PRIMARY KEY,
				user_id TEXT NOT NULL,
				domain TEXT NOT NULL,
				entry_date TEXT NOT NULL,
				metrics TEXT NOT NULL,
				score INTEGER NOT NULL,
				level TEXT NOT NULL,
				critical_cap INTEGER NOT NULL DEFAULT 0,
				recorded_at INTEGER NOT NULL,
				UNIQUE (user_id, domain, entry_date)
			);
		`, quoted)
	}
}

// placeholders returns n backend-specific parameter placeholders.
func (ss *SnapshotStoreImpl) placeholders(n int) []any {
	out := make([]any, n)
	for i := range out {
		if ss.backend == schema.PostgreSQLBackend {
			out[i] = fmt.Sprintf("$%d", i+1)
		} else {
			out[i] = "?"
		}
	}
	return out
}

// getUpsertQuery returns the UPSERT query for the backend.
func (ss *SnapshotStoreImpl) getUpsertQuery() string {
	quoted := quoteTableName(ss.tableName, ss.backend)
	const cols = "entry_id, user_id, domain, entry_date, metrics, score, level, critical_cap, recorded_at"
	switch ss.backend {
	case schema.MySQLBackend:
		return fmt.Sprintf(`INSERT INTO %s (%s) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?) AS new
			ON DUPLICATE KEY UPDATE entry_id = new.entry_id, metrics = new.metrics, score = new.score,
			level = new.level, critical_cap = new.critical_cap, recorded_at = new.recorded_at`, quoted, cols)

	case schema.PostgreSQLBackend:
		return fmt.Sprintf(`INSERT INTO %s (%s) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
			ON CONFLICT (user_id, domain, entry_date) DO UPDATE SET entry_id = EXCLUDED.entry_id,
			metrics = EXCLUDED.metrics, score = EXCLUDED.score, level = EXCLUDED.level,
			critical_cap = EXCLUDED.critical_cap, recorded_at = EXCLUDED.recorded_at`, quoted, cols)

	default: // SQLite
		return fmt.Sprintf(`INSERT OR REPLACE INTO %s (%s) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`, quoted, cols)
	}
}

// Put upserts the entry for its (user, domain, date) key. A replaced record gets a new entry id.
func (ss *SnapshotStoreImpl) Put(entry schema.HistoryEntry) error {
	if ss.backend == schema.NoneBackend || ss.db == nil {
		return nil
	}

	if entry.UserID == "" {
		return fmt.Errorf("history entry has no user")
	}
	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}
	if entry.Domain == "" {
		entry.Domain = entry.Result.Domain
	}
	if entry.RecordedAt.IsZero() {
		entry.RecordedAt = time.Now()
	}
	input := entry.Input
	if len(input) == 0 {
		input = json.RawMessage("{}")
	}

	capFlag := 0
	if entry.Result.TriggeredCriticalCap {
		capFlag = 1
	}
	_, err := ss.db.Exec(ss.getUpsertQuery(),
		entry.ID,
		entry.UserID,
		string(entry.Domain),
		entry.Date.UTC().Format(schema.DateLayout),
		string(input),
		entry.Result.Score,
		entry.Result.Level,
		capFlag,
		entry.RecordedAt.Unix(),
	)
	if err != nil {
		return fmt.Errorf("failed to record %s entry for %s: %w", entry.Domain, entry.UserID, err)
	}
	return nil
}

// List returns the entries of a user and domain, oldest first.
func (ss *SnapshotStoreImpl) List(userID string, domain schema.Domain) ([]schema.HistoryEntry, error) {
	if ss.backend == schema.NoneBackend || ss.db == nil {
		return []schema.HistoryEntry{}, nil
	}

	ph := ss.placeholders(2)
	query := fmt.Sprintf(`SELECT entry_id, user_id, domain, entry_date, metrics, score, level, critical_cap, recorded_at
		FROM %s WHERE user_id = %s AND domain = %s ORDER BY entry_date ASC`,
		quoteTableName(ss.tableName, ss.backend), ph[0], ph[1])
	return ss.query(query, userID, string(domain))
}

// All returns every stored entry ordered by user, domain and date.
func (ss *SnapshotStoreImpl) All() ([]schema.HistoryEntry, error) {
	if ss.backend == schema.NoneBackend || ss.db == nil {
		return []schema.HistoryEntry{}, nil
	}

	query := fmt.Sprintf(`SELECT entry_id, user_id, domain, entry_date, metrics, score, level, critical_cap, recorded_at
		FROM %s ORDER BY user_id ASC, domain ASC, entry_date ASC`, quoteTableName(ss.tableName, ss.backend))
	return ss.query(query)
}

// query runs a snapshot SELECT and scans its rows.
func (ss *SnapshotStoreImpl) query(query string, args ...any) ([]schema.HistoryEntry, error) {
	rows, err := ss.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query history: %w", err)
	}
	defer func() { _ = rows.Close() }()

	entries := []schema.HistoryEntry{}
	for rows.Next() {
		var rec schema.SnapshotRecord
		var capFlag int
		var entryDate string
		var recordedAt int64
		if err := rows.Scan(&rec.EntryID, &rec.UserID, &rec.Domain, &entryDate, &rec.Metrics,
			&rec.Score, &rec.Level, &capFlag, &recordedAt); err != nil {
			return nil, fmt.Errorf("failed to scan history row: %w", err)
		}
		date, err := time.Parse(schema.DateLayout, entryDate)
		if err != nil {
			return nil, fmt.Errorf("invalid entry date %q for %s: %w", entryDate, rec.EntryID, err)
		}
		rec.EntryDate = date
		rec.CriticalCap = capFlag != 0
		rec.RecordedAt = time.Unix(recordedAt, 0)
		entries = append(entries, recordToEntry(rec))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating history rows: %w", err)
	}
	return entries, nil
}

// recordToEntry converts a stored row to a history entry.
func recordToEntry(rec schema.SnapshotRecord) schema.HistoryEntry {
	return schema.HistoryEntry{
		ID:     rec.EntryID,
		UserID: rec.UserID,
		Domain: schema.Domain(rec.Domain),
		Date:   rec.EntryDate,
		Input:  json.RawMessage(rec.Metrics),
		Result: schema.ScoreResult{
			Domain:               schema.Domain(rec.Domain),
			Score:                int(rec.Score),
			Level:                rec.Level,
			TriggeredCriticalCap: rec.CriticalCap,
		},
		RecordedAt: rec.RecordedAt,
	}
}

// Close closes the underlying DB connection.
func (ss *SnapshotStoreImpl) Close() error {
	if ss.db != nil {
		return ss.db.Close()
	}
	return nil
}
