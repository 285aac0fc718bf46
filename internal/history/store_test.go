package history

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/restorepath/readiness/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var day0 = time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC)

func newMemoryStore(t *testing.T) *SnapshotStoreImpl {
	t.Helper()
	store, err := NewSnapshotStore(snapshotsTable, schema.SQLiteBackend, ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store.(*SnapshotStoreImpl)
}

func drainageEntry(user string, offset, score int) schema.HistoryEntry {
	snap, _ := json.Marshal(schema.Snapshot{schema.Sleep: 7})
	return schema.HistoryEntry{
		UserID: user,
		Domain: schema.DrainageDomain,
		Date:   day0.AddDate(0, 0, offset),
		Input:  snap,
		Result: schema.ScoreResult{
			Domain: schema.DrainageDomain,
			Score:  score,
			Level:  string(schema.Ready),
		},
		RecordedAt: day0.AddDate(0, 0, offset).Add(8 * time.Hour),
	}
}

func TestSnapshotStore_NoneBackend(t *testing.T) {
	store, err := NewSnapshotStore(snapshotsTable, schema.NoneBackend, "")
	require.NoError(t, err)

	assert.NoError(t, store.Put(drainageEntry("alex", 0, 80)))

	entries, err := store.List("alex", schema.DrainageDomain)
	require.NoError(t, err)
	assert.Empty(t, entries)

	all, err := store.All()
	require.NoError(t, err)
	assert.Empty(t, all)

	status, err := store.GetStatus()
	require.NoError(t, err)
	assert.False(t, status.Connected)
	assert.Equal(t, "none", status.Backend)

	assert.NoError(t, store.Close())
}

func TestSnapshotStore_InvalidInputs(t *testing.T) {
	_, err := NewSnapshotStore("bad; DROP TABLE", schema.SQLiteBackend, ":memory:")
	assert.Error(t, err)

	_, err = NewSnapshotStore(snapshotsTable, schema.DatabaseBackend("redis"), "")
	assert.Error(t, err)
}

func TestSnapshotStore_PutAndList(t *testing.T) {
	store := newMemoryStore(t)

	// inserted out of order, listed chronologically
	for _, e := range []schema.HistoryEntry{
		drainageEntry("alex", 2, 85),
		drainageEntry("alex", 0, 70),
		drainageEntry("alex", 1, 78),
		drainageEntry("sam", 0, 40),
	} {
		require.NoError(t, store.Put(e))
	}

	entries, err := store.List("alex", schema.DrainageDomain)
	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.Equal(t, []float64{70, 78, 85}, schema.Scores(entries))

	first := entries[0]
	assert.NotEmpty(t, first.ID)
	assert.Equal(t, "alex", first.UserID)
	assert.Equal(t, schema.DrainageDomain, first.Domain)
	assert.Equal(t, day0, first.Date)
	assert.Equal(t, schema.DrainageDomain, first.Result.Domain)
	assert.Equal(t, string(schema.Ready), first.Result.Level)
	assert.JSONEq(t, `{"sleep":7}`, string(first.Input))
	assert.Equal(t, day0.Add(8*time.Hour).Unix(), first.RecordedAt.Unix())

	other, err := store.List("alex", schema.HerxDomain)
	require.NoError(t, err)
	assert.Empty(t, other)
}

func TestSnapshotStore_UpsertReplacesDay(t *testing.T) {
	store := newMemoryStore(t)

	require.NoError(t, store.Put(drainageEntry("alex", 0, 55)))
	before, err := store.List("alex", schema.DrainageDomain)
	require.NoError(t, err)
	require.Len(t, before, 1)

	corrected := drainageEntry("alex", 0, 81)
	corrected.Result.TriggeredCriticalCap = true
	require.NoError(t, store.Put(corrected))

	after, err := store.List("alex", schema.DrainageDomain)
	require.NoError(t, err)
	require.Len(t, after, 1)
	assert.Equal(t, 81, after[0].Result.Score)
	assert.True(t, after[0].Result.TriggeredCriticalCap)
	assert.NotEqual(t, before[0].ID, after[0].ID)
}

func TestSnapshotStore_PutDefaults(t *testing.T) {
	store := newMemoryStore(t)

	entry := drainageEntry("alex", 0, 60)
	entry.Domain = ""
	entry.Input = nil
	entry.RecordedAt = time.Time{}
	require.NoError(t, store.Put(entry))

	entries, err := store.List("alex", schema.DrainageDomain)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.JSONEq(t, `{}`, string(entries[0].Input))
	assert.False(t, entries[0].RecordedAt.IsZero())

	entry.UserID = ""
	assert.Error(t, store.Put(entry))
}

func TestSnapshotStore_All(t *testing.T) {
	store := newMemoryStore(t)

	herx := drainageEntry("alex", 0, 6)
	herx.Domain = schema.HerxDomain
	herx.Result = schema.ScoreResult{Domain: schema.HerxDomain, Score: 6, Level: string(schema.RiskHigh)}

	require.NoError(t, store.Put(drainageEntry("sam", 1, 90)))
	require.NoError(t, store.Put(herx))
	require.NoError(t, store.Put(drainageEntry("alex", 1, 75)))

	all, err := store.All()
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "alex", all[0].UserID)
	assert.Equal(t, schema.DrainageDomain, all[0].Domain)
	assert.Equal(t, schema.HerxDomain, all[1].Domain)
	assert.Equal(t, "sam", all[2].UserID)
}

func TestSnapshotStore_GetStatus(t *testing.T) {
	store := newMemoryStore(t)

	status, err := store.GetStatus()
	require.NoError(t, err)
	assert.True(t, status.Connected)
	assert.Equal(t, 0, status.TotalEntries)

	require.NoError(t, store.Put(drainageEntry("alex", 0, 70)))
	require.NoError(t, store.Put(drainageEntry("alex", 3, 72)))
	require.NoError(t, store.Put(drainageEntry("sam", 1, 50)))

	status, err = store.GetStatus()
	require.NoError(t, err)
	assert.Equal(t, "sqlite", status.Backend)
	assert.Equal(t, 3, status.TotalEntries)
	assert.Equal(t, 2, status.Users)
	assert.Equal(t, map[schema.Domain]int{schema.DrainageDomain: 3}, status.EntriesByDomain)
	assert.Equal(t, day0.AddDate(0, 0, 3).Add(8*time.Hour).Unix(), status.LastEntryTime.Unix())
	assert.Equal(t, day0.Add(8*time.Hour).Unix(), status.OldestEntryTime.Unix())
	assert.Positive(t, status.TableSizeBytes)
}

func TestValidateTableName(t *testing.T) {
	tests := []struct {
		name    string
		wantErr bool
	}{
		{"readiness_snapshots", false},
		{"_private", false},
		{"Table2", false},
		{"", true},
		{"2table", true},
		{"snap-shots", true},
		{"x; DROP TABLE y", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateTableName(tt.name)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestQuoteTableName(t *testing.T) {
	assert.Equal(t, "`snaps`", quoteTableName("snaps", schema.MySQLBackend))
	assert.Equal(t, `"snaps"`, quoteTableName("snaps", schema.PostgreSQLBackend))
	assert.Equal(t, `"snaps"`, quoteTableName("snaps", schema.SQLiteBackend))
}

func TestUpsertQueryPerBackend(t *testing.T) {
	mysqlStore := &SnapshotStoreImpl{tableName: snapshotsTable, backend: schema.MySQLBackend}
	assert.Contains(t, mysqlStore.getUpsertQuery(), "ON DUPLICATE KEY UPDATE")

	pgStore := &SnapshotStoreImpl{tableName: snapshotsTable, backend: schema.PostgreSQLBackend}
	assert.Contains(t, pgStore.getUpsertQuery(), "ON CONFLICT (user_id, domain, entry_date)")
	assert.Equal(t, []any{"$1", "$2"}, pgStore.placeholders(2))

	sqliteStore := &SnapshotStoreImpl{tableName: snapshotsTable, backend: schema.SQLiteBackend}
	assert.Contains(t, sqliteStore.getUpsertQuery(), "INSERT OR REPLACE")
	assert.Equal(t, []any{"?", "?"}, sqliteStore.placeholders(2))
}
