package history

import (
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/restorepath/readiness/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resetGlobals() {
	initOnce = sync.Once{}
	closeOnce = sync.Once{}
	Manager = &StoreManager{}
}

func TestInitStores(t *testing.T) {
	t.Run("sqlite file", func(t *testing.T) {
		resetGlobals()
		dbPath := filepath.Join(t.TempDir(), "history.db")

		require.NoError(t, InitStores(schema.SQLiteBackend, dbPath))
		require.NotNil(t, Manager.GetSnapshotStore())
		require.NoError(t, Manager.GetSnapshotStore().Put(drainageEntry("alex", 0, 80)))
		CloseStores()

		_, err := os.Stat(dbPath)
		assert.NoError(t, err)
	})

	t.Run("idempotent setup", func(t *testing.T) {
		resetGlobals()
		dbPath := filepath.Join(t.TempDir(), "history.db")

		assert.NoError(t, InitStores(schema.SQLiteBackend, dbPath))
		first := Manager.GetSnapshotStore()
		assert.NoError(t, InitStores(schema.SQLiteBackend, dbPath))
		assert.Same(t, first, Manager.GetSnapshotStore())

		CloseStores()
		CloseStores()
	})

	t.Run("none backend", func(t *testing.T) {
		resetGlobals()
		require.NoError(t, InitStores(schema.NoneBackend, ""))
		status, err := Manager.GetSnapshotStore().GetStatus()
		require.NoError(t, err)
		assert.False(t, status.Connected)
		CloseStores()
	})

	t.Run("empty backend leaves store unset", func(t *testing.T) {
		resetGlobals()
		require.NoError(t, InitStores("", ""))
		assert.Nil(t, Manager.GetSnapshotStore())
		CloseStores()
	})

	t.Run("unsupported backend", func(t *testing.T) {
		resetGlobals()
		assert.Error(t, InitStores("redis", ""))
	})
}

func TestClearHistory(t *testing.T) {
	t.Run("sqlite removes file", func(t *testing.T) {
		dbPath := filepath.Join(t.TempDir(), "history.db")
		store, err := NewSnapshotStore(snapshotsTable, schema.SQLiteBackend, dbPath)
		require.NoError(t, err)
		require.NoError(t, store.Close())

		require.NoError(t, ClearHistory(schema.SQLiteBackend, dbPath, ""))
		_, err = os.Stat(dbPath)
		assert.True(t, os.IsNotExist(err))
	})

	t.Run("sqlite missing file is fine", func(t *testing.T) {
		assert.NoError(t, ClearHistory(schema.SQLiteBackend, filepath.Join(t.TempDir(), "nope.db"), ""))
	})

	t.Run("sqlite requires path", func(t *testing.T) {
		assert.Error(t, ClearHistory(schema.SQLiteBackend, "", ""))
	})

	t.Run("none backend", func(t *testing.T) {
		assert.NoError(t, ClearHistory(schema.NoneBackend, "", ""))
	})

	t.Run("unsupported backend", func(t *testing.T) {
		assert.Error(t, ClearHistory("redis", "", ""))
	})
}
