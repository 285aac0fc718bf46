// Package history stores scored snapshots per user, domain and day.
package history

import (
	"fmt"
	"regexp"
	"sync"

	"github.com/restorepath/readiness/internal/contract"
	"github.com/restorepath/readiness/schema"
)

// StoreManager holds the snapshot store used by the commands.
type StoreManager struct {
	sync.RWMutex // Protects the store pointer during initialization
	snapshots    contract.SnapshotStore
}

var _ contract.HistoryManager = &StoreManager{} // Compile-time check

// NewStoreManager wraps an opened store.
func NewStoreManager(store contract.SnapshotStore) *StoreManager {
	return &StoreManager{snapshots: store}
}

// GetSnapshotStore returns the snapshot store.
func (mgr *StoreManager) GetSnapshotStore() contract.SnapshotStore {
	mgr.RLock()
	defer mgr.RUnlock()
	return mgr.snapshots
}

var tableNameRe = regexp.MustCompile(`^[a-zA-Z_][a-zA-Z0-9_]*$`)

// validateTableName ensures the name is a plain SQL identifier.
func validateTableName(name string) error {
	if name == "" {
		return fmt.Errorf("table name cannot be empty")
	}
	if !tableNameRe.MatchString(name) {
		return fmt.Errorf("invalid table name: %s (must match pattern ^[a-zA-Z_][a-zA-Z0-9_]*$)", name)
	}
	return nil
}

// quoteTableName returns the properly quoted table name for the given backend.
func quoteTableName(name string, backend schema.DatabaseBackend) string {
	if backend == schema.MySQLBackend {
		return fmt.Sprintf("`%s`", name)
	}
	return fmt.Sprintf("%q", name)
}
