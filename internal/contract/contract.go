// Package contract provides interfaces and shared utilities for the readiness CLI's internal architecture.
package contract

import "github.com/restorepath/readiness/schema"

// HistoryManager defines the interface for managing history stores.
// This allows the history layer to be mocked for testing.
type HistoryManager interface {
	GetSnapshotStore() SnapshotStore
}

// SnapshotStore persists scored snapshots keyed by (user, domain, date).
type SnapshotStore interface {
	// Put upserts the entry for its (user, domain, date) key.
	Put(entry schema.HistoryEntry) error

	// List returns the entries of a user and domain, oldest first.
	List(userID string, domain schema.Domain) ([]schema.HistoryEntry, error)

	// All returns every stored entry ordered by user, domain and date.
	All() ([]schema.HistoryEntry, error)

	// GetStatus returns status information about the store.
	GetStatus() (schema.HistoryStatus, error)

	// Close closes the underlying connection.
	Close() error
}
