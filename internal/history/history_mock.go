package history

import (
	"github.com/restorepath/readiness/internal/contract"
	"github.com/restorepath/readiness/schema"
	"github.com/stretchr/testify/mock"
)

// MockHistoryManager is a mock implementation of HistoryManager for testing.
type MockHistoryManager struct {
	mock.Mock
}

var _ contract.HistoryManager = &MockHistoryManager{} // Compile-time check

// GetSnapshotStore implements the HistoryManager interface.
func (m *MockHistoryManager) GetSnapshotStore() contract.SnapshotStore {
	ret := m.Called()
	store, _ := ret.Get(0).(contract.SnapshotStore)
	return store
}

// MockSnapshotStore is a mock implementation of SnapshotStore for testing.
type MockSnapshotStore struct {
	mock.Mock
}

var _ contract.SnapshotStore = &MockSnapshotStore{} // Compile-time check

// Put implements the SnapshotStore interface.
func (m *MockSnapshotStore) Put(entry schema.HistoryEntry) error {
	args := m.Called(entry)
	return args.Error(0)
}

// List implements the SnapshotStore interface.
func (m *MockSnapshotStore) List(userID string, domain schema.Domain) ([]schema.HistoryEntry, error) {
	args := m.Called(userID, domain)
	entries, _ := args.Get(0).([]schema.HistoryEntry)
	return entries, args.Error(1)
}

// All implements the SnapshotStore interface.
func (m *MockSnapshotStore) All() ([]schema.HistoryEntry, error) {
	args := m.Called()
	entries, _ := args.Get(0).([]schema.HistoryEntry)
	return entries, args.Error(1)
}

// GetStatus implements the SnapshotStore interface.
func (m *MockSnapshotStore) GetStatus() (schema.HistoryStatus, error) {
	args := m.Called()
	return args.Get(0).(schema.HistoryStatus), args.Error(1)
}

// Close implements the SnapshotStore interface.
func (m *MockSnapshotStore) Close() error {
	args := m.Called()
	return args.Error(0)
}
