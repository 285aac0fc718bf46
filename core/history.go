package core

import (
	"context"
	"encoding/json"
	"fmt"
	"slices"
	"time"

	"github.com/restorepath/readiness/internal/contract"
	"github.com/restorepath/readiness/schema"
)

// snapshotStore returns the configured store, or nil when history is off.
func snapshotStore(mgr contract.HistoryManager) contract.SnapshotStore {
	if mgr == nil {
		return nil
	}
	return mgr.GetSnapshotStore()
}

// newEntry builds the history entry of a scored check-in.
func newEntry(cfg *contract.Config, domain schema.Domain, input any, result schema.ScoreResult) (schema.HistoryEntry, error) {
	data, err := json.Marshal(input)
	if err != nil {
		return schema.HistoryEntry{}, fmt.Errorf("failed to encode %s input: %w", domain, err)
	}
	return schema.HistoryEntry{
		UserID:     cfg.UserID,
		Domain:     domain,
		Date:       cfg.Date,
		Input:      data,
		Result:     result,
		RecordedAt: time.Now(),
	}, nil
}

// recordAndLoad stores the entry and returns the user's history for its domain
// with the entry in place. Store failures are logged and the in-memory history is used.
func recordAndLoad(ctx context.Context, mgr contract.HistoryManager, entry schema.HistoryEntry) []schema.HistoryEntry {
	store := snapshotStore(mgr)
	if store == nil {
		return []schema.HistoryEntry{entry}
	}

	if !shouldSkipRecord(ctx) {
		if err := store.Put(entry); err != nil {
			contract.LogWarn("Failed to record check-in", err)
		}
	}

	history, err := store.List(entry.UserID, entry.Domain)
	if err != nil {
		contract.LogWarn("Failed to load history", err)
		history = nil
	}
	return mergeEntry(history, entry)
}

// mergeEntry puts the entry into a chronological history, replacing any entry of the same day.
func mergeEntry(history []schema.HistoryEntry, entry schema.HistoryEntry) []schema.HistoryEntry {
	day := entry.Date.Format(schema.DateLayout)
	out := make([]schema.HistoryEntry, 0, len(history)+1)
	for _, e := range history {
		if e.Date.Format(schema.DateLayout) != day {
			out = append(out, e)
		}
	}
	out = append(out, entry)
	slices.SortStableFunc(out, func(a, b schema.HistoryEntry) int {
		return a.Date.Compare(b.Date)
	})
	return out
}

// loadHistory reads the stored history of a user and domain.
func loadHistory(mgr contract.HistoryManager, userID string, domain schema.Domain) ([]schema.HistoryEntry, error) {
	store := snapshotStore(mgr)
	if store == nil {
		return nil, fmt.Errorf("history store is not configured")
	}
	history, err := store.List(userID, domain)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s history for %s: %w", domain, userID, err)
	}
	return history, nil
}
