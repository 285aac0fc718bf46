package core

import "context"

// Context keys for execution options
type contextKey string

const (
	skipRecordKey contextKey = "skipRecord"
)

// WithoutRecording marks the context so check-ins are scored but not stored.
func WithoutRecording(ctx context.Context) context.Context {
	return context.WithValue(ctx, skipRecordKey, true)
}

// shouldSkipRecord returns whether check-ins should stay out of history
func shouldSkipRecord(ctx context.Context) bool {
	val := ctx.Value(skipRecordKey)
	if val == nil {
		return false // default: record
	}
	skip, ok := val.(bool)
	return ok && skip
}
