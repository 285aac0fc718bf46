package core

import (
	"context"

	"github.com/restorepath/readiness/internal/contract"
	"github.com/restorepath/readiness/internal/outwriter"
)

// ExecuteRubric prints the active rubrics. It reads no history.
func ExecuteRubric(_ context.Context, cfg *contract.Config, _ contract.HistoryManager) error {
	return outwriter.NewOutWriter().WriteRubric(rubricsFor(cfg), cfg)
}
