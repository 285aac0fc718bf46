package core

import (
	"context"

	"github.com/restorepath/readiness/internal/contract"
	"github.com/restorepath/readiness/internal/outwriter"
	"github.com/restorepath/readiness/schema"
)

// ExecuteGate evaluates the binder-unlock gate from stored drainage history and prints it.
func ExecuteGate(ctx context.Context, cfg *contract.Config, mgr contract.HistoryManager) error {
	report, err := GetGateReport(ctx, cfg, mgr)
	if err != nil {
		return err
	}
	return outwriter.NewOutWriter().WriteGate(*report, cfg)
}

// GetGateReport evaluates the binder-unlock gate for the configured user.
func GetGateReport(_ context.Context, cfg *contract.Config, mgr contract.HistoryManager) (*schema.GateReport, error) {
	builder, err := NewGateReportBuilder(cfg, mgr).LoadHistory()
	if err != nil {
		return nil, err
	}
	return builder.Evaluate().BuildResult().GetResult(), nil
}
