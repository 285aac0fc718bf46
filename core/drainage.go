package core

import (
	"context"

	"github.com/restorepath/readiness/core/algo"
	"github.com/restorepath/readiness/internal/contract"
	"github.com/restorepath/readiness/internal/intake"
	"github.com/restorepath/readiness/internal/outwriter"
	"github.com/restorepath/readiness/schema"
)

// ExecuteDrainage scores today's drainage check-in, records it and prints the report.
func ExecuteDrainage(ctx context.Context, cfg *contract.Config, mgr contract.HistoryManager) error {
	rubric := rubricsFor(cfg).Drainage

	var snapshot schema.Snapshot
	var err error
	switch {
	case cfg.Interactive:
		snapshot, err = intake.PromptDrainage(ctx, rubric)
	case cfg.InputFile != "":
		snapshot, err = intake.LoadSnapshot(cfg.InputFile)
	default:
		err = errNoInput(schema.DrainageDomain)
	}
	if err != nil {
		return err
	}

	report, err := GetDrainageReport(ctx, cfg, mgr, snapshot)
	if err != nil {
		return err
	}
	return outwriter.NewOutWriter().WriteDrainage(report, rubric, cfg)
}

// GetDrainageReport scores a snapshot, analyzes its weakest areas and evaluates the
// binder gate over the stored drainage history including this snapshot.
func GetDrainageReport(ctx context.Context, cfg *contract.Config, mgr contract.HistoryManager, snapshot schema.Snapshot) (schema.DrainageReport, error) {
	rubric := rubricsFor(cfg).Drainage

	result, err := algo.ScoreDrainage(snapshot, rubric)
	if err != nil {
		return schema.DrainageReport{}, err
	}
	analysis, err := algo.AnalyzeDrainage(snapshot, rubric)
	if err != nil {
		return schema.DrainageReport{}, err
	}

	entry, err := newEntry(cfg, schema.DrainageDomain, snapshot, result.ScoreResult)
	if err != nil {
		return schema.DrainageReport{}, err
	}
	history := recordAndLoad(ctx, mgr, entry)

	return schema.DrainageReport{
		Snapshot: snapshot,
		Result:   result,
		Analysis: analysis,
		Gate:     algo.EvaluateBinderGate(history, cfg.Gate),
	}, nil
}
