package core

import (
	"context"

	"github.com/restorepath/readiness/core/algo"
	"github.com/restorepath/readiness/internal/contract"
	"github.com/restorepath/readiness/internal/intake"
	"github.com/restorepath/readiness/internal/outwriter"
	"github.com/restorepath/readiness/schema"
)

// ExecuteHerx assesses a detox-reaction check-in, records it and prints the guidance.
func ExecuteHerx(ctx context.Context, cfg *contract.Config, mgr contract.HistoryManager) error {
	var input schema.HerxInput
	var err error
	switch {
	case cfg.Interactive:
		input, err = intake.PromptHerx(ctx)
	case cfg.InputFile != "":
		input, err = intake.LoadHerx(cfg.InputFile)
	default:
		err = errNoInput(schema.HerxDomain)
	}
	if err != nil {
		return err
	}

	report, err := GetHerxReport(ctx, cfg, mgr, input)
	if err != nil {
		return err
	}
	return outwriter.NewOutWriter().WriteHerx(report, cfg)
}

// GetHerxReport assesses a check-in and selects recommendations, dosage and expected
// duration. The trend covers the stored herx history including this check-in.
func GetHerxReport(ctx context.Context, cfg *contract.Config, mgr contract.HistoryManager, input schema.HerxInput) (schema.HerxReport, error) {
	assessment, err := algo.AssessHerx(input, rubricsFor(cfg).Herx)
	if err != nil {
		return schema.HerxReport{}, err
	}

	entry, err := newEntry(cfg, schema.HerxDomain, input, assessment.Result())
	if err != nil {
		return schema.HerxReport{}, err
	}
	history := recordAndLoad(ctx, mgr, entry)

	return schema.HerxReport{
		Assessment:      assessment,
		Recommendations: algo.Recommendations(assessment.Overall, assessment.RiskLevel, input.FlaggedSymptoms()),
		Dosage:          algo.DosageAdjustment(assessment.Overall),
		Duration:        algo.ExpectedDuration(assessment.Overall),
		Trend:           algo.HerxTrend(schema.Scores(history)),
	}, nil
}
