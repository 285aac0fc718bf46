package core

import (
	"context"

	"github.com/restorepath/readiness/core/algo"
	"github.com/restorepath/readiness/internal/contract"
	"github.com/restorepath/readiness/internal/outwriter"
	"github.com/restorepath/readiness/schema"
)

// ExecuteTrend prints the series report of the configured user and domain.
func ExecuteTrend(ctx context.Context, cfg *contract.Config, mgr contract.HistoryManager) error {
	result, err := GetSeriesResult(ctx, cfg, mgr)
	if err != nil {
		return err
	}
	return outwriter.NewOutWriter().WriteSeries(result, cfg)
}

// GetSeriesResult analyzes the stored history of the configured user and domain.
func GetSeriesResult(_ context.Context, cfg *contract.Config, mgr contract.HistoryManager) (schema.SeriesResult, error) {
	history, err := loadHistory(mgr, cfg.UserID, cfg.Domain)
	if err != nil {
		return schema.SeriesResult{}, err
	}
	return BuildSeriesResult(cfg.UserID, cfg.Domain, history, cfg.Series), nil
}

// BuildSeriesResult computes the dated points and statistics of a chronological history.
func BuildSeriesResult(userID string, domain schema.Domain, history []schema.HistoryEntry, params schema.SeriesParams) schema.SeriesResult {
	values := schema.Scores(history)
	report := algo.AnalyzeSeries(values, params)

	points := make([]schema.SeriesPoint, len(history))
	for i, e := range history {
		points[i] = schema.SeriesPoint{
			Date:           e.Date,
			Score:          values[i],
			RollingAverage: report.RollingAverages[i],
		}
	}

	return schema.SeriesResult{
		UserID: userID,
		Domain: domain,
		Params: params,
		Points: points,
		Report: report,
	}
}
