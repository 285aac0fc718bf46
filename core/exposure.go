package core

import (
	"context"

	"github.com/restorepath/readiness/core/algo"
	"github.com/restorepath/readiness/internal/contract"
	"github.com/restorepath/readiness/internal/intake"
	"github.com/restorepath/readiness/internal/outwriter"
	"github.com/restorepath/readiness/schema"
)

// ExecuteExposure scores a room-by-room inspection, records it and prints the result.
func ExecuteExposure(ctx context.Context, cfg *contract.Config, mgr contract.HistoryManager) error {
	if cfg.InputFile == "" {
		return errNoInput(schema.ExposureDomain)
	}
	rooms, err := intake.LoadRooms(cfg.InputFile)
	if err != nil {
		return err
	}

	result, err := GetExposureResult(ctx, cfg, mgr, rooms)
	if err != nil {
		return err
	}
	return outwriter.NewOutWriter().WriteExposure(result, cfg)
}

// GetExposureResult scores the rooms and records the assessment.
func GetExposureResult(ctx context.Context, cfg *contract.Config, mgr contract.HistoryManager, rooms []schema.RoomRecord) (schema.ExposureResult, error) {
	result, err := algo.ScoreExposure(rooms, rubricsFor(cfg).Exposure)
	if err != nil {
		return schema.ExposureResult{}, err
	}

	entry, err := newEntry(cfg, schema.ExposureDomain, rooms, result.ScoreResult)
	if err != nil {
		return schema.ExposureResult{}, err
	}
	_ = recordAndLoad(ctx, mgr, entry)
	return result, nil
}
