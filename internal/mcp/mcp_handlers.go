package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/restorepath/readiness/core"
	"github.com/restorepath/readiness/core/algo"
	"github.com/restorepath/readiness/internal/contract"
	"github.com/restorepath/readiness/internal/intake"
	"github.com/restorepath/readiness/internal/outwriter"
	"github.com/restorepath/readiness/schema"
)

// toolHandler holds common dependencies for MCP tool handlers.
type toolHandler struct {
	baseCfg *contract.Config
	mgr     contract.HistoryManager
}

// checkInConfig applies the user, date and record arguments shared by the scoring tools.
func (h *toolHandler) checkInConfig(ctx context.Context, request mcp.CallToolRequest) (context.Context, *contract.Config, error) {
	cfg := h.baseCfg.Clone()
	if u := request.GetString("user_id", ""); u != "" {
		cfg.UserID = u
	}
	if d := request.GetString("date", ""); d != "" {
		date, err := contract.ParseEntryDate(d, time.Now())
		if err != nil {
			return ctx, nil, fmt.Errorf("invalid date: %w", err)
		}
		cfg.Date = date
	}
	if !request.GetBool("record", false) {
		ctx = core.WithoutRecording(ctx)
	}
	return ctx, cfg, nil
}

func (h *toolHandler) handleScoreDrainage(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	ctx, cfg, err := h.checkInConfig(ctx, request)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	raw, ok := request.GetArguments()["metrics"].(map[string]any)
	if !ok {
		return mcp.NewToolResultError("metrics must be an object of metric values"), nil
	}
	snapshot, err := intake.SnapshotFromMap(raw)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid metrics: %v", err)), nil
	}

	report, err := core.GetDrainageReport(ctx, cfg, h.mgr, snapshot)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("scoring failed: %v", err)), nil
	}
	return jsonResult(report)
}

func (h *toolHandler) handleScoreExposure(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	ctx, cfg, err := h.checkInConfig(ctx, request)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	rooms, err := intake.RoomsFromValue(request.GetArguments()["rooms"])
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result, err := core.GetExposureResult(ctx, cfg, h.mgr, rooms)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("scoring failed: %v", err)), nil
	}
	return jsonResult(result)
}

func (h *toolHandler) handleAssessHerx(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	ctx, cfg, err := h.checkInConfig(ctx, request)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	raw, ok := request.GetArguments()["check_in"].(map[string]any)
	if !ok {
		return mcp.NewToolResultError("check_in must be an object of symptom groups"), nil
	}
	input, err := intake.HerxFromMap(raw)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	report, err := core.GetHerxReport(ctx, cfg, h.mgr, input)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("assessment failed: %v", err)), nil
	}
	return jsonResult(report)
}

func (h *toolHandler) handleEvaluateGate(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := h.baseCfg.Clone()
	if u := request.GetString("user_id", ""); u != "" {
		cfg.UserID = u
	}
	if d := request.GetInt("required_days", 0); d != 0 {
		cfg.Gate.RequiredDays = d
	}
	if s := request.GetFloat("required_score", -1); s >= 0 {
		cfg.Gate.RequiredScore = s
	}
	if cfg.Gate.RequiredDays < 1 || cfg.Gate.RequiredScore > 100 {
		return mcp.NewToolResultError(fmt.Sprintf("invalid gate parameters: %d day(s) at %.1f", cfg.Gate.RequiredDays, cfg.Gate.RequiredScore)), nil
	}

	scores, given, err := scoresArg(request)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if given {
		return jsonResult(schema.GateReport{
			UserID: cfg.UserID,
			Params: cfg.Gate,
			Status: algo.EvaluateGate(scores, cfg.Gate),
			Days:   len(scores),
		})
	}

	report, err := core.GetGateReport(ctx, cfg, h.mgr)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("gate evaluation failed: %v", err)), nil
	}
	return jsonResult(report)
}

func (h *toolHandler) handleAnalyzeSeries(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := h.baseCfg.Clone()
	if u := request.GetString("user_id", ""); u != "" {
		cfg.UserID = u
	}
	if d := request.GetString("domain", ""); d != "" {
		cfg.Domain = schema.Domain(d)
		if !schema.ValidDomains[cfg.Domain] {
			return mcp.NewToolResultError(fmt.Sprintf("invalid domain '%s'", d)), nil
		}
	}
	if w := request.GetInt("window", 0); w != 0 {
		cfg.Series.Window = w
	}
	if th := request.GetFloat("threshold", -1); th >= 0 {
		cfg.Series.Threshold = th
	}
	if cfg.Series.Window < 1 {
		return mcp.NewToolResultError("window must be at least 1"), nil
	}

	scores, given, err := scoresArg(request)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if given {
		return jsonResult(algo.AnalyzeSeries(scores, cfg.Series))
	}

	result, err := core.GetSeriesResult(ctx, cfg, h.mgr)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("series analysis failed: %v", err)), nil
	}
	return jsonResult(result)
}

func (h *toolHandler) handleGetRubric(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	rubrics := h.baseCfg.Rubrics
	if rubrics == nil {
		rubrics = schema.DefaultRubrics()
	}
	return jsonResult(outwriter.BuildRubricRenderModel(rubrics, h.baseCfg.Gate))
}

// scoresArg reads the optional scores array. given is false when it is absent.
func scoresArg(request mcp.CallToolRequest) (scores []float64, given bool, err error) {
	raw, ok := request.GetArguments()["scores"]
	if !ok || raw == nil {
		return nil, false, nil
	}
	items, ok := raw.([]any)
	if !ok {
		return nil, false, fmt.Errorf("scores must be an array of numbers")
	}
	scores = make([]float64, 0, len(items))
	for i, item := range items {
		v, ok := item.(float64)
		if !ok {
			return nil, false, fmt.Errorf("scores[%d] is not a number", i)
		}
		scores = append(scores, v)
	}
	return scores, true, nil
}

func jsonResult(v any) (*mcp.CallToolResult, error) {
	jsonData, _ := json.MarshalIndent(v, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}
