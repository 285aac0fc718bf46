// Package mcp provides the Model Context Protocol (MCP) server implementation.
package mcp

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/restorepath/readiness/internal/contract"
	"github.com/restorepath/readiness/schema"
)

var domainEnum = mcp.Enum(schema.DomainNames()...)

// NewMCPServer initializes and configures the readiness MCP server without starting it.
// This is exposed for unit testing.
func NewMCPServer(baseCfg *contract.Config, mgr contract.HistoryManager) *server.MCPServer {
	s := server.NewMCPServer(
		"Readiness Scoring Server",
		"1.0.0",
		server.WithLogging(),
	)

	h := &toolHandler{
		baseCfg: baseCfg,
		mgr:     mgr,
	}

	// --- 1. Tool: score_drainage ---
	s.AddTool(mcp.NewTool("score_drainage",
		mcp.WithDescription("Score a daily drainage check-in (ten metrics rated 1-10) and report binder readiness."),
		mcp.WithObject("metrics", mcp.Description("Metric values keyed by name, e.g. {\"sleep\": 7, \"hydration\": 8}."), mcp.Required()),
		mcp.WithString("user_id", mcp.Description("User whose history is used for the binder gate.")),
		mcp.WithString("date", mcp.Description("Entry date: YYYY-MM-DD, today, yesterday or 'N days ago'.")),
		mcp.WithBoolean("record", mcp.Description("Store the check-in in history. Defaults to false.")),
	), h.handleScoreDrainage)

	// --- 2. Tool: score_exposure ---
	s.AddTool(mcp.NewTool("score_exposure",
		mcp.WithDescription("Score household mold exposure risk from a room-by-room inspection."),
		mcp.WithArray("rooms",
			mcp.Description("Rooms as objects with name, severity (none, mild, moderate, severe) and a list of issue keys."),
			mcp.Items(map[string]any{"type": "object"}),
			mcp.Required()),
		mcp.WithString("user_id", mcp.Description("User the assessment belongs to.")),
		mcp.WithString("date", mcp.Description("Entry date.")),
		mcp.WithBoolean("record", mcp.Description("Store the assessment in history.")),
	), h.handleScoreExposure)

	// --- 3. Tool: assess_herx ---
	s.AddTool(mcp.NewTool("assess_herx",
		mcp.WithDescription("Assess a detox-reaction check-in and return risk, recommendations, dosage and expected duration."),
		mcp.WithObject("check_in", mcp.Description("Symptom groups physical, cognitive and emotional with values 1-10 and optional flagged symptoms."), mcp.Required()),
		mcp.WithString("user_id", mcp.Description("User whose history is used for the trend.")),
		mcp.WithString("date", mcp.Description("Entry date.")),
		mcp.WithBoolean("record", mcp.Description("Store the check-in in history.")),
	), h.handleAssessHerx)

	// --- 4. Tool: evaluate_gate ---
	s.AddTool(mcp.NewTool("evaluate_gate",
		mcp.WithDescription("Check whether the last N drainage scores all reach the threshold needed to start binders."),
		mcp.WithArray("scores", mcp.Description("Chronological scores. When omitted the stored history of user_id is used."), mcp.Items(map[string]any{"type": "number"})),
		mcp.WithString("user_id", mcp.Description("User whose stored drainage history is evaluated.")),
		mcp.WithNumber("required_days", mcp.Description("Consecutive days required.")),
		mcp.WithNumber("required_score", mcp.Description("Minimum score for a qualifying day.")),
	), h.handleEvaluateGate)

	// --- 5. Tool: analyze_series ---
	s.AddTool(mcp.NewTool("analyze_series",
		mcp.WithDescription("Compute rolling average, trend, variability, consistency and streaks over a score series."),
		mcp.WithArray("scores", mcp.Description("Chronological scores. When omitted the stored history is used."), mcp.Items(map[string]any{"type": "number"})),
		mcp.WithString("user_id", mcp.Description("User whose stored history is analyzed.")),
		mcp.WithString("domain", mcp.Description("Domain of the stored history."), domainEnum),
		mcp.WithNumber("window", mcp.Description("Rolling average window.")),
		mcp.WithNumber("threshold", mcp.Description("Score counted as a hit for consistency and streaks.")),
	), h.handleAnalyzeSeries)

	// --- 6. Tool: get_rubric ---
	s.AddTool(mcp.NewTool("get_rubric",
		mcp.WithDescription("Return the active scoring rubrics with their weights."),
	), h.handleGetRubric)

	return s
}

// StartMCPServer starts the readiness MCP server over stdio.
func StartMCPServer(_ context.Context, baseCfg *contract.Config, mgr contract.HistoryManager) error {
	s := NewMCPServer(baseCfg, mgr)
	return server.ServeStdio(s)
}
