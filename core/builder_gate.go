package core

import (
	"github.com/restorepath/readiness/core/algo"
	"github.com/restorepath/readiness/internal/contract"
	"github.com/restorepath/readiness/schema"
)

// GateReportBuilder builds the binder gate report using a builder pattern.
type GateReportBuilder struct {
	cfg     *contract.Config
	mgr     contract.HistoryManager
	history []schema.HistoryEntry
	status  schema.GateStatus
	result  *schema.GateReport
}

// NewGateReportBuilder creates a new builder for gate reports.
func NewGateReportBuilder(cfg *contract.Config, mgr contract.HistoryManager) *GateReportBuilder {
	return &GateReportBuilder{
		cfg: cfg,
		mgr: mgr,
	}
}

// LoadHistory reads the stored drainage history of the configured user.
func (b *GateReportBuilder) LoadHistory() (*GateReportBuilder, error) {
	history, err := loadHistory(b.mgr, b.cfg.UserID, schema.DrainageDomain)
	if err != nil {
		return nil, err
	}
	b.history = history
	return b, nil
}

// WithHistory uses the given chronological history instead of the store.
func (b *GateReportBuilder) WithHistory(history []schema.HistoryEntry) *GateReportBuilder {
	b.history = history
	return b
}

// Evaluate runs the gate over the loaded history.
func (b *GateReportBuilder) Evaluate() *GateReportBuilder {
	b.status = algo.EvaluateBinderGate(b.history, b.cfg.Gate)
	return b
}

// BuildResult assembles the final report.
func (b *GateReportBuilder) BuildResult() *GateReportBuilder {
	b.result = &schema.GateReport{
		UserID: b.cfg.UserID,
		Params: b.cfg.Gate,
		Status: b.status,
		Days:   len(b.history),
	}
	return b
}

// GetResult returns the built report, nil until BuildResult runs.
func (b *GateReportBuilder) GetResult() *schema.GateReport {
	return b.result
}
