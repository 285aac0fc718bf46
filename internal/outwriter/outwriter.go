// Package outwriter has output and writer logic.
package outwriter

import (
	"github.com/restorepath/readiness/internal/contract"
	"github.com/restorepath/readiness/schema"
)

// OutWriter provides a unified interface for all output operations.
// It encapsulates the various output formats and provides a clean API for the core logic.
type OutWriter struct{}

// NewOutWriter creates a new instance of the output writer.
func NewOutWriter() *OutWriter {
	return &OutWriter{}
}

// WriteDrainage prints a drainage check-in using the configured output format.
func (ow *OutWriter) WriteDrainage(report schema.DrainageReport, rubric *schema.DrainageRubric, cfg *contract.Config) error {
	return PrintDrainageResults(report, rubric, cfg)
}

// WriteExposure prints an exposure assessment using the configured output format.
func (ow *OutWriter) WriteExposure(result schema.ExposureResult, cfg *contract.Config) error {
	return PrintExposureResults(result, cfg)
}

// WriteHerx prints a herx check-in using the configured output format.
func (ow *OutWriter) WriteHerx(report schema.HerxReport, cfg *contract.Config) error {
	return PrintHerxResults(report, cfg)
}

// WriteGate prints a binder gate evaluation using the configured output format.
func (ow *OutWriter) WriteGate(report schema.GateReport, cfg *contract.Config) error {
	return PrintGateResults(report, cfg)
}

// WriteSeries prints a series report using the configured output format.
func (ow *OutWriter) WriteSeries(result schema.SeriesResult, cfg *contract.Config) error {
	return PrintSeriesResults(result, cfg)
}

// WriteRubric prints the active rubrics using the configured output format.
func (ow *OutWriter) WriteRubric(rubrics *schema.Rubrics, cfg *contract.Config) error {
	return PrintRubricDefinitions(rubrics, cfg)
}
