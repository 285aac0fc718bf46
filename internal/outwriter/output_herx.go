package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
	"github.com/restorepath/readiness/internal/contract"
	"github.com/restorepath/readiness/schema"
)

// PrintHerxResults outputs a herx check-in, dispatching based on the output format configured.
func PrintHerxResults(report schema.HerxReport, cfg *contract.Config) error {
	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			type JSONHerxReport struct {
				UserID string `json:"user_id"`
				Date   string `json:"date"`
				Label  string `json:"label"`
				schema.HerxReport
			}
			return writeJSON(w, JSONHerxReport{
				UserID:     cfg.UserID,
				Date:       cfg.Date.Format(schema.DateLayout),
				Label:      contract.GetPlainLabel(string(report.Assessment.RiskLevel)),
				HerxReport: report,
			})
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeCSVHerx(w, report)
		}, "Wrote CSV")
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeHerxTable(w, report, cfg)
		}, "Wrote table")
	}
}

// writeHerxTable writes the severity table followed by guidance sections.
func writeHerxTable(w io.Writer, report schema.HerxReport, cfg *contract.Config) error {
	a := report.Assessment
	if _, err := fmt.Fprintf(w, "Herx check-in for %s on %s\n", cfg.UserID, cfg.Date.Format(schema.DateLayout)); err != nil {
		return err
	}

	table := tablewriter.NewWriter(w)
	table.Header([]string{"Group", "Severity"})
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignRight
	})
	data := [][]string{
		{"Physical", strconv.Itoa(a.Physical)},
		{"Cognitive", strconv.Itoa(a.Cognitive)},
		{"Emotional", strconv.Itoa(a.Emotional)},
		{"Overall", strconv.Itoa(a.Overall)},
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	lines := []string{fmt.Sprintf("Risk level: %s", levelLabel(string(a.RiskLevel), cfg))}
	if len(a.EmergencyTriggers) > 0 {
		lines = append(lines, "Emergency symptoms: "+strings.Join(a.EmergencyTriggers, ", "))
	}
	lines = append(lines, "", "Recommendations:")
	textWidth := getMaxTextWidth(cfg, 4)
	for _, r := range report.Recommendations {
		lines = append(lines, "  - "+truncateText(r, textWidth))
	}
	lines = append(lines,
		"",
		fmt.Sprintf("Binder dose: %s (%s)", report.Dosage.NewDose, report.Dosage.Timeline),
		fmt.Sprintf("Expected course: peak %s, total %s", report.Duration.Peak, report.Duration.Total),
	)
	for _, m := range report.Duration.Milestones {
		lines = append(lines, fmt.Sprintf("  day %d: %s", m.Day, m.Description))
	}
	lines = append(lines, fmt.Sprintf("Trend: %s (magnitude %.2f, %s confidence)",
		report.Trend.Direction, report.Trend.Magnitude, report.Trend.Confidence))
	return writeLines(w, lines...)
}

// writeCSVHerx writes the report as section/key/value rows.
func writeCSVHerx(w io.Writer, report schema.HerxReport) error {
	a := report.Assessment
	rows := [][]string{
		{"severity", "physical", strconv.Itoa(a.Physical)},
		{"severity", "cognitive", strconv.Itoa(a.Cognitive)},
		{"severity", "emotional", strconv.Itoa(a.Emotional)},
		{"severity", "overall", strconv.Itoa(a.Overall)},
		{"severity", "risk_level", string(a.RiskLevel)},
	}
	for _, t := range a.EmergencyTriggers {
		rows = append(rows, []string{"emergency", "trigger", t})
	}
	for i, r := range report.Recommendations {
		rows = append(rows, []string{"recommendation", strconv.Itoa(i + 1), r})
	}
	rows = append(rows,
		[]string{"dosage", "action", string(report.Dosage.Action)},
		[]string{"dosage", "new_dose", report.Dosage.NewDose},
		[]string{"dosage", "timeline", report.Dosage.Timeline},
		[]string{"duration", "peak", report.Duration.Peak},
		[]string{"duration", "total", report.Duration.Total},
	)
	for _, m := range report.Duration.Milestones {
		rows = append(rows, []string{"milestone", strconv.Itoa(m.Day), m.Description})
	}
	rows = append(rows,
		[]string{"trend", "direction", string(report.Trend.Direction)},
		[]string{"trend", "magnitude", fmt.Sprintf("%.2f", report.Trend.Magnitude)},
		[]string{"trend", "confidence", string(report.Trend.Confidence)},
	)

	return writeCSVWithHeader(w, []string{"section", "key", "value"}, func(cw *csv.Writer) error {
		return cw.WriteAll(rows)
	})
}
