package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
	"github.com/restorepath/readiness/internal/contract"
	"github.com/restorepath/readiness/schema"
)

// PrintDrainageResults outputs a drainage check-in, dispatching based on the output format configured.
func PrintDrainageResults(report schema.DrainageReport, rubric *schema.DrainageRubric, cfg *contract.Config) error {
	fmtFloat, _ := createFormatters(cfg.Precision)

	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSONDrainage(w, report, cfg)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeCSVDrainage(w, report, rubric, cfg, fmtFloat)
		}, "Wrote CSV")
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeDrainageTable(w, report, rubric, cfg, fmtFloat)
		}, "Wrote table")
	}
}

// writeDrainageTable writes the metric table followed by the score, weakness analysis and gate.
func writeDrainageTable(w io.Writer, report schema.DrainageReport, rubric *schema.DrainageRubric, cfg *contract.Config, fmtFloat func(float64) string) error {
	if _, err := fmt.Fprintf(w, "Drainage check-in for %s on %s\n", cfg.UserID, cfg.Date.Format(schema.DateLayout)); err != nil {
		return err
	}

	table := tablewriter.NewWriter(w)
	headers := []string{"Metric", "Value", "Weight", "Critical"}
	if cfg.Explain {
		headers = append(headers, "Points")
	}
	table.Header(headers)
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignRight
	})

	var data [][]string
	for _, e := range rubric.Entries {
		critical := ""
		if e.Critical {
			critical = fmt.Sprintf("min %d", e.MinValue)
			if report.Snapshot[e.Key] < e.MinValue {
				critical += " ▼"
			}
		}
		row := []string{
			e.Label,
			strconv.Itoa(report.Snapshot[e.Key]),
			fmt.Sprintf("%.2f", e.Weight),
			critical,
		}
		if cfg.Explain {
			row = append(row, fmtFloat(report.Result.Breakdown[e.Key]))
		}
		data = append(data, row)
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	res := report.Result
	scoreLine := fmt.Sprintf("Readiness score: %d (%s)", res.Score, levelLabel(res.Level, cfg))
	if res.TriggeredCriticalCap {
		scoreLine += fmt.Sprintf(" - capped at %d by a critical metric", rubric.CriticalCap)
	}
	binders := "Binders: not yet"
	if res.CanStartBinders {
		binders = "Binders: ready to start"
	}
	if err := writeLines(w, scoreLine, binders, ""); err != nil {
		return err
	}

	textWidth := getMaxTextWidth(cfg, 25)
	if len(report.Analysis.Weakest) > 0 {
		if err := writeLines(w, "Weakest areas:"); err != nil {
			return err
		}
		for _, m := range report.Analysis.Weakest {
			line := fmt.Sprintf("  - %s (%d): %s", m.Label, m.Value, truncateText(m.Remediation, textWidth))
			if err := writeLines(w, line); err != nil {
				return err
			}
		}
	}
	if len(report.Analysis.Strongest) > 0 {
		if err := writeLines(w, "Strongest areas:"); err != nil {
			return err
		}
		for _, m := range report.Analysis.Strongest {
			if err := writeLines(w, fmt.Sprintf("  + %s (%d)", m.Label, m.Value)); err != nil {
				return err
			}
		}
	}
	return writeLines(w,
		"Assessment: "+report.Analysis.Assessment,
		"Binder gate: "+report.Gate.Message,
	)
}

// writeCSVDrainage writes one row per metric with the snapshot score repeated.
func writeCSVDrainage(w io.Writer, report schema.DrainageReport, rubric *schema.DrainageRubric, cfg *contract.Config, fmtFloat func(float64) string) error {
	header := []string{
		"user", "date", "metric", "value", "weight", "points", "critical",
		"score", "level", "critical_cap", "can_start_binders",
	}
	return writeCSVWithHeader(w, header, func(cw *csv.Writer) error {
		for _, e := range rubric.Entries {
			rec := []string{
				cfg.UserID,
				cfg.Date.Format(schema.DateLayout),
				string(e.Key),
				strconv.Itoa(report.Snapshot[e.Key]),
				fmt.Sprintf("%.2f", e.Weight),
				fmtFloat(report.Result.Breakdown[e.Key]),
				yesNo(e.Critical),
				strconv.Itoa(report.Result.Score),
				contract.GetPlainLabel(report.Result.Level),
				yesNo(report.Result.TriggeredCriticalCap),
				yesNo(report.Result.CanStartBinders),
			}
			if err := cw.Write(rec); err != nil {
				return err
			}
		}
		return nil
	})
}

// writeJSONDrainage writes the report with the user, date and display label added.
func writeJSONDrainage(w io.Writer, report schema.DrainageReport, cfg *contract.Config) error {
	type JSONDrainageReport struct {
		UserID string    `json:"user_id"`
		Date   time.Time `json:"date"`
		Label  string    `json:"label"`
		schema.DrainageReport
	}
	return writeJSON(w, JSONDrainageReport{
		UserID:         cfg.UserID,
		Date:           cfg.Date,
		Label:          contract.GetPlainLabel(report.Result.Level),
		DrainageReport: report,
	})
}
