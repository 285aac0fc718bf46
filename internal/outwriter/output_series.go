package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
	"github.com/restorepath/readiness/internal/contract"
	"github.com/restorepath/readiness/schema"
)

// PrintSeriesResults outputs a series report, dispatching based on the output format configured.
func PrintSeriesResults(result schema.SeriesResult, cfg *contract.Config) error {
	fmtFloat, _ := createFormatters(cfg.Precision)

	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, result)
		}, "Wrote JSON series results")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeCSVSeries(w, result, fmtFloat)
		}, "Wrote CSV series results")
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeSeriesTable(w, result, fmtFloat)
		}, "Wrote series table")
	}
}

// writeSeriesTable prints the dated scores followed by the series statistics.
func writeSeriesTable(w io.Writer, result schema.SeriesResult, fmtFloat func(float64) string) error {
	if _, err := fmt.Fprintf(w, "%s history for %s (window %d, threshold %s)\n",
		result.Domain, result.UserID, result.Params.Window, fmtFloat(result.Params.Threshold)); err != nil {
		return err
	}
	if len(result.Points) == 0 {
		return writeLines(w, "No stored entries yet.")
	}

	table := tablewriter.NewWriter(w)
	table.Header([]string{"Date", "Score", "Rolling Avg"})
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignRight
	})
	var data [][]string
	for _, p := range result.Points {
		data = append(data, []string{p.Date.Format(schema.DateLayout), fmtFloat(p.Score), fmtFloat(p.RollingAverage)})
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	r := result.Report
	return writeLines(w,
		fmt.Sprintf("Entries: %d, latest %s, rolling average %s", r.Count, fmtFloat(r.Latest), fmtFloat(r.RollingAverage)),
		fmt.Sprintf("Trend: %s", r.Trend),
		fmt.Sprintf("Variability: %s (std dev %s)", r.Variability, fmtFloat(r.StdDev)),
		fmt.Sprintf("Consistency: %s%% of entries at or above threshold", fmtFloat(r.Consistency)),
		fmt.Sprintf("Streaks: current %d, longest %d", r.CurrentStreak, r.LongestStreak),
	)
}

// writeCSVSeries writes one row per dated score.
func writeCSVSeries(w io.Writer, result schema.SeriesResult, fmtFloat func(float64) string) error {
	header := []string{"user", "domain", "date", "score", "rolling_average"}
	return writeCSVWithHeader(w, header, func(cw *csv.Writer) error {
		for _, p := range result.Points {
			rec := []string{
				result.UserID,
				string(result.Domain),
				p.Date.Format(schema.DateLayout),
				fmtFloat(p.Score),
				fmtFloat(p.RollingAverage),
			}
			if err := cw.Write(rec); err != nil {
				return err
			}
		}
		return nil
	})
}

// PrintGateResults outputs a binder gate evaluation, dispatching based on the output format configured.
func PrintGateResults(report schema.GateReport, cfg *contract.Config) error {
	fmtFloat, _ := createFormatters(cfg.Precision)

	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, report)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			header := []string{"user", "required_days", "required_score", "days", "consecutive", "remaining", "satisfied", "message"}
			return writeCSVWithHeader(w, header, func(cw *csv.Writer) error {
				return cw.Write([]string{
					report.UserID,
					strconv.Itoa(report.Params.RequiredDays),
					fmtFloat(report.Params.RequiredScore),
					strconv.Itoa(report.Days),
					strconv.Itoa(report.Status.ConsecutiveQualifyingDays),
					strconv.Itoa(report.Status.DaysRemaining),
					yesNo(report.Status.Satisfied),
					report.Status.Message,
				})
			})
		}, "Wrote CSV")
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeGateText(w, report, cfg, fmtFloat)
		}, "Wrote text")
	}
}

// writeGateText prints the gate outcome as a short summary.
func writeGateText(w io.Writer, report schema.GateReport, cfg *contract.Config, fmtFloat func(float64) string) error {
	state := "LOCKED"
	if report.Status.Satisfied {
		state = "UNLOCKED"
	}
	if cfg.UseColors {
		if report.Status.Satisfied {
			state = contract.ReadyColor.Sprint(state)
		} else {
			state = contract.ModerateColor.Sprint(state)
		}
	}
	return writeLines(w,
		fmt.Sprintf("Binder gate for %s: %s", report.UserID, state),
		fmt.Sprintf("Requirement: %d consecutive days at or above %s", report.Params.RequiredDays, fmtFloat(report.Params.RequiredScore)),
		fmt.Sprintf("Drainage entries considered: %d", report.Days),
		fmt.Sprintf("Qualifying streak: %d, days remaining: %d", report.Status.ConsecutiveQualifyingDays, report.Status.DaysRemaining),
		report.Status.Message,
	)
}
