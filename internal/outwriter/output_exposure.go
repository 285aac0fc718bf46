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

// PrintExposureResults outputs an exposure assessment, dispatching based on the output format configured.
func PrintExposureResults(result schema.ExposureResult, cfg *contract.Config) error {
	fmtFloat, _ := createFormatters(cfg.Precision)

	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			type JSONExposureResult struct {
				UserID string `json:"user_id"`
				Date   string `json:"date"`
				Label  string `json:"label"`
				schema.ExposureResult
			}
			return writeJSON(w, JSONExposureResult{
				UserID:         cfg.UserID,
				Date:           cfg.Date.Format(schema.DateLayout),
				Label:          contract.GetPlainLabel(result.Level),
				ExposureResult: result,
			})
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeCSVExposure(w, result, cfg, fmtFloat)
		}, "Wrote CSV")
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeExposureTable(w, result, cfg, fmtFloat)
		}, "Wrote table")
	}
}

// writeExposureTable writes the per-room table and the risk summary.
func writeExposureTable(w io.Writer, result schema.ExposureResult, cfg *contract.Config, fmtFloat func(float64) string) error {
	if _, err := fmt.Fprintf(w, "Exposure assessment for %s on %s\n", cfg.UserID, cfg.Date.Format(schema.DateLayout)); err != nil {
		return err
	}

	table := tablewriter.NewWriter(w)
	table.Header([]string{"Room", "Issues", "Room Score"})
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignRight
	})

	var data [][]string
	for _, r := range result.Rooms {
		data = append(data, []string{r.Name, strconv.Itoa(r.IssueCount), fmtFloat(r.Score)})
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	lines := []string{
		fmt.Sprintf("Exposure score: %d (%s risk)", result.Score, levelLabel(result.Level, cfg)),
		fmt.Sprintf("Issues: %d critical, %d moderate, %d minor across %d affected rooms",
			result.CriticalIssues, result.ModerateIssues, result.MinorIssues, result.AffectedRooms),
	}
	if cfg.Explain {
		lines = append(lines, "Weighted total before normalisation: "+fmtFloat(result.RawScore))
	}
	if result.HVACEscalated {
		lines = append(lines, "Risk raised one level: the HVAC system spreads contamination to every room")
	}
	return writeLines(w, lines...)
}

// writeCSVExposure writes one row per room with the overall score repeated.
func writeCSVExposure(w io.Writer, result schema.ExposureResult, cfg *contract.Config, fmtFloat func(float64) string) error {
	header := []string{"user", "date", "room", "issue_count", "room_score", "score", "risk", "hvac_escalated"}
	return writeCSVWithHeader(w, header, func(cw *csv.Writer) error {
		for _, r := range result.Rooms {
			rec := []string{
				cfg.UserID,
				cfg.Date.Format(schema.DateLayout),
				r.Name,
				strconv.Itoa(r.IssueCount),
				fmtFloat(r.Score),
				strconv.Itoa(result.Score),
				contract.GetPlainLabel(result.Level),
				yesNo(result.HVACEscalated),
			}
			if err := cw.Write(rec); err != nil {
				return err
			}
		}
		return nil
	})
}
