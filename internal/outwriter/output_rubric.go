package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/restorepath/readiness/internal/contract"
	"github.com/restorepath/readiness/schema"
)

// PrintRubricDefinitions displays the weights and thresholds of every domain.
// This is a static display that does not read history.
func PrintRubricDefinitions(rubrics *schema.Rubrics, cfg *contract.Config) error {
	renderModel := BuildRubricRenderModel(rubrics, cfg.Gate)

	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, renderModel)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeCSVRubric(w, renderModel)
		}, "Wrote CSV")
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeRubricText(w, renderModel)
		}, "Wrote text")
	}
}

// getDisplayNameForDomain returns the display name with emoji for a domain.
func getDisplayNameForDomain(domain schema.Domain) string {
	switch domain {
	case schema.DrainageDomain:
		return "💧 DRAINAGE"
	case schema.ExposureDomain:
		return "🏠 EXPOSURE"
	case schema.HerxDomain:
		return "🌡️  HERX"
	default:
		return strings.ToUpper(string(domain))
	}
}

// writeRubricText displays the rubrics in human-readable text format.
func writeRubricText(w io.Writer, renderModel *schema.RubricRenderModel) error {
	if err := writeLines(w, renderModel.Title, strings.Repeat("=", len(renderModel.Title)), ""); err != nil {
		return err
	}

	for _, section := range renderModel.Sections {
		lines := []string{fmt.Sprintf("%s: %s", getDisplayNameForDomain(section.Domain), section.Purpose)}
		for _, f := range section.Factors {
			line := fmt.Sprintf("   %-18s %5.2f", f.Label, f.Weight)
			switch {
			case f.Critical:
				line += "  critical"
			case f.Class != "":
				line += "  " + f.Class
			}
			lines = append(lines, line)
		}
		lines = append(lines, "   Formula: "+section.Formula)
		for _, key := range sortedKeys(section.Thresholds) {
			lines = append(lines, fmt.Sprintf("   %s: %g", key, section.Thresholds[key]))
		}
		lines = append(lines, "")
		if err := writeLines(w, lines...); err != nil {
			return err
		}
	}

	return writeLines(w,
		"🔓 Binder Gate",
		fmt.Sprintf("   %d consecutive drainage days scoring at least %g", renderModel.Gate.RequiredDays, renderModel.Gate.RequiredScore),
	)
}

// writeCSVRubric writes one row per rubric factor.
func writeCSVRubric(w io.Writer, renderModel *schema.RubricRenderModel) error {
	header := []string{"domain", "key", "label", "weight", "critical", "class"}
	return writeCSVWithHeader(w, header, func(cw *csv.Writer) error {
		for _, section := range renderModel.Sections {
			for _, f := range section.Factors {
				rec := []string{
					string(section.Domain),
					f.Key,
					f.Label,
					fmt.Sprintf("%.2f", f.Weight),
					yesNo(f.Critical),
					f.Class,
				}
				if err := cw.Write(rec); err != nil {
					return fmt.Errorf("failed to write CSV record: %w", err)
				}
			}
		}
		return nil
	})
}

// BuildRubricRenderModel constructs the complete render model from the active rubrics.
func BuildRubricRenderModel(rubrics *schema.Rubrics, gate schema.GateParams) *schema.RubricRenderModel {
	drainage := schema.RubricSection{
		Domain:  schema.DrainageDomain,
		Purpose: "Readiness to start binders from ten daily drainage metrics (1-10)",
		Formula: "Score = round(100 * sum(value/10 * weight))",
		Thresholds: map[string]float64{
			"ready":         80,
			"almost-ready":  60,
			"improving":     40,
			"critical cap":  float64(rubrics.Drainage.CriticalCap),
			"critical min":  schema.DrainageCriticalMinimum,
			"weight sum":    rubrics.Drainage.WeightSum(),
			"metric values": schema.MetricMax,
		},
	}
	for _, e := range rubrics.Drainage.Entries {
		drainage.Factors = append(drainage.Factors, schema.RubricFactor{
			Key: string(e.Key), Label: e.Label, Weight: e.Weight, Critical: e.Critical,
		})
	}

	ex := rubrics.Exposure
	exposure := schema.RubricSection{
		Domain:  schema.ExposureDomain,
		Purpose: "Mold exposure risk from room-by-room inspection",
		Formula: fmt.Sprintf("Score = min(%g, sum(issue weight * severity * room weight * multi-issue factor) / %g)",
			ex.MaxScore, ex.Normalizer),
		Thresholds: map[string]float64{
			"multi-issue factor": ex.MultiIssueFactor,
			"heavy-issue factor": ex.HeavyIssueFactor,
			"hvac room weight":   ex.HVACRoomWeight,
		},
	}
	for _, issue := range ex.Issues {
		exposure.Factors = append(exposure.Factors, schema.RubricFactor{
			Key: string(issue.Key), Label: issue.Label, Weight: issue.Weight, Class: string(issue.Class),
		})
	}

	hx := rubrics.Herx
	herx := schema.RubricSection{
		Domain:  schema.HerxDomain,
		Purpose: "Detox reaction severity from physical, cognitive and emotional symptoms",
		Factors: []schema.RubricFactor{
			{Key: "physical", Label: "Physical", Weight: hx.PhysicalWeight},
			{Key: "cognitive", Label: "Cognitive", Weight: hx.CognitiveWeight},
			{Key: "emotional", Label: "Emotional", Weight: hx.EmotionalWeight},
		},
		Formula: "Overall = round(weighted mean of rounded group means)",
		Thresholds: map[string]float64{
			"emergency": float64(hx.EmergencySeverity),
			"fever":     float64(hx.EmergencyFever),
			"high":      float64(hx.HighSeverity),
			"moderate":  float64(hx.ModerateSeverity),
		},
	}

	return &schema.RubricRenderModel{
		Title:    "Readiness Scoring Rubrics",
		Sections: []schema.RubricSection{drainage, exposure, herx},
		Gate:     gate,
	}
}
