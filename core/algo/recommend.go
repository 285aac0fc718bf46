package algo

import (
	"strings"

	"github.com/restorepath/readiness/schema"
)

var (
	emergencyRecommendations = []string{
		"Stop all binders and detox protocols immediately.",
		"Seek emergency medical care or call your local emergency number.",
		"Do not drive yourself; ask someone to stay with you.",
		"Contact your practitioner once you are safe.",
	}
	highRecommendations = []string{
		"Pause binders until symptoms drop below a moderate level.",
		"Increase water with electrolytes and rest as much as possible.",
		"Use gentle drainage support: Epsom salt baths, dry brushing, castor oil packs.",
		"Contact your practitioner within 24 hours.",
	}
	moderateRecommendations = []string{
		"Reduce binder dose and space it further from meals and supplements.",
		"Support elimination: keep bowels moving daily and stay hydrated.",
		"Add gentle movement such as walking or rebounding to move lymph.",
		"Prioritise sleep and cut back on strenuous activity.",
	}
	mildRecommendations = []string{
		"Continue the current protocol and keep tracking symptoms daily.",
		"Stay hydrated and keep bowel movements regular.",
		"Use a sauna or warm bath to support sweating if tolerated.",
	}
)

// symptomTips maps a lower-cased flagged symptom to an extra recommendation.
var symptomTips = map[string]string{
	"headache":     "For headaches: try magnesium, a cold compress, and extra water.",
	"nausea":       "For nausea: sip ginger or peppermint tea and eat small bland meals.",
	"brain fog":    "For brain fog: take short breaks outdoors and avoid multitasking.",
	"fatigue":      "For fatigue: schedule rest periods and keep activity light.",
	"insomnia":     "For insomnia: try magnesium glycinate and a strict screen-free hour before bed.",
	"anxiety":      "For anxiety: use slow breathing, grounding walks, and limit caffeine.",
	"joint pain":   "For joint pain: warm Epsom salt baths and gentle stretching.",
	"skin rash":    "For skin rashes: keep skin cool, avoid harsh products, and shower after sweating.",
	"body aches":   "For body aches: warm baths and gentle stretching help circulation.",
	"irritability": "For irritability: protect sleep and keep blood sugar stable with regular meals.",
}

// Recommendations selects the ordered recommendation list for a severity and
// risk level. Bands are checked from emergency down and the first match wins.
// Non-emergency bands get symptom tips appended for flagged symptoms.
func Recommendations(severity int, risk schema.RiskLevel, flagged []string) []string {
	var base []string
	switch {
	case risk == schema.RiskEmergency:
		return append([]string(nil), emergencyRecommendations...)
	case risk == schema.RiskHigh || severity >= 7:
		base = highRecommendations
	case risk == schema.RiskModerate || severity >= 4:
		base = moderateRecommendations
	default:
		base = mildRecommendations
	}

	out := append([]string(nil), base...)
	seen := make(map[string]bool)
	for _, s := range flagged {
		key := strings.ToLower(strings.TrimSpace(s))
		tip, ok := symptomTips[key]
		if !ok || seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, tip)
	}
	return out
}

// DosageAdjustment returns the binder dosage decision for a severity.
func DosageAdjustment(severity int) schema.DosageAdjustment {
	switch {
	case severity >= 7:
		return schema.DosageAdjustment{
			Action:   schema.DosageStop,
			NewDose:  "Stop all binders",
			Timeline: "Resume at 25% of the previous dose once severity stays below 4 for 3 days",
		}
	case severity >= 6:
		return schema.DosageAdjustment{
			Action:   schema.DosageReduce,
			NewDose:  "Reduce to 25% of current dose",
			Timeline: "Hold for 5-7 days, then increase slowly if symptoms improve",
		}
	case severity >= 4:
		return schema.DosageAdjustment{
			Action:   schema.DosageReduce,
			NewDose:  "Reduce to 50% of current dose",
			Timeline: "Hold for 3-5 days, then return to full dose if tolerated",
		}
	default:
		return schema.DosageAdjustment{
			Action:   schema.DosageContinue,
			NewDose:  "Continue current dose",
			Timeline: "Reassess daily",
		}
	}
}

// ExpectedDuration returns the expected peak and total duration of a reaction
// with day-by-day milestones.
func ExpectedDuration(severity int) schema.DurationEstimate {
	switch {
	case severity >= 8:
		return schema.DurationEstimate{
			Peak:  "3-5 days",
			Total: "2-3 weeks",
			Milestones: []schema.Milestone{
				{Day: 1, Description: "Symptoms intensify; rest and stop binders"},
				{Day: 3, Description: "Peak intensity expected"},
				{Day: 7, Description: "Gradual improvement should begin"},
				{Day: 14, Description: "Most symptoms resolving"},
				{Day: 21, Description: "Return to baseline expected"},
			},
		}
	case severity >= 6:
		return schema.DurationEstimate{
			Peak:  "2-3 days",
			Total: "1-2 weeks",
			Milestones: []schema.Milestone{
				{Day: 1, Description: "Symptoms noticeable; reduce dose"},
				{Day: 2, Description: "Peak intensity expected"},
				{Day: 5, Description: "Improvement should be noticeable"},
				{Day: 10, Description: "Return to baseline expected"},
			},
		}
	case severity >= 4:
		return schema.DurationEstimate{
			Peak:  "1-2 days",
			Total: "5-7 days",
			Milestones: []schema.Milestone{
				{Day: 1, Description: "Peak intensity expected"},
				{Day: 3, Description: "Symptoms easing"},
				{Day: 6, Description: "Return to baseline expected"},
			},
		}
	default:
		return schema.DurationEstimate{
			Peak:  "Within 24 hours",
			Total: "2-3 days",
			Milestones: []schema.Milestone{
				{Day: 1, Description: "Mild symptoms peak"},
				{Day: 3, Description: "Return to baseline expected"},
			},
		}
	}
}
