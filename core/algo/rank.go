package algo

import (
	"slices"

	"github.com/restorepath/readiness/schema"
)

const (
	weakBelow    = 7 // metrics under this are weaknesses
	strongFrom   = 8 // metrics at or over this are strengths
	rankingLimit = 3
)

// remediations holds the canned advice for each drainage metric.
var remediations = map[schema.MetricKey]string{
	schema.BowelMovements: "Aim for 1-3 daily movements: increase fiber, magnesium citrate at night, and warm water on waking.",
	schema.Hydration:      "Drink half your body weight (lbs) in ounces of filtered water daily, with electrolytes.",
	schema.UrineColor:     "Pale straw is the goal: spread water intake through the day and add a pinch of mineral salt.",
	schema.Energy:         "Support mitochondria with B vitamins and CoQ10, and schedule rest between demanding tasks.",
	schema.Sleep:          "Keep a fixed bedtime, darken the room, and stop screens an hour before sleep.",
	schema.SkinClarity:    "Dry brush before showering and use infrared sauna or Epsom salt baths to open skin pathways.",
	schema.LymphMovement:  "Move lymph daily with rebounding, walking, or manual lymphatic drainage massage.",
	schema.LiverSupport:   "Add castor oil packs, bitter greens, and milk thistle or TUDCA as tolerated.",
	schema.MentalClarity:  "Reduce inflammatory foods, keep blood sugar stable, and get morning daylight.",
	schema.Sweating:       "Induce a gentle sweat 3-4 times a week with sauna or exercise, then shower promptly.",
}

// assessments holds the overall assessment text per readiness band.
var assessments = map[schema.ReadinessLevel]string{
	schema.Ready:       "Drainage pathways are open. You are ready to begin binder protocols.",
	schema.AlmostReady: "Drainage is close to ready. Strengthen the weakest areas before starting binders.",
	schema.Improving:   "Drainage is improving but not yet sufficient. Focus on the foundational pathways.",
	schema.NotReady:    "Drainage pathways need significant support. Do not start binders yet.",
}

// Remediation returns the canned advice for a metric.
func Remediation(key schema.MetricKey) string {
	return remediations[key]
}

// AnalyzeDrainage ranks the snapshot's metrics to surface the weakest and
// strongest areas. Ties keep rubric order.
func AnalyzeDrainage(snapshot schema.Snapshot, rubric *schema.DrainageRubric) (schema.DrainageAnalysis, error) {
	result, err := ScoreDrainage(snapshot, rubric)
	if err != nil {
		return schema.DrainageAnalysis{}, err
	}

	var weakest, strongest []schema.MetricAnalysis
	for _, e := range rubric.Entries {
		m := schema.MetricAnalysis{
			Key:         e.Key,
			Label:       e.Label,
			Value:       snapshot[e.Key],
			Weight:      e.Weight,
			Remediation: remediations[e.Key],
		}
		if m.Value < weakBelow {
			weakest = append(weakest, m)
		}
		if m.Value >= strongFrom {
			strongest = append(strongest, m)
		}
	}

	slices.SortStableFunc(weakest, func(a, b schema.MetricAnalysis) int {
		return a.Value - b.Value
	})
	slices.SortStableFunc(strongest, func(a, b schema.MetricAnalysis) int {
		return b.Value - a.Value
	})

	return schema.DrainageAnalysis{
		Weakest:    topN(weakest, rankingLimit),
		Strongest:  topN(strongest, rankingLimit),
		Assessment: assessments[result.Readiness()],
	}, nil
}

// topN returns at most n items. A nil input yields an empty slice.
func topN(items []schema.MetricAnalysis, n int) []schema.MetricAnalysis {
	if len(items) > n {
		return items[:n]
	}
	if items == nil {
		return []schema.MetricAnalysis{}
	}
	return items
}
