package algo

import (
	"math"

	"github.com/restorepath/readiness/schema"
)

// Readiness band floors.
const (
	readyFloor       = 80
	almostReadyFloor = 60
	improvingFloor   = 40
)

// ScoreDrainage computes the drainage readiness score (0-100) of a snapshot.
// Every metric is normalised to [0,1], weighted and summed. Any critical metric
// below its minimum caps the score at the rubric's CriticalCap.
func ScoreDrainage(snapshot schema.Snapshot, rubric *schema.DrainageRubric) (schema.DrainageResult, error) {
	if err := ValidateSnapshot(snapshot, rubric); err != nil {
		return schema.DrainageResult{}, err
	}

	breakdown := make(map[schema.MetricKey]float64, len(rubric.Entries))
	var raw float64
	capped := false
	for _, e := range rubric.Entries {
		v := snapshot[e.Key]
		contrib := float64(v) / float64(schema.MetricMax) * e.Weight
		breakdown[e.Key] = contrib * 100
		raw += contrib
		if e.Critical && v < e.MinValue {
			capped = true
		}
	}

	score := int(math.Round(raw * 100))
	if capped && score > rubric.CriticalCap {
		score = rubric.CriticalCap
	}
	score = clampScore(score)

	level := ReadinessFor(score)
	return schema.DrainageResult{
		ScoreResult: schema.ScoreResult{
			Domain:               schema.DrainageDomain,
			Score:                score,
			Level:                string(level),
			TriggeredCriticalCap: capped,
		},
		CanStartBinders: level == schema.Ready,
		Breakdown:       breakdown,
	}, nil
}

// ReadinessFor maps a drainage score to its readiness band.
func ReadinessFor(score int) schema.ReadinessLevel {
	switch {
	case score >= readyFloor:
		return schema.Ready
	case score >= almostReadyFloor:
		return schema.AlmostReady
	case score >= improvingFloor:
		return schema.Improving
	default:
		return schema.NotReady
	}
}

func clampScore(score int) int {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}

// roundTo rounds v to the given number of decimal places.
func roundTo(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(v*p) / p
}
