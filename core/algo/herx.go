package algo

import (
	"math"

	"github.com/restorepath/readiness/schema"
)

const (
	trendWindowMax      = 3
	trendMinEntries     = 3
	herxTrendDelta      = 0.5
	highConfidenceFrom  = 10
	mediumConfidenceMin = 5
)

// AssessHerx scores a detox-reaction check-in. Group scores are rounded means,
// the overall score is their weighted sum. Emergency triggers override the band.
func AssessHerx(input schema.HerxInput, rubric *schema.HerxRubric) (schema.HerxAssessment, error) {
	physical, err := groupMean(input.PhysicalValues())
	if err != nil {
		return schema.HerxAssessment{}, err
	}
	cognitive, err := groupMean(input.CognitiveValues())
	if err != nil {
		return schema.HerxAssessment{}, err
	}
	emotional, err := groupMean(input.EmotionalValues())
	if err != nil {
		return schema.HerxAssessment{}, err
	}

	overall := int(math.Round(
		float64(physical)*rubric.PhysicalWeight +
			float64(cognitive)*rubric.CognitiveWeight +
			float64(emotional)*rubric.EmotionalWeight,
	))

	var triggers []string
	for _, s := range input.FlaggedSymptoms() {
		if rubric.IsEmergencySymptom(s) {
			triggers = append(triggers, s)
		}
	}

	var risk schema.RiskLevel
	switch {
	case overall >= rubric.EmergencySeverity || input.Physical.Fever >= rubric.EmergencyFever || len(triggers) > 0:
		risk = schema.RiskEmergency
	case overall >= rubric.HighSeverity:
		risk = schema.RiskHigh
	case overall >= rubric.ModerateSeverity:
		risk = schema.RiskModerate
	default:
		risk = schema.RiskLow
	}

	return schema.HerxAssessment{
		Physical:          physical,
		Cognitive:         cognitive,
		Emotional:         emotional,
		Overall:           overall,
		RiskLevel:         risk,
		EmergencyTriggers: triggers,
	}, nil
}

// groupMean validates a symptom group and returns its rounded mean.
// A zero value means the sub-metric was never filled in.
func groupMean(values []schema.SymptomValue) (int, error) {
	sum := 0
	for _, v := range values {
		if v.Value == 0 {
			return 0, &MissingMetricError{Domain: schema.HerxDomain, Key: v.Key}
		}
		if err := checkRange(schema.HerxDomain, v.Key, v.Value); err != nil {
			return 0, err
		}
		sum += v.Value
	}
	return int(math.Round(float64(sum) / float64(len(values)))), nil
}

// HerxTrend compares the mean severity of the most recent check-ins against
// the window immediately before them. Severities are oldest first.
func HerxTrend(severities []float64) schema.TrendReport {
	n := len(severities)
	if n < trendMinEntries {
		return schema.TrendReport{Direction: schema.TrendStable, Confidence: schema.ConfidenceLow}
	}

	recent, older := splitWindows(severities)
	diff := mean(recent) - mean(older)

	direction := schema.TrendStable
	switch {
	case diff > herxTrendDelta:
		direction = schema.TrendWorsening
	case diff < -herxTrendDelta:
		direction = schema.TrendImproving
	}

	confidence := schema.ConfidenceLow
	switch {
	case n >= highConfidenceFrom:
		confidence = schema.ConfidenceHigh
	case n >= mediumConfidenceMin:
		confidence = schema.ConfidenceMedium
	}

	return schema.TrendReport{
		Direction:  direction,
		Magnitude:  roundTo(math.Abs(diff), 2),
		Confidence: confidence,
	}
}

// splitWindows returns the recent window and the window immediately before it,
// each of size min(3, n/2).
func splitWindows(values []float64) (recent, older []float64) {
	n := len(values)
	size := min(trendWindowMax, n/2)
	if size == 0 {
		return nil, nil
	}
	return values[n-size:], values[n-2*size : n-size]
}

func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}
