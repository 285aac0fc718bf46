package algo

import (
	"errors"
	"testing"

	"github.com/restorepath/readiness/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// uniformHerx builds a check-in with every sub-metric set to v.
func uniformHerx(v int) schema.HerxInput {
	return schema.HerxInput{
		Physical:  schema.PhysicalSymptoms{Fatigue: v, Headache: v, BodyAches: v, Nausea: v, Fever: v},
		Cognitive: schema.CognitiveSymptoms{BrainFog: v, Concentration: v, Memory: v, Processing: v},
		Emotional: schema.EmotionalSymptoms{Mood: v, Anxiety: v, Irritability: v, Motivation: v},
	}
}

// TestAssessHerx tests group means, the weighted overall and the risk bands.
func TestAssessHerx(t *testing.T) {
	rubric := schema.DefaultHerxRubric()

	mixed := uniformHerx(8)
	mixed.Cognitive = schema.CognitiveSymptoms{BrainFog: 6, Concentration: 6, Memory: 6, Processing: 6}
	mixed.Emotional = schema.EmotionalSymptoms{Mood: 4, Anxiety: 4, Irritability: 4, Motivation: 4}

	fever := uniformHerx(1)
	fever.Physical.Fever = 9

	suicidal := uniformHerx(1)
	suicidal.Emotional.Flagged = []string{"Suicidal thoughts"}

	chest := uniformHerx(3)
	chest.Physical.Flagged = []string{"headache", "  CHEST PAIN "}

	benign := uniformHerx(2)
	benign.Cognitive.Flagged = []string{"brain fog"}

	tests := []struct {
		name          string
		input         schema.HerxInput
		wantPhysical  int
		wantCognitive int
		wantEmotional int
		wantOverall   int
		wantRisk      schema.RiskLevel
		wantTriggers  []string
	}{
		{"all ones", uniformHerx(1), 1, 1, 1, 1, schema.RiskLow, nil},
		{"all fives", uniformHerx(5), 5, 5, 5, 5, schema.RiskModerate, nil},
		{"all sevens", uniformHerx(7), 7, 7, 7, 7, schema.RiskHigh, nil},
		{"all nines", uniformHerx(9), 9, 9, 9, 9, schema.RiskEmergency, nil},
		{"mixed groups", mixed, 8, 6, 4, 7, schema.RiskHigh, nil},
		{"fever forces emergency", fever, 3, 1, 1, 2, schema.RiskEmergency, nil},
		{"suicidal thoughts force emergency", suicidal, 1, 1, 1, 1, schema.RiskEmergency, []string{"Suicidal thoughts"}},
		{"emergency match ignores case", chest, 3, 3, 3, 3, schema.RiskEmergency, []string{"  CHEST PAIN "}},
		{"non emergency flag", benign, 2, 2, 2, 2, schema.RiskLow, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, err := AssessHerx(tt.input, rubric)
			require.NoError(t, err)
			assert.Equal(t, tt.wantPhysical, a.Physical)
			assert.Equal(t, tt.wantCognitive, a.Cognitive)
			assert.Equal(t, tt.wantEmotional, a.Emotional)
			assert.Equal(t, tt.wantOverall, a.Overall)
			assert.Equal(t, tt.wantRisk, a.RiskLevel)
			assert.Equal(t, tt.wantTriggers, a.EmergencyTriggers)

			r := a.Result()
			assert.Equal(t, schema.HerxDomain, r.Domain)
			assert.Equal(t, tt.wantOverall, r.Score)
			assert.Equal(t, string(tt.wantRisk), r.Level)
		})
	}
}

// TestAssessHerxErrors tests missing and out of range sub-metrics.
func TestAssessHerxErrors(t *testing.T) {
	rubric := schema.DefaultHerxRubric()

	missing := uniformHerx(4)
	missing.Cognitive.Memory = 0

	high := uniformHerx(4)
	high.Emotional.Anxiety = 12

	negative := uniformHerx(4)
	negative.Physical.Nausea = -1

	_, err := AssessHerx(missing, rubric)
	var missingErr *MissingMetricError
	require.ErrorAs(t, err, &missingErr)
	assert.Equal(t, "memory", missingErr.Key)
	assert.Equal(t, schema.HerxDomain, missingErr.Domain)

	_, err = AssessHerx(high, rubric)
	var rangeErr *OutOfRangeError
	require.ErrorAs(t, err, &rangeErr)
	assert.Equal(t, "anxiety", rangeErr.Key)
	assert.Equal(t, 12, rangeErr.Value)

	_, err = AssessHerx(negative, rubric)
	require.ErrorAs(t, err, &rangeErr)
	assert.True(t, errors.Is(err, ErrInvalidSnapshot))

	_, err = AssessHerx(schema.HerxInput{}, rubric)
	require.ErrorAs(t, err, &missingErr)
	assert.Equal(t, "fatigue", missingErr.Key)
}

// TestHerxTrend tests the recent versus older window comparison.
func TestHerxTrend(t *testing.T) {
	tests := []struct {
		name           string
		severities     []float64
		wantDirection  schema.TrendDirection
		wantMagnitude  float64
		wantConfidence schema.Confidence
	}{
		{"empty", nil, schema.TrendStable, 0, schema.ConfidenceLow},
		{"two entries", []float64{2, 9}, schema.TrendStable, 0, schema.ConfidenceLow},
		{"three flat entries", []float64{5, 5, 5}, schema.TrendStable, 0, schema.ConfidenceLow},
		{"three rising entries", []float64{5, 5, 7}, schema.TrendWorsening, 2, schema.ConfidenceLow},
		{"worsening", []float64{2, 2, 2, 8, 8, 8}, schema.TrendWorsening, 6, schema.ConfidenceMedium},
		{"improving", []float64{8, 8, 8, 2, 2, 2}, schema.TrendImproving, 6, schema.ConfidenceMedium},
		{"small change is stable", []float64{5, 5, 5, 5, 5, 5, 5, 5.4, 5.4, 5.4}, schema.TrendStable, 0.4, schema.ConfidenceHigh},
		{"older window ignores early history", []float64{9, 9, 9, 9, 3, 3, 3, 3, 3, 3}, schema.TrendStable, 0, schema.ConfidenceHigh},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := HerxTrend(tt.severities)
			assert.Equal(t, tt.wantDirection, got.Direction)
			assert.InDelta(t, tt.wantMagnitude, got.Magnitude, 0.001)
			assert.Equal(t, tt.wantConfidence, got.Confidence)
		})
	}
}
