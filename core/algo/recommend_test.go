package algo

import (
	"testing"

	"github.com/restorepath/readiness/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestRecommendations tests band selection and symptom tips.
func TestRecommendations(t *testing.T) {
	t.Run("emergency returns only its own list", func(t *testing.T) {
		got := Recommendations(3, schema.RiskEmergency, []string{"headache", "Suicidal thoughts"})
		assert.Equal(t, emergencyRecommendations, got)
	})

	t.Run("high band by risk", func(t *testing.T) {
		got := Recommendations(5, schema.RiskHigh, nil)
		assert.Equal(t, highRecommendations, got)
	})

	t.Run("high band by severity", func(t *testing.T) {
		got := Recommendations(7, schema.RiskLow, nil)
		assert.Equal(t, highRecommendations, got)
	})

	t.Run("moderate band with symptom tips", func(t *testing.T) {
		got := Recommendations(4, schema.RiskModerate, []string{"Headache", "headache", "hiccups", "brain fog"})
		require.Len(t, got, len(moderateRecommendations)+2)
		assert.Equal(t, moderateRecommendations, got[:len(moderateRecommendations)])
		assert.Equal(t, symptomTips["headache"], got[len(got)-2])
		assert.Equal(t, symptomTips["brain fog"], got[len(got)-1])
	})

	t.Run("mild band", func(t *testing.T) {
		got := Recommendations(2, schema.RiskLow, nil)
		assert.Equal(t, mildRecommendations, got)
	})

	t.Run("returned slices are independent", func(t *testing.T) {
		got := Recommendations(2, schema.RiskLow, nil)
		got[0] = "changed"
		assert.NotEqual(t, "changed", mildRecommendations[0])
		assert.NotEqual(t, "changed", Recommendations(2, schema.RiskLow, nil)[0])
	})
}

// TestDosageAdjustment tests the dosage thresholds.
func TestDosageAdjustment(t *testing.T) {
	tests := []struct {
		severity   int
		wantAction schema.DosageAction
		wantDose   string
	}{
		{10, schema.DosageStop, "Stop all binders"},
		{7, schema.DosageStop, "Stop all binders"},
		{6, schema.DosageReduce, "Reduce to 25% of current dose"},
		{5, schema.DosageReduce, "Reduce to 50% of current dose"},
		{4, schema.DosageReduce, "Reduce to 50% of current dose"},
		{3, schema.DosageContinue, "Continue current dose"},
		{1, schema.DosageContinue, "Continue current dose"},
	}
	for _, tt := range tests {
		got := DosageAdjustment(tt.severity)
		assert.Equal(t, tt.wantAction, got.Action, "severity %d", tt.severity)
		assert.Equal(t, tt.wantDose, got.NewDose, "severity %d", tt.severity)
		assert.NotEmpty(t, got.Timeline)
	}
}

// TestExpectedDuration tests the duration tiers.
func TestExpectedDuration(t *testing.T) {
	tests := []struct {
		severity  int
		wantPeak  string
		wantTotal string
	}{
		{9, "3-5 days", "2-3 weeks"},
		{8, "3-5 days", "2-3 weeks"},
		{7, "2-3 days", "1-2 weeks"},
		{6, "2-3 days", "1-2 weeks"},
		{5, "1-2 days", "5-7 days"},
		{4, "1-2 days", "5-7 days"},
		{3, "Within 24 hours", "2-3 days"},
	}
	for _, tt := range tests {
		got := ExpectedDuration(tt.severity)
		assert.Equal(t, tt.wantPeak, got.Peak, "severity %d", tt.severity)
		assert.Equal(t, tt.wantTotal, got.Total, "severity %d", tt.severity)
		require.NotEmpty(t, got.Milestones)
		for i := 1; i < len(got.Milestones); i++ {
			assert.Greater(t, got.Milestones[i].Day, got.Milestones[i-1].Day)
		}
	}
}
