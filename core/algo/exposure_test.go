package algo

import (
	"errors"
	"testing"

	"github.com/restorepath/readiness/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func room(name string, severity schema.RoomSeverity, issues ...schema.IssueKey) schema.RoomRecord {
	m := make(map[schema.IssueKey]bool, len(issues))
	for _, i := range issues {
		m[i] = true
	}
	return schema.RoomRecord{Name: name, Severity: severity, Issues: m}
}

// TestScoreExposure tests weighting, multipliers, normalisation and risk bands.
func TestScoreExposure(t *testing.T) {
	rubric := schema.DefaultExposureRubric()
	tests := []struct {
		name          string
		rooms         []schema.RoomRecord
		wantScore     int
		wantRisk      schema.RiskLevel
		wantCritical  int
		wantModerate  int
		wantMinor     int
		wantAffected  int
		wantEscalated bool
	}{
		{
			name:      "no rooms",
			rooms:     nil,
			wantScore: 0,
			wantRisk:  schema.RiskLow,
		},
		{
			name:      "rooms without issues",
			rooms:     []schema.RoomRecord{room("Bedroom", schema.SeveritySevere), room("Kitchen", schema.SeverityNone)},
			wantScore: 0,
			wantRisk:  schema.RiskLow,
		},
		{
			name:         "visible mold in a bedroom is high risk",
			rooms:        []schema.RoomRecord{room("Bedroom", schema.SeverityModerate, schema.VisibleMold)},
			wantScore:    11, // 10 * 1.5 * 1.5 / 2
			wantRisk:     schema.RiskHigh,
			wantCritical: 1,
			wantAffected: 1,
		},
		{
			name:         "two moderate issues",
			rooms:        []schema.RoomRecord{room("Living Room", schema.SeverityMild, schema.MustySmell, schema.Humidity)},
			wantScore:    5, // (5 + 4) * 1.1 / 2
			wantRisk:     schema.RiskModerate,
			wantModerate: 2,
			wantAffected: 1,
		},
		{
			name:         "unlisted room uses the default weight",
			rooms:        []schema.RoomRecord{room("Garage", schema.SeverityMild, schema.Condensation)},
			wantScore:    2, // 3 / 2 rounded half away from zero
			wantRisk:     schema.RiskLow,
			wantMinor:    1,
			wantAffected: 1,
		},
		{
			name:         "three issues apply the 1.2 multiplier",
			rooms:        []schema.RoomRecord{room("Kitchen", schema.SeveritySevere, schema.Leaks, schema.Humidity, schema.Condensation)},
			wantScore:    19, // (6 + 4 + 3) * 2 * 1.2 * 1.2 / 2
			wantRisk:     schema.RiskModerate,
			wantModerate: 2,
			wantMinor:    1,
			wantAffected: 1,
		},
		{
			name: "five issues apply the 1.3 multiplier only",
			rooms: []schema.RoomRecord{room("Basement", schema.SeveritySevere,
				schema.VisibleMold, schema.WaterDamage, schema.MustySmell, schema.Leaks, schema.Humidity)},
			wantScore:    56, // 33 * 2 * 1.3 * 1.3 / 2
			wantRisk:     schema.RiskHigh,
			wantCritical: 2,
			wantModerate: 3,
			wantAffected: 1,
		},
		{
			name: "score is capped at 100",
			rooms: []schema.RoomRecord{
				room("Bedroom", schema.SeveritySevere, schema.ExposureIssueKeys...),
				room("Basement", schema.SeveritySevere, schema.ExposureIssueKeys...),
			},
			wantScore:    100,
			wantRisk:     schema.RiskCritical,
			wantCritical: 4,
			wantModerate: 6,
			wantMinor:    6,
			wantAffected: 2,
		},
		{
			name:          "HVAC system escalates low to moderate",
			rooms:         []schema.RoomRecord{room("HVAC System", schema.SeverityMild, schema.Condensation)},
			wantScore:     3, // 3 * 2.0 / 2
			wantRisk:      schema.RiskModerate,
			wantMinor:     1,
			wantAffected:  1,
			wantEscalated: true,
		},
		{
			name:         "HVAC system does not escalate high",
			rooms:        []schema.RoomRecord{room("HVAC System", schema.SeveritySevere, schema.VisibleMold)},
			wantScore:    20,
			wantRisk:     schema.RiskHigh,
			wantCritical: 1,
			wantAffected: 1,
		},
		{
			name:         "HVAC-like name gets the weight but not the escalation",
			rooms:        []schema.RoomRecord{room("hvac closet", schema.SeverityMild, schema.Condensation)},
			wantScore:    3,
			wantRisk:     schema.RiskLow,
			wantMinor:    1,
			wantAffected: 1,
		},
		{
			name:         "issues still count when severity is none",
			rooms:        []schema.RoomRecord{room("Bedroom", schema.SeverityNone, schema.WaterDamage)},
			wantScore:    0,
			wantRisk:     schema.RiskHigh,
			wantCritical: 1,
			wantAffected: 1,
		},
		{
			name: "three critical issues are critical",
			rooms: []schema.RoomRecord{
				room("Bathroom", schema.SeverityMild, schema.VisibleMold),
				room("Kitchen", schema.SeverityMild, schema.WaterDamage),
				room("Attic", schema.SeverityMild, schema.VisibleMold),
			},
			wantScore:    16, // (12 + 9.6 + 10) / 2
			wantRisk:     schema.RiskCritical,
			wantCritical: 3,
			wantAffected: 3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := ScoreExposure(tt.rooms, rubric)
			require.NoError(t, err)
			assert.Equal(t, tt.wantScore, result.Score)
			assert.Equal(t, tt.wantRisk, result.Risk())
			assert.Equal(t, tt.wantCritical, result.CriticalIssues)
			assert.Equal(t, tt.wantModerate, result.ModerateIssues)
			assert.Equal(t, tt.wantMinor, result.MinorIssues)
			assert.Equal(t, tt.wantAffected, result.AffectedRooms)
			assert.Equal(t, tt.wantEscalated, result.HVACEscalated)
			assert.Len(t, result.Rooms, len(tt.rooms))
			assert.Equal(t, schema.ExposureDomain, result.Domain)
		})
	}
}

// TestScoreExposureHVACNeverLow checks every single HVAC issue yields at least moderate risk.
func TestScoreExposureHVACNeverLow(t *testing.T) {
	rubric := schema.DefaultExposureRubric()
	for _, severity := range []schema.RoomSeverity{schema.SeverityNone, schema.SeverityMild, schema.SeverityModerate, schema.SeveritySevere} {
		for _, issue := range schema.ExposureIssueKeys {
			result, err := ScoreExposure([]schema.RoomRecord{room("HVAC System", severity, issue)}, rubric)
			require.NoError(t, err)
			assert.NotEqual(t, schema.RiskLow, result.Risk(), "%s/%s", severity, issue)
		}
	}
}

// TestScoreExposureErrors tests rejection of unknown keys and severities.
func TestScoreExposureErrors(t *testing.T) {
	rubric := schema.DefaultExposureRubric()
	tests := []struct {
		name    string
		rooms   []schema.RoomRecord
		wantKey string
	}{
		{
			name:    "unknown severity",
			rooms:   []schema.RoomRecord{room("Bedroom", "extreme", schema.Leaks)},
			wantKey: "extreme",
		},
		{
			name:    "empty severity",
			rooms:   []schema.RoomRecord{room("Bedroom", "", schema.Leaks)},
			wantKey: "",
		},
		{
			name:    "unknown issue",
			rooms:   []schema.RoomRecord{room("Bedroom", schema.SeverityMild, "termites")},
			wantKey: "termites",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ScoreExposure(tt.rooms, rubric)
			var target *UnknownMetricError
			require.ErrorAs(t, err, &target)
			assert.Equal(t, tt.wantKey, target.Key)
			assert.True(t, errors.Is(err, ErrInvalidSnapshot))
		})
	}
}

// TestScoreExposureUnknownSeverityInRubric tests that only the four room severities are accepted.
func TestScoreExposureUnknownSeverityInRubric(t *testing.T) {
	rubric := schema.DefaultExposureRubric()
	rubric.SeverityMultipliers["extreme"] = 3

	_, err := ScoreExposure([]schema.RoomRecord{room("Bedroom", "extreme", schema.Leaks)}, rubric)
	assert.ErrorIs(t, err, ErrInvalidSnapshot)
}

// TestEscalate tests the one-band bump used for HVAC issues.
func TestEscalate(t *testing.T) {
	tests := []struct {
		in       schema.RiskLevel
		expected schema.RiskLevel
	}{
		{schema.RiskLow, schema.RiskModerate},
		{schema.RiskModerate, schema.RiskHigh},
		{schema.RiskHigh, schema.RiskHigh},
		{schema.RiskCritical, schema.RiskCritical},
	}
	for _, tt := range tests {
		t.Run(string(tt.in), func(t *testing.T) {
			got := escalate(tt.in)
			assert.Equal(t, tt.expected, got)
			assert.LessOrEqual(t, got.Rank()-tt.in.Rank(), 1)
		})
	}
}

// TestExposureRoomWeight tests room weight lookup.
func TestExposureRoomWeight(t *testing.T) {
	rubric := schema.DefaultExposureRubric()
	assert.Equal(t, 1.5, rubric.RoomWeight("Bedroom"))
	assert.Equal(t, 1.5, rubric.RoomWeight("  bedroom "))
	assert.Equal(t, 1.3, rubric.RoomWeight("Basement"))
	assert.Equal(t, 2.0, rubric.RoomWeight("HVAC System"))
	assert.Equal(t, 2.0, rubric.RoomWeight("Upstairs HVAC"))
	assert.Equal(t, 1.0, rubric.RoomWeight("Garage"))
}
