package algo

import (
	"testing"

	"github.com/restorepath/readiness/schema"
)

// FuzzScoreDrainage fuzzes drainage scoring with arbitrary metric values.
func FuzzScoreDrainage(f *testing.F) {
	f.Add(10, 10, 10, 10, 10, 10, 10, 10, 10, 10)
	f.Add(1, 1, 1, 1, 1, 1, 1, 1, 1, 1)
	f.Add(5, 9, 9, 9, 9, 9, 9, 9, 9, 9)
	f.Add(0, 11, -3, 7, 7, 7, 7, 7, 7, 7)

	rubric := schema.DefaultDrainageRubric()
	f.Fuzz(func(t *testing.T, a, b, c, d, e, g, h, i, j, k int) {
		values := []int{a, b, c, d, e, g, h, i, j, k}
		snapshot := make(schema.Snapshot, len(values))
		for idx, key := range schema.DrainageMetricKeys {
			snapshot[key] = values[idx]
		}

		result, err := ScoreDrainage(snapshot, rubric)
		if err != nil {
			return
		}
		if result.Score < 0 || result.Score > 100 {
			t.Fatalf("score %d out of range", result.Score)
		}
		for _, entry := range rubric.Entries {
			if entry.Critical && snapshot[entry.Key] < entry.MinValue && result.Score > rubric.CriticalCap {
				t.Fatalf("critical %s=%d but score %d exceeds cap", entry.Key, snapshot[entry.Key], result.Score)
			}
		}
		if result.CanStartBinders != (result.Readiness() == schema.Ready) {
			t.Fatalf("binder flag %v disagrees with level %s", result.CanStartBinders, result.Level)
		}
	})
}

// FuzzScoreExposure fuzzes exposure scoring with a single room.
func FuzzScoreExposure(f *testing.F) {
	f.Add("HVAC System", "mild", uint8(0x01))
	f.Add("Bedroom", "severe", uint8(0xff))
	f.Add("garage", "none", uint8(0x00))
	f.Add("Kitchen", "extreme", uint8(0x10))

	rubric := schema.DefaultExposureRubric()
	f.Fuzz(func(t *testing.T, name, severity string, flags uint8) {
		issues := make(map[schema.IssueKey]bool)
		for idx, key := range schema.ExposureIssueKeys {
			if flags&(1<<idx) != 0 {
				issues[key] = true
			}
		}
		rooms := []schema.RoomRecord{{Name: name, Severity: schema.RoomSeverity(severity), Issues: issues}}

		result, err := ScoreExposure(rooms, rubric)
		if err != nil {
			return
		}
		if result.Score < 0 || result.Score > 100 {
			t.Fatalf("score %d out of range", result.Score)
		}
		if name == schema.HVACEscalationRoomName && len(issues) > 0 && result.Risk() == schema.RiskLow {
			t.Fatalf("HVAC room with issues scored low risk")
		}
	})
}
