package algo

import (
	"math"
	"slices"

	"github.com/restorepath/readiness/schema"
)

// Risk thresholds on the normalised exposure score.
const (
	exposureCriticalScore = 75
	exposureHighScore     = 50
	exposureModerateScore = 25
	criticalIssueLimit    = 3
	moderateIssueLimit    = 2
)

// ScoreExposure computes the household exposure risk for a list of rooms.
// Each present issue adds weight x severity multiplier x room weight to its room.
// Rooms with many issues get a single multiplier. The room total is halved and
// capped at 100. A room named exactly "HVAC System" with any issue bumps the
// risk one band.
func ScoreExposure(rooms []schema.RoomRecord, rubric *schema.ExposureRubric) (schema.ExposureResult, error) {
	if err := validateRooms(rooms, rubric); err != nil {
		return schema.ExposureResult{}, err
	}

	result := schema.ExposureResult{
		ScoreResult: schema.ScoreResult{Domain: schema.ExposureDomain},
		Rooms:       make([]schema.RoomScore, 0, len(rooms)),
	}
	hvacFlagged := false
	var total float64

	for _, room := range rooms {
		multiplier := rubric.SeverityMultipliers[room.Severity]
		roomWeight := rubric.RoomWeight(room.Name)
		var roomScore float64
		present := 0

		// Iterate in rubric order so float sums are reproducible.
		for _, def := range rubric.Issues {
			if !room.Issues[def.Key] {
				continue
			}
			present++
			roomScore += def.Weight * multiplier * roomWeight
			switch def.Class {
			case schema.CriticalIssue:
				result.CriticalIssues++
			case schema.ModerateIssue:
				result.ModerateIssues++
			default:
				result.MinorIssues++
			}
		}

		switch {
		case present >= rubric.HeavyIssueCount:
			roomScore *= rubric.HeavyIssueFactor
		case present >= rubric.MultiIssueCount:
			roomScore *= rubric.MultiIssueFactor
		}

		if present > 0 {
			result.AffectedRooms++
			if room.Name == rubric.EscalationRoom {
				hvacFlagged = true
			}
		}
		total += roomScore
		result.Rooms = append(result.Rooms, schema.RoomScore{
			Name:       room.Name,
			Score:      roundTo(roomScore, 2),
			IssueCount: present,
		})
	}

	result.RawScore = roundTo(total, 2)
	result.Score = int(math.Min(rubric.MaxScore, math.Round(total/rubric.Normalizer)))

	risk := exposureRisk(result.Score, result.CriticalIssues, result.ModerateIssues)
	if hvacFlagged {
		escalated := escalate(risk)
		result.HVACEscalated = escalated != risk
		risk = escalated
	}
	result.Level = string(risk)
	return result, nil
}

func exposureRisk(score, critical, moderate int) schema.RiskLevel {
	switch {
	case critical >= criticalIssueLimit || score >= exposureCriticalScore:
		return schema.RiskCritical
	case critical >= 1 || score >= exposureHighScore:
		return schema.RiskHigh
	case moderate >= moderateIssueLimit || score >= exposureModerateScore:
		return schema.RiskModerate
	default:
		return schema.RiskLow
	}
}

// exposureBands are the risk levels escalation can move between, lowest first.
var exposureBands = []schema.RiskLevel{schema.RiskLow, schema.RiskModerate, schema.RiskHigh}

// escalate bumps low and moderate one band. High and above are unchanged.
func escalate(r schema.RiskLevel) schema.RiskLevel {
	if r.Rank() >= schema.RiskHigh.Rank() {
		return r
	}
	return exposureBands[r.Rank()+1]
}

func validateRooms(rooms []schema.RoomRecord, rubric *schema.ExposureRubric) error {
	for _, room := range rooms {
		if _, ok := rubric.SeverityMultipliers[room.Severity]; !ok || !schema.ValidRoomSeverities[room.Severity] {
			return &UnknownMetricError{Domain: schema.ExposureDomain, Key: string(room.Severity)}
		}
		keys := make([]string, 0, len(room.Issues))
		for key := range room.Issues {
			keys = append(keys, string(key))
		}
		slices.Sort(keys)
		for _, key := range keys {
			if _, ok := rubric.Issue(schema.IssueKey(key)); !ok {
				return &UnknownMetricError{Domain: schema.ExposureDomain, Key: key}
			}
		}
	}
	return nil
}
