package schema

// RoomRecord is one room of an exposure assessment.
type RoomRecord struct {
	Name     string            `json:"name" mapstructure:"name"`
	Severity RoomSeverity      `json:"severity" mapstructure:"severity"`
	Issues   map[IssueKey]bool `json:"issues" mapstructure:"issues"`
}

// IssueCount returns how many issues are flagged in the room.
func (r RoomRecord) IssueCount() int {
	n := 0
	for _, present := range r.Issues {
		if present {
			n++
		}
	}
	return n
}

// RoomScore is the weighted contribution of one room.
type RoomScore struct {
	Name       string  `json:"name"`
	Score      float64 `json:"score"`
	IssueCount int     `json:"issue_count"`
}

// ExposureResult is the exposure risk score with its display counts.
type ExposureResult struct {
	ScoreResult
	RawScore       float64     `json:"raw_score"`
	CriticalIssues int         `json:"critical_issues"`
	ModerateIssues int         `json:"moderate_issues"`
	MinorIssues    int         `json:"minor_issues"`
	AffectedRooms  int         `json:"affected_rooms"`
	HVACEscalated  bool        `json:"hvac_escalated"`
	Rooms          []RoomScore `json:"rooms"`
}

// Risk returns the risk band of the result.
func (r ExposureResult) Risk() RiskLevel {
	return RiskLevel(r.Level)
}
