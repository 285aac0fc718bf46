// Package schema has the data model, constants and default rubrics for all parts of readiness.
package schema

import (
	"encoding/json"
	"time"
)

// Snapshot is one dated set of drainage metric values, each in [1,10].
type Snapshot map[MetricKey]int

// ScoreResult is the normalised outcome of scoring one snapshot.
type ScoreResult struct {
	Domain               Domain `json:"domain"`
	Score                int    `json:"score"`
	Level                string `json:"level"`
	TriggeredCriticalCap bool   `json:"triggered_critical_cap"`
}

// DrainageResult is the drainage readiness score plus its breakdown.
type DrainageResult struct {
	ScoreResult
	CanStartBinders bool                  `json:"can_start_binders"`
	Breakdown       map[MetricKey]float64 `json:"breakdown,omitempty"` // weighted contribution in score points
}

// Readiness returns the readiness band of the result.
func (r DrainageResult) Readiness() ReadinessLevel {
	return ReadinessLevel(r.Level)
}

// MetricAnalysis is one ranked metric with its remediation text.
type MetricAnalysis struct {
	Key         MetricKey `json:"key"`
	Label       string    `json:"label"`
	Value       int       `json:"value"`
	Weight      float64   `json:"weight"`
	Remediation string    `json:"remediation,omitempty"`
}

// DrainageAnalysis surfaces the weakest and strongest areas of a snapshot.
type DrainageAnalysis struct {
	Weakest    []MetricAnalysis `json:"weakest"`
	Strongest  []MetricAnalysis `json:"strongest"`
	Assessment string           `json:"assessment"`
}

// HistoryEntry is one stored snapshot with its score.
// Input carries the domain input as JSON: a Snapshot, a room list or a HerxInput.
type HistoryEntry struct {
	ID         string          `json:"id"`
	UserID     string          `json:"user_id"`
	Domain     Domain          `json:"domain"`
	Date       time.Time       `json:"date"`
	Input      json.RawMessage `json:"input,omitempty"`
	Result     ScoreResult     `json:"result"`
	RecordedAt time.Time       `json:"recorded_at"`
}

// Scores extracts the numeric scores of a history in the order given.
func Scores(entries []HistoryEntry) []float64 {
	scores := make([]float64, 0, len(entries))
	for _, e := range entries {
		scores = append(scores, float64(e.Result.Score))
	}
	return scores
}
