package schema

import "time"

// DrainageReport bundles everything shown for a drainage check-in.
type DrainageReport struct {
	Snapshot Snapshot         `json:"snapshot"`
	Result   DrainageResult   `json:"result"`
	Analysis DrainageAnalysis `json:"analysis"`
	Gate     GateStatus       `json:"gate"`
}

// GateReport is the binder gate evaluated over a stored history.
type GateReport struct {
	UserID string     `json:"user_id"`
	Params GateParams `json:"params"`
	Status GateStatus `json:"status"`
	Days   int        `json:"days"` // drainage entries considered
}

// SeriesPoint is one dated score of a series with its trailing average.
type SeriesPoint struct {
	Date           time.Time `json:"date"`
	Score          float64   `json:"score"`
	RollingAverage float64   `json:"rolling_average"`
}

// SeriesResult is the series report of one user and domain.
type SeriesResult struct {
	UserID string        `json:"user_id"`
	Domain Domain        `json:"domain"`
	Params SeriesParams  `json:"params"`
	Points []SeriesPoint `json:"points"`
	Report SeriesReport  `json:"report"`
}
