package schema

// TrendReport is the direction of a severity history.
type TrendReport struct {
	Direction  TrendDirection `json:"direction"`
	Magnitude  float64        `json:"magnitude"`
	Confidence Confidence     `json:"confidence"`
}

// SeriesParams controls series analysis.
type SeriesParams struct {
	Window    int     `json:"window"`
	Threshold float64 `json:"threshold"`
}

// SeriesReport bundles the statistics of a score series.
type SeriesReport struct {
	Count           int            `json:"count"`
	Latest          float64        `json:"latest"`
	RollingAverage  float64        `json:"rolling_average"`
	RollingAverages []float64      `json:"rolling_averages"`
	Trend           TrendDirection `json:"trend"`
	StdDev          float64        `json:"std_dev"`
	Variability     Variability    `json:"variability"`
	Consistency     float64        `json:"consistency"`
	CurrentStreak   int            `json:"current_streak"`
	LongestStreak   int            `json:"longest_streak"`
}

// GateParams configures a progression gate.
type GateParams struct {
	RequiredDays  int     `json:"required_days"`
	RequiredScore float64 `json:"required_score"`
}

// DefaultGateParams returns the binder-unlock gate defaults.
func DefaultGateParams() GateParams {
	return GateParams{RequiredDays: DefaultRequiredDays, RequiredScore: DefaultRequiredScore}
}

// GateStatus is the outcome of evaluating a gate over a history.
type GateStatus struct {
	Satisfied                 bool   `json:"satisfied"`
	ConsecutiveQualifyingDays int    `json:"consecutive_qualifying_days"`
	DaysRemaining             int    `json:"days_remaining"`
	Message                   string `json:"message"`
}
