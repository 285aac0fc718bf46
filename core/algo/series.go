package algo

import (
	"math"

	"github.com/restorepath/readiness/schema"
)

const (
	scoreTrendDelta       = 5.0
	lowVariabilityBelow   = 5.0
	moderateVariabilityLt = 10.0
)

// RollingAverage returns the mean of the trailing window values rounded to one
// decimal. All values are used when fewer exist than the window.
func RollingAverage(values []float64, window int) float64 {
	if len(values) == 0 {
		return 0
	}
	if window <= 0 || window > len(values) {
		window = len(values)
	}
	return roundTo(mean(values[len(values)-window:]), 1)
}

// RollingAverages returns, for each index i, the mean of values[max(0,i-window+1):i+1].
func RollingAverages(values []float64, window int) []float64 {
	out := make([]float64, len(values))
	if window <= 0 {
		window = 1
	}
	for i := range values {
		start := max(0, i-window+1)
		out[i] = roundTo(mean(values[start:i+1]), 1)
	}
	return out
}

// ScoreTrend compares the most recent min(3, n/2) scores against the window
// before them. A difference over 5 points is up or down.
func ScoreTrend(values []float64) schema.TrendDirection {
	recent, older := splitWindows(values)
	if len(older) == 0 {
		return schema.TrendStable
	}
	diff := mean(recent) - mean(older)
	switch {
	case diff > scoreTrendDelta:
		return schema.TrendUp
	case diff < -scoreTrendDelta:
		return schema.TrendDown
	default:
		return schema.TrendStable
	}
}

// StdDev returns the population standard deviation rounded to one decimal.
func StdDev(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	m := mean(values)
	var sq float64
	for _, v := range values {
		sq += (v - m) * (v - m)
	}
	return roundTo(math.Sqrt(sq/float64(len(values))), 1)
}

// VariabilityFor buckets a standard deviation.
func VariabilityFor(stdDev float64) schema.Variability {
	switch {
	case stdDev < lowVariabilityBelow:
		return schema.VariabilityLow
	case stdDev < moderateVariabilityLt:
		return schema.VariabilityModerate
	default:
		return schema.VariabilityHigh
	}
}

// Consistency returns the percentage of values at or over the threshold,
// rounded to one decimal.
func Consistency(values []float64, threshold float64) float64 {
	if len(values) == 0 {
		return 0
	}
	hits := 0
	for _, v := range values {
		if v >= threshold {
			hits++
		}
	}
	return roundTo(float64(hits)/float64(len(values))*100, 1)
}

// Streaks returns the longest run and the current trailing run of values at
// or over the threshold.
func Streaks(values []float64, threshold float64) (longest, current int) {
	run := 0
	for _, v := range values {
		if v >= threshold {
			run++
			longest = max(longest, run)
		} else {
			run = 0
		}
	}
	return longest, run
}

// AnalyzeSeries bundles every statistic of a chronological score series.
func AnalyzeSeries(values []float64, params schema.SeriesParams) schema.SeriesReport {
	sd := StdDev(values)
	longest, current := Streaks(values, params.Threshold)
	report := schema.SeriesReport{
		Count:           len(values),
		RollingAverage:  RollingAverage(values, params.Window),
		RollingAverages: RollingAverages(values, params.Window),
		Trend:           ScoreTrend(values),
		StdDev:          sd,
		Variability:     VariabilityFor(sd),
		Consistency:     Consistency(values, params.Threshold),
		CurrentStreak:   current,
		LongestStreak:   longest,
	}
	if len(values) > 0 {
		report.Latest = values[len(values)-1]
	}
	return report
}
