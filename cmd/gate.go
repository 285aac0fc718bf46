package cmd

import (
	"github.com/restorepath/readiness/core"
	"github.com/spf13/cobra"
)

// gateCmd evaluates the binder-unlock gate over stored drainage history.
var gateCmd = &cobra.Command{
	Use:   "gate",
	Short: "Check whether binders can be started",
	Long: `Evaluate the binder-unlock gate over the stored drainage history.

The gate is satisfied when the most recent required days all scored at or above
the required score. Defaults are 7 days at 80, configurable under "gate" in the
config file or with --gate-override.

Examples:
  readiness gate
  readiness gate --gate-override 'days:5,score:75'
  readiness gate --user sam --output json`,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		runExecutor("Cannot evaluate gate", core.ExecuteGate)
	},
}

// trendCmd prints series statistics over stored history.
var trendCmd = &cobra.Command{
	Use:   "trend",
	Short: "Show rolling averages, streaks and trend of stored scores",
	Long: `Analyze the stored scores of one domain for the user.

Reports the rolling average, the trend of recent entries against the ones before,
variability, consistency (share of entries at or above the threshold) and the
current and longest streaks.

Examples:
  readiness trend
  readiness trend --domain herx --window 3
  readiness trend --threshold 70 --output csv --output-file trend.csv`,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		runExecutor("Cannot analyze trend", core.ExecuteTrend)
	},
}

// rubricCmd prints the active rubrics.
var rubricCmd = &cobra.Command{
	Use:   "rubric",
	Short: "Show the scoring rubrics and their weights",
	Long: `Print the weights, thresholds and formulas used by every scorer.

Custom drainage weights from the config file are shown when set.

Examples:
  readiness rubric
  readiness rubric --output json`,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		runExecutor("Cannot print rubric", core.ExecuteRubric)
	},
}
