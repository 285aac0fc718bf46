package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/restorepath/readiness/core"
	"github.com/restorepath/readiness/internal/contract"
	"github.com/restorepath/readiness/internal/intake"
	"github.com/spf13/cobra"
)

// runExecutor runs a core executor and exits on failure. An aborted prompt is not an error.
func runExecutor(msg string, fn core.ExecutorFunc) {
	err := fn(rootCtx, cfg, historyManager)
	if errors.Is(err, intake.ErrAborted) {
		_, _ = fmt.Fprintln(os.Stderr, "Check-in cancelled.")
		return
	}
	if err != nil {
		contract.LogFatal(msg, err)
	}
}

// drainageCmd scores today's drainage check-in.
var drainageCmd = &cobra.Command{
	Use:   "drainage",
	Short: "Score today's drainage check-in and check binder readiness",
	Long: `Score ten drainage metrics (each 1-10) into a 0-100 readiness score.

Bowel movements, hydration and liver support are critical: any of them below 6
caps the score at 60. The check-in is stored for the user and date, and the
binder gate is evaluated over the stored history.

Input file (YAML or JSON), metrics at the top level or under "metrics":
  bowel_movements: 8
  hydration: 7
  ...

Examples:
  # Score from a file
  readiness drainage --input today.yaml

  # Answer prompts instead
  readiness drainage --interactive

  # Back-date a missed day
  readiness drainage --input monday.yaml --date yesterday`,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		runExecutor("Cannot score drainage check-in", core.ExecuteDrainage)
	},
}

// exposureCmd scores a room-by-room inspection.
var exposureCmd = &cobra.Command{
	Use:   "exposure",
	Short: "Score household mold exposure risk from a room inspection",
	Long: `Score a room-by-room inspection into an exposure risk of 0-100.

Each room has a severity (none, mild, moderate, severe) and a list of issues:
visible_mold, water_damage, musty_smell, leaks, humidity, condensation,
peeling, discoloration. Any issue in a room named "HVAC System" raises the
risk one band.

Examples:
  readiness exposure --input house.yaml
  readiness exposure --input house.yaml --output json`,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		runExecutor("Cannot score exposure", core.ExecuteExposure)
	},
}

// herxCmd assesses a detox-reaction check-in.
var herxCmd = &cobra.Command{
	Use:   "herx",
	Short: "Assess a detox reaction and get dosage guidance",
	Long: `Assess physical, cognitive and emotional symptoms (each 1-10).

Prints the risk level, recommendations, binder dosage adjustment, the expected
course of the reaction and the trend over earlier check-ins. Emergency
symptoms such as chest pain always raise the risk to emergency.

Examples:
  readiness herx --input symptoms.yaml
  readiness herx --interactive`,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		runExecutor("Cannot assess herx check-in", core.ExecuteHerx)
	},
}
