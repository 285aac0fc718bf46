// Package cmd defines the command-line interface for readiness.
package cmd

import (
	"github.com/restorepath/readiness/internal/contract"
	"github.com/restorepath/readiness/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	// Call initConfig on Cobra's initialization
	cobra.OnInitialize(initConfig)

	// Add primary subcommands to the root command
	rootCmd.AddCommand(drainageCmd)
	rootCmd.AddCommand(exposureCmd)
	rootCmd.AddCommand(herxCmd)
	rootCmd.AddCommand(gateCmd)
	rootCmd.AddCommand(trendCmd)
	rootCmd.AddCommand(rubricCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(mcpCmd)

	// Add the history subcommands to the parent history command
	historyCmd.AddCommand(historyStatusCmd)
	historyCmd.AddCommand(historyClearCmd)
	historyCmd.AddCommand(historyExportCmd)
	historyCmd.AddCommand(historyMigrateCmd)

	// Bind all persistent flags of rootCmd to Viper
	rootCmd.PersistentFlags().StringP("user", "u", schema.DefaultUser, "User whose history is read and written")
	rootCmd.PersistentFlags().String("date", "", "Entry date: YYYY-MM-DD, today, yesterday or 'N days ago'")
	rootCmd.PersistentFlags().String("output", string(schema.TextOut), "Output format: text or csv or json")
	rootCmd.PersistentFlags().String("output-file", "", "Optional path to write output to")
	rootCmd.PersistentFlags().Int("precision", schema.DefaultPrecision, "Decimal precision for numeric columns")
	rootCmd.PersistentFlags().String("profile", "", "Enable profiling and write profiles to files with this prefix")
	rootCmd.PersistentFlags().Int("width", 0, "Terminal width override (0 = auto-detect)")
	rootCmd.PersistentFlags().String("history-backend", string(schema.SQLiteBackend), "History backend: sqlite or mysql or postgresql or none")
	rootCmd.PersistentFlags().String("history-db-connect", "", "Database connection string for mysql/postgresql (e.g., user:pass@tcp(host:port)/dbname)")
	rootCmd.PersistentFlags().String("color", "yes", "Enable colored labels in output (yes/no/true/false/1/0)")
	rootCmd.PersistentFlags().String("config", "", "Path to config file")
	if err := viper.BindPFlags(rootCmd.PersistentFlags()); err != nil {
		contract.LogFatal("Error binding root flags", err)
	}

	// Check-in flags are bound by sharedSetup for the command that runs
	drainageCmd.Flags().StringP("input", "i", "", "YAML or JSON file with today's metric values")
	drainageCmd.Flags().Bool("interactive", false, "Prompt for each metric instead of reading a file")
	drainageCmd.Flags().Bool("explain", false, "Print the weighted contribution of every metric")
	exposureCmd.Flags().StringP("input", "i", "", "YAML or JSON file listing the inspected rooms")
	exposureCmd.Flags().Bool("explain", false, "Print the score of every room")
	herxCmd.Flags().StringP("input", "i", "", "YAML or JSON file with the symptom check-in")
	herxCmd.Flags().Bool("interactive", false, "Prompt for each symptom instead of reading a file")

	// Bind all flags of gateCmd to Viper
	gateCmd.Flags().String("gate-override", "", "Gate parameters (format: 'days:7,score:80')")
	if err := viper.BindPFlags(gateCmd.Flags()); err != nil {
		contract.LogFatal("Error binding gate flags", err)
	}

	// Bind all flags of trendCmd to Viper
	trendCmd.Flags().String("domain", string(schema.DrainageDomain), "Domain to analyze: drainage or exposure or herx")
	trendCmd.Flags().Int("window", 0, "Rolling average window in entries (default from config or 7)")
	trendCmd.Flags().Float64("threshold", 0, "Score counted as a hit for consistency and streaks (default from config or 80)")
	if err := viper.BindPFlags(trendCmd.Flags()); err != nil {
		contract.LogFatal("Error binding trend flags", err)
	}

	// Bind all flags of historyMigrateCmd to Viper
	historyMigrateCmd.Flags().Int("target-version", -1, "Target migration version (-1 means latest, 0 means rollback to initial state)")
	if err := viper.BindPFlags(historyMigrateCmd.Flags()); err != nil {
		contract.LogFatal("Error binding history migrate flags", err)
	}
}
