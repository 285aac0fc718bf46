// main is the entry point for the readiness CLI.
package main

import (
	"github.com/restorepath/readiness/cmd"
	"github.com/restorepath/readiness/internal/contract"
	"github.com/restorepath/readiness/internal/history"
)

func main() {
	defer history.CloseStores()
	cmd.SetHistoryManager(history.Manager)

	err := cmd.Execute()
	if stopErr := cmd.StopProfiling(); stopErr != nil {
		contract.LogWarn("Failed to stop profiling", stopErr)
	}
	if err != nil {
		history.CloseStores()
		contract.LogFatal("Command failed", err)
	}
}
