// Package main provides a performance benchmarking tool for the readiness CLI.
// It seeds drainage histories of several sizes into a temporary SQLite file,
// then times each command with history disabled and enabled. The first
// successful run with history counts as cold and the rest are averaged as warm.
//
// Prerequisites:
// - readiness binary installed and available in PATH
//
// Usage: go run benchmark/main.go [work-dir]
//
//	work-dir: Directory for the seeded databases and check-in file
package main

import (
	"encoding/csv"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"time"
)

// BenchmarkResult holds the result of a benchmark run.
type BenchmarkResult struct {
	HistoryDays   int
	Command       string
	NoHistoryTime string
	ColdTime      string
	WarmTime      string
}

// BenchmarkConfig holds configuration for the benchmark run.
type BenchmarkConfig struct {
	WorkDir       string
	Timeout       time.Duration
	NoHistoryRuns int
	HistoryRuns   int
	HistorySizes  []int
	Commands      [][]string
}

func main() {
	if len(os.Args) != 2 {
		fmt.Printf("Usage: %s [work-dir]\n", os.Args[0])
		os.Exit(1)
	}

	config := BenchmarkConfig{
		WorkDir:       os.Args[1],
		Timeout:       time.Minute,
		NoHistoryRuns: 3,
		HistoryRuns:   4,
		HistorySizes:  []int{7, 90, 365},
		Commands: [][]string{
			{"drainage", "--output", "json"},
			{"gate", "--output", "json"},
			{"trend", "--output", "csv"},
		},
	}

	if err := checkPrerequisites(config); err != nil {
		fmt.Printf("Prerequisites check failed: %v\n", err)
		os.Exit(1)
	}

	results := runBenchmarks(config)

	if err := saveResults(results); err != nil {
		fmt.Printf("Failed to save results: %v\n", err)
		os.Exit(1)
	}

	printSummary(results)
}

// checkPrerequisites verifies that the readiness binary exists and the work dir is usable.
func checkPrerequisites(config BenchmarkConfig) error {
	if _, err := exec.LookPath("readiness"); err != nil {
		return fmt.Errorf("readiness binary not found in PATH")
	}
	return os.MkdirAll(config.WorkDir, 0o755)
}

// writeCheckIn writes the drainage check-in used for every run.
func writeCheckIn(dir string) (string, error) {
	path := filepath.Join(dir, "checkin.yaml")
	content := `metrics:
  bowel_movements: 8
  hydration: 8
  urine_color: 7
  energy: 7
  sleep: 8
  skin_clarity: 7
  lymph_movement: 8
  liver_support: 8
  mental_clarity: 7
  sweating: 6
`
	return path, os.WriteFile(path, []byte(content), 0o644)
}

// seedHistory records one check-in per day ending yesterday.
func seedHistory(dbPath, input string, days int) error {
	_ = os.Remove(dbPath)
	for d := days; d >= 1; d-- {
		cmd := exec.Command("readiness", "drainage", "--input", input, "--output", "json",
			"--history-backend", "sqlite", "--history-db-connect", dbPath,
			"--date", fmt.Sprintf("%d days ago", d))
		if output, err := cmd.CombinedOutput(); err != nil {
			return fmt.Errorf("seeding day -%d failed: %w\n%s", d, err, output)
		}
	}
	return nil
}

// runBenchmarks executes every command against every history size.
func runBenchmarks(config BenchmarkConfig) []BenchmarkResult {
	var results []BenchmarkResult

	input, err := writeCheckIn(config.WorkDir)
	if err != nil {
		fmt.Printf("Failed to write check-in: %v\n", err)
		return nil
	}

	fmt.Printf("Starting benchmark: %d history sizes, %v timeout, no-history: %d runs, history: %d runs\n",
		len(config.HistorySizes), config.Timeout, config.NoHistoryRuns, config.HistoryRuns)

	for _, days := range config.HistorySizes {
		dbPath := filepath.Join(config.WorkDir, fmt.Sprintf("history_%d.db", days))
		fmt.Printf("Seeding %d days of history\n", days)
		if err := seedHistory(dbPath, input, days); err != nil {
			fmt.Printf("Warning: %v\n", err)
			continue
		}

		for _, command := range config.Commands {
			args := command
			if command[0] == "drainage" {
				args = append(append([]string{}, command...), "--input", input)
			}
			results = append(results, runBenchmarkSuite(config, days, dbPath, args))
		}
	}

	return results
}

// runBenchmarkSuite runs both no-history and history benchmarks for a command.
func runBenchmarkSuite(config BenchmarkConfig, days int, dbPath string, args []string) BenchmarkResult {
	fmt.Printf("Running %s with %d days\n", args[0], days)

	runPhase := func(backendArgs []string, numRuns int, phaseName string) (coldTime float64, avgTime string) {
		fmt.Printf("  %s phase (%d runs)\n", phaseName, numRuns)
		cold, times := runBenchmark(config, append(append([]string{}, args...), backendArgs...), numRuns)
		if len(times) == 0 {
			avgTime = "TIMEOUT"
		} else {
			var sum float64
			for _, t := range times {
				sum += t
			}
			avgTime = fmt.Sprintf("%.3fs", sum/float64(len(times)))
		}
		return cold, avgTime
	}

	_, noHistoryAvg := runPhase([]string{"--history-backend", "none"}, config.NoHistoryRuns, "No-history")
	coldTime, warmAvg := runPhase([]string{"--history-backend", "sqlite", "--history-db-connect", dbPath}, config.HistoryRuns, "History")

	coldTimeStr := "TIMEOUT"
	if coldTime > 0 {
		coldTimeStr = fmt.Sprintf("%.3fs", coldTime)
	}

	fmt.Printf("  No-history average: %s, Cold time: %s, Warm average: %s\n", noHistoryAvg, coldTimeStr, warmAvg)

	return BenchmarkResult{
		HistoryDays:   days,
		Command:       args[0],
		NoHistoryTime: noHistoryAvg,
		ColdTime:      coldTimeStr,
		WarmTime:      warmAvg,
	}
}

// runBenchmark executes a readiness command several times and returns cold time and warm times.
// The none backend has no gate or trend data, so failures there are not timed.
func runBenchmark(config BenchmarkConfig, args []string, numRuns int) (coldTime float64, warmTimes []float64) {
	var times []float64
	for run := 1; run <= numRuns; run++ {
		start := time.Now()
		cmd := exec.Command("readiness", args...)

		done := make(chan error, 1)
		go func() {
			_, err := cmd.CombinedOutput()
			done <- err
		}()

		select {
		case err := <-done:
			if err == nil {
				times = append(times, time.Since(start).Seconds())
			}
		case <-time.After(config.Timeout):
			_ = cmd.Process.Kill()
		}
	}

	if len(times) > 0 {
		coldTime = times[0]
		warmTimes = times[1:]
	}
	return
}

// saveResults writes benchmark results to a timestamped CSV file.
func saveResults(results []BenchmarkResult) error {
	timestamp := time.Now().Format("20060102_150405")
	filename := filepath.Join(os.TempDir(), fmt.Sprintf("readiness_benchmark_%s.csv", timestamp))

	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil {
			fmt.Printf("Warning: failed to close file %s: %v\n", filename, closeErr)
		}
	}()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	if err := writer.Write([]string{"history_days", "cmd", "no_history_avg", "cold_time", "warm_avg"}); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}
	for _, r := range results {
		if err := writer.Write([]string{strconv.Itoa(r.HistoryDays), r.Command, r.NoHistoryTime, r.ColdTime, r.WarmTime}); err != nil {
			return fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	fmt.Printf("Results saved to %s\n", filename)
	return nil
}

// printSummary displays the final benchmark results summary.
func printSummary(results []BenchmarkResult) {
	fmt.Printf("Benchmark complete\n")
	for _, command := range []string{"drainage", "gate", "trend"} {
		fmt.Printf("%s:\n", command)
		for _, r := range results {
			if r.Command == command {
				fmt.Printf("  %4d days: No-history: %s, Cold: %s, Warm: %s\n", r.HistoryDays, r.NoHistoryTime, r.ColdTime, r.WarmTime)
			}
		}
	}
}
