// Package main provides a performance benchmarking tool for the Synthcast CLI.
// It measures execution times across different series lengths and command types,
// running each test multiple times, treating the first successful run as cold and averaging the rest as warm,
// generating CSV output for performance analysis and documentation.
//
// Prerequisites:
// - synthcast binary installed and available in PATH
//
// Usage: go run benchmark/main.go
package main

import (
	"encoding/csv"
	"fmt"
	"os"
	"os/exec"
	"strconv"
	"strings"
	"time"
)

// BenchmarkResult holds the result of a benchmark run (no-cache average, cold run and average of warm runs).
type BenchmarkResult struct {
	Scenario    string
	Command     string
	NoCacheTime string
	ColdTime    string
	WarmTime    string
}

// BenchmarkScenario describes one series shape to benchmark against.
type BenchmarkScenario struct {
	Name   string
	Length int
	Split  int
	Epochs int
}

// BenchmarkConfig holds configuration for the benchmark run.
type BenchmarkConfig struct {
	Timeout     time.Duration
	NoCacheRuns int
	CacheRuns   int
	Scenarios   []BenchmarkScenario
}

func main() {
	config := BenchmarkConfig{
		Timeout:     5 * time.Minute,
		NoCacheRuns: 3,
		CacheRuns:   4,
		Scenarios: []BenchmarkScenario{
			{Name: "small", Length: 1_000, Split: 800, Epochs: 10},
			{Name: "medium", Length: 10_000, Split: 8_000, Epochs: 10},
			{Name: "large", Length: 100_000, Split: 80_000, Epochs: 5},
			{Name: "huge", Length: 1_000_000, Split: 800_000, Epochs: 2},
		},
	}

	if err := checkPrerequisites(); err != nil {
		fmt.Printf("Prerequisites not met: %v\n", err)
		os.Exit(1)
	}

	// Clear the run store so every cold run really is cold
	fmt.Printf("Clearing run store...\n")
	clearCmd := exec.Command("synthcast", "store", "clear")
	if output, err := clearCmd.CombinedOutput(); err != nil {
		fmt.Printf("Warning: failed to clear run store: %v\nOutput: %s\n", err, string(output))
	} else {
		fmt.Printf("Run store cleared successfully\n")
	}

	results := runBenchmarks(config)

	if err := saveResults(results); err != nil {
		fmt.Printf("Failed to save results: %v\n", err)
		os.Exit(1)
	}

	printSummary(results)
}

// checkPrerequisites verifies that the synthcast binary is installed
func checkPrerequisites() error {
	if _, err := exec.LookPath("synthcast"); err != nil {
		return fmt.Errorf("synthcast binary not found in PATH")
	}
	return nil
}

// runBenchmarks executes all benchmark tests across configured scenarios
func runBenchmarks(config BenchmarkConfig) []BenchmarkResult {
	var results []BenchmarkResult

	fmt.Printf("Starting benchmark: %d scenarios, %v timeout, no-cache: %d runs, cache: %d runs\n",
		len(config.Scenarios), config.Timeout, config.NoCacheRuns, config.CacheRuns)

	for _, scenario := range config.Scenarios {
		fmt.Printf("Benchmarking %s (length=%d)\n", scenario.Name, scenario.Length)

		commonArgs := []string{
			"--length", strconv.Itoa(scenario.Length),
			"--split", strconv.Itoa(scenario.Split),
			"--period", "365",
		}

		// Baseline forecasts only
		result := runBenchmarkSuite(config, scenario.Name, "baselines", "baseline forecasts", commonArgs)
		results = append(results, result)

		// Model training plus the naive reference
		trainArgs := append([]string{"--epochs", strconv.Itoa(scenario.Epochs)}, commonArgs...)
		desc := fmt.Sprintf("model training (%d epochs)", scenario.Epochs)
		result = runBenchmarkSuite(config, scenario.Name, "train", desc, trainArgs)
		results = append(results, result)

		// Full method comparison
		result = runBenchmarkSuite(config, scenario.Name, "compare", "method comparison", trainArgs)
		results = append(results, result)
	}

	return results
}

// runBenchmarkSuite runs both no-cache and cache benchmarks for a command
func runBenchmarkSuite(config BenchmarkConfig, scenario, command, description string, extraArgs []string) BenchmarkResult {
	fmt.Printf("Running %s on %s\n", description, scenario)

	// Helper to run a benchmark phase
	runPhase := func(storeBackend string, numRuns int, phaseName string) (coldTime float64, avgTime string) {
		fmt.Printf("  %s phase (%d runs)\n", phaseName, numRuns)
		cold, times := runBenchmark(config, command, extraArgs, storeBackend, numRuns)
		if len(times) == 0 {
			avgTime = "TIMEOUT"
		} else {
			var sum float64
			for _, t := range times {
				sum += t
			}
			avg := sum / float64(len(times))
			avgTime = fmt.Sprintf("%.3fs", avg)
		}
		return cold, avgTime
	}

	// Phase 1: No-cache runs
	_, noCacheAvg := runPhase("none", config.NoCacheRuns, "No-cache")

	// Phase 2: Cache runs
	coldTime, warmAvg := runPhase("sqlite", config.CacheRuns, "Cache")

	coldTimeStr := "TIMEOUT"
	if coldTime > 0 {
		coldTimeStr = fmt.Sprintf("%.3fs", coldTime)
	}

	fmt.Printf("  No-cache average: %s, Cold time: %s, Warm average: %s\n", noCacheAvg, coldTimeStr, warmAvg)

	return BenchmarkResult{
		Scenario:    scenario,
		Command:     command,
		NoCacheTime: noCacheAvg,
		ColdTime:    coldTimeStr,
		WarmTime:    warmAvg,
	}
}

// runBenchmark executes a synthcast command multiple times with the specified store backend and returns cold time and warm times
func runBenchmark(config BenchmarkConfig, command string, extraArgs []string, storeBackend string, numRuns int) (coldTime float64, warmTimes []float64) {
	args := []string{command, "--store-backend", storeBackend}
	args = append(args, extraArgs...)

	var times []float64
	for run := 1; run <= numRuns; run++ {
		start := time.Now()

		cmd := exec.Command("synthcast", args...)

		done := make(chan bool)
		var output []byte
		var cmdErr error

		go func() {
			output, cmdErr = cmd.CombinedOutput()
			done <- true
		}()

		select {
		case <-done:
			if cmdErr == nil && isSuccess(output) {
				times = append(times, time.Since(start).Seconds())
			}
		case <-time.After(config.Timeout):
			// Timeout - don't add to times
		}
	}

	if len(times) > 0 {
		coldTime = times[0]
		warmTimes = times[1:]
	}
	return
}

// isSuccess checks if command output indicates successful completion
func isSuccess(output []byte) bool {
	outputStr := string(output)
	return strings.Contains(outputStr, "Forecast run over") &&
		strings.Contains(outputStr, "validation points")
}

// saveResults writes benchmark results to a timestamped CSV file
func saveResults(results []BenchmarkResult) error {
	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("/tmp/synthcast_benchmark_%s.csv", timestamp)

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

	// Write header
	if err := writer.Write([]string{"scenario", "cmd", "no_cache_avg", "cold_time", "warm_avg"}); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	// Write results
	for _, result := range results {
		if err := writer.Write([]string{result.Scenario, result.Command, result.NoCacheTime, result.ColdTime, result.WarmTime}); err != nil {
			return fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	fmt.Printf("Results saved to %s\n", filename)
	return nil
}

// printSummary displays the final benchmark results summary
func printSummary(results []BenchmarkResult) {
	fmt.Printf("Benchmark complete\n")

	for _, command := range []string{"baselines", "train", "compare"} {
		fmt.Printf("%s:\n", command)
		for _, result := range results {
			if result.Command != command {
				continue
			}
			fmt.Printf("  %-8s no-cache=%s cold=%s warm=%s\n",
				result.Scenario, result.NoCacheTime, result.ColdTime, result.WarmTime)
		}
	}
}
