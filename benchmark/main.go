// Package main provides a performance benchmarking tool for the covidstore CLI.
// It measures how much the snapshot cache saves across command types,
// running each command multiple times, treating the first successful run as cold and averaging the rest as warm,
// generating CSV output for performance analysis and documentation.
//
// Prerequisites:
// - covidstore binary installed and available in PATH
// - Network access to the upstream dataset publisher
//
// Usage: go run benchmark/main.go
package main

import (
	"encoding/csv"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"time"
)

// BenchmarkResult holds the result of a benchmark run (no-cache average, cold run and average of warm runs).
type BenchmarkResult struct {
	Command     string
	NoCacheTime string
	ColdTime    string
	WarmTime    string
}

// BenchmarkCommand is one CLI invocation to measure.
type BenchmarkCommand struct {
	Name string
	Args []string
}

// BenchmarkConfig holds configuration for the benchmark run.
type BenchmarkConfig struct {
	Timeout     time.Duration
	NoCacheRuns int
	CacheRuns   int
	Commands    []BenchmarkCommand
}

func main() {
	config := BenchmarkConfig{
		Timeout:     5 * time.Minute,
		NoCacheRuns: 3,
		CacheRuns:   4,
		Commands: []BenchmarkCommand{
			{Name: "locations", Args: []string{"locations"}},
			{Name: "series-country", Args: []string{"series", "Italy"}},
			{Name: "series-province", Args: []string{"series", "Canada (Ontario)"}},
			{Name: "series-all-json", Args: []string{"series", "--output", "json"}},
		},
	}

	if err := checkPrerequisites(); err != nil {
		fmt.Printf("Prerequisites check failed: %v\n", err)
		os.Exit(1)
	}

	// Clear the cache using covidstore cache clear
	fmt.Printf("Clearing cache...\n")
	clearCmd := exec.Command("covidstore", "cache", "clear")
	if output, err := clearCmd.CombinedOutput(); err != nil {
		fmt.Printf("Warning: failed to clear cache: %v\nOutput: %s\n", err, string(output))
	} else {
		fmt.Printf("Cache cleared successfully\n")
	}

	results := runBenchmarks(config)

	if err := saveResults(results); err != nil {
		fmt.Printf("Failed to save results: %v\n", err)
		os.Exit(1)
	}

	printSummary(results)
}

// checkPrerequisites verifies that the covidstore binary exists
func checkPrerequisites() error {
	if _, err := exec.LookPath("covidstore"); err != nil {
		return fmt.Errorf("covidstore binary not found in PATH")
	}
	return nil
}

// runBenchmarks executes all benchmark tests across configured commands
func runBenchmarks(config BenchmarkConfig) []BenchmarkResult {
	var results []BenchmarkResult

	fmt.Printf("Starting benchmark: %d commands, %v timeout, no-cache: %d runs, cache: %d runs\n",
		len(config.Commands), config.Timeout, config.NoCacheRuns, config.CacheRuns)

	for _, command := range config.Commands {
		results = append(results, runBenchmarkSuite(config, command))
	}

	return results
}

// runBenchmarkSuite runs both no-cache and cache benchmarks for a command
func runBenchmarkSuite(config BenchmarkConfig, command BenchmarkCommand) BenchmarkResult {
	fmt.Printf("Running %s\n", command.Name)

	// Helper to run a benchmark phase
	runPhase := func(cacheBackend string, numRuns int, phaseName string) (coldTime float64, avgTime string) {
		fmt.Printf("  %s phase (%d runs)\n", phaseName, numRuns)
		cold, times := runBenchmark(config, command, cacheBackend, numRuns)
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

	// Phase 1: No-cache runs (every run downloads the full dataset)
	_, noCacheAvg := runPhase("none", config.NoCacheRuns, "No-cache")

	// Phase 2: Cache runs (first run is cold, the rest hit the snapshot)
	coldTime, warmAvg := runPhase("sqlite", config.CacheRuns, "Cache")

	coldTimeStr := "TIMEOUT"
	if coldTime > 0 {
		coldTimeStr = fmt.Sprintf("%.3fs", coldTime)
	}

	fmt.Printf("  No-cache average: %s, Cold time: %s, Warm average: %s\n", noCacheAvg, coldTimeStr, warmAvg)

	return BenchmarkResult{
		Command:     command.Name,
		NoCacheTime: noCacheAvg,
		ColdTime:    coldTimeStr,
		WarmTime:    warmAvg,
	}
}

// runBenchmark executes a covidstore command multiple times with the specified cache backend and returns cold time and warm times
func runBenchmark(config BenchmarkConfig, command BenchmarkCommand, cacheBackend string, numRuns int) (coldTime float64, warmTimes []float64) {
	args := append([]string{}, command.Args...)
	args = append(args, "--cache-backend", cacheBackend)

	// Cache misses between no-cache runs must not be poisoned by a leftover
	// snapshot from a previous phase.
	if cacheBackend == "sqlite" {
		_ = exec.Command("covidstore", "cache", "clear").Run()
	}

	var times []float64
	for run := 1; run <= numRuns; run++ {
		start := time.Now()

		cmd := exec.Command("covidstore", args...)

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
	return strings.Contains(outputStr, "Cache backend:") ||
		strings.Contains(outputStr, "\"location\"")
}

// saveResults writes benchmark results to a CSV file
func saveResults(results []BenchmarkResult) error {
	file, err := os.Create("benchmark_results.csv")
	if err != nil {
		return err
	}
	defer func() { _ = file.Close() }()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	if err := writer.Write([]string{"command", "no_cache_avg", "cold_time", "warm_avg"}); err != nil {
		return err
	}
	for _, r := range results {
		if err := writer.Write([]string{r.Command, r.NoCacheTime, r.ColdTime, r.WarmTime}); err != nil {
			return err
		}
	}
	return nil
}

// printSummary prints a human-readable summary of all results
func printSummary(results []BenchmarkResult) {
	fmt.Println("\nBenchmark summary:")
	for _, r := range results {
		fmt.Printf("  %-20s no-cache=%s cold=%s warm=%s\n",
			r.Command, r.NoCacheTime, r.ColdTime, r.WarmTime)
	}
	fmt.Println("\nResults written to benchmark_results.csv")
}
