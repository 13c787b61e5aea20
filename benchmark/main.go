// Package main provides a performance benchmarking tool for the moodtrack CLI.
// It seeds SQLite stores of increasing size, runs each read command several times,
// treating the first successful run as cold and averaging the rest as warm,
// and writes CSV output for performance analysis and documentation.
//
// Prerequisites:
// - moodtrack binary installed and available in PATH
//
// Usage: go run benchmark/main.go [work-dir]
//
//	work-dir: Directory for the generated SQLite databases (default: a temp dir)
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

// BenchmarkResult holds the cold run and the average of warm runs for one command.
type BenchmarkResult struct {
	Rows     int
	Command  string
	ColdTime string
	WarmTime string
}

// BenchmarkConfig holds configuration for the benchmark run.
type BenchmarkConfig struct {
	WorkDir  string
	Timeout  time.Duration
	Runs     int
	Sizes    []int
	Commands map[string][]string
}

// commandOrder keeps the CSV and summary stable.
var commandOrder = []string{"entries", "trend", "summary", "overview", "report"}

func main() {
	workDir := ""
	switch len(os.Args) {
	case 1:
		dir, err := os.MkdirTemp("", "moodtrack-bench-*")
		if err != nil {
			fmt.Printf("Failed to create work dir: %v\n", err)
			os.Exit(1)
		}
		defer func() { _ = os.RemoveAll(dir) }()
		workDir = dir
	case 2:
		workDir = os.Args[1]
	default:
		fmt.Printf("Usage: %s [work-dir]\n", os.Args[0])
		os.Exit(1)
	}

	config := BenchmarkConfig{
		WorkDir: workDir,
		Timeout: 2 * time.Minute,
		Runs:    5,
		Sizes:   []int{30, 365, 3650},
		Commands: map[string][]string{
			"entries":  {"entries", "--output", "csv"},
			"trend":    {"trend", "--window", "30", "--output", "csv"},
			"summary":  {"summary", "--output", "json"},
			"overview": {"overview", "--output", "json"},
			"report":   {"report", "--report-dir", filepath.Join(workDir, "reports")},
		},
	}

	if err := checkPrerequisites(config); err != nil {
		fmt.Printf("Prerequisites check failed: %v\n", err)
		os.Exit(1)
	}

	results, err := runBenchmarks(config)
	if err != nil {
		fmt.Printf("Benchmark failed: %v\n", err)
		os.Exit(1)
	}

	if err := saveResults(results); err != nil {
		fmt.Printf("Failed to save results: %v\n", err)
		os.Exit(1)
	}

	printSummary(results)
}

// checkPrerequisites verifies that the moodtrack binary and work dir exist
func checkPrerequisites(config BenchmarkConfig) error {
	if _, err := exec.LookPath("moodtrack"); err != nil {
		return fmt.Errorf("moodtrack binary not found in PATH")
	}
	if _, err := os.Stat(config.WorkDir); os.IsNotExist(err) {
		return fmt.Errorf("work dir %s not found", config.WorkDir)
	}
	return nil
}

// runBenchmarks seeds one store per size and times every command against it
func runBenchmarks(config BenchmarkConfig) ([]BenchmarkResult, error) {
	var results []BenchmarkResult

	fmt.Printf("Starting benchmark: sizes %v, %v timeout, %d runs per command\n",
		config.Sizes, config.Timeout, config.Runs)

	for _, rows := range config.Sizes {
		dbPath := filepath.Join(config.WorkDir, fmt.Sprintf("bench_%d.db", rows))
		_ = os.Remove(dbPath)

		fmt.Printf("Seeding %d rows into %s\n", rows, dbPath)
		seed := exec.Command("moodtrack", "seed", "--rows", strconv.Itoa(rows))
		seed.Env = benchEnv(dbPath)
		if output, err := seed.CombinedOutput(); err != nil {
			return nil, fmt.Errorf("seed %d rows: %w\nOutput: %s", rows, err, output)
		}

		for _, command := range commandOrder {
			results = append(results, runBenchmarkSuite(config, rows, dbPath, command))
		}
	}

	return results, nil
}

func benchEnv(dbPath string) []string {
	return append(os.Environ(),
		"MOODTRACK_DB_BACKEND=sqlite",
		"MOODTRACK_DB_CONNECT="+dbPath,
	)
}

// runBenchmarkSuite runs one command repeatedly and summarizes the timings
func runBenchmarkSuite(config BenchmarkConfig, rows int, dbPath, command string) BenchmarkResult {
	fmt.Printf("Running %s on %d rows (%d runs)\n", command, rows, config.Runs)

	coldTime, warmTimes := runBenchmark(config, dbPath, config.Commands[command])

	coldTimeStr := "TIMEOUT"
	if coldTime > 0 {
		coldTimeStr = fmt.Sprintf("%.3fs", coldTime)
	}
	warmAvg := "TIMEOUT"
	if len(warmTimes) > 0 {
		var sum float64
		for _, t := range warmTimes {
			sum += t
		}
		warmAvg = fmt.Sprintf("%.3fs", sum/float64(len(warmTimes)))
	}

	fmt.Printf("  Cold time: %s, Warm average: %s\n", coldTimeStr, warmAvg)

	return BenchmarkResult{
		Rows:     rows,
		Command:  command,
		ColdTime: coldTimeStr,
		WarmTime: warmAvg,
	}
}

// runBenchmark executes a moodtrack command multiple times and returns cold time and warm times
func runBenchmark(config BenchmarkConfig, dbPath string, args []string) (coldTime float64, warmTimes []float64) {
	var times []float64
	for run := 1; run <= config.Runs; run++ {
		start := time.Now()

		cmd := exec.Command("moodtrack", args...)
		cmd.Env = benchEnv(dbPath)

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

// saveResults writes benchmark results to a timestamped CSV file
func saveResults(results []BenchmarkResult) error {
	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("/tmp/moodtrack_benchmark_%s.csv", timestamp)

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

	if err := writer.Write([]string{"rows", "cmd", "cold_time", "warm_avg"}); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, result := range results {
		if err := writer.Write([]string{strconv.Itoa(result.Rows), result.Command, result.ColdTime, result.WarmTime}); err != nil {
			return fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	fmt.Printf("Results saved to %s\n", filename)
	return nil
}

// printSummary displays the final benchmark results summary
func printSummary(results []BenchmarkResult) {
	fmt.Printf("Benchmark complete\n")
	for _, command := range commandOrder {
		fmt.Printf("%s:\n", command)
		for _, result := range results {
			if result.Command == command {
				fmt.Printf("  %6d rows: Cold: %s, Warm: %s\n", result.Rows, result.ColdTime, result.WarmTime)
			}
		}
	}
}
