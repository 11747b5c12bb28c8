package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"kvbench/benchmark"
	"kvbench/config"
	"kvbench/report"
	"kvbench/sysinfo"
)

func main() {
	// Define command-line flags
	endpoint := flag.String("endpoint", "", "Base URL of the key-value endpoint, e.g. http://host:port")
	requests := flag.Int("requests", 10000, "Total number of PUT+GET request pairs")
	concurrency := flag.Int("concurrency", 1, "Number of concurrent workers")
	keyLength := flag.Int("key-length", 10, "Length of generated keys")
	valueLength := flag.Int("value-length", 20, "Length of generated values")
	requestTimeout := flag.Duration("request-timeout", 30*time.Second, "Per-request timeout")
	duration := flag.Duration("duration", 0, "Optional deadline for the whole run (0 means none)")
	distribution := flag.String("distribution", config.DistributionLegacy,
		"How to split requests across workers: legacy (drop the division remainder) or strict (spread it)")
	seed := flag.Int64("seed", 0, "Workload RNG base seed (0 means random)")
	logFile := flag.String("log-file", "", "Transport-error log file (default: timestamped pair_logs file)")
	logStderr := flag.Bool("log-stderr", false, "Log transport errors to stderr instead of a file")
	quiet := flag.Bool("quiet", false, "Suppress the progress bar")

	flag.Parse()

	cfg := config.BenchmarkConfig{
		Endpoint:       *endpoint,
		RequestPairs:   *requests,
		Concurrency:    *concurrency,
		KeyLength:      *keyLength,
		ValueLength:    *valueLength,
		RequestTimeout: *requestTimeout,
		Duration:       *duration,
		Distribution:   *distribution,
		Seed:           *seed,
		LogPath:        *logFile,
		LogStderr:      *logStderr,
		Quiet:          *quiet,
	}

	// Validate before any worker starts
	if err := cfg.Validate(); err != nil {
		fmt.Printf("Error: invalid configuration: %v\n", err)
		os.Exit(1)
	}

	// Set system resource limits for high-performance testing
	if err := benchmark.SetMaxResources(); err != nil {
		fmt.Printf("Warning: could not adjust system resources: %v\n", err)
	}

	fmt.Printf("Host: %s\n", sysinfo.Collect())
	fmt.Printf("Performing PUT/GET pair benchmark against %s...\n", cfg.Endpoint)

	summary, err := benchmark.RunPairBenchmark(cfg)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	report.DisplayResults(summary)
}
