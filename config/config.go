package config

import (
	"fmt"
	"net/url"
	"time"
)

// Distribution policies for splitting the total request-pair count across workers.
const (
	// DistributionLegacy assigns requests/concurrency pairs to every worker,
	// silently dropping the remainder of the integer division.
	DistributionLegacy = "legacy"
	// DistributionStrict spreads the remainder across the first workers so
	// exactly the requested number of pairs is executed.
	DistributionStrict = "strict"
)

// BenchmarkConfig holds the parameters for a PUT/GET pair benchmark run
type BenchmarkConfig struct {
	Endpoint       string        // Base URL of the key-value endpoint, e.g. http://host:port
	RequestPairs   int           // Total number of PUT+GET pairs to execute
	Concurrency    int           // Number of concurrent workers
	KeyLength      int           // Length of generated keys
	ValueLength    int           // Length of generated values
	RequestTimeout time.Duration // Per-request timeout
	Duration       time.Duration // Optional whole-run deadline (0 = none)
	Distribution   string        // Remainder policy: legacy or strict
	Seed           int64         // Workload RNG base seed (0 = random per worker)
	LogPath        string        // Transport-error log file ("" = timestamped default)
	LogStderr      bool          // Route transport errors to stderr instead of a file
	Quiet          bool          // Suppress the progress bar
}

// DefaultConfig returns a config mirroring the defaults of the CLI flags.
func DefaultConfig() BenchmarkConfig {
	return BenchmarkConfig{
		RequestPairs:   10000,
		Concurrency:    1,
		KeyLength:      10,
		ValueLength:    20,
		RequestTimeout: 30 * time.Second,
		Distribution:   DistributionLegacy,
	}
}

// Validate checks the config before any worker starts. All violations are
// startup errors; nothing here is recoverable mid-run.
func (c BenchmarkConfig) Validate() error {
	if c.Endpoint == "" {
		return fmt.Errorf("endpoint must not be empty")
	}
	u, err := url.Parse(c.Endpoint)
	if err != nil {
		return fmt.Errorf("invalid endpoint %q: %v", c.Endpoint, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("endpoint %q must use http or https", c.Endpoint)
	}
	if u.Host == "" {
		return fmt.Errorf("endpoint %q has no host", c.Endpoint)
	}
	if c.RequestPairs < 1 {
		return fmt.Errorf("requests must be at least 1, got %d", c.RequestPairs)
	}
	if c.Concurrency < 1 {
		return fmt.Errorf("concurrency must be at least 1, got %d", c.Concurrency)
	}
	if c.KeyLength < 1 {
		return fmt.Errorf("key length must be at least 1, got %d", c.KeyLength)
	}
	if c.ValueLength < 1 {
		return fmt.Errorf("value length must be at least 1, got %d", c.ValueLength)
	}
	if c.RequestTimeout < 0 {
		return fmt.Errorf("request timeout must not be negative, got %s", c.RequestTimeout)
	}
	if c.Duration < 0 {
		return fmt.Errorf("duration must not be negative, got %s", c.Duration)
	}
	if c.Distribution != DistributionLegacy && c.Distribution != DistributionStrict {
		return fmt.Errorf("distribution must be %q or %q, got %q",
			DistributionLegacy, DistributionStrict, c.Distribution)
	}
	return nil
}
