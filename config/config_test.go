package config

import (
	"testing"
	"time"
)

func validConfig() BenchmarkConfig {
	cfg := DefaultConfig()
	cfg.Endpoint = "http://localhost:5380"
	return cfg
}

func TestValidateAcceptsDefaults(t *testing.T) {
	if err := validConfig().Validate(); err != nil {
		t.Fatalf("valid config rejected: %v", err)
	}
}

func TestValidateRejectsBadConfigs(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*BenchmarkConfig)
	}{
		{"empty endpoint", func(c *BenchmarkConfig) { c.Endpoint = "" }},
		{"bad scheme", func(c *BenchmarkConfig) { c.Endpoint = "ftp://host:21" }},
		{"no host", func(c *BenchmarkConfig) { c.Endpoint = "http://" }},
		{"zero requests", func(c *BenchmarkConfig) { c.RequestPairs = 0 }},
		{"negative requests", func(c *BenchmarkConfig) { c.RequestPairs = -5 }},
		{"zero concurrency", func(c *BenchmarkConfig) { c.Concurrency = 0 }},
		{"zero key length", func(c *BenchmarkConfig) { c.KeyLength = 0 }},
		{"zero value length", func(c *BenchmarkConfig) { c.ValueLength = 0 }},
		{"negative timeout", func(c *BenchmarkConfig) { c.RequestTimeout = -time.Second }},
		{"negative duration", func(c *BenchmarkConfig) { c.Duration = -time.Second }},
		{"unknown distribution", func(c *BenchmarkConfig) { c.Distribution = "round-robin" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Errorf("expected validation error, got nil")
			}
		})
	}
}
