package report

import (
	"bytes"
	"fmt"
	"strings"
	"testing"
	"time"
)

func TestSummaryDerivedMetrics(t *testing.T) {
	s := Summary{
		Concurrency: 4,
		Elapsed:     2 * time.Second,
		PutTotal:    100,
		PutSuccess:  90,
		GetTotal:    100,
		GetSuccess:  100,
	}

	if got := s.TotalRequests(); got != 200 {
		t.Errorf("TotalRequests() = %d, want 200", got)
	}
	if got := s.Throughput(); got != 100 {
		t.Errorf("Throughput() = %f, want 100", got)
	}
}

func TestThroughputZeroForEmptyElapsed(t *testing.T) {
	if got := (Summary{PutTotal: 10}).Throughput(); got != 0 {
		t.Errorf("Throughput() = %f, want 0 when elapsed is zero", got)
	}
}

func TestWriteRendersAllFields(t *testing.T) {
	s := Summary{
		Concurrency: 3,
		Elapsed:     1500 * time.Millisecond,
		PutTotal:    30,
		PutSuccess:  28,
		GetTotal:    30,
		GetSuccess:  30,
	}

	var buf bytes.Buffer
	Write(&buf, s)
	out := buf.String()

	for _, want := range []string{
		"Total Requests: 60",
		"Concurrency Level: 3",
		"Time taken for tests: 1.50 seconds",
		"Requests per second: 40.00 req/sec",
		"PUT Requests: 30 | Successful PUTs: 28",
		"GET Requests: 30 | Successful GETs: 30",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

// The printed requests-per-second figure must equal the rate recomputed from
// the same counters and elapsed time the summary reports.
func TestWriteThroughputMatchesCounters(t *testing.T) {
	s := Summary{
		Concurrency: 2,
		Elapsed:     1337 * time.Millisecond,
		PutTotal:    123,
		PutSuccess:  120,
		GetTotal:    123,
		GetSuccess:  99,
	}

	var buf bytes.Buffer
	Write(&buf, s)

	recomputed := float64(s.PutTotal+s.GetTotal) / s.Elapsed.Seconds()
	want := fmt.Sprintf("Requests per second: %.2f req/sec", recomputed)
	if !strings.Contains(buf.String(), want) {
		t.Errorf("output missing %q:\n%s", want, buf.String())
	}
}
