package report

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/fatih/color"
)

// Summary is the final aggregated state of a run: merged counters, the
// concurrency level, and the wall-clock span around the worker spawn/join.
type Summary struct {
	Concurrency int
	Elapsed     time.Duration
	PutTotal    int64
	PutSuccess  int64
	GetTotal    int64
	GetSuccess  int64
}

// TotalRequests returns the combined PUT and GET attempt count.
func (s Summary) TotalRequests() int64 {
	return s.PutTotal + s.GetTotal
}

// Throughput returns requests per second over the elapsed span.
func (s Summary) Throughput() float64 {
	if s.Elapsed <= 0 {
		return 0
	}
	return float64(s.TotalRequests()) / s.Elapsed.Seconds()
}

// Write renders the summary to w.
func Write(w io.Writer, s Summary) {
	fmt.Fprintln(w, "\nBenchmark Results")
	fmt.Fprintln(w, "=================")
	writeBody(w, s)
}

// DisplayResults shows the summary of benchmark performance on stdout.
func DisplayResults(s Summary) {
	title := color.New(color.FgGreen, color.Bold)
	title.Println("\nBenchmark Results")
	title.Println("=================")
	writeBody(os.Stdout, s)
}

func writeBody(w io.Writer, s Summary) {
	fmt.Fprintf(w, "Total Requests: %d\n", s.TotalRequests())
	fmt.Fprintf(w, "Concurrency Level: %d\n", s.Concurrency)
	fmt.Fprintf(w, "Time taken for tests: %.2f seconds\n", s.Elapsed.Seconds())
	fmt.Fprintf(w, "Requests per second: %.2f req/sec\n\n", s.Throughput())
	fmt.Fprintln(w, "Detailed Results:")
	fmt.Fprintf(w, "PUT Requests: %d | Successful PUTs: %d\n", s.PutTotal, s.PutSuccess)
	fmt.Fprintf(w, "GET Requests: %d | Successful GETs: %d\n", s.GetTotal, s.GetSuccess)
}
