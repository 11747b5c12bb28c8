package benchmark

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math/rand"
	"net/http"
	"os"
	"strings"
	"sync"
	"time"

	"kvbench/config"
	"kvbench/progress"
	"kvbench/report"
)

// putPayload is the JSON body sent with every PUT: {"value": "<string>"}.
type putPayload struct {
	Value string `json:"value"`
}

// errorLog serializes transport-failure lines from concurrent workers.
type errorLog struct {
	mu sync.Mutex
	w  io.Writer
}

func (l *errorLog) printf(format string, args ...interface{}) {
	l.mu.Lock()
	fmt.Fprintf(l.w, format, args...)
	l.mu.Unlock()
}

// openErrorLog picks the destination for transport-failure lines: stderr,
// the configured path, or a timestamped default file.
func openErrorLog(cfg config.BenchmarkConfig) (*errorLog, func(), error) {
	if cfg.LogStderr {
		return &errorLog{w: os.Stderr}, func() {}, nil
	}
	path := cfg.LogPath
	if path == "" {
		path = fmt.Sprintf("pair_logs_%s.txt", time.Now().Format("20060102_150405"))
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create log file %s: %v", path, err)
	}
	return &errorLog{w: f}, func() { f.Close() }, nil
}

// iterationPlan splits the total request-pair count across workers. Legacy
// distribution gives every worker total/workers pairs, dropping the
// remainder; strict distribution hands the remainder to the first workers.
func iterationPlan(total, workers int, distribution string) []int {
	plan := make([]int, workers)
	base := total / workers
	for i := range plan {
		plan[i] = base
	}
	if distribution == config.DistributionStrict {
		for i := 0; i < total%workers; i++ {
			plan[i]++
		}
	}
	return plan
}

// RunPairBenchmark runs the PUT/GET pair benchmark: a fixed pool of workers
// spawned together, each executing its assigned share of iterations against
// the target, joined together, with the wall-clock span measured around the
// spawn/join. The merged counters and timing come back as a report.Summary.
func RunPairBenchmark(cfg config.BenchmarkConfig) (report.Summary, error) {
	errlog, closeLog, err := openErrorLog(cfg)
	if err != nil {
		return report.Summary{}, err
	}
	defer closeLog()

	plan := iterationPlan(cfg.RequestPairs, cfg.Concurrency, cfg.Distribution)
	planned := 0
	for _, n := range plan {
		planned += n
	}

	var pbar *progress.ProgressBar
	if !cfg.Quiet {
		pbar = progress.NewProgressBar(int64(planned))
		pbar.SetCaption("Running")
	}

	// Global context handling: if a run deadline is set, use it; otherwise
	// the context only serves as the parent for per-request cancellation.
	var globalCtx context.Context
	var globalCancel context.CancelFunc
	if cfg.Duration > 0 {
		globalCtx, globalCancel = context.WithTimeout(context.Background(), cfg.Duration)
	} else {
		globalCtx, globalCancel = context.WithCancel(context.Background())
	}
	defer globalCancel()

	// Worker-local counters, merged after the join. No increment contention.
	counters := make([]Counters, cfg.Concurrency)

	var wg sync.WaitGroup
	startTime := time.Now()

	for i := 0; i < cfg.Concurrency; i++ {
		wg.Add(1)
		go func(workerID int, iterations int) {
			defer wg.Done()
			w := pairWorker{
				id:      workerID,
				cfg:     cfg,
				client:  newHTTPClient(cfg.RequestTimeout),
				rng:     NewWorkerRand(cfg.Seed, workerID),
				log:     errlog,
				pbar:    pbar,
				results: &counters[workerID],
			}
			w.run(globalCtx, iterations)
		}(i, plan[i])
	}

	wg.Wait()
	elapsed := time.Since(startTime)
	pbar.Finish()

	var merged Counters
	for i := range counters {
		merged.Merge(counters[i])
	}

	return report.Summary{
		Concurrency: cfg.Concurrency,
		Elapsed:     elapsed,
		PutTotal:    merged.PutTotal,
		PutSuccess:  merged.PutSuccess,
		GetTotal:    merged.GetTotal,
		GetSuccess:  merged.GetSuccess,
	}, nil
}

// pairWorker executes one worker's share of PUT-then-GET iterations, reusing
// a single HTTP client for all of its requests.
type pairWorker struct {
	id      int
	cfg     config.BenchmarkConfig
	client  *http.Client
	rng     *rand.Rand
	log     *errorLog
	pbar    *progress.ProgressBar
	results *Counters
}

func (w *pairWorker) run(ctx context.Context, iterations int) {
	base := strings.TrimRight(w.cfg.Endpoint, "/")

	for iter := 0; iter < iterations; iter++ {
		select {
		case <-ctx.Done():
			// Run deadline hit: return with whatever is already counted.
			return
		default:
		}

		key := RandomAlphanumeric(w.rng, w.cfg.KeyLength)
		value := RandomAlphanumeric(w.rng, w.cfg.ValueLength)
		url := base + "/" + key

		if !w.put(ctx, url, key, value) {
			continue
		}
		if !w.get(ctx, url, key) {
			continue
		}

		w.pbar.Increment()
	}
}

// put issues one PUT and records it. Returns false only on a transport
// failure, which abandons the iteration; a non-2xx response still counts as
// an attempt and the iteration proceeds to the GET.
func (w *pairWorker) put(ctx context.Context, url, key, value string) bool {
	buf := getBodyBuffer()
	if err := json.NewEncoder(buf).Encode(putPayload{Value: value}); err != nil {
		putBodyBuffer(buf)
		w.log.printf("worker %d: encoding PUT body for %s: %v\n", w.id, key, err)
		return false
	}

	// The transport owns the body once the request is handed over and may
	// still be draining it after Do returns on error paths, so the buffer
	// goes back to the pool from the body's Close, not from here.
	body := newPooledBody(buf)
	req, err := http.NewRequestWithContext(ctx, http.MethodPut, url, body)
	if err != nil {
		body.Close()
		w.log.printf("worker %d: building PUT %s: %v\n", w.id, key, err)
		return false
	}
	req.ContentLength = int64(buf.Len())
	req.Header.Set("Content-Type", "application/json")

	resp, err := w.client.Do(req)
	if err != nil {
		if ctx.Err() == nil {
			w.log.printf("worker %d: PUT %s: %v\n", w.id, key, err)
		}
		return false
	}
	io.Copy(io.Discard, resp.Body)
	resp.Body.Close()

	w.results.PutTotal++
	if resp.StatusCode == http.StatusOK || resp.StatusCode == http.StatusCreated {
		w.results.PutSuccess++
	}
	return true
}

// get issues one GET and records it. Returns false only on a transport failure.
func (w *pairWorker) get(ctx context.Context, url, key string) bool {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		w.log.printf("worker %d: building GET %s: %v\n", w.id, key, err)
		return false
	}

	resp, err := w.client.Do(req)
	if err != nil {
		if ctx.Err() == nil {
			w.log.printf("worker %d: GET %s: %v\n", w.id, key, err)
		}
		return false
	}
	io.Copy(io.Discard, resp.Body)
	resp.Body.Close()

	w.results.GetTotal++
	if resp.StatusCode == http.StatusOK {
		w.results.GetSuccess++
	}
	return true
}
