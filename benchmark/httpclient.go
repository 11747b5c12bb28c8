package benchmark

import (
	"fmt"
	"net/http"
	"time"

	"golang.org/x/net/http2"
)

// newHTTPClient creates the HTTP client one worker uses for all of its
// requests: a tuned transport with keep-alive so the worker reuses its
// connection across iterations, HTTP/2 enabled where the target speaks it.
func newHTTPClient(timeout time.Duration) *http.Client {
	transport := &http.Transport{
		MaxIdleConns:          10,
		MaxIdleConnsPerHost:   10,
		IdleConnTimeout:       90 * time.Second,
		TLSHandshakeTimeout:   10 * time.Second,
		ExpectContinueTimeout: 1 * time.Second,
	}

	if err := http2.ConfigureTransport(transport); err != nil {
		panic(fmt.Sprintf("Failed to configure HTTP/2: %v", err))
	}

	return &http.Client{
		Transport: transport,
		Timeout:   timeout,
	}
}
