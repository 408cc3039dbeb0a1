package ports

import (
	"context"
	"net/http"
	"time"
)

// RetryPolicy bounds a single logical fetch: up to MaxRetries+1 physical
// attempts, each limited to Timeout, with a fixed Backoff pause before
// every retry.
type RetryPolicy struct {
	MaxRetries int
	Backoff    time.Duration
	Timeout    time.Duration
}

// RequestSpec describes one HTTP request independent of retry concerns.
type RequestSpec struct {
	Method string
	Header http.Header
	Body   []byte
}

// ResponseHandle exposes the attempt that produced the final response.
// Text and JSON decode lazily from the captured body.
type ResponseHandle interface {
	OK() bool
	Status() int
	Text() (string, error)
	JSON(v interface{}) error
}

// Fetcher is the resilient HTTP primitive every integration node goes
// through. Network failures, 5xx and 429 responses are retried per policy;
// other 4xx responses come back immediately as a non-ok handle.
type Fetcher interface {
	Do(ctx context.Context, url string, spec RequestSpec, policy RetryPolicy) (ResponseHandle, error)
}
