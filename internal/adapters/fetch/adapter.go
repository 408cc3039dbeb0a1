// Package fetch implements the resilient HTTP primitive used uniformly by
// every integration node: a single logical call bounded per attempt by a
// timeout, retried on transient failures with a fixed backoff.
package fetch

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/adityasai1234/jam-nodes/internal/domain"
	"github.com/adityasai1234/jam-nodes/internal/ports"
	"github.com/adityasai1234/jam-nodes/internal/xjson"
)

// DefaultPolicy matches what the integration nodes in this system use:
// three retries with a short fixed pause and a 30s attempt budget.
var DefaultPolicy = ports.RetryPolicy{
	MaxRetries: 3,
	Backoff:    2 * time.Second,
	Timeout:    30 * time.Second,
}

type Client struct {
	http   *http.Client
	logger *slog.Logger
}

func NewClient(logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}

	return &Client{
		// Per-attempt deadlines come from the policy, not the client.
		http:   &http.Client{},
		logger: logger.With("component", "fetch"),
	}
}

// Do performs up to policy.MaxRetries+1 physical attempts against url.
// Transport errors, 5xx and 429 responses are retryable; any other status
// returns immediately with a handle whose OK reflects the 2xx range. After
// exhausting retryable attempts the call fails with a *domain.FetchError
// carrying the last observed status and message; it never fabricates a
// success.
func (c *Client) Do(ctx context.Context, url string, spec ports.RequestSpec, policy ports.RetryPolicy) (ports.ResponseHandle, error) {
	if err := checkPolicy(policy); err != nil {
		return nil, err
	}

	method := spec.Method
	if method == "" {
		method = http.MethodGet
	}

	attempts := policy.MaxRetries + 1
	var lastStatus int
	var lastMessage string

	for attempt := 1; attempt <= attempts; attempt++ {
		if attempt > 1 {
			if err := c.wait(ctx, policy.Backoff); err != nil {
				return nil, err
			}
		}

		handle, retryable, err := c.attempt(ctx, method, url, spec, policy.Timeout)
		if err != nil {
			lastStatus = 0
			lastMessage = err.Error()
			c.logger.Debug("fetch attempt failed",
				"url", url, "attempt", attempt, "error", err)
			continue
		}

		if !retryable {
			return handle, nil
		}

		lastStatus = handle.status
		lastMessage = handle.snippet()
		c.logger.Debug("fetch attempt returned retryable status",
			"url", url, "attempt", attempt, "status", handle.status)
	}

	return nil, &domain.FetchError{
		URL:      url,
		Status:   lastStatus,
		Attempts: attempts,
		Message:  lastMessage,
	}
}

// attempt performs one bounded request. The second return value reports
// whether the response is eligible for retry.
func (c *Client) attempt(ctx context.Context, method, url string, spec ports.RequestSpec, timeout time.Duration) (*Handle, bool, error) {
	attemptCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	var body io.Reader
	if len(spec.Body) > 0 {
		body = bytes.NewReader(spec.Body)
	}

	req, err := http.NewRequestWithContext(attemptCtx, method, url, body)
	if err != nil {
		return nil, false, err
	}
	for key, values := range spec.Header {
		for _, v := range values {
			req.Header.Add(key, v)
		}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, true, err
	}
	defer resp.Body.Close()

	// The body is captured eagerly so the connection can be released;
	// Text/JSON decode lazily from the captured bytes.
	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, false, err
	}

	handle := &Handle{status: resp.StatusCode, header: resp.Header.Clone(), body: payload}
	return handle, isRetryableStatus(resp.StatusCode), nil
}

func (c *Client) wait(ctx context.Context, backoff time.Duration) error {
	if backoff <= 0 {
		return nil
	}

	timer := time.NewTimer(backoff)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// isRetryableStatus classifies server errors and rate limiting as
// transient. Other client errors are permanent: retrying a malformed
// request cannot succeed.
func isRetryableStatus(status int) bool {
	return status >= 500 || status == http.StatusTooManyRequests
}

func checkPolicy(policy ports.RetryPolicy) error {
	if policy.MaxRetries < 0 || policy.Backoff < 0 || policy.Timeout <= 0 {
		return domain.ErrInvalidConfig
	}
	return nil
}

// Handle is the response of the attempt that ended the logical call.
type Handle struct {
	status int
	header http.Header
	body   []byte
}

func (h *Handle) OK() bool {
	return h.status >= 200 && h.status < 300
}

func (h *Handle) Status() int {
	return h.status
}

func (h *Handle) Header() http.Header {
	return h.header
}

func (h *Handle) Text() (string, error) {
	return string(h.body), nil
}

func (h *Handle) JSON(v interface{}) error {
	return xjson.Unmarshal(h.body, v)
}

// snippet returns a short body excerpt for error messages.
func (h *Handle) snippet() string {
	const max = 200
	if len(h.body) > max {
		return string(h.body[:max])
	}
	return string(h.body)
}
