package nodes

import (
	"context"
	"net/http"
	"time"

	"github.com/adityasai1234/jam-nodes/internal/domain"
	"github.com/adityasai1234/jam-nodes/internal/ports"
)

// NewHTTPRequestNode performs an arbitrary HTTP call through the resilient
// fetch client. Server errors and rate limiting are retried per the fetch
// policy; other client errors surface in the output rather than failing
// the node, since a 404 is a legitimate answer for this node's purposes.
func NewHTTPRequestNode(fetcher ports.Fetcher) *domain.NodeDefinition {
	inputSchema := domain.Object(
		domain.Field("url", domain.String().Describe("Target URL")),
		domain.Field("method", domain.DefaultValue(domain.Enum("GET", "POST", "PUT", "PATCH", "DELETE"), "GET")),
		domain.Field("headers", domain.Optional(domain.Record(domain.String()))),
		domain.Field("body", domain.Optional(domain.String().Describe("Raw request body"))),
	)
	outputSchema := domain.Object(
		domain.Field("status", domain.Number()),
		domain.Field("ok", domain.Boolean()),
		domain.Field("body", domain.String()),
	)

	return &domain.NodeDefinition{
		Type:              "http-request",
		Name:              "HTTP Request",
		Description:       "Calls an HTTP endpoint with retry and timeout",
		Category:          domain.CategoryAction,
		InputSchema:       inputSchema,
		OutputSchema:      outputSchema,
		EstimatedDuration: 30 * time.Second,
		Capabilities:      domain.Capabilities{SupportsRerun: true},
		Executor: func(ctx context.Context, input map[string]interface{}, ec *domain.ExecutionContext) domain.Result {
			url := asString(input["url"])
			if url == "" {
				return domain.Fail("url must not be empty")
			}

			spec := ports.RequestSpec{
				Method: asString(input["method"]),
				Header: http.Header{},
			}
			if headers, ok := input["headers"].(map[string]interface{}); ok {
				for k, v := range headers {
					spec.Header.Set(k, asString(v))
				}
			}
			if body := asString(input["body"]); body != "" {
				spec.Body = []byte(body)
			}

			policy := ports.RetryPolicy{
				MaxRetries: 3,
				Backoff:    2 * time.Second,
				Timeout:    30 * time.Second,
			}

			handle, err := fetcher.Do(ctx, url, spec, policy)
			if err != nil {
				return domain.Fail("request failed: %v", err)
			}

			text, err := handle.Text()
			if err != nil {
				return domain.Fail("failed to read response body: %v", err)
			}

			return domain.Ok(map[string]interface{}{
				"status": handle.Status(),
				"ok":     handle.OK(),
				"body":   text,
			})
		},
	}
}
