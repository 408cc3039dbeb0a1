package nodes

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/adityasai1234/jam-nodes/internal/adapters/services"
	"github.com/adityasai1234/jam-nodes/internal/domain"
	"github.com/adityasai1234/jam-nodes/internal/ports"
)

const forumScoutBaseURL = "https://forumscout.app"

// NewForumMonitorNode searches forum posts mentioning a keyword via the
// ForumScout API. Requires "forumscout" credentials with an api_key field.
func NewForumMonitorNode() *domain.NodeDefinition {
	inputSchema := domain.Object(
		domain.Field("keyword", domain.String().Describe("Keyword or phrase to monitor")),
		domain.Field("limit", domain.DefaultValue(domain.Number(), 20).Describe("Maximum number of posts")),
	)
	outputSchema := domain.Object(
		domain.Field("posts", domain.Array(domain.Object(
			domain.Field("title", domain.String()),
			domain.Field("url", domain.String()),
			domain.Field("snippet", domain.String()),
			domain.Field("source", domain.String()),
		))),
		domain.Field("total", domain.Number()),
	)

	return &domain.NodeDefinition{
		Type:              "forum-monitor",
		Name:              "Forum Monitor",
		Description:       "Finds forum posts mentioning a keyword via ForumScout",
		Category:          domain.CategoryIntegration,
		InputSchema:       inputSchema,
		OutputSchema:      outputSchema,
		EstimatedDuration: 30 * time.Second,
		Capabilities:      domain.Capabilities{SupportsRerun: true},
		Executor: func(ctx context.Context, input map[string]interface{}, ec *domain.ExecutionContext) domain.Result {
			svc, ok := ec.Service(services.ServiceForumScout)
			if !ok {
				return domain.Fail("forumscout credentials are not configured")
			}
			handle, ok := svc.(*services.APIHandle)
			if !ok {
				return domain.Fail("forumscout service handle has unexpected type")
			}

			apiKey, ok := handle.Credential("api_key")
			if !ok || apiKey == "" {
				return domain.Fail("forumscout credentials are missing the api_key field")
			}

			keyword := asString(input["keyword"])
			limit := asInt(input["limit"], 20)

			header := http.Header{}
			header.Set("X-API-Key", apiKey)

			endpoint := fmt.Sprintf("%s/api/search?keyword=%s",
				handle.BaseURL(forumScoutBaseURL), url.QueryEscape(keyword))

			resp, err := handle.Fetcher.Do(ctx, endpoint,
				ports.RequestSpec{Method: http.MethodGet, Header: header},
				ports.RetryPolicy{MaxRetries: 3, Backoff: 2 * time.Second, Timeout: 30 * time.Second},
			)
			if err != nil {
				return domain.Fail("forum search failed: %v", err)
			}
			if !resp.OK() {
				return domain.Fail("forum search returned status %d", resp.Status())
			}

			var payload []interface{}
			if err := resp.JSON(&payload); err != nil {
				return domain.Fail("failed to decode forum search response: %v", err)
			}

			posts := make([]interface{}, 0, limit)
			for _, raw := range payload {
				if len(posts) >= limit {
					break
				}
				item, ok := raw.(map[string]interface{})
				if !ok {
					continue
				}
				posts = append(posts, map[string]interface{}{
					"title":   asString(item["title"]),
					"url":     asString(item["link"]),
					"snippet": asString(item["snippet"]),
					"source":  asString(item["source"]),
				})
			}

			return domain.Ok(map[string]interface{}{
				"posts": posts,
				"total": len(posts),
			})
		},
	}
}
