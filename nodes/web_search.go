package nodes

import (
	"context"
	"encoding/base64"
	"fmt"
	"net/http"
	"time"

	"github.com/adityasai1234/jam-nodes/internal/adapters/services"
	"github.com/adityasai1234/jam-nodes/internal/domain"
	"github.com/adityasai1234/jam-nodes/internal/ports"
	"github.com/adityasai1234/jam-nodes/internal/xjson"
)

const dataForSEOBaseURL = "https://api.dataforseo.com"

// NewWebSearchNode runs a Google organic search through the DataForSEO
// live SERP API. Requires "dataforseo" credentials with login/password
// fields.
func NewWebSearchNode() *domain.NodeDefinition {
	inputSchema := domain.Object(
		domain.Field("query", domain.String().Describe("Search query")),
		domain.Field("limit", domain.DefaultValue(domain.Number(), 10).Describe("Maximum number of results")),
	)
	outputSchema := domain.Object(
		domain.Field("results", domain.Array(domain.Object(
			domain.Field("title", domain.String()),
			domain.Field("url", domain.String()),
			domain.Field("description", domain.String()),
		))),
		domain.Field("total", domain.Number()),
	)

	return &domain.NodeDefinition{
		Type:              "web-search",
		Name:              "Web Search",
		Description:       "Searches the web via the DataForSEO SERP API",
		Category:          domain.CategoryIntegration,
		InputSchema:       inputSchema,
		OutputSchema:      outputSchema,
		EstimatedDuration: 60 * time.Second,
		Capabilities:      domain.Capabilities{SupportsRerun: true, SupportsBulkActions: true},
		Executor: func(ctx context.Context, input map[string]interface{}, ec *domain.ExecutionContext) domain.Result {
			svc, ok := ec.Service(services.ServiceDataForSEO)
			if !ok {
				return domain.Fail("dataforseo credentials are not configured")
			}
			handle, ok := svc.(*services.APIHandle)
			if !ok {
				return domain.Fail("dataforseo service handle has unexpected type")
			}

			query := asString(input["query"])
			limit := asInt(input["limit"], 10)

			results, err := searchSERP(ctx, handle, query, limit)
			if err != nil {
				return domain.Fail("web search failed: %v", err)
			}

			return domain.Ok(map[string]interface{}{
				"results": results,
				"total":   len(results),
			})
		},
	}
}

// searchSERP posts one live SERP task and flattens the organic items.
func searchSERP(ctx context.Context, handle *services.APIHandle, query string, limit int) ([]interface{}, error) {
	login, _ := handle.Credential("login")
	password, _ := handle.Credential("password")

	body, err := xjson.Marshal([]map[string]interface{}{{
		"keyword":       query,
		"language_code": "en",
		"depth":         limit,
	}})
	if err != nil {
		return nil, err
	}

	header := http.Header{}
	header.Set("Content-Type", "application/json")
	header.Set("Authorization", "Basic "+base64.StdEncoding.EncodeToString([]byte(login+":"+password)))

	resp, err := handle.Fetcher.Do(ctx,
		handle.BaseURL(dataForSEOBaseURL)+"/v3/serp/google/organic/live/advanced",
		ports.RequestSpec{Method: http.MethodPost, Header: header, Body: body},
		ports.RetryPolicy{MaxRetries: 3, Backoff: 2 * time.Second, Timeout: 60 * time.Second},
	)
	if err != nil {
		return nil, err
	}
	if !resp.OK() {
		text, _ := resp.Text()
		return nil, fmt.Errorf("serp request returned status %d: %s", resp.Status(), text)
	}

	var payload map[string]interface{}
	if err := resp.JSON(&payload); err != nil {
		return nil, err
	}

	items, _ := dig(firstItem(dig(firstItem(dig(payload, "tasks")), "result")), "items").([]interface{})

	results := make([]interface{}, 0, limit)
	for _, raw := range items {
		if len(results) >= limit {
			break
		}
		item, ok := raw.(map[string]interface{})
		if !ok || asString(item["type"]) != "organic" {
			continue
		}
		results = append(results, map[string]interface{}{
			"title":       asString(item["title"]),
			"url":         asString(item["url"]),
			"description": asString(item["description"]),
		})
	}

	return results, nil
}
