package nodes

import (
	"context"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/time/rate"

	"github.com/adityasai1234/jam-nodes/internal/adapters/services"
	"github.com/adityasai1234/jam-nodes/internal/domain"
	"github.com/adityasai1234/jam-nodes/internal/ports"
)

const apolloBaseURL = "https://api.apollo.io"

// NewSearchEnrichNode searches the web for a topic, then enriches each
// result's domain through the Apollo organization API. Downstream calls
// run sequentially and are paced to one per second to respect third-party
// rate limits; a result that fails to enrich is skipped, never aborting
// the remainder of the batch.
func NewSearchEnrichNode() *domain.NodeDefinition {
	inputSchema := domain.Object(
		domain.Field("query", domain.String().Describe("Search query")),
		domain.Field("limit", domain.DefaultValue(domain.Number(), 5).Describe("Maximum results to enrich")),
	)
	outputSchema := domain.Object(
		domain.Field("companies", domain.Array(domain.Object(
			domain.Field("name", domain.String()),
			domain.Field("domain", domain.String()),
			domain.Field("url", domain.String()),
		))),
		domain.Field("skipped", domain.Number()),
	)

	return &domain.NodeDefinition{
		Type:              "search-enrich",
		Name:              "Search & Enrich",
		Description:       "Searches the web and enriches each result via Apollo",
		Category:          domain.CategoryIntegration,
		InputSchema:       inputSchema,
		OutputSchema:      outputSchema,
		EstimatedDuration: 120 * time.Second,
		Capabilities: domain.Capabilities{
			SupportsEnrichment:  true,
			SupportsBulkActions: true,
			SupportsRerun:       true,
		},
		Executor: func(ctx context.Context, input map[string]interface{}, ec *domain.ExecutionContext) domain.Result {
			searchSvc, ok := ec.Service(services.ServiceDataForSEO)
			if !ok {
				return domain.Fail("dataforseo credentials are not configured")
			}
			searchHandle, ok := searchSvc.(*services.APIHandle)
			if !ok {
				return domain.Fail("dataforseo service handle has unexpected type")
			}

			apolloSvc, ok := ec.Service(services.ServiceApollo)
			if !ok {
				return domain.Fail("apollo credentials are not configured")
			}
			apolloHandle, ok := apolloSvc.(*services.APIHandle)
			if !ok {
				return domain.Fail("apollo service handle has unexpected type")
			}

			query := asString(input["query"])
			limit := asInt(input["limit"], 5)

			results, err := searchSERP(ctx, searchHandle, query, limit)
			if err != nil {
				return domain.Fail("search failed: %v", err)
			}

			limiter := rate.NewLimiter(rate.Every(time.Second), 1)

			companies := make([]interface{}, 0, len(results))
			skipped := 0
			for _, raw := range results {
				item, ok := raw.(map[string]interface{})
				if !ok {
					skipped++
					continue
				}

				resultURL := asString(item["url"])
				host := hostOf(resultURL)
				if host == "" {
					skipped++
					continue
				}

				if err := limiter.Wait(ctx); err != nil {
					return domain.Fail("enrichment interrupted: %v", err)
				}

				company, err := enrichDomain(ctx, apolloHandle, host)
				if err != nil {
					// One bad unit never aborts the batch.
					skipped++
					continue
				}
				company["url"] = resultURL
				companies = append(companies, company)
			}

			return domain.Ok(map[string]interface{}{
				"companies": companies,
				"skipped":   skipped,
			})
		},
	}
}

func hostOf(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return ""
	}
	return u.Hostname()
}

// enrichDomain resolves a domain to an organization via Apollo.
func enrichDomain(ctx context.Context, handle *services.APIHandle, domainName string) (map[string]interface{}, error) {
	apiKey, _ := handle.Credential("api_key")

	header := http.Header{}
	header.Set("Content-Type", "application/json")
	header.Set("X-Api-Key", apiKey)

	resp, err := handle.Fetcher.Do(ctx,
		handle.BaseURL(apolloBaseURL)+"/v1/organizations/enrich?domain="+url.QueryEscape(domainName),
		ports.RequestSpec{Method: http.MethodGet, Header: header},
		ports.RetryPolicy{MaxRetries: 3, Backoff: 2 * time.Second, Timeout: 30 * time.Second},
	)
	if err != nil {
		return nil, err
	}
	if !resp.OK() {
		text, _ := resp.Text()
		return nil, &domain.FetchError{URL: domainName, Status: resp.Status(), Attempts: 1, Message: text}
	}

	var payload map[string]interface{}
	if err := resp.JSON(&payload); err != nil {
		return nil, err
	}

	org, ok := dig(payload, "organization").(map[string]interface{})
	if !ok {
		return nil, domain.ErrNotFound
	}

	return map[string]interface{}{
		"name":   asString(org["name"]),
		"domain": asString(org["primary_domain"]),
	}, nil
}
