// Package services turns host-supplied credential mappings into the
// per-execution service handles injected into an ExecutionContext. The
// core never stores credentials; it only shapes what the host provides.
package services

import (
	"log/slog"

	"github.com/adityasai1234/jam-nodes/internal/domain"
	"github.com/adityasai1234/jam-nodes/internal/ports"
)

// Service names recognized by the built-in nodes.
const (
	ServiceAnthropic  = "anthropic"
	ServiceDataForSEO = "dataforseo"
	ServiceForumScout = "forumscout"
	ServiceApollo     = "apollo"
	ServiceTwitter    = "twitter"
)

type Builder struct {
	fetcher ports.Fetcher
	logger  *slog.Logger
}

func NewBuilder(fetcher ports.Fetcher, logger *slog.Logger) *Builder {
	if logger == nil {
		logger = slog.Default()
	}

	return &Builder{
		fetcher: fetcher,
		logger:  logger.With("component", "services"),
	}
}

// Build constructs one handle per credentialed service. Services the host
// supplied no credentials for are simply absent from the map; executors
// must treat absence as a normal outcome.
func (b *Builder) Build(creds ports.Credentials) map[string]domain.Service {
	out := make(map[string]domain.Service, len(creds))

	for name, fields := range creds {
		if len(fields) == 0 {
			b.logger.Debug("skipping service with empty credentials", "service", name)
			continue
		}

		switch name {
		case ServiceAnthropic:
			out[name] = newAIHandle(name, fields)
		default:
			out[name] = &APIHandle{
				name:    name,
				fields:  fields,
				Fetcher: b.fetcher,
			}
		}
	}

	return out
}

// APIHandle is the generic credential-bearing handle for HTTP-backed
// services. Nodes reach the external API through its Fetcher.
type APIHandle struct {
	name    string
	fields  map[string]string
	Fetcher ports.Fetcher
}

func (h *APIHandle) Name() string {
	return h.name
}

func (h *APIHandle) Credential(field string) (string, bool) {
	v, ok := h.fields[field]
	return v, ok
}

// BaseURL returns the service endpoint override if the host configured
// one, else fallback. Tests point handles at local servers this way.
func (h *APIHandle) BaseURL(fallback string) string {
	if v, ok := h.fields["base_url"]; ok && v != "" {
		return v
	}
	return fallback
}
