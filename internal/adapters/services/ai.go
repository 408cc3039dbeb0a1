package services

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"charm.land/fantasy"
	"charm.land/fantasy/providers/anthropic"
)

const defaultModelID = "claude-sonnet-4-5"

// AIHandle is the anthropic-backed generation handle. The language model
// is constructed lazily on first use so building a context stays cheap
// when the executor never generates.
type AIHandle struct {
	name   string
	fields map[string]string

	once  sync.Once
	model fantasy.LanguageModel
	err   error
}

func newAIHandle(name string, fields map[string]string) *AIHandle {
	return &AIHandle{name: name, fields: fields}
}

func (h *AIHandle) Name() string {
	return h.name
}

func (h *AIHandle) Credential(field string) (string, bool) {
	v, ok := h.fields[field]
	return v, ok
}

func (h *AIHandle) modelID() string {
	if v, ok := h.fields["model"]; ok && v != "" {
		return v
	}
	return defaultModelID
}

func (h *AIHandle) languageModel(ctx context.Context) (fantasy.LanguageModel, error) {
	h.once.Do(func() {
		apiKey, ok := h.fields["api_key"]
		if !ok || apiKey == "" {
			h.err = fmt.Errorf("anthropic credentials missing api_key field")
			return
		}

		provider, err := anthropic.New(anthropic.WithAPIKey(apiKey))
		if err != nil {
			h.err = fmt.Errorf("create anthropic provider: %w", err)
			return
		}

		h.model, h.err = provider.LanguageModel(ctx, h.modelID())
	})

	return h.model, h.err
}

// Generate runs a single prompt through the configured model and returns
// the trimmed text response.
func (h *AIHandle) Generate(ctx context.Context, prompt string) (string, error) {
	model, err := h.languageModel(ctx)
	if err != nil {
		return "", err
	}

	agent := fantasy.NewAgent(model)
	result, err := agent.Generate(ctx, fantasy.AgentCall{Prompt: prompt})
	if err != nil {
		return "", fmt.Errorf("generate: %w", err)
	}

	return strings.TrimSpace(result.Response.Content.Text()), nil
}
