package nodes

import (
	"context"
	"time"

	"github.com/adityasai1234/jam-nodes/internal/adapters/services"
	"github.com/adityasai1234/jam-nodes/internal/domain"
)

// NewAIGenerateNode produces text from a prompt through the configured
// Anthropic model. Requires "anthropic" credentials with an api_key field;
// an optional model field overrides the default model.
func NewAIGenerateNode() *domain.NodeDefinition {
	inputSchema := domain.Object(
		domain.Field("prompt", domain.String().Describe("Prompt sent to the model")),
		domain.Field("context", domain.Optional(domain.String().Describe("Additional context prepended to the prompt"))),
	)
	outputSchema := domain.Object(
		domain.Field("text", domain.String()),
	)

	return &domain.NodeDefinition{
		Type:              "ai-generate",
		Name:              "AI Generate",
		Description:       "Generates text with an Anthropic model",
		Category:          domain.CategoryIntegration,
		InputSchema:       inputSchema,
		OutputSchema:      outputSchema,
		EstimatedDuration: 120 * time.Second,
		Capabilities:      domain.Capabilities{SupportsRerun: true, SupportsApproval: true},
		Executor: func(ctx context.Context, input map[string]interface{}, ec *domain.ExecutionContext) domain.Result {
			svc, ok := ec.Service(services.ServiceAnthropic)
			if !ok {
				return domain.Fail("anthropic credentials are not configured")
			}
			handle, ok := svc.(*services.AIHandle)
			if !ok {
				return domain.Fail("anthropic service handle has unexpected type")
			}

			prompt := asString(input["prompt"])
			if extra := asString(input["context"]); extra != "" {
				prompt = extra + "\n\n" + prompt
			}

			text, err := handle.Generate(ctx, prompt)
			if err != nil {
				return domain.Fail("generation failed: %v", err)
			}

			return domain.Ok(map[string]interface{}{"text": text})
		},
	}
}
