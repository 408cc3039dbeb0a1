package nodes

import (
	"context"
	"strings"
	"text/template"
	"time"

	"github.com/adityasai1234/jam-nodes/internal/domain"
)

// NewTemplateNode renders a Go text/template against the workflow
// variables. Missing keys render as empty values rather than failing the
// whole execution.
func NewTemplateNode() *domain.NodeDefinition {
	inputSchema := domain.Object(
		domain.Field("template", domain.String().Describe("Go template rendered against workflow variables")),
	)
	outputSchema := domain.Object(
		domain.Field("text", domain.String()),
	)

	return &domain.NodeDefinition{
		Type:              "template",
		Name:              "Template",
		Description:       "Renders a text template from workflow variables",
		Category:          domain.CategoryTransform,
		InputSchema:       inputSchema,
		OutputSchema:      outputSchema,
		EstimatedDuration: time.Second,
		Capabilities:      domain.Capabilities{SupportsRerun: true},
		Executor: func(ctx context.Context, input map[string]interface{}, ec *domain.ExecutionContext) domain.Result {
			source := asString(input["template"])

			tmpl, err := template.New("node").Option("missingkey=zero").Parse(source)
			if err != nil {
				return domain.Fail("invalid template: %v", err)
			}

			var buf strings.Builder
			if err := tmpl.Execute(&buf, ec.Variables); err != nil {
				return domain.Fail("template rendering failed: %v", err)
			}

			return domain.Ok(map[string]interface{}{"text": buf.String()})
		},
	}
}
