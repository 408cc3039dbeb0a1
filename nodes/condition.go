package nodes

import (
	"context"
	"time"

	"github.com/expr-lang/expr"

	"github.com/adityasai1234/jam-nodes/internal/domain"
)

// NewConditionNode evaluates a boolean expression against the workflow
// variables. Expressions use the expr language, so nested lookups like
// `contact.score > 80 && contact.verified` work directly.
func NewConditionNode() *domain.NodeDefinition {
	inputSchema := domain.Object(
		domain.Field("expression", domain.String().Describe("Boolean expression evaluated against workflow variables")),
	)
	outputSchema := domain.Object(
		domain.Field("result", domain.Boolean()),
	)

	return &domain.NodeDefinition{
		Type:              "condition",
		Name:              "Condition",
		Description:       "Evaluates a boolean expression over workflow variables",
		Category:          domain.CategoryLogic,
		InputSchema:       inputSchema,
		OutputSchema:      outputSchema,
		EstimatedDuration: time.Second,
		Capabilities:      domain.Capabilities{SupportsRerun: true},
		Executor: func(ctx context.Context, input map[string]interface{}, ec *domain.ExecutionContext) domain.Result {
			source := asString(input["expression"])

			program, err := expr.Compile(source, expr.AsBool())
			if err != nil {
				return domain.Fail("invalid expression: %v", err)
			}

			out, err := expr.Run(program, ec.Variables)
			if err != nil {
				return domain.Fail("expression evaluation failed: %v", err)
			}

			result, ok := out.(bool)
			if !ok {
				return domain.Fail("expression did not evaluate to a boolean")
			}

			return domain.Ok(map[string]interface{}{"result": result})
		},
	}
}
