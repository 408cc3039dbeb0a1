package nodes

import (
	"context"
	"time"

	"github.com/itchyny/gojq"

	"github.com/adityasai1234/jam-nodes/internal/domain"
	"github.com/adityasai1234/jam-nodes/internal/xjson"
)

// NewJQTransformNode applies a jq expression to its input data (or, when
// no data is supplied, to the workflow variables). gojq supports the full
// jq language, so field access, pipes, map/select and object construction
// all work.
func NewJQTransformNode() *domain.NodeDefinition {
	inputSchema := domain.Object(
		domain.Field("expression", domain.String().Describe("jq expression to apply")),
		domain.Field("data", domain.Optional(domain.Any().Describe("Value to transform; workflow variables when omitted"))),
	)
	outputSchema := domain.Object(
		domain.Field("result", domain.Any()),
	)

	return &domain.NodeDefinition{
		Type:              "jq-transform",
		Name:              "JQ Transform",
		Description:       "Transforms data with a jq expression",
		Category:          domain.CategoryTransform,
		InputSchema:       inputSchema,
		OutputSchema:      outputSchema,
		EstimatedDuration: time.Second,
		Capabilities:      domain.Capabilities{SupportsRerun: true},
		Executor: func(ctx context.Context, input map[string]interface{}, ec *domain.ExecutionContext) domain.Result {
			source := asString(input["expression"])

			parsed, err := gojq.Parse(source)
			if err != nil {
				return domain.Fail("invalid jq expression: %v", err)
			}

			code, err := gojq.Compile(parsed)
			if err != nil {
				return domain.Fail("failed to compile jq expression: %v", err)
			}

			data, present := input["data"]
			if !present || data == nil {
				data = ec.Variables
			}

			// gojq operates on plain JSON-compatible Go values; round-trip
			// through JSON to normalize anything typed.
			normalized, err := xjson.Normalize(data)
			if err != nil {
				return domain.Fail("failed to normalize input data: %v", err)
			}

			var results []interface{}
			iter := code.RunWithContext(ctx, normalized)
			for {
				v, ok := iter.Next()
				if !ok {
					break
				}
				if iterErr, isErr := v.(error); isErr {
					return domain.Fail("jq evaluation failed: %v", iterErr)
				}
				results = append(results, v)
			}

			var result interface{}
			switch len(results) {
			case 0:
				result = nil
			case 1:
				result = results[0]
			default:
				result = results
			}

			return domain.Ok(map[string]interface{}{"result": result})
		},
	}
}
