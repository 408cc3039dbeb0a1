package nodes

import (
	"context"
	"time"

	"github.com/adityasai1234/jam-nodes/internal/domain"
)

// NewDelayNode suspends for a configured number of seconds. The wait is a
// timer, never a busy loop, and a canceled context cuts it short with a
// failure Result.
func NewDelayNode() *domain.NodeDefinition {
	inputSchema := domain.Object(
		domain.Field("seconds", domain.Number().Describe("How long to wait, in seconds")),
	)
	outputSchema := domain.Object(
		domain.Field("waited", domain.Number()),
	)

	return &domain.NodeDefinition{
		Type:              "delay",
		Name:              "Delay",
		Description:       "Waits for a fixed duration",
		Category:          domain.CategoryAction,
		InputSchema:       inputSchema,
		OutputSchema:      outputSchema,
		EstimatedDuration: 5 * time.Second,
		Capabilities:      domain.Capabilities{SupportsRerun: true},
		Executor: func(ctx context.Context, input map[string]interface{}, ec *domain.ExecutionContext) domain.Result {
			seconds := asInt(input["seconds"], 0)
			if seconds < 0 {
				return domain.Fail("seconds must not be negative")
			}

			timer := time.NewTimer(time.Duration(seconds) * time.Second)
			defer timer.Stop()

			select {
			case <-ctx.Done():
				return domain.Fail("delay interrupted: %v", ctx.Err())
			case <-timer.C:
				return domain.Ok(map[string]interface{}{"waited": seconds})
			}
		},
	}
}
