package core

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adityasai1234/jam-nodes/internal/adapters/registry"
	"github.com/adityasai1234/jam-nodes/internal/domain"
	"github.com/adityasai1234/jam-nodes/internal/ports"
)

func researchDef(t *testing.T) *domain.NodeDefinition {
	t.Helper()
	return &domain.NodeDefinition{
		Type:     "research",
		Name:     "Research",
		Category: domain.CategoryIntegration,
		InputSchema: domain.Object(
			domain.Field("topic", domain.String()),
			domain.Field("limit", domain.DefaultValue(domain.Number(), 10)),
		),
		OutputSchema: domain.Object(
			domain.Field("summary", domain.String()),
		),
		EstimatedDuration: 5 * time.Second,
		Executor: func(ctx context.Context, input map[string]interface{}, ec *domain.ExecutionContext) domain.Result {
			return domain.Ok(map[string]interface{}{
				"topic": input["topic"],
				"limit": input["limit"],
			})
		},
	}
}

func newTestRunner(t *testing.T, defs ...*domain.NodeDefinition) *Runner {
	t.Helper()
	reg := registry.NewAdapter(nil)
	for _, def := range defs {
		require.NoError(t, reg.Register(def))
	}
	return NewRunner(reg, nil, nil)
}

func TestExecute_EndToEnd(t *testing.T) {
	runner := newTestRunner(t, researchDef(t))

	// Synthesized example input must validate and execute as-is.
	input, err := runner.ExampleInput("research")
	require.NoError(t, err)
	assert.Equal(t, "example_string", input["topic"])

	result := runner.Execute(context.Background(), "research", input, ExecuteOptions{UserID: "u1"})
	require.True(t, result.Success, result.Error)

	output, ok := result.Output.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "example_string", output["topic"])
}

func TestExecute_AppliesSchemaDefaults(t *testing.T) {
	runner := newTestRunner(t, researchDef(t))

	result := runner.Execute(context.Background(), "research",
		map[string]interface{}{"topic": "go"}, ExecuteOptions{})
	require.True(t, result.Success, result.Error)

	output := result.Output.(map[string]interface{})
	assert.Equal(t, 10, output["limit"])
}

func TestExecute_InvalidInputFailsAsResult(t *testing.T) {
	runner := newTestRunner(t, researchDef(t))

	result := runner.Execute(context.Background(), "research",
		map[string]interface{}{"topic": 7}, ExecuteOptions{})

	assert.False(t, result.Success)
	assert.Contains(t, result.Error, "invalid input")
	assert.Contains(t, result.Error, "topic")
}

func TestExecute_UnknownTypeFailsAsResult(t *testing.T) {
	runner := newTestRunner(t)

	result := runner.Execute(context.Background(), "missing", nil, ExecuteOptions{})

	assert.False(t, result.Success)
	assert.Contains(t, result.Error, "unknown node type")
}

func TestExecute_PanicBecomesFailureResult(t *testing.T) {
	def := &domain.NodeDefinition{
		Type:        "explosive",
		InputSchema: domain.Object(),
		Executor: func(ctx context.Context, input map[string]interface{}, ec *domain.ExecutionContext) domain.Result {
			panic("boom")
		},
	}
	runner := newTestRunner(t, def)

	result := runner.Execute(context.Background(), "explosive", nil, ExecuteOptions{})

	assert.False(t, result.Success)
	assert.Contains(t, result.Error, "panicked")
	assert.Contains(t, result.Error, "boom")
}

func TestExecute_ContextCarriesExecutionVariables(t *testing.T) {
	var captured *domain.ExecutionContext
	def := &domain.NodeDefinition{
		Type:        "inspect",
		InputSchema: domain.Object(),
		Executor: func(ctx context.Context, input map[string]interface{}, ec *domain.ExecutionContext) domain.Result {
			captured = ec
			return domain.Ok(nil)
		},
	}
	runner := newTestRunner(t, def)

	result := runner.Execute(context.Background(), "inspect", nil, ExecuteOptions{
		UserID:              "u1",
		WorkflowExecutionID: "wf-42",
		Variables:           map[string]interface{}{"custom": "value"},
	})
	require.True(t, result.Success)
	require.NotNil(t, captured)

	assert.Equal(t, "u1", captured.UserID)
	assert.Equal(t, "wf-42", captured.WorkflowExecutionID)

	id, found := captured.ResolveNestedPath("execution.id")
	assert.True(t, found)
	assert.Equal(t, "wf-42", id)

	assert.Equal(t, "value", captured.Variables["custom"])
}

func TestExecute_GeneratesExecutionIDWhenAbsent(t *testing.T) {
	var captured *domain.ExecutionContext
	def := &domain.NodeDefinition{
		Type:        "inspect",
		InputSchema: domain.Object(),
		Executor: func(ctx context.Context, input map[string]interface{}, ec *domain.ExecutionContext) domain.Result {
			captured = ec
			return domain.Ok(nil)
		},
	}
	runner := newTestRunner(t, def)

	result := runner.Execute(context.Background(), "inspect", nil, ExecuteOptions{})
	require.True(t, result.Success)
	require.NotNil(t, captured)
	assert.NotEmpty(t, captured.WorkflowExecutionID)
}

func TestExecute_CallerVariablesOverrideBase(t *testing.T) {
	var captured *domain.ExecutionContext
	def := &domain.NodeDefinition{
		Type:        "inspect",
		InputSchema: domain.Object(),
		Executor: func(ctx context.Context, input map[string]interface{}, ec *domain.ExecutionContext) domain.Result {
			captured = ec
			return domain.Ok(nil)
		},
	}
	runner := newTestRunner(t, def)

	result := runner.Execute(context.Background(), "inspect", nil, ExecuteOptions{
		Variables: map[string]interface{}{
			"execution": map[string]interface{}{"id": "caller-wins"},
		},
	})
	require.True(t, result.Success)

	id, found := captured.ResolveNestedPath("execution.id")
	require.True(t, found)
	assert.Equal(t, "caller-wins", id)
}

func TestMockOutput_HonorsOverride(t *testing.T) {
	runner := newTestRunner(t, researchDef(t))

	generic, err := runner.MockOutput("research")
	require.NoError(t, err)
	assert.Equal(t, map[string]interface{}{"summary": "example_string"}, generic)

	payload := map[string]interface{}{"summary": "Quarterly revenue grew 14%."}
	runner.Mocker().RegisterOverride("research", payload)

	overridden, err := runner.MockOutput("research")
	require.NoError(t, err)
	assert.Equal(t, payload, overridden)
}

func TestFields_DerivesFromInputSchema(t *testing.T) {
	runner := newTestRunner(t, researchDef(t))

	fields, err := runner.Fields("research")
	require.NoError(t, err)
	require.Len(t, fields, 2)

	assert.Equal(t, "topic", fields[0].Name)
	assert.True(t, fields[0].Required)
	assert.Equal(t, "limit", fields[1].Name)
	assert.False(t, fields[1].Required)
	assert.Equal(t, 10, fields[1].Default)
}

func TestIntrospection_UnknownType(t *testing.T) {
	runner := newTestRunner(t)

	_, err := runner.ExampleInput("missing")
	assert.True(t, domain.IsNotFound(err))

	_, err = runner.MockOutput("missing")
	assert.True(t, domain.IsNotFound(err))

	_, err = runner.Fields("missing")
	assert.True(t, domain.IsNotFound(err))
}

type stubBuilder struct{}

func (stubBuilder) Build(creds ports.Credentials) map[string]domain.Service {
	out := make(map[string]domain.Service, len(creds))
	for name := range creds {
		out[name] = stubService(name)
	}
	return out
}

type stubService string

func (s stubService) Name() string                     { return string(s) }
func (s stubService) Credential(string) (string, bool) { return "", false }

func TestExecute_BuildsServicesFromCredentials(t *testing.T) {
	var captured *domain.ExecutionContext
	def := &domain.NodeDefinition{
		Type:        "inspect",
		InputSchema: domain.Object(),
		Executor: func(ctx context.Context, input map[string]interface{}, ec *domain.ExecutionContext) domain.Result {
			captured = ec
			return domain.Ok(nil)
		},
	}

	reg := registry.NewAdapter(nil)
	require.NoError(t, reg.Register(def))
	runner := NewRunner(reg, stubBuilder{}, nil)

	result := runner.Execute(context.Background(), "inspect", nil, ExecuteOptions{
		Credentials: ports.Credentials{"apollo": {"api_key": "k"}},
	})
	require.True(t, result.Success)

	svc, ok := captured.Service("apollo")
	require.True(t, ok)
	assert.Equal(t, "apollo", svc.Name())
}
