// Package core wires the registry, the introspection engine and the
// service builder into the execution discipline every node shares:
// validate the input, build a fresh context, invoke the executor, and keep
// every expected failure inside a Result.
package core

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/adityasai1234/jam-nodes/internal/adapters/introspect"
	"github.com/adityasai1234/jam-nodes/internal/domain"
	"github.com/adityasai1234/jam-nodes/internal/ports"
)

type Runner struct {
	registry ports.Registry
	builder  ports.ServiceBuilder
	mocker   *introspect.Mocker
	logger   *slog.Logger
}

func NewRunner(registry ports.Registry, builder ports.ServiceBuilder, logger *slog.Logger) *Runner {
	if logger == nil {
		logger = slog.Default()
	}

	return &Runner{
		registry: registry,
		builder:  builder,
		mocker:   introspect.NewMocker(),
		logger:   logger.With("component", "runner"),
	}
}

// ExecuteOptions carries the host-supplied pieces of an execution: who
// runs it, under which correlation id, with which variables and service
// credentials.
type ExecuteOptions struct {
	UserID              string
	WorkflowExecutionID string
	Variables           map[string]interface{}
	Credentials         ports.Credentials
}

// Execute validates input against the node's input schema, builds the
// ExecutionContext and invokes the executor. Every expected failure —
// unknown type, invalid input, executor-reported errors, even an executor
// panic — comes back as a failure Result; Execute itself never returns an
// error.
func (r *Runner) Execute(ctx context.Context, nodeType string, input map[string]interface{}, opts ExecuteOptions) (result domain.Result) {
	def, err := r.registry.Get(nodeType)
	if err != nil {
		return domain.Fail("unknown node type %q", nodeType)
	}

	if input == nil {
		input = map[string]interface{}{}
	}

	if err := introspect.Validate(def.InputSchema, input); err != nil {
		r.logger.Debug("input validation failed", "node_type", nodeType, "error", err)
		return domain.Fail("invalid input for node %q: %v", nodeType, err)
	}

	input = introspect.ApplyDefaults(def.InputSchema, input)

	ec, err := r.buildContext(opts)
	if err != nil {
		return domain.Fail("failed to build execution context: %v", err)
	}

	r.logger.Debug("executing node",
		"node_type", nodeType,
		"workflow_execution_id", ec.WorkflowExecutionID,
		"user_id", ec.UserID)

	// Exceptions stay internal, results cross boundaries: a panicking
	// executor becomes a failure Result at this boundary.
	defer func() {
		if p := recover(); p != nil {
			r.logger.Error("node executor panicked", "node_type", nodeType, "panic", p)
			result = domain.Fail("node %q panicked: %v", nodeType, p)
		}
	}()

	return def.Executor(ctx, input, ec)
}

func (r *Runner) buildContext(opts ExecuteOptions) (*domain.ExecutionContext, error) {
	executionID := opts.WorkflowExecutionID
	if executionID == "" {
		executionID = uuid.NewString()
	}

	base := map[string]interface{}{
		"execution": map[string]interface{}{
			"id":     executionID,
			"userId": opts.UserID,
		},
	}

	variables, err := domain.MergeVariables(base, opts.Variables)
	if err != nil {
		return nil, err
	}

	var svcs map[string]domain.Service
	if r.builder != nil {
		svcs = r.builder.Build(opts.Credentials)
	} else {
		svcs = map[string]domain.Service{}
	}

	return &domain.ExecutionContext{
		UserID:              opts.UserID,
		WorkflowExecutionID: executionID,
		Variables:           variables,
		Services:            svcs,
	}, nil
}

// ExampleInput synthesizes a runnable input for a node from its input
// schema.
func (r *Runner) ExampleInput(nodeType string) (map[string]interface{}, error) {
	def, err := r.registry.Get(nodeType)
	if err != nil {
		return nil, err
	}

	// The override table is for output payloads; inputs always come from
	// generic synthesis so they validate against the input schema.
	value := introspect.Synthesize(def.InputSchema)
	if m, ok := value.(map[string]interface{}); ok {
		return m, nil
	}
	return map[string]interface{}{}, nil
}

// MockOutput synthesizes a value satisfying the node's output schema,
// honoring any registered mock override, without calling any real API.
func (r *Runner) MockOutput(nodeType string) (interface{}, error) {
	def, err := r.registry.Get(nodeType)
	if err != nil {
		return nil, err
	}
	return r.mocker.ForNode(nodeType, def.OutputSchema), nil
}

// Fields derives the form-field descriptors for a node's input schema.
func (r *Runner) Fields(nodeType string) ([]introspect.FieldDescriptor, error) {
	def, err := r.registry.Get(nodeType)
	if err != nil {
		return nil, err
	}
	return introspect.DeriveFields(def.InputSchema), nil
}

// Mocker exposes the override table so hosts can install fixed realistic
// payloads for specific node types.
func (r *Runner) Mocker() *introspect.Mocker {
	return r.mocker
}
