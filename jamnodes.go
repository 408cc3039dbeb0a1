// Package jamnodes packages reusable workflow node building blocks behind
// a uniform execution contract. Nodes declare their input and output as
// composable schema trees; a schema-driven introspection engine turns
// those trees into synthetic mock values, form-field descriptors and
// validated executor invocations, so hundreds of heterogeneous node
// definitions stay interoperable.
//
// Basic usage:
//
//	registry := jamnodes.NewRegistry(logger)
//	fetcher := jamnodes.NewFetchClient(logger)
//	nodes.RegisterBuiltins(registry, fetcher)
//
//	runner := jamnodes.NewRunner(registry, jamnodes.NewServiceBuilder(fetcher, logger), logger)
//	result := runner.Execute(ctx, "web-search",
//	    map[string]interface{}{"query": "golang workflow engines"},
//	    jamnodes.ExecuteOptions{UserID: "user-1", Credentials: creds})
package jamnodes

import (
	"log/slog"

	"github.com/adityasai1234/jam-nodes/internal/adapters/fetch"
	"github.com/adityasai1234/jam-nodes/internal/adapters/introspect"
	"github.com/adityasai1234/jam-nodes/internal/adapters/registry"
	"github.com/adityasai1234/jam-nodes/internal/adapters/services"
	"github.com/adityasai1234/jam-nodes/internal/core"
	"github.com/adityasai1234/jam-nodes/internal/domain"
	"github.com/adityasai1234/jam-nodes/internal/ports"
)

// SchemaNode is the tagged-variant description of an expected value
// shape, used for validation, mock synthesis and field derivation.
type SchemaNode = domain.SchemaNode

// ObjectField is one named, ordered field of an object schema.
type ObjectField = domain.ObjectField

// NodeDefinition is the contract a node implementation satisfies.
type NodeDefinition = domain.NodeDefinition

// NodeMetadata is the display-relevant projection of a NodeDefinition.
type NodeMetadata = domain.NodeMetadata

// Capabilities are the optional behaviors a node declares support for.
type Capabilities = domain.Capabilities

// Category groups nodes for listing and host UIs.
type Category = domain.Category

// Executor is the function every node implements.
type Executor = domain.Executor

// Result is the uniform success/failure envelope returned by every
// executor.
type Result = domain.Result

// ExecutionContext is the per-execution object passed into every
// executor: identity, correlation id, variables and service handles.
type ExecutionContext = domain.ExecutionContext

// Service is the credential-backed handle a node uses to reach an
// external API.
type Service = domain.Service

// FieldDescriptor describes one derived input field of a node.
type FieldDescriptor = introspect.FieldDescriptor

// Registry is the process-wide catalog of node definitions.
type Registry = ports.Registry

// Credentials maps service names to credential fields.
type Credentials = ports.Credentials

// RetryPolicy bounds a resilient fetch call.
type RetryPolicy = ports.RetryPolicy

// RequestSpec describes one HTTP request independent of retry concerns.
type RequestSpec = ports.RequestSpec

// Fetcher is the resilient HTTP primitive used by integration nodes.
type Fetcher = ports.Fetcher

// Runner applies the execution discipline shared by every node.
type Runner = core.Runner

// ExecuteOptions carries the host-supplied pieces of one execution.
type ExecuteOptions = core.ExecuteOptions

// Node categories.
const (
	CategoryLogic       = domain.CategoryLogic
	CategoryTransform   = domain.CategoryTransform
	CategoryIntegration = domain.CategoryIntegration
	CategoryAction      = domain.CategoryAction
)

// NewRegistry creates an empty node registry.
func NewRegistry(logger *slog.Logger) Registry {
	return registry.NewAdapter(logger)
}

// NewFetchClient creates the resilient HTTP client integration nodes
// share.
func NewFetchClient(logger *slog.Logger) Fetcher {
	return fetch.NewClient(logger)
}

// NewServiceBuilder creates the builder that turns host credentials into
// per-execution service handles.
func NewServiceBuilder(fetcher Fetcher, logger *slog.Logger) ports.ServiceBuilder {
	return services.NewBuilder(fetcher, logger)
}

// NewRunner wires a registry and service builder into a Runner.
func NewRunner(reg Registry, builder ports.ServiceBuilder, logger *slog.Logger) *Runner {
	return core.NewRunner(reg, builder, logger)
}

// Synthesize produces a deterministic mock value satisfying a schema.
func Synthesize(node *SchemaNode) interface{} {
	return introspect.Synthesize(node)
}

// DeriveFields derives form-field descriptors from an object schema.
func DeriveFields(node *SchemaNode) []FieldDescriptor {
	return introspect.DeriveFields(node)
}

// Validate checks a value against a schema.
func Validate(node *SchemaNode, value interface{}) error {
	return introspect.Validate(node, value)
}
