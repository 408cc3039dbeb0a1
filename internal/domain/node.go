package domain

import (
	"context"
	"fmt"
	"time"
)

// Category groups nodes for listing and host UIs.
type Category string

const (
	CategoryLogic       Category = "logic"
	CategoryTransform   Category = "transform"
	CategoryIntegration Category = "integration"
	CategoryAction      Category = "action"
)

// Capabilities are the optional behaviors a node declares support for.
// Hosts use them for capability negotiation; the runner does not interpret
// them.
type Capabilities struct {
	SupportsEnrichment  bool `json:"supports_enrichment"`
	SupportsBulkActions bool `json:"supports_bulk_actions"`
	SupportsRerun       bool `json:"supports_rerun"`
	SupportsApproval    bool `json:"supports_approval"`
}

// Executor is the function every node implements. Input has already been
// validated against the node's input schema and had schema defaults applied
// before invocation. Expected failures come back as a failure Result; the
// executor must not let errors or panics cross this boundary.
type Executor func(ctx context.Context, input map[string]interface{}, ec *ExecutionContext) Result

// NodeDefinition is the contract a node implementation satisfies. Created
// once at startup, immutable after registration.
type NodeDefinition struct {
	Type              string
	Name              string
	Description       string
	Category          Category
	InputSchema       *SchemaNode
	OutputSchema      *SchemaNode
	EstimatedDuration time.Duration
	Capabilities      Capabilities
	Executor          Executor
}

// Metadata projects a NodeDefinition to its display-relevant fields,
// suitable for listing without exposing schema internals.
func (d *NodeDefinition) Metadata() NodeMetadata {
	return NodeMetadata{
		Type:              d.Type,
		Name:              d.Name,
		Description:       d.Description,
		Category:          d.Category,
		Capabilities:      d.Capabilities,
		EstimatedDuration: d.EstimatedDuration,
	}
}

type NodeMetadata struct {
	Type              string        `json:"type"`
	Name              string        `json:"name"`
	Description       string        `json:"description"`
	Category          Category      `json:"category"`
	Capabilities      Capabilities  `json:"capabilities"`
	EstimatedDuration time.Duration `json:"estimated_duration"`
}

// Result is the uniform success/failure envelope returned by every
// executor. Expected runtime failures travel as data in Error; only
// programmer errors are allowed to surface any other way.
type Result struct {
	Success bool        `json:"success"`
	Output  interface{} `json:"output,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// Ok builds a success Result.
func Ok(output interface{}) Result {
	return Result{Success: true, Output: output}
}

// Fail builds a failure Result with a formatted message.
func Fail(format string, args ...interface{}) Result {
	return Result{Success: false, Error: fmt.Sprintf(format, args...)}
}
