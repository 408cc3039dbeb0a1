package domain

import (
	"strings"
)

// Service is the per-execution, credential-backed handle a node uses to
// reach an external API. Richer capabilities (HTTP fetch, AI generation)
// are exposed by concrete handle types via interface assertion.
type Service interface {
	Name() string
	Credential(field string) (string, bool)
}

// ExecutionContext is passed into every executor. It is built once per
// invocation and exclusively owned by that execution; Variables must not be
// mutated after the executor has been invoked.
type ExecutionContext struct {
	UserID              string
	WorkflowExecutionID string
	Variables           map[string]interface{}
	Services            map[string]Service
}

// Service looks up a named service handle. Executors must treat absence as
// a normal outcome and return a failure Result rather than panic.
func (ec *ExecutionContext) Service(name string) (Service, bool) {
	svc, ok := ec.Services[name]
	return svc, ok
}

// ResolveNestedPath walks Variables along the dotted path and returns the
// value found there. A missing segment or a non-indexable intermediate
// value yields (nil, false); it never fails. A referenced variable may
// legitimately not exist yet in a given run.
func (ec *ExecutionContext) ResolveNestedPath(path string) (interface{}, bool) {
	if path == "" {
		return nil, false
	}

	var current interface{} = ec.Variables
	for _, segment := range strings.Split(path, ".") {
		m, ok := current.(map[string]interface{})
		if !ok {
			return nil, false
		}
		current, ok = m[segment]
		if !ok {
			return nil, false
		}
	}

	return current, true
}
