package introspect

import (
	"github.com/adityasai1234/jam-nodes/internal/domain"
)

// ApplyDefaults fills absent defaulted fields of an object value from the
// schema and returns a new map; input is not mutated. Non-object schemas
// and values pass through untouched. Run after Validate so executors see
// the same defaults field derivation advertises.
func ApplyDefaults(node *domain.SchemaNode, input map[string]interface{}) map[string]interface{} {
	root := node.Unwrap()
	if root == nil || root.Kind != domain.KindObject {
		return input
	}

	out := make(map[string]interface{}, len(input))
	for k, v := range input {
		out[k] = v
	}

	for _, field := range root.Fields {
		if _, present := out[field.Name]; present {
			continue
		}
		if value, ok := defaultFor(field.Schema); ok {
			out[field.Name] = value
		}
	}

	return out
}

// defaultFor finds the first Default wrapper in a chain of transparent
// wrappers and produces its value.
func defaultFor(node *domain.SchemaNode) (interface{}, bool) {
	for node != nil {
		switch node.Kind {
		case domain.KindDefault:
			if node.DefaultFn != nil {
				return node.DefaultFn(), true
			}
			return nil, false
		case domain.KindOptional, domain.KindNullable, domain.KindPromise, domain.KindEffects:
			node = node.Inner
		default:
			return nil, false
		}
	}
	return nil, false
}
