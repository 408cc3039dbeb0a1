// Package nodes provides the built-in node definitions: a small set of
// logic, transform, integration and action nodes that exercise the
// execution contract end to end. Each definition is created once and
// handed to the registry at startup.
package nodes

import (
	"github.com/adityasai1234/jam-nodes/internal/domain"
	"github.com/adityasai1234/jam-nodes/internal/ports"
)

// RegisterBuiltins registers every built-in node definition. It fails on
// the first registration error, which only happens on duplicate types and
// is therefore a programmer error.
func RegisterBuiltins(registry ports.Registry, fetcher ports.Fetcher) error {
	defs := []*domain.NodeDefinition{
		NewConditionNode(),
		NewJQTransformNode(),
		NewTemplateNode(),
		NewDelayNode(),
		NewHTTPRequestNode(fetcher),
		NewWebSearchNode(),
		NewForumMonitorNode(),
		NewAIGenerateNode(),
		NewSearchEnrichNode(),
	}

	for _, def := range defs {
		if err := registry.Register(def); err != nil {
			return err
		}
	}
	return nil
}

// asInt coerces the numeric shapes JSON decoding and schema defaults can
// produce.
func asInt(value interface{}, fallback int) int {
	switch v := value.(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		return int(v)
	default:
		return fallback
	}
}

func asString(value interface{}) string {
	s, _ := value.(string)
	return s
}

// dig walks nested maps/slices along keys; integer-free variant for maps
// only. Returns nil when any step is missing or not indexable.
func dig(value interface{}, keys ...string) interface{} {
	current := value
	for _, key := range keys {
		m, ok := current.(map[string]interface{})
		if !ok {
			return nil
		}
		current = m[key]
	}
	return current
}

// firstItem returns the first element of a []interface{} value, or nil.
func firstItem(value interface{}) interface{} {
	items, ok := value.([]interface{})
	if !ok || len(items) == 0 {
		return nil
	}
	return items[0]
}
