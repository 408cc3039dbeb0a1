// Package introspect implements the traversals over schema trees the
// rest of the system depends on: mock synthesis, form-field derivation and
// value validation. All of them unwrap Optional/Nullable/Default wrappers
// through the same helper so required-ness and default values never
// disagree between the mock used for testing and the fields shown to a
// human.
package introspect

import (
	"sync"

	"github.com/adityasai1234/jam-nodes/internal/domain"
)

const (
	placeholderString = "example_string"
	placeholderNumber = 42
)

// Synthesize produces a deterministic value satisfying node without calling
// any real API. It is total: unrecognized variants degrade to nil rather
// than failing.
func Synthesize(node *domain.SchemaNode) interface{} {
	if node == nil {
		return nil
	}

	switch node.Kind {
	case domain.KindString:
		return placeholderString

	case domain.KindNumber:
		return placeholderNumber

	case domain.KindBoolean:
		return true

	case domain.KindNull, domain.KindUndefined:
		return nil

	case domain.KindLiteral:
		return node.LiteralValue

	case domain.KindEnum:
		if len(node.EnumValues) == 0 {
			return nil
		}
		return node.EnumValues[0]

	case domain.KindNativeEnum:
		if len(node.Members) == 0 {
			return nil
		}
		return node.Members[0].Value

	case domain.KindArray:
		// Two items: enough to prove array-handling code paths without
		// unbounded output.
		item := Synthesize(node.Inner)
		return []interface{}{item, Synthesize(node.Inner)}

	case domain.KindObject:
		out := make(map[string]interface{}, len(node.Fields))
		for _, field := range node.Fields {
			out[field.Name] = Synthesize(field.Schema)
		}
		return out

	case domain.KindUnion:
		if len(node.Options) == 0 {
			return nil
		}
		return Synthesize(node.Options[0])

	case domain.KindDiscriminatedUnion:
		if len(node.Variants) == 0 {
			return nil
		}
		return Synthesize(node.Variants[0].Schema)

	case domain.KindOptional, domain.KindNullable, domain.KindPromise, domain.KindEffects:
		return Synthesize(node.Inner)

	case domain.KindDefault:
		if node.DefaultFn != nil {
			return node.DefaultFn()
		}
		return Synthesize(node.Inner)

	case domain.KindRecord:
		return map[string]interface{}{
			"key_1": Synthesize(node.Inner),
			"key_2": Synthesize(node.Inner),
		}

	case domain.KindTuple:
		out := make([]interface{}, len(node.Options))
		for i, item := range node.Options {
			out[i] = Synthesize(item)
		}
		return out

	case domain.KindUnknown, domain.KindAny:
		return map[string]interface{}{"placeholder": true}

	default:
		return nil
	}
}

// Mocker resolves mock values for nodes, consulting a table of named
// overrides before falling back to generic synthesis. Overrides let a host
// register a fixed realistic payload for a node type; their content is
// domain data, not core logic.
type Mocker struct {
	mu        sync.RWMutex
	overrides map[string]interface{}
}

func NewMocker() *Mocker {
	return &Mocker{overrides: make(map[string]interface{})}
}

// RegisterOverride installs a fixed payload for nodeType. Later
// registrations under the same type replace earlier ones.
func (m *Mocker) RegisterOverride(nodeType string, payload interface{}) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.overrides[nodeType] = payload
}

// ForNode returns the override registered for nodeType if present,
// otherwise a generic synthesis of schema.
func (m *Mocker) ForNode(nodeType string, schema *domain.SchemaNode) interface{} {
	m.mu.RLock()
	payload, ok := m.overrides[nodeType]
	m.mu.RUnlock()

	if ok {
		return payload
	}
	return Synthesize(schema)
}
