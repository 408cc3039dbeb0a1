package introspect

import (
	"strings"
	"unicode"

	"github.com/adityasai1234/jam-nodes/internal/domain"
)

// FieldType classifies a field for UI-agnostic form rendering.
type FieldType string

const (
	FieldText     FieldType = "text"
	FieldNumber   FieldType = "number"
	FieldCheckbox FieldType = "checkbox"
	FieldSelect   FieldType = "select"
	FieldArray    FieldType = "array"
	FieldObject   FieldType = "object"
)

// FieldDescriptor describes one input field of a node, derived from its
// schema. Hosts render it as a form field or an interactive prompt.
type FieldDescriptor struct {
	Name        string      `json:"name"`
	Label       string      `json:"label"`
	Type        FieldType   `json:"type"`
	Required    bool        `json:"required"`
	Default     interface{} `json:"default,omitempty"`
	Options     []string    `json:"options,omitempty"`
	Description string      `json:"description,omitempty"`
}

// DeriveFields turns an object schema into ordered form-field descriptors.
// Any non-object root yields an empty sequence. Like Synthesize it is total
// and never fails on unsupported variants.
func DeriveFields(node *domain.SchemaNode) []FieldDescriptor {
	root := node.Unwrap()
	if root == nil || root.Kind != domain.KindObject {
		return nil
	}

	fields := make([]FieldDescriptor, 0, len(root.Fields))
	for _, field := range root.Fields {
		fields = append(fields, deriveField(field.Name, field.Schema))
	}
	return fields
}

func deriveField(name string, schema *domain.SchemaNode) FieldDescriptor {
	desc := FieldDescriptor{
		Name:     name,
		Label:    humanizeLabel(name),
		Type:     FieldText,
		Required: true,
	}

	// Walk the wrapper chain by hand: Optional and Default clear the
	// required flag (and Default supplies the default value), Nullable and
	// the pass-through wrappers only hide the inner type. The description
	// comes from the outermost node that carries one.
	node := schema
	for node != nil {
		if desc.Description == "" && node.Description != "" {
			desc.Description = node.Description
		}

		switch node.Kind {
		case domain.KindOptional:
			desc.Required = false
			node = node.Inner
		case domain.KindDefault:
			desc.Required = false
			if node.DefaultFn != nil {
				desc.Default = node.DefaultFn()
			}
			node = node.Inner
		case domain.KindNullable, domain.KindPromise, domain.KindEffects:
			node = node.Inner
		default:
			desc.Type, desc.Options = classifyField(node)
			return desc
		}
	}

	return desc
}

func classifyField(node *domain.SchemaNode) (FieldType, []string) {
	switch node.Kind {
	case domain.KindNumber:
		return FieldNumber, nil
	case domain.KindBoolean:
		return FieldCheckbox, nil
	case domain.KindEnum:
		options := make([]string, len(node.EnumValues))
		copy(options, node.EnumValues)
		return FieldSelect, options
	case domain.KindArray:
		return FieldArray, nil
	case domain.KindObject, domain.KindRecord:
		return FieldObject, nil
	default:
		return FieldText, nil
	}
}

// humanizeLabel turns a declared field name into a display label: each
// internal capitalization boundary (and any underscore or dash) becomes a
// word break, and every word is capitalized. "maxResults" -> "Max Results".
func humanizeLabel(name string) string {
	if name == "" {
		return ""
	}

	runes := []rune(name)
	var words []string
	var current []rune

	flush := func() {
		if len(current) > 0 {
			words = append(words, string(current))
			current = nil
		}
	}

	for i, r := range runes {
		switch {
		case r == '_' || r == '-' || r == ' ':
			flush()
		case unicode.IsUpper(r) && i > 0:
			// Boundary at lower->Upper, or at the last capital of an
			// acronym run ("APIKey" -> "API", "Key").
			prevLower := unicode.IsLower(runes[i-1])
			nextLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])
			if prevLower || (nextLower && unicode.IsUpper(runes[i-1])) {
				flush()
			}
			current = append(current, r)
		default:
			current = append(current, r)
		}
	}
	flush()

	for i, word := range words {
		runes := []rune(word)
		runes[0] = unicode.ToUpper(runes[0])
		words[i] = string(runes)
	}

	return strings.Join(words, " ")
}
