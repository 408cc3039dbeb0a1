package introspect

import (
	"fmt"
	"reflect"

	"github.com/adityasai1234/jam-nodes/internal/domain"
)

// Validate checks value against node and returns a descriptive error naming
// the offending path when it does not conform. Values are expected in plain
// JSON shapes (map[string]interface{}, []interface{}, string, bool, nil and
// the numeric types); callers with typed structs normalize through xjson
// first.
//
// Object validation accepts and ignores unknown keys: callers are free to
// carry extra context alongside declared fields.
func Validate(node *domain.SchemaNode, value interface{}) error {
	return validate(node, value, "")
}

func validate(node *domain.SchemaNode, value interface{}, path string) error {
	if node == nil {
		return nil
	}

	switch node.Kind {
	case domain.KindString:
		if _, ok := value.(string); !ok {
			return domain.NewValidationError(path, "expected string, got %s", typeName(value))
		}
		return nil

	case domain.KindNumber:
		if !isNumber(value) {
			return domain.NewValidationError(path, "expected number, got %s", typeName(value))
		}
		return nil

	case domain.KindBoolean:
		if _, ok := value.(bool); !ok {
			return domain.NewValidationError(path, "expected boolean, got %s", typeName(value))
		}
		return nil

	case domain.KindNull, domain.KindUndefined:
		if value != nil {
			return domain.NewValidationError(path, "expected %s, got %s", node.Kind, typeName(value))
		}
		return nil

	case domain.KindLiteral:
		if !looseEqual(value, node.LiteralValue) {
			return domain.NewValidationError(path, "expected literal %v", node.LiteralValue)
		}
		return nil

	case domain.KindEnum:
		s, ok := value.(string)
		if !ok {
			return domain.NewValidationError(path, "expected one of %v, got %s", node.EnumValues, typeName(value))
		}
		for _, v := range node.EnumValues {
			if v == s {
				return nil
			}
		}
		return domain.NewValidationError(path, "value %q is not one of %v", s, node.EnumValues)

	case domain.KindNativeEnum:
		for _, member := range node.Members {
			if looseEqual(value, member.Value) {
				return nil
			}
		}
		return domain.NewValidationError(path, "value %v is not a member of the enum", value)

	case domain.KindArray:
		items, ok := value.([]interface{})
		if !ok {
			return domain.NewValidationError(path, "expected array, got %s", typeName(value))
		}
		for i, item := range items {
			if err := validate(node.Inner, item, indexPath(path, i)); err != nil {
				return err
			}
		}
		return nil

	case domain.KindObject:
		obj, ok := value.(map[string]interface{})
		if !ok {
			return domain.NewValidationError(path, "expected object, got %s", typeName(value))
		}
		for _, field := range node.Fields {
			fieldValue, present := obj[field.Name]
			fieldPath := joinPath(path, field.Name)
			if !present {
				if isAbsentAllowed(field.Schema) {
					continue
				}
				return domain.NewValidationError(fieldPath, "required field is missing")
			}
			if err := validate(field.Schema, fieldValue, fieldPath); err != nil {
				return err
			}
		}
		return nil

	case domain.KindUnion:
		for _, option := range node.Options {
			if validate(option, value, path) == nil {
				return nil
			}
		}
		return domain.NewValidationError(path, "value matches none of %d union options", len(node.Options))

	case domain.KindDiscriminatedUnion:
		for _, variant := range node.Variants {
			if validate(variant.Schema, value, path) == nil {
				return nil
			}
		}
		return domain.NewValidationError(path, "value matches none of %d union variants", len(node.Variants))

	case domain.KindOptional:
		if value == nil {
			return nil
		}
		return validate(node.Inner, value, path)

	case domain.KindNullable:
		if value == nil {
			return nil
		}
		return validate(node.Inner, value, path)

	case domain.KindDefault:
		if value == nil {
			return nil
		}
		return validate(node.Inner, value, path)

	case domain.KindRecord:
		obj, ok := value.(map[string]interface{})
		if !ok {
			return domain.NewValidationError(path, "expected record, got %s", typeName(value))
		}
		for key, entry := range obj {
			if err := validate(node.Inner, entry, joinPath(path, key)); err != nil {
				return err
			}
		}
		return nil

	case domain.KindTuple:
		items, ok := value.([]interface{})
		if !ok {
			return domain.NewValidationError(path, "expected tuple, got %s", typeName(value))
		}
		if len(items) != len(node.Options) {
			return domain.NewValidationError(path, "expected tuple of %d items, got %d", len(node.Options), len(items))
		}
		for i, item := range items {
			if err := validate(node.Options[i], item, indexPath(path, i)); err != nil {
				return err
			}
		}
		return nil

	case domain.KindPromise, domain.KindEffects:
		return validate(node.Inner, value, path)

	case domain.KindUnknown, domain.KindAny:
		return nil

	default:
		// Unrecognized variants are permissive rather than fatal; the
		// variant set is closed but a safe default keeps validation total.
		return nil
	}
}

// isAbsentAllowed reports whether a missing object field satisfies its
// schema, which is the case for optional and defaulted fields and for
// fields declared undefined.
func isAbsentAllowed(node *domain.SchemaNode) bool {
	for node != nil {
		switch node.Kind {
		case domain.KindOptional, domain.KindDefault, domain.KindUndefined:
			return true
		case domain.KindNullable, domain.KindPromise, domain.KindEffects:
			node = node.Inner
		case domain.KindUnknown, domain.KindAny:
			return true
		default:
			return false
		}
	}
	return false
}

func isNumber(value interface{}) bool {
	switch value.(type) {
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64, float32, float64:
		return true
	default:
		return false
	}
}

// looseEqual compares values after normalizing numbers to float64, since
// JSON decoding and Go literals disagree on integer types.
func looseEqual(a, b interface{}) bool {
	if isNumber(a) && isNumber(b) {
		return toFloat(a) == toFloat(b)
	}
	return reflect.DeepEqual(a, b)
}

func toFloat(value interface{}) float64 {
	switch v := value.(type) {
	case int:
		return float64(v)
	case int8:
		return float64(v)
	case int16:
		return float64(v)
	case int32:
		return float64(v)
	case int64:
		return float64(v)
	case uint:
		return float64(v)
	case uint8:
		return float64(v)
	case uint16:
		return float64(v)
	case uint32:
		return float64(v)
	case uint64:
		return float64(v)
	case float32:
		return float64(v)
	case float64:
		return v
	default:
		return 0
	}
}

func typeName(value interface{}) string {
	if value == nil {
		return "null"
	}
	switch value.(type) {
	case string:
		return "string"
	case bool:
		return "boolean"
	case map[string]interface{}:
		return "object"
	case []interface{}:
		return "array"
	default:
		if isNumber(value) {
			return "number"
		}
		return fmt.Sprintf("%T", value)
	}
}

func joinPath(path, segment string) string {
	if path == "" {
		return segment
	}
	return path + "." + segment
}

func indexPath(path string, i int) string {
	return fmt.Sprintf("%s[%d]", path, i)
}
