package domain

// Kind identifies the variant of a SchemaNode. The set is closed: the
// introspection engine matches exhaustively over it and degrades to a safe
// default on anything it does not recognize.
type Kind int

const (
	KindString Kind = iota
	KindNumber
	KindBoolean
	KindNull
	KindUndefined
	KindLiteral
	KindEnum
	KindNativeEnum
	KindArray
	KindObject
	KindUnion
	KindDiscriminatedUnion
	KindOptional
	KindNullable
	KindDefault
	KindRecord
	KindTuple
	KindPromise
	KindEffects
	KindUnknown
	KindAny
)

func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindNumber:
		return "number"
	case KindBoolean:
		return "boolean"
	case KindNull:
		return "null"
	case KindUndefined:
		return "undefined"
	case KindLiteral:
		return "literal"
	case KindEnum:
		return "enum"
	case KindNativeEnum:
		return "native_enum"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	case KindUnion:
		return "union"
	case KindDiscriminatedUnion:
		return "discriminated_union"
	case KindOptional:
		return "optional"
	case KindNullable:
		return "nullable"
	case KindDefault:
		return "default"
	case KindRecord:
		return "record"
	case KindTuple:
		return "tuple"
	case KindPromise:
		return "promise"
	case KindEffects:
		return "effects"
	case KindUnknown:
		return "unknown"
	case KindAny:
		return "any"
	default:
		return "invalid"
	}
}

// SchemaNode is the tagged-variant description of an expected value shape.
// Which auxiliary fields are meaningful depends on Kind:
//
//	Literal                    LiteralValue
//	Enum                       EnumValues (declaration order)
//	NativeEnum                 Members (declaration order)
//	Array, Record              Inner (item / value schema)
//	Optional, Nullable,
//	Promise, Effects           Inner
//	Default                    Inner + DefaultFn
//	Object                     Fields (declaration order)
//	Union                      Options (declaration order)
//	Tuple                      Options (positional)
//	DiscriminatedUnion         Variants (declaration order)
//
// Schema trees are finite; self-referential schemas are not supported, so
// every traversal terminates.
type SchemaNode struct {
	Kind         Kind
	Description  string
	LiteralValue interface{}
	EnumValues   []string
	Members      []EnumMember
	Inner        *SchemaNode
	Fields       []ObjectField
	Options      []*SchemaNode
	Variants     []UnionVariant
	DefaultFn    func() interface{}
}

// EnumMember is one name/value pair of a native enum, in declaration order.
type EnumMember struct {
	Name  string
	Value interface{}
}

// ObjectField is one named field of an object schema. Order is significant
// for display and synthesis.
type ObjectField struct {
	Name   string
	Schema *SchemaNode
}

// UnionVariant is one option of a discriminated union, keyed by its
// discriminator tag, in declaration order.
type UnionVariant struct {
	Tag    string
	Schema *SchemaNode
}

// Describe attaches a human-readable description and returns the node so
// builder chains stay fluent.
func (s *SchemaNode) Describe(description string) *SchemaNode {
	s.Description = description
	return s
}

// Unwrap strips Optional, Nullable, Default, Promise and Effects wrappers
// and returns the first node that is not a transparent wrapper. Mock
// synthesis and field derivation must treat the wrapper chain identically;
// both go through this single helper.
func (s *SchemaNode) Unwrap() *SchemaNode {
	node := s
	for node != nil {
		switch node.Kind {
		case KindOptional, KindNullable, KindDefault, KindPromise, KindEffects:
			node = node.Inner
		default:
			return node
		}
	}
	return nil
}

// Builder constructors. Node authors compose schemas through these rather
// than by populating SchemaNode structs directly.

func String() *SchemaNode  { return &SchemaNode{Kind: KindString} }
func Number() *SchemaNode  { return &SchemaNode{Kind: KindNumber} }
func Boolean() *SchemaNode { return &SchemaNode{Kind: KindBoolean} }
func Null() *SchemaNode    { return &SchemaNode{Kind: KindNull} }
func Undef() *SchemaNode   { return &SchemaNode{Kind: KindUndefined} }
func Unknown() *SchemaNode { return &SchemaNode{Kind: KindUnknown} }
func Any() *SchemaNode     { return &SchemaNode{Kind: KindAny} }

func Literal(value interface{}) *SchemaNode {
	return &SchemaNode{Kind: KindLiteral, LiteralValue: value}
}

func Enum(values ...string) *SchemaNode {
	return &SchemaNode{Kind: KindEnum, EnumValues: values}
}

func NativeEnum(members ...EnumMember) *SchemaNode {
	return &SchemaNode{Kind: KindNativeEnum, Members: members}
}

func Array(item *SchemaNode) *SchemaNode {
	return &SchemaNode{Kind: KindArray, Inner: item}
}

func Object(fields ...ObjectField) *SchemaNode {
	return &SchemaNode{Kind: KindObject, Fields: fields}
}

func Field(name string, schema *SchemaNode) ObjectField {
	return ObjectField{Name: name, Schema: schema}
}

func Union(options ...*SchemaNode) *SchemaNode {
	return &SchemaNode{Kind: KindUnion, Options: options}
}

func DiscriminatedUnion(variants ...UnionVariant) *SchemaNode {
	return &SchemaNode{Kind: KindDiscriminatedUnion, Variants: variants}
}

func Variant(tag string, schema *SchemaNode) UnionVariant {
	return UnionVariant{Tag: tag, Schema: schema}
}

func Optional(inner *SchemaNode) *SchemaNode {
	return &SchemaNode{Kind: KindOptional, Inner: inner}
}

func Nullable(inner *SchemaNode) *SchemaNode {
	return &SchemaNode{Kind: KindNullable, Inner: inner}
}

// Default wraps inner with a lazily produced default value. The thunk runs
// each time the default is needed so mutable defaults are never shared.
func Default(inner *SchemaNode, defaultFn func() interface{}) *SchemaNode {
	return &SchemaNode{Kind: KindDefault, Inner: inner, DefaultFn: defaultFn}
}

// DefaultValue is the common case of a fixed default.
func DefaultValue(inner *SchemaNode, value interface{}) *SchemaNode {
	return Default(inner, func() interface{} { return value })
}

func Record(valueSchema *SchemaNode) *SchemaNode {
	return &SchemaNode{Kind: KindRecord, Inner: valueSchema}
}

func Tuple(items ...*SchemaNode) *SchemaNode {
	return &SchemaNode{Kind: KindTuple, Options: items}
}

func Promise(inner *SchemaNode) *SchemaNode {
	return &SchemaNode{Kind: KindPromise, Inner: inner}
}

func Effects(inner *SchemaNode) *SchemaNode {
	return &SchemaNode{Kind: KindEffects, Inner: inner}
}
