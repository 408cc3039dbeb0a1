package introspect

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adityasai1234/jam-nodes/internal/domain"
)

func TestSynthesize_Leaves(t *testing.T) {
	assert.Equal(t, "example_string", Synthesize(domain.String()))
	assert.Equal(t, 42, Synthesize(domain.Number()))
	assert.Equal(t, true, Synthesize(domain.Boolean()))
	assert.Nil(t, Synthesize(domain.Null()))
	assert.Nil(t, Synthesize(domain.Undef()))
	assert.Equal(t, "fixed", Synthesize(domain.Literal("fixed")))
}

func TestSynthesize_EnumTakesFirstDeclaredValue(t *testing.T) {
	assert.Equal(t, "draft", Synthesize(domain.Enum("draft", "published", "archived")))

	native := domain.NativeEnum(
		domain.EnumMember{Name: "Low", Value: 1},
		domain.EnumMember{Name: "High", Value: 2},
	)
	assert.Equal(t, 1, Synthesize(native))
}

func TestSynthesize_ArrayHasExactlyTwoItems(t *testing.T) {
	value := Synthesize(domain.Array(domain.String()))

	items, ok := value.([]interface{})
	require.True(t, ok)
	assert.Len(t, items, 2)
	assert.Equal(t, "example_string", items[0])
}

func TestSynthesize_ObjectPreservesFieldOrderAndValues(t *testing.T) {
	schema := domain.Object(
		domain.Field("title", domain.String()),
		domain.Field("count", domain.Number()),
		domain.Field("active", domain.Boolean()),
	)

	value := Synthesize(schema)
	obj, ok := value.(map[string]interface{})
	require.True(t, ok)

	assert.Equal(t, "example_string", obj["title"])
	assert.Equal(t, 42, obj["count"])
	assert.Equal(t, true, obj["active"])
}

func TestSynthesize_UnionTakesFirstOption(t *testing.T) {
	assert.Equal(t, "example_string", Synthesize(domain.Union(domain.String(), domain.Number())))

	du := domain.DiscriminatedUnion(
		domain.Variant("a", domain.Object(domain.Field("kind", domain.Literal("a")))),
		domain.Variant("b", domain.Object(domain.Field("kind", domain.Literal("b")))),
	)
	obj, ok := Synthesize(du).(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "a", obj["kind"])
}

func TestSynthesize_DefaultUsesSuppliedValueNotInner(t *testing.T) {
	schema := domain.DefaultValue(domain.Number(), 10)
	assert.Equal(t, 10, Synthesize(schema))
}

func TestSynthesize_Wrappers(t *testing.T) {
	assert.Equal(t, "example_string", Synthesize(domain.Optional(domain.String())))
	assert.Equal(t, "example_string", Synthesize(domain.Nullable(domain.String())))
	assert.Equal(t, "example_string", Synthesize(domain.Promise(domain.String())))
	assert.Equal(t, "example_string", Synthesize(domain.Effects(domain.String())))
}

func TestSynthesize_RecordHasTwoKeys(t *testing.T) {
	value := Synthesize(domain.Record(domain.Number()))

	obj, ok := value.(map[string]interface{})
	require.True(t, ok)
	assert.Len(t, obj, 2)
	assert.Equal(t, 42, obj["key_1"])
	assert.Equal(t, 42, obj["key_2"])
}

func TestSynthesize_TuplePreservesArity(t *testing.T) {
	value := Synthesize(domain.Tuple(domain.String(), domain.Number(), domain.Boolean()))

	items, ok := value.([]interface{})
	require.True(t, ok)
	require.Len(t, items, 3)
	assert.Equal(t, "example_string", items[0])
	assert.Equal(t, 42, items[1])
	assert.Equal(t, true, items[2])
}

func TestSynthesize_UnknownAndAny(t *testing.T) {
	assert.Equal(t, map[string]interface{}{"placeholder": true}, Synthesize(domain.Unknown()))
	assert.Equal(t, map[string]interface{}{"placeholder": true}, Synthesize(domain.Any()))
}

func TestSynthesize_NilSchema(t *testing.T) {
	assert.Nil(t, Synthesize(nil))
}

// Every supported variant must synthesize a value that re-validates
// against the schema that produced it.
func TestSynthesize_RoundTrip(t *testing.T) {
	schemas := map[string]*domain.SchemaNode{
		"string":  domain.String(),
		"number":  domain.Number(),
		"boolean": domain.Boolean(),
		"null":    domain.Null(),
		"literal": domain.Literal("x"),
		"enum":    domain.Enum("a", "b"),
		"native_enum": domain.NativeEnum(
			domain.EnumMember{Name: "One", Value: 1},
		),
		"array":  domain.Array(domain.Number()),
		"tuple":  domain.Tuple(domain.String(), domain.Boolean()),
		"record": domain.Record(domain.String()),
		"object": domain.Object(
			domain.Field("name", domain.String()),
			domain.Field("tags", domain.Array(domain.String())),
			domain.Field("score", domain.Optional(domain.Number())),
			domain.Field("limit", domain.DefaultValue(domain.Number(), 10)),
		),
		"union": domain.Union(domain.String(), domain.Number()),
		"discriminated_union": domain.DiscriminatedUnion(
			domain.Variant("a", domain.Object(domain.Field("kind", domain.Literal("a")))),
		),
		"optional": domain.Optional(domain.String()),
		"nullable": domain.Nullable(domain.Number()),
		"default":  domain.DefaultValue(domain.String(), "fallback"),
		"promise":  domain.Promise(domain.Boolean()),
		"effects":  domain.Effects(domain.String()),
		"unknown":  domain.Unknown(),
		"any":      domain.Any(),
		"nested": domain.Object(
			domain.Field("items", domain.Array(domain.Object(
				domain.Field("id", domain.Number()),
				domain.Field("meta", domain.Record(domain.String())),
			))),
		),
	}

	for name, schema := range schemas {
		t.Run(name, func(t *testing.T) {
			value := Synthesize(schema)
			assert.NoError(t, Validate(schema, value))
		})
	}
}

func TestSynthesize_Deterministic(t *testing.T) {
	schema := domain.Object(
		domain.Field("name", domain.String()),
		domain.Field("items", domain.Array(domain.Record(domain.Number()))),
		domain.Field("mode", domain.Enum("auto", "manual")),
	)

	first := Synthesize(schema)
	second := Synthesize(schema)
	assert.Equal(t, first, second)
}

func TestMocker_OverrideTakesPrecedence(t *testing.T) {
	mocker := NewMocker()

	schema := domain.Object(domain.Field("generic", domain.String()))
	payload := map[string]interface{}{
		"results": []interface{}{
			map[string]interface{}{"title": "Acme Corp", "url": "https://acme.example"},
		},
	}

	mocker.RegisterOverride("web-search", payload)

	assert.Equal(t, payload, mocker.ForNode("web-search", schema))

	// Types without an override fall back to generic synthesis.
	generic, ok := mocker.ForNode("other-node", schema).(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "example_string", generic["generic"])
}
