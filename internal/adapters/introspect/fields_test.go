package introspect

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adityasai1234/jam-nodes/internal/domain"
)

func TestDeriveFields_RequiredAndOrder(t *testing.T) {
	schema := domain.Object(
		domain.Field("a", domain.Optional(domain.Number())),
		domain.Field("b", domain.String()),
	)

	fields := DeriveFields(schema)
	require.Len(t, fields, 2)

	assert.Equal(t, "a", fields[0].Name)
	assert.Equal(t, FieldNumber, fields[0].Type)
	assert.False(t, fields[0].Required)

	assert.Equal(t, "b", fields[1].Name)
	assert.Equal(t, FieldText, fields[1].Type)
	assert.True(t, fields[1].Required)
}

func TestDeriveFields_TypeClassification(t *testing.T) {
	schema := domain.Object(
		domain.Field("query", domain.String()),
		domain.Field("limit", domain.Number()),
		domain.Field("verbose", domain.Boolean()),
		domain.Field("mode", domain.Enum("fast", "thorough")),
		domain.Field("tags", domain.Array(domain.String())),
		domain.Field("headers", domain.Record(domain.String())),
		domain.Field("payload", domain.Object(domain.Field("x", domain.Number()))),
	)

	fields := DeriveFields(schema)
	require.Len(t, fields, 7)

	expected := []FieldType{
		FieldText, FieldNumber, FieldCheckbox, FieldSelect,
		FieldArray, FieldObject, FieldObject,
	}
	for i, field := range fields {
		assert.Equal(t, expected[i], field.Type, field.Name)
	}

	assert.Equal(t, []string{"fast", "thorough"}, fields[3].Options)
}

func TestDeriveFields_DefaultClearsRequiredAndCarriesValue(t *testing.T) {
	schema := domain.Object(
		domain.Field("limit", domain.DefaultValue(domain.Number(), 10)),
	)

	fields := DeriveFields(schema)
	require.Len(t, fields, 1)

	assert.False(t, fields[0].Required)
	assert.Equal(t, 10, fields[0].Default)
	assert.Equal(t, FieldNumber, fields[0].Type)
}

func TestDeriveFields_NullableStaysRequired(t *testing.T) {
	schema := domain.Object(
		domain.Field("note", domain.Nullable(domain.String())),
	)

	fields := DeriveFields(schema)
	require.Len(t, fields, 1)
	assert.True(t, fields[0].Required)
	assert.Equal(t, FieldText, fields[0].Type)
}

func TestDeriveFields_DescriptionFromOutermostNode(t *testing.T) {
	schema := domain.Object(
		domain.Field("query", domain.Optional(domain.String().Describe("inner")).Describe("outer")),
	)

	fields := DeriveFields(schema)
	require.Len(t, fields, 1)
	assert.Equal(t, "outer", fields[0].Description)
}

func TestDeriveFields_NonObjectRoot(t *testing.T) {
	assert.Empty(t, DeriveFields(domain.String()))
	assert.Empty(t, DeriveFields(domain.Array(domain.Object())))
	assert.Empty(t, DeriveFields(nil))
}

func TestDeriveFields_UnwrapsRootWrappers(t *testing.T) {
	schema := domain.Optional(domain.Object(
		domain.Field("name", domain.String()),
	))

	fields := DeriveFields(schema)
	require.Len(t, fields, 1)
	assert.Equal(t, "name", fields[0].Name)
}

func TestHumanizeLabel(t *testing.T) {
	tests := []struct {
		name     string
		expected string
	}{
		{"maxResults", "Max Results"},
		{"api_key", "Api Key"},
		{"base-url", "Base Url"},
		{"query", "Query"},
		{"APIKey", "API Key"},
		{"userID", "User ID"},
		{"HTTPRequestTimeout", "HTTP Request Timeout"},
		{"a", "A"},
		{"", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, humanizeLabel(tt.name), tt.name)
	}
}
