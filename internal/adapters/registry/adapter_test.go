package registry

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adityasai1234/jam-nodes/internal/domain"
)

func noopExecutor(ctx context.Context, input map[string]interface{}, ec *domain.ExecutionContext) domain.Result {
	return domain.Ok(nil)
}

func testDef(nodeType string) *domain.NodeDefinition {
	return &domain.NodeDefinition{
		Type:              nodeType,
		Name:              "Test " + nodeType,
		Category:          domain.CategoryLogic,
		InputSchema:       domain.Object(),
		OutputSchema:      domain.Object(),
		EstimatedDuration: time.Second,
		Executor:          noopExecutor,
	}
}

func TestRegister_And_Get(t *testing.T) {
	reg := NewAdapter(nil)

	require.NoError(t, reg.Register(testDef("condition")))

	def, err := reg.Get("condition")
	require.NoError(t, err)
	assert.Equal(t, "condition", def.Type)

	assert.True(t, reg.Has("condition"))
	assert.False(t, reg.Has("missing"))
	assert.Equal(t, 1, reg.Count())
}

func TestGet_UnknownType(t *testing.T) {
	reg := NewAdapter(nil)

	_, err := reg.Get("missing")
	require.Error(t, err)
	assert.True(t, domain.IsNotFound(err))
}

func TestRegister_RejectsInvalidDefinitions(t *testing.T) {
	reg := NewAdapter(nil)

	tests := []struct {
		name string
		def  *domain.NodeDefinition
	}{
		{name: "nil definition", def: nil},
		{name: "empty type", def: &domain.NodeDefinition{Executor: noopExecutor}},
		{name: "nil executor", def: &domain.NodeDefinition{Type: "broken"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := reg.Register(tt.def)
			require.Error(t, err)

			var regErr *domain.RegistrationError
			assert.ErrorAs(t, err, &regErr)
		})
	}

	assert.Equal(t, 0, reg.Count())
}

func TestRegister_DuplicatePreservesOriginal(t *testing.T) {
	reg := NewAdapter(nil)

	original := testDef("delay")
	require.NoError(t, reg.Register(original))

	replacement := testDef("delay")
	replacement.Name = "Replacement"
	err := reg.Register(replacement)
	require.Error(t, err)

	var regErr *domain.RegistrationError
	require.ErrorAs(t, err, &regErr)
	assert.Equal(t, "delay", regErr.NodeType)

	def, err := reg.Get("delay")
	require.NoError(t, err)
	assert.Same(t, original, def)
	assert.Equal(t, 1, reg.Count())
}

func TestGetAll_PreservesRegistrationOrder(t *testing.T) {
	reg := NewAdapter(nil)

	for _, nodeType := range []string{"zeta", "alpha", "mid"} {
		require.NoError(t, reg.Register(testDef(nodeType)))
	}

	defs := reg.GetAll()
	require.Len(t, defs, 3)
	assert.Equal(t, "zeta", defs[0].Type)
	assert.Equal(t, "alpha", defs[1].Type)
	assert.Equal(t, "mid", defs[2].Type)
}

func TestGetAllMetadata_OmitsExecutor(t *testing.T) {
	reg := NewAdapter(nil)

	def := testDef("web-search")
	def.Capabilities = domain.Capabilities{SupportsEnrichment: true}
	require.NoError(t, reg.Register(def))

	metas := reg.GetAllMetadata()
	require.Len(t, metas, 1)

	assert.Equal(t, "web-search", metas[0].Type)
	assert.Equal(t, "Test web-search", metas[0].Name)
	assert.Equal(t, domain.CategoryLogic, metas[0].Category)
	assert.True(t, metas[0].Capabilities.SupportsEnrichment)
}
