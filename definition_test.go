package confmerge_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	confmerge "github.com/reoring/confmerge"
)

func TestParseDefinition(t *testing.T) {
	raw := map[string]any{
		"host": map[string]any{"type": "string", "default": "localhost"},
		"server": map[string]any{
			"type":       "conf",
			"definition": map[string]any{"port": map[string]any{"type": "int"}},
		},
		"workers": map[string]any{"type": "list"},
		"extra":   map[string]any{"type": "*"},
	}
	def, err := confmerge.ParseDefinition(raw)
	require.NoError(t, err)

	assert.Equal(t, confmerge.KindString, def["host"].Kind)
	assert.Equal(t, "localhost", def["host"].Default)
	assert.Equal(t, confmerge.KindInt, def["server"].Nested["port"].Kind)
	assert.Equal(t, confmerge.KindList, def["workers"].Kind)
	assert.NotNil(t, def["workers"].Nested)
	assert.Equal(t, confmerge.KindWildcard, def["extra"].Kind)

	back, err := confmerge.ParseDefinition(def.Map())
	require.NoError(t, err)
	assert.Equal(t, def, back)
}

func TestParseDefinition_Errors(t *testing.T) {
	cases := map[string]map[string]any{
		"not a mapping":      {"a": "string"},
		"missing type":       {"a": map[string]any{}},
		"unknown type":       {"a": map[string]any{"type": "uuid"}},
		"nested not mapping": {"a": map[string]any{"type": "conf", "definition": 1}},
		"leaf with nested":   {"a": map[string]any{"type": "int", "definition": map[string]any{}}},
		"deep":               {"a": map[string]any{"type": "conf", "definition": map[string]any{"b": map[string]any{"type": "?"}}}},
	}
	for name, raw := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := confmerge.ParseDefinition(raw)
			assert.True(t, errors.Is(err, confmerge.ErrInvalidDefinition), "got %v", err)
		})
	}
}

func TestKind_StringRoundTrip(t *testing.T) {
	for _, k := range []confmerge.Kind{
		confmerge.KindBool, confmerge.KindInt, confmerge.KindFloat, confmerge.KindString,
		confmerge.KindWildcard, confmerge.KindBlock, confmerge.KindList,
	} {
		got, err := confmerge.ParseKind(k.String())
		require.NoError(t, err)
		assert.Equal(t, k, got)
		assert.True(t, k.Valid())
	}
	assert.False(t, confmerge.KindInvalid.Valid())
	assert.Equal(t, "invalid", confmerge.KindInvalid.String())
}

func TestClassifier(t *testing.T) {
	assert.True(t, confmerge.IsLeaf(confmerge.KindFloat))
	assert.False(t, confmerge.IsLeaf(confmerge.KindWildcard))
	assert.True(t, confmerge.IsWildcard(confmerge.KindWildcard))
	assert.True(t, confmerge.IsAnyBlock(confmerge.KindList))
	assert.True(t, confmerge.IsAnyBlock(confmerge.KindBlock))
	assert.False(t, confmerge.IsBlock(confmerge.KindList))
	assert.False(t, confmerge.IsList(confmerge.KindBlock))
}
