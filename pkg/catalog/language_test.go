package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/vow/pkg/catalog"
)

func TestLanguageMerge(t *testing.T) {
	wrap := false
	base := &catalog.Language{
		Root:      "payload",
		Templates: map[string]string{"string.base": "must be text"},
	}
	overlay := &catalog.Language{
		WrapArrays: &wrap,
		Templates:  map[string]string{"string.base": "tiene que ser texto", "number.base": "must be numeric"},
	}

	merged := base.Merge(overlay)
	assert.Equal(t, "payload", merged.Root)
	require.NotNil(t, merged.WrapArrays)
	assert.False(t, *merged.WrapArrays)
	assert.Equal(t, "tiene que ser texto", merged.Templates["string.base"])
	assert.Equal(t, "must be numeric", merged.Templates["number.base"])

	// Merge never mutates its inputs.
	assert.Equal(t, "must be text", base.Templates["string.base"])
	assert.Nil(t, base.WrapArrays)
}

func TestParseYAML(t *testing.T) {
	t.Run("nested keys flatten to dotted form", func(t *testing.T) {
		doc := []byte(`
root: payload
key: 'el campo "{{!key}}" falla porque '
templates:
  string:
    base: tiene que ser texto
  object:
    rename:
      override: no se puede renombrar {{from}}
`)
		lang, err := catalog.ParseYAML(doc)
		require.NoError(t, err)
		assert.Equal(t, "payload", lang.Root)
		assert.Equal(t, "tiene que ser texto", lang.Templates["string.base"])
		assert.Equal(t, "no se puede renombrar {{from}}", lang.Templates["object.rename.override"])
	})

	t.Run("flat dotted keys pass through", func(t *testing.T) {
		lang, err := catalog.ParseYAML([]byte("templates:\n  string.min: demasiado corto\n"))
		require.NoError(t, err)
		assert.Equal(t, "demasiado corto", lang.Templates["string.min"])
	})

	t.Run("non-string template is rejected", func(t *testing.T) {
		_, err := catalog.ParseYAML([]byte("templates:\n  string:\n    base: 42\n"))
		require.Error(t, err)
		assert.ErrorIs(t, err, catalog.ErrInvalidOverlay)
	})

	t.Run("malformed document is rejected", func(t *testing.T) {
		_, err := catalog.ParseYAML([]byte("\t:bad"))
		assert.ErrorIs(t, err, catalog.ErrInvalidOverlay)
	})
}

func TestParseJSON(t *testing.T) {
	doc := []byte(`{"wrapArrays": false, "templates": {"number": {"min": "too small"}}}`)
	lang, err := catalog.ParseJSON(doc)
	require.NoError(t, err)
	require.NotNil(t, lang.WrapArrays)
	assert.False(t, *lang.WrapArrays)
	assert.Equal(t, "too small", lang.Templates["number.min"])
}
