package catalog_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/vow/pkg/catalog"
)

func TestResolverDefaults(t *testing.T) {
	res := catalog.NewResolver(nil)

	tmpl, ok := res.Template("string.base")
	assert.True(t, ok)
	assert.Equal(t, "must be a string", tmpl)

	assert.Equal(t, "value", res.Root())
	assert.Equal(t, `child "{{!key}}" fails because `, res.KeyPrefix())
	assert.True(t, res.WrapArrays())
}

func TestResolverOverlay(t *testing.T) {
	wrap := false
	res := catalog.NewResolver(&catalog.Language{
		Root:       "payload",
		Key:        "field {{!key}} invalid: ",
		WrapArrays: &wrap,
		Templates:  map[string]string{"string.base": "must be text"},
	})

	tmpl, ok := res.Template("string.base")
	assert.True(t, ok)
	assert.Equal(t, "must be text", tmpl)

	// Unmatched built-ins remain.
	tmpl, ok = res.Template("number.base")
	assert.True(t, ok)
	assert.Equal(t, "must be a number", tmpl)

	assert.Equal(t, "payload", res.Root())
	assert.Equal(t, "field {{!key}} invalid: ", res.KeyPrefix())
	assert.False(t, res.WrapArrays())
}

func TestResolverMissingKey(t *testing.T) {
	t.Run("falls back to the key itself", func(t *testing.T) {
		res := catalog.NewResolver(nil)
		tmpl, ok := res.Template("custom.nope")
		assert.False(t, ok)
		assert.Equal(t, "custom.nope", tmpl)
	})

	t.Run("fallback can be disabled", func(t *testing.T) {
		res := catalog.NewResolver(nil, catalog.WithoutKeyFallback())
		tmpl, ok := res.Template("custom.nope")
		assert.False(t, ok)
		assert.Empty(t, tmpl)
	})

	t.Run("miss is logged", func(t *testing.T) {
		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		res := catalog.NewResolver(nil, catalog.WithLogger(logger))

		res.Template("custom.nope")
		assert.Contains(t, buf.String(), "custom.nope")
	})
}

func TestDefault(t *testing.T) {
	tmpl, ok := catalog.Default("any.required")
	assert.True(t, ok)
	assert.Equal(t, "is required", tmpl)

	_, ok = catalog.Default("no.such.key")
	assert.False(t, ok)
}
