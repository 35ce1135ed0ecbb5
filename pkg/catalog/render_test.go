package catalog_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/vow/pkg/catalog"
)

func TestRender(t *testing.T) {
	t.Run("quoted token", func(t *testing.T) {
		out := catalog.Render("must equal {{other}}", map[string]any{"other": "abc"})
		assert.Equal(t, `must equal "abc"`, out)
	})

	t.Run("literal token", func(t *testing.T) {
		out := catalog.Render("must be at least {{!limit}}", map[string]any{"limit": 5})
		assert.Equal(t, "must be at least 5", out)
	})

	t.Run("unknown token is preserved", func(t *testing.T) {
		out := catalog.Render("got {{nothing}}", map[string]any{})
		assert.Equal(t, "got {{nothing}}", out)
	})

	t.Run("key names are HTML escaped", func(t *testing.T) {
		out := catalog.Render(`child "{{!key}}" fails because `, map[string]any{"key": "a()"})
		assert.Equal(t, `child "a&#x28;&#x29;" fails because `, out)
	})

	t.Run("labels are HTML escaped", func(t *testing.T) {
		out := catalog.Render("{{label}}", map[string]any{"label": "<b>"})
		assert.Equal(t, `"&lt;b&gt;"`, out)
	})

	t.Run("non-key values are not escaped", func(t *testing.T) {
		out := catalog.Render("{{!pattern}}", map[string]any{"pattern": "^(a)$"})
		assert.Equal(t, "^(a)$", out)
	})
}

func TestContextValue(t *testing.T) {
	assert.Equal(t, "plain", catalog.ContextValue("plain"))
	assert.Equal(t, "[a, b]", catalog.ContextValue([]any{"a", "b"}))
	assert.Equal(t, "[x, 2]", catalog.ContextValue([]any{"x", 2}))
	assert.Equal(t, "NaN", catalog.ContextValue(math.NaN()))
	assert.Equal(t, "null", catalog.ContextValue(nil))
	assert.Equal(t, "4", catalog.ContextValue(4.0))
}

func TestEscapeHTML(t *testing.T) {
	assert.Equal(t, "a&#x28;&#x29;", catalog.EscapeHTML("a()"))
	assert.Equal(t, "&lt;script&gt;", catalog.EscapeHTML("<script>"))
	assert.Equal(t, "a&amp;b", catalog.EscapeHTML("a&b"))
	assert.Equal(t, "plain", catalog.EscapeHTML("plain"))
}
