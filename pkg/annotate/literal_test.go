package annotate_test

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/vow/pkg/annotate"
)

func TestLiteral(t *testing.T) {
	t.Run("scalars", func(t *testing.T) {
		assert.Equal(t, "null", annotate.Literal(nil))
		assert.Equal(t, `"hi"`, annotate.Literal("hi"))
		assert.Equal(t, "true", annotate.Literal(true))
		assert.Equal(t, "42", annotate.Literal(42))
		assert.Equal(t, "42", annotate.Literal(int64(42)))
	})

	t.Run("floats drop trailing zeros", func(t *testing.T) {
		assert.Equal(t, "4", annotate.Literal(4.0))
		assert.Equal(t, "4.5", annotate.Literal(4.5))
	})

	t.Run("non-finite floats", func(t *testing.T) {
		assert.Equal(t, "NaN", annotate.Literal(math.NaN()))
		assert.Equal(t, "Infinity", annotate.Literal(math.Inf(1)))
		assert.Equal(t, "-Infinity", annotate.Literal(math.Inf(-1)))
	})

	t.Run("times render as quoted RFC 3339", func(t *testing.T) {
		ts := time.Date(2021, 1, 1, 0, 0, 0, 0, time.UTC)
		assert.Equal(t, `"2021-01-01T00:00:00Z"`, annotate.Literal(ts))
	})

	t.Run("functions and channels render their type", func(t *testing.T) {
		assert.Equal(t, "func(int) string", annotate.Literal(func(int) string { return "" }))
		assert.Equal(t, "chan int", annotate.Literal(make(chan int)))
	})

	t.Run("containers render compactly", func(t *testing.T) {
		assert.Equal(t, `[1, "two", null]`, annotate.Literal([]any{1.0, "two", nil}))
		assert.Equal(t, `{"a": 1, "b": "x"}`, annotate.Literal(map[string]any{"b": "x", "a": 1.0}))
	})

	t.Run("pointers dereference", func(t *testing.T) {
		s := "x"
		assert.Equal(t, `"x"`, annotate.Literal(&s))

		var p *string
		assert.Equal(t, "null", annotate.Literal(any(p)))
	})

	t.Run("cyclic containers stop at the depth guard", func(t *testing.T) {
		m := map[string]any{}
		m["self"] = m
		out := annotate.Literal(m)
		assert.Contains(t, out, "...")
	})
}
