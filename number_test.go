package vow_test

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/vow"
)

func TestNumberRules(t *testing.T) {
	t.Run("min boundary is inclusive", func(t *testing.T) {
		_, err := vow.Validate(4, vow.Number().Min(4))
		assert.NoError(t, err)

		_, err = vow.Validate(3.9, vow.Number().Min(4))
		assert.Equal(t, "number.min", failType(t, err))
	})

	t.Run("greater is strict", func(t *testing.T) {
		_, err := vow.Validate(4, vow.Number().Greater(4))
		assert.Equal(t, "number.greater", failType(t, err))
	})

	t.Run("integer", func(t *testing.T) {
		_, err := vow.Validate(4.5, vow.Number().Integer())
		assert.Equal(t, "number.integer", failType(t, err))

		_, err = vow.Validate(4.0, vow.Number().Integer())
		assert.NoError(t, err)
	})

	t.Run("positive and negative", func(t *testing.T) {
		_, err := vow.Validate(0, vow.Number().Positive())
		assert.Equal(t, "number.positive", failType(t, err))

		_, err = vow.Validate(-1, vow.Number().Negative())
		assert.NoError(t, err)
	})

	t.Run("multiple", func(t *testing.T) {
		_, err := vow.Validate(9, vow.Number().Multiple(3))
		assert.NoError(t, err)

		_, err = vow.Validate(10, vow.Number().Multiple(3))
		assert.Equal(t, "number.multiple", failType(t, err))
	})

	t.Run("NaN is not a number", func(t *testing.T) {
		_, err := vow.Validate(math.NaN(), vow.Number())
		assert.Equal(t, "number.base", failType(t, err))
	})

	t.Run("message renders the limit unquoted", func(t *testing.T) {
		_, err := vow.Validate(1, vow.Number().Min(4))
		verr := vow.ExtractValidationError(err)
		require.NotNil(t, verr)
		assert.Equal(t, `"value" must be larger than or equal to 4`, verr.Details[0].Message)
	})
}

func TestBoolConversion(t *testing.T) {
	out, err := vow.Validate("true", vow.Bool())
	require.NoError(t, err)
	assert.Equal(t, true, out)

	_, err = vow.Validate("yes", vow.Bool())
	assert.Equal(t, "boolean.base", failType(t, err))

	_, err = vow.Validate("true", vow.Bool(), vow.WithoutConversion())
	assert.Equal(t, "boolean.base", failType(t, err))
}

func TestDateConversion(t *testing.T) {
	t.Run("accepts time.Time natively", func(t *testing.T) {
		_, err := vow.Validate(time.Now(), vow.Date(), vow.WithoutConversion())
		assert.NoError(t, err)
	})

	t.Run("parses RFC 3339 strings", func(t *testing.T) {
		out, err := vow.Validate("2024-06-01T12:00:00Z", vow.Date())
		require.NoError(t, err)
		assert.Equal(t, 2024, out.(time.Time).Year())
	})

	t.Run("parses plain dates", func(t *testing.T) {
		_, err := vow.Validate("2024-06-01", vow.Date())
		assert.NoError(t, err)
	})

	t.Run("reads numbers as epoch milliseconds", func(t *testing.T) {
		out, err := vow.Validate(1609459200000, vow.Date())
		require.NoError(t, err)
		assert.Equal(t, 2021, out.(time.Time).Year())
	})

	t.Run("iso mode rejects plain dates", func(t *testing.T) {
		_, err := vow.Validate("2024-06-01", vow.Date().Iso())
		assert.Equal(t, "date.isoDate", failType(t, err))
	})

	t.Run("unparseable input", func(t *testing.T) {
		_, err := vow.Validate("next tuesday", vow.Date())
		assert.Equal(t, "date.base", failType(t, err))
	})
}

func TestDateRange(t *testing.T) {
	floor := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	_, err := vow.Validate("2023-12-31", vow.Date().Min(floor))
	assert.Equal(t, "date.min", failType(t, err))

	_, err = vow.Validate("2024-01-01", vow.Date().Min(floor))
	assert.NoError(t, err)
}

func TestCustomRule(t *testing.T) {
	even := vow.Any().Rule("any.even", func(v any, _ map[string]any, _ vow.State) *vow.Failure {
		f, ok := v.(float64)
		if !ok {
			if n, isInt := v.(int); isInt {
				f = float64(n)
			} else {
				return &vow.Failure{Type: "any.even"}
			}
		}
		if math.Mod(f, 2) != 0 {
			return &vow.Failure{Type: "any.even"}
		}
		return nil
	}, nil)

	_, err := vow.Validate(4, even)
	assert.NoError(t, err)

	_, err = vow.Validate(5, even)
	verr := vow.ExtractValidationError(err)
	require.NotNil(t, verr)
	assert.Equal(t, "any.even", verr.Details[0].Type)
	// No registered template: the failure type itself is the message body.
	assert.Equal(t, `"value" any.even`, verr.Details[0].Message)
}
