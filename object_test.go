package vow_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/vow"
)

func TestObjectUnknownKeys(t *testing.T) {
	schema := vow.Object().Keys(map[string]any{"a": vow.Number()})

	t.Run("unknown key fails by default", func(t *testing.T) {
		_, err := vow.Validate(map[string]any{"a": 1, "extra": true}, schema)
		verr := vow.ExtractValidationError(err)
		require.NotNil(t, verr)
		assert.Equal(t, "object.allowUnknown", verr.Details[0].Type)
		assert.Equal(t, "extra", verr.Details[0].Path.String())
		assert.Equal(t, `"extra" is not allowed`, verr.Details[0].Message)
	})

	t.Run("allowUnknown keeps the key", func(t *testing.T) {
		out, err := vow.Validate(map[string]any{"a": 1, "extra": true}, schema, vow.WithAllowUnknown(true))
		require.NoError(t, err)
		assert.Equal(t, true, out.(map[string]any)["extra"])
	})

	t.Run("node-level Unknown overrides the call option", func(t *testing.T) {
		open := schema.Unknown(true)
		_, err := vow.Validate(map[string]any{"a": 1, "extra": true}, open)
		assert.NoError(t, err)
	})

	t.Run("stripUnknown drops the key instead of failing", func(t *testing.T) {
		out, err := vow.Validate(map[string]any{"a": 1, "extra": true}, schema, vow.WithStripUnknown(true))
		require.NoError(t, err)
		_, present := out.(map[string]any)["extra"]
		assert.False(t, present)
	})
}

func TestObjectRename(t *testing.T) {
	t.Run("moves the value before structural validation", func(t *testing.T) {
		schema := vow.Object().Key("b", vow.Number()).Rename("a", "b")
		out, err := vow.Validate(map[string]any{"a": 5}, schema)
		require.NoError(t, err)

		m := out.(map[string]any)
		assert.Equal(t, 5.0, m["b"])
		_, present := m["a"]
		assert.False(t, present)
	})

	t.Run("occupied target fails with rename.override", func(t *testing.T) {
		schema := vow.Object().Key("b", vow.Number()).Rename("a", "b")
		_, err := vow.Validate(map[string]any{"a": 5, "b": 6}, schema)
		verr := vow.ExtractValidationError(err)
		require.NotNil(t, verr)
		assert.Equal(t, "object.rename.override", verr.Details[0].Type)
		assert.Equal(t,
			`"value" cannot rename child "a" because override is disabled and target "b" exists`,
			verr.Details[0].Message)
		assert.Empty(t, verr.Details[0].Path)
	})
}

func TestObjectWithout(t *testing.T) {
	schema := vow.Object().
		Key("password", vow.String()).
		Key("accessToken", vow.String()).
		Without("password", "accessToken")

	t.Run("conflicting peers fail at the object's path", func(t *testing.T) {
		_, err := vow.Validate(map[string]any{"password": "a", "accessToken": "b"}, schema)
		verr := vow.ExtractValidationError(err)
		require.NotNil(t, verr)
		assert.Equal(t, "object.without", verr.Details[0].Type)
		assert.Empty(t, verr.Details[0].Path)
		assert.Equal(t, "password", verr.Details[0].Context["main"])
		assert.Equal(t, "accessToken", verr.Details[0].Context["peer"])
	})

	t.Run("single peer passes", func(t *testing.T) {
		_, err := vow.Validate(map[string]any{"password": "a"}, schema)
		assert.NoError(t, err)
	})
}

func TestObjectWith(t *testing.T) {
	schema := vow.Object().
		Key("username", vow.String()).
		Key("birthyear", vow.Number()).
		With("username", "birthyear")

	_, err := vow.Validate(map[string]any{"username": "alice"}, schema)
	verr := vow.ExtractValidationError(err)
	require.NotNil(t, verr)
	assert.Equal(t, "object.with", verr.Details[0].Type)

	_, err = vow.Validate(map[string]any{"username": "alice", "birthyear": 1990}, schema)
	assert.NoError(t, err)
}

func TestObjectAssert(t *testing.T) {
	schema := vow.Object().
		Key("min", vow.Number()).
		Key("max", vow.Number()).
		Assert("max", vow.Number().Min(10), "be at least 10")

	t.Run("failed assertion reports at the object's path", func(t *testing.T) {
		_, err := vow.Validate(map[string]any{"min": 1, "max": 5}, schema)
		verr := vow.ExtractValidationError(err)
		require.NotNil(t, verr)
		assert.Equal(t, "object.assert", verr.Details[0].Type)
		assert.Empty(t, verr.Details[0].Path)
		assert.Equal(t, `"value" validation failed because max failed to be at least 10`, verr.Details[0].Message)
	})

	t.Run("satisfied assertion passes", func(t *testing.T) {
		_, err := vow.Validate(map[string]any{"min": 1, "max": 15}, schema)
		assert.NoError(t, err)
	})

	t.Run("unresolvable reference is a non-match, not a structural error", func(t *testing.T) {
		s := vow.Object().Key("a", vow.Number()).Assert("nope", vow.Number().Required(), "exist")
		_, err := vow.Validate(map[string]any{"a": 1}, s)
		verr := vow.ExtractValidationError(err)
		require.NotNil(t, verr)
		assert.Equal(t, "object.assert", verr.Details[0].Type)
	})
}

func TestObjectDependencyOrderUnderCollectAll(t *testing.T) {
	schema := vow.Object().
		Key("a", vow.Number()).
		Key("b", vow.String()).
		Without("a", "b").
		Assert("a", vow.Number().Min(100), "be large")

	_, err := vow.Validate(map[string]any{"a": 1, "b": "x"}, schema, vow.WithAbortEarly(false))
	verr := vow.ExtractValidationError(err)
	require.NotNil(t, verr)
	require.Len(t, verr.Details, 2)
	assert.Equal(t, "object.without", verr.Details[0].Type)
	assert.Equal(t, "object.assert", verr.Details[1].Type)
}

func TestObjectKeyCountRules(t *testing.T) {
	_, err := vow.Validate(map[string]any{"a": 1},
		vow.Object().Unknown(true).Min(2))
	verr := vow.ExtractValidationError(err)
	require.NotNil(t, verr)
	assert.Equal(t, "object.min", verr.Details[0].Type)
}

func TestObjectBase(t *testing.T) {
	_, err := vow.Validate("not an object", vow.Object())
	verr := vow.ExtractValidationError(err)
	require.NotNil(t, verr)
	assert.Equal(t, "object.base", verr.Details[0].Type)
	assert.Equal(t, `"value" must be an object`, verr.Details[0].Message)
}

func TestObjectNestedComposition(t *testing.T) {
	schema := vow.Object().Keys(map[string]any{
		"user": vow.Object().Keys(map[string]any{
			"name": vow.String().Required(),
		}),
	})

	_, err := vow.Validate(map[string]any{"user": map[string]any{}}, schema)
	require.Error(t, err)
	assert.Equal(t,
		`child "user" fails because [child "name" fails because ["name" is required]]`,
		err.Error())
}

func TestObjectReferenceInValid(t *testing.T) {
	schema := vow.Object().
		Key("password", vow.String()).
		Key("confirm", vow.Any().Valid(vow.Ref("password")))

	_, err := vow.Validate(map[string]any{"password": "s3cret", "confirm": "s3cret"}, schema)
	assert.NoError(t, err)

	_, err = vow.Validate(map[string]any{"password": "s3cret", "confirm": "nope"}, schema)
	verr := vow.ExtractValidationError(err)
	require.NotNil(t, verr)
	assert.Equal(t, "any.allowOnly", verr.Details[0].Type)
	assert.Equal(t, "confirm", verr.Details[0].Path.String())
}

func TestObjectContextReference(t *testing.T) {
	schema := vow.Object().Key("env", vow.Any().Valid(vow.Ref("$allowed")))

	_, err := vow.Validate(map[string]any{"env": "prod"}, schema,
		vow.WithContext(map[string]any{"allowed": "prod"}))
	assert.NoError(t, err)
}
