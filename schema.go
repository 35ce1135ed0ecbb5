package vow

import (
	"fmt"
	"reflect"
	"slices"
	"sort"
	"strings"
)

// Schema is an immutable description of the values accepted at one position in
// a document. Builders (String, Number, Object, ...) produce Schemas; every
// fluent modifier returns a fresh node, never mutating the receiver.
type Schema interface {
	// Kind returns the schema's type tag: "any", "string", "number",
	// "boolean", "date", "object", "array" or "alternatives".
	Kind() string

	// Validate matches value against the schema. See the package-level
	// Validate for semantics.
	Validate(value any, opts ...Option) (any, error)

	base() *baseSchema
	exec(v any, st *state) (any, []ErrorDetail)
}

// Failure is the signal a leaf rule returns to reject a value. Type is the
// "<type>.<rule>" template key; Context carries the rule's named parameters for
// message interpolation.
type Failure struct {
	Type    string
	Context map[string]any
}

// RuleFunc is the leaf-rule contract: a pure predicate receiving the value
// under test, the rule's parameters, and the current validation state. It
// returns nil to accept the value. The engine never interprets rule internals,
// only the pass/fail signal.
type RuleFunc func(value any, params map[string]any, state State) *Failure

// State is the read-only view of the validation position handed to leaf rules.
type State struct {
	// Key is the failing field's own name or index as a string; empty at the
	// document root.
	Key string
	// Path locates the value from the document root.
	Path Path
	// Parent is the enclosing container, if any.
	Parent any
	// Root is the document root value.
	Root any
}

type rule struct {
	name   string
	params map[string]any
	fn     RuleFunc
}

type presence int

const (
	presenceOptional presence = iota
	presenceRequired
	presenceForbidden
)

// missingValue marks a key that is absent from its container, as opposed to
// present with a nil value.
type missingValue struct{}

var missing any = missingValue{}

func isMissing(v any) bool {
	_, ok := v.(missingValue)
	return ok
}

// baseSchema carries the state shared by every schema type. Builders embed it
// by value so that cloning the outer struct clones the node.
type baseSchema struct {
	kind      string
	presence  presence
	label     string
	valids    []any
	invalids  []any
	allowOnly bool
	def       any
	hasDef    bool
	rules     []rule
	nodeOpts  []Option
}

func newBase(kind string) baseSchema {
	return baseSchema{kind: kind}
}

func (b *baseSchema) base() *baseSchema { return b }

// Kind returns the schema's type tag.
func (b *baseSchema) Kind() string { return b.kind }

// cloneBase returns a deep-enough copy: slices are cloned so the original node
// is never written to after publication.
func (b baseSchema) cloneBase() baseSchema {
	b.valids = slices.Clone(b.valids)
	b.invalids = slices.Clone(b.invalids)
	b.rules = slices.Clone(b.rules)
	b.nodeOpts = slices.Clone(b.nodeOpts)
	return b
}

func (b *baseSchema) addRule(name string, params map[string]any, fn RuleFunc) {
	b.rules = append(b.rules, rule{name: name, params: params, fn: fn})
}

// matchSet reports whether v matches any entry of set, resolving references
// against the current state. Matching is loose across numeric kinds so that an
// int literal in a schema matches the float64 a JSON decoder produces.
func matchSet(set []any, v any, st *state) bool {
	for _, item := range set {
		if ref, ok := item.(*Reference); ok {
			rv, resolved := ref.resolve(st)
			if resolved && looseEqual(rv, v) {
				return true
			}
			continue
		}
		if looseEqual(item, v) {
			return true
		}
	}
	return false
}

// describeSet renders a value set for the allowOnly/invalid message context,
// resolving references to their current values.
func describeSet(set []any, st *state) []any {
	out := make([]any, 0, len(set))
	for _, item := range set {
		if ref, ok := item.(*Reference); ok {
			if rv, resolved := ref.resolve(st); resolved {
				out = append(out, rv)
			} else {
				out = append(out, "ref:"+ref.key)
			}
			continue
		}
		out = append(out, item)
	}
	return out
}

func looseEqual(a, b any) bool {
	if af, aok := toFloat(a); aok {
		bf, bok := toFloat(b)
		return bok && af == bf
	}
	return reflect.DeepEqual(a, b)
}

func toFloat(v any) (float64, bool) {
	switch t := v.(type) {
	case int:
		return float64(t), true
	case int8:
		return float64(t), true
	case int16:
		return float64(t), true
	case int32:
		return float64(t), true
	case int64:
		return float64(t), true
	case uint:
		return float64(t), true
	case uint8:
		return float64(t), true
	case uint16:
		return float64(t), true
	case uint32:
		return float64(t), true
	case uint64:
		return float64(t), true
	case float32:
		return float64(t), true
	case float64:
		return t, true
	}
	return 0, false
}

// Compile normalizes a schema-like value into a Schema. Schemas pass through;
// a map literal becomes an object schema over its keys (lexicographic order,
// since Go maps carry no declaration order); a slice of candidates becomes an
// alternatives schema; any other literal becomes a schema accepting exactly
// that value. Compile panics on values it cannot interpret as a schema; it is
// part of schema construction, not validation.
func Compile(v any) Schema {
	switch t := v.(type) {
	case Schema:
		return t
	case *Reference:
		panic("vow: a reference is not a schema; use it inside Valid or Assert")
	case map[string]any:
		return Object().Keys(t)
	case []any:
		return Alternatives(t...)
	default:
		return Any().Valid(t)
	}
}

// sortedKeys returns map keys in lexicographic order, the deterministic stand-in
// for declaration order when a schema is built from a Go map literal.
func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func mustPositive(name string, limit int) {
	if limit < 0 {
		panic(fmt.Sprintf("vow: %s limit must not be negative, got %d", name, limit))
	}
}

func mustName(what, name string) {
	if strings.TrimSpace(name) == "" {
		panic("vow: " + what + " must not be empty")
	}
}
