package vow

import (
	"strconv"

	"github.com/dmitrymomot/vow/pkg/catalog"
)

// Validate matches value against a schema (or schema-like literal, see Compile)
// and returns the validated, possibly converted output value together with a
// *ValidationError listing every discovered failure, or nil error on success.
//
// Validation never mutates value: conversion, renames and stripped keys apply
// to a working copy that becomes the returned output. The call is a pure,
// synchronous tree walk; a schema may be validated concurrently from multiple
// goroutines.
func Validate(value any, schemaLike any, opts ...Option) (any, error) {
	s := Compile(schemaLike)
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	var resOpts []catalog.ResolverOption
	if o.logger != nil {
		resOpts = append(resOpts, catalog.WithLogger(o.logger))
	}
	res := catalog.NewResolver(o.language, resOpts...)

	st := &state{root: value, opts: o, res: res}
	out, details := validateNode(s, value, st)
	if isMissing(out) {
		out = nil
	}
	if len(details) == 0 {
		return out, nil
	}
	return out, newValidationError(details, value, res)
}

// Assert panics when value fails the schema. With no extra argument it panics
// with the *ValidationError; a caller-supplied error or message is used
// verbatim instead. Intended for init-time invariants and tests.
func Assert(value any, schemaLike any, msgOrErr ...any) {
	if _, err := Validate(value, schemaLike); err != nil {
		if len(msgOrErr) > 0 && msgOrErr[0] != nil {
			panic(msgOrErr[0])
		}
		panic(err)
	}
}

// Attempt validates value and returns the converted output, panicking with the
// *ValidationError (or the caller-supplied value, verbatim) on failure.
func Attempt(value any, schemaLike any, msgOrErr ...any) any {
	out, err := Validate(value, schemaLike)
	if err != nil {
		if len(msgOrErr) > 0 && msgOrErr[0] != nil {
			panic(msgOrErr[0])
		}
		panic(err)
	}
	return out
}

// state is the engine's position during the walk: current key, path, enclosing
// container, call options and the message resolver. States are derived, never
// mutated, as recursion descends.
type state struct {
	key    string
	path   Path
	parent any
	root   any
	opts   *options
	res    *catalog.Resolver
}

func (st *state) child(seg any, parent any) *state {
	key := ""
	switch t := seg.(type) {
	case string:
		key = t
	case int:
		key = strconv.Itoa(t)
	}
	return &state{
		key:    key,
		path:   append(st.path.clone(), seg),
		parent: parent,
		root:   st.root,
		opts:   st.opts,
		res:    st.res,
	}
}

// withOptions layers node-scoped options over the call options.
func (st *state) withOptions(nodeOpts []Option) *state {
	derived := *st
	o := st.opts.clone()
	for _, opt := range nodeOpts {
		opt(o)
	}
	derived.opts = o
	return &derived
}

// withAbortEarly derives a state that stops at the first failure, used when
// probing candidate schemas whose full failure list is irrelevant.
func (st *state) withAbortEarly() *state {
	if st.opts.abortEarly {
		return st
	}
	derived := *st
	o := st.opts.clone()
	o.abortEarly = true
	derived.opts = o
	return &derived
}

func (st *state) export() State {
	return State{Key: st.key, Path: st.path, Parent: st.parent, Root: st.root}
}

// detail materializes a failure signal into an ErrorDetail: it resolves the
// template for the failure type, builds the interpolation context, and renders
// the message prefixed with the quoted, escaped label.
func (st *state) detail(f *Failure, v any, label string) ErrorDetail {
	if label == "" {
		if st.key != "" {
			label = st.key
		} else {
			label = st.res.Root()
		}
	}

	ctx := make(map[string]any, len(f.Context)+3)
	for k, val := range f.Context {
		ctx[k] = val
	}
	ctx["key"] = st.key
	ctx["label"] = label
	if isMissing(v) {
		ctx["value"] = nil
	} else {
		ctx["value"] = v
	}

	tmpl, _ := st.res.Template(f.Type)
	msg := `"` + catalog.EscapeHTML(label) + `" ` + catalog.Render(tmpl, ctx)
	return ErrorDetail{
		Message: msg,
		Path:    st.path.clone(),
		Type:    f.Type,
		Context: ctx,
	}
}

// schemaLabel returns the node's explicit label; an empty result makes detail
// fall back to the node's own key, else the root label.
func schemaLabel(s Schema) string {
	return s.base().label
}

// validateNode runs the shared per-node pipeline: presence, deny-list,
// allow-list, then the type's own execution (base check, conversion, rules and
// recursion into children). An explicit allow-list match, a matched forbidden
// or missing-required outcome, and a deny-list hit are all definitive: they
// short-circuit the remaining checks for that value.
func validateNode(s Schema, v any, st *state) (any, []ErrorDetail) {
	b := s.base()
	if len(b.nodeOpts) > 0 {
		st = st.withOptions(b.nodeOpts)
	}
	label := schemaLabel(s)

	switch b.presence {
	case presenceForbidden:
		if isMissing(v) {
			return missing, nil
		}
		return v, []ErrorDetail{st.detail(&Failure{Type: "any.unknown"}, v, label)}
	case presenceRequired:
		if isMissing(v) {
			return v, []ErrorDetail{st.detail(&Failure{Type: "any.required"}, v, label)}
		}
	default:
		if isMissing(v) {
			if b.hasDef {
				return b.def, nil
			}
			return missing, nil
		}
	}

	if len(b.invalids) > 0 && matchSet(b.invalids, v, st) {
		f := &Failure{Type: "any.invalid", Context: map[string]any{"invalids": describeSet(b.invalids, st)}}
		return v, []ErrorDetail{st.detail(f, v, label)}
	}

	if len(b.valids) > 0 {
		if matchSet(b.valids, v, st) {
			return v, nil
		}
		if b.allowOnly {
			f := &Failure{Type: "any.allowOnly", Context: map[string]any{"valids": describeSet(b.valids, st)}}
			return v, []ErrorDetail{st.detail(f, v, label)}
		}
	}

	return s.exec(v, st)
}

// runRules evaluates the node's rules in declared order against the coerced
// value. Under abortEarly the first failing rule stops the walk; otherwise
// every remaining rule still runs so each independently failing check yields
// its own detail.
func runRules(s Schema, v any, st *state) []ErrorDetail {
	label := schemaLabel(s)
	var details []ErrorDetail
	for _, r := range s.base().rules {
		if f := r.fn(v, r.params, st.export()); f != nil {
			details = append(details, st.detail(f, v, label))
			if st.opts.abortEarly {
				return details
			}
		}
	}
	return details
}
