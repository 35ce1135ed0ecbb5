package vow

import "reflect"

// ArraySchema matches slices. Each item must satisfy at least one of the
// candidate item schemas; with a single candidate, its individual failures
// propagate with the item's index on their path.
type ArraySchema struct {
	baseSchema
	items []Schema
}

// Array creates a schema matching arrays.
func Array() *ArraySchema {
	return &ArraySchema{baseSchema: newBase("array")}
}

func (s *ArraySchema) clone() *ArraySchema {
	c := *s
	c.baseSchema = s.cloneBase()
	c.items = append([]Schema{}, s.items...)
	return &c
}

// Items declares the candidate schemas array items are matched against, in
// order. Values may be schemas or schema-like literals.
func (s *ArraySchema) Items(schemaLikes ...any) *ArraySchema {
	if len(schemaLikes) == 0 {
		panic("vow: array items require at least one schema")
	}
	c := s.clone()
	for _, like := range schemaLikes {
		c.items = append(c.items, Compile(like))
	}
	return c
}

func (s *ArraySchema) countRule(name string, limit int, fail func(n, limit int) bool) *ArraySchema {
	mustPositive(name, limit)
	c := s.clone()
	c.addRule(name, map[string]any{"limit": limit}, func(v any, _ map[string]any, _ State) *Failure {
		if fail(len(v.([]any)), limit) {
			return &Failure{Type: name, Context: map[string]any{"limit": limit}}
		}
		return nil
	})
	return c
}

// Min requires at least limit items.
func (s *ArraySchema) Min(limit int) *ArraySchema {
	return s.countRule("array.min", limit, func(n, l int) bool { return n < l })
}

// Max allows at most limit items.
func (s *ArraySchema) Max(limit int) *ArraySchema {
	return s.countRule("array.max", limit, func(n, l int) bool { return n > l })
}

// Length requires exactly limit items.
func (s *ArraySchema) Length(limit int) *ArraySchema {
	return s.countRule("array.length", limit, func(n, l int) bool { return n != l })
}

// Unique rejects the array when two items compare deep-equal; the failure
// reports the position of the later duplicate.
func (s *ArraySchema) Unique() *ArraySchema {
	c := s.clone()
	c.addRule("array.unique", nil, func(v any, _ map[string]any, _ State) *Failure {
		items := v.([]any)
		for i := 1; i < len(items); i++ {
			for j := 0; j < i; j++ {
				if looseEqual(items[i], items[j]) {
					return &Failure{Type: "array.unique", Context: map[string]any{"pos": i}}
				}
			}
		}
		return nil
	})
	return c
}

// Required marks the value as mandatory.
func (s *ArraySchema) Required() *ArraySchema {
	c := s.clone()
	c.presence = presenceRequired
	return c
}

// Optional marks the value as allowed to be absent (the default).
func (s *ArraySchema) Optional() *ArraySchema {
	c := s.clone()
	c.presence = presenceOptional
	return c
}

// Forbidden fails the value whenever it is present.
func (s *ArraySchema) Forbidden() *ArraySchema {
	c := s.clone()
	c.presence = presenceForbidden
	return c
}

// Label sets the display name used in messages instead of the key.
func (s *ArraySchema) Label(label string) *ArraySchema {
	mustName("label", label)
	c := s.clone()
	c.label = label
	return c
}

// Options attaches per-node options applied to this node and its subtree.
func (s *ArraySchema) Options(opts ...Option) *ArraySchema {
	c := s.clone()
	c.nodeOpts = append(c.nodeOpts, opts...)
	return c
}

// Validate matches value against the schema.
func (s *ArraySchema) Validate(value any, opts ...Option) (any, error) {
	return Validate(value, s, opts...)
}

func (s *ArraySchema) exec(v any, st *state) (any, []ErrorDetail) {
	arr, ok := toSlice(v)
	if !ok {
		return v, []ErrorDetail{st.detail(&Failure{Type: "array.base"}, v, schemaLabel(s))}
	}

	out := make([]any, len(arr))
	copy(out, arr)

	var details []ErrorDetail
	for i, item := range arr {
		cst := st.child(i, arr)

		switch len(s.items) {
		case 0:
			// No item schema declared: every item passes.

		case 1:
			res, ds := validateNode(s.items[0], item, cst)
			if len(ds) > 0 {
				details = append(details, ds...)
				if st.opts.abortEarly {
					return v, details
				}
				continue
			}
			if !isMissing(res) {
				out[i] = res
			}

		default:
			matched := false
			for _, cand := range s.items {
				res, ds := validateNode(cand, item, cst.withAbortEarly())
				if len(ds) == 0 {
					if !isMissing(res) {
						out[i] = res
					}
					matched = true
					break
				}
			}
			if !matched {
				lbl := s.base().label
				if lbl == "" {
					if st.key != "" {
						lbl = st.key
					} else {
						lbl = st.res.Root()
					}
				}
				f := &Failure{Type: "array.includes", Context: map[string]any{"pos": i}}
				details = append(details, cst.detail(f, item, lbl))
				if st.opts.abortEarly {
					return v, details
				}
			}
		}
	}

	ds := runRules(s, out, st)
	details = append(details, ds...)
	return out, details
}

// toSlice accepts []any directly and converts other slice kinds via reflection
// so callers are not forced to pre-box typed slices.
func toSlice(v any) ([]any, bool) {
	if arr, ok := v.([]any); ok {
		return arr, true
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice {
		return nil, false
	}
	out := make([]any, rv.Len())
	for i := range out {
		out[i] = rv.Index(i).Interface()
	}
	return out, true
}
