package vow

// objectKey is one declared child: its key name and compiled schema. Slice
// order is declaration order, which also fixes failure-discovery order.
type objectKey struct {
	name   string
	schema Schema
}

type renameOp struct {
	from string
	to   string
}

// dependency is a cross-field constraint evaluated after structural
// validation, in declaration order.
type dependency struct {
	kind    string // "with", "without" or "assert"
	key     string
	peers   []string
	ref     string
	schema  Schema
	message string
}

// ObjectSchema matches map[string]any documents: declared keys validate
// against their child schemas, unknown keys fail (or are stripped) unless
// allowed, and cross-field dependencies run last.
type ObjectSchema struct {
	baseSchema
	keys     []objectKey
	declared map[string]bool
	renames  []renameOp
	deps     []dependency
	unknown  *bool
}

// Object creates a schema matching objects. Any key maps passed are merged in
// declaration order via Keys.
func Object() *ObjectSchema {
	return &ObjectSchema{baseSchema: newBase("object"), declared: map[string]bool{}}
}

func (s *ObjectSchema) clone() *ObjectSchema {
	c := *s
	c.baseSchema = s.cloneBase()
	c.keys = append([]objectKey{}, s.keys...)
	c.declared = make(map[string]bool, len(s.declared))
	for k := range s.declared {
		c.declared[k] = true
	}
	c.renames = append([]renameOp{}, s.renames...)
	c.deps = append([]dependency{}, s.deps...)
	if s.unknown != nil {
		u := *s.unknown
		c.unknown = &u
	}
	return &c
}

// Keys declares child schemas for the given keys. Values may be schemas or
// schema-like literals (compiled via Compile). Go maps carry no declaration
// order, so keys are added lexicographically; use Key to control order
// explicitly.
func (s *ObjectSchema) Keys(keys map[string]any) *ObjectSchema {
	c := s.clone()
	for _, name := range sortedKeys(keys) {
		c.appendKey(name, Compile(keys[name]))
	}
	return c
}

// Key declares a single child schema, appended after previously declared keys.
func (s *ObjectSchema) Key(name string, schemaLike any) *ObjectSchema {
	mustName("object key", name)
	c := s.clone()
	c.appendKey(name, Compile(schemaLike))
	return c
}

func (s *ObjectSchema) appendKey(name string, child Schema) {
	if s.declared[name] {
		for i, k := range s.keys {
			if k.name == name {
				s.keys[i].schema = child
				return
			}
		}
	}
	s.keys = append(s.keys, objectKey{name: name, schema: child})
	s.declared[name] = true
}

// Unknown overrides the unknown-key policy for this object: true permits keys
// no schema describes, false fails them regardless of call options.
func (s *ObjectSchema) Unknown(allow bool) *ObjectSchema {
	c := s.clone()
	c.unknown = &allow
	return c
}

// Rename moves the value of key from to key to before structural validation.
// If to already holds a value the rename fails with object.rename.override.
func (s *ObjectSchema) Rename(from, to string) *ObjectSchema {
	mustName("rename source", from)
	mustName("rename target", to)
	if from == to {
		panic("vow: rename source and target must differ")
	}
	c := s.clone()
	c.renames = append(c.renames, renameOp{from: from, to: to})
	return c
}

// Without forbids the listed peers from being present whenever key is present.
func (s *ObjectSchema) Without(key string, peers ...string) *ObjectSchema {
	mustName("dependency key", key)
	if len(peers) == 0 {
		panic("vow: without requires at least one peer")
	}
	c := s.clone()
	c.deps = append(c.deps, dependency{kind: "without", key: key, peers: peers})
	return c
}

// With requires the listed peers to be present whenever key is present.
func (s *ObjectSchema) With(key string, peers ...string) *ObjectSchema {
	mustName("dependency key", key)
	if len(peers) == 0 {
		panic("vow: with requires at least one peer")
	}
	c := s.clone()
	c.deps = append(c.deps, dependency{kind: "with", key: key, peers: peers})
	return c
}

// Assert resolves refPath inside the object being validated and validates the
// resolved value against the given schema. On failure the object itself is
// reported with the supplied message.
func (s *ObjectSchema) Assert(refPath string, schemaLike any, message string) *ObjectSchema {
	mustName("assert reference", refPath)
	mustName("assert message", message)
	c := s.clone()
	c.deps = append(c.deps, dependency{kind: "assert", ref: refPath, schema: Compile(schemaLike), message: message})
	return c
}

func (s *ObjectSchema) countRule(name string, limit int, fail func(n, limit int) bool) *ObjectSchema {
	mustPositive(name, limit)
	c := s.clone()
	c.addRule(name, map[string]any{"limit": limit}, func(v any, _ map[string]any, _ State) *Failure {
		if fail(len(v.(map[string]any)), limit) {
			return &Failure{Type: name, Context: map[string]any{"limit": limit}}
		}
		return nil
	})
	return c
}

// Min requires at least limit keys.
func (s *ObjectSchema) Min(limit int) *ObjectSchema {
	return s.countRule("object.min", limit, func(n, l int) bool { return n < l })
}

// Max allows at most limit keys.
func (s *ObjectSchema) Max(limit int) *ObjectSchema {
	return s.countRule("object.max", limit, func(n, l int) bool { return n > l })
}

// Length requires exactly limit keys.
func (s *ObjectSchema) Length(limit int) *ObjectSchema {
	return s.countRule("object.length", limit, func(n, l int) bool { return n != l })
}

// Required marks the value as mandatory.
func (s *ObjectSchema) Required() *ObjectSchema {
	c := s.clone()
	c.presence = presenceRequired
	return c
}

// Optional marks the value as allowed to be absent (the default).
func (s *ObjectSchema) Optional() *ObjectSchema {
	c := s.clone()
	c.presence = presenceOptional
	return c
}

// Forbidden fails the value whenever it is present.
func (s *ObjectSchema) Forbidden() *ObjectSchema {
	c := s.clone()
	c.presence = presenceForbidden
	return c
}

// Label sets the display name used in messages instead of the key.
func (s *ObjectSchema) Label(label string) *ObjectSchema {
	mustName("label", label)
	c := s.clone()
	c.label = label
	return c
}

// Options attaches per-node options applied to this node and its subtree.
func (s *ObjectSchema) Options(opts ...Option) *ObjectSchema {
	c := s.clone()
	c.nodeOpts = append(c.nodeOpts, opts...)
	return c
}

// Validate matches value against the schema.
func (s *ObjectSchema) Validate(value any, opts ...Option) (any, error) {
	return Validate(value, s, opts...)
}

func (s *ObjectSchema) exec(v any, st *state) (any, []ErrorDetail) {
	m, ok := v.(map[string]any)
	if !ok {
		return v, []ErrorDetail{st.detail(&Failure{Type: "object.base"}, v, schemaLabel(s))}
	}

	// Work on a copy: renames, conversion and stripping must never touch the
	// caller's map.
	out := make(map[string]any, len(m))
	for k, val := range m {
		out[k] = val
	}

	var details []ErrorDetail

	// Renames run first so the target key validates against the moved value.
	for _, rn := range s.renames {
		val, present := out[rn.from]
		if !present {
			continue
		}
		if _, taken := out[rn.to]; taken {
			f := &Failure{Type: "object.rename.override", Context: map[string]any{"from": rn.from, "to": rn.to}}
			details = append(details, st.detail(f, v, schemaLabel(s)))
			if st.opts.abortEarly {
				return v, details
			}
			continue
		}
		out[rn.to] = val
		delete(out, rn.from)
	}

	// Declared children, in declaration order.
	for _, child := range s.keys {
		cv, present := out[child.name]
		if !present {
			cv = missing
		}
		res, ds := validateNode(child.schema, cv, st.child(child.name, out))
		if len(ds) > 0 {
			details = append(details, ds...)
			if st.opts.abortEarly {
				return v, details
			}
		}
		if isMissing(res) {
			delete(out, child.name)
		} else {
			out[child.name] = res
		}
	}

	// Unknown keys.
	for _, k := range sortedKeys(out) {
		if s.declared[k] {
			continue
		}
		if st.opts.stripUnknown {
			delete(out, k)
			continue
		}
		if s.unknownAllowed(st) {
			continue
		}
		cst := st.child(k, out)
		details = append(details, cst.detail(&Failure{Type: "object.allowUnknown"}, out[k], ""))
		if st.opts.abortEarly {
			return v, details
		}
	}

	// Dependencies, in declaration order.
	for _, dep := range s.deps {
		ds := s.checkDependency(dep, out, st)
		if len(ds) > 0 {
			details = append(details, ds...)
			if st.opts.abortEarly {
				return v, details
			}
		}
	}

	ds := runRules(s, out, st)
	details = append(details, ds...)
	return out, details
}

func (s *ObjectSchema) unknownAllowed(st *state) bool {
	if s.unknown != nil {
		return *s.unknown
	}
	return st.opts.allowUnknown
}

func (s *ObjectSchema) checkDependency(dep dependency, out map[string]any, st *state) []ErrorDetail {
	label := schemaLabel(s)
	var details []ErrorDetail

	switch dep.kind {
	case "without":
		if _, present := out[dep.key]; !present {
			return nil
		}
		for _, peer := range dep.peers {
			if _, conflict := out[peer]; conflict {
				f := &Failure{Type: "object.without", Context: map[string]any{"main": dep.key, "peer": peer}}
				details = append(details, st.detail(f, out, label))
				if st.opts.abortEarly {
					return details
				}
			}
		}

	case "with":
		if _, present := out[dep.key]; !present {
			return nil
		}
		for _, peer := range dep.peers {
			if _, found := out[peer]; !found {
				f := &Failure{Type: "object.with", Context: map[string]any{"main": dep.key, "peer": peer}}
				details = append(details, st.detail(f, out, label))
				if st.opts.abortEarly {
					return details
				}
			}
		}

	case "assert":
		ref := Ref(dep.ref)
		target, resolved := walkPath(out, ref.segs)
		if !resolved {
			target = missing
		}
		sub := &state{
			key:    st.key,
			path:   st.path.clone(),
			parent: out,
			root:   st.root,
			opts:   st.opts,
			res:    st.res,
		}
		if _, ds := validateNode(dep.schema, target, sub.withAbortEarly()); len(ds) > 0 {
			f := &Failure{Type: "object.assert", Context: map[string]any{"ref": dep.ref, "message": dep.message}}
			details = append(details, st.detail(f, out, label))
		}
	}
	return details
}
