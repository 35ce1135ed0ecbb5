package vow

// BoolSchema matches boolean values. The strings "true" and "false" convert
// when conversion is enabled.
type BoolSchema struct {
	baseSchema
}

// Bool creates a schema matching booleans.
func Bool() *BoolSchema {
	return &BoolSchema{newBase("boolean")}
}

func (s *BoolSchema) clone() *BoolSchema {
	c := *s
	c.baseSchema = s.cloneBase()
	return &c
}

// Required marks the value as mandatory.
func (s *BoolSchema) Required() *BoolSchema {
	c := s.clone()
	c.presence = presenceRequired
	return c
}

// Optional marks the value as allowed to be absent (the default).
func (s *BoolSchema) Optional() *BoolSchema {
	c := s.clone()
	c.presence = presenceOptional
	return c
}

// Forbidden fails the value whenever it is present.
func (s *BoolSchema) Forbidden() *BoolSchema {
	c := s.clone()
	c.presence = presenceForbidden
	return c
}

// Valid restricts the value to the given set.
func (s *BoolSchema) Valid(values ...any) *BoolSchema {
	c := s.clone()
	c.valids = append(c.valids, values...)
	c.allowOnly = true
	return c
}

// Allow whitelists additional values without restricting the schema to them.
func (s *BoolSchema) Allow(values ...any) *BoolSchema {
	c := s.clone()
	c.valids = append(c.valids, values...)
	return c
}

// Invalid rejects the given values.
func (s *BoolSchema) Invalid(values ...any) *BoolSchema {
	c := s.clone()
	c.invalids = append(c.invalids, values...)
	return c
}

// Label sets the display name used in messages instead of the key.
func (s *BoolSchema) Label(label string) *BoolSchema {
	mustName("label", label)
	c := s.clone()
	c.label = label
	return c
}

// Default supplies the value used when the key is absent and optional.
func (s *BoolSchema) Default(v bool) *BoolSchema {
	c := s.clone()
	c.def = v
	c.hasDef = true
	return c
}

// Options attaches per-node options applied to this node and its subtree.
func (s *BoolSchema) Options(opts ...Option) *BoolSchema {
	c := s.clone()
	c.nodeOpts = append(c.nodeOpts, opts...)
	return c
}

// Validate matches value against the schema.
func (s *BoolSchema) Validate(value any, opts ...Option) (any, error) {
	return Validate(value, s, opts...)
}

func (s *BoolSchema) exec(v any, st *state) (any, []ErrorDetail) {
	if b, ok := v.(bool); ok {
		return b, runRules(s, b, st)
	}
	if st.opts.convert {
		switch v {
		case "true":
			return true, runRules(s, true, st)
		case "false":
			return false, runRules(s, false, st)
		}
	}
	return v, []ErrorDetail{st.detail(&Failure{Type: "boolean.base"}, v, schemaLabel(s))}
}
