package vow

// AnySchema matches any value. It carries only the shared behaviors: presence,
// allow/deny lists, default value, label, and custom rules.
type AnySchema struct {
	baseSchema
}

// Any creates a schema that accepts any value.
func Any() *AnySchema {
	return &AnySchema{newBase("any")}
}

func (s *AnySchema) clone() *AnySchema {
	c := *s
	c.baseSchema = s.cloneBase()
	return &c
}

// Required marks the value as mandatory: an absent value fails with
// any.required.
func (s *AnySchema) Required() *AnySchema {
	c := s.clone()
	c.presence = presenceRequired
	return c
}

// Optional marks the value as allowed to be absent (the default).
func (s *AnySchema) Optional() *AnySchema {
	c := s.clone()
	c.presence = presenceOptional
	return c
}

// Forbidden fails the value whenever it is present.
func (s *AnySchema) Forbidden() *AnySchema {
	c := s.clone()
	c.presence = presenceForbidden
	return c
}

// Valid restricts the value to the given set; a match is definitive and skips
// all remaining checks. Values may include references.
func (s *AnySchema) Valid(values ...any) *AnySchema {
	c := s.clone()
	c.valids = append(c.valids, values...)
	c.allowOnly = true
	return c
}

// Allow whitelists additional values without restricting the schema to them.
func (s *AnySchema) Allow(values ...any) *AnySchema {
	c := s.clone()
	c.valids = append(c.valids, values...)
	return c
}

// Invalid rejects the given values with any.invalid.
func (s *AnySchema) Invalid(values ...any) *AnySchema {
	c := s.clone()
	c.invalids = append(c.invalids, values...)
	return c
}

// Label sets the display name used in messages instead of the key.
func (s *AnySchema) Label(label string) *AnySchema {
	mustName("label", label)
	c := s.clone()
	c.label = label
	return c
}

// Default supplies the value used when the key is absent and optional.
func (s *AnySchema) Default(v any) *AnySchema {
	c := s.clone()
	c.def = v
	c.hasDef = true
	return c
}

// Options attaches per-node options applied to this node and its subtree.
func (s *AnySchema) Options(opts ...Option) *AnySchema {
	c := s.clone()
	c.nodeOpts = append(c.nodeOpts, opts...)
	return c
}

// Rule attaches a custom leaf rule. The failure type it returns should follow
// the "<type>.<rule>" convention so a template can be registered for it.
func (s *AnySchema) Rule(name string, fn RuleFunc, params map[string]any) *AnySchema {
	mustName("rule name", name)
	if fn == nil {
		panic("vow: rule function must not be nil")
	}
	c := s.clone()
	c.addRule(name, params, fn)
	return c
}

// Validate matches value against the schema.
func (s *AnySchema) Validate(value any, opts ...Option) (any, error) {
	return Validate(value, s, opts...)
}

func (s *AnySchema) exec(v any, st *state) (any, []ErrorDetail) {
	return v, runRules(s, v, st)
}
