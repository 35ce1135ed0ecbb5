package vow

// AlternativesSchema is an OR-combinator: candidates are tried in declared
// order and the first one to accept the value wins, discarding any earlier
// candidate failures. When every candidate rejects, one detail per candidate is
// recorded, all at the alternatives node's own path, so the annotator can merge
// them into a single marker. The all-candidates-failed outcome is one atomic
// failure unit: abortEarly stops the walk after it but never trims the
// per-candidate list.
type AlternativesSchema struct {
	baseSchema
	candidates []Schema
}

// Alternatives creates an OR schema over candidate schemas or schema-like
// literals, tried in the given order.
func Alternatives(schemaLikes ...any) *AlternativesSchema {
	s := &AlternativesSchema{baseSchema: newBase("alternatives")}
	for _, like := range schemaLikes {
		s.candidates = append(s.candidates, Compile(like))
	}
	return s
}

func (s *AlternativesSchema) clone() *AlternativesSchema {
	c := *s
	c.baseSchema = s.cloneBase()
	c.candidates = append([]Schema{}, s.candidates...)
	return &c
}

// Try appends candidate schemas.
func (s *AlternativesSchema) Try(schemaLikes ...any) *AlternativesSchema {
	if len(schemaLikes) == 0 {
		panic("vow: alternatives require at least one candidate")
	}
	c := s.clone()
	for _, like := range schemaLikes {
		c.candidates = append(c.candidates, Compile(like))
	}
	return c
}

// Required marks the value as mandatory.
func (s *AlternativesSchema) Required() *AlternativesSchema {
	c := s.clone()
	c.presence = presenceRequired
	return c
}

// Optional marks the value as allowed to be absent (the default).
func (s *AlternativesSchema) Optional() *AlternativesSchema {
	c := s.clone()
	c.presence = presenceOptional
	return c
}

// Forbidden fails the value whenever it is present.
func (s *AlternativesSchema) Forbidden() *AlternativesSchema {
	c := s.clone()
	c.presence = presenceForbidden
	return c
}

// Label sets the display name used in messages instead of the key.
func (s *AlternativesSchema) Label(label string) *AlternativesSchema {
	mustName("label", label)
	c := s.clone()
	c.label = label
	return c
}

// Options attaches per-node options applied to this node and its subtree.
func (s *AlternativesSchema) Options(opts ...Option) *AlternativesSchema {
	c := s.clone()
	c.nodeOpts = append(c.nodeOpts, opts...)
	return c
}

// Validate matches value against the schema.
func (s *AlternativesSchema) Validate(value any, opts ...Option) (any, error) {
	return Validate(value, s, opts...)
}

func (s *AlternativesSchema) exec(v any, st *state) (any, []ErrorDetail) {
	if len(s.candidates) == 0 {
		return v, []ErrorDetail{st.detail(&Failure{Type: "alternatives.base"}, v, schemaLabel(s))}
	}

	var details []ErrorDetail
	for _, cand := range s.candidates {
		res, ds := validateNode(cand, v, st.withAbortEarly())
		if len(ds) == 0 {
			return res, nil
		}
		d := ds[0]
		d.Path = st.path.clone()
		details = append(details, d)
	}

	return v, details
}
