package vow

import (
	"time"
)

// dateFormats are tried in order when converting a string to a date.
var dateFormats = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02",
}

// DateSchema matches points in time. Native time.Time values are accepted
// as-is; when conversion is enabled, strings parse against RFC 3339 (and plain
// dates) and numbers are read as milliseconds since the Unix epoch.
type DateSchema struct {
	baseSchema
	isoOnly bool
}

// Date creates a schema matching dates.
func Date() *DateSchema {
	return &DateSchema{baseSchema: newBase("date")}
}

func (s *DateSchema) clone() *DateSchema {
	c := *s
	c.baseSchema = s.cloneBase()
	return &c
}

// Min requires the date to be at or after limit.
func (s *DateSchema) Min(limit time.Time) *DateSchema {
	c := s.clone()
	c.addRule("date.min", map[string]any{"limit": limit}, func(v any, _ map[string]any, _ State) *Failure {
		if v.(time.Time).Before(limit) {
			return &Failure{Type: "date.min", Context: map[string]any{"limit": limit}}
		}
		return nil
	})
	return c
}

// Max requires the date to be at or before limit.
func (s *DateSchema) Max(limit time.Time) *DateSchema {
	c := s.clone()
	c.addRule("date.max", map[string]any{"limit": limit}, func(v any, _ map[string]any, _ State) *Failure {
		if v.(time.Time).After(limit) {
			return &Failure{Type: "date.max", Context: map[string]any{"limit": limit}}
		}
		return nil
	})
	return c
}

// Iso restricts string conversion to strict ISO 8601 (RFC 3339) input.
func (s *DateSchema) Iso() *DateSchema {
	c := s.clone()
	c.isoOnly = true
	return c
}

// Required marks the value as mandatory.
func (s *DateSchema) Required() *DateSchema {
	c := s.clone()
	c.presence = presenceRequired
	return c
}

// Optional marks the value as allowed to be absent (the default).
func (s *DateSchema) Optional() *DateSchema {
	c := s.clone()
	c.presence = presenceOptional
	return c
}

// Forbidden fails the value whenever it is present.
func (s *DateSchema) Forbidden() *DateSchema {
	c := s.clone()
	c.presence = presenceForbidden
	return c
}

// Valid restricts the value to the given set.
func (s *DateSchema) Valid(values ...any) *DateSchema {
	c := s.clone()
	c.valids = append(c.valids, values...)
	c.allowOnly = true
	return c
}

// Allow whitelists additional values without restricting the schema to them.
func (s *DateSchema) Allow(values ...any) *DateSchema {
	c := s.clone()
	c.valids = append(c.valids, values...)
	return c
}

// Invalid rejects the given values.
func (s *DateSchema) Invalid(values ...any) *DateSchema {
	c := s.clone()
	c.invalids = append(c.invalids, values...)
	return c
}

// Label sets the display name used in messages instead of the key.
func (s *DateSchema) Label(label string) *DateSchema {
	mustName("label", label)
	c := s.clone()
	c.label = label
	return c
}

// Default supplies the value used when the key is absent and optional.
func (s *DateSchema) Default(v time.Time) *DateSchema {
	c := s.clone()
	c.def = v
	c.hasDef = true
	return c
}

// Options attaches per-node options applied to this node and its subtree.
func (s *DateSchema) Options(opts ...Option) *DateSchema {
	c := s.clone()
	c.nodeOpts = append(c.nodeOpts, opts...)
	return c
}

// Validate matches value against the schema.
func (s *DateSchema) Validate(value any, opts ...Option) (any, error) {
	return Validate(value, s, opts...)
}

func (s *DateSchema) exec(v any, st *state) (any, []ErrorDetail) {
	t, failType := s.coerce(v, st)
	if failType != "" {
		return v, []ErrorDetail{st.detail(&Failure{Type: failType}, v, schemaLabel(s))}
	}
	return t, runRules(s, t, st)
}

func (s *DateSchema) coerce(v any, st *state) (time.Time, string) {
	if t, ok := v.(time.Time); ok {
		return t, ""
	}
	if !st.opts.convert {
		return time.Time{}, "date.base"
	}
	if str, ok := v.(string); ok {
		formats := dateFormats
		if s.isoOnly {
			formats = dateFormats[:2]
		}
		for _, layout := range formats {
			if t, err := time.Parse(layout, str); err == nil {
				return t, ""
			}
		}
		if s.isoOnly {
			return time.Time{}, "date.isoDate"
		}
		return time.Time{}, "date.base"
	}
	if f, ok := toFloat(v); ok && !s.isoOnly {
		sec := int64(f) / 1000
		ms := int64(f) % 1000
		return time.Unix(sec, ms*int64(time.Millisecond)).UTC(), ""
	}
	return time.Time{}, "date.base"
}
