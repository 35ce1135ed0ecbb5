package vow

import (
	"math"
	"strconv"
)

// NumberSchema matches numeric values. Go integer and float kinds normalize to
// float64; numeric strings convert when conversion is enabled. NaN is never a
// valid number.
type NumberSchema struct {
	baseSchema
}

// Number creates a schema matching numbers.
func Number() *NumberSchema {
	return &NumberSchema{newBase("number")}
}

func (s *NumberSchema) clone() *NumberSchema {
	c := *s
	c.baseSchema = s.cloneBase()
	return &c
}

func (s *NumberSchema) numRule(name string, limit float64, fail func(v, limit float64) bool) *NumberSchema {
	c := s.clone()
	c.addRule(name, map[string]any{"limit": limit}, func(v any, _ map[string]any, _ State) *Failure {
		if fail(v.(float64), limit) {
			return &Failure{Type: name, Context: map[string]any{"limit": limit}}
		}
		return nil
	})
	return c
}

// Min requires the value to be at least limit.
func (s *NumberSchema) Min(limit float64) *NumberSchema {
	return s.numRule("number.min", limit, func(v, l float64) bool { return v < l })
}

// Max requires the value to be at most limit.
func (s *NumberSchema) Max(limit float64) *NumberSchema {
	return s.numRule("number.max", limit, func(v, l float64) bool { return v > l })
}

// Greater requires the value to be strictly greater than limit.
func (s *NumberSchema) Greater(limit float64) *NumberSchema {
	return s.numRule("number.greater", limit, func(v, l float64) bool { return v <= l })
}

// Less requires the value to be strictly less than limit.
func (s *NumberSchema) Less(limit float64) *NumberSchema {
	return s.numRule("number.less", limit, func(v, l float64) bool { return v >= l })
}

// Integer rejects values with a fractional part.
func (s *NumberSchema) Integer() *NumberSchema {
	c := s.clone()
	c.addRule("number.integer", nil, func(v any, _ map[string]any, _ State) *Failure {
		if f := v.(float64); f != math.Trunc(f) {
			return &Failure{Type: "number.integer"}
		}
		return nil
	})
	return c
}

// Positive requires the value to be greater than zero.
func (s *NumberSchema) Positive() *NumberSchema {
	c := s.clone()
	c.addRule("number.positive", nil, func(v any, _ map[string]any, _ State) *Failure {
		if v.(float64) <= 0 {
			return &Failure{Type: "number.positive"}
		}
		return nil
	})
	return c
}

// Negative requires the value to be less than zero.
func (s *NumberSchema) Negative() *NumberSchema {
	c := s.clone()
	c.addRule("number.negative", nil, func(v any, _ map[string]any, _ State) *Failure {
		if v.(float64) >= 0 {
			return &Failure{Type: "number.negative"}
		}
		return nil
	})
	return c
}

// Multiple requires the value to be an integer multiple of base.
func (s *NumberSchema) Multiple(base float64) *NumberSchema {
	if base <= 0 {
		panic("vow: number.multiple base must be positive")
	}
	c := s.clone()
	c.addRule("number.multiple", map[string]any{"multiple": base}, func(v any, _ map[string]any, _ State) *Failure {
		if math.Mod(v.(float64), base) != 0 {
			return &Failure{Type: "number.multiple", Context: map[string]any{"multiple": base}}
		}
		return nil
	})
	return c
}

// Required marks the value as mandatory.
func (s *NumberSchema) Required() *NumberSchema {
	c := s.clone()
	c.presence = presenceRequired
	return c
}

// Optional marks the value as allowed to be absent (the default).
func (s *NumberSchema) Optional() *NumberSchema {
	c := s.clone()
	c.presence = presenceOptional
	return c
}

// Forbidden fails the value whenever it is present.
func (s *NumberSchema) Forbidden() *NumberSchema {
	c := s.clone()
	c.presence = presenceForbidden
	return c
}

// Valid restricts the value to the given set.
func (s *NumberSchema) Valid(values ...any) *NumberSchema {
	c := s.clone()
	c.valids = append(c.valids, values...)
	c.allowOnly = true
	return c
}

// Allow whitelists additional values without restricting the schema to them.
func (s *NumberSchema) Allow(values ...any) *NumberSchema {
	c := s.clone()
	c.valids = append(c.valids, values...)
	return c
}

// Invalid rejects the given values.
func (s *NumberSchema) Invalid(values ...any) *NumberSchema {
	c := s.clone()
	c.invalids = append(c.invalids, values...)
	return c
}

// Label sets the display name used in messages instead of the key.
func (s *NumberSchema) Label(label string) *NumberSchema {
	mustName("label", label)
	c := s.clone()
	c.label = label
	return c
}

// Default supplies the value used when the key is absent and optional.
func (s *NumberSchema) Default(v float64) *NumberSchema {
	c := s.clone()
	c.def = v
	c.hasDef = true
	return c
}

// Options attaches per-node options applied to this node and its subtree.
func (s *NumberSchema) Options(opts ...Option) *NumberSchema {
	c := s.clone()
	c.nodeOpts = append(c.nodeOpts, opts...)
	return c
}

// Validate matches value against the schema.
func (s *NumberSchema) Validate(value any, opts ...Option) (any, error) {
	return Validate(value, s, opts...)
}

func (s *NumberSchema) exec(v any, st *state) (any, []ErrorDetail) {
	f, ok := toFloat(v)
	if !ok && st.opts.convert {
		if str, isStr := v.(string); isStr {
			if parsed, err := strconv.ParseFloat(str, 64); err == nil {
				f, ok = parsed, true
			}
		}
	}
	if !ok || math.IsNaN(f) {
		return v, []ErrorDetail{st.detail(&Failure{Type: "number.base"}, v, schemaLabel(s))}
	}
	return f, runRules(s, f, st)
}
