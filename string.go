package vow

import (
	"net/mail"
	"regexp"
	"strings"
	"unicode"

	"github.com/google/uuid"
)

var (
	alphanumRe = regexp.MustCompile(`^[a-zA-Z0-9]+$`)
	tokenRe    = regexp.MustCompile(`^\w+$`)
)

// StringSchema matches string values. The empty string is rejected with
// any.empty unless explicitly allowed via Allow("").
type StringSchema struct {
	baseSchema
	trim      bool
	lowercase bool
	uppercase bool
}

// String creates a schema matching strings.
func String() *StringSchema {
	return &StringSchema{baseSchema: newBase("string")}
}

func (s *StringSchema) clone() *StringSchema {
	c := *s
	c.baseSchema = s.cloneBase()
	return &c
}

// Min requires at least limit characters.
func (s *StringSchema) Min(limit int) *StringSchema {
	mustPositive("string.min", limit)
	c := s.clone()
	c.addRule("string.min", map[string]any{"limit": limit}, func(v any, p map[string]any, _ State) *Failure {
		if len([]rune(v.(string))) < limit {
			return &Failure{Type: "string.min", Context: map[string]any{"limit": limit}}
		}
		return nil
	})
	return c
}

// Max allows at most limit characters.
func (s *StringSchema) Max(limit int) *StringSchema {
	mustPositive("string.max", limit)
	c := s.clone()
	c.addRule("string.max", map[string]any{"limit": limit}, func(v any, p map[string]any, _ State) *Failure {
		if len([]rune(v.(string))) > limit {
			return &Failure{Type: "string.max", Context: map[string]any{"limit": limit}}
		}
		return nil
	})
	return c
}

// Length requires exactly limit characters.
func (s *StringSchema) Length(limit int) *StringSchema {
	mustPositive("string.length", limit)
	c := s.clone()
	c.addRule("string.length", map[string]any{"limit": limit}, func(v any, p map[string]any, _ State) *Failure {
		if len([]rune(v.(string))) != limit {
			return &Failure{Type: "string.length", Context: map[string]any{"limit": limit}}
		}
		return nil
	})
	return c
}

// Email requires an address net/mail can parse.
func (s *StringSchema) Email() *StringSchema {
	c := s.clone()
	c.addRule("string.email", nil, func(v any, _ map[string]any, _ State) *Failure {
		addr, err := mail.ParseAddress(v.(string))
		if err != nil || addr.Address != v.(string) {
			return &Failure{Type: "string.email"}
		}
		return nil
	})
	return c
}

// Regex requires the value to match re.
func (s *StringSchema) Regex(re *regexp.Regexp) *StringSchema {
	if re == nil {
		panic("vow: string.regex requires a pattern")
	}
	c := s.clone()
	c.addRule("string.regex", map[string]any{"pattern": re.String()}, func(v any, _ map[string]any, _ State) *Failure {
		if !re.MatchString(v.(string)) {
			return &Failure{Type: "string.regex", Context: map[string]any{"pattern": re.String()}}
		}
		return nil
	})
	return c
}

// Alphanum requires only letters and digits.
func (s *StringSchema) Alphanum() *StringSchema {
	c := s.clone()
	c.addRule("string.alphanum", nil, func(v any, _ map[string]any, _ State) *Failure {
		if !alphanumRe.MatchString(v.(string)) {
			return &Failure{Type: "string.alphanum"}
		}
		return nil
	})
	return c
}

// Token requires only letters, digits and underscores.
func (s *StringSchema) Token() *StringSchema {
	c := s.clone()
	c.addRule("string.token", nil, func(v any, _ map[string]any, _ State) *Failure {
		if !tokenRe.MatchString(v.(string)) {
			return &Failure{Type: "string.token"}
		}
		return nil
	})
	return c
}

// GUID requires a canonical UUID.
func (s *StringSchema) GUID() *StringSchema {
	c := s.clone()
	c.addRule("string.guid", nil, func(v any, _ map[string]any, _ State) *Failure {
		str := v.(string)
		if len(str) != 36 {
			return &Failure{Type: "string.guid"}
		}
		if _, err := uuid.Parse(str); err != nil {
			return &Failure{Type: "string.guid"}
		}
		return nil
	})
	return c
}

// Lowercase converts the value to lower case when conversion is enabled, and
// rejects values containing upper-case characters otherwise.
func (s *StringSchema) Lowercase() *StringSchema {
	c := s.clone()
	c.lowercase = true
	c.addRule("string.lowercase", nil, func(v any, _ map[string]any, _ State) *Failure {
		if strings.ContainsFunc(v.(string), unicode.IsUpper) {
			return &Failure{Type: "string.lowercase"}
		}
		return nil
	})
	return c
}

// Uppercase converts the value to upper case when conversion is enabled, and
// rejects values containing lower-case characters otherwise.
func (s *StringSchema) Uppercase() *StringSchema {
	c := s.clone()
	c.uppercase = true
	c.addRule("string.uppercase", nil, func(v any, _ map[string]any, _ State) *Failure {
		if strings.ContainsFunc(v.(string), unicode.IsLower) {
			return &Failure{Type: "string.uppercase"}
		}
		return nil
	})
	return c
}

// Trim strips surrounding whitespace when conversion is enabled, and rejects
// untrimmed values otherwise.
func (s *StringSchema) Trim() *StringSchema {
	c := s.clone()
	c.trim = true
	c.addRule("string.trim", nil, func(v any, _ map[string]any, _ State) *Failure {
		if v.(string) != strings.TrimSpace(v.(string)) {
			return &Failure{Type: "string.trim"}
		}
		return nil
	})
	return c
}

// Required marks the value as mandatory.
func (s *StringSchema) Required() *StringSchema {
	c := s.clone()
	c.presence = presenceRequired
	return c
}

// Optional marks the value as allowed to be absent (the default).
func (s *StringSchema) Optional() *StringSchema {
	c := s.clone()
	c.presence = presenceOptional
	return c
}

// Forbidden fails the value whenever it is present.
func (s *StringSchema) Forbidden() *StringSchema {
	c := s.clone()
	c.presence = presenceForbidden
	return c
}

// Valid restricts the value to the given set.
func (s *StringSchema) Valid(values ...any) *StringSchema {
	c := s.clone()
	c.valids = append(c.valids, values...)
	c.allowOnly = true
	return c
}

// Allow whitelists additional values without restricting the schema to them.
func (s *StringSchema) Allow(values ...any) *StringSchema {
	c := s.clone()
	c.valids = append(c.valids, values...)
	return c
}

// Invalid rejects the given values.
func (s *StringSchema) Invalid(values ...any) *StringSchema {
	c := s.clone()
	c.invalids = append(c.invalids, values...)
	return c
}

// Label sets the display name used in messages instead of the key.
func (s *StringSchema) Label(label string) *StringSchema {
	mustName("label", label)
	c := s.clone()
	c.label = label
	return c
}

// Default supplies the value used when the key is absent and optional.
func (s *StringSchema) Default(v string) *StringSchema {
	c := s.clone()
	c.def = v
	c.hasDef = true
	return c
}

// Options attaches per-node options applied to this node and its subtree.
func (s *StringSchema) Options(opts ...Option) *StringSchema {
	c := s.clone()
	c.nodeOpts = append(c.nodeOpts, opts...)
	return c
}

// Validate matches value against the schema.
func (s *StringSchema) Validate(value any, opts ...Option) (any, error) {
	return Validate(value, s, opts...)
}

func (s *StringSchema) exec(v any, st *state) (any, []ErrorDetail) {
	str, ok := v.(string)
	if !ok {
		return v, []ErrorDetail{st.detail(&Failure{Type: "string.base"}, v, schemaLabel(s))}
	}
	if st.opts.convert {
		if s.trim {
			str = strings.TrimSpace(str)
		}
		if s.lowercase {
			str = strings.ToLower(str)
		}
		if s.uppercase {
			str = strings.ToUpper(str)
		}
	}
	if str == "" {
		return v, []ErrorDetail{st.detail(&Failure{Type: "any.empty"}, v, schemaLabel(s))}
	}
	return str, runRules(s, str, st)
}
