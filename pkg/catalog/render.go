package catalog

import (
	"regexp"
	"strings"

	"github.com/dmitrymomot/vow/pkg/annotate"
)

// tokenRe matches {{name}} and {{!name}} placeholders.
var tokenRe = regexp.MustCompile(`\{\{(!?)([^}]+)\}\}`)

// htmlEscaper covers the HTML-unsafe characters that may appear in key names.
// Parentheses get hex entities so that a key like `a()` cannot smuggle markup
// or break out of rendered messages.
var htmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#x27;",
	"(", "&#x28;",
	")", "&#x29;",
)

// EscapeHTML entity-escapes the characters of s that are unsafe to embed in a
// rendered message.
func EscapeHTML(s string) string {
	return htmlEscaper.Replace(s)
}

// Render interpolates tmpl with ctx. A {{name}} token substitutes the context
// value wrapped in double quotes; {{!name}} substitutes it literally. The key
// and label context values are HTML-escaped before substitution. Tokens with no
// matching context entry are left as-is.
func Render(tmpl string, ctx map[string]any) string {
	return tokenRe.ReplaceAllStringFunc(tmpl, func(match string) string {
		groups := tokenRe.FindStringSubmatch(match)
		literal, name := groups[1] == "!", groups[2]

		v, ok := ctx[name]
		if !ok {
			return match
		}
		s := ContextValue(v)
		if name == "key" || name == "label" {
			s = EscapeHTML(s)
		}
		if literal {
			return s
		}
		return `"` + s + `"`
	})
}

// ContextValue renders a context value for embedding into a message. Strings
// embed as-is (quoting is the token's concern), slices as a bracketed list, and
// everything else through the same literal formatter the annotator uses, so
// non-JSON values such as NaN display consistently in messages and annotations.
func ContextValue(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case []any:
		parts := make([]string, len(t))
		for i, item := range t {
			parts[i] = ContextValue(item)
		}
		return "[" + strings.Join(parts, ", ") + "]"
	case []string:
		return "[" + strings.Join(t, ", ") + "]"
	}
	return annotate.Literal(v)
}
