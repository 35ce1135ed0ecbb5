package catalog

import (
	"encoding/json"
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

// ErrInvalidOverlay is returned when an overlay document cannot be parsed or
// has a shape the catalog does not understand.
var ErrInvalidOverlay = errors.New("catalog: invalid language overlay")

// Language is a partial overlay over the built-in templates. Zero fields fall
// through to the defaults; set fields fully replace the matching default (they
// never concatenate).
type Language struct {
	// Root replaces the display label used for the document root.
	Root string `json:"root" yaml:"root"`

	// Key replaces the nested-failure prefix template (DefaultKey).
	Key string `json:"key" yaml:"key"`

	// WrapArrays controls whether a composed child reason is wrapped in
	// brackets. Nil means the default (true).
	WrapArrays *bool `json:"wrapArrays" yaml:"wrapArrays"`

	// Templates maps "<type>.<rule>" keys to replacement templates.
	Templates map[string]string `json:"templates" yaml:"templates"`
}

// Merge returns a copy of l with non-zero fields of other layered on top.
// Neither receiver nor argument is mutated.
func (l *Language) Merge(other *Language) *Language {
	out := &Language{Templates: make(map[string]string)}
	for _, src := range []*Language{l, other} {
		if src == nil {
			continue
		}
		if src.Root != "" {
			out.Root = src.Root
		}
		if src.Key != "" {
			out.Key = src.Key
		}
		if src.WrapArrays != nil {
			w := *src.WrapArrays
			out.WrapArrays = &w
		}
		for k, v := range src.Templates {
			out.Templates[k] = v
		}
	}
	return out
}

// overlayDoc is the on-disk shape of an overlay. Template keys may be nested
// ("object: {rename: {override: ...}}") or pre-flattened dotted strings.
type overlayDoc struct {
	Root       string         `json:"root" yaml:"root"`
	Key        string         `json:"key" yaml:"key"`
	WrapArrays *bool          `json:"wrapArrays" yaml:"wrapArrays"`
	Templates  map[string]any `json:"templates" yaml:"templates"`
}

// ParseYAML builds a Language from a YAML overlay document.
func ParseYAML(data []byte) (*Language, error) {
	var doc overlayDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidOverlay, err)
	}
	return docToLanguage(doc)
}

// ParseJSON builds a Language from a JSON overlay document.
func ParseJSON(data []byte) (*Language, error) {
	var doc overlayDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidOverlay, err)
	}
	return docToLanguage(doc)
}

func docToLanguage(doc overlayDoc) (*Language, error) {
	lang := &Language{
		Root:       doc.Root,
		Key:        doc.Key,
		WrapArrays: doc.WrapArrays,
		Templates:  make(map[string]string, len(doc.Templates)),
	}
	if err := flattenInto(lang.Templates, "", doc.Templates); err != nil {
		return nil, err
	}
	return lang, nil
}

// flattenInto collapses nested template maps to dotted keys, so the same
// overlay can be written nested or flat.
func flattenInto(dst map[string]string, prefix string, src map[string]any) error {
	for k, v := range src {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}
		switch t := v.(type) {
		case string:
			dst[key] = t
		case map[string]any:
			if err := flattenInto(dst, key, t); err != nil {
				return err
			}
		case map[any]any:
			converted := make(map[string]any, len(t))
			for kk, vv := range t {
				ks, ok := kk.(string)
				if !ok {
					return fmt.Errorf("%w: non-string key %v under %q", ErrInvalidOverlay, kk, key)
				}
				converted[ks] = vv
			}
			if err := flattenInto(dst, key, converted); err != nil {
				return err
			}
		default:
			return fmt.Errorf("%w: template %q must be a string, got %T", ErrInvalidOverlay, key, v)
		}
	}
	return nil
}
