package catalog

import (
	"fmt"
	"sync"

	"golang.org/x/text/language"
)

// Registry holds one language overlay per BCP 47 tag and picks the best match
// for a caller's preference list. Safe for concurrent use.
type Registry struct {
	mu    sync.RWMutex
	tags  []language.Tag
	langs map[language.Tag]*Language
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{langs: make(map[language.Tag]*Language)}
}

// Register adds or replaces the overlay for a language tag such as "en" or
// "pt-BR".
func (r *Registry) Register(tag string, lang *Language) error {
	t, err := language.Parse(tag)
	if err != nil {
		return fmt.Errorf("catalog: invalid language tag %q: %w", tag, err)
	}
	if lang == nil {
		return fmt.Errorf("catalog: nil language for tag %q", tag)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.langs[t]; !exists {
		r.tags = append(r.tags, t)
	}
	r.langs[t] = lang
	return nil
}

// Pick returns the overlay best matching the preferred tags, in order of
// preference (an Accept-Language list works directly). It returns nil when the
// registry is empty or nothing matches with any confidence.
func (r *Registry) Pick(preferred ...string) *Language {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if len(r.tags) == 0 {
		return nil
	}

	want := make([]language.Tag, 0, len(preferred))
	for _, p := range preferred {
		if t, err := language.Parse(p); err == nil {
			want = append(want, t)
		}
	}
	if len(want) == 0 {
		return nil
	}

	matcher := language.NewMatcher(r.tags)
	_, idx, conf := matcher.Match(want...)
	if conf == language.No {
		return nil
	}
	return r.langs[r.tags[idx]]
}
