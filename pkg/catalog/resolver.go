package catalog

import (
	"io"
	"log/slog"
)

// Resolver binds an optional language overlay over the built-in defaults for
// the duration of one validation pass. The zero-cost default resolver serves
// the built-ins untouched; overlays never mutate the defaults table.
type Resolver struct {
	lang          *Language
	logger        *slog.Logger
	fallbackToKey bool
}

// ResolverOption configures a Resolver.
type ResolverOption func(*Resolver)

// WithLogger makes the resolver log template keys that have neither an overlay
// nor a built-in entry. Silent by default.
func WithLogger(logger *slog.Logger) ResolverOption {
	return func(r *Resolver) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// WithoutKeyFallback makes Template report misses instead of falling back to
// the key itself.
func WithoutKeyFallback() ResolverOption {
	return func(r *Resolver) {
		r.fallbackToKey = false
	}
}

// NewResolver creates a resolver for the given overlay; lang may be nil.
func NewResolver(lang *Language, opts ...ResolverOption) *Resolver {
	r := &Resolver{
		lang:          lang,
		logger:        slog.New(slog.NewTextHandler(io.Discard, nil)),
		fallbackToKey: true,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Template returns the template for a "<type>.<rule>" key, preferring the
// overlay. When no template exists the key itself is returned (unless key
// fallback is disabled) so a failure is never silently dropped.
func (r *Resolver) Template(key string) (string, bool) {
	if r.lang != nil {
		if tmpl, ok := r.lang.Templates[key]; ok {
			return tmpl, true
		}
	}
	if tmpl, ok := defaults[key]; ok {
		return tmpl, true
	}
	r.logger.Warn("no template for failure type", "key", key)
	if r.fallbackToKey {
		return key, false
	}
	return "", false
}

// Root returns the display label for the document root.
func (r *Resolver) Root() string {
	if r.lang != nil && r.lang.Root != "" {
		return r.lang.Root
	}
	return DefaultRoot
}

// KeyPrefix returns the template used to compose a nested failure into its
// parent's message.
func (r *Resolver) KeyPrefix() string {
	if r.lang != nil && r.lang.Key != "" {
		return r.lang.Key
	}
	return DefaultKey
}

// WrapArrays reports whether composed child reasons are wrapped in brackets.
func (r *Resolver) WrapArrays() bool {
	if r.lang != nil && r.lang.WrapArrays != nil {
		return *r.lang.WrapArrays
	}
	return true
}
