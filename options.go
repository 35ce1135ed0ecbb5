package vow

import (
	"log/slog"

	"github.com/dmitrymomot/vow/pkg/catalog"
)

type options struct {
	abortEarly   bool
	convert      bool
	allowUnknown bool
	stripUnknown bool
	language     *catalog.Language
	context      map[string]any
	logger       *slog.Logger
}

func defaultOptions() *options {
	return &options{
		abortEarly: true,
		convert:    true,
	}
}

func (o options) clone() *options {
	return &o
}

// Option configures a validation call. Options may also be attached to a
// schema node via its Options modifier, in which case they apply to that node
// and its subtree, layered over the call's options.
type Option func(*options)

// WithAbortEarly controls whether validation halts at the first failure
// (default true) or exhaustively collects every failure in the document.
func WithAbortEarly(abort bool) Option {
	return func(o *options) { o.abortEarly = abort }
}

// WithLanguage overlays the given message templates over the built-in defaults
// for this call. The overlay never mutates the defaults.
func WithLanguage(lang *catalog.Language) Option {
	return func(o *options) { o.language = lang }
}

// WithAllowUnknown permits object keys that no schema describes instead of
// failing them.
func WithAllowUnknown(allow bool) Option {
	return func(o *options) { o.allowUnknown = allow }
}

// WithStripUnknown drops unrecognized object keys from the output value
// instead of failing them.
func WithStripUnknown(strip bool) Option {
	return func(o *options) { o.stripUnknown = strip }
}

// WithoutConversion disables type coercion: values must already have the
// schema's native type.
func WithoutConversion() Option {
	return func(o *options) { o.convert = false }
}

// WithContext supplies a namespace of external values that "$"-prefixed
// references resolve against.
func WithContext(ctx map[string]any) Option {
	return func(o *options) { o.context = ctx }
}

// WithLogger routes catalog diagnostics (such as missing template keys) to the
// given logger. Silent by default.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) { o.logger = logger }
}
