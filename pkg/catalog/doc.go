// Package catalog holds the message templates used to describe validation
// failures and turns an internal failure signal into a localized, interpolated,
// HTML-safe message.
//
// Templates are keyed "<type>.<rule>" (for example "number.min" or
// "object.rename.override") and contain {{placeholder}} tokens. A substituted
// token is wrapped in double quotes; the {{!placeholder}} form substitutes
// literally. Key and label names are HTML-entity escaped before they are
// interpolated into a message, so an unsafe key like `a()` renders as
// `a&#x28;&#x29;` while structured error data keeps the raw key.
//
// A Language overlays the built-in defaults: matching keys replace the default
// template, everything else falls through. Overlays can be built in code or
// loaded from YAML or JSON documents, and a Registry can hold one overlay per
// BCP 47 language tag, picking the best match for a caller's preference list.
//
// The default table is process-wide and immutable; a Resolver binds one
// optional overlay for the duration of a single validation pass and is cheap to
// construct per call.
package catalog
