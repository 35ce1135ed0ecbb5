package vow

import (
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrymomot/vow/pkg/annotate"
	"github.com/dmitrymomot/vow/pkg/catalog"
)

// Path locates a value inside a document: string keys for object fields, int
// indices for array positions. An empty path is the document root.
type Path []any

// String returns the dot-joined display form, e.g. "items.0.name".
func (p Path) String() string {
	parts := make([]string, len(p))
	for i, seg := range p {
		parts[i] = fmt.Sprintf("%v", seg)
	}
	return strings.Join(parts, ".")
}

func (p Path) clone() Path {
	return append(Path{}, p...)
}

// ErrorDetail is one reported failure: a fully interpolated message, the
// location of the offending value, the template key that produced the message,
// and the named values that were available for interpolation (including the raw
// key and label, unescaped).
type ErrorDetail struct {
	Message string
	Path    Path
	Type    string
	Context map[string]any
}

// ValidationError aggregates every ErrorDetail produced by one validation call.
// It retains the original (pre-conversion) input so that Annotate reflects what
// the caller actually passed in, even though validation works on its own copy.
type ValidationError struct {
	Details  []ErrorDetail
	original any
	message  string
}

// newValidationError composes the aggregate message eagerly: the resolver is
// scoped to the validation call and must not be retained.
func newValidationError(details []ErrorDetail, original any, res *catalog.Resolver) *ValidationError {
	return &ValidationError{
		Details:  details,
		original: original,
		message:  composeLevel(details, 0, res),
	}
}

// Error returns the composed message: sibling failures joined by ". ", nested
// failures wrapped in the `child "<key>" fails because [...]` prefix at each
// depth where they originate inside a container.
func (e *ValidationError) Error() string { return e.message }

// Annotate renders the original input with a numbered marker at every failure
// location and a legend mapping each number to its message. Markers are ANSI
// red unless colorless is true. Details sharing an identical path merge into
// one marker.
func (e *ValidationError) Annotate(colorless bool) string {
	reports := make([]annotate.Report, len(e.Details))
	for i, d := range e.Details {
		reports[i] = annotate.Report{Path: d.Path, Message: d.Message}
	}
	return annotate.Annotate(e.original, reports, colorless)
}

// composeLevel groups consecutive details sharing the same path segment at the
// given depth, preserving discovery order, and wraps their joined reasons in
// the nesting prefix.
func composeLevel(details []ErrorDetail, depth int, res *catalog.Resolver) string {
	var parts []string
	for i := 0; i < len(details); {
		d := details[i]
		if len(d.Path) <= depth {
			parts = append(parts, d.Message)
			i++
			continue
		}
		seg := fmt.Sprintf("%v", d.Path[depth])
		j := i
		for j < len(details) && len(details[j].Path) > depth && fmt.Sprintf("%v", details[j].Path[depth]) == seg {
			j++
		}
		inner := composeLevel(details[i:j], depth+1, res)
		if res.WrapArrays() {
			inner = "[" + inner + "]"
		}
		prefix := catalog.Render(res.KeyPrefix(), map[string]any{"key": seg})
		parts = append(parts, prefix+inner)
		i = j
	}
	return strings.Join(parts, ". ")
}

// IsValidationError reports whether err was produced by this engine, as opposed
// to a generic error supplied by a caller.
func IsValidationError(err error) bool {
	var verr *ValidationError
	return errors.As(err, &verr)
}

// ExtractValidationError unwraps a *ValidationError from err, or returns nil.
func ExtractValidationError(err error) *ValidationError {
	var verr *ValidationError
	if errors.As(err, &verr) {
		return verr
	}
	return nil
}
