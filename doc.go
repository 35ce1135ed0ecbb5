// Package vow is a declarative data-validation engine. Consumers build an
// immutable schema describing the shape, types, and constraints an input value
// must satisfy, then run it against untrusted values to obtain either a
// validated (and possibly converted) value or a structured, localizable error
// report.
//
// Schemas are built fluently; every modifier returns a new schema, so a
// published schema is never mutated and can be shared across concurrent
// validations:
//
//	user := vow.Object().Keys(map[string]any{
//		"name":  vow.String().Min(3).Required(),
//		"email": vow.String().Email(),
//		"age":   vow.Number().Min(18).Integer(),
//	})
//
//	out, err := vow.Validate(input, user, vow.WithAbortEarly(false))
//	if err != nil {
//		var verr *vow.ValidationError
//		if errors.As(err, &verr) {
//			fmt.Println(verr.Annotate(true))
//		}
//	}
//
// Validation never panics on bad input; failures are reported through
// *ValidationError, which carries one ErrorDetail per failing check, a composed
// message, and an Annotate method rendering the original input with inline
// error markers. Only schema construction mistakes (a negative length limit, an
// empty rename target) panic, at build time.
//
// Plain structural literals compile implicitly: a map[string]any of schemas is
// an object schema over those keys, a []any of schemas is an ordered
// alternatives schema, and any other literal is a schema accepting exactly that
// value.
//
// Messages come from the template catalog in pkg/catalog and can be overlaid
// per call with vow.WithLanguage; see the catalog package for overlay loading
// and locale matching.
package vow
