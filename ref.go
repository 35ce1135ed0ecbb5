package vow

import "strings"

// Reference resolves a sibling or ancestor value at validation time. A plain
// dot-path ("a.b") resolves within the value's parent object; a "$"-prefixed
// path resolves within the external context supplied via WithContext. A
// reference that cannot be resolved is a non-match, never a structural error.
//
// References are used inside Valid/Allow/Invalid sets and in object Assert
// constraints; they are not schemas themselves.
type Reference struct {
	key     string
	segs    []string
	context bool
}

// Ref creates a reference to the given dot-separated path.
func Ref(path string) *Reference {
	mustName("reference path", path)
	r := &Reference{key: path}
	if rest, ok := strings.CutPrefix(path, "$"); ok {
		r.context = true
		path = rest
	}
	r.segs = strings.Split(path, ".")
	return r
}

// Path returns the path the reference was built with.
func (r *Reference) Path() string { return r.key }

func (r *Reference) resolve(st *state) (any, bool) {
	var scope any
	if r.context {
		if st.opts.context == nil {
			return nil, false
		}
		scope = st.opts.context
	} else {
		scope = st.parent
	}
	return walkPath(scope, r.segs)
}

func walkPath(v any, segs []string) (any, bool) {
	cur := v
	for _, seg := range segs {
		m, ok := cur.(map[string]any)
		if !ok {
			return nil, false
		}
		cur, ok = m[seg]
		if !ok {
			return nil, false
		}
	}
	return cur, true
}
