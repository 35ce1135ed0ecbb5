package annotate

import (
	"fmt"
	"reflect"
	"sort"
	"strconv"
	"strings"

	"github.com/muesli/termenv"
)

// Report is one error to be marked on the annotated output. Path addresses the
// offending location from the document root (string keys and int indices; empty
// means the root itself). The report's position in the slice passed to Annotate
// determines its 1-based ordinal.
type Report struct {
	Path    []any
	Message string
}

// Annotate renders input as indented JSON-like text with a numbered marker at
// every reported location and a legend mapping each number to its message.
// Reports sharing an identical path are merged into a single marker. Reports
// addressing a key absent from the input render as trailing "-- missing --"
// entries. When colorless is false, markers and the legend are wrapped in ANSI
// red.
//
// Annotate never panics; inputs containing cycles render the closing occurrence
// as "[Circular ~<path>]".
func Annotate(input any, reports []Report, colorless bool) (out string) {
	defer func() {
		if rec := recover(); rec != nil {
			out = fmt.Sprintf("%v", input)
		}
	}()

	r := &renderer{
		reports:   reports,
		marks:     make(map[string][]int),
		colorless: colorless,
	}
	for i, rep := range reports {
		k := pathKey(rep.Path)
		r.marks[k] = append(r.marks[k], i+1)
	}

	body := r.render(input, nil, 0)
	// Reports addressing the root itself have no key or index to attach to;
	// mark the whole rendered value, as with array items.
	if m, ok := r.marks[pathKey(nil)]; ok {
		body = r.paint(markerText(m)) + " " + body
	}
	if len(reports) == 0 {
		return body
	}

	var b strings.Builder
	b.WriteString(body)
	b.WriteString("\n")
	for i, rep := range reports {
		b.WriteString("\n")
		b.WriteString(r.paint(fmt.Sprintf("[%d] %s", i+1, rep.Message)))
	}
	return b.String()
}

type frame struct {
	ptr  uintptr
	path []any
}

type renderer struct {
	reports   []Report
	marks     map[string][]int
	colorless bool
	ancestors []frame
}

func (r *renderer) render(v any, path []any, indent int) string {
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Interface {
		rv = rv.Elem()
	}

	switch rv.Kind() {
	case reflect.Map, reflect.Slice, reflect.Pointer:
		if rv.IsNil() {
			return "null"
		}
		ptr := rv.Pointer()
		for _, a := range r.ancestors {
			if a.ptr == ptr {
				return strconv.Quote("[Circular ~" + dotPath(a.path) + "]")
			}
		}
		r.ancestors = append(r.ancestors, frame{ptr: ptr, path: path})
		defer func() { r.ancestors = r.ancestors[:len(r.ancestors)-1] }()
	}

	switch rv.Kind() {
	case reflect.Pointer:
		return r.render(rv.Elem().Interface(), path, indent)
	case reflect.Map:
		return r.object(rv, path, indent)
	case reflect.Slice, reflect.Array:
		return r.list(rv, path, indent)
	}
	return Literal(v)
}

func (r *renderer) object(rv reflect.Value, path []any, indent int) string {
	keys := make([]string, 0, rv.Len())
	byName := make(map[string]reflect.Value, rv.Len())
	for _, k := range rv.MapKeys() {
		n := fmt.Sprintf("%v", k.Interface())
		keys = append(keys, n)
		byName[n] = rv.MapIndex(k)
	}
	sort.Strings(keys)

	// Keys that are themselves error sites move after their unmarked siblings,
	// ordered by first ordinal; keys whose errors sit on descendants only keep
	// their place.
	var plain, marked []string
	for _, k := range keys {
		if _, ok := r.marks[pathKey(append(path, k))]; ok {
			marked = append(marked, k)
		} else {
			plain = append(plain, k)
		}
	}
	sort.SliceStable(marked, func(i, j int) bool {
		return r.firstOrdinal(append(path, marked[i])) < r.firstOrdinal(append(path, marked[j]))
	})

	inner := strings.Repeat("  ", indent+1)
	var lines []string
	for _, k := range append(plain, marked...) {
		childPath := append(append([]any{}, path...), k)
		line := inner + strconv.Quote(k)
		if m, ok := r.marks[pathKey(childPath)]; ok {
			line += " " + r.paint(markerText(m))
		}
		line += ": " + r.render(byName[k].Interface(), childPath, indent+1)
		lines = append(lines, line)
	}

	// Required-but-absent keys never existed in the input; synthesize them at
	// the end, in ordinal order.
	for _, miss := range r.missingAt(path, byName) {
		lines = append(lines, inner+strconv.Quote(miss.key)+" "+r.paint(markerText(miss.ordinals))+": -- missing --")
	}

	if len(lines) == 0 {
		return "{}"
	}
	return "{\n" + strings.Join(lines, ",\n") + "\n" + strings.Repeat("  ", indent) + "}"
}

func (r *renderer) list(rv reflect.Value, path []any, indent int) string {
	if rv.Len() == 0 {
		return "[]"
	}
	inner := strings.Repeat("  ", indent+1)
	lines := make([]string, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		childPath := append(append([]any{}, path...), i)
		line := inner
		if m, ok := r.marks[pathKey(childPath)]; ok {
			line += r.paint(markerText(m)) + " "
		}
		line += r.render(rv.Index(i).Interface(), childPath, indent+1)
		lines[i] = line
	}
	return "[\n" + strings.Join(lines, ",\n") + "\n" + strings.Repeat("  ", indent) + "]"
}

type missingEntry struct {
	key      string
	ordinals []int
}

// missingAt returns reports addressed immediately below path whose key does not
// exist in the rendered object.
func (r *renderer) missingAt(path []any, present map[string]reflect.Value) []missingEntry {
	var out []missingEntry
	seen := make(map[string]bool)
	for _, rep := range r.reports {
		if len(rep.Path) != len(path)+1 || !pathHasPrefix(rep.Path, path) {
			continue
		}
		key, ok := rep.Path[len(path)].(string)
		if !ok || seen[key] {
			continue
		}
		if _, exists := present[key]; exists {
			continue
		}
		seen[key] = true
		out = append(out, missingEntry{key: key, ordinals: r.marks[pathKey(rep.Path)]})
	}
	return out
}

func (r *renderer) firstOrdinal(path []any) int {
	if m, ok := r.marks[pathKey(path)]; ok && len(m) > 0 {
		return m[0]
	}
	return 1 << 30
}

func (r *renderer) paint(s string) string {
	if r.colorless {
		return s
	}
	return termenv.ANSI.String(s).Foreground(termenv.ANSIRed).String()
}

func markerText(ordinals []int) string {
	parts := make([]string, len(ordinals))
	for i, n := range ordinals {
		parts[i] = strconv.Itoa(n)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

func pathKey(path []any) string {
	parts := make([]string, len(path))
	for i, seg := range path {
		parts[i] = fmt.Sprintf("%v", seg)
	}
	return strings.Join(parts, "\x1f")
}

func pathHasPrefix(path, prefix []any) bool {
	for i, seg := range prefix {
		if fmt.Sprintf("%v", path[i]) != fmt.Sprintf("%v", seg) {
			return false
		}
	}
	return true
}

func dotPath(path []any) string {
	parts := make([]string, len(path))
	for i, seg := range path {
		parts[i] = fmt.Sprintf("%v", seg)
	}
	return strings.Join(parts, ".")
}
