package annotate

import (
	"fmt"
	"math"
	"reflect"
	"sort"
	"strconv"
	"strings"
	"time"
)

// Literal renders a single value in a JSON-like literal form. Values without a
// JSON representation use readable fallbacks: NaN, Infinity, -Infinity, and the
// Go type signature for functions and channels. Times render as quoted RFC 3339
// strings. Containers render compactly on one line.
func Literal(v any) string {
	return literal(v, 0)
}

// literal tracks recursion depth as a cheap guard so that a cyclic container
// passed directly (outside the annotation walk, which has its own ancestor
// check) cannot run away.
func literal(v any, depth int) string {
	if depth > 16 {
		return "..."
	}

	switch t := v.(type) {
	case nil:
		return "null"
	case string:
		return strconv.Quote(t)
	case bool:
		return strconv.FormatBool(t)
	case float64:
		return formatFloat(t)
	case float32:
		return formatFloat(float64(t))
	case int:
		return strconv.Itoa(t)
	case int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return fmt.Sprintf("%d", t)
	case time.Time:
		return strconv.Quote(t.Format(time.RFC3339))
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Func, reflect.Chan:
		return rv.Type().String()
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return "null"
		}
		return literal(rv.Elem().Interface(), depth+1)
	case reflect.Slice, reflect.Array:
		parts := make([]string, rv.Len())
		for i := range parts {
			parts[i] = literal(rv.Index(i).Interface(), depth+1)
		}
		return "[" + strings.Join(parts, ", ") + "]"
	case reflect.Map:
		keys := rv.MapKeys()
		names := make([]string, len(keys))
		byName := make(map[string]reflect.Value, len(keys))
		for i, k := range keys {
			n := fmt.Sprintf("%v", k.Interface())
			names[i] = n
			byName[n] = rv.MapIndex(k)
		}
		sort.Strings(names)
		parts := make([]string, len(names))
		for i, n := range names {
			parts[i] = strconv.Quote(n) + ": " + literal(byName[n].Interface(), depth+1)
		}
		return "{" + strings.Join(parts, ", ") + "}"
	}

	return fmt.Sprintf("%v", v)
}

func formatFloat(f float64) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}
