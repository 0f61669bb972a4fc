package confmerge

import (
	"encoding/json"
	"fmt"
	"math"
	"reflect"
	"regexp"
	"strconv"
	"strings"

	"github.com/spf13/cast"
)

// castValue coerces v to the leaf kind k. Conversion failures yield the zero
// value of the target type; cast mode never reports an error.
//
// Strings are read as decimal text: surrounding space is ignored and the
// longest numeric prefix counts, so "010" is 10, "12abc" is 12 and "0x1F" is 0.
// A string is false only when it is "" or "0".
func castValue(k Kind, v any) any {
	s, isString := v.(string)
	switch k {
	case KindBool:
		if isString {
			return s != "" && s != "0"
		}
		return cast.ToBool(v)
	case KindInt:
		if isString {
			return stringToInt(s)
		}
		return cast.ToInt(v)
	case KindFloat:
		if isString {
			return stringToFloat(s)
		}
		return cast.ToFloat64(v)
	case KindString:
		return cast.ToString(v)
	default:
		return v
	}
}

var numericPrefix = regexp.MustCompile(`^[+-]?(\d+(\.\d*)?|\.\d+)([eE][+-]?\d+)?`)

func stringToFloat(s string) float64 {
	f, err := strconv.ParseFloat(numericPrefix.FindString(strings.TrimSpace(s)), 64)
	if err != nil {
		return 0
	}
	return f
}

func stringToInt(s string) int {
	num := numericPrefix.FindString(strings.TrimSpace(s))
	if i, err := strconv.ParseInt(num, 10, 64); err == nil && i >= math.MinInt && i <= math.MaxInt {
		return int(i)
	}
	f, err := strconv.ParseFloat(num, 64)
	if err != nil || math.IsNaN(f) || f < math.MinInt || f >= math.MaxInt {
		return 0
	}
	return int(f)
}

// emptyDefault reports whether a default counts as unset: nil, false, zero
// numbers, "" and "0", and empty maps or slices.
func emptyDefault(v any) bool {
	if v == nil {
		return true
	}
	if s, ok := v.(string); ok {
		return s == "" || s == "0"
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Map, reflect.Slice, reflect.Array:
		return rv.Len() == 0
	case reflect.Bool, reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return rv.IsZero()
	default:
		return false
	}
}

// runtimeKindName classifies v into the kind names used by diagnostics.
func runtimeKindName(v any) string {
	switch t := v.(type) {
	case nil:
		return "null"
	case bool:
		return "bool"
	case string:
		return "string"
	case json.Number:
		if _, err := t.Int64(); err == nil {
			return "int"
		}
		return "float"
	case map[string]any, map[any]any, []any:
		return "array"
	}
	switch reflect.ValueOf(v).Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return "int"
	case reflect.Float32, reflect.Float64:
		return "float"
	case reflect.Map, reflect.Slice, reflect.Array:
		return "array"
	default:
		return "object"
	}
}

// matchesStrict reports whether v's runtime kind is exactly the leaf kind k.
func matchesStrict(k Kind, v any) bool {
	got := runtimeKindName(v)
	switch k {
	case KindBool, KindInt, KindFloat, KindString:
		return got == k.String()
	default:
		return true
	}
}

// asMapping views v as a block mapping. []any is keyed by index.
func asMapping(v any) (map[string]any, bool) {
	switch t := v.(type) {
	case map[string]any:
		return t, true
	case map[any]any:
		out := make(map[string]any, len(t))
		for k, vv := range t {
			out[fmt.Sprint(k)] = vv
		}
		return out, true
	case []any:
		out := make(map[string]any, len(t))
		for i, vv := range t {
			out[strconv.Itoa(i)] = vv
		}
		return out, true
	default:
		return nil, false
	}
}

func isMapping(v any) bool {
	_, ok := asMapping(v)
	return ok
}

// indexKey parses canonical non-negative integer keys ("0", "12"; not "01", "-1").
func indexKey(k string) (int, bool) {
	if k == "" || (len(k) > 1 && k[0] == '0') {
		return 0, false
	}
	for i := 0; i < len(k); i++ {
		if k[i] < '0' || k[i] > '9' {
			return 0, false
		}
	}
	n, err := strconv.Atoi(k)
	if err != nil {
		return 0, false
	}
	return n, true
}

// onlyIndexKeys is true for []any and for maps whose keys are all index keys.
// An empty map counts as index-keyed.
func onlyIndexKeys(v any) bool {
	switch t := v.(type) {
	case []any:
		return true
	case map[string]any:
		for k := range t {
			if _, ok := indexKey(k); !ok {
				return false
			}
		}
		return true
	case map[any]any:
		for k := range t {
			if _, ok := indexKey(fmt.Sprint(k)); !ok {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// highestIndex returns the largest index key of m, or -1 when m has none.
func highestIndex(m map[string]any) int {
	high := -1
	for k := range m {
		if n, ok := indexKey(k); ok && n > high {
			high = n
		}
	}
	return high
}

// deepCopy copies maps and slices recursively; other values are returned as is.
func deepCopy(v any) any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, vv := range t {
			out[k] = deepCopy(vv)
		}
		return out
	case map[any]any:
		out := make(map[any]any, len(t))
		for k, vv := range t {
			out[k] = deepCopy(vv)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, vv := range t {
			out[i] = deepCopy(vv)
		}
		return out
	default:
		return v
	}
}
