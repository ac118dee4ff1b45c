package settings

import (
	"fmt"
	"reflect"
)

// Kind classifies a settings value by shape. Every value is classified
// exactly once during a merge; all branching happens on the Kind, never on
// raw reflection at the decision points.
type Kind int

const (
	// KindScalar covers strings, booleans, numbers, and nil.
	KindScalar Kind = iota
	// KindSequence covers ordered collections (slices and arrays).
	KindSequence
	// KindMapping covers string-keyed maps.
	KindMapping
)

func (k Kind) String() string {
	switch k {
	case KindScalar:
		return "scalar"
	case KindSequence:
		return "sequence"
	case KindMapping:
		return "mapping"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// KindOf classifies v. Maps with non-string keys are not valid settings
// values; they classify as mappings here and fail later when walked.
func KindOf(v any) Kind {
	if v == nil {
		return KindScalar
	}
	switch reflect.ValueOf(v).Kind() {
	case reflect.Slice, reflect.Array:
		return KindSequence
	case reflect.Map:
		return KindMapping
	default:
		return KindScalar
	}
}

// scalarType names the type of a scalar value for mismatch reporting.
// All numeric widths collapse to "number" so an int default can be
// overridden by a float from a decoded JSON document.
func scalarType(v any) string {
	if v == nil {
		return "null"
	}
	switch reflect.ValueOf(v).Kind() {
	case reflect.String:
		return "string"
	case reflect.Bool:
		return "bool"
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return "number"
	default:
		return reflect.TypeOf(v).String()
	}
}

// typeName names any value's shape for error messages: scalars report their
// scalar type, collections report their Kind.
func typeName(v any) string {
	if k := KindOf(v); k != KindScalar {
		return k.String()
	}
	return scalarType(v)
}

// asMapping converts a mapping-kinded value to map[string]any, copying only
// when the dynamic type requires it. Returns false for maps with non-string
// keys.
func asMapping(v any) (map[string]any, bool) {
	if m, ok := v.(map[string]any); ok {
		return m, true
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Map || rv.Type().Key().Kind() != reflect.String {
		return nil, false
	}
	m := make(map[string]any, rv.Len())
	iter := rv.MapRange()
	for iter.Next() {
		m[iter.Key().String()] = iter.Value().Interface()
	}
	return m, true
}

// asSequence converts a sequence-kinded value to []any.
func asSequence(v any) []any {
	if s, ok := v.([]any); ok {
		return s
	}
	rv := reflect.ValueOf(v)
	out := make([]any, rv.Len())
	for i := range out {
		out[i] = rv.Index(i).Interface()
	}
	return out
}

// Clone returns a structural deep copy of a settings tree. Sequences and
// nested mappings are copied; scalars are shared (they are immutable for
// the value shapes settings trees carry).
func Clone(m map[string]any) map[string]any {
	if m == nil {
		return nil
	}
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = cloneValue(v)
	}
	return out
}

func cloneValue(v any) any {
	switch KindOf(v) {
	case KindSequence:
		src := asSequence(v)
		dst := make([]any, len(src))
		for i, e := range src {
			dst[i] = cloneValue(e)
		}
		return dst
	case KindMapping:
		m, ok := asMapping(v)
		if !ok {
			return v
		}
		return Clone(m)
	default:
		return v
	}
}
