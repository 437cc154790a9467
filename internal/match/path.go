// Package match provides the comparator and matcher primitives of the table
// engine: property-path lookup, value ordering and equality, the default
// filter and sort functions, unique-value extraction, and a registry of
// named filter and sort functions.
package match

import (
	"reflect"
	"strconv"
	"strings"

	"github.com/mesh-intelligence/smarttable/pkg/types"
)

// Resolve reads a dot-separated property path off a row. Each segment is a
// map key, a struct field name, or a slice index. Missing intermediates yield
// (nil, false).
func Resolve(row *types.Row, path string) (any, bool) {
	if row == nil {
		return nil, false
	}
	if path == "" {
		return row.Fields, true
	}
	head, rest, nested := strings.Cut(path, ".")
	v, ok := row.Get(head)
	if !ok {
		return nil, false
	}
	if !nested {
		return v, true
	}
	return ResolveValue(v, rest)
}

// ResolveValue reads a dot-separated property path off an arbitrary value.
func ResolveValue(v any, path string) (any, bool) {
	if path == "" {
		return v, true
	}
	for seg := range strings.SplitSeq(path, ".") {
		next, ok := lookup(v, seg)
		if !ok {
			return nil, false
		}
		v = next
	}
	return v, true
}

// Getter returns a types.Getter reading path; missing values read as nil.
func Getter(path string) types.Getter {
	return func(row *types.Row) any {
		v, _ := Resolve(row, path)
		return v
	}
}

// KeyOf returns the getter a sort predicate selects.
func KeyOf(p types.SortPredicate) types.Getter {
	if p.Fn != nil {
		return p.Fn
	}
	return Getter(p.Path)
}

func lookup(v any, key string) (any, bool) {
	switch t := v.(type) {
	case nil:
		return nil, false
	case map[string]any:
		x, ok := t[key]
		return x, ok
	case []any:
		i, err := strconv.Atoi(key)
		if err != nil || i < 0 || i >= len(t) {
			return nil, false
		}
		return t[i], true
	case *types.Row:
		return t.Get(key)
	}

	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return nil, false
		}
		rv = rv.Elem()
	}
	switch rv.Kind() {
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return nil, false
		}
		mv := rv.MapIndex(reflect.ValueOf(key).Convert(rv.Type().Key()))
		if !mv.IsValid() {
			return nil, false
		}
		return mv.Interface(), true
	case reflect.Struct:
		f := rv.FieldByName(key)
		if !f.IsValid() || !f.CanInterface() {
			return nil, false
		}
		return f.Interface(), true
	case reflect.Slice, reflect.Array:
		i, err := strconv.Atoi(key)
		if err != nil || i < 0 || i >= rv.Len() {
			return nil, false
		}
		return rv.Index(i).Interface(), true
	}
	return nil, false
}
