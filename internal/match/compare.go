package match

import (
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"
	"time"
)

// Type ranks used by Compare when two values differ in kind. The order
// follows the type names boolean < number < object < string.
const (
	rankBool = iota
	rankNumber
	rankObject
	rankString
)

// Number converts any Go numeric value to float64.
func Number(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	}
	return 0, false
}

// Equal reports strict equality. Numbers compare by value regardless of Go
// type (JSON decodes float64, SQLite returns int64); everything else must
// share a type. Maps and slices compare deeply.
func Equal(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if x, ok := Number(a); ok {
		y, ok := Number(b)
		return ok && x == y
	}
	if ta, tb := reflect.TypeOf(a), reflect.TypeOf(b); ta != tb {
		return false
	} else if ta.Comparable() {
		return a == b
	}
	return reflect.DeepEqual(a, b)
}

// Compare orders two values for sorting. Values of different kinds order by
// kind (booleans, numbers, objects and nil, strings); numbers and times order
// by value, strings case-insensitively, booleans false first.
func Compare(a, b any) int {
	ra, rb := rank(a), rank(b)
	if ra != rb {
		if ra < rb {
			return -1
		}
		return 1
	}
	switch ra {
	case rankBool:
		x, y := a.(bool), b.(bool)
		switch {
		case x == y:
			return 0
		case !x:
			return -1
		default:
			return 1
		}
	case rankNumber:
		x, y := numeric(a), numeric(b)
		switch {
		case x < y:
			return -1
		case x > y:
			return 1
		case x == y:
			return 0
		case math.IsNaN(x) && !math.IsNaN(y):
			return 1
		case !math.IsNaN(x) && math.IsNaN(y):
			return -1
		}
		return 0
	case rankString:
		return strings.Compare(strings.ToLower(a.(string)), strings.ToLower(b.(string)))
	}
	// Objects and nil: nil first, then by their printed form.
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return -1
	case b == nil:
		return 1
	}
	return strings.Compare(fmt.Sprint(a), fmt.Sprint(b))
}

func rank(v any) int {
	switch v.(type) {
	case bool:
		return rankBool
	case string:
		return rankString
	case time.Time:
		return rankNumber
	}
	if _, ok := Number(v); ok {
		return rankNumber
	}
	return rankObject
}

func numeric(v any) float64 {
	if t, ok := v.(time.Time); ok {
		return float64(t.UnixNano())
	}
	n, _ := Number(v)
	return n
}

// Stringify renders a scalar the way a search box would show it: integers
// without a fraction, floats in shortest form.
func Stringify(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case bool:
		return strconv.FormatBool(t)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(t), 'f', -1, 32)
	case time.Time:
		return t.Format(time.RFC3339)
	case fmt.Stringer:
		return t.String()
	}
	return fmt.Sprint(v)
}

// composite reports whether v is a map, slice, array or struct.
func composite(v any) bool {
	if v == nil {
		return false
	}
	if _, ok := v.(time.Time); ok {
		return false
	}
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return false
		}
		rv = rv.Elem()
	}
	switch rv.Kind() {
	case reflect.Map, reflect.Slice, reflect.Array, reflect.Struct:
		return true
	}
	return false
}
