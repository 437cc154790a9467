package match

import (
	"strings"

	"github.com/mesh-intelligence/smarttable/pkg/types"
)

// DefaultFilterName is the registry name of Filter.
const DefaultFilterName = "filter"

// Filter is the default filter function. A row passes when every key of
// predicateObject matches under comparator (Fuzzy when nil):
//
//   - types.GlobalKey matches when any property of the row matches, nested
//     maps and slices included; keys starting with "$" are skipped.
//   - Any other key is a property path; a slice value matches when any of
//     its elements does.
//   - A string expected value starting with "!" negates the match.
//
// The input slice is never modified.
func Filter(rows []*types.Row, predicateObject map[string]any, comparator types.Comparator) []*types.Row {
	if len(predicateObject) == 0 {
		return rows
	}
	if comparator == nil {
		comparator = Fuzzy
	}
	out := make([]*types.Row, 0, len(rows))
	for _, row := range rows {
		if Matches(row, predicateObject, comparator) {
			out = append(out, row)
		}
	}
	return out
}

// Matches reports whether row satisfies every key of predicateObject.
func Matches(row *types.Row, predicateObject map[string]any, comparator types.Comparator) bool {
	if comparator == nil {
		comparator = Fuzzy
	}
	for key, expected := range predicateObject {
		if !matchKey(row, key, expected, comparator) {
			return false
		}
	}
	return true
}

func matchKey(row *types.Row, key string, expected any, cmp types.Comparator) bool {
	if s, ok := expected.(string); ok && len(s) > 1 && s[0] == '!' {
		return !matchKey(row, key, s[1:], cmp)
	}
	if key == types.GlobalKey {
		if row == nil {
			return false
		}
		return anyProperty(row.Fields, expected, cmp)
	}
	actual, _ := Resolve(row, key)
	return matchValue(actual, expected, cmp, false)
}

func matchValue(actual, expected any, cmp types.Comparator, anyProp bool) bool {
	switch a := actual.(type) {
	case []any:
		for _, el := range a {
			if matchValue(el, expected, cmp, anyProp) {
				return true
			}
		}
		return false
	case map[string]any:
		if anyProp {
			return anyProperty(a, expected, cmp)
		}
	}
	return cmp(actual, expected)
}

func anyProperty(fields map[string]any, expected any, cmp types.Comparator) bool {
	for k, v := range fields {
		if strings.HasPrefix(k, "$") {
			continue
		}
		if matchValue(v, expected, cmp, true) {
			return true
		}
	}
	return false
}
